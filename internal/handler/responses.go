package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, so the only option left is logging
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+": service error", "error", err)
	} else {
		log.Warn(opName+": rejected", "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// User and inventory messages
	ErrMsgUserNotFoundError = "User not found"
	ErrMsgItemNotFoundError = "Item not found"
	ErrMsgNotUsableError    = "That item is passive equipment and works on its own"
	ErrMsgNotHeldError      = "You don't have that item"

	// Economy messages
	ErrMsgNotEnoughGoldError = "Not enough gold"
	ErrMsgNotInTownError     = "The shop is only available in town"

	// Adventure messages
	ErrMsgUnknownActionError  = "Unknown action"
	ErrMsgUnreachableError    = "You can't get there from here"
	ErrMsgGameDisabledError   = "The adventure game is currently disabled"
	ErrMsgQuestsDisabledError = "Daily quests are currently disabled"

	// Quest messages
	ErrMsgQuestNotCompletedError   = "Quest not completed yet"
	ErrMsgQuestAlreadyClaimedError = "Quest reward already claimed today"

	// Cooldown messages
	ErrMsgOnCooldownError = "XP award is on cooldown. Try again later"

	// Input messages
	ErrMsgInvalidInputError = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// This function converts internal service errors to appropriate HTTP status codes
// and messages that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotUsable):
		return http.StatusBadRequest, ErrMsgNotUsableError
	case errors.Is(err, domain.ErrNotHeld):
		return http.StatusBadRequest, ErrMsgNotHeldError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughGoldError
	case errors.Is(err, domain.ErrNotInTown):
		return http.StatusBadRequest, ErrMsgNotInTownError
	case errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, ErrMsgUnknownActionError
	case errors.Is(err, domain.ErrUnreachableLocation):
		return http.StatusBadRequest, ErrMsgUnreachableError
	case errors.Is(err, domain.ErrQuestNotCompleted):
		return http.StatusBadRequest, ErrMsgQuestNotCompletedError
	case errors.Is(err, domain.ErrQuestAlreadyClaimed):
		return http.StatusBadRequest, ErrMsgQuestAlreadyClaimedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrGameDisabled):
		return http.StatusForbidden, ErrMsgGameDisabledError
	case errors.Is(err, domain.ErrQuestsDisabled):
		return http.StatusForbidden, ErrMsgQuestsDisabledError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
