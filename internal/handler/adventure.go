package handler

import (
	"net/http"

	"github.com/wrenbeck/WanderBot_Go/internal/adventure"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/metrics"
	"github.com/wrenbeck/WanderBot_Go/internal/user"
)

// AdventureHandlers contains HTTP handlers for the adventure mini-game
type AdventureHandlers struct {
	service adventure.Service
	users   user.Service
}

// NewAdventureHandlers creates new adventure handlers
func NewAdventureHandlers(service adventure.Service, users user.Service) *AdventureHandlers {
	return &AdventureHandlers{service: service, users: users}
}

// ActionRequest represents a single adventure turn.
type ActionRequest struct {
	UserID string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Action string `json:"action" validate:"required,max=32,excludesall=\x00\n\r\t"`
}

// HandleAction performs one adventure action or movement
// @Summary Perform adventure action
// @Description Moves to an adjacent location or resolves the action through the encounter roll
// @Tags adventure
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Action details"
// @Success 200 {object} adventure.ActionResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /adventure/action [post]
func (h *AdventureHandlers) HandleAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adventure action"); err != nil {
			return
		}

		result, err := h.service.PerformAction(r.Context(), req.UserID, req.Action)
		if err != nil {
			respondServiceError(w, r, "Adventure action", err)
			return
		}

		metrics.ActionsPerformed.WithLabelValues(req.Action).Inc()
		if result.Outcome != nil {
			metrics.EncountersResolved.WithLabelValues(result.Outcome.Band).Inc()
		}

		log.Info("Adventure action: success",
			"user_id", req.UserID,
			"action", req.Action,
			"moved", result.Moved,
			"location", result.Location)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleState returns the adventure status card
// @Summary Get adventure state
// @Description Returns the status card for the user's current situation
// @Tags adventure
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} adventure.StateView
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /adventure/state [get]
func (h *AdventureHandlers) HandleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		state, err := h.service.State(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get adventure state", err)
			return
		}

		log.Info("Get adventure state: success", "user_id", userID, "location", state.Location)
		respondJSON(w, http.StatusOK, state)
	}
}

// AdventureLeaderboardEntry is one ranked adventure record with a resolved name
type AdventureLeaderboardEntry struct {
	Rank             int    `json:"rank"`
	Name             string `json:"name"`
	Gold             int    `json:"gold"`
	AdventureLevel   int    `json:"adventure_level"`
	MonstersDefeated int    `json:"monsters_defeated"`
}

// AdventureLeaderboardResponse wraps the ranked adventure leaderboard
type AdventureLeaderboardResponse struct {
	Category string                      `json:"category"`
	Entries  []AdventureLeaderboardEntry `json:"entries"`
}

// HandleLeaderboard returns the top adventurers for a category
// @Summary Get adventure leaderboard
// @Description Returns the top adventure records ranked by gold, level or monsters
// @Tags adventure
// @Produce json
// @Param category query string false "Ranking category: gold, level or monsters (default gold)"
// @Param limit query int false "Number of entries (default 10, max 25)"
// @Success 200 {object} AdventureLeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /adventure/leaderboard [get]
func (h *AdventureHandlers) HandleLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		category := GetOptionalQueryParam(r, "category", adventure.CategoryGold)
		limit, ok := GetOptionalIntParam(r, w, "limit", 0)
		if !ok {
			return
		}

		states, err := h.service.Leaderboard(r.Context(), category, limit)
		if err != nil {
			respondServiceError(w, r, "Get adventure leaderboard", err)
			return
		}

		entries := make([]AdventureLeaderboardEntry, 0, len(states))
		for i, state := range states {
			entries = append(entries, AdventureLeaderboardEntry{
				Rank:             i + 1,
				Name:             h.users.DisplayName(r.Context(), state.UserID),
				Gold:             state.Gold,
				AdventureLevel:   state.Level(),
				MonstersDefeated: state.MonstersDefeated,
			})
		}

		log.Info("Get adventure leaderboard: success", "category", category, "entries", len(entries))
		respondJSON(w, http.StatusOK, AdventureLeaderboardResponse{Category: category, Entries: entries})
	}
}
