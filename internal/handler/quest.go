package handler

import (
	"net/http"

	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/metrics"
	"github.com/wrenbeck/WanderBot_Go/internal/quest"
)

// QuestHandlers contains HTTP handlers for daily quests
type QuestHandlers struct {
	service quest.Service
}

// NewQuestHandlers creates new quest handlers
func NewQuestHandlers(service quest.Service) *QuestHandlers {
	return &QuestHandlers{service: service}
}

// HandleToday returns the user's quest of the day
// @Summary Get daily quest
// @Description Returns the user's deterministic quest of the day with current progress
// @Tags quest
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} quest.TodayQuest
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quest/today [get]
func (h *QuestHandlers) HandleToday() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		today, err := h.service.Today(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get daily quest", err)
			return
		}

		log.Info("Get daily quest: success",
			"user_id", userID, "quest", today.Quest.Name, "completed", today.Completed)
		respondJSON(w, http.StatusOK, today)
	}
}

// ClaimRequest identifies the user claiming today's quest reward.
type ClaimRequest struct {
	UserID string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
}

// HandleClaim pays out the daily quest reward
// @Summary Claim quest reward
// @Description Pays out the daily quest reward once the target is met
// @Tags quest
// @Accept json
// @Produce json
// @Param request body ClaimRequest true "Claim details"
// @Success 200 {object} quest.ClaimResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quest/claim [post]
func (h *QuestHandlers) HandleClaim() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ClaimRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim quest"); err != nil {
			return
		}

		result, err := h.service.Claim(r.Context(), req.UserID)
		if err != nil {
			respondServiceError(w, r, "Claim quest", err)
			return
		}

		metrics.QuestsClaimed.Inc()

		log.Info("Claim quest: success",
			"user_id", req.UserID, "quest", result.Quest.Name, "reward", result.Reward)
		respondJSON(w, http.StatusOK, result)
	}
}
