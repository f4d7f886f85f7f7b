package handler

import (
	"net/http"

	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/metrics"
	"github.com/wrenbeck/WanderBot_Go/internal/progression"
)

// HandleMessageRequest represents the request to handle an incoming chat message.
type HandleMessageRequest struct {
	UserID      string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Username    string `json:"username" validate:"max=100,excludesall=\x00\n\r\t"`
	DisplayName string `json:"display_name" validate:"max=100,excludesall=\x00\n\r\t"`
}

// HandleMessageHandler runs the cooldown-gated XP award for one chat message.
// @Summary Handle chat message
// @Description Process a chat message, awarding XP unless the author is on cooldown
// @Tags message
// @Accept json
// @Produce json
// @Param request body HandleMessageRequest true "Message details"
// @Success 200 {object} progression.MessageResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /message/handle [post]
func HandleMessageHandler(progressionSvc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req HandleMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Handle message"); err != nil {
			return
		}

		result, err := progressionSvc.OnMessage(r.Context(), req.UserID, req.Username, req.DisplayName)
		if err != nil {
			respondServiceError(w, r, "Handle message", err)
			return
		}

		metrics.MessagesProcessed.Inc()
		if result.Awarded {
			metrics.XPAwarded.Add(float64(result.XPAwarded))
		}
		if result.LeveledUp {
			metrics.LevelUps.Inc()
		}

		log.Info("Message processed",
			"user_id", req.UserID,
			"awarded", result.Awarded,
			"level", result.Level,
			"leveled_up", result.LeveledUp)

		respondJSON(w, http.StatusOK, result)
	}
}
