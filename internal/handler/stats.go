package handler

import (
	"net/http"

	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/stats"
)

// HandleStats returns aggregated server statistics
// @Summary Get server stats
// @Description Returns aggregated chat and adventure totals for the whole server
// @Tags stats
// @Produce json
// @Success 200 {object} stats.Overview
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func HandleStats(service stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		overview, err := service.Overview(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get server stats", err)
			return
		}

		log.Info("Get server stats: success")
		respondJSON(w, http.StatusOK, overview)
	}
}
