package handler

import (
	"net/http"

	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/progression"
)

// ProgressionHandlers contains HTTP handlers for the chat leveling system
type ProgressionHandlers struct {
	service progression.Service
}

// NewProgressionHandlers creates new progression handlers
func NewProgressionHandlers(service progression.Service) *ProgressionHandlers {
	return &ProgressionHandlers{service: service}
}

// HandleProfile returns a user's level card
// @Summary Get level profile
// @Description Returns the chat level card for a user, derived from cumulative XP
// @Tags progression
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} progression.ProfileView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /progression/profile [get]
func (h *ProgressionHandlers) HandleProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		profile, err := h.service.Profile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		log.Info("Get profile: success", "user_id", userID, "level", profile.Level)
		respondJSON(w, http.StatusOK, profile)
	}
}

// XPTableResponse wraps the per-level XP requirement rows
type XPTableResponse struct {
	Levels []progression.XPTableRow `json:"levels"`
}

// HandleXPTable returns the XP requirement table
// @Summary Get XP table
// @Description Returns per-level XP requirements up to max_level
// @Tags progression
// @Produce json
// @Param max_level query int false "Highest level to include (default 10, max 25)"
// @Success 200 {object} XPTableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /progression/table [get]
func (h *ProgressionHandlers) HandleXPTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		maxLevel, ok := GetOptionalIntParam(r, w, "max_level", 0)
		if !ok {
			return
		}

		rows, err := h.service.XPTable(r.Context(), maxLevel)
		if err != nil {
			respondServiceError(w, r, "Get XP table", err)
			return
		}

		log.Info("Get XP table: success", "levels", len(rows))
		respondJSON(w, http.StatusOK, XPTableResponse{Levels: rows})
	}
}

// ChatLeaderboardResponse wraps the ranked chat leaderboard entries
type ChatLeaderboardResponse struct {
	Entries []progression.LeaderboardEntry `json:"entries"`
}

// HandleLeaderboard returns the top chatters by XP
// @Summary Get chat leaderboard
// @Description Returns the top chatters ranked by cumulative XP
// @Tags progression
// @Produce json
// @Param limit query int false "Number of entries (default 10, max 25)"
// @Success 200 {object} ChatLeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /progression/leaderboard [get]
func (h *ProgressionHandlers) HandleLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		limit, ok := GetOptionalIntParam(r, w, "limit", 0)
		if !ok {
			return
		}

		entries, err := h.service.Leaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "Get chat leaderboard", err)
			return
		}

		log.Info("Get chat leaderboard: success", "entries", len(entries))
		respondJSON(w, http.StatusOK, ChatLeaderboardResponse{Entries: entries})
	}
}
