package handler

import (
	"net/http"

	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
)

// AdminHandlers contains HTTP handlers for runtime configuration
type AdminHandlers struct {
	settings *config.SettingsStore
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(settings *config.SettingsStore) *AdminHandlers {
	return &AdminHandlers{settings: settings}
}

// SettingsResponse reports both the stored overrides and the effective snapshot
type SettingsResponse struct {
	Stored    map[string]string   `json:"stored"`
	Effective config.GameSettings `json:"effective"`
}

// HandleGetSettings returns the stored settings and the effective snapshot
// @Summary Get settings
// @Description Returns stored setting overrides alongside the effective parsed snapshot
// @Tags admin
// @Produce json
// @Success 200 {object} SettingsResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/settings [get]
func (h *AdminHandlers) HandleGetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := h.settings.All(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get settings", err)
			return
		}

		respondJSON(w, http.StatusOK, SettingsResponse{
			Stored:    stored,
			Effective: h.settings.Current(),
		})
	}
}

// SetSettingRequest updates one tunable setting.
type SetSettingRequest struct {
	Key   string `json:"key" validate:"required,max=64"`
	Value string `json:"value" validate:"max=500"`
}

// HandleSetSetting persists a setting and reloads the snapshot
// @Summary Update setting
// @Description Persists a setting value and reloads the effective snapshot
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetSettingRequest true "Setting key and value"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/settings [post]
func (h *AdminHandlers) HandleSetSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SetSettingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update setting"); err != nil {
			return
		}

		if !config.KnownKey(req.Key) {
			log.Warn("Update setting: unknown key", "key", req.Key)
			respondError(w, http.StatusBadRequest, "Unknown setting key: "+req.Key)
			return
		}

		if err := h.settings.Set(r.Context(), req.Key, req.Value); err != nil {
			respondServiceError(w, r, "Update setting", err)
			return
		}

		log.Info("Setting updated", "key", req.Key)

		stored, err := h.settings.All(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get settings", err)
			return
		}

		respondJSON(w, http.StatusOK, SettingsResponse{
			Stored:    stored,
			Effective: h.settings.Current(),
		})
	}
}
