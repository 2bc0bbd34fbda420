package handler

import (
	"encoding/json"
	"net/http"

	"freewise-server/internal/domain"
)

// SettingsHandler handles settings HTTP requests.
type SettingsHandler struct {
	settingsService domain.SettingsService
	logger          domain.Logger
}

func NewSettingsHandler(settingsService domain.SettingsService, logger domain.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		h.logger.Error("Failed to get settings", err)
		writeDomainError(w, err, "Failed to retrieve settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type updateSettingsRequest struct {
	DailyReviewCount *int    `json:"daily_review_count,omitempty"`
	DefaultSort      *string `json:"default_sort,omitempty"`
	Theme            *string `json:"theme,omitempty"`
}

// UpdateSettings handles PUT /settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(req.DailyReviewCount, req.DefaultSort, req.Theme)
	if err != nil {
		h.logger.Error("Failed to update settings", err)
		writeDomainError(w, err, "Failed to update settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
