package handler

import (
	"net/http"
	"time"

	"freewise-server/internal/domain"
)

// DashboardHandler handles dashboard HTTP requests.
type DashboardHandler struct {
	dashboardService domain.DashboardService
	logger           domain.Logger
}

func NewDashboardHandler(dashboardService domain.DashboardService, logger domain.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetStats handles GET /dashboard
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(time.Now().UTC())
	if err != nil {
		h.logger.Error("Failed to compute dashboard stats", err)
		writeDomainError(w, err, "Failed to compute dashboard statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
