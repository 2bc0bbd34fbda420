package handler

import (
	"net/http"

	"freewise-server/internal/domain"
	"freewise-server/internal/service"
)

// ExportHandler handles CSV export HTTP requests.
type ExportHandler struct {
	exportService *service.ExportService
	logger        domain.Logger
}

func NewExportHandler(exportService *service.ExportService, logger domain.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// ExportHighlights handles GET /export/highlights.csv?book_id=...
func (h *ExportHandler) ExportHighlights(w http.ResponseWriter, r *http.Request) {
	var bookID *string
	if raw := r.URL.Query().Get("book_id"); raw != "" {
		bookID = &raw
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="highlights.csv"`)
	if err := h.exportService.WriteCSV(w, bookID); err != nil {
		// Headers are out; log and cut the stream short.
		h.logger.Error("Failed to export highlights", err)
	}
}
