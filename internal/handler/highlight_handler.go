package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"freewise-server/internal/domain"

	"github.com/gorilla/mux"
)

// HighlightHandler handles highlight-related HTTP requests.
type HighlightHandler struct {
	highlightService domain.HighlightService
	logger           domain.Logger
}

func NewHighlightHandler(highlightService domain.HighlightService, logger domain.Logger) *HighlightHandler {
	return &HighlightHandler{
		highlightService: highlightService,
		logger:           logger,
	}
}

type createHighlightRequest struct {
	BookID    *string    `json:"book_id,omitempty"`
	Text      string     `json:"text"`
	Note      *string    `json:"note,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CreateHighlight handles POST /highlights
func (h *HighlightHandler) CreateHighlight(w http.ResponseWriter, r *http.Request) {
	var req createHighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	created, err := h.highlightService.CreateHighlight(&domain.Highlight{
		BookID:    req.BookID,
		Text:      req.Text,
		Note:      req.Note,
		CreatedAt: req.CreatedAt,
	}, time.Now().UTC())
	if err != nil {
		h.logger.Error("Failed to create highlight", err)
		writeDomainError(w, err, "Failed to create highlight")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListHighlights handles GET /highlights?book_id=...&favorited=...&discarded=...&limit=...
func (h *HighlightHandler) ListHighlights(w http.ResponseWriter, r *http.Request) {
	var filter domain.HighlightFilter

	if bookID := r.URL.Query().Get("book_id"); bookID != "" {
		filter.BookID = &bookID
	}
	if raw := r.URL.Query().Get("favorited"); raw != "" {
		favorited := raw == "true"
		filter.Favorited = &favorited
	}
	if raw := r.URL.Query().Get("discarded"); raw != "" {
		discarded := raw == "true"
		filter.Discarded = &discarded
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	highlights, err := h.highlightService.ListHighlights(filter)
	if err != nil {
		h.logger.Error("Failed to list highlights", err)
		writeDomainError(w, err, "Failed to retrieve highlights")
		return
	}
	if highlights == nil {
		highlights = make([]*domain.Highlight, 0)
	}
	writeJSON(w, http.StatusOK, highlights)
}

// GetHighlight handles GET /highlights/{id}
func (h *HighlightHandler) GetHighlight(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	highlight, err := h.highlightService.GetHighlight(id)
	if err != nil {
		writeDomainError(w, err, "Failed to retrieve highlight")
		return
	}
	writeJSON(w, http.StatusOK, highlight)
}

type updateHighlightRequest struct {
	Text *string `json:"text,omitempty"`
	Note *string `json:"note,omitempty"`
}

// UpdateHighlight handles PUT /highlights/{id}
func (h *HighlightHandler) UpdateHighlight(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req updateHighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.highlightService.UpdateHighlight(id, req.Text, req.Note, time.Now().UTC())
	if err != nil {
		h.logger.Error("Failed to update highlight", err, "highlight_id", id)
		writeDomainError(w, err, "Failed to update highlight")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteHighlight handles DELETE /highlights/{id}
func (h *HighlightHandler) DeleteHighlight(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.highlightService.DeleteHighlight(id); err != nil {
		h.logger.Error("Failed to delete highlight", err, "highlight_id", id)
		writeDomainError(w, err, "Failed to delete highlight")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FavoriteHighlight handles POST /highlights/{id}/favorite
func (h *HighlightHandler) FavoriteHighlight(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	updated, err := h.highlightService.FavoriteHighlight(id, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err, "Failed to favorite highlight")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DiscardHighlight handles POST /highlights/{id}/discard
func (h *HighlightHandler) DiscardHighlight(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	updated, err := h.highlightService.DiscardHighlight(id, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err, "Failed to discard highlight")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// RestoreHighlight handles POST /highlights/{id}/restore
func (h *HighlightHandler) RestoreHighlight(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	updated, err := h.highlightService.RestoreHighlight(id, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err, "Failed to restore highlight")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
