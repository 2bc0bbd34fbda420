package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"freewise-server/internal/domain"
)

// ReviewHandler handles review-pass HTTP requests.
type ReviewHandler struct {
	reviewService domain.ReviewService
	logger        domain.Logger
}

func NewReviewHandler(reviewService domain.ReviewService, logger domain.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// GetCurrent handles GET /review/current?session_token=...&reset=true
func (h *ReviewHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("session_token")
	reset := r.URL.Query().Get("reset") == "true"

	current, err := h.reviewService.Current(token, reset, time.Now().UTC())
	if err != nil {
		h.logger.Error("Failed to get current review item", err, "session_token", token)
		writeDomainError(w, err, "Failed to get current review item")
		return
	}
	writeJSON(w, http.StatusOK, current)
}

type advanceRequest struct {
	SessionToken string `json:"session_token"`
	HighlightID  string `json:"highlight_id"`
	Action       string `json:"action"`
}

// Advance handles POST /review/advance
func (h *ReviewHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SessionToken == "" {
		writeError(w, http.StatusBadRequest, "session_token is required")
		return
	}
	if req.HighlightID == "" {
		writeError(w, http.StatusBadRequest, "highlight_id is required")
		return
	}

	action := domain.ReviewAction(req.Action)
	switch action {
	case domain.ActionReviewed, domain.ActionDiscarded, domain.ActionFavorited:
	default:
		writeError(w, http.StatusBadRequest, "action must be one of reviewed, discarded, favorited")
		return
	}

	result, err := h.reviewService.Advance(req.SessionToken, req.HighlightID, action, time.Now().UTC())
	if err != nil {
		h.logger.Error("Failed to advance review session", err,
			"session_token", req.SessionToken, "highlight_id", req.HighlightID, "action", req.Action)
		writeDomainError(w, err, "Failed to advance review session")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetSelection handles GET /review/selection?n=... — the batch selector
// without session state, for non-interactive callers.
func (h *ReviewHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	highlights, err := h.reviewService.SelectForReview(n, time.Now().UTC())
	if err != nil {
		h.logger.Error("Failed to select highlights for review", err)
		writeDomainError(w, err, "Failed to select highlights for review")
		return
	}
	if highlights == nil {
		highlights = make([]*domain.Highlight, 0)
	}
	writeJSON(w, http.StatusOK, highlights)
}
