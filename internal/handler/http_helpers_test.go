package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freewise-server/internal/domain"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, "nope")

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"nope"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &domain.ValidationError{Field: "text", Message: "is required"}, http.StatusBadRequest},
		{"highlight not found", domain.ErrHighlightNotFound, http.StatusNotFound},
		{"book not found", domain.ErrBookNotFound, http.StatusNotFound},
		{"session gone", domain.ErrReviewSessionNotFound, http.StatusGone},
		{"discarded conflict", domain.ErrHighlightDiscarded, http.StatusConflict},
		{"stale review conflict", domain.ErrStaleReview, http.StatusConflict},
		{"invalid action", domain.ErrInvalidAction, http.StatusBadRequest},
		{"unknown", http.ErrServerClosed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeDomainError(rr, tt.err, "fallback")
			if rr.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, rr.Code)
			}
		})
	}
}
