package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freewise-server/internal/config"
)

func TestNewRouter_Health(t *testing.T) {
	container := &config.Container{
		Logger:           &mockLogger{},
		HighlightService: &mockHighlightService{},
		ReviewService:    &mockReviewService{},
	}
	router := NewRouter(container)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}
