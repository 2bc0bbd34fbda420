package handler

import (
	"time"

	"freewise-server/internal/domain"
)

type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// mockReviewService lets each test stub just the call it exercises.
type mockReviewService struct {
	currentFn func(sessionToken string, forceReset bool, now time.Time) (*domain.ReviewCurrent, error)
	advanceFn func(sessionToken, highlightID string, action domain.ReviewAction, now time.Time) (*domain.ReviewAdvance, error)
	selectFn  func(n int, now time.Time) ([]*domain.Highlight, error)
}

func (m *mockReviewService) Current(sessionToken string, forceReset bool, now time.Time) (*domain.ReviewCurrent, error) {
	return m.currentFn(sessionToken, forceReset, now)
}

func (m *mockReviewService) Advance(sessionToken, highlightID string, action domain.ReviewAction, now time.Time) (*domain.ReviewAdvance, error) {
	return m.advanceFn(sessionToken, highlightID, action, now)
}

func (m *mockReviewService) SelectForReview(n int, now time.Time) ([]*domain.Highlight, error) {
	return m.selectFn(n, now)
}

type mockHighlightService struct {
	createFn   func(h *domain.Highlight, now time.Time) (*domain.Highlight, error)
	getFn      func(id string) (*domain.Highlight, error)
	listFn     func(filter domain.HighlightFilter) ([]*domain.Highlight, error)
	updateFn   func(id string, text, note *string, now time.Time) (*domain.Highlight, error)
	deleteFn   func(id string) error
	favoriteFn func(id string, now time.Time) (*domain.Highlight, error)
	discardFn  func(id string, now time.Time) (*domain.Highlight, error)
	restoreFn  func(id string, now time.Time) (*domain.Highlight, error)
}

func (m *mockHighlightService) CreateHighlight(h *domain.Highlight, now time.Time) (*domain.Highlight, error) {
	return m.createFn(h, now)
}

func (m *mockHighlightService) GetHighlight(id string) (*domain.Highlight, error) {
	return m.getFn(id)
}

func (m *mockHighlightService) ListHighlights(filter domain.HighlightFilter) ([]*domain.Highlight, error) {
	return m.listFn(filter)
}

func (m *mockHighlightService) UpdateHighlight(id string, text, note *string, now time.Time) (*domain.Highlight, error) {
	return m.updateFn(id, text, note, now)
}

func (m *mockHighlightService) DeleteHighlight(id string) error {
	return m.deleteFn(id)
}

func (m *mockHighlightService) FavoriteHighlight(id string, now time.Time) (*domain.Highlight, error) {
	return m.favoriteFn(id, now)
}

func (m *mockHighlightService) DiscardHighlight(id string, now time.Time) (*domain.Highlight, error) {
	return m.discardFn(id, now)
}

func (m *mockHighlightService) RestoreHighlight(id string, now time.Time) (*domain.Highlight, error) {
	return m.restoreFn(id, now)
}
