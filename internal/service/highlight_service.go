package service

import (
	"time"

	"freewise-server/internal/domain"
)

type highlightService struct {
	repo   domain.HighlightRepository
	logger domain.Logger
}

func NewHighlightService(repo domain.HighlightRepository, logger domain.Logger) domain.HighlightService {
	return &highlightService{
		repo:   repo,
		logger: logger,
	}
}

func (s *highlightService) CreateHighlight(highlight *domain.Highlight, now time.Time) (*domain.Highlight, error) {
	if highlight == nil {
		return nil, &domain.ValidationError{Message: "highlight is required"}
	}
	if highlight.Text == "" {
		return nil, &domain.ValidationError{Field: "text", Message: "is required"}
	}
	// Imported highlights may legitimately have no creation date; direct
	// creations get one.
	if highlight.CreatedAt == nil {
		t := now
		highlight.CreatedAt = &t
	}
	highlight.UpdatedAt = now

	created, err := s.repo.Create(highlight)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Highlight created", "highlight_id", created.ID)
	return created, nil
}

func (s *highlightService) GetHighlight(id string) (*domain.Highlight, error) {
	return s.repo.GetByID(id)
}

func (s *highlightService) ListHighlights(filter domain.HighlightFilter) ([]*domain.Highlight, error) {
	return s.repo.List(filter)
}

func (s *highlightService) UpdateHighlight(id string, text *string, note *string, now time.Time) (*domain.Highlight, error) {
	h, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if text != nil {
		if *text == "" {
			return nil, &domain.ValidationError{Field: "text", Message: "cannot be empty"}
		}
		h.Text = *text
	}
	if note != nil {
		h.Note = note
	}
	h.UpdatedAt = now
	return s.repo.Update(h)
}

func (s *highlightService) DeleteHighlight(id string) error {
	if id == "" {
		return &domain.ValidationError{Field: "id", Message: "is required"}
	}
	return s.repo.Delete(id)
}

// FavoriteHighlight marks a highlight as favorited. Favoriting a discarded
// highlight is rejected; it must be restored first.
func (s *highlightService) FavoriteHighlight(id string, now time.Time) (*domain.Highlight, error) {
	h, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if h.IsDiscarded {
		return nil, domain.ErrHighlightDiscarded
	}
	if h.IsFavorited {
		return h, nil
	}
	h.IsFavorited = true
	h.UpdatedAt = now
	return s.repo.Update(h)
}

// DiscardHighlight removes a highlight from the review pool. Discard takes
// precedence over favorite: the favorite flag is cleared.
func (s *highlightService) DiscardHighlight(id string, now time.Time) (*domain.Highlight, error) {
	h, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	h.IsDiscarded = true
	h.IsFavorited = false
	h.UpdatedAt = now
	updated, err := s.repo.Update(h)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Highlight discarded", "highlight_id", id)
	return updated, nil
}

func (s *highlightService) RestoreHighlight(id string, now time.Time) (*domain.Highlight, error) {
	h, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !h.IsDiscarded {
		return h, nil
	}
	h.IsDiscarded = false
	h.UpdatedAt = now
	return s.repo.Update(h)
}
