package service

import (
	"fmt"

	"freewise-server/internal/domain"
)

// Mock logger used by service package tests.
type mockLogger struct{}

func NewMockLogger() domain.Logger { return &mockLogger{} }

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

type mockHighlightRepo struct {
	highlights map[string]*domain.Highlight
	nextID     int
}

func newMockHighlightRepo() *mockHighlightRepo {
	return &mockHighlightRepo{highlights: make(map[string]*domain.Highlight)}
}

func (m *mockHighlightRepo) put(h *domain.Highlight) {
	cp := *h
	m.highlights[h.ID] = &cp
}

func (m *mockHighlightRepo) Create(h *domain.Highlight) (*domain.Highlight, error) {
	m.nextID++
	cp := *h
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("h-%d", m.nextID)
	}
	m.highlights[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *mockHighlightRepo) GetByID(id string) (*domain.Highlight, error) {
	h, ok := m.highlights[id]
	if !ok {
		return nil, domain.ErrHighlightNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *mockHighlightRepo) List(filter domain.HighlightFilter) ([]*domain.Highlight, error) {
	out := make([]*domain.Highlight, 0, len(m.highlights))
	for _, h := range m.highlights {
		if filter.BookID != nil && (h.BookID == nil || *h.BookID != *filter.BookID) {
			continue
		}
		if filter.Favorited != nil && h.IsFavorited != *filter.Favorited {
			continue
		}
		if filter.Discarded != nil && h.IsDiscarded != *filter.Discarded {
			continue
		}
		cp := *h
		out = append(out, &cp)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockHighlightRepo) ListEligible() ([]*domain.Highlight, error) {
	discarded := false
	return m.List(domain.HighlightFilter{Discarded: &discarded})
}

func (m *mockHighlightRepo) Update(h *domain.Highlight) (*domain.Highlight, error) {
	if _, ok := m.highlights[h.ID]; !ok {
		return nil, domain.ErrHighlightNotFound
	}
	cp := *h
	m.highlights[h.ID] = &cp
	out := cp
	return &out, nil
}

func (m *mockHighlightRepo) Delete(id string) error {
	delete(m.highlights, id)
	return nil
}

type mockBookRepo struct {
	books  map[string]*domain.Book
	nextID int
}

func newMockBookRepo() *mockBookRepo {
	return &mockBookRepo{books: make(map[string]*domain.Book)}
}

func (m *mockBookRepo) put(b *domain.Book) {
	cp := *b
	m.books[b.ID] = &cp
}

func (m *mockBookRepo) Create(b *domain.Book) (*domain.Book, error) {
	m.nextID++
	cp := *b
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("b-%d", m.nextID)
	}
	m.books[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *mockBookRepo) GetByID(id string) (*domain.Book, error) {
	b, ok := m.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockBookRepo) List() ([]*domain.Book, error) {
	out := make([]*domain.Book, 0, len(m.books))
	for _, b := range m.books {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockBookRepo) Update(b *domain.Book) (*domain.Book, error) {
	if _, ok := m.books[b.ID]; !ok {
		return nil, domain.ErrBookNotFound
	}
	cp := *b
	m.books[b.ID] = &cp
	out := cp
	return &out, nil
}

type mockSessionRepo struct {
	sessions map[string]*domain.ReviewSession // keyed by session_uuid
	nextID   int
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*domain.ReviewSession)}
}

func (m *mockSessionRepo) Create(s *domain.ReviewSession) (*domain.ReviewSession, error) {
	m.nextID++
	cp := *s
	cp.ID = fmt.Sprintf("rs-%d", m.nextID)
	m.sessions[cp.SessionUUID] = &cp
	out := cp
	return &out, nil
}

func (m *mockSessionRepo) GetByUUID(sessionUUID string) (*domain.ReviewSession, error) {
	s, ok := m.sessions[sessionUUID]
	if !ok {
		return nil, domain.ErrReviewSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSessionRepo) Update(s *domain.ReviewSession) error {
	if _, ok := m.sessions[s.SessionUUID]; !ok {
		return domain.ErrReviewSessionNotFound
	}
	cp := *s
	m.sessions[s.SessionUUID] = &cp
	return nil
}

func (m *mockSessionRepo) ListDates() ([]string, error) {
	out := make([]string, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s.SessionDate)
	}
	return out, nil
}

func (m *mockSessionRepo) ListCompletedSince(date string) ([]*domain.ReviewSession, error) {
	out := make([]*domain.ReviewSession, 0)
	for _, s := range m.sessions {
		if s.IsCompleted && s.SessionDate >= date {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type mockSettingsRepo struct {
	settings *domain.Settings
}

func (m *mockSettingsRepo) Get() (*domain.Settings, error) {
	if m.settings == nil {
		return nil, nil
	}
	cp := *m.settings
	return &cp, nil
}

func (m *mockSettingsRepo) Upsert(s *domain.Settings) (*domain.Settings, error) {
	cp := *s
	if cp.ID == "" {
		cp.ID = "settings-1"
	}
	m.settings = &cp
	out := cp
	return &out, nil
}
