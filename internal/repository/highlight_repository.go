package repository

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"freewise-server/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

// HighlightRepository implements the domain.HighlightRepository interface using Supabase.
type HighlightRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewHighlightRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.HighlightRepository {
	return &HighlightRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *HighlightRepository) Create(highlight *domain.Highlight) (*domain.Highlight, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"text":             sanitizeText(highlight.Text),
		"updated_at":       highlight.UpdatedAt,
		"last_reviewed_at": highlight.LastReviewedAt,
		"review_count":     highlight.ReviewCount,
		"is_discarded":     highlight.IsDiscarded,
		"is_favorited":     highlight.IsFavorited,
	}
	if highlight.BookID != nil {
		row["book_id"] = *highlight.BookID
	}
	if highlight.Note != nil {
		row["note"] = sanitizeText(*highlight.Note)
	}
	if highlight.CreatedAt != nil {
		row["created_at"] = *highlight.CreatedAt
	}

	// Request "representation" so PostgREST returns the inserted row.
	data, _, err := client.From("highlights").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create highlight: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to create highlight: empty response")
	}
	return mapToHighlight(rows[0]), nil
}

func (r *HighlightRepository) GetByID(id string) (*domain.Highlight, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("highlights").
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get highlight: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrHighlightNotFound
	}
	return mapToHighlight(rows[0]), nil
}

func (r *HighlightRepository) List(filter domain.HighlightFilter) ([]*domain.Highlight, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	q := client.From("highlights").
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})

	if filter.BookID != nil && *filter.BookID != "" {
		q = q.Eq("book_id", *filter.BookID)
	}
	if filter.Favorited != nil {
		q = q.Eq("is_favorited", formatBool(*filter.Favorited))
	}
	if filter.Discarded != nil {
		q = q.Eq("is_discarded", formatBool(*filter.Discarded))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit, "")
	}

	data, _, err := q.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list highlights: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	out := make([]*domain.Highlight, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapToHighlight(row))
	}
	return out, nil
}

func (r *HighlightRepository) ListEligible() ([]*domain.Highlight, error) {
	discarded := false
	return r.List(domain.HighlightFilter{Discarded: &discarded})
}

func (r *HighlightRepository) Update(highlight *domain.Highlight) (*domain.Highlight, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"text":             sanitizeText(highlight.Text),
		"note":             highlight.Note,
		"book_id":          highlight.BookID,
		"updated_at":       highlight.UpdatedAt,
		"last_reviewed_at": highlight.LastReviewedAt,
		"review_count":     highlight.ReviewCount,
		"is_discarded":     highlight.IsDiscarded,
		"is_favorited":     highlight.IsFavorited,
	}

	data, _, err := client.From("highlights").
		Update(row, "representation", "").
		Eq("id", highlight.ID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update highlight: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrHighlightNotFound
	}
	return mapToHighlight(rows[0]), nil
}

func (r *HighlightRepository) Delete(id string) error {
	client := r.supabaseClient.DB()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	_, _, err := client.From("highlights").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete highlight: %w", err)
	}
	return nil
}

func mapToHighlight(data map[string]interface{}) *domain.Highlight {
	return &domain.Highlight{
		ID:             getString(data, "id"),
		BookID:         getStringPtr(data, "book_id"),
		Text:           getString(data, "text"),
		Note:           getStringPtr(data, "note"),
		CreatedAt:      getTimePtr(data, "created_at"),
		UpdatedAt:      getTime(data, "updated_at"),
		LastReviewedAt: getTimePtr(data, "last_reviewed_at"),
		ReviewCount:    getInt(data, "review_count"),
		IsDiscarded:    getBool(data, "is_discarded"),
		IsFavorited:    getBool(data, "is_favorited"),
	}
}

var reControl = regexp.MustCompile(`[\x00]`)

// sanitizeText removes characters that PostgreSQL rejects in text fields (notably NUL bytes).
func sanitizeText(s string) string {
	if s == "" {
		return s
	}
	s = reControl.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\\u0000", "")
	s = strings.ReplaceAll(s, "\u0000", "")
	return s
}
