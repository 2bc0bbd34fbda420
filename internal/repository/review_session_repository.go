package repository

import (
	"encoding/json"
	"fmt"

	"freewise-server/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

// ReviewSessionRepository implements the domain.ReviewSessionRepository interface using Supabase.
type ReviewSessionRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewReviewSessionRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.ReviewSessionRepository {
	return &ReviewSessionRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *ReviewSessionRepository) Create(session *domain.ReviewSession) (*domain.ReviewSession, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"session_uuid":         session.SessionUUID,
		"started_at":           session.StartedAt,
		"session_date":         session.SessionDate,
		"target_count":         session.TargetCount,
		"highlights_reviewed":  session.HighlightsReviewed,
		"highlights_discarded": session.HighlightsDiscarded,
		"highlights_favorited": session.HighlightsFavorited,
		"is_completed":         session.IsCompleted,
	}

	data, _, err := client.From("review_sessions").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create review session: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to create review session: empty response")
	}
	return mapToReviewSession(rows[0]), nil
}

func (r *ReviewSessionRepository) GetByUUID(sessionUUID string) (*domain.ReviewSession, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("review_sessions").
		Select("*", "", false).
		Eq("session_uuid", sessionUUID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get review session: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrReviewSessionNotFound
	}
	return mapToReviewSession(rows[0]), nil
}

func (r *ReviewSessionRepository) Update(session *domain.ReviewSession) error {
	client := r.supabaseClient.DB()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"highlights_reviewed":  session.HighlightsReviewed,
		"highlights_discarded": session.HighlightsDiscarded,
		"highlights_favorited": session.HighlightsFavorited,
		"is_completed":         session.IsCompleted,
		"completed_at":         session.CompletedAt,
	}

	_, _, err := client.From("review_sessions").
		Update(row, "", "").
		Eq("id", session.ID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update review session: %w", err)
	}
	return nil
}

func (r *ReviewSessionRepository) ListDates() ([]string, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("review_sessions").
		Select("session_date", "", false).
		Order("session_date", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list session dates: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	dates := make([]string, 0, len(rows))
	for _, row := range rows {
		if d := getString(row, "session_date"); d != "" {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

func (r *ReviewSessionRepository) ListCompletedSince(date string) ([]*domain.ReviewSession, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("review_sessions").
		Select("*", "", false).
		Eq("is_completed", "true").
		Gte("session_date", date).
		Order("session_date", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list completed sessions: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	out := make([]*domain.ReviewSession, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapToReviewSession(row))
	}
	return out, nil
}

func mapToReviewSession(data map[string]interface{}) *domain.ReviewSession {
	return &domain.ReviewSession{
		ID:                  getString(data, "id"),
		SessionUUID:         getString(data, "session_uuid"),
		StartedAt:           getTime(data, "started_at"),
		CompletedAt:         getTimePtr(data, "completed_at"),
		SessionDate:         getString(data, "session_date"),
		TargetCount:         getInt(data, "target_count"),
		HighlightsReviewed:  getInt(data, "highlights_reviewed"),
		HighlightsDiscarded: getInt(data, "highlights_discarded"),
		HighlightsFavorited: getInt(data, "highlights_favorited"),
		IsCompleted:         getBool(data, "is_completed"),
	}
}
