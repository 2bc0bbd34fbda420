package repository

import (
	"encoding/json"
	"fmt"

	"freewise-server/internal/domain"
)

// SettingsRepository implements the domain.SettingsRepository interface using Supabase.
// The settings table holds a single row.
type SettingsRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewSettingsRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.SettingsRepository {
	return &SettingsRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *SettingsRepository) Get() (*domain.Settings, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("settings").
		Select("*", "", false).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mapToSettings(rows[0]), nil
}

func (r *SettingsRepository) Upsert(settings *domain.Settings) (*domain.Settings, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"daily_review_count": settings.DailyReviewCount,
		"default_sort":       settings.DefaultSort,
		"theme":              settings.Theme,
	}

	var data []byte
	var err error
	if settings.ID == "" {
		data, _, err = client.From("settings").
			Insert(row, false, "", "representation", "").
			Execute()
	} else {
		data, _, err = client.From("settings").
			Update(row, "representation", "").
			Eq("id", settings.ID).
			Execute()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert settings: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to upsert settings: empty response")
	}
	return mapToSettings(rows[0]), nil
}

func mapToSettings(data map[string]interface{}) *domain.Settings {
	return &domain.Settings{
		ID:               getString(data, "id"),
		DailyReviewCount: getInt(data, "daily_review_count"),
		DefaultSort:      getString(data, "default_sort"),
		Theme:            getString(data, "theme"),
	}
}
