package service

import (
	"freewise-server/internal/domain"
)

type settingsService struct {
	repo   domain.SettingsRepository
	logger domain.Logger
}

func NewSettingsService(repo domain.SettingsRepository, logger domain.Logger) domain.SettingsService {
	return &settingsService{
		repo:   repo,
		logger: logger,
	}
}

// GetSettings returns the settings row, creating defaults when none exists.
func (s *settingsService) GetSettings() (*domain.Settings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return s.repo.Upsert(&domain.Settings{
			DailyReviewCount: domain.DefaultDailyReviewCount,
			DefaultSort:      "created_at",
			Theme:            "light",
		})
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(dailyReviewCount *int, defaultSort, theme *string) (*domain.Settings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	if dailyReviewCount != nil {
		if *dailyReviewCount < 1 {
			return nil, &domain.ValidationError{Field: "daily_review_count", Message: "must be at least 1"}
		}
		settings.DailyReviewCount = *dailyReviewCount
	}
	if defaultSort != nil {
		settings.DefaultSort = *defaultSort
	}
	if theme != nil {
		settings.Theme = *theme
	}
	return s.repo.Upsert(settings)
}
