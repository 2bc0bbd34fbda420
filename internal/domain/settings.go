package domain

// DefaultDailyReviewCount is the target review batch size when settings are
// missing or unset.
const DefaultDailyReviewCount = 5

// Settings holds the single application-wide settings row.
type Settings struct {
	ID               string `json:"id"`
	DailyReviewCount int    `json:"daily_review_count"`
	DefaultSort      string `json:"default_sort"`
	Theme            string `json:"theme"`
}

// SettingsRepository defines persistence operations for settings.
type SettingsRepository interface {
	// Get returns the settings row, or nil when none exists yet.
	Get() (*Settings, error)
	Upsert(settings *Settings) (*Settings, error)
}

// SettingsService defines the use-case operations for settings.
type SettingsService interface {
	GetSettings() (*Settings, error)
	UpdateSettings(dailyReviewCount *int, defaultSort, theme *string) (*Settings, error)
}
