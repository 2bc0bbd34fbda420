package domain

import "time"

// DashboardStats is the aggregate view rendered by the dashboard: library
// totals plus review-history analytics derived from ReviewSession rows.
type DashboardStats struct {
	TotalBooks       int            `json:"total_books"`
	TotalHighlights  int            `json:"total_highlights"`
	TotalFavorited   int            `json:"total_favorited"`
	TotalDiscarded   int            `json:"total_discarded"`
	ActiveHighlights int            `json:"active_highlights"`
	CurrentStreak    int            `json:"current_streak"`
	LongestStreak    int            `json:"longest_streak"`
	Heatmap          map[string]int `json:"heatmap"`
}

// DashboardService computes dashboard statistics.
type DashboardService interface {
	GetStats(now time.Time) (*DashboardStats, error)
}
