package service

import (
	"sort"
	"time"

	"freewise-server/internal/domain"
)

// heatmapWindow is how far back the activity heatmap reaches.
const heatmapWindow = 52 * 7 * 24 * time.Hour

type dashboardService struct {
	highlights domain.HighlightRepository
	books      domain.BookRepository
	sessions   domain.ReviewSessionRepository
	logger     domain.Logger
}

func NewDashboardService(
	highlights domain.HighlightRepository,
	books domain.BookRepository,
	sessions domain.ReviewSessionRepository,
	logger domain.Logger,
) domain.DashboardService {
	return &dashboardService{
		highlights: highlights,
		books:      books,
		sessions:   sessions,
		logger:     logger,
	}
}

func (s *dashboardService) GetStats(now time.Time) (*domain.DashboardStats, error) {
	books, err := s.books.List()
	if err != nil {
		return nil, err
	}
	highlights, err := s.highlights.List(domain.HighlightFilter{})
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalBooks:      len(books),
		TotalHighlights: len(highlights),
	}
	for _, h := range highlights {
		if h.IsFavorited {
			stats.TotalFavorited++
		}
		if h.IsDiscarded {
			stats.TotalDiscarded++
		}
	}
	stats.ActiveHighlights = stats.TotalHighlights - stats.TotalDiscarded

	dates, err := s.sessions.ListDates()
	if err != nil {
		return nil, err
	}
	stats.CurrentStreak, stats.LongestStreak = calculateStreaks(dates, now)

	cutoff := now.Add(-heatmapWindow).Format(domain.SessionDateFormat)
	completed, err := s.sessions.ListCompletedSince(cutoff)
	if err != nil {
		return nil, err
	}
	heatmap := make(map[string]int)
	for _, sess := range completed {
		heatmap[sess.SessionDate]++
	}
	stats.Heatmap = heatmap

	return stats, nil
}

// calculateStreaks computes the current and longest runs of consecutive
// session dates. The current streak counts only if the most recent session
// was today or yesterday; a pass earlier today does not break a streak that
// is still alive.
func calculateStreaks(sessionDates []string, now time.Time) (current, longest int) {
	unique := make(map[string]struct{}, len(sessionDates))
	days := make([]time.Time, 0, len(sessionDates))
	for _, d := range sessionDates {
		if _, seen := unique[d]; seen {
			continue
		}
		t, err := time.Parse(domain.SessionDateFormat, d)
		if err != nil {
			continue
		}
		unique[d] = struct{}{}
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0, 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	// Longest: scan ascending for runs of day-adjacent dates.
	longest = 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	// Current: walk back from the most recent date, which must be today or
	// yesterday for the streak to be alive.
	today, _ := time.Parse(domain.SessionDateFormat, now.Format(domain.SessionDateFormat))
	latest := days[len(days)-1]
	if today.Sub(latest) > 24*time.Hour {
		return 0, longest
	}
	current = 1
	for i := len(days) - 2; i >= 0; i-- {
		if days[i+1].Sub(days[i]) != 24*time.Hour {
			break
		}
		current++
	}
	return current, longest
}
