package domain

import "time"

// ReviewAction is what the user did with the current card in a pass.
type ReviewAction string

const (
	ActionReviewed  ReviewAction = "reviewed"
	ActionDiscarded ReviewAction = "discarded"
	ActionFavorited ReviewAction = "favorited"
)

// SessionDateFormat is the layout of ReviewSession.SessionDate: a pure
// calendar date with no time component. Streak and heatmap queries depend
// on this shape.
const SessionDateFormat = "2006-01-02"

// ReviewSession is the durable log row for one review pass. It is created
// when a pass begins, its counters are bumped on every advance, and it is
// finalized exactly once when the queue is exhausted. Rows are never deleted;
// the dashboard computes streaks and heatmaps from them.
type ReviewSession struct {
	ID                  string     `json:"id"`
	SessionUUID         string     `json:"session_uuid"`
	StartedAt           time.Time  `json:"started_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	SessionDate         string     `json:"session_date"`
	TargetCount         int        `json:"target_count"`
	HighlightsReviewed  int        `json:"highlights_reviewed"`
	HighlightsDiscarded int        `json:"highlights_discarded"`
	HighlightsFavorited int        `json:"highlights_favorited"`
	IsCompleted         bool       `json:"is_completed"`
}

// ReviewSessionRepository defines persistence operations for review sessions.
type ReviewSessionRepository interface {
	Create(session *ReviewSession) (*ReviewSession, error)
	GetByUUID(sessionUUID string) (*ReviewSession, error)
	Update(session *ReviewSession) error
	// ListDates returns the session_date of every recorded session, most
	// recent first, duplicates included.
	ListDates() ([]string, error)
	ListCompletedSince(date string) ([]*ReviewSession, error)
}

// ReviewCurrent describes the card at the head of a live pass. Item is nil
// and Total is 0 when there is nothing to review.
type ReviewCurrent struct {
	Item         *Highlight `json:"item"`
	Position     int        `json:"position"`
	Total        int        `json:"total"`
	SessionToken string     `json:"session_token"`
}

// ReviewAdvance is the result of acting on the current card. NextItem is nil
// when the pass just completed.
type ReviewAdvance struct {
	NextItem  *Highlight `json:"next_item"`
	Position  int        `json:"position"`
	Total     int        `json:"total"`
	Completed bool       `json:"completed"`
}

// ReviewService is the review core: batch selection plus the resumable
// session state machine. Callers supply now explicitly so time-decay and
// expiry behavior stay deterministic under test.
type ReviewService interface {
	Current(sessionToken string, forceReset bool, now time.Time) (*ReviewCurrent, error)
	Advance(sessionToken, highlightID string, action ReviewAction, now time.Time) (*ReviewAdvance, error)
	SelectForReview(n int, now time.Time) ([]*Highlight, error)
}
