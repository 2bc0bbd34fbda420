package domain

import "time"

// Highlight represents a stored text excerpt with its review metadata.
//
// CreatedAt is nullable: highlights imported from reading apps often have no
// usable date. LastReviewedAt is nil until the highlight has been surfaced in
// a review pass at least once. IsFavorited and IsDiscarded are the single
// canonical flags for their states; a discarded highlight is never favorited
// (discarding clears the flag).
type Highlight struct {
	ID             string     `json:"id"`
	BookID         *string    `json:"book_id,omitempty"`
	Text           string     `json:"text"`
	Note           *string    `json:"note,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	ReviewCount    int        `json:"review_count"`
	IsDiscarded    bool       `json:"is_discarded"`
	IsFavorited    bool       `json:"is_favorited"`
}

// HighlightFilter narrows List queries.
type HighlightFilter struct {
	BookID    *string
	Favorited *bool
	Discarded *bool
	Limit     int
}

// HighlightRepository defines persistence operations for highlights.
type HighlightRepository interface {
	Create(highlight *Highlight) (*Highlight, error)
	GetByID(id string) (*Highlight, error)
	List(filter HighlightFilter) ([]*Highlight, error)
	// ListEligible returns all non-discarded highlights, the candidate pool
	// for review selection.
	ListEligible() ([]*Highlight, error)
	Update(highlight *Highlight) (*Highlight, error)
	Delete(id string) error
}

// HighlightService defines the use-case operations for highlights.
type HighlightService interface {
	CreateHighlight(highlight *Highlight, now time.Time) (*Highlight, error)
	GetHighlight(id string) (*Highlight, error)
	ListHighlights(filter HighlightFilter) ([]*Highlight, error)
	UpdateHighlight(id string, text *string, note *string, now time.Time) (*Highlight, error)
	DeleteHighlight(id string) error
	FavoriteHighlight(id string, now time.Time) (*Highlight, error)
	DiscardHighlight(id string, now time.Time) (*Highlight, error)
	RestoreHighlight(id string, now time.Time) (*Highlight, error)
}
