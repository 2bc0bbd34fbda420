package domain

import "errors"

// Domain errors
var (
	ErrHighlightNotFound     = errors.New("highlight not found")
	ErrBookNotFound          = errors.New("book not found")
	ErrHighlightDiscarded    = errors.New("highlight is discarded")
	ErrReviewSessionNotFound = errors.New("review session not found")
	ErrStaleReview           = errors.New("highlight is not the current review item")
	ErrInvalidAction         = errors.New("invalid review action")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
