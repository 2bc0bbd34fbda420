package domain

import "time"

// Review weight bounds. 0.0 means a book's highlights never surface in
// review; 2.0 means they surface twice as often as the default.
const (
	MinReviewWeight     = 0.0
	MaxReviewWeight     = 2.0
	DefaultReviewWeight = 1.0
)

// Book groups highlights sharing a source and carries the review-weight
// multiplier consumed by selection.
type Book struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       *string   `json:"author,omitempty"`
	ReviewWeight float64   `json:"review_weight"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClampReviewWeight forces w into [MinReviewWeight, MaxReviewWeight].
// Weights are clamped on every write so stored values are always in range.
func ClampReviewWeight(w float64) float64 {
	if w < MinReviewWeight {
		return MinReviewWeight
	}
	if w > MaxReviewWeight {
		return MaxReviewWeight
	}
	return w
}

// BookRepository defines persistence operations for books.
type BookRepository interface {
	Create(book *Book) (*Book, error)
	GetByID(id string) (*Book, error)
	List() ([]*Book, error)
	Update(book *Book) (*Book, error)
}

// BookService defines the use-case operations for books.
type BookService interface {
	CreateBook(title string, author *string, reviewWeight *float64, now time.Time) (*Book, error)
	GetBook(id string) (*Book, error)
	ListBooks() ([]*Book, error)
	UpdateBook(id string, title, author *string, reviewWeight *float64, now time.Time) (*Book, error)
}
