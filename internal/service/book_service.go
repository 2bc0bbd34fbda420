package service

import (
	"time"

	"freewise-server/internal/domain"
)

type bookService struct {
	repo   domain.BookRepository
	logger domain.Logger
}

func NewBookService(repo domain.BookRepository, logger domain.Logger) domain.BookService {
	return &bookService{
		repo:   repo,
		logger: logger,
	}
}

func (s *bookService) CreateBook(title string, author *string, reviewWeight *float64, now time.Time) (*domain.Book, error) {
	if title == "" {
		return nil, &domain.ValidationError{Field: "title", Message: "is required"}
	}
	weight := domain.DefaultReviewWeight
	if reviewWeight != nil {
		weight = domain.ClampReviewWeight(*reviewWeight)
	}
	book := &domain.Book{
		Title:        title,
		Author:       author,
		ReviewWeight: weight,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := s.repo.Create(book)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Book created", "book_id", created.ID, "title", created.Title)
	return created, nil
}

func (s *bookService) GetBook(id string) (*domain.Book, error) {
	return s.repo.GetByID(id)
}

func (s *bookService) ListBooks() ([]*domain.Book, error) {
	return s.repo.List()
}

func (s *bookService) UpdateBook(id string, title, author *string, reviewWeight *float64, now time.Time) (*domain.Book, error) {
	book, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if title != nil {
		if *title == "" {
			return nil, &domain.ValidationError{Field: "title", Message: "cannot be empty"}
		}
		book.Title = *title
	}
	if author != nil {
		book.Author = author
	}
	if reviewWeight != nil {
		book.ReviewWeight = domain.ClampReviewWeight(*reviewWeight)
	}
	book.UpdatedAt = now
	return s.repo.Update(book)
}
