package repository

import (
	"encoding/json"
	"fmt"

	"freewise-server/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

// BookRepository implements the domain.BookRepository interface using Supabase.
type BookRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewBookRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.BookRepository {
	return &BookRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *BookRepository) Create(book *domain.Book) (*domain.Book, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"title":         book.Title,
		"review_weight": domain.ClampReviewWeight(book.ReviewWeight),
		"created_at":    book.CreatedAt,
		"updated_at":    book.UpdatedAt,
	}
	if book.Author != nil {
		row["author"] = *book.Author
	}

	data, _, err := client.From("books").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to create book: empty response")
	}
	return mapToBook(rows[0]), nil
}

func (r *BookRepository) GetByID(id string) (*domain.Book, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("books").
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrBookNotFound
	}
	return mapToBook(rows[0]), nil
}

func (r *BookRepository) List() ([]*domain.Book, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("books").
		Select("*", "", false).
		Order("title", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	out := make([]*domain.Book, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapToBook(row))
	}
	return out, nil
}

func (r *BookRepository) Update(book *domain.Book) (*domain.Book, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"title":         book.Title,
		"author":        book.Author,
		"review_weight": domain.ClampReviewWeight(book.ReviewWeight),
		"updated_at":    book.UpdatedAt,
	}

	data, _, err := client.From("books").
		Update(row, "representation", "").
		Eq("id", book.ID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrBookNotFound
	}
	return mapToBook(rows[0]), nil
}

func mapToBook(data map[string]interface{}) *domain.Book {
	return &domain.Book{
		ID:           getString(data, "id"),
		Title:        getString(data, "title"),
		Author:       getStringPtr(data, "author"),
		ReviewWeight: getFloat(data, "review_weight"),
		CreatedAt:    getTime(data, "created_at"),
		UpdatedAt:    getTime(data, "updated_at"),
	}
}
