package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"freewise-server/internal/domain"
)

// ExportService writes highlights out as CSV. The first columns follow the
// Readwise export schema so the file can be re-imported into other reading
// tools; review metadata columns are appended after that block.
type ExportService struct {
	highlights domain.HighlightRepository
	books      domain.BookRepository
	logger     domain.Logger
}

func NewExportService(highlights domain.HighlightRepository, books domain.BookRepository, logger domain.Logger) *ExportService {
	return &ExportService{
		highlights: highlights,
		books:      books,
		logger:     logger,
	}
}

var exportHeader = []string{
	// Readwise-compatible block
	"Highlight", "Book Title", "Book Author", "Note", "Highlighted at",
	// Review metadata
	"highlight_id", "book_id", "is_favorited", "is_discarded",
	"last_reviewed_at", "review_count", "created_at",
}

// WriteCSV streams all highlights (optionally limited to one book) to w.
func (s *ExportService) WriteCSV(w io.Writer, bookID *string) error {
	highlights, err := s.highlights.List(domain.HighlightFilter{BookID: bookID})
	if err != nil {
		return fmt.Errorf("failed to load highlights for export: %w", err)
	}
	books, err := s.books.List()
	if err != nil {
		return fmt.Errorf("failed to load books for export: %w", err)
	}
	byID := make(map[string]*domain.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, h := range highlights {
		title, author, bid := "", "", ""
		if h.BookID != nil {
			bid = *h.BookID
			if b, ok := byID[bid]; ok {
				title = b.Title
				if b.Author != nil {
					author = *b.Author
				}
			}
		}
		note := ""
		if h.Note != nil {
			note = *h.Note
		}
		record := []string{
			h.Text, title, author, note, formatTimePtr(h.CreatedAt),
			h.ID, bid,
			strconv.FormatBool(h.IsFavorited), strconv.FormatBool(h.IsDiscarded),
			formatTimePtr(h.LastReviewedAt), strconv.Itoa(h.ReviewCount),
			formatTimePtr(h.CreatedAt),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	s.logger.Info("Highlights exported", "count", len(highlights))
	return nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
