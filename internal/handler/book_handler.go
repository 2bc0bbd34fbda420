package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"freewise-server/internal/domain"

	"github.com/gorilla/mux"
)

// BookHandler handles book-related HTTP requests.
type BookHandler struct {
	bookService      domain.BookService
	highlightService domain.HighlightService
	logger           domain.Logger
}

func NewBookHandler(bookService domain.BookService, highlightService domain.HighlightService, logger domain.Logger) *BookHandler {
	return &BookHandler{
		bookService:      bookService,
		highlightService: highlightService,
		logger:           logger,
	}
}

type createBookRequest struct {
	Title        string   `json:"title"`
	Author       *string  `json:"author,omitempty"`
	ReviewWeight *float64 `json:"review_weight,omitempty"`
}

// CreateBook handles POST /books
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := h.bookService.CreateBook(req.Title, req.Author, req.ReviewWeight, time.Now().UTC())
	if err != nil {
		h.logger.Error("Failed to create book", err, "title", req.Title)
		writeDomainError(w, err, "Failed to create book")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListBooks handles GET /books
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks()
	if err != nil {
		h.logger.Error("Failed to list books", err)
		writeDomainError(w, err, "Failed to retrieve books")
		return
	}
	if books == nil {
		books = make([]*domain.Book, 0)
	}
	writeJSON(w, http.StatusOK, books)
}

type bookDetailResponse struct {
	Book       *domain.Book        `json:"book"`
	Highlights []*domain.Highlight `json:"highlights"`
}

// GetBook handles GET /books/{id} — the book plus all of its highlights.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	book, err := h.bookService.GetBook(id)
	if err != nil {
		writeDomainError(w, err, "Failed to retrieve book")
		return
	}
	highlights, err := h.highlightService.ListHighlights(domain.HighlightFilter{BookID: &id})
	if err != nil {
		h.logger.Error("Failed to list book highlights", err, "book_id", id)
		writeDomainError(w, err, "Failed to retrieve book highlights")
		return
	}
	if highlights == nil {
		highlights = make([]*domain.Highlight, 0)
	}
	writeJSON(w, http.StatusOK, bookDetailResponse{Book: book, Highlights: highlights})
}

type updateBookRequest struct {
	Title        *string  `json:"title,omitempty"`
	Author       *string  `json:"author,omitempty"`
	ReviewWeight *float64 `json:"review_weight,omitempty"`
}

// UpdateBook handles PUT /books/{id}
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.bookService.UpdateBook(id, req.Title, req.Author, req.ReviewWeight, time.Now().UTC())
	if err != nil {
		h.logger.Error("Failed to update book", err, "book_id", id)
		writeDomainError(w, err, "Failed to update book")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
