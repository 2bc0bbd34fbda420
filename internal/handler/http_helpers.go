package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"freewise-server/internal/domain"
)

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeDomainError maps domain errors to HTTP responses.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, domain.ErrHighlightNotFound),
		errors.Is(err, domain.ErrBookNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrReviewSessionNotFound):
		writeError(w, http.StatusGone, err.Error())
	case errors.Is(err, domain.ErrHighlightDiscarded),
		errors.Is(err, domain.ErrStaleReview):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidAction):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
