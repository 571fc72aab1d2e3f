package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/savingsgl/internal/adapter/http/dto"
	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrInconsistentLedger),
		errors.Is(err, domain.ErrSplitOverAllocation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
