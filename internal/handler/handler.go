// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sanadhub/sanad/internal/handler/dto"
	"github.com/sanadhub/sanad/internal/store"
)

// NotFound handles 404 responses.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
}

// MethodNotAllowed handles 405 responses.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.NewErrorResponse(code, message))
}

// urlID parses the {id} route parameter. A false return means the error
// response has already been written.
func urlID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "ID must be a positive integer")
		return 0, false
	}
	return id, true
}

// decodeJSON decodes the request body into dst. A false return means the
// error response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return false
	}
	return true
}

// writeStoreError maps store validation errors to HTTP responses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown assistance status")
	case errors.Is(err, store.ErrInvalidStatusTransition):
		writeError(w, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Status change violates the review workflow")
	case errors.Is(err, store.ErrNegativeAmount):
		writeError(w, http.StatusBadRequest, "NEGATIVE_AMOUNT", "Amount must be non-negative")
	case errors.Is(err, store.ErrInvalidPaymentMethod):
		writeError(w, http.StatusBadRequest, "INVALID_PAYMENT_METHOD", "Unknown payment method")
	case errors.Is(err, store.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, "INVALID_ROLE", "Unknown user role")
	case errors.Is(err, store.ErrInvalidGender):
		writeError(w, http.StatusBadRequest, "INVALID_GENDER", "Unknown gender value")
	case errors.Is(err, store.ErrEmptyUsername):
		writeError(w, http.StatusBadRequest, "EMPTY_USERNAME", "Username is required")
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
