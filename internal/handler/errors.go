package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atulmcoder/sbsauto2Server/internal/errs"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// WriteError sends a JSON error response.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{OK: false, Message: message})
}

// WriteJSON sends a successful JSON response.
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// StatusFromError maps the error taxonomy onto fixed HTTP statuses.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidCredentials),
		errors.Is(err, errs.ErrMalformedAuthHeader),
		errors.Is(err, errs.ErrInvalidOrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
