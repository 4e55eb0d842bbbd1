package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/plannerhq/backend/internal/domain"
)

// errorResponse is the body of every non-2xx response.
// Errors is populated only for schema-validation failures, keyed by field.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// respondJSON writes v as the response body with the given status.
// Encoding failures at this point cannot be reported to the client; they
// are logged and the connection is left to die.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// clientError writes a 400 with a human-readable message. Used for domain
// client errors: not-found and business-rule validation failures.
func clientError(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}

// schemaError writes a 400 with a field-level breakdown of what failed
// request-shape validation.
func schemaError(w http.ResponseWriter, fields map[string][]string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid inputs", Errors: fields})
}

// serverError logs the full error and writes a generic 500. Internal
// detail never reaches the caller.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}

// respondDomainError maps a service-layer error onto the wire contract:
// not-found and validation failures become 400 client errors, everything
// else a logged 500. notFoundMessage names the resource being looked up.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		clientError(w, notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		clientError(w, validationMessage(err))
	default:
		serverError(w, r, err)
	}
}

// validationMessage extracts the human-readable part from a wrapped
// validation error: "service.TripService.Create: validation error:
// destination too short" becomes "destination too short".
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// validEmail reports whether s is a bare RFC 5322 address (no display name).
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
