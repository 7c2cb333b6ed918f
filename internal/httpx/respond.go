// Package httpx exposes the REST surface: a chi router, the bearer-token
// guards, and handlers that translate between JSON requests and the core
// services. Every response uses the same envelope so clients never branch
// on shape, only on the status flag.
package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"foodcourt/internal/core/domain"
)

// envelope is the single response shape of the API.
// Status is true on success; Data is null on errors and deletes.
type envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, envelope{Status: true, Message: message, Data: data})
}

func writeFailure(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, envelope{Status: false, Message: message, Data: nil})
}

// writeError maps a service error onto the wire. Validation and
// precondition failures are client errors; unknown record errors are 404;
// anything else is masked as a generic 500 and logged with its trace id.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		ne *domain.NotFoundError
		pe *domain.PreconditionError
	)
	switch {
	case errors.As(err, &ve):
		writeFailure(w, http.StatusBadRequest, ve.Message)
	case errors.As(err, &pe):
		writeFailure(w, http.StatusBadRequest, pe.Message)
	case errors.As(err, &ne):
		writeFailure(w, http.StatusNotFound, ne.Message)
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeFailure(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Validation("Invalid data")
	}
	return nil
}
