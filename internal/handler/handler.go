package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"flower-shop/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeError writes a standardised error response.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error to a response: domain errors are
// client errors, everything else is a 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, http.StatusBadRequest, domainErr.Code, domainErr.Message, logger)
		return
	}
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}
