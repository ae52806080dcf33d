package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
)

// ErrorResponse is the uniform error body every endpoint returns. Details
// carries the raw upstream error payload when one is available.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// writeJSON sends a JSON response. Headers must be set before the first
// body write, hence the fixed order here.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error onto its HTTP status. Services return
// apperror sentinels and stay protocol-agnostic; this is the single place
// the translation happens.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrProvider):
			status = http.StatusBadRequest
			errorType = "provider_error"
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
			errorType = "unauthorized"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		case errors.Is(err, apperror.ErrTimeout):
			status = http.StatusGatewayTimeout
			errorType = "timeout"
		case errors.Is(err, apperror.ErrUpstream):
			status = http.StatusInternalServerError
			errorType = "upstream_error"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	// Unknown errors stay opaque; internals never leak to clients.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
