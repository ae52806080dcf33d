// Package apperror defines the application's error taxonomy. Services
// return these; the HTTP layer maps them to status codes in one place.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrProvider marks a request the upstream provider accepted but
	// rejected at the API level (e.g. GraphQL errors in a 200 response).
	ErrProvider = errors.New("provider error")
	// ErrUpstream marks a transport-level upstream failure (network error,
	// non-2xx status, malformed body).
	ErrUpstream = errors.New("upstream failure")
	// ErrTimeout is kept distinct from ErrUpstream: a slow provider does
	// not mean the caller's token is invalid, and clients treat the two
	// differently.
	ErrTimeout = errors.New("timed out")
)

// AppError carries a sentinel for classification, a human-readable message,
// and optionally the raw upstream error body for diagnostics.
type AppError struct {
	Err     error
	Message string
	Details string // raw provider error body, when available
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

func NotFound(resource, name string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, name),
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: message}
}

func Provider(message, details string) *AppError {
	return &AppError{Err: ErrProvider, Message: message, Details: details}
}

func Upstream(message, details string) *AppError {
	return &AppError{Err: ErrUpstream, Message: message, Details: details}
}

func Timeout(message string) *AppError {
	return &AppError{Err: ErrTimeout, Message: message}
}
