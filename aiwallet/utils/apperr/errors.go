// Package apperr holds the error kinds the API maps to HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrConstraint         = errors.New("constraint violation")
)

// ValidationError reports malformed or missing input. It is always raised
// before any write happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError names the missing entity. It matches ErrNotFound.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NotFound reports a missing entity, e.g. "Wallet not found".
func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// Unavailable wraps ErrServiceUnavailable around the collaborator failure.
func Unavailable(msg string, cause error) error {
	return fmt.Errorf("%s: %w", msg, errors.Join(ErrServiceUnavailable, cause))
}

// Status maps an error to the HTTP status code and the message the client sees.
// Unclassified errors become a generic 500 so store details never leak.
func Status(err error) (int, string) {
	var verr *ValidationError
	var nerr *NotFoundError
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.As(err, &nerr):
		return http.StatusNotFound, nerr.Error()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, ErrConstraint):
		return http.StatusConflict, "Resource already exists"
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable, "AI Service Unavailable. Check API Key."
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
