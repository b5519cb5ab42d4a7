// Package apperror defines the application error taxonomy. Handlers and the
// error middleware map these onto HTTP status codes via StatusCode.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind discriminates the error classes the service produces.
type Kind int

const (
	// KindInput marks a malformed argument, rejected before any fetch.
	KindInput Kind = iota + 1
	// KindFetch marks a storage collaborator failure.
	KindFetch
	// KindNotFound marks a row that does not exist.
	KindNotFound
	// KindInternal marks everything else.
	KindInternal
)

// AppError carries a kind, a caller-facing message and the wrapped cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusCode maps the error kind to an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Input builds an input-validation error.
func Input(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindInput, Message: fmt.Sprintf(format, args...)}
}

// Fetch wraps a storage failure.
func Fetch(message string, err error) *AppError {
	return &AppError{Kind: KindFetch, Message: message, Err: err}
}

// NotFound builds a missing-row error.
func NotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// Internal wraps an unexpected failure.
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal error", Err: err}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == kind
}
