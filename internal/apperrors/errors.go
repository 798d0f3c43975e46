// Package apperrors defines the coded errors returned across service boundaries.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeStorage    = "STORAGE_ERROR"
	CodeConflict   = "CONFLICT"
	CodeCanceled   = "REQUEST_CANCELED"
	CodeTimeout    = "TIMEOUT"
)

// StatusClientClosedRequest is the non-standard status logged when the
// client goes away before the response is written
const StatusClientClosedRequest = 499

type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithCause attaches the underlying error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...), Status: http.StatusNotFound}
}

func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...), Status: http.StatusBadRequest}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...), Status: http.StatusConflict}
}

func Storage(message string, cause error) *Error {
	return &Error{Code: CodeStorage, Message: message, Status: http.StatusInternalServerError, Cause: cause}
}

// FromContext gives context cancellation and deadline errors their own code
// and status. Other errors are returned unchanged.
func FromContext(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return (&Error{Code: CodeCanceled, Message: "Request canceled", Status: StatusClientClosedRequest}).WithCause(err)
	case errors.Is(err, context.DeadlineExceeded):
		return (&Error{Code: CodeTimeout, Message: "Request timed out", Status: http.StatusGatewayTimeout}).WithCause(err)
	default:
		return err
	}
}

// StatusOf returns the HTTP status carried by err, or 500
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-safe message for err
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// IsCode reports whether err carries the given code
func IsCode(err error, code string) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}
