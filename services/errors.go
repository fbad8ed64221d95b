package services

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failure so handlers can translate it into an HTTP
// status without matching on message text.
type ErrorKind string

const (
	KindUnauthenticated ErrorKind = "UNAUTHENTICATED"
	KindForbidden       ErrorKind = "FORBIDDEN"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindInvalidInput    ErrorKind = "INVALID_INPUT"
	KindConflict        ErrorKind = "CONFLICT"
	KindUnavailable     ErrorKind = "UNAVAILABLE"
)

// AppError carries an error kind alongside a caller-safe message.
type AppError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

func NewUnauthenticated(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewUnavailable wraps a transport or connectivity failure from a backing
// store or provider.
func NewUnavailable(message string, cause error) *AppError {
	return &AppError{Kind: KindUnavailable, Message: message, Cause: cause}
}

// KindOf returns the classification of err, or KindUnavailable for anything
// unclassified.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnavailable
}

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the caller-safe message for err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
