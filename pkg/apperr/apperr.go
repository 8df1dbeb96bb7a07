// Package apperr defines the typed errors that services return and the HTTP
// layer translates into status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error independently of its message.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindStore        Kind = "store"
)

// Error is the error type every service method returns.
type Error struct {
	Kind       Kind              `json:"kind"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
	StatusCode int               `json:"status_code"`

	err error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Message + ": " + e.err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.err }

// Is matches on Kind so errors.Is(err, apperr.ErrNotFound) holds for every
// not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New creates an error of the given kind.
func New(kind Kind, message string, statusCode int) *Error {
	return &Error{Kind: kind, Message: message, StatusCode: statusCode}
}

var (
	ErrNotFound     = New(KindNotFound, "resource not found", http.StatusNotFound)
	ErrValidation   = New(KindValidation, "validation failed", http.StatusBadRequest)
	ErrUnauthorized = New(KindUnauthorized, "unauthorized", http.StatusUnauthorized)
	ErrForbidden    = New(KindForbidden, "forbidden", http.StatusForbidden)
	ErrConflict     = New(KindConflict, "resource already exists", http.StatusConflict)
	ErrStore        = New(KindStore, "internal server error", http.StatusInternalServerError)
)

// NotFound reports a missing record in the form
// "Customer not found with id : '42'".
func NotFound(resource, field string, value any) *Error {
	return New(KindNotFound,
		fmt.Sprintf("%s not found with %s : '%v'", resource, field, value),
		http.StatusNotFound)
}

// Validation carries per-field messages.
func Validation(fields map[string]string) *Error {
	e := New(KindValidation, "Validation failed", http.StatusBadRequest)
	e.Fields = fields
	return e
}

// BadRequest reports a malformed parameter that is not tied to a body field.
func BadRequest(message string) *Error {
	return New(KindValidation, message, http.StatusBadRequest)
}

func Conflict(message string) *Error {
	return New(KindConflict, message, http.StatusConflict)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message, http.StatusUnauthorized)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message, http.StatusForbidden)
}

// Store wraps an unexpected persistence failure. The cause stays available
// through errors.Unwrap for logging but never reaches the client.
func Store(err error) *Error {
	e := New(KindStore, "internal server error", http.StatusInternalServerError)
	e.err = err
	return e
}

// From returns err as *Error, wrapping anything unknown as a store failure.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Store(err)
}

// StatusOf maps err to an HTTP status code.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return From(err).StatusCode
}
