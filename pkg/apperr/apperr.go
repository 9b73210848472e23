// Package apperr defines the error taxonomy shared by services and handlers.
//
// Every domain failure carries an HTTP status and a user-visible message.
// Handlers never inspect error text; they hand the error to response.Err
// which maps it to the right status code and {"message": ...} body.
package apperr

import (
	"errors"
	"net/http"
)

// Error is a domain error with an associated HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds an Error with an explicit status.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest marks a validation failure (missing or malformed input).
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized marks a missing, invalid, or revoked credential.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden marks a valid principal lacking the required role or ownership.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound marks a reference to a resource that does not exist.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// StatusOf returns the HTTP status carried by err, or 500 for anything that
// is not an *Error.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
