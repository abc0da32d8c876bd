// Package apperr defines the three request-level failures of the clinic API.
package apperr

import (
	"errors"
	"net/http"
)

// ValidationError reports a missing or malformed field.
type ValidationError struct{ Message string }

// ConflictError reports a uniqueness violation.
type ConflictError struct{ Message string }

// NotFoundError reports an unknown id.
type NotFoundError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }
func (e *ConflictError) Error() string   { return e.Message }
func (e *NotFoundError) Error() string   { return e.Message }

func (e *ValidationError) HTTPStatus() int { return http.StatusBadRequest }
func (e *ConflictError) HTTPStatus() int   { return http.StatusConflict }
func (e *NotFoundError) HTTPStatus() int   { return http.StatusNotFound }

func Validation(msg string) error { return &ValidationError{Message: msg} }
func Conflict(msg string) error   { return &ConflictError{Message: msg} }
func NotFound(msg string) error   { return &NotFoundError{Message: msg} }

// Status returns the HTTP status carried by err, or 500 when err is not one
// of the errors above.
func Status(err error) int {
	var sc interface{ HTTPStatus() int }
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	return http.StatusInternalServerError
}
