// Package apperr defines the error taxonomy services report and the API
// boundary translates to HTTP statuses. Ownership failures on jobs and
// applications are deliberately reported as ErrNotFound so callers cannot
// distinguish "does not exist" from "not yours".
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
)

// ValidationError carries per-field messages for create/update forms.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

func Forbidden(what string) error {
	return fmt.Errorf("%s: %w", what, ErrForbidden)
}

func Conflict(what string) error {
	return fmt.Errorf("%s: %w", what, ErrConflict)
}

func BadRequest(what string) error {
	return fmt.Errorf("%s: %w", what, ErrBadRequest)
}
