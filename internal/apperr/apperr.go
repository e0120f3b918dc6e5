// Package apperr holds the error types shared across the storefront's
// services so handlers can map them to HTTP statuses in one place.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError marks input rejected before any store call was made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
