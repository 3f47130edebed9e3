// Package apperr defines the error taxonomy shared by the domain services.
// Handlers map these onto HTTP status codes; repositories wrap driver errors
// here so that no storage error type crosses the service boundary.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both "record does not exist" and "record belongs to
// another user". The two are deliberately indistinguishable so that a caller
// cannot probe for the existence of other users' records.
var ErrNotFound = errors.New("not found or not authorized")

// ValidationError signals malformed or missing caller input. Nothing is
// written to the store when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for a single field.
func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// PersistenceError signals that the store was unavailable or a write failed.
// It wraps the underlying driver error; callers decide retry policy.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError unless it already carries an
// application meaning (ErrNotFound, ValidationError pass through untouched).
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.Is(err, ErrNotFound) || errors.As(err, &ve) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
