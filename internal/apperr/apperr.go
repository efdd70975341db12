// Package apperr defines the error taxonomy shared by every entity module.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError is returned for malformed or out-of-range input. It never reaches the store.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NotFoundError reports a well-formed id that has no record behind it.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError reports a uniqueness or referential constraint violation.
type ConflictError struct {
	Entity     string
	Constraint string
}

func (e *ConflictError) Error() string {
	if e.Constraint == "" {
		return e.Entity + " conflicts with an existing record"
	}

	return fmt.Sprintf("%s conflicts with an existing record (%s)", e.Entity, e.Constraint)
}

// PersistenceError wraps any other store failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
