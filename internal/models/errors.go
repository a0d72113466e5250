package models

import (
	"errors"
	"fmt"
)

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewConfigError(message string) *AppError {
	return &AppError{
		Code:    "CONFIG_ERROR",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal error",
		Err:     err,
	}
}

// IntegrityKind classifies a constraint violation.
type IntegrityKind string

const (
	IntegrityUnique     IntegrityKind = "unique"
	IntegrityForeignKey IntegrityKind = "foreign_key"
	IntegrityCheck      IntegrityKind = "check"
	IntegrityNotNull    IntegrityKind = "not_null"
)

// IntegrityError is a rejected write: a uniqueness, not-null, foreign-key or
// check-constraint breach. The operation left no partial state behind.
type IntegrityError struct {
	Kind       IntegrityKind
	Constraint string
	Err        error
}

func (e *IntegrityError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("integrity violation (%s, constraint %s): %v", e.Kind, e.Constraint, e.Err)
	}
	return fmt.Sprintf("integrity violation (%s): %v", e.Kind, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// NewIntegrityError wraps a driver error as a structured integrity violation.
func NewIntegrityError(kind IntegrityKind, constraint string, err error) *IntegrityError {
	return &IntegrityError{Kind: kind, Constraint: constraint, Err: err}
}

// IsNotFound reports whether the error is a not-found failure.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == "NOT_FOUND"
}

// IsIntegrityViolation reports whether the error is a rejected write, and
// returns the violation when it is.
func IsIntegrityViolation(err error) (*IntegrityError, bool) {
	var intErr *IntegrityError
	if errors.As(err, &intErr) {
		return intErr, true
	}
	return nil, false
}
