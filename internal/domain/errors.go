package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrNoNutritionData = errors.New("no nutrition data")
	ErrCompositeWrite  = errors.New("composite write failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// CompositeWriteError reports a failed multi-step creation. Err is always the
// error of the step that failed; compensation failures are only attached.
type CompositeWriteError struct {
	Op                 string
	Step               string
	Err                error
	CompensationErrors []error
}

func (e *CompositeWriteError) Error() string {
	msg := fmt.Sprintf("%s: step %s: %v", e.Op, e.Step, e.Err)
	if len(e.CompensationErrors) == 0 {
		return msg
	}
	parts := make([]string, len(e.CompensationErrors))
	for i, ce := range e.CompensationErrors {
		parts[i] = ce.Error()
	}
	return msg + " (compensation failed: " + strings.Join(parts, "; ") + ")"
}

// Unwrap exposes both the original step error and ErrCompositeWrite, so
// errors.Is works for either. Compensation errors are not unwrapped.
func (e *CompositeWriteError) Unwrap() []error {
	return []error{e.Err, ErrCompositeWrite}
}

// Compensated reports whether every compensation ran without error.
func (e *CompositeWriteError) Compensated() bool {
	return len(e.CompensationErrors) == 0
}
