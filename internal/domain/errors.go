package domain

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrPlanNotFound     = errors.New("saved plan not found")
	ErrNoActivePlan     = errors.New("no active plan")
	ErrFoodNotFound     = errors.New("food not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// InvalidInputError reports a profile field that failed validation before
// any plan computation started.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %q: %s (got %q)", e.Field, e.Reason, e.Value)
}

// NewInvalidInput builds an InvalidInputError for a named field.
func NewInvalidInput(field, value, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}
