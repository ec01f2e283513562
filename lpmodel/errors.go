package lpmodel

import (
	"errors"
	"fmt"
)

// ErrEmptyModel is returned when a Model has no variables or no objective
// expression set.
var ErrEmptyModel = errors.New("lpmodel: model has no variables or no objective")

// InvalidBoundsError is returned when a Variable's Lo exceeds its Hi.
type InvalidBoundsError struct {
	Key    VariableKey
	Lo, Hi float64
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("lpmodel: invalid bounds for variable %v: lo=%g > hi=%g", e.Key, e.Lo, e.Hi)
}

// NumericalFailureError signals a pivot produced NaN/Inf, or the auxiliary
// Phase I objective's basis could not be resolved — a structural bug guard,
// not an expected solver outcome.
type NumericalFailureError struct {
	Reason string
}

func (e *NumericalFailureError) Error() string {
	return fmt.Sprintf("lpmodel: numerical failure: %s", e.Reason)
}

// NewNumericalFailure wraps reason in a *NumericalFailureError.
func NewNumericalFailure(reason string) error {
	return &NumericalFailureError{Reason: reason}
}
