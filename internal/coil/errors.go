package coil

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a parameter violates its constraint.
	ErrInvalidParameter = errors.New("invalid coil parameter")

	// ErrDegenerateGeometry is returned when valid parameters still produce
	// crossing or zero-width geometry.
	ErrDegenerateGeometry = errors.New("degenerate coil geometry")
)

// ParamError describes a single violated parameter constraint.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %g: %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

func paramErr(field string, value float64, reason string) error {
	return &ParamError{Field: field, Value: value, Reason: reason}
}
