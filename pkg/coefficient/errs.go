package coefficient

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a lookup outside the tabulated domain.
	ErrOutOfRange = errors.New("coefficient: outside tabulated range")

	// ErrMalformedTable indicates a table source that is unreadable or not a complete grid.
	ErrMalformedTable = errors.New("coefficient: malformed table")
)

// RangeError describes which axis a lookup fell off and the tabulated bounds.
type RangeError struct {
	Axis  Axis
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("coefficient: %s %g outside tabulated range [%g, %g]", e.Axis, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
