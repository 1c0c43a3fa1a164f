package resistance

import (
	"errors"
	"fmt"

	"github.com/maritimerenewable/resis/pkg/coefficient"
)

var (
	// ErrInvalidDimension indicates a dimension or speed outside its physically valid range.
	ErrInvalidDimension = errors.New("resistance: invalid dimension")

	// ErrNotConfigured indicates resistance or power was requested before Configure succeeded.
	ErrNotConfigured = errors.New("resistance: ship dimensions not configured")

	// ErrOutOfRange indicates a point outside the regression domain, such as a
	// Froude number beyond the coefficient table.
	ErrOutOfRange = coefficient.ErrOutOfRange

	// ErrInvalidEfficiency indicates a propulsive efficiency outside (0, 1].
	ErrInvalidEfficiency = errors.New("resistance: efficiency must be in (0, 1]")

	// ErrInvalidSeaMargin indicates a negative or non-finite sea margin.
	ErrInvalidSeaMargin = errors.New("resistance: sea margin must be a finite value >= 0")

	// ErrInvalidOption indicates a model option outside its accepted range.
	ErrInvalidOption = errors.New("resistance: invalid option")
)

// DimensionError names the offending input of a failed Configure.
type DimensionError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("resistance: invalid %s %g: %s", e.Field, e.Value, e.Reason)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimension }
