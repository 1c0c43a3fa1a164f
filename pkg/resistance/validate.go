package resistance

import (
	"fmt"
	"log/slog"

	"github.com/maritimerenewable/resis/pkg/coefficient"
	"github.com/maritimerenewable/resis/pkg/hydro"
	"github.com/maritimerenewable/resis/pkg/util"
)

// validate checks d against physical plausibility and the table's shape domain.
func validate(d Dimensions, t *coefficient.Table) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"length", d.Length},
		{"draught", d.Draught},
		{"beam", d.Beam},
		{"slenderness coefficient", d.Slenderness},
		{"prismatic coefficient", d.Prismatic},
	}
	for _, f := range fields {
		if !util.Finite(f.v) {
			return &DimensionError{Field: f.name, Value: f.v, Reason: "must be finite"}
		}
		if f.v <= 0 {
			return &DimensionError{Field: f.name, Value: f.v, Reason: "must be > 0"}
		}
	}
	if !util.Finite(d.Speed) || d.Speed < 0 {
		return &DimensionError{Field: "speed", Value: d.Speed, Reason: "must be a finite value >= 0"}
	}

	if d.Beam >= d.Length {
		return &DimensionError{Field: "beam", Value: d.Beam,
			Reason: fmt.Sprintf("must be less than length %g", d.Length)}
	}
	if d.Draught >= maxDraughtBeamRatio*d.Beam {
		return &DimensionError{Field: "draught", Value: d.Draught,
			Reason: fmt.Sprintf("must be less than %g x beam", maxDraughtBeamRatio)}
	}
	if d.Prismatic >= 1 {
		return &DimensionError{Field: "prismatic coefficient", Value: d.Prismatic, Reason: "must be < 1"}
	}

	for _, a := range []struct {
		axis coefficient.Axis
		v    float64
	}{
		{coefficient.Slenderness, d.Slenderness},
		{coefficient.Prismatic, d.Prismatic},
	} {
		if !t.Contains(a.axis, a.v) {
			lo, hi := t.Bounds(a.axis)
			return &DimensionError{Field: a.axis.String(), Value: a.v,
				Reason: fmt.Sprintf("outside empirical range [%g, %g]", lo, hi)}
		}
	}
	return nil
}

// validateConfig checks merged options and resolves the viscosity.
func validateConfig(c *Config) error {
	if c.Table == nil {
		return fmt.Errorf("%w: nil coefficient table", ErrInvalidOption)
	}
	if c.Extrapolation != coefficient.Reject && c.Extrapolation != coefficient.Clamp {
		return fmt.Errorf("%w: extrapolation policy %d", ErrInvalidOption, c.Extrapolation)
	}
	nu, err := hydro.KinematicViscosity(c.WaterTemperature)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	c.viscosity = nu

	positive := map[string]float64{
		"water density": c.WaterDensity,
		"air density":   c.AirDensity,
	}
	for name, v := range positive {
		if !util.Finite(v) || v <= 0 {
			return fmt.Errorf("%w: %s %g must be > 0", ErrInvalidOption, name, v)
		}
	}
	nonNegative := map[string]float64{
		"appendage factor":      c.AppendageFactor,
		"correlation allowance": c.CorrelationAllowance,
		"windage area":          c.WindageArea,
		"air drag coefficient":  c.AirDragCoefficient,
	}
	for name, v := range nonNegative {
		if !util.Finite(v) || v < 0 {
			return fmt.Errorf("%w: %s %g must be >= 0", ErrInvalidOption, name, v)
		}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}
