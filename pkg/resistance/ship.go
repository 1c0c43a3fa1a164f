package resistance

import (
	"fmt"
	"log/slog"

	"github.com/maritimerenewable/resis/pkg/coefficient"
	"github.com/maritimerenewable/resis/pkg/hydro"
)

// Ship holds the configured dimensions of one hull and evaluates its
// resistance and power. A Ship is not safe for concurrent Configure and reads;
// use one Ship per goroutine or serialise access.
type Ship struct {
	cfg  *Config
	dims *Dimensions
}

// NewShip returns an unconfigured Ship. Options override the defaults and are
// validated here so later calls cannot fail on model constants.
func NewShip(opts ...Option) (*Ship, error) {
	cfg := _defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &Ship{cfg: cfg}, nil
}

// Configure validates and stores the hull dimensions and target speed.
// On failure the previous configuration, if any, is kept.
func (s *Ship) Configure(length, draught, beam, speed, slenderness, prismatic float64) error {
	return s.ConfigureDimensions(Dimensions{
		Length:      length,
		Draught:     draught,
		Beam:        beam,
		Speed:       speed,
		Slenderness: slenderness,
		Prismatic:   prismatic,
	})
}

// ConfigureDimensions is Configure taking a Dimensions value.
func (s *Ship) ConfigureDimensions(d Dimensions) error {
	if err := validate(d, s.cfg.Table); err != nil {
		return err
	}
	s.dims = &d
	s.cfg.Logger.Debug("ship configured",
		"length", d.Length, "draught", d.Draught, "beam", d.Beam, "speed", d.Speed,
		"slenderness", d.Slenderness, "prismatic", d.Prismatic)
	return nil
}

// Configured reports whether dimensions have been set.
func (s *Ship) Configured() bool { return s.dims != nil }

// Dimensions returns a copy of the configured dimensions.
func (s *Ship) Dimensions() (Dimensions, error) {
	if s.dims == nil {
		return Dimensions{}, ErrNotConfigured
	}
	return *s.dims, nil
}

// Config returns a copy of the model constants in use.
func (s *Ship) Config() Config { return *s.cfg }

// Resistance evaluates every resistance component at the configured speed.
func (s *Ship) Resistance() (Breakdown, error) {
	if s.dims == nil {
		return Breakdown{}, ErrNotConfigured
	}
	return s.resistanceAt(*s.dims)
}

// Sweep evaluates the configured hull at each speed in turn without changing
// the configured speed. It stops at the first failing speed.
func (s *Ship) Sweep(speeds []float64) ([]Breakdown, error) {
	if s.dims == nil {
		return nil, ErrNotConfigured
	}
	out := make([]Breakdown, 0, len(speeds))
	for _, v := range speeds {
		d := *s.dims
		d.Speed = v
		if err := validate(d, s.cfg.Table); err != nil {
			return out, err
		}
		b, err := s.resistanceAt(d)
		if err != nil {
			return out, fmt.Errorf("speed %g m/s: %w", v, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *Ship) resistanceAt(d Dimensions) (Breakdown, error) {
	b := Breakdown{
		Speed:         d.Speed,
		WettedSurface: d.WettedSurface(),
	}
	if d.Speed == 0 {
		return b, nil
	}

	b.FroudeNumber = hydro.FroudeNumber(d.Speed, d.Length)
	b.ReynoldsNumber = hydro.ReynoldsNumber(d.Length, d.Speed, s.cfg.viscosity)

	cf, err := hydro.FrictionCoefficient(b.ReynoldsNumber)
	if err != nil {
		return Breakdown{}, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	b.FrictionCoefficient = cf

	b.Clamped = !s.cfg.Table.Contains(coefficient.Froude, b.FroudeNumber)
	cr, err := s.cfg.Table.LookupWith(s.cfg.Extrapolation, d.Slenderness, d.Prismatic, b.FroudeNumber)
	if err != nil {
		return Breakdown{}, err
	}
	if b.Clamped {
		lo, hi := s.cfg.Table.Bounds(coefficient.Froude)
		s.cfg.Logger.Warn("froude number outside table, using nearest edge",
			slog.Float64("froude", b.FroudeNumber), slog.Float64("min", lo), slog.Float64("max", hi))
	}
	b.ResidualCoefficient = cr

	q := hydro.DynamicPressure(s.cfg.WaterDensity, d.Speed)
	b.Frictional = frictionalResistance(cf, q, b.WettedSurface)
	b.Residual = residualResistance(cr, q, b.WettedSurface)
	b.Appendage = appendageResistance(s.cfg.AppendageFactor, b.Frictional)
	b.Air = airResistance(s.cfg.AirDensity, s.cfg.AirDragCoefficient, s.cfg.WindageArea, d.Speed)
	b.Correlation = correlationResistance(s.cfg.CorrelationAllowance, q, b.WettedSurface)

	for _, c := range b.Components() {
		b.Total += c.Value
	}
	return b, nil
}

// FroudeNumber returns v / sqrt(g·L) for the configured ship.
func (s *Ship) FroudeNumber() (float64, error) {
	if s.dims == nil {
		return 0, ErrNotConfigured
	}
	return hydro.FroudeNumber(s.dims.Speed, s.dims.Length), nil
}

// ReynoldsNumber returns L·v/ν for the configured ship at the configured water temperature.
func (s *Ship) ReynoldsNumber() (float64, error) {
	if s.dims == nil {
		return 0, ErrNotConfigured
	}
	return hydro.ReynoldsNumber(s.dims.Length, s.dims.Speed, s.cfg.viscosity), nil
}

// Displacement returns the displaced volume in m³.
func (s *Ship) Displacement() (float64, error) {
	if s.dims == nil {
		return 0, ErrNotConfigured
	}
	return s.dims.Displacement(), nil
}

// WettedSurface returns the wetted surface area in m².
func (s *Ship) WettedSurface() (float64, error) {
	if s.dims == nil {
		return 0, ErrNotConfigured
	}
	return s.dims.WettedSurface(), nil
}

// DeckArea returns B · L · waterplane, an upper bound on usable deck area in m².
func (s *Ship) DeckArea(waterplane float64) (float64, error) {
	if s.dims == nil {
		return 0, ErrNotConfigured
	}
	if !(waterplane > 0 && waterplane <= 1) {
		return 0, fmt.Errorf("%w: waterplane coefficient %g not in (0, 1]", ErrInvalidOption, waterplane)
	}
	return s.dims.Beam * s.dims.Length * waterplane, nil
}

// MaximumDeckArea is DeckArea with DefaultWaterplaneCoefficient.
func (s *Ship) MaximumDeckArea() (float64, error) {
	return s.DeckArea(DefaultWaterplaneCoefficient)
}
