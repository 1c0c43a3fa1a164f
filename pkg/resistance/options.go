package resistance

import (
	"log/slog"

	"github.com/maritimerenewable/resis/pkg/coefficient"
)

// Option overrides one model constant of a Ship.
type Option func(*Config)

// WithTable replaces the process-wide residual-resistance table.
func WithTable(t *coefficient.Table) Option {
	return func(c *Config) {
		c.Table = t
	}
}

// WithExtrapolation selects what happens when the Froude number leaves the table.
func WithExtrapolation(p coefficient.Policy) Option {
	return func(c *Config) {
		c.Extrapolation = p
	}
}

// WithWaterTemperature sets the water temperature in °C used for viscosity.
func WithWaterTemperature(celsius float64) Option {
	return func(c *Config) {
		c.WaterTemperature = celsius
	}
}

// WithWaterDensity sets the water density in kg/m³.
func WithWaterDensity(rho float64) Option {
	return func(c *Config) {
		c.WaterDensity = rho
	}
}

// WithAppendageFactor sets appendage resistance as a fraction of frictional resistance.
func WithAppendageFactor(k float64) Option {
	return func(c *Config) {
		c.AppendageFactor = k
	}
}

// WithCorrelationAllowance sets the model-ship correlation allowance Ca.
func WithCorrelationAllowance(ca float64) Option {
	return func(c *Config) {
		c.CorrelationAllowance = ca
	}
}

// WithWindage sets the transverse area above water (m²) and its drag coefficient.
func WithWindage(area, dragCoefficient float64) Option {
	return func(c *Config) {
		c.WindageArea = area
		c.AirDragCoefficient = dragCoefficient
	}
}

// WithLogger sets the logger for configuration and clamped lookups.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
