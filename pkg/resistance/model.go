package resistance

import (
	"log/slog"

	"github.com/maritimerenewable/resis/pkg/coefficient"
	"github.com/maritimerenewable/resis/pkg/hydro"
)

const (
	// DefaultEfficiency is the propulsive (shaft) efficiency used when Power is
	// called without WithEfficiency.
	DefaultEfficiency = 0.7
	// DefaultSeaMargin is the service allowance for wind and waves.
	DefaultSeaMargin = 0.2
	// DefaultWaterplaneCoefficient is used by MaximumDeckArea.
	DefaultWaterplaneCoefficient = 0.88
	// DefaultAirDragCoefficient applies to the transverse windage area.
	DefaultAirDragCoefficient = 0.8

	// maxDraughtBeamRatio bounds the draught as a multiple of the beam.
	maxDraughtBeamRatio = 2.0
	// surfaceFactor and girthFactor are the wetted surface regression constants.
	surfaceFactor = 1.025
	girthFactor   = 1.7
)

// Dimensions are the principal particulars of a hull and its target speed.
// Units:
//   - Length, Draught, Beam: metres
//   - Speed: metres per second
//   - Slenderness: L / ∇^(1/3), dimensionless
//   - Prismatic: ∇ / (L · A_m), dimensionless
type Dimensions struct {
	Length      float64 `yaml:"length" json:"length"`
	Draught     float64 `yaml:"draught" json:"draught"`
	Beam        float64 `yaml:"beam" json:"beam"`
	Speed       float64 `yaml:"speed" json:"speed"`
	Slenderness float64 `yaml:"slenderness" json:"slenderness"`
	Prismatic   float64 `yaml:"prismatic" json:"prismatic"`
}

// Displacement returns the displaced volume ∇ = (L / slenderness)³ in m³.
func (d Dimensions) Displacement() float64 {
	r := d.Length / d.Slenderness
	return r * r * r
}

// WettedSurface returns S = 1.025 · (1.7 · L · T + ∇ / T) in m².
func (d Dimensions) WettedSurface() float64 {
	return surfaceFactor * (girthFactor*d.Length*d.Draught + d.Displacement()/d.Draught)
}

// Breakdown is the resistance split for one configured ship at its speed.
// Forces are in Newtons and sum, in field order, to Total.
type Breakdown struct {
	Frictional  float64 `json:"frictional_n" yaml:"frictional_n"`
	Residual    float64 `json:"residual_n" yaml:"residual_n"`
	Appendage   float64 `json:"appendage_n" yaml:"appendage_n"`
	Air         float64 `json:"air_n" yaml:"air_n"`
	Correlation float64 `json:"correlation_n" yaml:"correlation_n"`
	Total       float64 `json:"total_n" yaml:"total_n"`

	Speed               float64 `json:"speed_ms" yaml:"speed_ms"`
	FroudeNumber        float64 `json:"froude_number" yaml:"froude_number"`
	ReynoldsNumber      float64 `json:"reynolds_number" yaml:"reynolds_number"`
	FrictionCoefficient float64 `json:"cf" yaml:"cf"`
	ResidualCoefficient float64 `json:"cr" yaml:"cr"`
	WettedSurface       float64 `json:"wetted_surface_m2" yaml:"wetted_surface_m2"`
	// Clamped is set when the residual coefficient came from the nearest table
	// edge rather than an in-range interpolation.
	Clamped bool `json:"clamped,omitempty" yaml:"clamped,omitempty"`
}

// Component is one named term of a Breakdown.
type Component struct {
	Name  string
	Value float64
}

// Components lists the additive terms in summation order.
func (b Breakdown) Components() []Component {
	return []Component{
		{Name: "frictional", Value: b.Frictional},
		{Name: "residual", Value: b.Residual},
		{Name: "appendage", Value: b.Appendage},
		{Name: "air", Value: b.Air},
		{Name: "correlation", Value: b.Correlation},
	}
}

// PowerEstimate converts a total resistance at a speed into power figures in Watts.
type PowerEstimate struct {
	TotalResistance float64 `json:"total_resistance_n" yaml:"total_resistance_n"`
	Speed           float64 `json:"speed_ms" yaml:"speed_ms"`
	Efficiency      float64 `json:"efficiency" yaml:"efficiency"`
	SeaMargin       float64 `json:"sea_margin" yaml:"sea_margin"`

	// Effective is R_T · v.
	Effective float64 `json:"effective_w" yaml:"effective_w"`
	// Installed is Effective / efficiency, the brake power to deliver.
	Installed float64 `json:"installed_w" yaml:"installed_w"`
	// Service is Installed scaled by (1 + sea margin).
	Service float64 `json:"service_w" yaml:"service_w"`
}

// Config holds the model constants applied to every calculation of a Ship.
// Units:
//   - WaterTemperature: °C, selects the kinematic viscosity
//   - WaterDensity, AirDensity: kg/m³
//   - AppendageFactor: R_APP as a fraction of R_F
//   - CorrelationAllowance: Ca, dimensionless
//   - WindageArea: transverse projected area above water, m²
//   - AirDragCoefficient: C_DA on WindageArea
type Config struct {
	Table                *coefficient.Table
	Extrapolation        coefficient.Policy
	WaterTemperature     float64
	WaterDensity         float64
	AirDensity           float64
	AppendageFactor      float64
	CorrelationAllowance float64
	WindageArea          float64
	AirDragCoefficient   float64
	Logger               *slog.Logger

	viscosity float64
}

// _defaultConfig reproduces the plain Cf + Cr model: appendage, air and
// correlation terms are zero until configured.
func _defaultConfig() *Config {
	return &Config{
		Table:              coefficient.Default(),
		Extrapolation:      coefficient.Reject,
		WaterTemperature:   hydro.ReferenceTemperature,
		WaterDensity:       hydro.SeawaterDensity,
		AirDensity:         hydro.AirDensity,
		AirDragCoefficient: DefaultAirDragCoefficient,
		Logger:             slog.Default(),
		viscosity:          hydro.ReferenceViscosity(),
	}
}

// Viscosity returns the kinematic viscosity in m²/s resolved from WaterTemperature.
func (c Config) Viscosity() float64 { return c.viscosity }
