package hydro

import (
	"fmt"
	"math"
)

const (
	Gravity              = 9.80665 // m/s², conventional standard value
	SeawaterDensity      = 1025.0  // kg/m³
	AirDensity           = 1.225   // kg/m³, ISA sea level
	ReferenceTemperature = 25.0    // °C
)

// FroudeNumber returns v / sqrt(g·L).
func FroudeNumber(speed, length float64) float64 {
	return speed / math.Sqrt(Gravity*length)
}

// ReynoldsNumber returns L·v / ν for kinematic viscosity nu in m²/s.
func ReynoldsNumber(length, speed, nu float64) float64 {
	return length * speed / nu
}

// DynamicPressure returns ½·ρ·v².
func DynamicPressure(density, speed float64) float64 {
	return 0.5 * density * speed * speed
}

// FrictionCoefficient returns the ITTC-1957 flat plate friction coefficient
//
//	Cf = 0.075 / (log10(Re) - 2)²
//
// The line has a pole at Re = 100, so anything at or below it is rejected.
func FrictionCoefficient(re float64) (float64, error) {
	if !(re > 100) || math.IsInf(re, 1) {
		return 0, fmt.Errorf("%w: Re=%g", ErrReynoldsRange, re)
	}
	d := math.Log10(re) - 2
	return 0.075 / (d * d), nil
}
