package types

import "fmt"

// Newtons is a force in N.
type Newtons float64

// Watts is a power in W.
type Watts float64

// Knots is a speed in international knots.
type Knots float64

// MetresPerSecondPerKnot is the exact conversion 1852 m / 3600 s.
const MetresPerSecondPerKnot = 1852.0 / 3600.0

// Humanized returns a human-readable string with automatic unit (N, kN, MN).
func (n Newtons) Humanized() string {
	v := float64(n)
	switch {
	case abs(v) >= 1e6:
		return fmt.Sprintf("%.2f MN", v/1e6)
	case abs(v) >= 1e3:
		return fmt.Sprintf("%.2f kN", v/1e3)
	default:
		return fmt.Sprintf("%.2f N", v)
	}
}

// KN returns the force in kilonewtons.
func (n Newtons) KN() float64 { return float64(n) / 1e3 }

// Humanized returns a human-readable string with automatic unit (W, kW, MW).
func (w Watts) Humanized() string {
	v := float64(w)
	switch {
	case abs(v) >= 1e6:
		return fmt.Sprintf("%.2f MW", v/1e6)
	case abs(v) >= 1e3:
		return fmt.Sprintf("%.2f kW", v/1e3)
	default:
		return fmt.Sprintf("%.2f W", v)
	}
}

// KW returns the power in kilowatts.
func (w Watts) KW() float64 { return float64(w) / 1e3 }

// HP returns the power in metric horsepower (735.49875 W).
func (w Watts) HP() float64 { return float64(w) / 735.49875 }

// MetresPerSecond converts the speed to m/s.
func (k Knots) MetresPerSecond() float64 { return float64(k) * MetresPerSecondPerKnot }

// FromMetresPerSecond converts m/s to knots.
func FromMetresPerSecond(v float64) Knots { return Knots(v / MetresPerSecondPerKnot) }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
