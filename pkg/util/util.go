package util

import (
	"math"
	"strconv"
)

// Clamp limits x to [lo, hi]. NaN maps to lo.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	// guard against NaN
	if math.IsNaN(x) {
		return lo
	}
	return x
}

// Lerp interpolates linearly between a and b at fraction t.
// t == 0 returns a and t == 1 returns b exactly.
func Lerp(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a + (b-a)*t
}

// Finite reports whether every value is neither NaN nor ±Inf.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FmtFloat formats v with the shortest representation that round-trips.
func FmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
