package hydro

import (
	"fmt"
	"sort"

	"github.com/maritimerenewable/resis/pkg/util"
)

// Seawater (35 g/kg) kinematic viscosity in m²/s, from the MIT seawater property
// tables (2017).
var (
	viscosityTemps  = []float64{0, 10, 20, 25, 30, 40}
	viscosityValues = []float64{18.54e-7, 13.60e-7, 10.50e-7, 9.37e-7, 8.42e-7, 6.95e-7}
)

// KinematicViscosity interpolates seawater kinematic viscosity at tempC.
func KinematicViscosity(tempC float64) (float64, error) {
	lo, hi := viscosityTemps[0], viscosityTemps[len(viscosityTemps)-1]
	if !util.Finite(tempC) || tempC < lo || tempC > hi {
		return 0, fmt.Errorf("%w: %g°C not in [%g, %g]", ErrTemperatureRange, tempC, lo, hi)
	}

	i := sort.SearchFloat64s(viscosityTemps, tempC)
	if viscosityTemps[i] == tempC {
		return viscosityValues[i], nil
	}
	t := (tempC - viscosityTemps[i-1]) / (viscosityTemps[i] - viscosityTemps[i-1])
	return util.Lerp(viscosityValues[i-1], viscosityValues[i], t), nil
}

// ReferenceViscosity is the kinematic viscosity at ReferenceTemperature.
func ReferenceViscosity() float64 {
	nu, _ := KinematicViscosity(ReferenceTemperature)
	return nu
}
