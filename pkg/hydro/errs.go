package hydro

import "errors"

var (
	// ErrTemperatureRange indicates a water temperature outside the viscosity table.
	ErrTemperatureRange = errors.New("hydro: temperature outside viscosity table")

	// ErrReynoldsRange indicates a Reynolds number the ITTC-1957 line is undefined for.
	ErrReynoldsRange = errors.New("hydro: reynolds number outside friction line")
)
