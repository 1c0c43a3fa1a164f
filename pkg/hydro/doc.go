// Package hydro holds the fluid constants and dimensionless-number helpers used by
// the resistance model: Froude and Reynolds numbers, the ITTC-1957 model-ship
// correlation line and the seawater kinematic viscosity table.
//
// All inputs and outputs are SI: metres, metres per second, kilograms per cubic
// metre, square metres per second, degrees Celsius.
package hydro
