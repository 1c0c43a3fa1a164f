// Package resistance estimates the calm-water resistance and propulsion power of
// a displacement hull from its principal dimensions.
//
// # Model
//
// A Ship is configured with length L, draught T, beam B, speed v, slenderness
// L/∇^(1/3) and prismatic coefficient Cp. Resistance evaluates, in order:
//
//	∇    = (L / slenderness)³
//	S    = 1.025 · (1.7·L·T + ∇/T)
//	q    = ½·ρ·v²
//	Re   = L·v/ν                      ν from the water temperature
//	Cf   = 0.075 / (log10 Re − 2)²    ITTC-1957
//	Fn   = v / sqrt(g·L)
//	Cr   = table(slenderness, Cp, Fn) multilinear interpolation
//
//	R_F   = Cf·q·S          frictional
//	R_R   = Cr·q·S          residual (wave making)
//	R_APP = k·R_F           appendage
//	R_AA  = ½·ρ_air·C_DA·A_T·v²  air
//	R_A   = Ca·q·S          correlation allowance
//	R_T   = R_F + R_R + R_APP + R_AA + R_A
//
// With default options k, A_T and Ca are zero, so R_T = ½·ρ·S·v²·(Cf + Cr).
// At v = 0 every term is zero.
//
// Power converts R_T into
//
//	P_E = R_T·v             effective
//	P_B = P_E / η           installed (brake), η in (0, 1], default 0.7
//	P_S = (1 + margin)·P_B  service, margin default 0.2
//
// # States
//
// NewShip returns an unconfigured Ship; Resistance and Power fail with
// ErrNotConfigured until Configure succeeds. Configure re-validates and
// overwrites; a failed Configure leaves the previous dimensions in place.
//
// # Errors
//
//   - ErrInvalidDimension: non-finite or non-positive dimension, negative speed,
//     beam >= length, draught >= 2·beam, or a shape coefficient outside the table.
//     Details via *DimensionError.
//   - ErrNotConfigured: Resistance/Power before Configure.
//   - ErrOutOfRange: Froude number outside the table (with the default Reject
//     policy). Details via *coefficient.RangeError.
//   - ErrInvalidEfficiency, ErrInvalidSeaMargin: Power assumptions out of range.
//   - ErrInvalidOption: NewShip options out of range.
//
// # Concurrency
//
// The coefficient table is immutable and shared. A Ship is not locked: do not
// call Configure concurrently with any other method on the same Ship.
//
// Example
//
//	s, err := resistance.NewShip()
//	if err != nil { ... }
//	if err := s.Configure(5.72, 0.248, 0.76, 2.0, 6.99, 0.613); err != nil { ... }
//	b, err := s.Resistance()   // b.Total in N
//	p, err := s.Power()        // p.Effective == b.Total * 2.0
package resistance
