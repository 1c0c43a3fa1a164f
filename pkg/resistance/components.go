package resistance

import "github.com/maritimerenewable/resis/pkg/hydro"

// Each term below is a pure function of its inputs. Forces are in Newtons,
// q is the dynamic pressure ½ρv² and s the wetted surface.

func frictionalResistance(cf, q, s float64) float64 { return cf * q * s }

func residualResistance(cr, q, s float64) float64 { return cr * q * s }

func appendageResistance(k, rf float64) float64 { return k * rf }

func correlationResistance(ca, q, s float64) float64 { return ca * q * s }

func airResistance(rhoAir, cd, area, speed float64) float64 {
	return hydro.DynamicPressure(rhoAir, speed) * cd * area
}
