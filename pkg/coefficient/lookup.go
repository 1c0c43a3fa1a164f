package coefficient

import (
	"sort"

	"github.com/maritimerenewable/resis/pkg/util"
)

// Policy selects what Lookup does with a point outside the tabulated domain.
type Policy int

const (
	// Reject fails with a *RangeError. Published series are not validated
	// outside their range.
	Reject Policy = iota
	// Clamp moves the point onto the nearest tabulated edge.
	Clamp
)

func (p Policy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Clamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// Lookup returns the residual-resistance coefficient Cr at the given point,
// interpolating linearly along each axis between the bracketing grid nodes.
// A point on a grid node returns the tabulated value exactly.
func (t *Table) Lookup(slenderness, prismatic, froude float64) (float64, error) {
	return t.LookupWith(Reject, slenderness, prismatic, froude)
}

// LookupWith is Lookup with an explicit out-of-range policy. Under Clamp an
// out-of-range coordinate is moved onto the nearest tabulated edge; callers that
// need to know whether that happened check Contains first. Non-finite
// coordinates are rejected under either policy.
func (t *Table) LookupWith(p Policy, slenderness, prismatic, froude float64) (float64, error) {
	pt := [3]float64{slenderness, prismatic, froude}

	var (
		idx [3]int
		w   [3]float64
	)
	for a := range pt {
		ax := t.axes[a]
		lo, hi := ax[0], ax[len(ax)-1]
		v := pt[a]
		if !util.Finite(v) || v < lo || v > hi {
			if p != Clamp || !util.Finite(v) {
				return 0, &RangeError{Axis: Axis(a), Value: v, Min: lo, Max: hi}
			}
			v = util.Clamp(v, lo, hi)
		}
		idx[a], w[a] = bracket(ax, v)
	}

	// blend the 8 corners of the enclosing cell
	var cr float64
	for c := 0; c < 8; c++ {
		weight := 1.0
		var n [3]int
		for a := range n {
			if c&(1<<a) == 0 {
				n[a] = idx[a]
				weight *= 1 - w[a]
			} else {
				n[a] = idx[a] + 1
				weight *= w[a]
			}
		}
		if weight == 0 {
			continue
		}
		cr += weight * t.At(n[0], n[1], n[2])
	}
	return cr, nil
}

// bracket returns i and t such that ax[i] <= v <= ax[i+1] and
// v == Lerp(ax[i], ax[i+1], t). v must lie inside the axis.
func bracket(ax []float64, v float64) (int, float64) {
	i := sort.SearchFloat64s(ax, v)
	if i < len(ax) && ax[i] == v {
		if i == len(ax)-1 {
			return i - 1, 1
		}
		return i, 0
	}
	return i - 1, (v - ax[i-1]) / (ax[i] - ax[i-1])
}
