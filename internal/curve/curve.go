// Package curve implements the interpolation mini-engine shared by every
// "curve" expression: binary search over a strictly ascending stop table,
// plus the step/linear/exponential factor computation. It operates only
// on the stop inputs (always literal numbers); the stop outputs, which
// may be any interpolatable type, are combined by the caller.
package curve

import "math"

// Kind distinguishes the three interpolation functions a curve may use.
type Kind int

const (
	Step Kind = iota
	Linear
	Exponential
)

// Spec is the resolved form of a curve's first argument: one of
// step(), linear(), exponential(base).
type Spec struct {
	Kind Kind
	Base float64
}

// Locate finds the segment of stops containing x and, for Linear and
// Exponential, the interpolation factor within that segment. stops must
// be strictly ascending (enforced by the checker before a curve reaches
// evaluation). x below the first stop clamps to the first stop with
// factor 0; x at or above the last stop clamps to the last stop with
// factor 0 - both are reported via the returned index alone, since a
// lower-segment index with t=0 selects its "out" value directly.
func Locate(spec Spec, stops []float64, x float64) (lower int, t float64) {
	n := len(stops)
	if n == 0 {
		return 0, 0
	}
	if x <= stops[0] {
		return 0, 0
	}
	if x >= stops[n-1] {
		return n - 1, 0
	}

	lo, hi := 0, n-1
	for lo < hi-1 {
		mid := (lo + hi) / 2
		if stops[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	// lo, lo+1 now bracket x.
	if spec.Kind == Step {
		return lo, 0
	}
	return lo, Factor(spec, stops[lo], stops[lo+1], x)
}

// Factor computes the normalized [0,1) position of x between lo and hi
// according to spec's interpolation kind.
func Factor(spec Spec, lo, hi, x float64) float64 {
	span := hi - lo
	if span <= 0 {
		return 0
	}
	progress := (x - lo) / span
	switch spec.Kind {
	case Linear:
		return progress
	case Exponential:
		base := spec.Base
		if base == 1 {
			return progress
		}
		return (math.Pow(base, x-lo) - 1) / (math.Pow(base, hi-lo) - 1)
	default:
		return 0
	}
}
