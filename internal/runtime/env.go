package runtime

import "github.com/styleexpr/exprlang/internal/etypes"

// Collaborators bundles the external functions the engine itself never
// implements per the specification's explicit non-goals: color string
// parsing and the numeric/color/array interpolation routines. They are
// supplied by the host (a full map style engine, or internal/defaults,
// which cmd/exprc and cmd/exprd use for standalone operation).
type Collaborators struct {
	ParseColor       func(s string) (etypes.RGBA, bool)
	InterpolateNumber func(a, b, t float64) float64
	InterpolateColor func(a, b etypes.RGBA, t float64) etypes.RGBA
	InterpolateArray func(a, b []float64, t float64) []float64
}

// Env is threaded through every Thunk invocation: the zoom level and
// feature being evaluated, plus the collaborators above.
type Env struct {
	Zoom          float64
	Feature       *Feature
	Collaborators *Collaborators
}
