// Package compile is the external entry point: raw JSON-like expression
// tree in, evaluable Callable out. It wires the parser, checker and
// evalr stages together and packages their collected errors into one
// Result.
package compile

import (
	"github.com/styleexpr/exprlang/internal/checker"
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/evalr"
	"github.com/styleexpr/exprlang/internal/parser"
	"github.com/styleexpr/exprlang/internal/runtime"
)

// Options bundles the external collaborators the engine never
// implements itself: color parsing and the three interpolation
// routines used by curve.
type Options struct {
	ParseColor       func(s string) (etypes.RGBA, bool)
	InterpolateNum   func(a, b, t float64) float64
	InterpolateColor func(a, b etypes.RGBA, t float64) etypes.RGBA
	InterpolateArray func(a, b []float64, t float64) []float64
}

func (o Options) collaborators() *runtime.Collaborators {
	return &runtime.Collaborators{
		ParseColor:        o.ParseColor,
		InterpolateNumber: o.InterpolateNum,
		InterpolateColor:  o.InterpolateColor,
		InterpolateArray:  o.InterpolateArray,
	}
}

// Feature is the caller-facing evaluation input, kept distinct from
// runtime.Feature so internal representation changes don't leak out.
type Feature struct {
	Properties   map[string]any
	GeometryType string
	ID           any
}

// Callable is the compiled expression's evaluation function.
type Callable func(zoom float64, feature Feature) (any, error)

// Result is everything Compile reports about one expression.
type Result struct {
	Ok                bool
	Value             Callable
	IsFeatureConstant bool
	IsZoomConstant    bool
	Expression        eastree.Expression
	Type              etypes.Type
	Errors            []eastree.ParseOrTypeError
}

// Compile parses, type-checks against expected, and evaluates raw into
// a Result. Ok is false iff Errors is non-empty; Value is nil in that
// case.
func Compile(raw any, expected etypes.Type, opts Options) Result {
	untyped, perrs := parser.Parse(raw)
	if len(perrs) > 0 {
		return Result{Errors: perrs}
	}

	resolved, cerrs := checker.Check(expected, untyped)
	if len(cerrs) > 0 {
		return Result{Errors: cerrs, Expression: resolved}
	}

	thunk, purity, err := evalr.Compile(resolved)
	if err != nil {
		return Result{Errors: []eastree.ParseOrTypeError{{Key: resolved.Key(), Error: err.Error()}}, Expression: resolved}
	}

	collaborators := opts.collaborators()
	callable := func(zoom float64, feature Feature) (result any, err error) {
		defer func() {
			if r := recover(); r != nil {
				result, err = nil, runtime.NewError(runtime.UnknownRuntimeType, resolved.Key(), "evaluation panicked: %v", r)
			}
		}()
		v, err := thunk(&runtime.Env{
			Zoom: zoom,
			Feature: &runtime.Feature{
				Properties:   feature.Properties,
				GeometryType: feature.GeometryType,
				ID:           feature.ID,
			},
			Collaborators: collaborators,
		})
		if err != nil {
			return nil, err
		}
		return runtime.Unwrap(v), nil
	}

	return Result{
		Ok:                true,
		Value:             callable,
		IsFeatureConstant: purity.FeatureConstant,
		IsZoomConstant:    purity.ZoomConstant,
		Expression:        resolved,
		Type:              resolved.Type(),
	}
}
