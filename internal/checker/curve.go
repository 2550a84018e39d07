package checker

import (
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
)

// checkCurve applies the curve-specific static validations that don't
// fit the general unification algorithm: stop inputs must be literal,
// strictly ascending numbers, the interpolation's exponential base (if
// any) must be literal, and the output type must be interpolatable
// unless the interpolation is step.
func checkCurve(call *eastree.Call) []eastree.ParseOrTypeError {
	var errs []eastree.ParseOrTypeError

	interpCall, _ := call.Arguments[0].(*eastree.Call)
	if interpCall != nil && interpCall.Name == "exponential" {
		if _, ok := interpCall.Arguments[0].(*eastree.Literal); !ok {
			errs = append(errs, eastree.ParseOrTypeError{Key: interpCall.Arguments[0].Key(), Error: nonLiteralExponentialBaseError().Error()})
		}
	}

	stops := call.Arguments[2:]
	var prev float64
	havePrev := false
	for i := 0; i < len(stops); i += 2 {
		lit, ok := stops[i].(*eastree.Literal)
		if !ok {
			errs = append(errs, eastree.ParseOrTypeError{Key: stops[i].Key(), Error: nonNumericCurveStopError().Error()})
			continue
		}
		f, ok := lit.Value.(float64)
		if !ok {
			errs = append(errs, eastree.ParseOrTypeError{Key: lit.Key(), Error: nonNumericCurveStopError().Error()})
			continue
		}
		if havePrev && f <= prev {
			errs = append(errs, eastree.ParseOrTypeError{Key: lit.Key(), Error: nonAscendingCurveStopsError().Error()})
		}
		prev = f
		havePrev = true
	}

	isStep := interpCall != nil && interpCall.Name == "step"
	if !isStep && len(stops) >= 2 {
		outType := stops[1].Type()
		if !isInterpolatable(outType) {
			errs = append(errs, eastree.ParseOrTypeError{Key: stops[1].Key(), Error: nonInterpolatableCurveOutputError(outType.String()).Error()})
		}
	}

	return errs
}

func isInterpolatable(t etypes.Type) bool {
	switch v := t.(type) {
	case etypes.Primitive:
		return v == etypes.Number || v == etypes.Color
	case etypes.Array:
		if p, ok := v.Item.(etypes.Primitive); ok {
			return p == etypes.Number
		}
		return false
	default:
		return false
	}
}
