package registry

import (
	"strconv"

	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func init() {
	registerCoercion("string", coerceToString)
	registerCoercion("number", coerceToNumber)
	registerCoercion("boolean", coerceToBoolean)
	registerCoercion("object", coerceToObject)
	registerCoercion("json_array", coerceToJSONArray)
}

type coercer func(key string, v any) (any, error)

// registerCoercion registers a lambda(T, Value) coercion. Because the
// checker resolves T against the caller's expected type before the
// registry's Compile callback ever runs, the callback itself never has
// to guess the target type - it is free to ignore it and always produce
// the same runtime representation convert expects.
func registerCoercion(name string, convert coercer) {
	register(&Definition{
		Name: name,
		Type: lambdaOf(etypes.TypeName{Name: "T"}, etypes.ValueType),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			arg := args[0]
			return func(env *runtime.Env) (any, error) {
				v, err := arg(env)
				if err != nil {
					return nil, err
				}
				if v == nil {
					return nil, nil
				}
				return convert(call.Key(), v)
			}, runtime.AlwaysPure, nil
		},
	})
}

func coerceToString(key string, v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return nil, runtime.NewError(runtime.TypeAssertion, key, "could not coerce %s to string", runtime.TypeOf(v))
	}
}

func coerceToNumber(key string, v any) (any, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, runtime.NewError(runtime.TypeAssertion, key, "could not coerce %q to number", t)
		}
		return f, nil
	case bool:
		if t {
			return float64(1), nil
		}
		return float64(0), nil
	default:
		return nil, runtime.NewError(runtime.TypeAssertion, key, "could not coerce %s to number", runtime.TypeOf(v))
	}
}

func coerceToBoolean(_ string, v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case float64:
		return t != 0, nil
	case string:
		return t != "", nil
	default:
		return true, nil
	}
}

func coerceToObject(key string, v any) (any, error) {
	if o, ok := v.(runtime.Object); ok {
		return o, nil
	}
	return nil, runtime.NewError(runtime.TypeAssertion, key, "expected an object, found %s", runtime.TypeOf(v))
}

func coerceToJSONArray(key string, v any) (any, error) {
	switch t := v.(type) {
	case runtime.Vector:
		return t, nil
	case runtime.Array:
		return runtime.Vector{Items: t.Items}, nil
	default:
		return nil, runtime.NewError(runtime.TypeAssertion, key, "expected an array, found %s", runtime.TypeOf(v))
	}
}
