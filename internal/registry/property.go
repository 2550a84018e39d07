package registry

import (
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func sequenceOrValueVariant() *etypes.Variant {
	t := etypes.TypeName{Name: "T"}
	return etypes.NewVariant("", etypes.Vector{Item: t}, etypes.AnyArray{Item: t})
}

func init() {
	t := etypes.TypeName{Name: "T"}

	register(&Definition{
		Name: "get",
		Type: lambdaOf(etypes.ValueType, etypes.String, nargs(1, etypes.ValueType)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			hasObj := len(args) > 1
			keyArg, objArg := args[0], runtime.Thunk(nil)
			if hasObj {
				objArg = args[1]
			}
			fn := func(env *runtime.Env) (any, error) {
				key, err := evalString(keyArg, env)
				if err != nil {
					return nil, err
				}
				obj, err := resolveObject(objArg, env, call.Key())
				if err != nil {
					return nil, err
				}
				v, ok := obj[key]
				if !ok {
					return nil, runtime.NewError(runtime.PropertyNotFound, call.Key(), "property %q not found", key)
				}
				if m, isMap := v.(map[string]any); isMap {
					return runtime.Object{Fields: m}, nil
				}
				return v, nil
			}
			return fn, runtime.Purity{FeatureConstant: hasObj, ZoomConstant: true}, nil
		},
	})

	register(&Definition{
		Name: "has",
		Type: lambdaOf(etypes.Boolean, etypes.String, nargs(1, etypes.ValueType)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			hasObj := len(args) > 1
			keyArg, objArg := args[0], runtime.Thunk(nil)
			if hasObj {
				objArg = args[1]
			}
			fn := func(env *runtime.Env) (any, error) {
				key, err := evalString(keyArg, env)
				if err != nil {
					return nil, err
				}
				obj, err := resolveObject(objArg, env, call.Key())
				if err != nil {
					return nil, err
				}
				_, ok := obj[key]
				return ok, nil
			}
			return fn, runtime.Purity{FeatureConstant: hasObj, ZoomConstant: true}, nil
		},
	})

	register(&Definition{
		Name: "at",
		Type: lambdaOf(t, etypes.Number, sequenceOrValueVariant()),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			idxArg, seqArg := args[0], args[1]
			fn := func(env *runtime.Env) (any, error) {
				idxF, err := evalFloat(idxArg, env)
				if err != nil {
					return nil, err
				}
				seqV, err := seqArg(env)
				if err != nil {
					return nil, err
				}
				seq, err := asSequence(call.Key(), seqV)
				if err != nil {
					return nil, err
				}
				idx := int(idxF)
				if idx < 0 || idx >= len(seq) {
					return nil, runtime.NewError(runtime.IndexOutOfBounds, call.Key(), "index %d out of bounds (length %d)", idx, len(seq))
				}
				return seq[idx], nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "length",
		Type: lambdaOf(etypes.Number, etypes.NewVariant("", etypes.Vector{Item: t}, etypes.AnyArray{Item: t}, etypes.String)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			seqArg := args[0]
			fn := func(env *runtime.Env) (any, error) {
				v, err := seqArg(env)
				if err != nil {
					return nil, err
				}
				seq, err := asSequence(call.Key(), v)
				if err != nil {
					return nil, err
				}
				return float64(len(seq)), nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "typeof",
		Type: lambdaOf(etypes.String, etypes.ValueType),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			arg := args[0]
			fn := func(env *runtime.Env) (any, error) {
				v, err := arg(env)
				if err != nil {
					return nil, err
				}
				return runtime.TypeOf(v), nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "properties",
		Type: lambdaOf(etypes.Object),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				return runtime.Object{Fields: env.Feature.Properties}, nil
			}
			return fn, runtime.Purity{FeatureConstant: false, ZoomConstant: true}, nil
		},
	})

	register(&Definition{
		Name: "geometry_type",
		Type: lambdaOf(etypes.String),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				return env.Feature.GeometryType, nil
			}
			return fn, runtime.Purity{FeatureConstant: false, ZoomConstant: true}, nil
		},
	})

	register(&Definition{
		Name: "id",
		Type: lambdaOf(etypes.ValueType),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				return env.Feature.ID, nil
			}
			return fn, runtime.Purity{FeatureConstant: false, ZoomConstant: true}, nil
		},
	})

	register(&Definition{
		Name: "zoom",
		Type: lambdaOf(etypes.Number),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				return env.Zoom, nil
			}
			return fn, runtime.Purity{FeatureConstant: true, ZoomConstant: false}, nil
		},
	})
}

func evalString(th runtime.Thunk, env *runtime.Env) (string, error) {
	v, err := th(env)
	if err != nil {
		return "", err
	}
	return asString("", v)
}

func evalFloat(th runtime.Thunk, env *runtime.Env) (float64, error) {
	v, err := th(env)
	if err != nil {
		return 0, err
	}
	return asFloat("", v)
}

// resolveObject evaluates the optional obj thunk, defaulting to the
// feature's own properties when objArg is nil.
func resolveObject(objArg runtime.Thunk, env *runtime.Env, key string) (map[string]any, error) {
	if objArg == nil {
		return env.Feature.Properties, nil
	}
	v, err := objArg(env)
	if err != nil {
		return nil, err
	}
	o, err := asObject(key, v)
	if err != nil {
		return nil, err
	}
	return o.Fields, nil
}
