package registry

import (
	"github.com/styleexpr/exprlang/internal/curve"
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

// zeroEnv is used to force the handful of thunks that are guaranteed
// constant by construction - the interpolation markers and curve stop
// inputs, which the checker requires to be literal - without requiring
// a real zoom/feature to be available at compile time.
var zeroEnv = &runtime.Env{Feature: &runtime.Feature{}}

func init() {
	register(&Definition{
		Name: "step",
		Type: lambdaOf(etypes.InterpolationType),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			spec := curve.Spec{Kind: curve.Step}
			return func(env *runtime.Env) (any, error) { return spec, nil }, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "linear",
		Type: lambdaOf(etypes.InterpolationType),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			spec := curve.Spec{Kind: curve.Linear}
			return func(env *runtime.Env) (any, error) { return spec, nil }, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "exponential",
		Type: lambdaOf(etypes.InterpolationType, etypes.Number),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			base, err := evalFloat(args[0], zeroEnv)
			if err != nil {
				return nil, runtime.AlwaysPure, err
			}
			spec := curve.Spec{Kind: curve.Exponential, Base: base}
			return func(env *runtime.Env) (any, error) { return spec, nil }, runtime.AlwaysPure, nil
		},
	})

	t := etypes.TypeName{Name: "T"}
	register(&Definition{
		Name: "curve",
		Type: lambdaOf(t, etypes.InterpolationType, etypes.Number, nargs(etypes.Unbounded, etypes.Number, t)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			specV, err := args[0](zeroEnv)
			if err != nil {
				return nil, runtime.AlwaysPure, err
			}
			spec := specV.(curve.Spec)
			inputArg := args[1]

			nStops := (len(args) - 2) / 2
			stopIns := make([]float64, nStops)
			stopOuts := make([]runtime.Thunk, nStops)
			for i := 0; i < nStops; i++ {
				v, err := evalFloat(args[2+2*i], zeroEnv)
				if err != nil {
					return nil, runtime.AlwaysPure, err
				}
				stopIns[i] = v
				stopOuts[i] = args[3+2*i]
			}

			fn := func(env *runtime.Env) (any, error) {
				x, err := evalFloat(inputArg, env)
				if err != nil {
					return nil, err
				}
				idx, factor := curve.Locate(spec, stopIns, x)
				lo, err := stopOuts[idx](env)
				if err != nil {
					return nil, err
				}
				if factor == 0 || idx == nStops-1 {
					return lo, nil
				}
				hi, err := stopOuts[idx+1](env)
				if err != nil {
					return nil, err
				}
				return interpolateOutputs(call.Key(), env, lo, hi, factor)
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}

func interpolateOutputs(key string, env *runtime.Env, lo, hi any, t float64) (any, error) {
	switch a := lo.(type) {
	case float64:
		b, err := asFloat(key, hi)
		if err != nil {
			return nil, err
		}
		return env.Collaborators.InterpolateNumber(a, b, t), nil
	case runtime.Color:
		b, ok := hi.(runtime.Color)
		if !ok {
			return nil, runtime.NewError(runtime.TypeAssertion, key, "curve stop outputs must share a type, found %s and %s", runtime.TypeOf(lo), runtime.TypeOf(hi))
		}
		ar := etypes.RGBA{R: a.R, G: a.G, B: a.B, A: a.A}
		br := etypes.RGBA{R: b.R, G: b.G, B: b.B, A: b.A}
		out := env.Collaborators.InterpolateColor(ar, br, t)
		return runtime.Color{R: out.R, G: out.G, B: out.B, A: out.A}, nil
	case runtime.Array:
		b, ok := hi.(runtime.Array)
		if !ok {
			return nil, runtime.NewError(runtime.TypeAssertion, key, "curve stop outputs must share a type, found %s and %s", runtime.TypeOf(lo), runtime.TypeOf(hi))
		}
		af, err := floatsOf(key, a.Items)
		if err != nil {
			return nil, err
		}
		bf, err := floatsOf(key, b.Items)
		if err != nil {
			return nil, err
		}
		out := env.Collaborators.InterpolateArray(af, bf, t)
		items := make([]any, len(out))
		for i, v := range out {
			items[i] = v
		}
		return runtime.Array{Items: items}, nil
	default:
		return nil, runtime.NewError(runtime.TypeAssertion, key, "curve output type %s is not interpolatable", runtime.TypeOf(lo))
	}
}

func floatsOf(key string, items []any) ([]float64, error) {
	out := make([]float64, len(items))
	for i, it := range items {
		f, err := asFloat(key, it)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
