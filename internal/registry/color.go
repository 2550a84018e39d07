package registry

import (
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func init() {
	register(&Definition{
		Name: "color",
		Type: lambdaOf(etypes.Color, etypes.String),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			arg := args[0]
			fn := func(env *runtime.Env) (any, error) {
				s, err := evalString(arg, env)
				if err != nil {
					return nil, err
				}
				rgba, ok := env.Collaborators.ParseColor(s)
				if !ok {
					return nil, runtime.NewError(runtime.ColorParse, call.Key(), "could not parse color %q", s)
				}
				return runtime.Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "rgb",
		Type: lambdaOf(etypes.Color, etypes.Number, etypes.Number, etypes.Number),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				vals, err := force(args, env)
				if err != nil {
					return nil, err
				}
				r, err := asFloat(call.Key(), vals[0])
				if err != nil {
					return nil, err
				}
				g, err := asFloat(call.Key(), vals[1])
				if err != nil {
					return nil, err
				}
				b, err := asFloat(call.Key(), vals[2])
				if err != nil {
					return nil, err
				}
				return runtime.Color{R: r, G: g, B: b, A: 1}, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "rgba",
		Type: lambdaOf(etypes.Color, etypes.Number, etypes.Number, etypes.Number, etypes.Number),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				vals, err := force(args, env)
				if err != nil {
					return nil, err
				}
				r, err := asFloat(call.Key(), vals[0])
				if err != nil {
					return nil, err
				}
				g, err := asFloat(call.Key(), vals[1])
				if err != nil {
					return nil, err
				}
				b, err := asFloat(call.Key(), vals[2])
				if err != nil {
					return nil, err
				}
				a, err := asFloat(call.Key(), vals[3])
				if err != nil {
					return nil, err
				}
				return runtime.Color{R: r, G: g, B: b, A: a}, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "color_to_array",
		Type: lambdaOf(etypes.Array{Item: etypes.Number, N: 4}, etypes.Color),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			arg := args[0]
			fn := func(env *runtime.Env) (any, error) {
				v, err := arg(env)
				if err != nil {
					return nil, err
				}
				c, ok := v.(runtime.Color)
				if !ok {
					return nil, runtime.NewError(runtime.TypeAssertion, call.Key(), "expected a color, found %s", runtime.TypeOf(v))
				}
				return runtime.Array{Items: []any{c.R, c.G, c.B, c.A}}, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}
