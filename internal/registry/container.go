package registry

import (
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func init() {
	t := etypes.TypeName{Name: "T"}

	// array's declared signature is overridden by the parser for every
	// call site (Array(T, n) where n is the argument count); this entry
	// only supplies a template the parser's override replaces.
	register(&Definition{
		Name: "array",
		Type: lambdaOf(etypes.Array{Item: t, N: 0}, nargs(etypes.Unbounded, t)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				vals, err := force(args, env)
				if err != nil {
					return nil, err
				}
				return runtime.Array{Items: vals}, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "vector",
		Type: lambdaOf(etypes.Vector{Item: t}, nargs(etypes.Unbounded, t)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				vals, err := force(args, env)
				if err != nil {
					return nil, err
				}
				return runtime.Vector{Items: vals}, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "coalesce",
		Type: lambdaOf(t, nargs(etypes.Unbounded, t)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				var lastErr error
				for i, th := range args {
					v, err := th(env)
					if err != nil {
						lastErr = err
						if i == len(args)-1 {
							return nil, lastErr
						}
						continue
					}
					if v != nil {
						return v, nil
					}
				}
				return nil, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}
