package registry

import (
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func init() {
	t := etypes.TypeName{Name: "T"}

	// case compiles to left-to-right short-circuit: c1?v1:c2?v2:...:default.
	// The NArgs(Boolean,T) pair repeated any number of times, followed by a
	// trailing T, is what forces the checker to reject an even-length
	// argument list (there is always exactly one argument left over for
	// the final param after expansion).
	register(&Definition{
		Name: "case",
		Type: lambdaOf(t, nargs(etypes.Unbounded, etypes.Boolean, t), t),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				i := 0
				for i+1 < len(args) {
					cond, err := args[i](env)
					if err != nil {
						return nil, err
					}
					b, err := asBool(call.Key(), cond)
					if err != nil {
						return nil, err
					}
					if b {
						return args[i+1](env)
					}
					i += 2
				}
				return args[len(args)-1](env)
			}
			return fn, runtime.AlwaysPure, nil
		},
	})

	register(&Definition{
		Name: "match",
		Type: lambdaOf(t, etypes.ValueType, nargs(etypes.Unbounded, t), t),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			input := args[0]
			otherwise := args[len(args)-1]
			outputs := args[1 : len(args)-1]

			lookup := make(map[string]runtime.Thunk, len(outputs))
			for i, group := range call.MatchInputs {
				for _, label := range group {
					lookup[runtime.MatchKey(label.Value)] = outputs[i]
				}
			}

			fn := func(env *runtime.Env) (any, error) {
				v, err := input(env)
				if err != nil {
					return nil, err
				}
				if out, ok := lookup[runtime.MatchKey(v)]; ok {
					return out(env)
				}
				return otherwise(env)
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}
