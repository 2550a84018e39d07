package registry

import (
	"strings"

	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func init() {
	registerStringCase("upcase", strings.ToUpper)
	registerStringCase("downcase", strings.ToLower)

	register(&Definition{
		Name: "concat",
		Type: lambdaOf(etypes.String, nargs(etypes.Unbounded, etypes.ValueType)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				var b strings.Builder
				for _, th := range args {
					v, err := th(env)
					if err != nil {
						return nil, err
					}
					s, err := coerceToString(call.Key(), v)
					if err != nil {
						return nil, err
					}
					b.WriteString(s.(string))
				}
				return b.String(), nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}

func registerStringCase(name string, apply func(string) string) {
	register(&Definition{
		Name: name,
		Type: lambdaOf(etypes.String, etypes.String),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				s, err := evalString(args[0], env)
				if err != nil {
					return nil, err
				}
				return apply(s), nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}
