package registry

import (
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func init() {
	registerComparison("==", func(a, b any) bool { return equalValues(a, b) })
	registerComparison("!=", func(a, b any) bool { return !equalValues(a, b) })
	registerOrdering(">", func(c int) bool { return c > 0 })
	registerOrdering("<", func(c int) bool { return c < 0 })
	registerOrdering(">=", func(c int) bool { return c >= 0 })
	registerOrdering("<=", func(c int) bool { return c <= 0 })

	registerVariadicBoolean("&&", true, func(acc, v bool) bool { return acc && v })
	registerVariadicBoolean("||", false, func(acc, v bool) bool { return acc || v })

	register(&Definition{
		Name: "!",
		Type: lambdaOf(etypes.Boolean, etypes.Boolean),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				v, err := args[0](env)
				if err != nil {
					return nil, err
				}
				b, err := asBool(call.Key(), v)
				if err != nil {
					return nil, err
				}
				return !b, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}

func equalValues(a, b any) bool {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		return af == bf
	}
	return a == b
}

// compareValues returns -1, 0 or 1 comparing a to b; two numbers compare
// numerically, two strings lexically, and any other operand (a boolean,
// or a number paired with a string) is a TypeAssertion error.
func compareValues(key string, a, b any) (int, error) {
	if af, ok := a.(float64); ok {
		if bf, ok2 := b.(float64); ok2 {
			switch {
			case af < bf:
				return -1, nil
			case af > bf:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	as, err := asString(key, a)
	if err != nil {
		return 0, err
	}
	bs, err := asString(key, b)
	if err != nil {
		return 0, err
	}
	switch {
	case as < bs:
		return -1, nil
	case as > bs:
		return 1, nil
	default:
		return 0, nil
	}
}

func registerComparison(name string, cmp func(a, b any) bool) {
	t := etypes.TypeName{Name: "T"}
	register(&Definition{
		Name: name,
		Type: lambdaOf(etypes.Boolean, t, t),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				a, err := args[0](env)
				if err != nil {
					return nil, err
				}
				b, err := args[1](env)
				if err != nil {
					return nil, err
				}
				return cmp(a, b), nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}

func registerOrdering(name string, accept func(cmp int) bool) {
	t := etypes.TypeName{Name: "T"}
	register(&Definition{
		Name: name,
		Type: lambdaOf(etypes.Boolean, t, t),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				a, err := args[0](env)
				if err != nil {
					return nil, err
				}
				b, err := args[1](env)
				if err != nil {
					return nil, err
				}
				c, err := compareValues(call.Key(), a, b)
				if err != nil {
					return nil, err
				}
				return accept(c), nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}

func registerVariadicBoolean(name string, identity bool, fold func(acc, v bool) bool) {
	register(&Definition{
		Name: name,
		Type: lambdaOf(etypes.Boolean, nargs(etypes.Unbounded, etypes.Boolean)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				acc := identity
				for _, th := range args {
					v, err := th(env)
					if err != nil {
						return nil, err
					}
					b, err := asBool(call.Key(), v)
					if err != nil {
						return nil, err
					}
					acc = fold(acc, b)
				}
				return acc, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}
