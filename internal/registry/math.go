package registry

import (
	"math"

	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func init() {
	registerVariadicMath("+", 0, func(acc, v float64) float64 { return acc + v })
	registerVariadicMath("*", 1, func(acc, v float64) float64 { return acc * v })

	registerBinaryMath("-", func(a, b float64) float64 { return a - b })
	registerBinaryMath("/", func(a, b float64) float64 { return a / b })
	registerBinaryMath("%", func(a, b float64) float64 { return math.Mod(a, b) })
	registerBinaryMath("^", func(a, b float64) float64 { return math.Pow(a, b) })

	registerUnaryMath("log10", math.Log10)
	registerUnaryMath("ln", math.Log)
	registerUnaryMath("log2", math.Log2)
	registerUnaryMath("sin", math.Sin)
	registerUnaryMath("cos", math.Cos)
	registerUnaryMath("tan", math.Tan)
	registerUnaryMath("asin", math.Asin)
	registerUnaryMath("acos", math.Acos)
	registerUnaryMath("atan", math.Atan)
}

func registerVariadicMath(name string, identity float64, fold func(acc, v float64) float64) {
	register(&Definition{
		Name: name,
		Type: lambdaOf(etypes.Number, nargs(etypes.Unbounded, etypes.Number)),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				vals, err := force(args, env)
				if err != nil {
					return nil, err
				}
				acc := identity
				for _, v := range vals {
					f, err := asFloat(call.Key(), v)
					if err != nil {
						return nil, err
					}
					acc = fold(acc, f)
				}
				return acc, nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}

func registerBinaryMath(name string, apply func(a, b float64) float64) {
	register(&Definition{
		Name: name,
		Type: lambdaOf(etypes.Number, etypes.Number, etypes.Number),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				a, err := evalFloat(args[0], env)
				if err != nil {
					return nil, err
				}
				b, err := evalFloat(args[1], env)
				if err != nil {
					return nil, err
				}
				return apply(a, b), nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}

func registerUnaryMath(name string, apply func(float64) float64) {
	register(&Definition{
		Name: name,
		Type: lambdaOf(etypes.Number, etypes.Number),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			fn := func(env *runtime.Env) (any, error) {
				v, err := evalFloat(args[0], env)
				if err != nil {
					return nil, err
				}
				return apply(v), nil
			}
			return fn, runtime.AlwaysPure, nil
		},
	})
}
