package registry

import (
	"math"

	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func init() {
	registerConstant("ln2", math.Ln2)
	registerConstant("pi", math.Pi)
	registerConstant("e", math.E)
}

// registerConstant registers a zero-argument numeric constant, e.g. pi.
func registerConstant(name string, value float64) {
	register(&Definition{
		Name: name,
		Type: lambdaOf(etypes.Number),
		Compile: func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error) {
			return func(env *runtime.Env) (any, error) {
				return value, nil
			}, runtime.AlwaysPure, nil
		},
	})
}
