// Package evalr walks a fully type-checked eastree AST and produces a
// tree of runtime.Thunk closures, propagating the feature/zoom-constant
// purity flags bottom-up as it goes.
package evalr

import (
	"fmt"

	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/registry"
	"github.com/styleexpr/exprlang/internal/runtime"
)

// Compile turns a checked expression into a Thunk and the purity that
// thunk holds, which is the conjunction of every Call's own reported
// purity across the whole subtree.
func Compile(expr eastree.Expression) (runtime.Thunk, runtime.Purity, error) {
	switch e := expr.(type) {
	case *eastree.Literal:
		v := e.Value
		return func(env *runtime.Env) (any, error) { return v, nil }, runtime.AlwaysPure, nil

	case *eastree.Call:
		def, ok := registry.Lookup(e.Name)
		if !ok {
			return nil, runtime.Purity{}, fmt.Errorf("%s: unknown function %s", e.Key(), e.Name)
		}

		argThunks := make([]runtime.Thunk, len(e.Arguments))
		purity := runtime.AlwaysPure
		for i, arg := range e.Arguments {
			th, p, err := Compile(arg)
			if err != nil {
				return nil, runtime.Purity{}, err
			}
			argThunks[i] = th
			purity.FeatureConstant = purity.FeatureConstant && p.FeatureConstant
			purity.ZoomConstant = purity.ZoomConstant && p.ZoomConstant
		}

		thunk, ownPurity, err := def.Compile(e, argThunks)
		if err != nil {
			return nil, runtime.Purity{}, err
		}
		purity.FeatureConstant = purity.FeatureConstant && ownPurity.FeatureConstant
		purity.ZoomConstant = purity.ZoomConstant && ownPurity.ZoomConstant
		return thunk, purity, nil

	default:
		return nil, runtime.Purity{}, fmt.Errorf("%s: unrecognized expression node", expr.Key())
	}
}
