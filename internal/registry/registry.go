// Package registry is the static table of built-in operator and function
// definitions: each entry pairs a declared signature (used by the parser
// and checker) with a compile rule (used by the evaluator to turn a
// resolved Call into a runtime.Thunk).
package registry

import (
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/runtime"
)

// CompileFunc builds the runtime.Thunk for a resolved Call from its
// already-compiled argument thunks. It also reports any purity the entry
// itself introduces (e.g. zoom() is never zoom-constant); most entries
// return runtime.AlwaysPure.
type CompileFunc func(call *eastree.Call, args []runtime.Thunk) (runtime.Thunk, runtime.Purity, error)

// Definition is one entry of the registry.
type Definition struct {
	Name    string
	Type    etypes.Lambda
	Compile CompileFunc
}

var table = map[string]*Definition{}

// register adds a definition to the static table. It is called only from
// package init() functions.
func register(d *Definition) {
	if _, exists := table[d.Name]; exists {
		panic("registry: duplicate definition " + d.Name)
	}
	table[d.Name] = d
}

// Lookup finds a definition by name.
func Lookup(name string) (*Definition, bool) {
	d, ok := table[name]
	return d, ok
}

// All returns every registered definition, for introspection.
func All() []*Definition {
	out := make([]*Definition, 0, len(table))
	for _, d := range table {
		out = append(out, d)
	}
	return out
}

// lambdaOf is a small constructor used throughout the builtin files.
func lambdaOf(result etypes.Type, params ...etypes.Type) etypes.Lambda {
	return etypes.Lambda{Result: result, Params: params}
}

// nargs builds an etypes.NArgs macro - see etypes.NArgs's doc comment.
func nargs(n int, types ...etypes.Type) etypes.NArgs {
	return etypes.NArgs{Types: types, N: n}
}
