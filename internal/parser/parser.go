// Package parser turns a raw JSON-like expression tree ([]any / string /
// float64 / bool / nil, as produced by encoding/json) into the untyped
// eastree AST: Literal and Call nodes with registry-declared (not yet
// checked) types.
package parser

import (
	"fmt"

	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/registry"
)

// Parse converts raw into an untyped AST, collecting every parse error
// found rather than aborting on the first one.
func Parse(raw any) (eastree.Expression, []eastree.ParseOrTypeError) {
	return parseAt(raw, eastree.RootKeyPath())
}

func parseAt(raw any, path eastree.KeyPath) (eastree.Expression, []eastree.ParseOrTypeError) {
	arr, isArray := raw.([]any)
	if !isArray {
		switch raw.(type) {
		case nil, float64, string, bool:
			return eastree.NewLiteral(path.String(), raw), nil
		}
		return eastree.NewLiteral(path.String(), nil), []eastree.ParseOrTypeError{
			{Key: path.String(), Error: fmt.Sprintf("Expected a literal or an expression array, found %T", raw)},
		}
	}

	if len(arr) == 0 {
		return eastree.NewLiteral(path.String(), nil), []eastree.ParseOrTypeError{
			{Key: path.Child(0).String(), Error: "Expected a string operator"},
		}
	}

	op, ok := arr[0].(string)
	if !ok {
		return eastree.NewLiteral(path.String(), nil), []eastree.ParseOrTypeError{
			{Key: path.Child(0).String(), Error: "Expected a string operator"},
		}
	}

	if op == "match" {
		return parseMatch(arr, path)
	}

	def, found := registry.Lookup(op)
	if !found {
		return eastree.NewLiteral(path.String(), nil), []eastree.ParseOrTypeError{
			{Key: path.String(), Error: fmt.Sprintf("Unknown function %s", op)},
		}
	}

	var errs []eastree.ParseOrTypeError
	args := make([]eastree.Expression, 0, len(arr)-1)
	for i := 1; i < len(arr); i++ {
		arg, argErrs := parseAt(arr[i], path.Child(i))
		args = append(args, arg)
		errs = append(errs, argErrs...)
	}

	typ := def.Type
	if op == "array" {
		// array's declared result length depends on the call site's
		// argument count, so the registry's template type is overridden
		// here rather than in the registry itself.
		typ.Result = etypes.Array{Item: etypes.TypeName{Name: "T"}, N: len(args)}
	}

	call := &eastree.Call{
		Name:      op,
		Typ:       typ,
		Arguments: args,
		ValueKey:  path.String(),
	}
	return call, errs
}

// parseMatch implements the dedicated grammar for ["match", input,
// label1, out1, ..., otherwise].
func parseMatch(arr []any, path eastree.KeyPath) (eastree.Expression, []eastree.ParseOrTypeError) {
	rest := arr[1:]
	if len(rest) < 2 || (len(rest)-2)%2 != 0 {
		return eastree.NewLiteral(path.String(), nil), []eastree.ParseOrTypeError{
			{Key: path.String(), Error: "match requires an input, zero or more label/output pairs, and an otherwise value"},
		}
	}

	var errs []eastree.ParseOrTypeError

	input, inputErrs := parseAt(rest[0], path.Child(1))
	errs = append(errs, inputErrs...)

	pairs := rest[1 : len(rest)-1]
	n := len(pairs) / 2

	matchInputs := make([][]*eastree.Literal, 0, n)
	outputs := make([]eastree.Expression, 0, n)
	for i := 0; i < n; i++ {
		labelIdx := 2 + 2*i
		outIdx := labelIdx + 1
		group, groupErrs := parseMatchLabel(pairs[2*i], path.Child(labelIdx))
		errs = append(errs, groupErrs...)
		matchInputs = append(matchInputs, group)

		out, outErrs := parseAt(pairs[2*i+1], path.Child(outIdx))
		outputs = append(outputs, out)
		errs = append(errs, outErrs...)
	}

	otherwise, otherErrs := parseAt(rest[len(rest)-1], path.Child(len(arr)-1))
	errs = append(errs, otherErrs...)

	arguments := make([]eastree.Expression, 0, n+2)
	arguments = append(arguments, input)
	arguments = append(arguments, outputs...)
	arguments = append(arguments, otherwise)

	def, _ := registry.Lookup("match")
	call := &eastree.Call{
		Name:        "match",
		Typ:         def.Type,
		Arguments:   arguments,
		ValueKey:    path.String(),
		MatchInputs: matchInputs,
	}
	return call, errs
}

// parseMatchLabel resolves one match label. A label is tried first as a
// normal expression; if it is a call to a known registry function the
// call's result (necessarily non-literal) is rejected. A JSON array whose
// first element is not a registered function name is instead read as a
// literal group - this is how ["b", "c"] means "b or c" while ["get",
// "x"] still means the get(x) call it looks like.
func parseMatchLabel(raw any, path eastree.KeyPath) ([]*eastree.Literal, []eastree.ParseOrTypeError) {
	arr, isArray := raw.([]any)
	if !isArray {
		return []*eastree.Literal{eastree.NewLiteral(path.String(), raw)}, nil
	}

	if len(arr) == 0 {
		return nil, []eastree.ParseOrTypeError{{Key: path.String(), Error: "Match label group must not be empty"}}
	}

	if first, ok := arr[0].(string); ok {
		if _, found := registry.Lookup(first); found {
			expr, errs := parseAt(raw, path)
			if len(errs) > 0 {
				return nil, errs
			}
			if lit, ok := expr.(*eastree.Literal); ok {
				return []*eastree.Literal{lit}, nil
			}
			return nil, []eastree.ParseOrTypeError{
				{Key: path.String(), Error: "Match inputs must be literal primitive values or arrays of literal primitive values."},
			}
		}
	}

	group := make([]*eastree.Literal, 0, len(arr))
	for i, el := range arr {
		if _, nested := el.([]any); nested {
			return nil, []eastree.ParseOrTypeError{
				{Key: path.Child(i).String(), Error: "Match inputs must be literal primitive values or arrays of literal primitive values."},
			}
		}
		group = append(group, eastree.NewLiteral(path.Child(i).String(), el))
	}
	return group, nil
}
