// Package checker implements the two-pass Hindley-Milner-style type
// checker: result unification against the caller's expected type,
// shallow argument matching to bind the call's typenames, then a
// recursive per-argument check against the now-resolved parameter
// types. It walks the parser's untyped AST and returns a fully-resolved
// tree with every Lambda's typenames substituted away.
package checker

import (
	"github.com/styleexpr/exprlang/internal/eastree"
	"github.com/styleexpr/exprlang/internal/etypes"
)

// Check resolves expr against expected, returning the resolved AST and
// every static error encountered. Errors are collected, not aborted on -
// a malformed subtree is still walked so sibling errors surface too. The
// one exception is a Call with the wrong number of arguments: its
// arguments are not checked, since there are no parameter types to check
// them against.
func Check(expected etypes.Type, expr eastree.Expression) (eastree.Expression, []eastree.ParseOrTypeError) {
	switch e := expr.(type) {
	case *eastree.Literal:
		return checkLiteral(expected, e)
	case *eastree.Call:
		return checkCall(expected, e)
	default:
		return expr, nil
	}
}

func checkLiteral(expected etypes.Type, lit *eastree.Literal) (eastree.Expression, []eastree.ParseOrTypeError) {
	eb, ab := bindings{}, bindings{}
	if err := unify(expected, lit.Typ, eb, ab); err != nil {
		return lit, []eastree.ParseOrTypeError{{Key: lit.Key(), Error: err.Error()}}
	}
	return lit, nil
}

func checkCall(expected etypes.Type, call *eastree.Call) (eastree.Expression, []eastree.ParseOrTypeError) {
	var errs []eastree.ParseOrTypeError

	resultExpected := expected
	if lam, ok := expected.(etypes.Lambda); ok {
		resultExpected = lam.Result
	}

	eb, ab := bindings{}, bindings{}
	if err := unify(resultExpected, call.Typ.Result, eb, ab); err != nil {
		errs = append(errs, eastree.ParseOrTypeError{Key: call.Key(), Error: err.Error()})
	}
	// call.Typ.Result is often a bare typename ("T"), which unify binds
	// into ab since it appears on the actual side here. That typename is
	// still one of this call's own generics, resolved the same as a
	// param typename would be, so fold it into eb alongside them.
	mergeBindings(eb, ab)

	expandedParams, err := expandParams(call.Typ.Params, len(call.Arguments))
	if err != nil {
		errs = append(errs, eastree.ParseOrTypeError{Key: call.Key(), Error: err.Error()})
		return call, errs
	}

	for i, param := range expandedParams {
		resolvedParam := etypes.Resolve(param, eb)
		if uerr := unify(resolvedParam, call.Arguments[i].Type(), eb, ab); uerr != nil {
			errs = append(errs, eastree.ParseOrTypeError{Key: call.Arguments[i].Key(), Error: uerr.Error()})
		}
		mergeBindings(eb, ab)
	}

	newArgs := make([]eastree.Expression, len(call.Arguments))
	resolvedParams := make([]etypes.Type, len(expandedParams))
	for i, param := range expandedParams {
		resolvedParam := etypes.Resolve(param, eb)
		resolvedParams[i] = resolvedParam
		checkedArg, argErrs := Check(resolvedParam, call.Arguments[i])
		newArgs[i] = checkedArg
		errs = append(errs, argErrs...)
	}

	resultType := etypes.Resolve(call.Typ.Result, eb)
	if etypes.IsGeneric(resultType) {
		errs = append(errs, eastree.ParseOrTypeError{Key: call.Key(), Error: unresolvedGenericError(resultType.String()).Error()})
	}

	newMatchInputs := call.MatchInputs
	if call.MatchInputs != nil && len(newArgs) > 0 {
		inputType := newArgs[0].Type()
		for _, group := range call.MatchInputs {
			for _, lit := range group {
				leb, lab := bindings{}, bindings{}
				if uerr := unify(inputType, lit.Typ, leb, lab); uerr != nil {
					errs = append(errs, eastree.ParseOrTypeError{Key: lit.Key(), Error: uerr.Error()})
				}
			}
		}
	}

	resolved := &eastree.Call{
		Name:        call.Name,
		Typ:         etypes.Lambda{Result: resultType, Params: resolvedParams},
		Arguments:   newArgs,
		ValueKey:    call.ValueKey,
		MatchInputs: newMatchInputs,
	}

	if call.Name == "curve" {
		errs = append(errs, checkCurve(resolved)...)
	}

	return resolved, errs
}
