package checker

import "fmt"

// kindError is the common shape behind the checker's named static errors
// (type mismatches from unify are plain fmt.Errorf values); its Error()
// text is what ends up in eastree.ParseOrTypeError.
type kindError struct {
	kind string
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func arityError(declared, got int) error {
	if declared < 0 {
		return &kindError{kind: "ArityMismatch", msg: fmt.Sprintf("wrong number of arguments (found %d)", got)}
	}
	return &kindError{kind: "ArityMismatch", msg: fmt.Sprintf("expected %d arguments, found %d", declared, got)}
}

func unresolvedGenericError(name string) error {
	return &kindError{kind: "UnresolvedGeneric", msg: fmt.Sprintf("could not resolve generic type %s", name)}
}

func nonLiteralMatchInputError() error {
	return &kindError{kind: "NonLiteralMatchInput", msg: "Match inputs must be literal primitive values or arrays of literal primitive values."}
}

func emptyMatchGroupError() error {
	return &kindError{kind: "EmptyMatchGroup", msg: "Match label group must not be empty"}
}

func nonNumericCurveStopError() error {
	return &kindError{kind: "NonNumericCurveStop", msg: "Input/output pairs for \"curve\" expressions must be defined using literal numeric values, and statistically increasing input values."}
}

func nonAscendingCurveStopsError() error {
	return &kindError{kind: "NonAscendingCurveStops", msg: "curve stop inputs must be strictly ascending"}
}

func nonInterpolatableCurveOutputError(found string) error {
	return &kindError{kind: "NonInterpolatableCurveOutput", msg: fmt.Sprintf("curve output type %s cannot be interpolated", found)}
}

func nonLiteralExponentialBaseError() error {
	return &kindError{kind: "NonLiteralExponentialBase", msg: "exponential's base must be a literal number"}
}
