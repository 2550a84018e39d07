package runtime

import "fmt"

// RuntimeErrorKind enumerates the taxonomy of errors the evaluator can
// raise while executing a compiled expression.
type RuntimeErrorKind string

const (
	PropertyNotFound  RuntimeErrorKind = "PropertyNotFound"
	IndexOutOfBounds  RuntimeErrorKind = "IndexOutOfBounds"
	TypeAssertion     RuntimeErrorKind = "TypeAssertion"
	ColorParse        RuntimeErrorKind = "ColorParse"
	UnknownRuntimeType RuntimeErrorKind = "UnknownRuntimeType"
)

// Error is a runtime error raised during evaluation. It carries the
// diagnostic Key of the Call node that raised it, purely for
// localization - like eastree.ParseError, Key never changes program
// behavior.
type Error struct {
	Kind    RuntimeErrorKind
	Key     string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// NewError builds a *Error with a formatted message.
func NewError(kind RuntimeErrorKind, key, format string, args ...any) *Error {
	return &Error{Kind: kind, Key: key, Message: fmt.Sprintf(format, args...)}
}
