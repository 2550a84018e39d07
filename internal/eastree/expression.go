// Package eastree defines the expression AST produced by the parser,
// replaced wholesale by the type checker, and consumed by the evaluator.
package eastree

import "github.com/styleexpr/exprlang/internal/etypes"

// Expression is a node of the style DSL AST: either a Literal or a Call.
type Expression interface {
	Key() string
	Type() etypes.Type
	isExpression()
}

// Literal is a bare JSON primitive: null, a number, a string, or a
// boolean. Its type is the primitive matching its runtime kind (or Null).
type Literal struct {
	ValueKey string
	Value    any // nil, float64, string, or bool
	Typ      etypes.Type
}

func (l *Literal) isExpression()     {}
func (l *Literal) Key() string       { return l.ValueKey }
func (l *Literal) Type() etypes.Type { return l.Typ }

// NewLiteral builds a Literal whose Typ is inferred from the runtime kind
// of value (nil -> etypes.Null, float64 -> etypes.Number, string ->
// etypes.String, bool -> etypes.Boolean).
func NewLiteral(key string, value any) *Literal {
	var typ etypes.Type
	switch value.(type) {
	case nil:
		typ = etypes.Null
	case float64:
		typ = etypes.Number
	case string:
		typ = etypes.String
	case bool:
		typ = etypes.Boolean
	default:
		panic(value)
	}
	return &Literal{ValueKey: key, Value: value, Typ: typ}
}

// Call references a definition in the registry by Name. Arguments is the
// fully-expanded (post parameter-expansion) argument list. MatchInputs,
// when present, carries only Literal nodes - enforced at parse time -
// one group of labels per non-default branch of a "match" expression.
type Call struct {
	Name        string
	Typ         etypes.Lambda
	Arguments   []Expression
	ValueKey    string
	MatchInputs [][]*Literal
}

func (c *Call) isExpression()     {}
func (c *Call) Key() string       { return c.ValueKey }
func (c *Call) Type() etypes.Type { return c.Typ.Result }

// LambdaType returns the Call's full signature (result and declared
// parameter list), as opposed to Type() which returns only the result.
func (c *Call) LambdaType() etypes.Lambda { return c.Typ }

// ParseError reports a static parse failure localized to a dot-joined
// JSON path.
type ParseError struct {
	KeyPath string
	Err     string
}

func (e *ParseError) Error() string { return e.KeyPath + ": " + e.Err }

// ParseOrTypeError is the common shape surfaced across the external
// API: a diagnostic localized to a JSON path.
type ParseOrTypeError struct {
	Key   string
	Error string
}
