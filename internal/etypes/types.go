// Package etypes implements the algebraic type representation used to
// describe style expressions: primitives, generic type names, variant
// (sum) types, vectors/arrays, the NArgs parameter-list macro, and lambda
// signatures.
package etypes

import (
	"fmt"
	"strings"
)

// Type is the interface implemented by every member of the type algebra.
type Type interface {
	isType()
	String() string
}

// Primitive is a named atom from the closed base set.
type Primitive string

const (
	Null                Primitive = "null"
	Number              Primitive = "number"
	String              Primitive = "string"
	Boolean             Primitive = "boolean"
	Color               Primitive = "color"
	Object              Primitive = "object"
	InterpolationType   Primitive = "interpolation_type"
)

func (Primitive) isType() {}
func (p Primitive) String() string { return string(p) }

// TypeName is a generic placeholder scoped to the enclosing lambda
// signature (e.g. "T", "U").
type TypeName struct {
	Name string
}

func (TypeName) isType() {}
func (t TypeName) String() string { return t.Name }

// Variant is a disjoint union. Members may reference the enclosing
// Variant to express recursion (e.g. Value = Null | Number | ... |
// Vector<Value>). Equality of Variants is by pointer identity, never by
// structural comparison of members - see Equal.
type Variant struct {
	Members []Type
	name     string // optional display name, e.g. "Value"
}

func (*Variant) isType() {}

// String prints the variant's structural form (its members joined by
// "|"), never its declaration-site name - two separately-built variants
// with identical members print identically even though Equal treats them
// as distinct. Recursion through a self-referencing member falls back to
// the variant's declaration-site name, since the structural form has no
// finite printing.
func (v *Variant) String() string {
	return Name(v)
}

// NewVariant constructs a non-recursive variant.
func NewVariant(name string, members ...Type) *Variant {
	return &Variant{name: name, Members: members}
}

// NewRecursiveVariant builds a variant whose members may reference the
// variant being constructed. build receives the (still-empty) *Variant
// and returns the member list; the member referencing the variant itself
// typically closes over the returned pointer directly. This two-phase
// dance is necessary because Go has no way to write a literal cyclic
// value.
func NewRecursiveVariant(name string, build func(self *Variant) []Type) *Variant {
	v := &Variant{name: name}
	v.Members = build(v)
	return v
}

// Vector is an ordered sequence of elements of unspecified length.
type Vector struct {
	Item Type
}

func (Vector) isType() {}
func (v Vector) String() string { return fmt.Sprintf("Vector<%s>", v.Item.String()) }

// Array is an ordered sequence of exactly N elements.
type Array struct {
	Item Type
	N    int
}

func (Array) isType() {}
func (a Array) String() string { return fmt.Sprintf("Array<%s, %d>", a.Item.String(), a.N) }

// AnyArray matches any Array regardless of N. It is valid only in
// parameter positions, never as a resolved result type.
type AnyArray struct {
	Item Type
}

func (AnyArray) isType() {}
func (a AnyArray) String() string { return fmt.Sprintf("Array<%s>", a.Item.String()) }

// Unbounded is the sentinel for NArgs.N meaning "no repetition limit".
const Unbounded = -1

// NArgs is a parameter-list macro: "repeat this tuple of parameter types
// up to N times". It is valid only inside a Lambda's Params and never
// appears in a resolved node's type.
type NArgs struct {
	Types []Type
	N     int // Unbounded for infinity
}

func (NArgs) isType() {}
func (n NArgs) String() string {
	parts := make([]string, len(n.Types))
	for i, t := range n.Types {
		parts[i] = t.String()
	}
	inner := strings.Join(parts, ", ")
	if n.N == Unbounded {
		return fmt.Sprintf("(%s)...", inner)
	}
	return fmt.Sprintf("(%s){0,%d}", inner, n.N)
}

// Lambda is the signature of a callable expression.
type Lambda struct {
	Result Type
	Params []Type
}

func (Lambda) isType() {}
func (l Lambda) String() string {
	parts := make([]string, len(l.Params))
	for i, p := range l.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) => %s", strings.Join(parts, ", "), l.Result.String())
}

// RGBA is the external, out-of-package representation of a Color value;
// parsing raw strings into it is the parse_color collaborator's job, not
// this package's.
type RGBA struct {
	R, G, B, A float64
}
