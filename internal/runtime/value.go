// Package runtime defines the tagged runtime value representation the
// evaluator and registry operate over: primitives (number, string,
// boolean, null) are plain Go values, while Color, Object, Vector and
// Array are wrapped in small tagged structs so TypeOf is O(1).
package runtime

import "fmt"

// Color is the runtime representation of a Color value.
type Color struct {
	R, G, B, A float64
}

// Object is the runtime representation of an Object value: an arbitrary
// string-keyed bag, as produced by get()/properties() or a "object" cast.
type Object struct {
	Fields map[string]any
}

// Vector is the runtime representation of a Vector<T> value: an ordered
// sequence whose length is not part of its type.
type Vector struct {
	Items []any
}

// Array is the runtime representation of an Array<T,N> value: an ordered
// sequence of known length.
type Array struct {
	Items []any
}

// TypeOf returns the tag used for match() lookup keys and diagnostics: a
// titlecased primitive name, "Null", or the struct tag for a tagged
// value.
func TypeOf(v any) string {
	switch v.(type) {
	case nil:
		return "Null"
	case float64:
		return "Number"
	case string:
		return "String"
	case bool:
		return "Boolean"
	case Color:
		return "Color"
	case Object:
		return "Object"
	case Vector:
		return "Vector"
	case Array:
		return "Array"
	default:
		return "Unknown"
	}
}

// Unwrap strips any tag and returns a plain value suitable for returning
// from the top-level Callable: Color becomes [r,g,b,a], Object becomes a
// map, Vector/Array become slices, everything else passes through
// unchanged. A null runtime result is reported to the caller as a nil.
func Unwrap(v any) any {
	switch t := v.(type) {
	case Color:
		return []float64{t.R, t.G, t.B, t.A}
	case Object:
		return t.Fields
	case Vector:
		return unwrapItems(t.Items)
	case Array:
		return unwrapItems(t.Items)
	default:
		return v
	}
}

func unwrapItems(items []any) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = Unwrap(it)
	}
	return out
}

// MatchKey computes the key used by the match() builtin's lookup table:
// "<TypeTag>-<literalValue>", so 0 and "0" never collide.
func MatchKey(v any) string {
	return fmt.Sprintf("%s-%v", TypeOf(v), v)
}
