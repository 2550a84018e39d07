package etypes

import (
	"fmt"
	"strings"
)

// Name renders a human-readable, stable description of t, used in error
// messages and for printing generic result types after inference.
// Recursion through a self-referencing Variant is broken by an
// identity-visited stack, per the package's Invariant - Genericity.
func Name(t Type) string {
	return name(t, map[*Variant]bool{})
}

func name(t Type, visited map[*Variant]bool) string {
	switch v := t.(type) {
	case *Variant:
		if visited[v] {
			return variantFallbackName(v)
		}
		visited[v] = true
		parts := make([]string, len(v.Members))
		for i, m := range v.Members {
			parts[i] = name(m, visited)
		}
		return strings.Join(parts, " | ")
	case Vector:
		return fmt.Sprintf("Vector<%s>", name(v.Item, visited))
	case Array:
		return fmt.Sprintf("Array<%s, %d>", name(v.Item, visited), v.N)
	case AnyArray:
		return fmt.Sprintf("Array<%s>", name(v.Item, visited))
	case NArgs:
		parts := make([]string, len(v.Types))
		for i, p := range v.Types {
			parts[i] = name(p, visited)
		}
		inner := strings.Join(parts, ", ")
		if v.N == Unbounded {
			return fmt.Sprintf("(%s)...", inner)
		}
		return fmt.Sprintf("(%s){0,%d}", inner, v.N)
	case Lambda:
		parts := make([]string, len(v.Params))
		for i, p := range v.Params {
			parts[i] = name(p, visited)
		}
		return fmt.Sprintf("(%s) => %s", strings.Join(parts, ", "), name(v.Result, visited))
	default:
		return t.String()
	}
}

func variantFallbackName(v *Variant) string {
	if v.name != "" {
		return v.name
	}
	return "<recursive>"
}

// IsGeneric reports whether t mentions a TypeName anywhere in its
// structure. It must terminate on recursive variants, so it carries an
// identity-visited set exactly like Name and Resolve.
func IsGeneric(t Type) bool {
	return isGeneric(t, map[*Variant]bool{})
}

func isGeneric(t Type, visited map[*Variant]bool) bool {
	switch v := t.(type) {
	case TypeName:
		return true
	case *Variant:
		if visited[v] {
			return false
		}
		visited[v] = true
		for _, m := range v.Members {
			if isGeneric(m, visited) {
				return true
			}
		}
		return false
	case Vector:
		return isGeneric(v.Item, visited)
	case Array:
		return isGeneric(v.Item, visited)
	case AnyArray:
		return isGeneric(v.Item, visited)
	case NArgs:
		for _, p := range v.Types {
			if isGeneric(p, visited) {
				return true
			}
		}
		return false
	case Lambda:
		if isGeneric(v.Result, visited) {
			return true
		}
		for _, p := range v.Params {
			if isGeneric(p, visited) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Resolve returns t with every TypeName substituted by its binding, when
// present, recursing into compound types. It never substitutes inside an
// already-resolved compound (a TypeName that is not in bindings is left
// as-is, rather than erroring - the caller decides whether that is still
// generic via IsGeneric).
func Resolve(t Type, bindings map[string]Type) Type {
	return resolve(t, bindings, map[*Variant]bool{})
}

func resolve(t Type, bindings map[string]Type, visited map[*Variant]bool) Type {
	switch v := t.(type) {
	case TypeName:
		if bound, ok := bindings[v.Name]; ok {
			return bound
		}
		return v
	case *Variant:
		if visited[v] {
			return v
		}
		visited[v] = true
		changed := false
		members := make([]Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = resolve(m, bindings, visited)
			if members[i] != m {
				changed = true
			}
		}
		if !changed {
			return v
		}
		return &Variant{Members: members}
	case Vector:
		return Vector{Item: resolve(v.Item, bindings, visited)}
	case Array:
		return Array{Item: resolve(v.Item, bindings, visited), N: v.N}
	case AnyArray:
		return AnyArray{Item: resolve(v.Item, bindings, visited)}
	case NArgs:
		types := make([]Type, len(v.Types))
		for i, p := range v.Types {
			types[i] = resolve(p, bindings, visited)
		}
		return NArgs{Types: types, N: v.N}
	case Lambda:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = resolve(p, bindings, visited)
		}
		return Lambda{Result: resolve(v.Result, bindings, visited), Params: params}
	default:
		return t
	}
}

// Equal reports structural equality for non-variant types and pointer
// identity for Variant - the package invariant stated on *Variant.String.
// Pointer identity for the Variant case means recursion through a member
// can never cycle, so no visited set is needed here (unlike Name,
// IsGeneric and Resolve).
func Equal(a, b Type) bool {
	switch av := a.(type) {
	case Primitive:
		bv, ok := b.(Primitive)
		return ok && av == bv
	case TypeName:
		bv, ok := b.(TypeName)
		return ok && av.Name == bv.Name
	case *Variant:
		bv, ok := b.(*Variant)
		return ok && av == bv
	case Vector:
		bv, ok := b.(Vector)
		return ok && Equal(av.Item, bv.Item)
	case Array:
		bv, ok := b.(Array)
		return ok && av.N == bv.N && Equal(av.Item, bv.Item)
	case AnyArray:
		bv, ok := b.(AnyArray)
		return ok && Equal(av.Item, bv.Item)
	case NArgs:
		bv, ok := b.(NArgs)
		if !ok || av.N != bv.N || len(av.Types) != len(bv.Types) {
			return false
		}
		for i := range av.Types {
			if !Equal(av.Types[i], bv.Types[i]) {
				return false
			}
		}
		return true
	case Lambda:
		bv, ok := b.(Lambda)
		if !ok || len(av.Params) != len(bv.Params) {
			return false
		}
		if !Equal(av.Result, bv.Result) {
			return false
		}
		for i := range av.Params {
			if !Equal(av.Params[i], bv.Params[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsNArgs reports whether t is an NArgs macro, i.e. a parameter-list
// expansion point.
func IsNArgs(t Type) (NArgs, bool) {
	n, ok := t.(NArgs)
	return n, ok
}
