package checker

import (
	"fmt"

	"github.com/styleexpr/exprlang/internal/etypes"
)

// bindings maps a lambda's typenames (e.g. "T") to the concrete type they
// were resolved to at this call site. Two maps are carried through unify
// - one for typenames appearing on the expected side, one for the actual
// side - since either side of a match may itself still contain an
// unresolved typename (an argument whose own lambda hasn't been checked
// yet; see the "one level only" restriction in Check).
type bindings map[string]etypes.Type

func cloneBindings(b bindings) bindings {
	out := make(bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeBindings(dst, src bindings) {
	for k, v := range src {
		dst[k] = v
	}
}

func mismatch(expected, actual etypes.Type) error {
	return fmt.Errorf("Expected %s but found %s", etypes.Name(expected), etypes.Name(actual))
}

// unify attempts to match actual against expected, binding any typenames
// encountered on either side into eb/ab. It implements the algorithm in
// the type checker's member ordering rules: a Variant on either side
// tries its members in declaration order and commits to the first that
// matches, with cloned bindings merged back only on that success.
func unify(expected, actual etypes.Type, eb, ab bindings) error {
	if tn, ok := expected.(etypes.TypeName); ok {
		if bound, exists := eb[tn.Name]; exists {
			return unify(bound, actual, eb, ab)
		}
		eb[tn.Name] = actual
		return nil
	}
	if tn, ok := actual.(etypes.TypeName); ok {
		if bound, exists := ab[tn.Name]; exists {
			return unify(expected, bound, eb, ab)
		}
		ab[tn.Name] = expected
		return nil
	}

	if vexp, ok := expected.(*etypes.Variant); ok {
		for _, m := range vexp.Members {
			ebCopy, abCopy := cloneBindings(eb), cloneBindings(ab)
			if err := unify(m, actual, ebCopy, abCopy); err == nil {
				mergeBindings(eb, ebCopy)
				mergeBindings(ab, abCopy)
				return nil
			}
		}
		return mismatch(expected, actual)
	}

	if vact, ok := actual.(*etypes.Variant); ok {
		for _, m := range vact.Members {
			ebCopy, abCopy := cloneBindings(eb), cloneBindings(ab)
			if err := unify(expected, m, ebCopy, abCopy); err == nil {
				mergeBindings(eb, ebCopy)
				mergeBindings(ab, abCopy)
				return nil
			}
		}
		return mismatch(expected, actual)
	}

	switch e := expected.(type) {
	case etypes.Primitive:
		a, ok := actual.(etypes.Primitive)
		if !ok || a != e {
			return mismatch(expected, actual)
		}
		return nil

	case etypes.Vector:
		a, ok := actual.(etypes.Vector)
		if !ok {
			return mismatch(expected, actual)
		}
		return unify(e.Item, a.Item, eb, ab)

	case etypes.Array:
		a, ok := actual.(etypes.Array)
		if !ok || a.N != e.N {
			return mismatch(expected, actual)
		}
		return unify(e.Item, a.Item, eb, ab)

	case etypes.AnyArray:
		switch a := actual.(type) {
		case etypes.Array:
			return unify(e.Item, a.Item, eb, ab)
		case etypes.AnyArray:
			return unify(e.Item, a.Item, eb, ab)
		default:
			return mismatch(expected, actual)
		}

	default:
		return mismatch(expected, actual)
	}
}
