package registry

import (
	"github.com/styleexpr/exprlang/internal/runtime"
)

func asFloat(key string, v any) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, runtime.NewError(runtime.TypeAssertion, key, "expected a number, found %s", runtime.TypeOf(v))
	}
	return f, nil
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", runtime.NewError(runtime.TypeAssertion, key, "expected a string, found %s", runtime.TypeOf(v))
	}
	return s, nil
}

func asBool(key string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, runtime.NewError(runtime.TypeAssertion, key, "expected a boolean, found %s", runtime.TypeOf(v))
	}
	return b, nil
}

func asObject(key string, v any) (runtime.Object, error) {
	o, ok := v.(runtime.Object)
	if !ok {
		return runtime.Object{}, runtime.NewError(runtime.TypeAssertion, key, "expected an object, found %s", runtime.TypeOf(v))
	}
	return o, nil
}

func asSequence(key string, v any) ([]any, error) {
	switch t := v.(type) {
	case runtime.Vector:
		return t.Items, nil
	case runtime.Array:
		return t.Items, nil
	case string:
		items := make([]any, 0, len(t))
		for _, r := range t {
			items = append(items, string(r))
		}
		return items, nil
	default:
		return nil, runtime.NewError(runtime.TypeAssertion, key, "expected a vector, array or string, found %s", runtime.TypeOf(v))
	}
}

// force evaluates every argument thunk eagerly, in order, short-circuiting
// on the first error. This is the evaluation strategy for every builtin
// except case/match/coalesce/curve, which force their thunks selectively.
func force(thunks []runtime.Thunk, env *runtime.Env) ([]any, error) {
	out := make([]any, len(thunks))
	for i, th := range thunks {
		v, err := th(env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
