package registry_test

import (
	"testing"

	"github.com/styleexpr/exprlang/internal/compile"
	"github.com/styleexpr/exprlang/internal/etypes"
)

func compileOk(t *testing.T, raw any, expected etypes.Type) compile.Result {
	t.Helper()
	res := compile.Compile(raw, expected, compile.Options{})
	if !res.Ok {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	return res
}

func TestCoerceToString(t *testing.T) {
	res := compileOk(t, []any{"string", float64(3)}, etypes.String)
	v, err := res.Value(0, compile.Feature{})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v != "3" {
		t.Fatalf("got %v", v)
	}
}

func TestCoerceToNumber(t *testing.T) {
	res := compileOk(t, []any{"number", "3.5"}, etypes.Number)
	v, err := res.Value(0, compile.Feature{})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v != 3.5 {
		t.Fatalf("got %v", v)
	}
}

func TestCoerceToBoolean(t *testing.T) {
	res := compileOk(t, []any{"boolean", float64(0)}, etypes.Boolean)
	v, err := res.Value(0, compile.Feature{})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v != false {
		t.Fatalf("got %v", v)
	}
}

func TestCoerceToObject(t *testing.T) {
	res := compileOk(t, []any{"object", []any{"properties"}}, etypes.Object)
	v, err := res.Value(0, compile.Feature{Properties: map[string]any{"a": float64(1)}})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("got %T", v)
	}
	if obj["a"] != float64(1) {
		t.Fatalf("got %v", obj)
	}
}

func TestCoerceToJSONArray(t *testing.T) {
	res := compileOk(t, []any{"json_array", []any{"vector", float64(1), float64(2)}}, etypes.Vector{Item: etypes.Number})
	v, err := res.Value(0, compile.Feature{})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	items, ok := v.([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("got %v", v)
	}
}

func TestCoerceToNumberRejectsUnparsableString(t *testing.T) {
	res := compile.Compile([]any{"number", "not a number"}, etypes.Number, compile.Options{})
	if !res.Ok {
		t.Fatalf("unexpected compile errors: %v", res.Errors)
	}
	_, err := res.Value(0, compile.Feature{})
	if err == nil {
		t.Fatalf("expected an evaluation error")
	}
}
