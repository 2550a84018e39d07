package evalr

import (
	"testing"

	"github.com/styleexpr/exprlang/internal/checker"
	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/parser"
	"github.com/styleexpr/exprlang/internal/runtime"
)

func compileJSON(t *testing.T, expected etypes.Type, raw any) (runtime.Thunk, runtime.Purity) {
	t.Helper()
	expr, perrs := parser.Parse(raw)
	if len(perrs) != 0 {
		t.Fatalf("parse errors: %v", perrs)
	}
	resolved, cerrs := checker.Check(expected, expr)
	if len(cerrs) != 0 {
		t.Fatalf("check errors: %v", cerrs)
	}
	th, purity, err := Compile(resolved)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	return th, purity
}

func TestCompileArithmeticIsFeatureAndZoomConstant(t *testing.T) {
	th, purity := compileJSON(t, etypes.Number, []any{"+", float64(1), float64(2)})
	if !purity.FeatureConstant || !purity.ZoomConstant {
		t.Fatalf("got %+v", purity)
	}
	v, err := th(&runtime.Env{Feature: &runtime.Feature{}})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v.(float64) != 3 {
		t.Fatalf("got %v", v)
	}
}

func TestCompileZoomIsNotZoomConstant(t *testing.T) {
	_, purity := compileJSON(t, etypes.Number, []any{"zoom"})
	if purity.ZoomConstant {
		t.Fatalf("zoom() must not be zoom-constant")
	}
}

func TestCompileGetReadsFeatureProperty(t *testing.T) {
	th, purity := compileJSON(t, etypes.ValueType, []any{"get", "name"})
	if purity.FeatureConstant {
		t.Fatalf("get(key) without obj must not be feature-constant")
	}
	env := &runtime.Env{Feature: &runtime.Feature{Properties: map[string]any{"name": "x"}}}
	v, err := th(env)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v != "x" {
		t.Fatalf("got %v", v)
	}
}
