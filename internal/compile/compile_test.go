package compile

import (
	"math"
	"testing"

	"github.com/styleexpr/exprlang/internal/etypes"
)

func defaultOptions() Options {
	return Options{
		ParseColor: func(s string) (etypes.RGBA, bool) {
			if s == "red" {
				return etypes.RGBA{R: 255, A: 1}, true
			}
			return etypes.RGBA{}, false
		},
		InterpolateNum: func(a, b, t float64) float64 { return a + (b-a)*t },
		InterpolateColor: func(a, b etypes.RGBA, t float64) etypes.RGBA {
			return etypes.RGBA{
				R: a.R + (b.R-a.R)*t,
				G: a.G + (b.G-a.G)*t,
				B: a.B + (b.B-a.B)*t,
				A: a.A + (b.A-a.A)*t,
			}
		},
		InterpolateArray: func(a, b []float64, t float64) []float64 {
			out := make([]float64, len(a))
			for i := range a {
				out[i] = a[i] + (b[i]-a[i])*t
			}
			return out
		},
	}
}

func TestCompileReportsParseErrors(t *testing.T) {
	res := Compile([]any{"nope"}, etypes.Number, defaultOptions())
	if res.Ok {
		t.Fatalf("expected failure")
	}
	if len(res.Errors) != 1 || res.Errors[0].Error != "Unknown function nope" {
		t.Fatalf("got %v", res.Errors)
	}
}

func TestCompileCurveExponential(t *testing.T) {
	res := Compile([]any{"curve", []any{"exponential", float64(2)}, []any{"zoom"}, float64(0), float64(0), float64(10), float64(100)}, etypes.Number, defaultOptions())
	if !res.Ok {
		t.Fatalf("errors: %v", res.Errors)
	}
	if res.IsZoomConstant {
		t.Fatalf("curve over zoom must not be zoom-constant")
	}
	v, err := res.Value(5, Feature{})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	want := (math.Pow(2, 5) - 1) / (math.Pow(2, 10) - 1) * 100
	if math.Abs(v.(float64)-want) > 1e-9 {
		t.Fatalf("got %v want %v", v, want)
	}
}

func TestCompileMatchSelectsBranch(t *testing.T) {
	res := Compile([]any{"match", []any{"get", "t"}, "a", float64(1), []any{"b", "c"}, float64(2), float64(0)}, etypes.Number, defaultOptions())
	if !res.Ok {
		t.Fatalf("errors: %v", res.Errors)
	}
	v, err := res.Value(0, Feature{Properties: map[string]any{"t": "b"}})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v.(float64) != 2 {
		t.Fatalf("got %v", v)
	}
	v, err = res.Value(0, Feature{Properties: map[string]any{"t": "z"}})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v.(float64) != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestCompileCoalesceFallsThroughNulls(t *testing.T) {
	res := Compile([]any{"coalesce", []any{"get", "a"}, []any{"get", "b"}, "none"}, etypes.String, defaultOptions())
	if !res.Ok {
		t.Fatalf("errors: %v", res.Errors)
	}
	v, err := res.Value(0, Feature{Properties: map[string]any{}})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v != "none" {
		t.Fatalf("got %v", v)
	}
	v, err = res.Value(0, Feature{Properties: map[string]any{"b": "x"}})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v != "x" {
		t.Fatalf("got %v", v)
	}
	v, err = res.Value(0, Feature{Properties: map[string]any{"a": nil, "b": "x"}})
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v != "x" {
		t.Fatalf("got %v", v)
	}
}

func TestCompileRootTypeMismatch(t *testing.T) {
	res := Compile([]any{"+", float64(1), float64(2)}, etypes.String, defaultOptions())
	if res.Ok {
		t.Fatalf("expected a type mismatch")
	}
}
