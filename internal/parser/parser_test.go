package parser

import (
	"testing"

	"github.com/styleexpr/exprlang/internal/eastree"
)

func TestParseLiteral(t *testing.T) {
	expr, errs := Parse(float64(3))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	lit, ok := expr.(*eastree.Literal)
	if !ok || lit.Value != float64(3) {
		t.Fatalf("got %#v", expr)
	}
}

func TestParseUnknownFunction(t *testing.T) {
	_, errs := Parse([]any{"nope", float64(1)})
	if len(errs) != 1 || errs[0].Error != "Unknown function nope" {
		t.Fatalf("got %v", errs)
	}
}

func TestParseArrayOverridesResultLength(t *testing.T) {
	expr, errs := Parse([]any{"array", float64(1), float64(2), float64(3)})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	call := expr.(*eastree.Call)
	arrTyp := call.Type()
	if arrTyp.String() != "Array<T, 3>" {
		t.Fatalf("got %s", arrTyp.String())
	}
}

func TestParseMatchBuildsGroupsAndArguments(t *testing.T) {
	expr, errs := Parse([]any{"match", []any{"get", "t"}, "a", float64(1), []any{"b", "c"}, float64(2), float64(0)})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	call := expr.(*eastree.Call)
	if len(call.MatchInputs) != 2 {
		t.Fatalf("got %d match input groups", len(call.MatchInputs))
	}
	if len(call.MatchInputs[1]) != 2 {
		t.Fatalf("expected group of 2 literals, got %d", len(call.MatchInputs[1]))
	}
	if len(call.Arguments) != 4 { // input, out1, out2, otherwise
		t.Fatalf("got %d arguments", len(call.Arguments))
	}
}

func TestParseMatchRejectsCallAsLabel(t *testing.T) {
	_, errs := Parse([]any{"match", []any{"get", "t"}, []any{"get", "x"}, float64(1), float64(0)})
	if len(errs) != 1 || errs[0].Error != "Match inputs must be literal primitive values or arrays of literal primitive values." {
		t.Fatalf("got %v", errs)
	}
}
