package checker

import (
	"testing"

	"github.com/styleexpr/exprlang/internal/etypes"
	"github.com/styleexpr/exprlang/internal/parser"
)

func checkJSON(t *testing.T, expected etypes.Type, raw any) ([]string, etypes.Type) {
	t.Helper()
	expr, perrs := parser.Parse(raw)
	if len(perrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}
	resolved, errs := Check(expected, expr)
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error
	}
	return msgs, resolved.Type()
}

func TestCheckSimpleArithmeticMatchesNumber(t *testing.T) {
	errs, typ := checkJSON(t, etypes.Number, []any{"+", float64(1), float64(2)})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if typ != etypes.Type(etypes.Number) {
		t.Fatalf("got %s", typ.String())
	}
}

func TestCheckTypeMismatchOnRoot(t *testing.T) {
	errs, _ := checkJSON(t, etypes.String, []any{"+", float64(1), float64(2)})
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
}

func TestCheckCoalesceBindsSharedTypeName(t *testing.T) {
	errs, typ := checkJSON(t, etypes.String, []any{"coalesce", []any{"get", "a"}, []any{"get", "b"}, "none"})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if typ != etypes.Type(etypes.String) {
		t.Fatalf("got %s", typ.String())
	}
}

func TestCheckCaseRejectsEvenArgumentCount(t *testing.T) {
	// cond, val, cond, val (missing a default) - an even-length argument
	// list, which expandParams must reject.
	errs, _ := checkJSON(t, etypes.Number, []any{"case", true, float64(1), false, float64(2)})
	if len(errs) == 0 {
		t.Fatalf("expected an arity error")
	}
}

func TestCheckArrayOverrideResolvesLength(t *testing.T) {
	errs, typ := checkJSON(t, etypes.Array{Item: etypes.Number, N: 2}, []any{"array", float64(1), float64(2)})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if typ.String() != "Array<number, 2>" {
		t.Fatalf("got %s", typ.String())
	}
}
