package curve

import (
	"math"
	"testing"
)

func TestLocateClampsBelowFirstStop(t *testing.T) {
	idx, factor := Locate(Spec{Kind: Linear}, []float64{0, 10, 20}, -5)
	if idx != 0 || factor != 0 {
		t.Fatalf("got idx=%d factor=%v, want 0,0", idx, factor)
	}
}

func TestLocateClampsAboveLastStop(t *testing.T) {
	idx, factor := Locate(Spec{Kind: Linear}, []float64{0, 10, 20}, 99)
	if idx != 2 || factor != 0 {
		t.Fatalf("got idx=%d factor=%v, want 2,0", idx, factor)
	}
}

func TestLocateLinearMidSegment(t *testing.T) {
	idx, factor := Locate(Spec{Kind: Linear}, []float64{0, 10, 20}, 15)
	if idx != 1 || factor != 0.5 {
		t.Fatalf("got idx=%d factor=%v, want 1,0.5", idx, factor)
	}
}

func TestLocateStepAlwaysZeroFactor(t *testing.T) {
	idx, factor := Locate(Spec{Kind: Step}, []float64{0, 10, 20}, 11)
	if idx != 1 || factor != 0 {
		t.Fatalf("got idx=%d factor=%v, want 1,0", idx, factor)
	}
}

func TestFactorExponentialMatchesSpecExample(t *testing.T) {
	// curve(exponential(2), zoom, 0,0, 10,100) at zoom=5:
	// (2^5 - 1) / (2^10 - 1) * 100
	f := Factor(Spec{Kind: Exponential, Base: 2}, 0, 10, 5)
	want := (math.Pow(2, 5) - 1) / (math.Pow(2, 10) - 1)
	if math.Abs(f-want) > 1e-9 {
		t.Fatalf("got %v, want %v", f, want)
	}
}

func TestFactorExponentialBaseOneIsLinear(t *testing.T) {
	f := Factor(Spec{Kind: Exponential, Base: 1}, 0, 10, 5)
	if f != 0.5 {
		t.Fatalf("got %v, want 0.5", f)
	}
}
