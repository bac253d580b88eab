package harmonic

import (
	"math"
	"testing"
)

func TestCalcRatio(t *testing.T) {
	tests := []struct {
		name                     string
		p1, p2, refStart, refEnd float64
		want                     float64
	}{
		{"simple", 100, 61.8, 0, 100, 0.382},
		{"direction independent", 61.8, 100, 100, 0, 0.382},
		{"negative prices", -50, -25, -100, -50, 0.5},
		{"zero reference move", 10, 20, 5, 5, 0.0},
		{"zero price move", 10, 10, 0, 100, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcRatio(tt.p1, tt.p2, tt.refStart, tt.refEnd)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("CalcRatio(%v, %v, %v, %v) = %v, want %v",
					tt.p1, tt.p2, tt.refStart, tt.refEnd, got, tt.want)
			}
		})
	}
}

func TestCalcRatioZeroReferenceNeverNaN(t *testing.T) {
	got := CalcRatio(1, 2, 7, 7)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("expected finite zero, got %v", got)
	}
	if got != 0.0 {
		t.Fatalf("expected 0.0, got %v", got)
	}
}

func TestCheckFibRatio(t *testing.T) {
	tests := []struct {
		name             string
		actual, expected float64
		tolerance        float64
		want             bool
	}{
		{"exact", 0.618, 0.618, 0.03, true},
		{"within tolerance above", 0.645, 0.618, 0.03, true},
		{"within tolerance below", 0.59, 0.618, 0.03, true},
		{"outside tolerance", 0.66, 0.618, 0.03, false},
		{"boundary", 0.648, 0.618, 0.03, true},
		{"zero tolerance exact", 0.786, 0.786, 0, true},
		{"zero tolerance off", 0.787, 0.786, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckFibRatio(tt.actual, tt.expected, tt.tolerance); got != tt.want {
				t.Fatalf("CheckFibRatio(%v, %v, %v) = %v, want %v",
					tt.actual, tt.expected, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestRatioRangeWidensBothBounds(t *testing.T) {
	r := between(1.272, 1.618)
	tol := 0.03

	if !r.contains(1.272-tol, tol) {
		t.Error("lower bound minus tolerance should be accepted")
	}
	if !r.contains(1.618+tol, tol) {
		t.Error("upper bound plus tolerance should be accepted")
	}
	if r.contains(1.272-tol-0.001, tol) {
		t.Error("below widened lower bound should be rejected")
	}
	if r.contains(1.618+tol+0.001, tol) {
		t.Error("above widened upper bound should be rejected")
	}

	e := exact(0.786)
	if e.Min != e.Max {
		t.Fatalf("exact target should collapse to a point range, got %+v", e)
	}
	if !e.contains(0.786, 0) {
		t.Error("exact target should accept itself at zero tolerance")
	}
}
