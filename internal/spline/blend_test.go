package spline

import (
	"math"
	"testing"
)

func TestBlendPartitionOfUnity(t *testing.T) {
	tests := []struct {
		knots  []float64
		degree int
	}{
		{[]float64{0, 0, 0, 0, 1, 1, 1, 1}, 3},
		{[]float64{0, 0, 0, 0.3, 0.3, 0.7, 1, 1, 1}, 2},
		{[]float64{0, 0, 0.2, 0.4, 0.6, 0.8, 1, 1}, 1},
		{ClampedKnots(7, 4), 4},
		{[]float64{0, 0.5, 1}, 0},
	}
	for _, tt := range tests {
		n := len(tt.knots) - tt.degree - 1
		for i := 0; i <= 40; i++ {
			u := float64(i) / 40
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += Blend(u, k, tt.degree, tt.knots)
			}
			if math.Abs(sum-1) > 1e-12 {
				t.Errorf("knots %v degree %d: sum at u=%v is %v", tt.knots, tt.degree, u, sum)
			}
		}
	}
}

func TestBlendDegreeZeroSpans(t *testing.T) {
	knots := []float64{0, 0.5, 0.5, 1}
	tests := []struct {
		u    float64
		k    int
		want float64
	}{
		{0, 0, 1},
		{0.25, 0, 1},
		{0.5, 0, 0},
		{0.5, 1, 0}, // empty span
		{0.5, 2, 1},
		{1, 2, 1}, // last span is closed
		{1.5, 2, 0},
		{-0.1, 0, 0},
	}
	for _, tt := range tests {
		if got := Blend(tt.u, tt.k, 0, knots); got != tt.want {
			t.Errorf("Blend(%v, %d, 0) = %v, want %v", tt.u, tt.k, got, tt.want)
		}
	}
}

func TestBlendNonNegative(t *testing.T) {
	knots := ClampedKnots(6, 3)
	for k := 0; k < 6; k++ {
		for i := 0; i <= 50; i++ {
			u := float64(i) / 50
			if b := Blend(u, k, 3, knots); b < 0 {
				t.Errorf("Blend(%v, %d, 3) = %v", u, k, b)
			}
		}
	}
}

func TestBasisMatchesBlend(t *testing.T) {
	knots := []float64{0, 0, 0, 0.25, 0.5, 0.5, 0.75, 1, 1, 1}
	const degree = 2
	n := len(knots) - degree - 1
	var table []float64
	for i := 0; i <= 64; i++ {
		u := float64(i) / 64
		table = Basis(u, degree, knots, table)
		if len(table) != n {
			t.Fatalf("Basis returned %d values, want %d", len(table), n)
		}
		want := make([]float64, n)
		for k := range want {
			want[k] = Blend(u, k, degree, knots)
		}
		diff(t, want, table, approx)
	}
}

func TestClampedKnots(t *testing.T) {
	diff(t, []float64{0, 0, 0, 0, 1, 1, 1, 1}, ClampedKnots(4, 3))
	diff(t, []float64{0, 0, 0, 1.0 / 3, 2.0 / 3, 1, 1, 1}, ClampedKnots(5, 2), approx)
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, ClampedKnots(4, 0), approx)
	if got := ClampedKnots(2, 3); got != nil {
		t.Errorf("ClampedKnots(2, 3) = %v, want nil", got)
	}
	for degree := 0; degree < 4; degree++ {
		k := ClampedKnots(6, degree)
		if !IsClamped(k, degree) || !IsNonDecreasing(k) {
			t.Errorf("ClampedKnots(6, %d) = %v is not clamped", degree, k)
		}
	}
}

func TestKnotPredicates(t *testing.T) {
	if IsNonDecreasing([]float64{0, 1, 0.5}) {
		t.Error("decreasing knots accepted")
	}
	if !IsNonDecreasing(nil) {
		t.Error("empty knots rejected")
	}
	if IsClamped([]float64{0, 0, 0.5, 1, 1}, 2) {
		t.Error("short knots reported clamped")
	}
	if IsClamped([]float64{0, 0.1, 0.5, 1, 1, 1}, 2) {
		t.Error("unclamped start reported clamped")
	}
	lo, hi := Domain([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 3, 4)
	if lo != 3 || hi != 4 {
		t.Errorf("Domain = [%v, %v], want [3, 4]", lo, hi)
	}
}

func TestInterpolate(t *testing.T) {
	controls := pts(0, 0, 10, 20, 30, 5, 40, 40)
	out, err := Interpolate(controls, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 7 {
		t.Fatalf("got %d points, want 7", len(out))
	}
	// Samples 2 and 4 fall on control points 1 and 2.
	diff(t, controls[1], out[2], approx)
	diff(t, controls[2], out[4], approx)

	if _, err := Interpolate(controls[:2], 6); err == nil {
		t.Error("two points accepted")
	}
	if _, err := Interpolate(controls, 0); err == nil {
		t.Error("zero samples accepted")
	}
}
