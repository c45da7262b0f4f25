package transform

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"

	"spline-canvas/internal/common"
)

const epsilon = 1e-9

var approx = cmpopts.EquateApprox(0, epsilon)

func assertNear(t *testing.T, got, want common.Vec2) {
	t.Helper()
	if d := got.Dist(want); d > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func TestAffineBasic(t *testing.T) {
	p := common.V(3, 4)
	assertNear(t, Apply(curve.Identity, p), p)
	assertNear(t, Apply(curve.Rotate(Radians(90)), p), common.V(-4, 3))
	assertNear(t, Apply(curve.Translate(curve.Vec(5, 6)), p), common.V(8, 10))
	assertNear(t, Apply(Reflect(Radians(45), common.Vec2{}), p), common.V(4, 3))
	assertNear(t, Apply(Reflect(0, common.Vec2{}), p), common.V(3, -4))
	assertNear(t, Apply(Reflect(0, common.V(0, 1)), p), common.V(3, -2))
	assertNear(t, Apply(ToScreen(600), p), common.V(3, 596))
}

func TestReflectCoefficients(t *testing.T) {
	// | cos2θ  sin2θ |
	// | sin2θ -cos2θ |
	for _, deg := range []float64{0, 30, 45, 90, 123} {
		th := Radians(deg)
		want := curve.Affine{
			N0: math.Cos(2 * th), N1: math.Sin(2 * th),
			N2: math.Sin(2 * th), N3: -math.Cos(2 * th),
		}
		if d := cmp.Diff(want, Reflect(th, common.Vec2{}), approx); d != "" {
			t.Errorf("%v degrees: %s", deg, d)
		}
	}
}

func TestToScreenIsInvolution(t *testing.T) {
	s := ToScreen(768)
	if d := cmp.Diff(curve.Identity, s.Mul(s), approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(s.Invert(), s, approx); d != "" {
		t.Error(d)
	}
}

func TestReflectionIsInvolution(t *testing.T) {
	for _, deg := range []float64{0, 30, 45, 90, 123} {
		r := Reflect(Radians(deg), common.V(10, -4))
		if d := cmp.Diff(curve.Identity, r.Mul(r), approx); d != "" {
			t.Errorf("%v degrees: %s", deg, d)
		}
		if det := r.Determinant(); math.Abs(det+1) > epsilon {
			t.Errorf("%v degrees: determinant %v, want -1", deg, det)
		}
		assertNear(t, Apply(r, common.V(10, -4)), common.V(10, -4))
	}
}

func TestReflectTriangle(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}}
	got := ReflectTriangle(tri, 90, common.V(1, 0))
	want := Triangle{{X: 2, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 1}}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Error(d)
	}
	assertNear(t, Centroid(), common.Vec2{})
	assertNear(t, tri.Centroid(), common.V(2.0/3, 1.0/3))
}

func TestDemoFigure(t *testing.T) {
	f := DemoFigure(800)
	origin := DemoOrigin.Add(common.V(DemoOffsetX, 0))
	assertNear(t, f.Axis[0], origin)
	// The axis leans 45 degrees to the right of vertical.
	dir := f.Axis[1].Sub(f.Axis[0])
	assertNear(t, dir, common.V(400*math.Sqrt2/2, 400*math.Sqrt2/2))

	// Reflections preserve side lengths.
	side := func(tr Triangle, i int) float64 { return tr[i].Dist(tr[(i+1)%3]) }
	for i := 0; i < 3; i++ {
		for _, tr := range []Triangle{f.Reflected, f.Twice} {
			if d := side(tr, i) - side(f.Original, i); math.Abs(d) > epsilon {
				t.Errorf("side %d length changed by %v", i, d)
			}
		}
	}

	// Mirroring across y=x through the inset pivot swaps offsets from it.
	pivot := f.Original.Centroid().Sub(common.V(DemoPivotInset, DemoPivotInset))
	for i, p := range f.Original {
		off := p.Sub(pivot)
		assertNear(t, f.Reflected[i], pivot.Add(common.V(off.Y, off.X)))
	}
}
