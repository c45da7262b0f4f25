// Package transform provides the geometry of the rotation and reflection demo,
// built on curve.Affine.
package transform

import (
	"math"

	"honnef.co/go/curve"

	"spline-canvas/internal/common"
)

// Pt converts v to a curve point.
func Pt(v common.Vec2) curve.Point {
	return curve.Pt(v.X, v.Y)
}

// Apply transforms p by aff.
func Apply(aff curve.Affine, p common.Vec2) common.Vec2 {
	q := Pt(p).Transform(aff)
	return common.V(q.X, q.Y)
}

// Reflect creates a reflection across the line through pivot at angle th
// radians from the +X axis.
func Reflect(th float64, pivot common.Vec2) curve.Affine {
	return curve.Reflect(Pt(pivot), curve.VecFromAngle(th))
}

// ToScreen maps y-up coordinates into a y-down screen of the given height.
// It is its own inverse.
func ToScreen(height float64) curve.Affine {
	return curve.FlipY.ThenTranslate(curve.Vec(0, height))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
