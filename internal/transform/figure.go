package transform

import (
	"honnef.co/go/curve"

	"spline-canvas/internal/common"
)

// Demo layout, in y-up coordinates.
var (
	DemoOrigin = common.V(100, 500)
)

const (
	DemoOffsetX   = 150.0
	DemoAxisAngle = 45.0 // Degrees from +X
	// DemoPivotInset shifts the reflection pivot down and left of the
	// triangle centroid.
	DemoPivotInset = 25.0
)

// Triangle is a closed three point outline.
type Triangle [3]common.Vec2

// Transform applies a to every vertex.
func (t Triangle) Transform(aff curve.Affine) Triangle {
	return Triangle{Apply(aff, t[0]), Apply(aff, t[1]), Apply(aff, t[2])}
}

// Centroid returns the average of t's vertices.
func (t Triangle) Centroid() common.Vec2 {
	return Centroid(t[:]...)
}

// Centroid returns the average of points, or the origin for none.
func Centroid(points ...common.Vec2) common.Vec2 {
	var c common.Vec2
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(points)))
}

// ReflectTriangle mirrors t across the line through pivot at axisDeg degrees.
func ReflectTriangle(t Triangle, axisDeg float64, pivot common.Vec2) Triangle {
	return t.Transform(Reflect(Radians(axisDeg), pivot))
}

// Figure is the geometry drawn by the transform demo.
type Figure struct {
	Axis      [2]common.Vec2
	Original  Triangle
	Reflected Triangle // Original mirrored across the demo axis
	Twice     Triangle // Reflected mirrored across a vertical axis
}

// DemoFigure builds the demo for a canvas of the given height: an axis line
// of half the height rotated to DemoAxisAngle, a triangle beside it, and two
// successive reflections of the triangle about pivots inset from their
// centroids.
func DemoFigure(height float64) Figure {
	base := DemoOrigin.Add(common.V(DemoOffsetX, 0))
	axis := curve.Rotate(Radians(DemoAxisAngle - 90)).ThenTranslate(curve.Vec(base.X, base.Y))
	lineEnd := common.V(0, float64(int(height/2)))

	tri := Triangle{
		base.Add(common.V(20, 0)),
		base.Add(common.V(40, 20)),
		base.Add(common.V(60, 0)),
	}
	inset := common.V(DemoPivotInset, DemoPivotInset)
	reflected := ReflectTriangle(tri, DemoAxisAngle, tri.Centroid().Sub(inset))
	twice := ReflectTriangle(reflected, 90, reflected.Centroid().Sub(inset))

	return Figure{
		Axis: [2]common.Vec2{
			Apply(axis, common.Vec2{}),
			Apply(axis, lineEnd),
		},
		Original:  tri,
		Reflected: reflected,
		Twice:     twice,
	}
}
