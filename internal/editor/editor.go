// Package editor holds the state of the interactive control point editor.
package editor

import (
	"math"
	"slices"

	"spline-canvas/internal/common"
	"spline-canvas/internal/scene"
	"spline-canvas/internal/spline"
)

// Degree limits for SetDegree.
const (
	MinDegree = 1
	MaxDegree = 5
)

// Editor tracks the control points being edited, which one is held by the
// pointer, and the most recently evaluated curve.
type Editor struct {
	Scene scene.Scene

	held  int
	dirty bool
	curve []common.Vec2
}

// New returns an editor over a copy of s.
func New(s scene.Scene) *Editor {
	return &Editor{
		Scene: s.Clone(),
		held:  -1,
		dirty: true,
	}
}

// Nearest returns the index of the control point closest to p, or -1 when
// there are none. Ties resolve to the lowest index.
func (e *Editor) Nearest(p common.Vec2) int {
	nearest := math.Inf(1)
	idx := -1
	for i, c := range e.Scene.Controls {
		if d := c.Dist(p); d < nearest {
			nearest = d
			idx = i
		}
	}
	return idx
}

// Held returns the index of the held control point, or -1.
func (e *Editor) Held() int {
	return e.held
}

// Press grabs the control point nearest to p.
func (e *Editor) Press(p common.Vec2) {
	if i := e.Nearest(p); i != -1 {
		e.held = i
	}
}

// Move drags the held control point to p. It reports whether the curve
// changed.
func (e *Editor) Move(p common.Vec2) bool {
	if e.held == -1 || e.Scene.Controls[e.held] == p {
		return false
	}
	e.Scene.Controls[e.held] = p
	e.dirty = true
	return true
}

// Release lets go of the held control point.
func (e *Editor) Release() {
	e.held = -1
}

// Dirty reports whether the curve must be re-evaluated.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// Curve returns a copy of the sampled curve, evaluating it again only after an
// edit.
func (e *Editor) Curve() ([]common.Vec2, error) {
	if !e.dirty {
		return slices.Clone(e.curve), nil
	}
	s := e.Scene
	curve, err := spline.Evaluate(s.Controls, s.Knots, s.Degree, s.Samples)
	if err != nil {
		return nil, err
	}
	e.curve = curve
	e.dirty = false
	return slices.Clone(curve), nil
}

// SetDegree changes the degree, limited by [MinDegree, MaxDegree] and by the
// number of control points, and rebuilds a clamped knot vector. It does
// nothing when there are too few control points for MinDegree.
func (e *Editor) SetDegree(d int) {
	d = common.Clamp(d, MinDegree, MaxDegree)
	d = min(d, len(e.Scene.Controls)-1)
	if d < MinDegree {
		return
	}
	e.Scene.Degree = d
	e.reknot()
}

// AddControl appends a control point at p.
func (e *Editor) AddControl(p common.Vec2) {
	e.Scene.Controls = append(e.Scene.Controls, p)
	e.reknot()
}

// RemoveControl drops the last control point, keeping at least degree+1.
// It reports whether a point was removed.
func (e *Editor) RemoveControl() bool {
	if len(e.Scene.Controls) <= e.Scene.Degree+1 {
		return false
	}
	e.Scene.Controls = e.Scene.Controls[:len(e.Scene.Controls)-1]
	if e.held >= len(e.Scene.Controls) {
		e.held = -1
	}
	e.reknot()
	return true
}

func (e *Editor) reknot() {
	e.Scene.Knots = spline.ClampedKnots(len(e.Scene.Controls), e.Scene.Degree)
	e.dirty = true
}
