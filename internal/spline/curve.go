package spline

import (
	"errors"
	"fmt"

	"spline-canvas/internal/common"
)

var (
	ErrDegree    = errors.New("spline: negative degree")
	ErrSamples   = errors.New("spline: sample count must be positive")
	ErrControls  = errors.New("spline: not enough control points")
	ErrKnotCount = errors.New("spline: knot vector length mismatch")
	ErrKnotOrder = errors.New("spline: knot vector is not non-decreasing")
)

// Parametrization selects the parameter range swept by [Spline.Sample].
type Parametrization int

const (
	// Normalized sweeps u over [0, 1] regardless of the knot values.
	Normalized Parametrization = iota
	// KnotDomain sweeps u over [knots[degree], knots[len(controls)]].
	KnotDomain
)

func (p Parametrization) String() string {
	switch p {
	case Normalized:
		return "normalized"
	case KnotDomain:
		return "knots"
	}
	return fmt.Sprintf("Parametrization(%d)", int(p))
}

// Spline is a B-spline curve. Its slices are never modified by its methods.
type Spline struct {
	Controls []common.Vec2
	Knots    []float64
	Degree   int
}

// Validate checks the degree, control count and knot vector shape.
func (s Spline) Validate() error {
	if s.Degree < 0 {
		return fmt.Errorf("%w: %d", ErrDegree, s.Degree)
	}
	if len(s.Controls) < s.Degree+1 {
		return fmt.Errorf("%w: have %d, degree %d needs %d", ErrControls, len(s.Controls), s.Degree, s.Degree+1)
	}
	if want := len(s.Controls) + s.Degree + 1; len(s.Knots) != want {
		return fmt.Errorf("%w: have %d knots, want %d", ErrKnotCount, len(s.Knots), want)
	}
	if !IsNonDecreasing(s.Knots) {
		return ErrKnotOrder
	}
	return nil
}

// At returns the curve point at parameter u. The spline must be valid.
func (s Spline) At(u float64) common.Vec2 {
	return s.point(u, nil)
}

func (s Spline) point(u float64, table []float64) common.Vec2 {
	basis := Basis(u, s.Degree, s.Knots, table)
	var p common.Vec2
	for k, c := range s.Controls {
		p = p.Add(c.Scale(basis[k]))
	}
	return p
}

// Sample returns n+1 curve points at evenly spaced parameters, from the
// start of the range selected by param to its end.
func (s Spline) Sample(n int, param Parametrization) ([]common.Vec2, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSamples, n)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	lo, hi := 0.0, 1.0
	if param == KnotDomain {
		lo, hi = Domain(s.Knots, s.Degree, len(s.Controls))
	}
	table := make([]float64, len(s.Knots)-1)
	points := make([]common.Vec2, n+1)
	for i := range points {
		u := lo + (hi-lo)*float64(i)/float64(n)
		if i == n {
			u = hi
		}
		points[i] = s.point(u, table)
	}
	return points, nil
}

// Evaluate approximates the B-spline defined by controls, knots and degree
// with sampleCount+1 points at u = i/sampleCount, i = 0..sampleCount.
func Evaluate(controls []common.Vec2, knots []float64, degree, sampleCount int) ([]common.Vec2, error) {
	return Spline{Controls: controls, Knots: knots, Degree: degree}.Sample(sampleCount, Normalized)
}
