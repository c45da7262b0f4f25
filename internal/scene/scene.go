// Package scene describes a B-spline plot: control points, knots, degree
// and sampling density.
package scene

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fxamacker/cbor/v2"

	"spline-canvas/internal/common"
	"spline-canvas/internal/spline"
)

// Default sample data.
const (
	DefaultDegree  = 3
	DefaultSamples = 500
)

// ControlColors is the marker palette indexed by control point.
var ControlColors = []color.RGBA{
	{255, 0, 0, 255},   // red
	{0, 128, 0, 255},   // green
	{0, 0, 255, 255},   // blue
	{128, 0, 128, 255}, // purple
}

// ControlColor returns the marker color of control point i.
func ControlColor(i int) color.RGBA {
	return ControlColors[i%len(ControlColors)]
}

// Scene is everything needed to draw a curve: the control points, the knot
// vector, the degree, and how many points to sample.
type Scene struct {
	Controls []common.Vec2 `cbor:"1,keyasint"`
	Knots    []float64     `cbor:"2,keyasint"`
	Degree   int           `cbor:"3,keyasint"`
	Samples  int           `cbor:"4,keyasint"`
}

// Default returns the sample scene: a clamped cubic with four control points
// around (200, 200).
func Default() Scene {
	origin := common.V(200, 200)
	return Scene{
		Controls: []common.Vec2{
			origin,
			origin.Add(common.V(-50, -150)),
			origin.Add(common.V(150, 50)),
			origin.Add(common.V(100, -100)),
		},
		Knots:   []float64{0, 0, 0, 0, 1, 1, 1, 1},
		Degree:  DefaultDegree,
		Samples: DefaultSamples,
	}
}

// Spline returns the curve described by s. The slices are shared.
func (s Scene) Spline() spline.Spline {
	return spline.Spline{Controls: s.Controls, Knots: s.Knots, Degree: s.Degree}
}

// Validate reports whether the scene can be evaluated.
func (s Scene) Validate() error {
	if s.Samples <= 0 {
		return fmt.Errorf("%w: %d", spline.ErrSamples, s.Samples)
	}
	return s.Spline().Validate()
}

// Clone returns a deep copy of s.
func (s Scene) Clone() Scene {
	s.Controls = append([]common.Vec2(nil), s.Controls...)
	s.Knots = append([]float64(nil), s.Knots...)
	return s
}

// Encode writes s to w in CBOR.
func (s Scene) Encode(w io.Writer) error {
	return cbor.NewEncoder(w).Encode(s)
}

// Decode reads a CBOR scene from r. A missing knot vector is replaced by a
// uniform clamped one.
func Decode(r io.Reader) (Scene, error) {
	var s Scene
	if err := cbor.NewDecoder(r).Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("scene: decode: %w", err)
	}
	if len(s.Knots) == 0 {
		s.Knots = spline.ClampedKnots(len(s.Controls), s.Degree)
	}
	if s.Samples == 0 {
		s.Samples = DefaultSamples
	}
	if err := s.Validate(); err != nil {
		return Scene{}, fmt.Errorf("scene: invalid: %w", err)
	}
	return s, nil
}
