package spline

import (
	"fmt"

	"github.com/cnkei/gospline"

	"spline-canvas/internal/common"
)

// Interpolate returns samples+1 points on a natural cubic spline passing
// through every point, parametrized by point index.
func Interpolate(points []common.Vec2, samples int) ([]common.Vec2, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSamples, samples)
	}
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: interpolation needs 3, have %d", ErrControls, len(points))
	}
	ts := make([]float64, len(points))
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		ts[i] = float64(i)
		xs[i] = p.X
		ys[i] = p.Y
	}
	sx := gospline.NewCubicSpline(ts, xs)
	sy := gospline.NewCubicSpline(ts, ys)

	last := float64(len(points) - 1)
	out := make([]common.Vec2, samples+1)
	for i := range out {
		t := last * float64(i) / float64(samples)
		out[i] = common.Vec2{X: sx.At(t), Y: sy.At(t)}
	}
	return out, nil
}
