package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"spline-canvas/internal/common"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pts(xy ...float64) []common.Vec2 {
	out := make([]common.Vec2, len(xy)/2)
	for i := range out {
		out[i] = common.V(xy[2*i], xy[2*i+1])
	}
	return out
}
