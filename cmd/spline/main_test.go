package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"spline-canvas/internal/common"
	"spline-canvas/internal/editor"
	"spline-canvas/internal/scene"
	"spline-canvas/internal/spline"
)

func TestRefresh(t *testing.T) {
	g := &Game{Editor: editor.New(scene.Default())}
	if err := g.refresh(); err != nil {
		t.Fatal(err)
	}
	if len(g.curve) != scene.DefaultSamples+1 {
		t.Fatalf("got %d curve points, want %d", len(g.curve), scene.DefaultSamples+1)
	}

	before := append([]common.Vec2(nil), g.curve...)
	g.Editor.Press(g.Editor.Scene.Controls[1])
	g.Editor.Move(common.V(300, 300))
	if err := g.refresh(); err != nil {
		t.Fatal(err)
	}
	if cmp.Equal(before, g.curve) {
		t.Error("curve not re-evaluated after a drag")
	}
}

func TestRefreshError(t *testing.T) {
	s := scene.Default()
	s.Knots = s.Knots[:3]
	g := &Game{Editor: editor.New(s)}
	if err := g.refresh(); !errors.Is(err, spline.ErrKnotCount) {
		t.Errorf("got %v, want %v", err, spline.ErrKnotCount)
	}
	if g.curve != nil {
		t.Errorf("curve set despite error: %v", g.curve)
	}
}
