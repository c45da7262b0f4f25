package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spline-canvas/internal/common"
	"spline-canvas/internal/editor"
	"spline-canvas/internal/scene"
	"spline-canvas/internal/spline"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

const (
	WindowWidth  = 1024
	WindowHeight = 768
)

const (
	PointSize          = 2   // Side of the square drawn per curve sample
	MarkerSize         = 5.0 // Side of the control point markers
	OverlaySamples     = 200 // Samples of the interpolating overlay
	ControlPolygonLine = 1
)

var (
	ColorBackground     = color.RGBA{255, 255, 255, 255}
	ColorCurve          = color.RGBA{0, 0, 0, 255}
	ColorControlPolygon = color.RGBA{200, 200, 200, 255}
	ColorOverlay        = color.RGBA{0, 160, 200, 160}
	ColorHeld           = color.RGBA{255, 160, 0, 255}
)

// ============================================================================

type Game struct {
	Editor      *editor.Editor
	ShowOverlay bool

	curve   []common.Vec2
	overlay []common.Vec2
}

func cursor() common.Vec2 {
	x, y := ebiten.CursorPosition()
	return common.V(float64(x), float64(y))
}

func (g *Game) Update() error {
	e := g.Editor

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		e.Press(cursor())
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		e.Release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		e.Move(cursor())
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if inpututil.IsKeyJustPressed(key) {
			e.SetDegree(i + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		e.AddControl(cursor())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		e.RemoveControl()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.ShowOverlay = !g.ShowOverlay
		g.overlay = nil
	}

	return g.refresh()
}

// refresh re-evaluates the curve and the overlay after an edit.
func (g *Game) refresh() error {
	e := g.Editor
	dirty := e.Dirty()
	if dirty || g.curve == nil {
		curve, err := e.Curve()
		if err != nil {
			return err
		}
		g.curve = curve
	}
	if g.ShowOverlay && (dirty || g.overlay == nil) {
		// Too few points to interpolate leaves the overlay empty.
		g.overlay, _ = spline.Interpolate(e.Scene.Controls, OverlaySamples)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	e := g.Editor
	controls := e.Scene.Controls

	for i := 0; i+1 < len(controls); i++ {
		a, b := controls[i], controls[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), ControlPolygonLine, ColorControlPolygon, true)
	}

	if g.ShowOverlay {
		for i := 0; i+1 < len(g.overlay); i++ {
			a, b := g.overlay[i], g.overlay[i+1]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, ColorOverlay, true)
		}
	}

	for _, p := range g.curve {
		vector.FillRect(screen, float32(p.X), float32(p.Y), PointSize, PointSize, ColorCurve, false)
	}

	for i, p := range controls {
		var col color.Color = scene.ControlColor(i)
		if i == e.Held() {
			col = ColorHeld
		}
		vector.FillRect(screen, float32(p.X)-MarkerSize/2, float32(p.Y)-MarkerSize/2, MarkerSize, MarkerSize, col, false)
	}

	msg := "B-SPLINE EDITOR\n"
	msg += "---------------\n"
	msg += fmt.Sprintf("Degree:   %d\n", e.Scene.Degree)
	msg += fmt.Sprintf("Controls: %d\n", len(controls))
	msg += fmt.Sprintf("Samples:  %d\n", e.Scene.Samples)
	msg += "\nDrag = move point\n1-5 = degree\nA = add point, Backspace = remove\nI = toggle interpolation"
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return WindowWidth, WindowHeight
}

func main() {
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("B-Spline Editor")

	game := &Game{Editor: editor.New(scene.Default())}
	if err := game.refresh(); err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
