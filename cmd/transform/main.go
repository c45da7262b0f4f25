package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"honnef.co/go/curve"

	"spline-canvas/internal/common"
	"spline-canvas/internal/transform"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

const (
	WindowWidth  = 1024
	WindowHeight = 768
	LineWidth    = 2
)

var (
	ColorBackground = color.RGBA{255, 255, 255, 255}
	ColorAxis       = color.RGBA{0, 0, 0, 255}
	ColorOriginal   = color.RGBA{0, 0, 0, 255}
	ColorReflected  = color.RGBA{255, 0, 255, 255} // Magenta
	ColorTwice      = color.RGBA{255, 0, 0, 255}   // Red
)

// ============================================================================

type Game struct {
	Figure transform.Figure
	// ToScreen maps the y-up figure into y-down screen space.
	ToScreen curve.Affine
}

func (g *Game) Update() error {
	return nil
}

func (g *Game) line(screen *ebiten.Image, a, b common.Vec2, col color.Color) {
	a, b = transform.Apply(g.ToScreen, a), transform.Apply(g.ToScreen, b)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), LineWidth, col, true)
}

func (g *Game) triangle(screen *ebiten.Image, t transform.Triangle, col color.Color) {
	for i := range t {
		g.line(screen, t[i], t[(i+1)%len(t)], col)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	f := g.Figure
	g.line(screen, f.Axis[0], f.Axis[1], ColorAxis)
	g.triangle(screen, f.Original, ColorOriginal)
	g.triangle(screen, f.Reflected, ColorReflected)
	g.triangle(screen, f.Twice, ColorTwice)
	ebitenutil.DebugPrint(screen, "TRANSFORMS\n----------\nBlack:   original\nMagenta: mirrored across the axis\nRed:     mirrored again, vertical axis")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return WindowWidth, WindowHeight
}

func main() {
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("Transforms")

	game := &Game{
		Figure:   transform.DemoFigure(WindowHeight),
		ToScreen: transform.ToScreen(WindowHeight),
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
