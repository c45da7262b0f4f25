package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spline-canvas/internal/common"
	"spline-canvas/internal/steering"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

const (
	WindowWidth  = 1024
	WindowHeight = 768
	TicksPerSec  = 60
)

const (
	PlayerSize  = 3
	HeadingLine = 8
)

var (
	PlayerStart = common.V(200, 200)
	ChaserStart = common.V(200, 300)
)

var (
	ColorBackground = color.RGBA{255, 255, 255, 255}
	ColorPlayer     = color.RGBA{0, 0, 0, 255}
	ColorChaser     = color.RGBA{200, 0, 0, 255}
	ColorRadius     = color.RGBA{200, 200, 200, 255}
)

// ============================================================================

// tickMillis is the time step of one Update.
const tickMillis = 1000.0 / TicksPerSec

type Game struct {
	World    *steering.World
	Steering bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		if g.World.Behavior == steering.BehaviorArrive {
			g.World.Behavior = steering.BehaviorSeek
		} else {
			g.World.Behavior = steering.BehaviorArrive
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		behavior := g.World.Behavior
		g.World = steering.NewWorld(PlayerStart, ChaserStart)
		g.World.Behavior = behavior
	}

	in := steering.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
	g.Steering = g.World.Step(in, tickMillis)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	w := g.World

	p := w.Player.Position
	if w.Behavior == steering.BehaviorArrive {
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(w.Arrive.SlowRadius), 1, ColorRadius, true)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(w.Arrive.TargetRadius), 1, ColorRadius, true)
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), PlayerSize, PlayerSize, ColorPlayer, false)

	c := w.Chaser.Position
	vector.FillRect(screen, float32(c.X), float32(c.Y), PlayerSize, PlayerSize, ColorChaser, false)
	// Orientation 0 faces +Y.
	tipX := c.X - math.Sin(w.Chaser.Orientation)*HeadingLine
	tipY := c.Y + math.Cos(w.Chaser.Orientation)*HeadingLine
	vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(tipX), float32(tipY), 1, ColorChaser, true)

	msg := "STEERING\n"
	msg += "--------\n"
	msg += fmt.Sprintf("Behavior: %s\n", w.Behavior)
	msg += fmt.Sprintf("Distance: %.1f\n", c.Dist(p))
	msg += fmt.Sprintf("Speed:    %.3f px/ms\n", w.Chaser.Velocity.Len())
	if !g.Steering {
		msg += "[ARRIVED]\n"
	}
	msg += "\nArrows = move\nK = seek/arrive\nR = reset"
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return WindowWidth, WindowHeight
}

func main() {
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("Steering")
	ebiten.SetTPS(TicksPerSec)

	game := &Game{World: steering.NewWorld(PlayerStart, ChaserStart)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
