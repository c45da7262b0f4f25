package steering

import "spline-canvas/internal/common"

// PlayerStep is how far one tick of arrow input moves the player.
const PlayerStep = 3.0

// Behavior selects how the chaser follows the player.
type Behavior int

const (
	BehaviorArrive Behavior = iota
	BehaviorSeek
)

func (b Behavior) String() string {
	if b == BehaviorSeek {
		return "seek"
	}
	return "arrive"
}

// Input is the directional input for one tick.
type Input struct {
	Left, Right, Up, Down bool
}

// Dir returns the unit step direction of in, in y-down screen space.
func (in Input) Dir() common.Vec2 {
	var d common.Vec2
	if in.Right {
		d.X++
	}
	if in.Left {
		d.X--
	}
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	return d
}

// World is a player moved by input and a chaser steering toward it.
type World struct {
	Player   Kinematics
	Chaser   Kinematics
	Arrive   Arrive
	Seek     Seek
	Behavior Behavior
}

// NewWorld places the player and chaser at the given positions.
func NewWorld(player, chaser common.Vec2) *World {
	return &World{
		Player: Kinematics{Position: player},
		Chaser: Kinematics{Position: chaser},
		Arrive: NewArrive(),
		Seek:   NewSeek(),
	}
}

// Step advances the world by one tick of dt milliseconds. It reports whether
// the chaser is still steering.
func (w *World) Step(in Input, dt float64) bool {
	d := in.Dir()
	w.Player.Position = w.Player.Position.Add(common.V(d.X*PlayerStep, d.Y*PlayerStep))
	w.Player.Update(SteeringOutput{}, dt)

	switch w.Behavior {
	case BehaviorSeek:
		w.Chaser.Follow(w.Seek.Steering(&w.Chaser, w.Player), dt)
		return true
	default:
		s, ok := w.Arrive.Steering(w.Chaser, w.Player)
		if !ok {
			return false
		}
		w.Chaser.Update(s, dt)
		return true
	}
}
