// Package steering implements kinematic movement and the seek and arrive
// steering behaviors. Distances are in pixels and times in milliseconds.
package steering

import (
	"math"

	"spline-canvas/internal/common"
)

// Arrive defaults.
const (
	ArriveMaxSpeed        = 0.1   // Pixels per millisecond
	ArriveMaxAcceleration = 0.001 // Pixels per millisecond squared
	ArriveTargetRadius    = 10.0
	ArriveSlowRadius      = 100.0
	ArriveTimeToTarget    = 1.0
)

// SeekMaxSpeed is the default speed of Seek.
const SeekMaxSpeed = 0.01

// Kinematics is the movement state of a character.
type Kinematics struct {
	Position    common.Vec2
	Velocity    common.Vec2
	Orientation float64 // Radians
	Rotation    float64 // Radians per millisecond
}

// SteeringOutput is an acceleration request.
type SteeringOutput struct {
	Linear  common.Vec2
	Angular float64
}

// KinematicSteeringOutput is a velocity request.
type KinematicSteeringOutput struct {
	Velocity common.Vec2
	Rotation float64
}

// Update integrates k over dt with the current velocity and rotation, then
// applies the accelerations in s.
func (k *Kinematics) Update(s SteeringOutput, dt float64) {
	k.Position = k.Position.Add(k.Velocity.Scale(dt))
	k.Orientation += k.Rotation * dt

	k.Velocity = k.Velocity.Add(s.Linear.Scale(dt))
	k.Rotation += s.Angular * dt
}

// Follow sets the velocity and rotation from s and moves k over dt.
func (k *Kinematics) Follow(s KinematicSteeringOutput, dt float64) {
	k.Velocity = s.Velocity
	k.Rotation = s.Rotation
	k.Position = k.Position.Add(k.Velocity.Scale(dt))
	k.Orientation += k.Rotation * dt
}

// NewOrientation faces along velocity, or keeps current when standing still.
func NewOrientation(current float64, velocity common.Vec2) float64 {
	if velocity.Len() > 0 {
		return math.Atan2(-velocity.X, velocity.Y)
	}
	return current
}

// Seek moves at full speed toward the target.
type Seek struct {
	MaxSpeed float64
}

// NewSeek returns a Seek with the default speed.
func NewSeek() Seek {
	return Seek{MaxSpeed: SeekMaxSpeed}
}

// Steering returns the velocity toward target and turns character to face it.
func (s Seek) Steering(character *Kinematics, target Kinematics) KinematicSteeringOutput {
	velocity := target.Position.Sub(character.Position).Normalize().Scale(s.MaxSpeed)
	character.Orientation = NewOrientation(character.Orientation, velocity)
	return KinematicSteeringOutput{Velocity: velocity}
}

// Arrive accelerates toward the target and slows down on approach.
type Arrive struct {
	MaxSpeed        float64
	MaxAcceleration float64
	TargetRadius    float64 // Stop steering inside this distance
	SlowRadius      float64 // Start slowing down inside this distance
	TimeToTarget    float64 // Time to reach the target speed
}

// NewArrive returns an Arrive with the default tuning.
func NewArrive() Arrive {
	return Arrive{
		MaxSpeed:        ArriveMaxSpeed,
		MaxAcceleration: ArriveMaxAcceleration,
		TargetRadius:    ArriveTargetRadius,
		SlowRadius:      ArriveSlowRadius,
		TimeToTarget:    ArriveTimeToTarget,
	}
}

// Steering returns the acceleration that brings character to target. It
// returns false once character is inside the target radius.
func (a Arrive) Steering(character, target Kinematics) (SteeringOutput, bool) {
	direction := target.Position.Sub(character.Position)
	distance := direction.Len()
	if distance < a.TargetRadius {
		return SteeringOutput{}, false
	}

	targetSpeed := a.MaxSpeed
	if distance <= a.SlowRadius {
		targetSpeed = a.MaxSpeed * distance / a.SlowRadius
	}
	targetVelocity := direction.Normalize().Scale(targetSpeed)

	linear := targetVelocity.Sub(character.Velocity).Scale(1 / a.TimeToTarget)
	if linear.Len() > a.MaxAcceleration {
		linear = linear.Normalize().Scale(a.MaxAcceleration)
	}
	return SteeringOutput{Linear: linear}, true
}
