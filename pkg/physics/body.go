// pkg/physics/body.go
package physics

import (
	"github.com/EngoEngine/math"
	"github.com/go-gl/mathgl/mgl32"
)

// Default drag coefficients
const (
	LinearDrag  float32 = 0.001
	AngularDrag float32 = math.Pi / 16
)

// Body is the kinematic state shared by every moving entity.
// Position[2] is a depth value used for draw order and the pickup box test only;
// integration never touches it.
type Body struct {
	Position     mgl32.Vec3
	Rotation     float32 // radians, kept in [-π, π)
	Velocity     Motion
	Acceleration Motion
}

// Drag holds the quadratic drag coefficients applied per axis
type Drag struct {
	Linear  float32
	Angular float32
}

// DefaultDrag returns the standard drag coefficients
func DefaultDrag() Drag {
	return Drag{Linear: LinearDrag, Angular: AngularDrag}
}

// Integrate advances b by dt seconds with semi-implicit Euler: acceleration
// into velocity, drag on velocity, then velocity into position and rotation.
// A zero dt leaves the body untouched.
func Integrate(b *Body, dt float32, drag Drag) {
	if dt <= 0 {
		return
	}

	b.Velocity.X += b.Acceleration.X * dt
	b.Velocity.Y += b.Acceleration.Y * dt
	b.Velocity.R = math.Mod(b.Velocity.R+b.Acceleration.R*dt, 2*math.Pi)

	ApplyDrag(&b.Velocity, dt, drag)

	b.Position[0] += b.Velocity.X * dt
	b.Position[1] += b.Velocity.Y * dt
	b.Rotation = WrapAngle(b.Rotation + b.Velocity.R*dt)
}

// ApplyDrag removes sign(v)·v²·k·dt from each component of v.
func ApplyDrag(v *Motion, dt float32, drag Drag) {
	v.X = dragAxis(v.X, drag.Linear, dt)
	v.Y = dragAxis(v.Y, drag.Linear, dt)
	v.R = dragAxis(v.R, drag.Angular, dt)
}

// dragAxis never lets the decrement carry v past zero.
func dragAxis(v, k, dt float32) float32 {
	if v == 0 {
		return 0
	}
	speed := math.Abs(v)
	loss := speed * speed * k * dt
	if loss >= speed {
		return 0
	}
	if v < 0 {
		return v + loss
	}
	return v - loss
}
