// pkg/physics/vector.go
package physics

import (
	"github.com/EngoEngine/math"
	"github.com/go-gl/mathgl/mgl32"
)

// Motion holds a linear (X, Y) and angular (R) rate. Bodies use it for both
// velocity and acceleration.
type Motion struct {
	X float32
	Y float32
	R float32
}

// IsZero reports whether every component is zero
func (m Motion) IsZero() bool {
	return m.X == 0 && m.Y == 0 && m.R == 0
}

// Linear returns the linear part as a 2D vector
func (m Motion) Linear() mgl32.Vec2 {
	return mgl32.Vec2{m.X, m.Y}
}

// Speed returns the magnitude of the linear part
func (m Motion) Speed() float32 {
	return m.Linear().Len()
}

// Signum returns -1 for negative values and +1 otherwise, including zero.
// Placement and bounce clamping push zero coordinates towards the positive side.
func Signum(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// WrapAngle maps an angle in radians into [-π, π).
func WrapAngle(a float32) float32 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a - math.Pi
}

// AbsDiff returns the per-axis absolute difference between two points
func AbsDiff(a, b mgl32.Vec3) mgl32.Vec3 {
	d := a.Sub(b)
	return mgl32.Vec3{math.Abs(d[0]), math.Abs(d[1]), math.Abs(d[2])}
}
