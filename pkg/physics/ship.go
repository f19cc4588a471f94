package physics

import "github.com/EngoEngine/math"

// Thrust returns the linear acceleration produced by firing the main engine
// at the given rotation. A rotation of zero points along +Y and positive
// rotation turns counter-clockwise.
func Thrust(rotation, accel, magnitude float32) (ax, ay float32) {
	heading := -rotation
	return math.Sin(heading) * accel * magnitude, math.Cos(heading) * accel * magnitude
}
