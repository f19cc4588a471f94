// Package control turns steering commands from the input collaborator into
// thrust, fuel burn and angular acceleration for the player.
package control

import "github.com/EngoEngine/math"

// Rotate is a three-way digital rotation command
type Rotate int

const (
	RotateNone Rotate = iota
	RotateLeft
	RotateRight
)

// String returns the rotation name
func (r Rotate) String() string {
	switch r {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "none"
	}
}

// Command is the steering input for one tick. Analog values are zero when
// no analog device is present.
type Command struct {
	ThrustDigital bool
	ThrustAnalog  float32 // [0, 1]
	RotateDigital Rotate
	RotateAnalog  float32 // [-1, 1], positive turns right
}

// AbsMax returns whichever operand has the larger magnitude, preferring a on ties.
func AbsMax(a, b float32) float32 {
	if math.Abs(a) >= math.Abs(b) {
		return a
	}
	return b
}

// Merge combines the commands of several input devices into one. Analog
// axes keep the strongest deflection, negative analog thrust counts as
// none, digital thrust is held if any device holds it and the first device
// with a digital rotation wins.
func Merge(cmds ...Command) Command {
	var out Command
	for _, c := range cmds {
		out.ThrustDigital = out.ThrustDigital || c.ThrustDigital
		out.ThrustAnalog = AbsMax(out.ThrustAnalog, c.ThrustAnalog)
		out.RotateAnalog = AbsMax(out.RotateAnalog, c.RotateAnalog)
		if out.RotateDigital == RotateNone {
			out.RotateDigital = c.RotateDigital
		}
	}
	if out.ThrustAnalog <= 0 {
		out.ThrustAnalog = 0
	}
	return out
}
