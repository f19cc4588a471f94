package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-asteroids/pkg/control"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Behavior selects how the autopilot flies the ship
type Behavior int

const (
	// BehaviorIdle never touches the controls
	BehaviorIdle Behavior = iota
	// BehaviorForager steers toward the nearest fuel can
	BehaviorForager
	// BehaviorCruiser thrusts in bursts and turns at random
	BehaviorCruiser
)

// String returns the flag value for b
func (b Behavior) String() string {
	switch b {
	case BehaviorForager:
		return "forager"
	case BehaviorCruiser:
		return "cruiser"
	default:
		return "idle"
	}
}

// ParseBehavior maps a flag value to a Behavior
func ParseBehavior(s string) (Behavior, error) {
	switch s {
	case "idle":
		return BehaviorIdle, nil
	case "forager":
		return BehaviorForager, nil
	case "cruiser":
		return BehaviorCruiser, nil
	default:
		return BehaviorIdle, fmt.Errorf("unknown pilot behavior %q", s)
	}
}

// aimTolerance is how far off the heading may be before the pilot stops turning
const aimTolerance = math.Pi / 12

// Pilot produces a steering command per tick from the simulation state. It
// stands in for a human at the keyboard when the simulation runs headless.
type Pilot struct {
	behavior Behavior
	random   *rand.Rand
}

// NewPilot creates a pilot with its own random stream
func NewPilot(behavior Behavior, seed uint64) *Pilot {
	return &Pilot{
		behavior: behavior,
		random:   rand.New(rand.NewPCG(seed, uint64(behavior))),
	}
}

// Command returns the input for the next tick
func (p *Pilot) Command(state *engine.GameState) control.Command {
	switch p.behavior {
	case BehaviorForager:
		return p.forage(state)
	case BehaviorCruiser:
		return p.cruise()
	default:
		return control.Command{}
	}
}

func (p *Pilot) forage(state *engine.GameState) control.Command {
	ship, ok := findPlayer(state)
	if !ok {
		return control.Command{}
	}
	target, ok := nearestFuelCan(state, ship.Position)
	if !ok {
		return control.Command{}
	}

	diff := physics.WrapAngle(headingTo(ship.Position, target) - ship.Rotation)

	cmd := control.Command{}
	switch {
	case diff > aimTolerance:
		cmd.RotateDigital = control.RotateLeft
	case diff < -aimTolerance:
		cmd.RotateDigital = control.RotateRight
	}
	// Only burn fuel once roughly facing the can
	cmd.ThrustDigital = math.Abs(float64(diff)) < 2*aimTolerance
	return cmd
}

func (p *Pilot) cruise() control.Command {
	cmd := control.Command{
		ThrustAnalog: float32(p.random.Float64()),
	}
	if p.random.Float64() < 0.1 {
		cmd.RotateAnalog = float32(p.random.Float64()*2 - 1)
	}
	return cmd
}

// headingTo returns the rotation that points the ship's nose from a to b.
// A rotation of zero faces +Y and positive rotation turns counter-clockwise.
func headingTo(a, b mgl32.Vec3) float32 {
	d := b.Sub(a)
	return float32(math.Atan2(float64(-d[0]), float64(d[1])))
}

func findPlayer(state *engine.GameState) (entity.Snapshot, bool) {
	for _, s := range state.Entities {
		if s.Kind == entity.KindPlayer {
			return s, true
		}
	}
	return entity.Snapshot{}, false
}

func nearestFuelCan(state *engine.GameState, from mgl32.Vec3) (mgl32.Vec3, bool) {
	var (
		best  mgl32.Vec3
		bestD float32 = -1
	)
	for _, s := range state.Entities {
		if s.Kind != entity.KindFuelCan {
			continue
		}
		dx, dy := s.Position[0]-from[0], s.Position[1]-from[1]
		d := dx*dx + dy*dy
		if bestD < 0 || d < bestD {
			best, bestD = s.Position, d
		}
	}
	return best, bestD >= 0
}
