package control

import (
	"github.com/EngoEngine/math"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Default controller tuning
const (
	LateralAcceleration float32 = 50
	AngularAcceleration float32 = math.Pi / 4
	Deadzone            float32 = 0.1
)

// State is the thrust state of the player
type State int

const (
	Idle State = iota
	Thrusting
)

// String returns the state name
func (s State) String() string {
	if s == Thrusting {
		return "thrusting"
	}
	return "idle"
}

// Settings tunes a Controller
type Settings struct {
	LateralAcceleration float32
	AngularAcceleration float32
	Deadzone            float32
	// MaxFuel caps fuel after pickups; zero leaves it uncapped.
	MaxFuel float32
}

// DefaultSettings returns the standard tuning
func DefaultSettings() Settings {
	return Settings{
		LateralAcceleration: LateralAcceleration,
		AngularAcceleration: AngularAcceleration,
		Deadzone:            Deadzone,
	}
}

// Controller applies steering commands to the player
type Controller struct {
	settings Settings
}

// NewController creates a controller with the given settings
func NewController(settings Settings) *Controller {
	return &Controller{settings: settings}
}

// Settings returns the controller's tuning
func (c *Controller) Settings() Settings {
	return c.settings
}

// Apply updates p's thrust state, fuel and acceleration from cmd.
//
// Thrust needs fuel regardless of the device: an analog deflection past the
// deadzone burns fuel at its magnitude, digital thrust burns one unit per
// second, and fuel never drops below zero. Without fuel the player goes
// idle and linear acceleration is cleared. Rotation is independent of fuel.
func (c *Controller) Apply(p *entity.Player, cmd Command, dt float32) State {
	var magnitude float32
	switch {
	case p.Fuel > 0 && cmd.ThrustAnalog > c.settings.Deadzone:
		magnitude = cmd.ThrustAnalog
	case p.Fuel > 0 && cmd.ThrustDigital:
		magnitude = 1
	}

	state := Idle
	if magnitude > 0 {
		state = Thrusting
		p.Fuel -= magnitude * dt
		if p.Fuel < 0 {
			p.Fuel = 0
		}
		p.Acceleration.X, p.Acceleration.Y = physics.Thrust(p.Rotation, c.settings.LateralAcceleration, magnitude)
	} else {
		p.Acceleration.X, p.Acceleration.Y = 0, 0
	}
	p.Thrusting = state == Thrusting

	p.Acceleration.R = c.angular(cmd)

	return state
}

// Refuel adds amount to p's fuel, honouring MaxFuel.
func (c *Controller) Refuel(p *entity.Player, amount float32) {
	p.Fuel += amount
	if c.settings.MaxFuel > 0 && p.Fuel > c.settings.MaxFuel {
		p.Fuel = c.settings.MaxFuel
	}
}

func (c *Controller) angular(cmd Command) float32 {
	dz := c.settings.Deadzone
	if cmd.RotateAnalog < -dz || cmd.RotateAnalog >= dz {
		return -cmd.RotateAnalog * c.settings.AngularAcceleration
	}
	switch cmd.RotateDigital {
	case RotateLeft:
		return c.settings.AngularAcceleration
	case RotateRight:
		return -c.settings.AngularAcceleration
	default:
		return 0
	}
}
