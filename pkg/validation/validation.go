// Package validation sanitizes per-tick input from the host and checks
// configurations before a game is built from them.
package validation

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/control"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ErrInvalidConfig is wrapped by every error ValidateConfig returns
var ErrInvalidConfig = errors.New("invalid config")

// MaxAsteroids bounds the population cap a configuration may request
const MaxAsteroids = 10000

// MaxTickRate bounds the host tick rate so the tick interval stays positive
const MaxTickRate = 10000

// finite reports whether v is neither NaN nor infinite
func finite(v float32) bool {
	return v-v == 0
}

// SanitizeDelta returns dt, or 0 when it is negative, NaN or infinite.
func SanitizeDelta(dt float32) float32 {
	if !finite(dt) || dt < 0 {
		return 0
	}
	return dt
}

// SanitizeViewport zeroes any dimension that is not a finite positive number.
// The simulation treats a zero dimension as "skip spawning and bouncing".
func SanitizeViewport(vp physics.Viewport) physics.Viewport {
	if !finite(vp.Width) || vp.Width < 0 {
		vp.Width = 0
	}
	if !finite(vp.Height) || vp.Height < 0 {
		vp.Height = 0
	}
	return vp
}

// SanitizeCommand clamps analog axes into their ranges and replaces NaN with
// zero. Unknown digital rotations become RotateNone.
func SanitizeCommand(cmd control.Command) control.Command {
	cmd.ThrustAnalog = clamp(cmd.ThrustAnalog, 0, 1)
	cmd.RotateAnalog = clamp(cmd.RotateAnalog, -1, 1)
	switch cmd.RotateDigital {
	case control.RotateNone, control.RotateLeft, control.RotateRight:
	default:
		cmd.RotateDigital = control.RotateNone
	}
	return cmd
}

func clamp(v, lo, hi float32) float32 {
	switch {
	case v != v:
		return 0
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// ValidateConfig reports every problem with c. The returned error wraps
// ErrInvalidConfig and can be split with multierr.Errors.
func ValidateConfig(c *config.GameConfig) error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(finite(c.Viewport.Width) && c.Viewport.Width >= 0, "viewport width %v must be non-negative", c.Viewport.Width)
	check(finite(c.Viewport.Height) && c.Viewport.Height >= 0, "viewport height %v must be non-negative", c.Viewport.Height)

	check(finite(c.Player.InitialFuel) && c.Player.InitialFuel >= 0, "initial fuel %v must be non-negative", c.Player.InitialFuel)
	check(finite(c.Player.MaxFuel) && c.Player.MaxFuel >= 0, "max fuel %v must be non-negative", c.Player.MaxFuel)
	check(c.Player.MaxFuel == 0 || c.Player.MaxFuel >= c.Player.InitialFuel,
		"max fuel %v is below initial fuel %v", c.Player.MaxFuel, c.Player.InitialFuel)
	check(finite(c.Player.LateralAcceleration), "lateral acceleration must be finite")
	check(finite(c.Player.AngularAcceleration), "angular acceleration must be finite")
	check(finite(c.Player.Deadzone) && c.Player.Deadzone >= 0 && c.Player.Deadzone < 1,
		"deadzone %v must be in [0, 1)", c.Player.Deadzone)

	check(finite(c.Physics.LinearDrag) && c.Physics.LinearDrag >= 0, "linear drag %v must be non-negative", c.Physics.LinearDrag)
	check(finite(c.Physics.AngularDrag) && c.Physics.AngularDrag >= 0, "angular drag %v must be non-negative", c.Physics.AngularDrag)

	check(c.Asteroids.Count >= 0 && c.Asteroids.Count <= MaxAsteroids,
		"asteroid count %d must be in [0, %d]", c.Asteroids.Count, MaxAsteroids)
	check(c.Asteroids.SizeMin < c.Asteroids.SizeMax, "asteroid size range [%v, %v) is empty", c.Asteroids.SizeMin, c.Asteroids.SizeMax)
	check(c.Asteroids.DepthMin < c.Asteroids.DepthMax, "asteroid depth range [%v, %v) is empty", c.Asteroids.DepthMin, c.Asteroids.DepthMax)
	check(c.Asteroids.SpawnPush > 0, "asteroid spawn push %v must be positive", c.Asteroids.SpawnPush)
	check(c.Asteroids.SeedPush > 0, "asteroid seed push %v must be positive", c.Asteroids.SeedPush)

	check(finite(c.Fuel.Interval) && c.Fuel.Interval > 0, "fuel interval %v must be positive", c.Fuel.Interval)
	check(finite(c.Fuel.PerCan) && c.Fuel.PerCan >= 0, "fuel per can %v must be non-negative", c.Fuel.PerCan)
	check(c.Fuel.SpawnPush > 0, "fuel spawn push %v must be positive", c.Fuel.SpawnPush)
	check(finite(c.Fuel.PickupRange) && c.Fuel.PickupRange >= 0, "pickup range %v must be non-negative", c.Fuel.PickupRange)

	check(c.Motion.LinearSpeed > 0, "linear speed %v must be positive", c.Motion.LinearSpeed)
	check(c.Motion.AngularSpeed > 0, "angular speed %v must be positive", c.Motion.AngularSpeed)

	check(finite(c.Scoring.PointsPerSecond) && c.Scoring.PointsPerSecond > 0,
		"points per second %v must be positive", c.Scoring.PointsPerSecond)

	check(c.Host.TickRate > 0 && c.Host.TickRate <= MaxTickRate,
		"tick rate %d must be in [1, %d]", c.Host.TickRate, MaxTickRate)
	check(finite(c.Host.MaxDelta) && c.Host.MaxDelta > 0, "max delta %v must be positive", c.Host.MaxDelta)
	check(finite(c.Host.ReportInterval) && c.Host.ReportInterval >= 0, "report interval %v must be non-negative", c.Host.ReportInterval)
	check(finite(c.Host.Duration) && c.Host.Duration >= 0, "duration %v must be non-negative", c.Host.Duration)

	return err
}
