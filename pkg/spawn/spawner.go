// Package spawn creates asteroids and fuel cans at randomized positions
// around the edge of the viewport.
package spawn

import (
	"github.com/EngoEngine/math"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/random"
)

// Default spawn tuning
const (
	NumAsteroids int = 100

	AsteroidSizeMin  float32 = 0.5
	AsteroidSizeMax  float32 = 3.0
	AsteroidDepthMin float32 = 1.0
	AsteroidDepthMax float32 = 10.0
	FuelCanDepth     float32 = 90.0

	LinearSpeed  float32 = 100
	AngularSpeed float32 = math.Pi

	// Push divisors: larger values keep spawns closer to the visible area
	AsteroidPush float32 = 1.5
	FuelPush     float32 = 3.0
	SeedPush     float32 = 4.0
)

// Settings tunes a Spawner
type Settings struct {
	Cap          int
	SizeMin      float32
	SizeMax      float32
	DepthMin     float32
	DepthMax     float32
	FuelDepth    float32
	LinearSpeed  float32
	AngularSpeed float32
	AsteroidPush float32
	FuelPush     float32
	SeedPush     float32
}

// DefaultSettings returns the standard tuning
func DefaultSettings() Settings {
	return Settings{
		Cap:          NumAsteroids,
		SizeMin:      AsteroidSizeMin,
		SizeMax:      AsteroidSizeMax,
		DepthMin:     AsteroidDepthMin,
		DepthMax:     AsteroidDepthMax,
		FuelDepth:    FuelCanDepth,
		LinearSpeed:  LinearSpeed,
		AngularSpeed: AngularSpeed,
		AsteroidPush: AsteroidPush,
		FuelPush:     FuelPush,
		SeedPush:     SeedPush,
	}
}

// Samplers groups the random sources a Spawner draws from
type Samplers struct {
	Placement random.Sampler
	Motion    random.Sampler
	Shape     random.Sampler
}

// StreamSamplers builds Samplers from independent streams of src
func StreamSamplers(src *random.Source) Samplers {
	return Samplers{
		Placement: src.Stream(random.StreamPlacement),
		Motion:    src.Stream(random.StreamMotion),
		Shape:     src.Stream(random.StreamShape),
	}
}

// Spawner builds new asteroids and fuel cans. It does not track population;
// callers pass the current count to Replenish.
type Spawner struct {
	settings Settings
	rng      Samplers
}

// NewSpawner creates a spawner
func NewSpawner(settings Settings, rng Samplers) *Spawner {
	return &Spawner{settings: settings, rng: rng}
}

// Settings returns the spawner's tuning
func (s *Spawner) Settings() Settings {
	return s.settings
}

// Replenish returns one new asteroid when live is below the population cap.
func (s *Spawner) Replenish(live int, vp physics.Viewport) (*entity.Asteroid, bool) {
	if live >= s.settings.Cap {
		return nil, false
	}
	return s.Asteroid(vp, s.settings.AsteroidPush)
}

// Seed returns the initial population: a quarter of the cap, placed with the
// gentler seed push so the first frame is not empty.
func (s *Spawner) Seed(vp physics.Viewport) []*entity.Asteroid {
	n := s.settings.Cap / 4
	out := make([]*entity.Asteroid, 0, n)
	for i := 0; i < n; i++ {
		if a, ok := s.Asteroid(vp, s.settings.SeedPush); ok {
			out = append(out, a)
		}
	}
	return out
}

// Asteroid builds an asteroid placed with the given push divisor. ok is
// false when any sampling range is empty, e.g. for a zero-size viewport.
func (s *Spawner) Asteroid(vp physics.Viewport, push float32) (*entity.Asteroid, bool) {
	size, ok := s.rng.Shape.Uniform(s.settings.SizeMin, s.settings.SizeMax)
	if !ok {
		return nil, false
	}
	x, y, ok := Place(s.rng.Placement, vp, push)
	if !ok {
		return nil, false
	}
	z, ok := s.rng.Shape.Uniform(s.settings.DepthMin, s.settings.DepthMax)
	if !ok {
		return nil, false
	}
	vel, ok := s.Velocity()
	if !ok {
		return nil, false
	}

	body := physics.Body{Velocity: vel}
	body.Position[0], body.Position[1], body.Position[2] = x, y, z
	return entity.NewAsteroid(size, body), true
}

// FuelCan builds a fuel can placed with the fuel push divisor
func (s *Spawner) FuelCan(vp physics.Viewport) (*entity.FuelCan, bool) {
	x, y, ok := Place(s.rng.Placement, vp, s.settings.FuelPush)
	if !ok {
		return nil, false
	}
	vel, ok := s.Velocity()
	if !ok {
		return nil, false
	}

	body := physics.Body{Velocity: vel}
	body.Position[0], body.Position[1], body.Position[2] = x, y, s.settings.FuelDepth
	return entity.NewFuelCan(body), true
}

// Velocity draws a random drift: linear components from
// [-LinearSpeed, LinearSpeed) and spin from [-AngularSpeed, AngularSpeed).
func (s *Spawner) Velocity() (physics.Motion, bool) {
	lin, ang := s.settings.LinearSpeed, s.settings.AngularSpeed
	vx, ok := s.rng.Motion.Uniform(-lin, lin)
	if !ok {
		return physics.Motion{}, false
	}
	vy, ok := s.rng.Motion.Uniform(-lin, lin)
	if !ok {
		return physics.Motion{}, false
	}
	vr, ok := s.rng.Motion.Uniform(-ang, ang)
	if !ok {
		return physics.Motion{}, false
	}
	return physics.Motion{X: vx, Y: vy, R: vr}, true
}

// Place samples a point inside the viewport and pushes each coordinate
// outward by its own sign times extent/push, so spawns cluster near or past
// the visible edge.
func Place(s random.Sampler, vp physics.Viewport, push float32) (x, y float32, ok bool) {
	if !(push > 0) {
		return 0, 0, false
	}
	halfW, halfH := vp.Half()
	x, ok = s.Uniform(-halfW, halfW)
	if !ok {
		return 0, 0, false
	}
	y, ok = s.Uniform(-halfH, halfH)
	if !ok {
		return 0, 0, false
	}
	x += physics.Signum(x) * (vp.Width / push)
	y += physics.Signum(y) * (vp.Height / push)
	return x, y, true
}
