// pkg/entity/entity.go
package entity

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Kind tags what an entity is. Systems filter on it instead of on concrete types.
type Kind int

const (
	KindPlayer Kind = iota
	KindAsteroid
	KindFuelCan
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAsteroid:
		return "asteroid"
	case KindFuelCan:
		return "fuel_can"
	default:
		return "unknown"
	}
}

// Entity is the interface every simulated object satisfies. The embedded
// ecs interfaces give each entity a stable id and let the ECS world route it
// to the systems that care about it.
type Entity interface {
	ecs.BasicFace
	ecs.Identifier
	GetBody() *physics.Body
	Kind() Kind
	EdgePolicy() physics.EdgePolicy
	Scale() float32
	Sprite() Sprite
}

// BaseEntity contains the state common to all entities
type BaseEntity struct {
	ecs.BasicEntity
	physics.Body
}

func newBase(body physics.Body) BaseEntity {
	return BaseEntity{
		BasicEntity: ecs.NewBasic(),
		Body:        body,
	}
}

// GetBody returns the entity's kinematic state
func (e *BaseEntity) GetBody() *physics.Body {
	return &e.Body
}

// Asteroid drifts under drag alone and is removed once it strays too far
type Asteroid struct {
	BaseEntity
	Size float32 // render scale, fixed at spawn
}

// NewAsteroid creates an asteroid with the given size and body
func NewAsteroid(size float32, body physics.Body) *Asteroid {
	return &Asteroid{
		BaseEntity: newBase(body),
		Size:       size,
	}
}

func (a *Asteroid) Kind() Kind                     { return KindAsteroid }
func (a *Asteroid) EdgePolicy() physics.EdgePolicy { return physics.EdgeDespawn }
func (a *Asteroid) Scale() float32                 { return a.Size }
func (a *Asteroid) Sprite() Sprite                 { return SpriteAsteroid }

// FuelCanScale is the render scale of every fuel can
const FuelCanScale float32 = 1.5

// FuelCan is consumed by the player on contact
type FuelCan struct {
	BaseEntity
}

// NewFuelCan creates a fuel can with the given body
func NewFuelCan(body physics.Body) *FuelCan {
	return &FuelCan{BaseEntity: newBase(body)}
}

func (f *FuelCan) Kind() Kind                     { return KindFuelCan }
func (f *FuelCan) EdgePolicy() physics.EdgePolicy { return physics.EdgeDespawn }
func (f *FuelCan) Scale() float32                 { return FuelCanScale }
func (f *FuelCan) Sprite() Sprite                 { return SpriteFuelCan }

// Player is the single ship steered by the input collaborator. It never
// despawns; running out of fuel only disables thrust.
type Player struct {
	BaseEntity
	Fuel      float32
	Thrusting bool
}

// NewPlayer creates the player at the origin at the given depth
func NewPlayer(fuel, depth float32) *Player {
	var body physics.Body
	body.Position[2] = depth
	return &Player{
		BaseEntity: newBase(body),
		Fuel:       fuel,
	}
}

func (p *Player) Kind() Kind                     { return KindPlayer }
func (p *Player) EdgePolicy() physics.EdgePolicy { return physics.EdgeBounce }
func (p *Player) Scale() float32                 { return 1 }

// Sprite returns the atlas frame matching the thrust state
func (p *Player) Sprite() Sprite {
	if p.Thrusting {
		return SpriteThrusting
	}
	return SpriteIdle
}
