package entity

import "github.com/go-gl/mathgl/mgl32"

// Sprite identifies the image a renderer should draw for an entity. The
// player's two values match the frame indices of its sprite atlas.
type Sprite int

const (
	SpriteIdle Sprite = iota
	SpriteThrusting
	SpriteAsteroid
	SpriteFuelCan
)

// Snapshot is the read-only view of an entity handed to renderers
type Snapshot struct {
	ID       uint64
	Kind     Kind
	Position mgl32.Vec3
	Rotation float32
	Scale    float32
	Sprite   Sprite
}

// Snap captures the current render state of e
func Snap(e Entity) Snapshot {
	b := e.GetBody()
	return Snapshot{
		ID:       e.ID(),
		Kind:     e.Kind(),
		Position: b.Position,
		Rotation: b.Rotation,
		Scale:    e.Scale(),
		Sprite:   e.Sprite(),
	}
}

// Renderer draws entity snapshots
type Renderer interface {
	RenderPlayer(s Snapshot)
	RenderAsteroid(s Snapshot)
	RenderFuelCan(s Snapshot)
	Clear()
	Present()
}

// Render dispatches each snapshot to the matching Renderer method between a
// Clear and a Present.
func Render(r Renderer, snapshots []Snapshot) {
	r.Clear()
	for _, s := range snapshots {
		switch s.Kind {
		case KindPlayer:
			r.RenderPlayer(s)
		case KindAsteroid:
			r.RenderAsteroid(s)
		case KindFuelCan:
			r.RenderFuelCan(s)
		}
	}
	r.Present()
}
