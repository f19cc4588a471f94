package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPlayer, "player"},
		{KindAsteroid, "asteroid"},
		{KindFuelCan, "fuel_can"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestEntities_EdgePolicies(t *testing.T) {
	assert.Equal(t, physics.EdgeBounce, NewPlayer(60, 100).EdgePolicy())
	assert.Equal(t, physics.EdgeDespawn, NewAsteroid(1, physics.Body{}).EdgePolicy())
	assert.Equal(t, physics.EdgeDespawn, NewFuelCan(physics.Body{}).EdgePolicy())
}

func TestEntities_UniqueIDs(t *testing.T) {
	a := NewAsteroid(1, physics.Body{})
	b := NewAsteroid(1, physics.Body{})
	c := NewFuelCan(physics.Body{})

	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEqual(t, b.ID(), c.ID())
}

func TestEntities_IDMatchesBasicEntity(t *testing.T) {
	all := []Entity{
		NewPlayer(60, 100),
		NewAsteroid(1, physics.Body{}),
		NewFuelCan(physics.Body{}),
	}

	for _, e := range all {
		t.Run(e.Kind().String(), func(t *testing.T) {
			assert.Equal(t, e.GetBasicEntity().ID(), e.ID())
		})
	}
}

func TestPlayer_SpriteFollowsThrust(t *testing.T) {
	p := NewPlayer(60, 100)
	assert.Equal(t, SpriteIdle, p.Sprite())

	p.Thrusting = true
	assert.Equal(t, SpriteThrusting, p.Sprite())
}

func TestNewPlayer_StartsAtOriginWithDepth(t *testing.T) {
	p := NewPlayer(60, 100)

	assert.Equal(t, mgl32.Vec3{0, 0, 100}, p.Position)
	assert.Equal(t, float32(60), p.Fuel)
	assert.False(t, p.Thrusting)
}

func TestSnap(t *testing.T) {
	body := physics.Body{Position: mgl32.Vec3{1, 2, 3}, Rotation: 0.25}
	a := NewAsteroid(2.5, body)

	s := Snap(a)

	assert.Equal(t, a.ID(), s.ID)
	assert.Equal(t, KindAsteroid, s.Kind)
	assert.Equal(t, body.Position, s.Position)
	assert.Equal(t, float32(0.25), s.Rotation)
	assert.Equal(t, float32(2.5), s.Scale)
	assert.Equal(t, SpriteAsteroid, s.Sprite)

	assert.Equal(t, FuelCanScale, Snap(NewFuelCan(body)).Scale)
}

func TestStore_AddRemoveCount(t *testing.T) {
	s := NewStore()
	p := NewPlayer(60, 100)
	a1 := NewAsteroid(1, physics.Body{})
	a2 := NewAsteroid(2, physics.Body{})
	f := NewFuelCan(physics.Body{})

	for _, e := range []Entity{p, a1, a2, f} {
		s.Add(e)
	}
	s.Add(a1)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 2, s.Count(KindAsteroid))
	assert.Equal(t, 1, s.Count(KindFuelCan))

	s.Remove(a1.BasicEntity)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.Count(KindAsteroid))
	_, ok := s.Get(a1.ID())
	assert.False(t, ok)

	got, ok := s.Get(f.ID())
	require.True(t, ok)
	assert.Same(t, f, got)

	s.Remove(a1.BasicEntity)
	assert.Equal(t, 3, s.Len())
}

func TestStore_PreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	var asteroids []*Asteroid
	for i := 0; i < 5; i++ {
		a := NewAsteroid(float32(i), physics.Body{})
		asteroids = append(asteroids, a)
		s.Add(a)
	}

	s.Remove(asteroids[1].BasicEntity)

	var sizes []float32
	s.Each(KindAsteroid, func(e Entity) {
		sizes = append(sizes, e.(*Asteroid).Size)
	})
	assert.Equal(t, []float32{0, 2, 3, 4}, sizes)
	assert.Len(t, s.OfKind(KindAsteroid), 4)
	assert.Len(t, s.Snapshots(), 4)
}

type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) RenderPlayer(Snapshot)   { r.calls = append(r.calls, "player") }
func (r *recordingRenderer) RenderAsteroid(Snapshot) { r.calls = append(r.calls, "asteroid") }
func (r *recordingRenderer) RenderFuelCan(Snapshot)  { r.calls = append(r.calls, "fuel") }
func (r *recordingRenderer) Clear()                  { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) Present()                { r.calls = append(r.calls, "present") }

func TestRender_DispatchesByKind(t *testing.T) {
	s := NewStore()
	s.Add(NewPlayer(60, 100))
	s.Add(NewAsteroid(1, physics.Body{}))
	s.Add(NewFuelCan(physics.Body{}))

	r := &recordingRenderer{}
	Render(r, s.Snapshots())

	assert.Equal(t, []string{"clear", "player", "asteroid", "fuel", "present"}, r.calls)
}
