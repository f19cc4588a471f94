// pkg/engine/systems.go
package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-asteroids/pkg/clock"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// System priorities. The world runs higher priorities first, so one Update
// performs input, integration, edge policy, spawning, pickup and scoring in
// that order, with the store last.
const (
	ControlPriority = 60
	MotionPriority  = 50
	EdgePriority    = 40
	SpawnPriority   = 30
	PickupPriority  = 20
	ScorePriority   = 10
)

// members is an insertion-ordered entity list shared by the systems that
// iterate every body.
type members struct {
	list []entity.Entity
}

func (m *members) add(o ecs.Identifier) {
	if e, ok := o.(entity.Entity); ok {
		m.list = append(m.list, e)
	}
}

func (m *members) remove(basic ecs.BasicEntity) {
	for i, e := range m.list {
		if e.ID() == basic.ID() {
			m.list = append(m.list[:i], m.list[i+1:]...)
			return
		}
	}
}

// ControlSystem turns the tick's command into player acceleration and fuel burn
type ControlSystem struct {
	game *Game
}

func (s *ControlSystem) Priority() int                { return ControlPriority }
func (s *ControlSystem) Remove(basic ecs.BasicEntity) {}

// Update applies the command and announces thrust state changes
func (s *ControlSystem) Update(dt float32) {
	g := s.game
	was := g.Player.Thrusting
	g.Controller.Apply(g.Player, g.frame.command, dt)
	if g.Player.Thrusting != was {
		g.EventBus.Publish(event.NewThrustEvent(g, g.Player.Thrusting, g.Player.Fuel))
	}
}

// MotionSystem integrates every body under drag
type MotionSystem struct {
	members
	game *Game
}

func (s *MotionSystem) Priority() int                   { return MotionPriority }
func (s *MotionSystem) AddByInterface(o ecs.Identifier) { s.add(o) }
func (s *MotionSystem) Remove(basic ecs.BasicEntity)    { s.remove(basic) }

// Update advances each body by dt
func (s *MotionSystem) Update(dt float32) {
	for _, e := range s.list {
		physics.Integrate(e.GetBody(), dt, s.game.drag)
	}
}

// EdgeSystem applies each entity's edge policy against the tick's viewport
type EdgeSystem struct {
	members
	game  *Game
	stray []entity.Entity
}

func (s *EdgeSystem) Priority() int                   { return EdgePriority }
func (s *EdgeSystem) AddByInterface(o ecs.Identifier) { s.add(o) }
func (s *EdgeSystem) Remove(basic ecs.BasicEntity)    { s.remove(basic) }

// Update bounces the player and removes strays once iteration is done
func (s *EdgeSystem) Update(dt float32) {
	g := s.game
	vp := g.frame.viewport

	s.stray = s.stray[:0]
	for _, e := range s.list {
		switch e.EdgePolicy() {
		case physics.EdgeBounce:
			if res := physics.Bounce(e.GetBody(), vp, g.spin); res.Any() {
				g.EventBus.Publish(event.NewBounceEvent(g, res.X, res.Y))
			}
		case physics.EdgeDespawn:
			if physics.OutOfBounds(e.GetBody().Position, vp) {
				s.stray = append(s.stray, e)
			}
		}
	}

	for _, e := range s.stray {
		g.removeEntity(e)
	}
}

// SpawnSystem keeps the asteroid population topped up and drops a fuel can
// for each completed fuel interval.
type SpawnSystem struct {
	game *Game
}

func (s *SpawnSystem) Priority() int                { return SpawnPriority }
func (s *SpawnSystem) Remove(basic ecs.BasicEntity) {}

// Update spawns at most one asteroid and one can per completed fuel period
func (s *SpawnSystem) Update(dt float32) {
	g := s.game
	vp := g.frame.viewport

	if a, ok := g.Spawner.Replenish(g.Store.Count(entity.KindAsteroid), vp); ok {
		g.addEntity(a)
	}

	for n := g.FuelTimer.Tick(clock.Seconds(dt)); n > 0; n-- {
		if f, ok := g.Spawner.FuelCan(vp); ok {
			g.addEntity(f)
		}
	}
}

// PickupSystem hands the player every fuel can inside the pickup box
type PickupSystem struct {
	game *Game
	hits []entity.Entity
}

func (s *PickupSystem) Priority() int                { return PickupPriority }
func (s *PickupSystem) Remove(basic ecs.BasicEntity) {}

// Update tests every can against the player's position at the start of the pass
func (s *PickupSystem) Update(dt float32) {
	g := s.game
	pos := g.Player.Position

	s.hits = s.hits[:0]
	g.Store.Each(entity.KindFuelCan, func(e entity.Entity) {
		if physics.WithinBox(pos, e.GetBody().Position, g.pickupRange) {
			s.hits = append(s.hits, e)
		}
	})

	amount := g.Config.Fuel.PerCan
	for _, e := range s.hits {
		g.removeEntity(e)
		g.Controller.Refuel(g.Player, amount)
		g.EventBus.Publish(event.NewFuelEvent(g, e.ID(), amount, g.Player.Fuel))
	}
}

// ScoreSystem awards points for elapsed simulation time
type ScoreSystem struct {
	game *Game
}

func (s *ScoreSystem) Priority() int                { return ScorePriority }
func (s *ScoreSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the score timer
func (s *ScoreSystem) Update(dt float32) {
	g := s.game
	if gained := g.Score.Tick(clock.Seconds(dt)); gained > 0 {
		g.EventBus.Publish(event.NewScoreEvent(g, gained, g.Score.Points))
	}
}
