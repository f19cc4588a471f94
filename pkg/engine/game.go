// pkg/engine/game.go
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-asteroids/pkg/clock"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/control"
	"github.com/opd-ai/go-asteroids/pkg/diagnostics"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/random"
	"github.com/opd-ai/go-asteroids/pkg/spawn"
	"github.com/opd-ai/go-asteroids/pkg/validation"
)

// Game is the whole simulation: the ECS world, the entity store, the player
// and the two process-wide timers. All access goes through Step and the
// read methods below, which serialize on EntityLock.
//
// Event handlers run synchronously inside Step while EntityLock is held and
// must not call back into the Game.
type Game struct {
	Config      *config.GameConfig
	World       *ecs.World
	Store       *entity.Store
	Player      *entity.Player
	Controller  *control.Controller
	Spawner     *spawn.Spawner
	Score       *Score
	FuelTimer   *clock.Timer
	EventBus    *event.Bus
	EntityLock  sync.RWMutex
	Running     bool
	CurrentTick uint64
	ElapsedTime time.Duration
	StartTime   time.Time

	drag        physics.Drag
	pickupRange float32
	spin        random.Sampler
	samplers    spawn.Samplers
	seed        uint64
	seeded      bool
	frames      diagnostics.FrameWindow
	frame       frameInput
	logger      *logging.Logger
	ctx         context.Context
}

// frameInput is what the host supplied for the tick in progress
type frameInput struct {
	dt       float32
	viewport physics.Viewport
	command  control.Command
}

// Option customises a Game at construction
type Option func(*Game)

// WithSamplers replaces the seeded random streams used for spawning and
// bounce spin, typically with deterministic samplers in tests.
func WithSamplers(s spawn.Samplers, spin random.Sampler) Option {
	return func(g *Game) {
		g.samplers = s
		g.spin = spin
	}
}

// WithEventBus shares an existing event bus
func WithEventBus(bus *event.Bus) Option {
	return func(g *Game) { g.EventBus = bus }
}

// WithLogger sets the logger used by the event subscribers
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithContext sets the context carried on every log entry
func WithContext(ctx context.Context) Option {
	return func(g *Game) { g.ctx = ctx }
}

// WithSeedPopulation controls whether the initial quarter of the asteroid
// cap is placed at construction. It defaults to true.
func WithSeedPopulation(enabled bool) Option {
	return func(g *Game) { g.seeded = enabled }
}

// NewGame creates a new game with the specified configuration. A nil config
// uses config.DefaultConfig.
func NewGame(cfg *config.GameConfig, opts ...Option) *Game {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	src := random.NewSource(cfg.Seed)
	game := &Game{
		Config:      cfg,
		World:       &ecs.World{},
		Store:       entity.NewStore(),
		Score:       NewScore(cfg.Scoring.PointsPerSecond),
		FuelTimer:   clock.NewTimer(clock.Seconds(cfg.Fuel.Interval)),
		EventBus:    event.NewEventBus(),
		drag:        physics.Drag{Linear: cfg.Physics.LinearDrag, Angular: cfg.Physics.AngularDrag},
		pickupRange: cfg.Fuel.PickupRange,
		spin:        src.Stream(random.StreamSpin),
		samplers:    spawn.StreamSamplers(src),
		seed:        src.Seed(),
		seeded:      true,
		logger:      logging.NewNop(),
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(game)
	}

	game.Controller = control.NewController(controllerSettings(cfg))
	game.Spawner = spawn.NewSpawner(spawnerSettings(cfg), game.samplers)

	game.registerEventHandlers()
	game.initSystems()
	game.initPlayer()
	if game.seeded {
		game.initPopulation()
	}

	return game
}

// ProvideGame validates cfg and builds a game logging through logger
func ProvideGame(cfg *config.GameConfig, logger *logging.Logger) (*Game, error) {
	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, logging.WrapError(err, "failed to build game")
	}
	return NewGame(cfg, WithLogger(logger)), nil
}

func controllerSettings(cfg *config.GameConfig) control.Settings {
	return control.Settings{
		LateralAcceleration: cfg.Player.LateralAcceleration,
		AngularAcceleration: cfg.Player.AngularAcceleration,
		Deadzone:            cfg.Player.Deadzone,
		MaxFuel:             cfg.Player.MaxFuel,
	}
}

func spawnerSettings(cfg *config.GameConfig) spawn.Settings {
	return spawn.Settings{
		Cap:          cfg.Asteroids.Count,
		SizeMin:      cfg.Asteroids.SizeMin,
		SizeMax:      cfg.Asteroids.SizeMax,
		DepthMin:     cfg.Asteroids.DepthMin,
		DepthMax:     cfg.Asteroids.DepthMax,
		FuelDepth:    cfg.Fuel.Depth,
		LinearSpeed:  cfg.Motion.LinearSpeed,
		AngularSpeed: cfg.Motion.AngularSpeed,
		AsteroidPush: cfg.Asteroids.SpawnPush,
		FuelPush:     cfg.Fuel.SpawnPush,
		SeedPush:     cfg.Asteroids.SeedPush,
	}
}

// initSystems registers every system with the world in priority order.
func (g *Game) initSystems() {
	var face *entity.Entity

	g.World.AddSystem(&ControlSystem{game: g})
	g.World.AddSystemInterface(&MotionSystem{game: g}, face, nil)
	g.World.AddSystemInterface(&EdgeSystem{game: g}, face, nil)
	g.World.AddSystem(&SpawnSystem{game: g})
	g.World.AddSystem(&PickupSystem{game: g})
	g.World.AddSystem(&ScoreSystem{game: g})
	g.World.AddSystemInterface(g.Store, face, nil)
}

func (g *Game) initPlayer() {
	g.Player = entity.NewPlayer(g.Config.Player.InitialFuel, g.Config.Player.Depth)
	g.World.AddEntity(g.Player)
}

// initPopulation front-loads a quarter of the asteroid cap so the first
// frame is not empty.
func (g *Game) initPopulation() {
	vp := validation.SanitizeViewport(physics.Viewport{
		Width:  g.Config.Viewport.Width,
		Height: g.Config.Viewport.Height,
	})
	seeded := g.Spawner.Seed(vp)
	for _, a := range seeded {
		g.addEntity(a)
	}
	g.EventBus.Publish(&event.BaseEvent{EventType: event.PopulationSeeded, Source: len(seeded)})
}

// Start marks the game running and announces it
func (g *Game) Start() {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	g.Running = true
	g.StartTime = time.Now()
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g.seed,
	})
}

// Stop marks the game stopped and announces it
func (g *Game) Stop() {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	g.Running = false
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g.Score.Points,
	})
}

// IsRunning reports whether Start has been called without a matching Stop
func (g *Game) IsRunning() bool {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()
	return g.Running
}

// Seed returns the master seed of the game's random streams
func (g *Game) Seed() uint64 {
	return g.seed
}

// Step advances the simulation by dt seconds. The viewport and command are
// read for this tick only. Invalid input is sanitized: a negative or NaN dt
// counts as zero and a non-positive viewport axis disables spawning and
// edge handling on that axis.
func (g *Game) Step(dt float32, vp physics.Viewport, cmd control.Command) {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	dt = validation.SanitizeDelta(dt)
	g.frame = frameInput{
		dt:       dt,
		viewport: validation.SanitizeViewport(vp),
		command:  validation.SanitizeCommand(cmd),
	}

	g.World.Update(dt)

	g.CurrentTick++
	g.ElapsedTime += clock.Seconds(dt)
	g.frames.Push(dt)
}

// addEntity inserts e into the world and announces it
func (g *Game) addEntity(e entity.Entity) {
	g.World.AddEntity(e)

	var kind event.Type
	switch e.Kind() {
	case entity.KindAsteroid:
		kind = event.AsteroidSpawned
	case entity.KindFuelCan:
		kind = event.FuelSpawned
	default:
		return
	}
	pos := e.GetBody().Position
	g.EventBus.Publish(event.NewEntityEvent(kind, g, e.ID(), e.Kind().String(), pos[0], pos[1]))
}

// removeEntity drops e from the world and every system
func (g *Game) removeEntity(e entity.Entity) {
	pos := e.GetBody().Position
	g.World.RemoveEntity(*e.GetBasicEntity())
	g.EventBus.Publish(event.NewEntityEvent(event.EntityDespawned, g, e.ID(), e.Kind().String(), pos[0], pos[1]))
}

// GameState is a read-only copy of the simulation for renderers and tests
type GameState struct {
	Tick      uint64
	Elapsed   time.Duration
	Score     uint64
	Fuel      float32
	Thrusting bool
	Entities  []entity.Snapshot
}

// GetGameState returns a snapshot of the simulation
func (g *Game) GetGameState() *GameState {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	return &GameState{
		Tick:      g.CurrentTick,
		Elapsed:   g.ElapsedTime,
		Score:     g.Score.Points,
		Fuel:      g.Player.Fuel,
		Thrusting: g.Player.Thrusting,
		Entities:  g.Store.Snapshots(),
	}
}

// PlayerBounds returns the player's position and the viewport of the last tick
func (g *Game) PlayerBounds() (x, y float32, vp physics.Viewport) {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	return g.Player.Position[0], g.Player.Position[1], g.frame.viewport
}

// Render hands every entity to r
func (g *Game) Render(r entity.Renderer) {
	g.EntityLock.RLock()
	snaps := g.Store.Snapshots()
	g.EntityLock.RUnlock()

	entity.Render(r, snaps)
}

// Report returns the diagnostics panel contents
func (g *Game) Report() diagnostics.Report {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	return diagnostics.Report{
		Score:       g.Score.Points,
		FuelPercent: diagnostics.FuelPercent(g.Player.Fuel, g.Config.Player.InitialFuel),
		Fuel:        g.Player.Fuel,
		FPS:         g.frames.FPS(),
		FrameAvg:    clock.Seconds(g.frames.Average()),
		Frame:       clock.Seconds(g.frames.Last()),
		Frames:      g.frames.Frames(),
		Elapsed:     g.ElapsedTime,
		NextFuelIn:  g.FuelTimer.Remaining(),
		Asteroids:   g.Store.Count(entity.KindAsteroid),
		FuelCans:    g.Store.Count(entity.KindFuelCan),
	}
}

func (g *Game) registerEventHandlers() {
	for _, t := range []event.Type{
		event.AsteroidSpawned,
		event.FuelSpawned,
		event.EntityDespawned,
		event.FuelCollected,
		event.PlayerBounced,
		event.ThrustChanged,
		event.PopulationSeeded,
	} {
		g.EventBus.Subscribe(t, g.logEvent)
	}
	g.EventBus.Subscribe(event.GameStarted, g.handleLifecycle)
	g.EventBus.Subscribe(event.GameEnded, g.handleLifecycle)
}

func (g *Game) logEvent(e event.Event) {
	args := []any{"type", string(e.GetType()), "tick", g.CurrentTick}
	switch ev := e.(type) {
	case *event.EntityEvent:
		args = append(args, "entity_id", ev.EntityID, "kind", ev.Kind, "x", ev.X, "y", ev.Y)
	case *event.FuelEvent:
		args = append(args, "can_id", ev.CanID, "amount", ev.Amount, "fuel", ev.Fuel)
	case *event.BounceEvent:
		args = append(args, "axis_x", ev.AxisX, "axis_y", ev.AxisY)
	case *event.ThrustEvent:
		args = append(args, "thrusting", ev.Thrusting, "fuel", ev.Fuel)
	case *event.BaseEvent:
		args = append(args, "source", ev.Source)
	}
	g.logger.Debug(g.ctx, "Simulation event", args...)
}

func (g *Game) handleLifecycle(e event.Event) {
	switch e.GetType() {
	case event.GameStarted:
		g.logger.Info(g.ctx, "Game started", "seed", g.seed, "asteroid_cap", g.Config.Asteroids.Count)
	case event.GameEnded:
		g.logger.Info(g.ctx, "Game ended", "score", g.Score.Points, "ticks", g.CurrentTick, "elapsed", g.ElapsedTime)
	}
}
