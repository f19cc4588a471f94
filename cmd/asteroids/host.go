package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-asteroids/internal/injector"
	"github.com/opd-ai/go-asteroids/pkg/clock"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/diagnostics"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/health"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/validation"
)

// memoryLimitMB is the heap size the memory check tolerates
const memoryLimitMB = 500

// run builds the simulation and drives it until ctx is cancelled or the
// configured duration has passed.
func run(ctx context.Context, cfg *config.GameConfig, logger *logging.Logger, behavior Behavior) error {
	game, err := injector.InitializeGame(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if cfg.Host.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, clock.Seconds(cfg.Host.Duration))
		defer cancel()
	}

	monitor := diagnostics.NewMonitor(clock.Seconds(cfg.Host.ReportInterval), logger)
	checker := newHealthChecker(game, cfg)
	pilot := NewPilot(behavior, game.Seed())

	logger.Info(ctx, "Starting simulation",
		"seed", game.Seed(),
		"tick_rate", cfg.Host.TickRate,
		"pilot", behavior.String(),
		"duration", clock.Seconds(cfg.Host.Duration),
	)

	game.Start()
	defer game.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return monitor.Run(gctx)
	})
	g.Go(func() error {
		return simulate(gctx, game, pilot, monitor, checker, logger)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	final := game.Report()
	logger.Info(ctx, "Simulation finished", final.Fields()...)
	return nil
}

// newHealthChecker registers the sanity checks the host polls
func newHealthChecker(game *engine.Game, cfg *config.GameConfig) *health.HealthChecker {
	checker := health.NewHealthChecker()

	checker.AddCheck(health.NewGameEngineHealthCheck(game.IsRunning))
	checker.AddCheck(health.NewPopulationHealthCheck(cfg.Asteroids.Count, func() int {
		return game.Report().Asteroids
	}))
	checker.AddCheck(health.NewFuelHealthCheck(func() float32 {
		return game.GetGameState().Fuel
	}))
	checker.AddCheck(health.NewBoundsHealthCheck(game.PlayerBounds))
	checker.AddCheck(health.NewMemoryHealthCheck(memoryLimitMB, func() int64 {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return int64(m.Alloc / 1024 / 1024)
	}))

	return checker
}

// simulate steps the game at the configured tick rate. Each step receives
// the measured wall time since the previous one, capped at MaxDelta.
func simulate(ctx context.Context, game *engine.Game, pilot *Pilot, monitor *diagnostics.Monitor,
	checker *health.HealthChecker, logger *logging.Logger,
) error {
	cfg := game.Config
	vp := physics.Viewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	maxDelta := clock.Seconds(cfg.Host.MaxDelta)
	healthTimer := clock.NewTimer(clock.Seconds(cfg.Host.ReportInterval))
	renderer := newHeadlessRenderer()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Host.TickRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if maxDelta > 0 && elapsed > maxDelta {
				elapsed = maxDelta
			}

			step(game, pilot, monitor, vp, elapsed)

			if healthTimer.Tick(elapsed) > 0 {
				checkHealth(ctx, checker, logger)
				game.Render(renderer)
				logger.Debug(ctx, "Frame drawn",
					"players", renderer.counts[entity.KindPlayer],
					"asteroids", renderer.counts[entity.KindAsteroid],
					"fuel_cans", renderer.counts[entity.KindFuelCan],
				)
			}
		}
	}
}

// step advances the game by one tick and publishes the result
func step(game *engine.Game, pilot *Pilot, monitor *diagnostics.Monitor, vp physics.Viewport, elapsed time.Duration) {
	cmd := validation.SanitizeCommand(pilot.Command(game.GetGameState()))
	game.Step(float32(elapsed.Seconds()), vp, cmd)
	monitor.Publish(game.Report())
}

func checkHealth(ctx context.Context, checker *health.HealthChecker, logger *logging.Logger) {
	status := checker.CheckHealth(ctx)
	if status.Healthy() {
		return
	}
	for _, name := range status.Failures() {
		logger.Warn(ctx, "Health check failed",
			"check", name,
			"message", status.Checks[name].Message,
		)
	}
}

// headlessRenderer counts what a frame would draw. The host has no display
// and uses it to log the population seen by the renderer collaborator.
type headlessRenderer struct {
	counts map[entity.Kind]int
}

func newHeadlessRenderer() *headlessRenderer {
	return &headlessRenderer{counts: make(map[entity.Kind]int)}
}

func (r *headlessRenderer) RenderPlayer(s entity.Snapshot)   { r.counts[entity.KindPlayer]++ }
func (r *headlessRenderer) RenderAsteroid(s entity.Snapshot) { r.counts[entity.KindAsteroid]++ }
func (r *headlessRenderer) RenderFuelCan(s entity.Snapshot)  { r.counts[entity.KindFuelCan]++ }
func (r *headlessRenderer) Clear()                           { clear(r.counts) }
func (r *headlessRenderer) Present()                         {}
