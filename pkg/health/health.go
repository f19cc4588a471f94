// Package health runs periodic sanity checks against a live simulation.
// Each check inspects one aspect of the world (population, fuel, the player's
// position, process memory) and the checker aggregates them into a status
// the host logs alongside diagnostics.
package health

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Status values
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthCheck defines the interface for individual health checks.
type HealthCheck interface {
	// Name returns the unique name of this health check
	Name() string
	// Check performs the health check and returns an error if unhealthy
	Check(ctx context.Context) error
}

// HealthStatus represents the overall health status of the simulation.
type HealthStatus struct {
	Status string                     `json:"status"`
	Checks map[string]ComponentHealth `json:"checks"`
}

// Healthy reports whether every check passed
func (s HealthStatus) Healthy() bool {
	return s.Status == StatusHealthy
}

// Failures returns the names of failing checks in sorted order
func (s HealthStatus) Failures() []string {
	var out []string
	for name, c := range s.Checks {
		if c.Status != StatusHealthy {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// ComponentHealth represents the health status of an individual check.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker manages and executes health checks.
type HealthChecker struct {
	checks map[string]HealthCheck
	mu     sync.RWMutex
}

// NewHealthChecker creates a new health checker instance.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks: make(map[string]HealthCheck),
	}
}

// AddCheck registers a new health check with the health checker.
// If a check with the same name already exists, it will be replaced.
func (hc *HealthChecker) AddCheck(check HealthCheck) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[check.Name()] = check
}

// RemoveCheck removes a health check by name.
func (hc *HealthChecker) RemoveCheck(name string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	delete(hc.checks, name)
}

// CheckHealth executes all registered health checks and returns the aggregated status.
// The overall status is "healthy" only if all individual checks pass.
func (hc *HealthChecker) CheckHealth(ctx context.Context) HealthStatus {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	status := HealthStatus{
		Status: StatusHealthy,
		Checks: make(map[string]ComponentHealth, len(hc.checks)),
	}

	for name, check := range hc.checks {
		if err := check.Check(ctx); err != nil {
			status.Status = StatusUnhealthy
			status.Checks[name] = ComponentHealth{
				Status:  StatusUnhealthy,
				Message: err.Error(),
			}
		} else {
			status.Checks[name] = ComponentHealth{
				Status: StatusHealthy,
			}
		}
	}

	return status
}

// GameEngineHealthCheck fails while the game is not running.
type GameEngineHealthCheck struct {
	gameRunning func() bool
}

// NewGameEngineHealthCheck creates a health check for the game engine.
func NewGameEngineHealthCheck(gameRunning func() bool) *GameEngineHealthCheck {
	return &GameEngineHealthCheck{
		gameRunning: gameRunning,
	}
}

// Name returns the name of this health check.
func (g *GameEngineHealthCheck) Name() string {
	return "game_engine"
}

// Check verifies that the game engine is running.
func (g *GameEngineHealthCheck) Check(ctx context.Context) error {
	if !g.gameRunning() {
		return fmt.Errorf("game engine is not running")
	}
	return nil
}

// PopulationHealthCheck fails when the asteroid population exceeds its cap.
type PopulationHealthCheck struct {
	limit int
	count func() int
}

// NewPopulationHealthCheck creates a population check against limit
func NewPopulationHealthCheck(limit int, count func() int) *PopulationHealthCheck {
	return &PopulationHealthCheck{limit: limit, count: count}
}

// Name returns the name of this health check.
func (p *PopulationHealthCheck) Name() string {
	return "population"
}

// Check verifies the population is within the cap.
func (p *PopulationHealthCheck) Check(ctx context.Context) error {
	if n := p.count(); n > p.limit {
		return fmt.Errorf("asteroid population %d exceeds cap %d", n, p.limit)
	}
	return nil
}

// FuelHealthCheck fails when the player's fuel is negative or not a number.
type FuelHealthCheck struct {
	fuel func() float32
}

// NewFuelHealthCheck creates a fuel check
func NewFuelHealthCheck(fuel func() float32) *FuelHealthCheck {
	return &FuelHealthCheck{fuel: fuel}
}

// Name returns the name of this health check.
func (f *FuelHealthCheck) Name() string {
	return "fuel"
}

// Check verifies fuel is a non-negative number.
func (f *FuelHealthCheck) Check(ctx context.Context) error {
	if v := f.fuel(); !(v >= 0) {
		return fmt.Errorf("player fuel %v is negative", v)
	}
	return nil
}

// BoundsHealthCheck fails when the player sits outside the bounce area of
// the viewport it was last stepped with.
type BoundsHealthCheck struct {
	state func() (x, y float32, vp physics.Viewport)
}

// NewBoundsHealthCheck creates a bounds check
func NewBoundsHealthCheck(state func() (x, y float32, vp physics.Viewport)) *BoundsHealthCheck {
	return &BoundsHealthCheck{state: state}
}

// Name returns the name of this health check.
func (b *BoundsHealthCheck) Name() string {
	return "bounds"
}

// Check verifies the player is inside the half extents on every non-empty axis.
func (b *BoundsHealthCheck) Check(ctx context.Context) error {
	x, y, vp := b.state()
	halfW, halfH := vp.Half()
	if halfW > 0 && (x > halfW || x < -halfW) {
		return fmt.Errorf("player x %v outside [-%v, %v]", x, halfW, halfW)
	}
	if halfH > 0 && (y > halfH || y < -halfH) {
		return fmt.Errorf("player y %v outside [-%v, %v]", y, halfH, halfH)
	}
	return nil
}

// MemoryHealthCheck implements HealthCheck for memory usage monitoring.
type MemoryHealthCheck struct {
	maxMemoryMB    int64
	getMemoryUsage func() int64
}

// NewMemoryHealthCheck creates a health check for memory usage.
func NewMemoryHealthCheck(maxMemoryMB int64, getMemoryUsage func() int64) *MemoryHealthCheck {
	return &MemoryHealthCheck{
		maxMemoryMB:    maxMemoryMB,
		getMemoryUsage: getMemoryUsage,
	}
}

// Name returns the name of this health check.
func (m *MemoryHealthCheck) Name() string {
	return "memory"
}

// Check verifies that memory usage is within acceptable limits.
func (m *MemoryHealthCheck) Check(ctx context.Context) error {
	currentMB := m.getMemoryUsage()
	if currentMB > m.maxMemoryMB {
		return fmt.Errorf("memory usage %dMB exceeds limit %dMB", currentMB, m.maxMemoryMB)
	}
	return nil
}
