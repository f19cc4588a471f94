package health

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// mockHealthCheck implements HealthCheck for testing
type mockHealthCheck struct {
	name    string
	healthy bool
}

func (m *mockHealthCheck) Name() string {
	return m.name
}

func (m *mockHealthCheck) Check(ctx context.Context) error {
	if !m.healthy {
		return fmt.Errorf("mock health check failed")
	}
	return nil
}

func TestNewHealthChecker(t *testing.T) {
	hc := NewHealthChecker()
	require.NotNil(t, hc)
	assert.NotNil(t, hc.checks)
}

func TestHealthChecker_AddRemove(t *testing.T) {
	hc := NewHealthChecker()
	check := &mockHealthCheck{name: "test", healthy: true}

	hc.AddCheck(check)
	assert.Same(t, check, hc.checks["test"])

	replacement := &mockHealthCheck{name: "test", healthy: false}
	hc.AddCheck(replacement)
	assert.Len(t, hc.checks, 1)
	assert.Same(t, replacement, hc.checks["test"])

	hc.RemoveCheck("test")
	assert.Empty(t, hc.checks)
}

func TestHealthChecker_CheckHealth(t *testing.T) {
	tests := []struct {
		name     string
		checks   []*mockHealthCheck
		healthy  bool
		failures []string
	}{
		{"no checks", nil, true, nil},
		{"all healthy", []*mockHealthCheck{{"a", true}, {"b", true}}, true, nil},
		{"one failing", []*mockHealthCheck{{"a", true}, {"b", false}}, false, []string{"b"}},
		{"all failing", []*mockHealthCheck{{"b", false}, {"a", false}}, false, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := NewHealthChecker()
			for _, c := range tt.checks {
				hc.AddCheck(c)
			}

			status := hc.CheckHealth(context.Background())
			assert.Equal(t, tt.healthy, status.Healthy())
			assert.Equal(t, tt.failures, status.Failures())
			assert.Len(t, status.Checks, len(tt.checks))
		})
	}
}

func TestGameEngineHealthCheck(t *testing.T) {
	running := false
	check := NewGameEngineHealthCheck(func() bool { return running })

	assert.Equal(t, "game_engine", check.Name())
	assert.Error(t, check.Check(context.Background()))

	running = true
	assert.NoError(t, check.Check(context.Background()))
}

func TestPopulationHealthCheck(t *testing.T) {
	n := 100
	check := NewPopulationHealthCheck(100, func() int { return n })

	assert.NoError(t, check.Check(context.Background()))

	n = 101
	assert.ErrorContains(t, check.Check(context.Background()), "exceeds cap 100")
}

func TestFuelHealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		fuel    float32
		wantErr bool
	}{
		{"full", 60, false},
		{"empty", 0, false},
		{"negative", -0.5, true},
		{"nan", float32(math.NaN()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := NewFuelHealthCheck(func() float32 { return tt.fuel })
			err := check.Check(context.Background())
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestBoundsHealthCheck(t *testing.T) {
	vp := physics.Viewport{Width: 800, Height: 600}

	tests := []struct {
		name    string
		x, y    float32
		vp      physics.Viewport
		wantErr bool
	}{
		{"centre", 0, 0, vp, false},
		{"inset_edge", 399, -299, vp, false},
		{"outside_x", 401, 0, vp, true},
		{"outside_y", 0, -301, vp, true},
		{"empty_viewport", 5000, 5000, physics.Viewport{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := NewBoundsHealthCheck(func() (float32, float32, physics.Viewport) {
				return tt.x, tt.y, tt.vp
			})
			assert.Equal(t, tt.wantErr, check.Check(context.Background()) != nil)
		})
	}
}

func TestMemoryHealthCheck(t *testing.T) {
	check := NewMemoryHealthCheck(100, func() int64 { return 50 })
	assert.Equal(t, "memory", check.Name())
	assert.NoError(t, check.Check(context.Background()))

	check = NewMemoryHealthCheck(100, func() int64 { return 150 })
	assert.ErrorContains(t, check.Check(context.Background()), "exceeds limit")
}
