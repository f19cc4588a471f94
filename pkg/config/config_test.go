package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_MatchesGameTuning(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, float32(60), c.Player.InitialFuel)
	assert.Equal(t, float32(100), c.Player.Depth)
	assert.Equal(t, 100, c.Asteroids.Count)
	assert.Equal(t, float32(5), c.Fuel.Interval)
	assert.Equal(t, float32(10), c.Fuel.PerCan)
	assert.Equal(t, float32(90), c.Fuel.Depth)
	assert.Equal(t, float32(2), c.Scoring.PointsPerSecond)
	assert.Equal(t, float32(0.001), c.Physics.LinearDrag)
	assert.Zero(t, c.Player.MaxFuel)
}

func TestSaveLoadConfig_Formats(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"json", "game.json"},
		{"yaml", "game.yaml"},
		{"yml", "game.YML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			want := DefaultConfig()
			want.Seed = 42
			want.Viewport.Width = 640
			want.Asteroids.Count = 12

			require.NoError(t, SaveConfig(want, path))
			got, err := LoadConfig(path)
			require.NoError(t, err)

			assert.Equal(t, want, got)
		})
	}
}

func TestSaveConfig_NilConfig(t *testing.T) {
	err := SaveConfig(nil, filepath.Join(t.TempDir(), "x.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadJSON_PartialKeepsDefaults(t *testing.T) {
	c, err := LoadJSON(strings.NewReader(`{"seed": 7, "fuel": {"perCan": 25}}`))
	require.NoError(t, err)

	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, float32(25), c.Fuel.PerCan)
	assert.Equal(t, float32(5), c.Fuel.Interval)
	assert.Equal(t, 100, c.Asteroids.Count)
}

func TestLoadYAML_PartialKeepsDefaults(t *testing.T) {
	c, err := LoadYAML(strings.NewReader("player:\n  initialFuel: 30\n"))
	require.NoError(t, err)

	assert.Equal(t, float32(30), c.Player.InitialFuel)
	assert.Equal(t, float32(100), c.Player.Depth)
}

func TestLoadYAML_Empty(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := LoadJSON(strings.NewReader(`{"seed":`))
	assert.Error(t, err)

	_, err = LoadYAML(strings.NewReader("seed: [1, 2"))
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvViewportWidth, "1024.5")
	t.Setenv(EnvNumAsteroids, "20")
	t.Setenv(EnvMaxFuel, "120")
	t.Setenv(EnvDuration, "3")

	c := DefaultConfig()
	require.NoError(t, ApplyEnvOverrides(c))

	assert.Equal(t, uint64(99), c.Seed)
	assert.Equal(t, float32(1024.5), c.Viewport.Width)
	assert.Equal(t, float32(720), c.Viewport.Height)
	assert.Equal(t, 20, c.Asteroids.Count)
	assert.Equal(t, float32(120), c.Player.MaxFuel)
	assert.Equal(t, float32(3), c.Host.Duration)
	assert.Equal(t, 60, c.Host.TickRate)
}

func TestApplyEnvOverrides_InvalidValue(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvSeed, "-1"},
		{EnvNumAsteroids, "lots"},
		{EnvInitialFuel, "full"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			err := ApplyEnvOverrides(DefaultConfig())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("ASTEROIDS_TEST_STRING", "value")
	assert.Equal(t, "value", getEnvOrDefault("ASTEROIDS_TEST_STRING", "default"))
	assert.Equal(t, "default", getEnvOrDefault("ASTEROIDS_TEST_UNSET", "default"))

	t.Setenv("ASTEROIDS_TEST_EMPTY", "")
	assert.Equal(t, "default", getEnvOrDefault("ASTEROIDS_TEST_EMPTY", "default"))
}

func TestGetEnvAsFloatOrDefault(t *testing.T) {
	t.Setenv("ASTEROIDS_TEST_FLOAT", "2.5")
	v, err := getEnvAsFloatOrDefault("ASTEROIDS_TEST_FLOAT", 1)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), v)

	t.Setenv("ASTEROIDS_TEST_FLOAT", "abc")
	v, err = getEnvAsFloatOrDefault("ASTEROIDS_TEST_FLOAT", 1)
	assert.Error(t, err)
	assert.Equal(t, float32(1), v)
}
