package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables recognised by ApplyEnvOverrides
const (
	EnvSeed           = "ASTEROIDS_SEED"
	EnvViewportWidth  = "ASTEROIDS_VIEWPORT_WIDTH"
	EnvViewportHeight = "ASTEROIDS_VIEWPORT_HEIGHT"
	EnvNumAsteroids   = "ASTEROIDS_NUM_ASTEROIDS"
	EnvInitialFuel    = "ASTEROIDS_INITIAL_FUEL"
	EnvMaxFuel        = "ASTEROIDS_MAX_FUEL"
	EnvTickRate       = "ASTEROIDS_TICK_RATE"
	EnvDuration       = "ASTEROIDS_DURATION"
)

// ApplyEnvOverrides overwrites fields of config with any ASTEROIDS_* values
// set in the environment. A variable that does not parse is an error rather
// than silently ignored.
func ApplyEnvOverrides(config *GameConfig) error {
	var err error

	if config.Seed, err = getEnvAsUintOrDefault(EnvSeed, config.Seed); err != nil {
		return err
	}
	if config.Viewport.Width, err = getEnvAsFloatOrDefault(EnvViewportWidth, config.Viewport.Width); err != nil {
		return err
	}
	if config.Viewport.Height, err = getEnvAsFloatOrDefault(EnvViewportHeight, config.Viewport.Height); err != nil {
		return err
	}
	if config.Asteroids.Count, err = getEnvAsIntOrDefault(EnvNumAsteroids, config.Asteroids.Count); err != nil {
		return err
	}
	if config.Player.InitialFuel, err = getEnvAsFloatOrDefault(EnvInitialFuel, config.Player.InitialFuel); err != nil {
		return err
	}
	if config.Player.MaxFuel, err = getEnvAsFloatOrDefault(EnvMaxFuel, config.Player.MaxFuel); err != nil {
		return err
	}
	if config.Host.TickRate, err = getEnvAsIntOrDefault(EnvTickRate, config.Host.TickRate); err != nil {
		return err
	}
	if config.Host.Duration, err = getEnvAsFloatOrDefault(EnvDuration, config.Host.Duration); err != nil {
		return err
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsUintOrDefault(key string, defaultValue uint64) (uint64, error) {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsFloatOrDefault(key string, defaultValue float32) (float32, error) {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return float32(parsed), nil
}
