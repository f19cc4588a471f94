// pkg/config/config.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig contains every tunable of the asteroid simulation
type GameConfig struct {
	Seed      uint64          `json:"seed" yaml:"seed"`
	Viewport  ViewportConfig  `json:"viewport" yaml:"viewport"`
	Player    PlayerConfig    `json:"player" yaml:"player"`
	Physics   PhysicsConfig   `json:"physics" yaml:"physics"`
	Asteroids AsteroidConfig  `json:"asteroids" yaml:"asteroids"`
	Fuel      FuelConfig      `json:"fuel" yaml:"fuel"`
	Motion    MotionConfig    `json:"motion" yaml:"motion"`
	Scoring   ScoringConfig   `json:"scoring" yaml:"scoring"`
	Host      HostConfig      `json:"host" yaml:"host"`
}

// ViewportConfig is the initial viewport size in world units
type ViewportConfig struct {
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// PlayerConfig contains player ship configuration
type PlayerConfig struct {
	InitialFuel         float32 `json:"initialFuel" yaml:"initialFuel"`
	MaxFuel             float32 `json:"maxFuel" yaml:"maxFuel"` // 0 = uncapped
	LateralAcceleration float32 `json:"lateralAcceleration" yaml:"lateralAcceleration"`
	AngularAcceleration float32 `json:"angularAcceleration" yaml:"angularAcceleration"`
	Deadzone            float32 `json:"deadzone" yaml:"deadzone"`
	Depth               float32 `json:"depth" yaml:"depth"`
}

// PhysicsConfig contains drag coefficients
type PhysicsConfig struct {
	LinearDrag  float32 `json:"linearDrag" yaml:"linearDrag"`
	AngularDrag float32 `json:"angularDrag" yaml:"angularDrag"`
}

// AsteroidConfig contains asteroid population and shape configuration
type AsteroidConfig struct {
	Count     int     `json:"count" yaml:"count"`
	SizeMin   float32 `json:"sizeMin" yaml:"sizeMin"`
	SizeMax   float32 `json:"sizeMax" yaml:"sizeMax"`
	DepthMin  float32 `json:"depthMin" yaml:"depthMin"`
	DepthMax  float32 `json:"depthMax" yaml:"depthMax"`
	SpawnPush float32 `json:"spawnPush" yaml:"spawnPush"`
	SeedPush  float32 `json:"seedPush" yaml:"seedPush"`
}

// FuelConfig contains fuel can configuration
type FuelConfig struct {
	Interval    float32 `json:"interval" yaml:"interval"` // seconds
	PerCan      float32 `json:"perCan" yaml:"perCan"`
	Depth       float32 `json:"depth" yaml:"depth"`
	SpawnPush   float32 `json:"spawnPush" yaml:"spawnPush"`
	PickupRange float32 `json:"pickupRange" yaml:"pickupRange"`
}

// MotionConfig bounds the random drift given to spawned entities
type MotionConfig struct {
	LinearSpeed  float32 `json:"linearSpeed" yaml:"linearSpeed"`
	AngularSpeed float32 `json:"angularSpeed" yaml:"angularSpeed"`
}

// ScoringConfig contains scoring configuration
type ScoringConfig struct {
	PointsPerSecond float32 `json:"pointsPerSecond" yaml:"pointsPerSecond"`
}

// HostConfig configures the headless runner
type HostConfig struct {
	TickRate       int     `json:"tickRate" yaml:"tickRate"`             // ticks per second
	MaxDelta       float32 `json:"maxDelta" yaml:"maxDelta"`             // seconds, caps a single tick
	ReportInterval float32 `json:"reportInterval" yaml:"reportInterval"` // seconds between diagnostics logs
	Duration       float32 `json:"duration" yaml:"duration"`             // seconds, 0 runs until interrupted
}

// LoadConfig loads a configuration from a file. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*GameConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if isYAML(path) {
		return LoadYAML(file)
	}
	return LoadJSON(file)
}

// LoadJSON decodes a configuration from JSON. Missing fields keep their defaults.
func LoadJSON(r io.Reader) (*GameConfig, error) {
	config := DefaultConfig()
	if err := json.NewDecoder(r).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// LoadYAML decodes a configuration from YAML. Missing fields keep their defaults.
func LoadYAML(r io.Reader) (*GameConfig, error) {
	config := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(config); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// SaveConfig saves a configuration to a file, choosing the format from the
// file extension like LoadConfig.
func SaveConfig(config *GameConfig, path string) error {
	if config == nil {
		return fmt.Errorf("failed to marshal config: nil config")
	}

	var data []byte
	var err error
	if isYAML(path) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(config); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Seed: 0,
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			InitialFuel:         60,
			MaxFuel:             0,
			LateralAcceleration: 50,
			AngularAcceleration: math.Pi / 4,
			Deadzone:            0.1,
			Depth:               100,
		},
		Physics: PhysicsConfig{
			LinearDrag:  0.001,
			AngularDrag: math.Pi / 16,
		},
		Asteroids: AsteroidConfig{
			Count:     100,
			SizeMin:   0.5,
			SizeMax:   3.0,
			DepthMin:  1.0,
			DepthMax:  10.0,
			SpawnPush: 1.5,
			SeedPush:  4.0,
		},
		Fuel: FuelConfig{
			Interval:    5.0,
			PerCan:      10.0,
			Depth:       90.0,
			SpawnPush:   3.0,
			PickupRange: 32.0,
		},
		Motion: MotionConfig{
			LinearSpeed:  100,
			AngularSpeed: math.Pi,
		},
		Scoring: ScoringConfig{
			PointsPerSecond: 2.0,
		},
		Host: HostConfig{
			TickRate:       60,
			MaxDelta:       0.1,
			ReportInterval: 1.0,
			Duration:       0,
		},
	}
}
