// cmd/asteroids/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-asteroids/internal/injector"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

func main() {
	logger := injector.ProvideLogger()
	defer logger.Sync()
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	configPath := flag.String("config", "asteroids.yaml", "Path to configuration file (.yaml or .json)")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	duration := flag.Duration("duration", 0, "Stop after this much wall time (overrides config)")
	seed := flag.Uint64("seed", 0, "World seed (overrides config when non-zero)")
	pilotName := flag.String("pilot", "forager", "Autopilot behavior: 'idle', 'forager' or 'cruiser'")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	// Apply environment variable overrides
	if err := config.ApplyEnvOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	// Command line wins over file and environment
	if *seed != 0 {
		gameConfig.Seed = *seed
	}
	if *duration > 0 {
		gameConfig.Host.Duration = float32(duration.Seconds())
	}

	behavior, err := ParseBehavior(*pilotName)
	if err != nil {
		logger.Error(ctx, "Invalid pilot behavior", err,
			"pilot", *pilotName,
		)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, gameConfig, logger, behavior); err != nil {
		logger.Error(ctx, "Simulation failed", err)
		os.Exit(1)
	}
}
