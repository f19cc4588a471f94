//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

func InitializeGame(cfg *config.GameConfig, logger *logging.Logger) (*engine.Game, error) {
	wire.Build(engine.ProvideGame)
	return nil, nil
}

func ProvideLogger() *logging.Logger {
	wire.Build(logging.NewLogger)
	return nil
}
