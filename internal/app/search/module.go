package search

import (
	"context"

	"go.uber.org/fx"

	"logex/internal/config"
	"logex/internal/config/logger"
)

// Factory connects to the configured backend on demand
type Factory func(ctx context.Context) (Backend, error)

// NewFactory returns a Factory bound to the loaded configuration
func NewFactory(cfg *config.Config, log logger.Logger) Factory {
	return func(ctx context.Context) (Backend, error) {
		return NewOpenSearch(ctx, cfg, log)
	}
}

// Module provides the fx dependency injection options for the search package
var Module = fx.Options(
	fx.Provide(NewFactory),
)
