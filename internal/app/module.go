package app

import (
	"go.uber.org/fx"

	"logex/internal/app/cli"
	"logex/internal/app/generator"
	"logex/internal/app/search"
	"logex/internal/app/ui/wire"
	"logex/internal/config/logger"
)

// Module wires the whole application
var Module = fx.Options(
	cli.Module,
	logger.Module,
	search.Module,
	generator.Module,
	wire.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
