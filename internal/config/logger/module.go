package logger

import (
	"io"

	"go.uber.org/fx"

	"logex/internal/config"
)

// Output is the destination of the application log; a nil Writer means stderr
type Output struct {
	io.Writer
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, out Output) Logger {
		return NewLoggerWithOutput(cfg, out.Writer)
	}),
)
