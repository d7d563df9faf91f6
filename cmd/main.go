package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"logex/internal/app"
	"logex/internal/app/cli"
	"logex/internal/config"
	"logex/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOutput, closeLog, err := logOutputFor(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	application := createApp(cfg, opts, logOutput)
	application.Run()
}

// loadConfig loads the config, falling back to defaults for init so a broken file can be replaced
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err == nil || opts.Type != cli.CommandInit {
		return cfg, err
	}

	cfg = config.DefaultConfig()
	cfg.Path = opts.ConfigPath

	if cfg.Path == "" {
		cfg.Path = config.DefaultPath()
	}

	return cfg, nil
}

// logOutputFor keeps the explorer's screen clean by sending its log to a file or nowhere
func logOutputFor(cfg *config.Config, opts *cli.Options) (io.Writer, func(), error) {
	if opts.Type != cli.CommandRun {
		return nil, func() {}, nil
	}

	f, err := logger.OpenFile(cfg)
	if err != nil {
		return nil, nil, err
	}

	if f == nil {
		return io.Discard, func() {}, nil
	}

	return f, func() { _ = f.Close() }, nil
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options, logOutput io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts, logger.Output{Writer: logOutput}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
