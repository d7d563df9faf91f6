//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/fx"

	"logex/internal/app/errors"
	"logex/internal/app/generator"
	"logex/internal/app/logs"
	"logex/internal/app/query"
	"logex/internal/app/report"
	"logex/internal/app/search"
	"logex/internal/app/ui/wire"
	"logex/internal/config"
	"logex/internal/config/logger"
)

const (
	exitOK    = 0
	exitError = 1
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// Params contains the dependencies of the CLI
type Params struct {
	fx.In

	Options   *Options
	Config    *config.Config
	Factory   search.Factory
	UI        wire.UI
	Generator generator.Generator
	Reporter  report.Reporter
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	opts      *Options
	cfg       *config.Config
	factory   search.Factory
	ui        wire.UI
	generator generator.Generator
	reporter  report.Reporter
	out       io.Writer
	errOut    io.Writer
	log       logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(p Params) CLI {
	return &cli{
		opts:      p.Options,
		cfg:       p.Config,
		factory:   p.Factory,
		ui:        p.UI,
		generator: p.Generator,
		reporter:  p.Reporter,
		out:       os.Stdout,
		errOut:    os.Stderr,
		log:       p.Logger.WithComponent("CLI"),
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer c.reporter.Flush()

	var err error

	switch c.opts.Type {
	case CommandRun:
		err = c.handleRun(ctx)
	case CommandQuery:
		err = c.handleQuery(ctx)
	case CommandFacets:
		err = c.handleFacets(ctx)
	case CommandInit:
		err = c.handleInit()
	case CommandVersion:
		c.handleVersion()
	case CommandHelp:
		c.handleHelp()
	default:
		err = errors.ErrUnknownCommand
	}

	if err != nil {
		c.log.Error().Err(err).Msg("Command failed")
		fmt.Fprintf(c.errOut, "%s %v\n", errorPrefix.Render("Error:"), err)

		return exitError, err
	}

	return exitOK, nil
}

// handleRun opens the log explorer
func (c *cli) handleRun(ctx context.Context) error {
	backend, err := c.factory(ctx)
	if err != nil {
		return err
	}

	program, err := c.ui(ctx, backend)
	if err != nil {
		return err
	}

	c.log.Debug().Msg("Starting explorer")

	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// handleQuery prints a single page of results
func (c *cli) handleQuery(ctx context.Context) error {
	filters := c.queryFilters()

	params, err := query.Build(filters, c.opts.Query.Page)
	if err != nil {
		return err
	}

	backend, err := c.factory(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Backend.Timeout)
	defer cancel()

	result, err := backend.Search(ctx, params)
	if err != nil {
		c.reporter.Capture(err, map[string]string{"operation": "query", "environment": filters.Environment})
		return err
	}

	return logs.NewFormatter(c.out, c.output()).WritePage(logs.Page{
		Number:     max(c.opts.Query.Page, 1),
		TotalPages: query.TotalPages(result.TotalHits, params.Size),
		TotalHits:  result.TotalHits,
		Records:    result.Records,
	})
}

// queryFilters merges the query flags with the configured defaults
func (c *cli) queryFilters() query.Filters {
	q := c.opts.Query
	d := c.cfg.Defaults

	mode := d.SearchMode
	if q.Exact {
		mode = query.ModeExact
	}

	return query.Filters{
		Environment:  orDefault(q.Environment, d.Environment),
		Application:  orDefault(q.Application, query.All),
		Severity:     orDefault(q.Severity, query.All),
		TimeRange:    orDefault(q.Since, d.TimeRange),
		PageSize:     orDefault(q.Size, d.PageSize),
		SearchText:   q.Search,
		SearchMode:   mode,
		SearchFields: orDefault(q.Fields, query.FieldsMessage),
	}
}

// handleFacets prints the filter candidates
func (c *cli) handleFacets(ctx context.Context) error {
	backend, err := c.factory(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Backend.Timeout)
	defer cancel()

	facets, err := backend.ListFacets(ctx)
	if err != nil {
		c.reporter.Capture(err, map[string]string{"operation": "facets"})
		return err
	}

	return logs.NewFormatter(c.out, c.output()).WriteFacets(facets)
}

// handleInit writes a config file from the template
func (c *cli) handleInit() error {
	o := c.opts.Init

	path := c.opts.ConfigPath
	if path == "" {
		path = c.cfg.Path
	}

	err := c.generator.Generate(generator.Options{
		Path:        path,
		Endpoint:    o.Endpoint,
		Region:      o.Region,
		Environment: o.Environment,
		Sign:        !o.NoSign,
	}, o.Force, o.DryRun)
	if err != nil {
		return err
	}

	if !o.DryRun {
		fmt.Fprintf(c.out, "%s %s\n", successPrefix.Render("Created"), path)
	}

	return nil
}

// handleVersion prints version information
func (c *cli) handleVersion() {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())
}

// handleHelp prints the title and usage
func (c *cli) handleHelp() {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprintln(c.out, RenderTitle())
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, c.opts.Usage)
}

// output returns the requested output format, defaulting to the log format
func (c *cli) output() string {
	if c.opts.Output != "" {
		return c.opts.Output
	}

	return c.cfg.Logging.Format
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
