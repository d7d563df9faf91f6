package cli

import (
	"github.com/spf13/cobra"

	"logex/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandQuery
	CommandFacets
	CommandInit
	CommandVersion
	CommandHelp
)

// QueryOptions holds the filters of a no-ui query. Empty values fall back to the config defaults.
type QueryOptions struct {
	Environment string
	Application string
	Severity    string
	Since       string
	Search      string
	Exact       bool
	Fields      string
	Page        int
	Size        string
}

// InitOptions holds the values for a generated config file
type InitOptions struct {
	Endpoint    string
	Region      string
	Environment string
	NoSign      bool
	Force       bool
	DryRun      bool
}

// Options contains the parsed command-line arguments
type Options struct {
	Type       CommandType
	ConfigPath string
	Output     string
	Query      QueryOptions
	Init       InitOptions
	Usage      string
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:  CommandRun,
		Query: QueryOptions{Page: 1},
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRunCommand(result),
		buildQueryCommand(result),
		buildFacetsCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: config.AppDescription,
		Long: `logex is a terminal explorer for application logs stored in OpenSearch.
Pick an environment, narrow by application, severity and time, search
the messages and page through the results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().StringVarP(&result.ConfigPath, "config", "c", "", "Config file (default "+config.DefaultPath()+")")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
		result.Usage = cmd.UsageString()
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Open the log explorer (default)",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}
}

// buildQueryCommand creates the query subcommand
func buildQueryCommand(result *Options) *cobra.Command {
	q := &result.Query

	cmd := &cobra.Command{
		Use:     "query [search text]",
		Aliases: []string{"q"},
		Short:   "Print one page of logs without the UI",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandQuery
			if len(args) > 0 && q.Search == "" {
				q.Search = args[0]
			}
		},
	}

	cmd.Flags().StringVarP(&q.Environment, "env", "e", "", "Environment (default from config)")
	cmd.Flags().StringVarP(&q.Application, "app", "a", "", "Application, omitted means all")
	cmd.Flags().StringVarP(&q.Severity, "severity", "s", "", "Severity, omitted means all")
	cmd.Flags().StringVarP(&q.Since, "since", "t", "", "Time range token: 1m 5m 15m 30m 1h 3h 6h 12h 24h 3d 7d")
	cmd.Flags().StringVar(&q.Search, "search", "", "Free text search")
	cmd.Flags().BoolVar(&q.Exact, "exact", false, "Match the search text as a phrase")
	cmd.Flags().StringVar(&q.Fields, "fields", "", "Search fields: message, \"message + stacktrace\", logger")
	cmd.Flags().IntVarP(&q.Page, "page", "p", 1, "Page number, starting at 1")
	cmd.Flags().StringVarP(&q.Size, "size", "n", "", "Page size (default from config)")
	cmd.Flags().StringVarP(&result.Output, "output", "o", "", "Output format: console or json")

	return cmd
}

// buildFacetsCommand creates the facets subcommand
func buildFacetsCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "facets",
		Aliases: []string{"f"},
		Short:   "List environments, applications and severities",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandFacets
		},
	}

	cmd.Flags().StringVarP(&result.Output, "output", "o", "", "Output format: console or json")

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	o := &result.Init

	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate a config file",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().StringVar(&o.Endpoint, "endpoint", "", "OpenSearch endpoint URL")
	cmd.Flags().StringVar(&o.Region, "region", config.DefaultRegion, "AWS region used for request signing")
	cmd.Flags().StringVar(&o.Environment, "env", "", "Environment preselected at startup")
	cmd.Flags().BoolVar(&o.NoSign, "no-sign", false, "Do not sign requests with AWS SigV4")
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false, "Print the config instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
