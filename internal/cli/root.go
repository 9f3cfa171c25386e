package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/roach88/ecoquery/internal/config"
	"github.com/roach88/ecoquery/internal/panel"
	"github.com/roach88/ecoquery/internal/query"
	"github.com/roach88/ecoquery/internal/report"
)

// DefaultTopN is the default length of list outputs.
const DefaultTopN = 10

// DefaultDataDir is the directory searched for dataset CSV files.
const DefaultDataDir = "Data"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose           bool
	Format            string // "text" | "json" | "table"
	ConfigPath        string
	DataDir           string
	Year              int
	Top               int
	Order             string
	IncludeAggregates bool
	Decimals          int

	// QueryIDs overrides the query ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	QueryIDs QueryIDGenerator

	yearSet bool
	queryID string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "table"}

// NewRootCommand creates the root command for the ecoquery CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command bound to opts.
// Flag values are written into opts when the command executes.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecoquery",
		Short: "ecoquery - forest change and CO₂ per capita lookups",
		Long: `Query environmental datasets (forest change and CO₂ per capita)
from the command line.

Examples:
  ecoquery deforestation Brazil --year 2020
  ecoquery co2 Canada --year 2021
  ecoquery ranking Brazil --year 2020
  ecoquery ranking --year 2020 --top 10

Tip: add --include-aggregates to include regions like 'World' or 'Africa'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (text|json|table)")
	flags.StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.DataDir, "data-dir", DefaultDataDir, "directory containing the dataset CSV files")
	flags.IntVar(&opts.Year, "year", 0, "year to query (defaults to the most recent available year)")
	flags.IntVar(&opts.Top, "top", DefaultTopN, "number of results to show for list outputs")
	flags.StringVar(&opts.Order, "order", string(query.OrderLoss), "forest ranking order: 'loss' (most negative first) or 'gain' (most positive first)")
	flags.BoolVar(&opts.IncludeAggregates, "include-aggregates", false, "include aggregates/regions (e.g. World, Africa) instead of only countries")
	flags.IntVar(&opts.Decimals, "decimals", report.DefaultDecimals, "decimals shown for non-integral values")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return opts.usageError(c, err)
	})

	// Add subcommands
	cmd.AddCommand(NewDeforestationCommand(opts))
	cmd.AddCommand(NewCO2Command(opts))
	cmd.AddCommand(NewRankingCommand(opts))
	cmd.AddCommand(NewEntitiesCommand(opts))

	return cmd
}

// prepare applies the config file, validates flags, and configures logging.
// It runs before every subcommand.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	flags := cmd.Flags()

	gen := o.QueryIDs
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	o.queryID = gen.Generate()

	if o.ConfigPath != "" {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return o.reportUsage(cmd, ErrCodeConfig, err)
		}
		o.applyConfig(cfg, flags)
	}

	// Validate format flag
	if !isValidFormat(o.Format) {
		return o.usageError(cmd, fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	if o.Top < 0 {
		return o.usageError(cmd, fmt.Errorf("--top must be non-negative, got %d", o.Top))
	}
	if o.Decimals < 0 {
		return o.usageError(cmd, fmt.Errorf("--decimals must be non-negative, got %d", o.Decimals))
	}
	o.yearSet = flags.Changed("year")

	// Configure logging based on verbose flag
	logLevel := slog.LevelWarn
	if o.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler).With("query_id", o.queryID))

	if _, err := query.ParseOrder(o.Order); err != nil {
		return reportError(o.formatter(cmd), err)
	}

	slog.Debug("options resolved",
		"command", cmd.Name(),
		"data_dir", o.DataDir,
		"year", o.yearArg(),
		"top", o.Top,
		"order", o.Order,
		"include_aggregates", o.IncludeAggregates,
		"format", o.Format,
	)
	return nil
}

// applyConfig copies config values into options whose flags were not set
// explicitly.
func (o *RootOptions) applyConfig(cfg *config.Config, flags *pflag.FlagSet) {
	if cfg.DataDir != "" && !flags.Changed("data-dir") {
		o.DataDir = cfg.DataDir
	}
	if cfg.Top != nil && !flags.Changed("top") {
		o.Top = *cfg.Top
	}
	if cfg.Order != "" && !flags.Changed("order") {
		o.Order = cfg.Order
	}
	if cfg.IncludeAggregates != nil && !flags.Changed("include-aggregates") {
		o.IncludeAggregates = *cfg.IncludeAggregates
	}
	if cfg.Decimals != nil && !flags.Changed("decimals") {
		o.Decimals = *cfg.Decimals
	}
	if cfg.Format != "" && !flags.Changed("format") {
		o.Format = cfg.Format
	}
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
		TraceID:   o.queryID,
		Printer:   report.NewPrinter(o.Decimals),
	}
}

// yearArg returns the explicit --year, or nil to use the latest year.
func (o *RootOptions) yearArg() *int {
	if !o.yearSet {
		return nil
	}
	y := o.Year
	return &y
}

// listYear returns the explicit --year or falls back to latest.
func (o *RootOptions) listYear(latest func() (int, error)) (int, error) {
	if o.yearSet {
		return o.Year, nil
	}
	return latest()
}

func (o *RootOptions) onlyCountries() bool {
	return !o.IncludeAggregates
}

func (o *RootOptions) order() query.Order {
	return query.Order(o.Order)
}

// scope describes the country filter in list titles.
func (o *RootOptions) scope() string {
	if o.onlyCountries() {
		return "countries only"
	}
	return "including aggregates"
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// usageError reports an invalid flag or argument and returns an ExitError.
func (o *RootOptions) usageError(cmd *cobra.Command, err error) error {
	return o.reportUsage(cmd, ErrCodeInvalidArgument, err)
}

// reportUsage writes err in the requested output format. An invalid --format
// falls back to text.
func (o *RootOptions) reportUsage(cmd *cobra.Command, code string, err error) error {
	f := o.formatter(cmd)
	if !isValidFormat(f.Format) {
		f.Format = "text"
	}
	_ = f.Error(code, err.Error(), nil)
	return WrapExitError(ExitCommandError, code, panel.NewInvalidArgument("%v", err))
}

// maxOneCountry accepts zero or one COUNTRY argument.
func maxOneCountry(opts *RootOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return opts.usageError(cmd, fmt.Errorf("accepts at most one COUNTRY, received %d (quote names with spaces)", len(args)))
		}
		return nil
	}
}

// countryArg returns the optional COUNTRY argument; "" selects list mode.
func countryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
