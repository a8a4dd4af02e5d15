package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"NextVWAP/internal/config"
	"NextVWAP/internal/logger"
	"NextVWAP/internal/model"
	"NextVWAP/internal/presenter"
)

// Version is set at build time.
var Version = "dev"

type options struct {
	configPath  string
	provider    string
	simulations int
	seed        uint64
	format      string
	logLevel    string
}

// NewRootCmd creates the nextvwap command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "nextvwap [TICKER]",
		Short: "Forecast the next trading day's closing VWAP",
		Long: `nextvwap fetches 60 days of 5-minute bars for a ticker, derives the daily
closing VWAP series and runs a Monte Carlo simulation of the next session's
closing VWAP from the distribution of day-over-day VWAP changes.

Without a TICKER argument the symbol is read from an interactive prompt, or
from the first line of standard input when it is not a terminal.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath(), "Configuration file path (optional, NEXTVWAP_CONFIG)")
	flags.StringVar(&opts.provider, "provider", "", "Data provider: yahoo, financego or alpaca")
	flags.IntVarP(&opts.simulations, "simulations", "n", 0, "Number of Monte Carlo simulations (default from config, 20000)")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed for reproducible runs (0 picks a fresh seed)")
	flags.StringVar(&opts.format, "format", "", "Output format: text or json")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nextvwap %s\n", Version)
		},
	}
}

func run(ctx context.Context, cmd *cobra.Command, opts *options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var ticker string
	if len(args) == 1 {
		if err := ValidateTicker(args[0]); err != nil {
			return err
		}
		ticker = NormalizeTicker(args[0])
	} else {
		if ticker, err = ReadTicker(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	fetcher, err := NewFetcher(cfg)
	if err != nil {
		return err
	}
	pipeline, err := NewPipeline(cfg, fetcher, log)
	if err != nil {
		return err
	}
	log.Debug().Str("provider", fetcher.Name()).Msg("data source selected")

	result, err := pipeline.Run(ctx, ticker, cfg.Forecast.Simulations)
	if err != nil {
		return err
	}

	return present(cmd.OutOrStdout(), cfg, result)
}

// applyFlags lets explicitly set flags win over file and environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) {
	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.DataSource.Provider = opts.provider
	}
	if flags.Changed("simulations") {
		cfg.Forecast.Simulations = opts.simulations
	}
	if flags.Changed("seed") {
		cfg.Forecast.Seed = opts.seed
	}
	if flags.Changed("format") {
		cfg.Display.Format = opts.format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
}

func present(w io.Writer, cfg *config.Config, result *model.Forecast) error {
	p := presenter.New(cfg.Display.Width, cfg.Display.Height)
	if cfg.Display.Format == "json" {
		return p.ShowJSON(w, result)
	}
	return p.Show(w, result)
}
