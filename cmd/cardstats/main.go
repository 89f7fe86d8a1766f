package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/cardstats/internal/adapters/fs"
	"github.com/bft-labs/cardstats/internal/app"
	"github.com/bft-labs/cardstats/internal/cliconfig"
	"github.com/bft-labs/cardstats/internal/figures"
	"github.com/bft-labs/cardstats/internal/report"
	"github.com/bft-labs/cardstats/internal/watch"
	"github.com/bft-labs/cardstats/pkg/log"
)

const helpDescription = `
Simulate drawing cards from a standard 52-card deck and compare the sampling
distribution of the mean against descriptive statistics.

Each run:
  - Enumerates every k-card hand for the exact population mean, median and
    standard deviation.
  - Draws one sample of hands and reports its mean, median, standard
    deviation and standard error.
  - Repeats the sample to build the sampling distribution of the mean.
  - Estimates a confidence interval and threshold probabilities.

Configure via $HOME/.cardstats/config.toml, CARDSTATS_* env vars, or flags.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  cardstats --seed 2017
  cardstats --figures --figures-dir ./figs --report ./report.json
  cardstats --config ./cardstats.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cliFlags holds options that only apply on the command line.
type cliFlags struct {
	configPath  string
	frequencies bool
	values      bool
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var flags cliFlags

	logger := cliconfig.Logger(cfg.LogLevel)

	root := &cobra.Command{
		Use:           "cardstats",
		Short:         "Simulate card draws and their sampling distributions",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file first, then env, then flags.
			cfgFile := flags.configPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := loadConfig(&cfg, cfgFile, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger = cliconfig.Logger(cfg.LogLevel)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if !cfg.Watch {
				return runOnce(ctx, cfg, flags, logger)
			}

			if cfgFile == "" {
				return fmt.Errorf("watch requires a config file")
			}
			base := cfg
			w := watch.New(cfgFile, cfg.DebounceDelay, log.NewZerologAdapterWithLogger(logger))
			logger.Info().Str("config", cfgFile).Msg("watching config for changes")
			return w.Run(ctx, func(ctx context.Context) error {
				// Re-read the file on every change; flags still take precedence.
				next := base
				next.Seed = 0
				if changed["seed"] {
					next.Seed = base.Seed
				}
				if err := loadConfig(&next, cfgFile, changed); err != nil {
					return err
				}
				if err := next.Validate(); err != nil {
					return err
				}
				return runOnce(ctx, next, flags, logger)
			})
		},
	}

	root.Flags().StringVar(&flags.configPath, "config", "", "path to config file (default: $HOME/.cardstats/config.toml)")
	root.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	root.Flags().IntVar(&cfg.Draws, "draws", cfg.Draws, "cards per draw")
	root.Flags().IntVar(&cfg.SampleSize, "sample-size", cfg.SampleSize, "draws per sample")
	root.Flags().IntVar(&cfg.Samples, "samples", cfg.Samples, "samples in the sampling distribution of the mean")
	root.Flags().Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "report probabilities of reaching this total")
	root.Flags().Float64Var(&cfg.Confidence, "confidence", cfg.Confidence, "coverage of the reported interval of sample means")

	root.Flags().BoolVar(&cfg.Figures, "figures", cfg.Figures, "write histogram PNGs")
	root.Flags().StringVar(&cfg.FiguresDir, "figures-dir", cfg.FiguresDir, "directory for histogram PNGs")
	root.Flags().IntVar(&cfg.DPI, "dpi", cfg.DPI, "resolution of histogram PNGs")
	root.Flags().StringVar(&cfg.Report, "report", cfg.Report, "write the report as JSON to this path")

	root.Flags().BoolVar(&cfg.SkipPopulation, "skip-population", cfg.SkipPopulation, "skip the exact population enumeration")
	root.Flags().BoolVar(&cfg.SkipSampling, "skip-sampling", cfg.SkipSampling, "skip sampling and estimates")
	root.Flags().BoolVar(&flags.frequencies, "frequencies", false, "print the population frequency table")
	root.Flags().BoolVar(&flags.values, "values", false, "print the individual sample draws")

	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run whenever the config file changes")
	root.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "delay after a config change before re-running")
	if err := root.Flags().MarkHidden("debounce"); err != nil {
		logger.Info().Err(err).Msg("failed to hide debounce flag")
	}
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("cardstats")
		os.Exit(1)
	}
}

// loadConfig layers the config file (if present) and CARDSTATS_* env vars
// onto cfg without overriding explicitly set flags.
func loadConfig(cfg *cliconfig.Config, path string, changed map[string]bool) error {
	if path != "" && cliconfig.FileExists(path) {
		fc, err := cliconfig.LoadFileConfig(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return fmt.Errorf("env config: %w", err)
	}
	return nil
}

func runOnce(ctx context.Context, cfg cliconfig.Config, flags cliFlags, logger zerolog.Logger) error {
	opts := []app.Option{app.WithLogger(log.NewZerologAdapterWithLogger(logger))}
	if cfg.Figures {
		opts = append(opts, app.WithFigureRenderer(figures.NewRenderer(cfg.FiguresDir, cfg.DPI)))
	}
	if cfg.Report != "" {
		opts = append(opts, app.WithReportRepository(fs.NewReportFileRepository(cfg.Report)))
	}

	a := app.New(app.Config{
		Seed:           cfg.Seed,
		Draws:          cfg.Draws,
		SampleSize:     cfg.SampleSize,
		Samples:        cfg.Samples,
		Threshold:      cfg.Threshold,
		Confidence:     cfg.Confidence,
		SkipPopulation: cfg.SkipPopulation,
		SkipSampling:   cfg.SkipSampling,
	}, opts...)

	r, err := a.Run(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return report.WriteText(os.Stdout, r, report.Options{
		Frequencies: flags.frequencies,
		Values:      flags.values,
	})
}
