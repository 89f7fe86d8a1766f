// Package cardstats simulates drawing cards from a standard deck and compares
// the resulting sampling distributions with descriptive statistics.
//
// Example usage:
//
//	cfg := cardstats.DefaultConfig()
//	cfg.Seed = 2017
//	report, err := cardstats.Run(context.Background(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cardstats.WriteText(os.Stdout, report)
package cardstats

import (
	"context"
	"io"

	"github.com/bft-labs/cardstats/internal/app"
	"github.com/bft-labs/cardstats/internal/domain"
	"github.com/bft-labs/cardstats/internal/report"
)

// Config holds the parameters of one run.
type Config = app.Config

// Report is the outcome of one run.
type Report = domain.Report

// Option configures optional behaviour such as logging and figure output.
type Option = app.Option

// Re-exported options.
var (
	WithLogger           = app.WithLogger
	WithFigureRenderer   = app.WithFigureRenderer
	WithReportRepository = app.WithReportRepository
)

// DefaultConfig returns the classic experiment: 3-card draws, one sample of
// 30 draws, 50 samples for the sampling distribution, a 90% interval and a
// threshold of 20. The seed is left at zero; set it before calling Run.
func DefaultConfig() Config {
	return Config{
		Draws:      3,
		SampleSize: 30,
		Samples:    50,
		Threshold:  20,
		Confidence: 0.90,
	}
}

// Run executes the pipeline once.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	return app.New(cfg, opts...).Run(ctx)
}

// WriteText renders r as plain text.
func WriteText(w io.Writer, r *Report) error {
	return report.WriteText(w, r, report.Options{})
}
