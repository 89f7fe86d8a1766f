// Package app runs the card-drawing pipeline: exact population, a single
// sample, the sampling distribution of the mean, and the closing estimates.
package app

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/bft-labs/cardstats/internal/domain"
	"github.com/bft-labs/cardstats/internal/figures"
	"github.com/bft-labs/cardstats/internal/histogram"
	"github.com/bft-labs/cardstats/pkg/deck"
	"github.com/bft-labs/cardstats/pkg/describe"
	"github.com/bft-labs/cardstats/pkg/log"
	"github.com/bft-labs/cardstats/pkg/population"
	"github.com/bft-labs/cardstats/pkg/sampling"
)

// Config holds the parameters of one run.
type Config struct {
	Seed       uint64
	Draws      int
	SampleSize int
	Samples    int
	Threshold  float64
	Confidence float64

	SkipPopulation bool
	SkipSampling   bool
}

// App executes runs. It is not safe for concurrent use.
type App struct {
	cfg  Config
	opts options
}

// New returns an App for cfg.
func New(cfg Config, opts ...Option) *App {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &App{cfg: cfg, opts: o}
}

// Run executes the pipeline once and returns its report.
func (a *App) Run(ctx context.Context) (*domain.Report, error) {
	cfg := a.cfg
	logger := a.opts.logger
	start := time.Now()

	if cfg.SkipPopulation && cfg.SkipSampling {
		return nil, domain.ErrNothingToRun
	}

	report := &domain.Report{
		Seed:        cfg.Seed,
		Draws:       cfg.Draws,
		SampleSize:  cfg.SampleSize,
		Samples:     cfg.Samples,
		GeneratedAt: a.opts.clock().UTC(),
	}

	if err := a.cardValuesFigure(ctx, report); err != nil {
		return nil, err
	}

	var pop *population.Distribution
	if !cfg.SkipPopulation {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		pop, err = population.Enumerate(cfg.Draws)
		if err != nil {
			return nil, errors.Wrap(err, "enumerate population")
		}
		report.Population = &domain.PopulationStats{
			Combinations: pop.Total(),
			Mean:         pop.Mean(),
			Median:       pop.Median(),
			StdDev:       pop.StdDev(),
			Frequencies:  pop.Frequencies(),
		}
		logger.Info("population enumerated",
			log.Int("combinations", pop.Total()),
			log.Float64("mean", pop.Mean()))

		if err := a.sumsFigure(ctx, report, figures.PopulationFile,
			fmt.Sprintf("%d-Card Draw Experiment Histogram", cfg.Draws),
			pop.Values(), figures.Red); err != nil {
			return nil, err
		}
	}

	if !cfg.SkipSampling {
		if err := a.sample(ctx, report, pop); err != nil {
			return nil, err
		}
	}

	if a.opts.reports != nil {
		if err := a.opts.reports.Save(ctx, report); err != nil {
			return nil, errors.Wrap(err, "save report")
		}
	}

	logger.Debug("run complete", log.Duration("took", time.Since(start)))
	return report, nil
}

func (a *App) sample(ctx context.Context, report *domain.Report, pop *population.Distribution) error {
	cfg := a.cfg
	logger := a.opts.logger

	drawer := deck.NewDrawer(rand.NewSource(cfg.Seed))
	sampler := sampling.NewSampler(drawer, cfg.Draws)

	if err := ctx.Err(); err != nil {
		return err
	}
	xs, err := sampler.Sample(cfg.SampleSize)
	if err != nil {
		return errors.Wrap(err, "draw sample")
	}
	sum, err := describe.Describe(xs)
	if err != nil {
		return errors.Wrap(err, "describe sample")
	}
	report.Sample = &domain.SampleStats{
		Values: xs,
		Mean:   sum.Mean,
		Median: sum.Median,
		StdDev: sum.StdDev,
		SEM:    sum.SEM,
	}
	logger.Info("sample drawn", log.Int("size", sum.N), log.Float64("mean", sum.Mean))

	if err := a.sumsFigure(ctx, report, figures.SampleFile,
		fmt.Sprintf("%d-Card Draw Sample Histogram", cfg.Draws),
		xs, figures.Purple); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	md, err := sampler.MeanDistribution(cfg.Samples, cfg.SampleSize)
	if err != nil {
		return errors.Wrap(err, "sampling distribution")
	}
	report.Sampling = &domain.SamplingStats{Means: md.Means, Mean: md.Mean, StdDev: md.StdDev}
	logger.Info("sampling distribution built",
		log.Int("samples", len(md.Means)),
		log.Float64("mean", md.Mean),
		log.Float64("std_dev", md.StdDev))

	if err := a.meansFigure(ctx, report, md.Means); err != nil {
		return err
	}

	est, err := sampling.NewEstimate(md)
	if errors.Is(err, sampling.ErrDegenerate) {
		logger.Warn("sample means have no spread; skipping estimates")
		return nil
	}
	if err != nil {
		return err
	}
	lo, hi, err := est.Interval(cfg.Confidence)
	if err != nil {
		return err
	}
	report.Estimates = &domain.Estimates{
		Confidence:  cfg.Confidence,
		Lower:       lo,
		Upper:       hi,
		Threshold:   cfg.Threshold,
		MeanAtLeast: est.ProbAtLeast(cfg.Threshold),
	}
	if pop != nil {
		p := pop.ProbAtLeast(cfg.Threshold)
		report.Estimates.DrawAtLeast = &p
	}
	return nil
}

func (a *App) cardValuesFigure(ctx context.Context, report *domain.Report) error {
	if a.opts.renderer == nil {
		return nil
	}
	values := deck.CardValues()
	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
	}
	h, err := histogram.Integer(xs, 1, 10)
	if err != nil {
		return err
	}
	return a.render(ctx, report, figures.Figure{
		File:   figures.CardValuesFile,
		Title:  "Card Value Histogram",
		XLabel: "Card Value",
		YLabel: "Relative Frequency",
		Fill:   figures.Green,
		Hist:   h,
		Ticks:  intRange(1, 10),
	})
}

func (a *App) sumsFigure(ctx context.Context, report *domain.Report, file, title string, xs []float64, fill color.Color) error {
	if a.opts.renderer == nil {
		return nil
	}
	lo, hi := deck.MinSum(a.cfg.Draws), deck.MaxSum(a.cfg.Draws)
	h, err := histogram.Integer(xs, lo, hi)
	if err != nil {
		return err
	}
	return a.render(ctx, report, figures.Figure{
		File:     file,
		Title:    title,
		XLabel:   fmt.Sprintf("%d-Card Draw Value", a.cfg.Draws),
		YLabel:   "Relative Frequency",
		Fill:     fill,
		Hist:     h,
		Ticks:    intRange(lo, hi),
		TickSize: 6,
	})
}

func (a *App) meansFigure(ctx context.Context, report *domain.Report, means []float64) error {
	if a.opts.renderer == nil {
		return nil
	}
	h, err := histogram.Auto(means)
	if err != nil {
		return err
	}
	return a.render(ctx, report, figures.Figure{
		File:   figures.SamplingMeansFile,
		Title:  "Sampling Distribution of Sample Means",
		XLabel: "Sample Mean",
		YLabel: "Relative Frequency",
		Fill:   figures.Blue,
		Hist:   h,
	})
}

func (a *App) render(ctx context.Context, report *domain.Report, fig figures.Figure) error {
	path, err := a.opts.renderer.Render(ctx, fig)
	if err != nil {
		return errors.Wrapf(err, "render %s", fig.File)
	}
	report.Figures = append(report.Figures, path)
	a.opts.logger.Debug("figure written", log.String("path", path))
	return nil
}

func intRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}
