package app

import (
	"time"

	"github.com/bft-labs/cardstats/internal/ports"
	"github.com/bft-labs/cardstats/pkg/log"
)

// Option configures optional behaviour of an App.
type Option func(*options)

type options struct {
	logger   ports.Logger
	renderer ports.FigureRenderer
	reports  ports.ReportRepository
	clock    func() time.Time
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
		clock:  time.Now,
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l ports.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFigureRenderer enables figure output through r.
func WithFigureRenderer(r ports.FigureRenderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithReportRepository saves every report to repo.
func WithReportRepository(repo ports.ReportRepository) Option {
	return func(o *options) { o.reports = repo }
}

// WithClock overrides the time source used to stamp reports.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}
