package ports

import (
	"context"

	"github.com/bft-labs/cardstats/internal/domain"
)

// ReportRepository persists run reports.
type ReportRepository interface {
	// Load retrieves the last saved report.
	// Returns a nil report and nil error if no report exists.
	Load(ctx context.Context) (*domain.Report, error)

	// Save persists the report atomically.
	Save(ctx context.Context, report *domain.Report) error
}
