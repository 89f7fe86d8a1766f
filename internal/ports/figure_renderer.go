package ports

import (
	"context"

	"github.com/bft-labs/cardstats/internal/figures"
)

// FigureRenderer writes a histogram image and returns its path.
// *figures.Renderer satisfies this interface.
type FigureRenderer interface {
	Render(ctx context.Context, fig figures.Figure) (string, error)
}
