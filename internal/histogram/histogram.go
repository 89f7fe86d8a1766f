// Package histogram bins observations for the figures and the report.
package histogram

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/bft-labs/cardstats/pkg/describe"
)

// ErrOutOfRange is returned when an observation falls outside the bins.
var ErrOutOfRange = errors.New("histogram: observation out of range")

// Histogram holds bin edges and the number of observations per bin.
// Bin i covers [Edges[i], Edges[i+1]).
type Histogram struct {
	Edges  []float64
	Counts []float64
	N      int
}

// Integer bins xs into one bin per integer in [lo, hi], each centred on its
// integer.
func Integer(xs []float64, lo, hi int) (*Histogram, error) {
	if hi < lo {
		lo, hi = hi, lo
	}
	edges := make([]float64, hi-lo+2)
	for i := range edges {
		edges[i] = float64(lo+i) - 0.5
	}
	return withEdges(xs, edges)
}

// Auto bins xs choosing the narrower of the Sturges and Freedman-Diaconis
// bin widths, falling back to Sturges when the interquartile range is zero.
func Auto(xs []float64) (*Histogram, error) {
	if len(xs) == 0 {
		return nil, describe.ErrEmptySample
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		return withEdges(xs, []float64{lo - 0.5, hi + 0.5})
	}
	n := float64(len(xs))
	width := (hi - lo) / (math.Log2(n) + 1)
	iqr := describe.Percentile(xs, 0.75) - describe.Percentile(xs, 0.25)
	if fd := 2 * iqr * math.Pow(n, -1.0/3.0); fd > 0 && fd < width {
		width = fd
	}
	bins := int(math.Ceil((hi - lo) / width))
	if bins < 1 {
		bins = 1
	}
	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	return withEdges(xs, edges)
}

func withEdges(xs, edges []float64) (*Histogram, error) {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if len(sorted) > 0 {
		if sorted[0] < edges[0] || sorted[len(sorted)-1] > edges[len(edges)-1] {
			return nil, errors.Wrapf(ErrOutOfRange, "[%v, %v] outside [%v, %v]",
				sorted[0], sorted[len(sorted)-1], edges[0], edges[len(edges)-1])
		}
	}

	// The last bin is closed. stat.Histogram wants the final divider strictly
	// above every observation.
	dividers := append([]float64(nil), edges...)
	last := len(dividers) - 1
	dividers[last] = math.Nextafter(dividers[last], math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	return &Histogram{Edges: edges, Counts: counts, N: len(xs)}, nil
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int { return len(h.Counts) }

// Relative returns the fraction of observations in each bin.
func (h *Histogram) Relative() []float64 {
	out := make([]float64, len(h.Counts))
	if h.N == 0 {
		return out
	}
	for i, c := range h.Counts {
		out[i] = c / float64(h.N)
	}
	return out
}

// Density returns the relative frequency of each bin divided by its width,
// so the histogram integrates to one.
func (h *Histogram) Density() []float64 {
	out := h.Relative()
	for i := range out {
		out[i] /= h.Edges[i+1] - h.Edges[i]
	}
	return out
}
