// Package describe computes descriptive statistics of numeric samples.
package describe

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptySample is returned when a statistic is requested of no data.
	ErrEmptySample = errors.New("describe: empty sample")

	// ErrInsufficientData is returned when a statistic with one degree of
	// freedom removed is requested of a single observation.
	ErrInsufficientData = errors.New("describe: at least two observations required")
)

// Summary holds the central tendency and variability of a sample.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	// StdDev is the sample standard deviation (N-1 denominator).
	StdDev float64
	// SEM is the standard error of the mean, StdDev/sqrt(N).
	SEM float64
}

// Describe summarises xs. xs is not modified.
func Describe(xs []float64) (Summary, error) {
	switch len(xs) {
	case 0:
		return Summary{}, ErrEmptySample
	case 1:
		return Summary{}, errors.Wrap(ErrInsufficientData, "describe")
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Summary{
		N:      len(xs),
		Mean:   mean,
		Median: Median(xs),
		StdDev: std,
		SEM:    stat.StdErr(std, float64(len(xs))),
	}, nil
}

// Mean returns the arithmetic mean of xs, or NaN if xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// Median returns the middle value of xs, averaging the two middle values
// when len(xs) is even. It returns NaN if xs is empty. xs is not modified.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	s := stats.Sample{Xs: xs}
	return s.Quantile(0.5)
}

// Percentile returns the p-th quantile of xs, p in [0,1], interpolating
// linearly between the closest ranks (Hyndman and Fan type 7, numpy's
// default). It returns NaN if xs is empty. xs is not modified.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	p = math.Max(0, math.Min(1, p))
	h := p * float64(len(sorted)-1)
	lo := int(h)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// StdDev returns the sample standard deviation of xs.
func StdDev(xs []float64) (float64, error) {
	if len(xs) < 2 {
		if len(xs) == 0 {
			return 0, ErrEmptySample
		}
		return 0, ErrInsufficientData
	}
	return stat.StdDev(xs, nil), nil
}

// PopulationStdDev returns the standard deviation of xs treated as a whole
// population (N denominator).
func PopulationStdDev(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	if len(xs) == 1 {
		return 0, nil
	}
	_, v := stat.PopMeanVariance(xs, nil)
	return math.Sqrt(v), nil
}
