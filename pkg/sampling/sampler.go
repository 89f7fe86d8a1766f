// Package sampling draws repeated hands from a deck and builds the sampling
// distribution of the mean hand total.
package sampling

import (
	"github.com/pkg/errors"

	"github.com/bft-labs/cardstats/pkg/describe"
)

// ErrInvalidSize is returned when a sample or experiment count is not
// positive.
var ErrInvalidSize = errors.New("sampling: invalid size")

// SumDrawer draws n distinct cards and returns their total.
// *deck.Drawer satisfies this interface.
type SumDrawer interface {
	DrawSum(n int) (int, error)
}

// Sampler repeats a fixed-size draw. Cards are returned to the deck after
// every draw.
type Sampler struct {
	drawer SumDrawer
	draws  int
}

// NewSampler returns a Sampler drawing cards hands of the given size.
func NewSampler(drawer SumDrawer, cards int) *Sampler {
	return &Sampler{drawer: drawer, draws: cards}
}

// Sample returns the totals of size independent draws.
func (s *Sampler) Sample(size int) ([]float64, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "sample size %d", size)
	}
	out := make([]float64, size)
	for i := range out {
		v, err := s.drawer.DrawSum(s.draws)
		if err != nil {
			return nil, errors.Wrapf(err, "draw %d", i)
		}
		out[i] = float64(v)
	}
	return out, nil
}

// MeanDistribution is the empirical sampling distribution of the sample mean.
type MeanDistribution struct {
	Means []float64
	Mean  float64
	// StdDev is the sample standard deviation of Means.
	StdDev float64
}

// MeanDistribution draws samples samples of size draws each and records
// the mean of every sample.
func (s *Sampler) MeanDistribution(samples, size int) (MeanDistribution, error) {
	if samples < 2 {
		return MeanDistribution{}, errors.Wrapf(ErrInvalidSize, "%d samples", samples)
	}
	means := make([]float64, samples)
	for i := range means {
		xs, err := s.Sample(size)
		if err != nil {
			return MeanDistribution{}, errors.Wrapf(err, "sample %d", i)
		}
		means[i] = describe.Mean(xs)
	}
	sd, err := describe.StdDev(means)
	if err != nil {
		return MeanDistribution{}, err
	}
	return MeanDistribution{
		Means:  means,
		Mean:   describe.Mean(means),
		StdDev: sd,
	}, nil
}
