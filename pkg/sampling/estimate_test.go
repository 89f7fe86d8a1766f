package sampling_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/cardstats/pkg/sampling"
)

func TestEstimate_Interval(t *testing.T) {
	e, err := sampling.NewEstimate(sampling.MeanDistribution{Mean: 19.6, StdDev: 1})
	require.NoError(t, err)

	lo, hi, err := e.Interval(0.90)
	require.NoError(t, err)
	// z(0.05) = -1.6448536...
	assert.InDelta(t, 19.6-1.6448536269514722, lo, 1e-9)
	assert.InDelta(t, 19.6+1.6448536269514722, hi, 1e-9)

	lo, hi, err = e.Interval(0.95)
	require.NoError(t, err)
	assert.InDelta(t, 1.959963984540054, hi-19.6, 1e-9)
	assert.InDelta(t, 19.6-lo, hi-19.6, 1e-9)
}

func TestEstimate_InvalidConfidence(t *testing.T) {
	e, err := sampling.NewEstimate(sampling.MeanDistribution{Mean: 0, StdDev: 1})
	require.NoError(t, err)
	for _, c := range []float64{0, 1, -0.5, 1.5} {
		_, _, err := e.Interval(c)
		assert.True(t, errors.Is(err, sampling.ErrInvalidConfidence), "confidence %v", c)
	}
}

func TestEstimate_ProbAtLeast(t *testing.T) {
	e, err := sampling.NewEstimate(sampling.MeanDistribution{Mean: 20, StdDev: 2})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, e.ProbAtLeast(20), 1e-12)
	// one sigma above the mean
	assert.InDelta(t, 0.15865525393145707, e.ProbAtLeast(22), 1e-9)
}

func TestNewEstimate_Degenerate(t *testing.T) {
	_, err := sampling.NewEstimate(sampling.MeanDistribution{Mean: 5})
	assert.True(t, errors.Is(err, sampling.ErrDegenerate))
}
