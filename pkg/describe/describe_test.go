package describe_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/cardstats/pkg/describe"
)

func TestDescribe(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s, err := describe.Describe(xs)
	require.NoError(t, err)

	assert.Equal(t, 8, s.N)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, 4.5, s.Median, 1e-9)
	// sum of squared deviations is 32
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev, 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0)/math.Sqrt(8), s.SEM, 1e-12)
}

func TestDescribe_DoesNotReorderInput(t *testing.T) {
	xs := []float64{9, 1, 5}
	_, err := describe.Describe(xs)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 1, 5}, xs)
}

func TestDescribe_Errors(t *testing.T) {
	_, err := describe.Describe(nil)
	assert.True(t, errors.Is(err, describe.ErrEmptySample))

	_, err = describe.Describe([]float64{3})
	assert.True(t, errors.Is(err, describe.ErrInsufficientData))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"repeated", []float64{20, 20, 19, 21}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, describe.Median(tt.xs), 1e-9)
		})
	}
	assert.True(t, math.IsNaN(describe.Median(nil)))
}

func TestPercentile(t *testing.T) {
	xs := []float64{20, 2, 18, 4, 7, 11, 15, 17, 18, 19, 100}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 2},
		{0.25, 9},
		{0.5, 17},
		{0.75, 18.5},
		{1, 100},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, describe.Percentile(xs, tt.p), 1e-12, "p=%v", tt.p)
	}
	assert.Equal(t, 20.0, xs[0])
	assert.True(t, math.IsNaN(describe.Percentile(nil, 0.5)))
}

func TestPopulationStdDev(t *testing.T) {
	sd, err := describe.PopulationStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sd, 1e-12)

	sd, err = describe.PopulationStdDev([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sd)

	_, err = describe.PopulationStdDev(nil)
	assert.True(t, errors.Is(err, describe.ErrEmptySample))
}

func TestStdDev(t *testing.T) {
	sd, err := describe.StdDev([]float64{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, sd, 1e-12)

	_, err = describe.StdDev([]float64{1})
	assert.True(t, errors.Is(err, describe.ErrInsufficientData))
}
