package figures

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/cardstats/internal/histogram"
)

func TestRenderer_WritesPNG(t *testing.T) {
	h, err := histogram.Integer([]float64{1, 2, 2, 3, 10, 10}, 1, 10)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "figs")
	r := NewRenderer(dir, 50)
	path, err := r.Render(context.Background(), Figure{
		File:   CardValuesFile,
		Title:  "Card Value Histogram",
		XLabel: "Card Value",
		YLabel: "Relative Frequency",
		Fill:   Green,
		Hist:   h,
		Ticks:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, CardValuesFile), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	// 6in x 4.5in at 50 dpi
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 225, cfg.Height)
}

func TestRenderer_NoData(t *testing.T) {
	r := NewRenderer(t.TempDir(), 0)
	_, err := r.Render(context.Background(), Figure{File: "empty.png"})
	assert.Error(t, err)
}

func TestRenderer_Canceled(t *testing.T) {
	h, err := histogram.Integer([]float64{1}, 1, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewRenderer(t.TempDir(), 0).Render(ctx, Figure{File: "x.png", Hist: h})
	assert.ErrorIs(t, err, context.Canceled)
}
