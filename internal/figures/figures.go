// Package figures renders relative-frequency histograms to PNG files.
package figures

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/bft-labs/cardstats/internal/histogram"
)

// File names of the figures produced by a run.
const (
	CardValuesFile    = "card_values_hist.png"
	PopulationFile    = "population_distribution.png"
	SampleFile        = "sample_distribution.png"
	SamplingMeansFile = "sampling_dist_sample_means.png"
)

const (
	defaultDPI          = 300
	defaultWidthInches  = 6
	defaultHeightInches = 4.5
)

// Bar colours.
var (
	Green  = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	Red    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	Purple = color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff}
	Blue   = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
)

// Figure describes one histogram image.
type Figure struct {
	File   string
	Title  string
	XLabel string
	YLabel string
	Fill   color.Color
	Hist   *histogram.Histogram

	// Ticks, when set, places one labelled x tick per integer.
	Ticks []int
	// TickSize overrides the x tick label font size.
	TickSize vg.Length
}

// Renderer writes figures into a directory.
type Renderer struct {
	dir    string
	dpi    int
	width  vg.Length
	height vg.Length
}

// NewRenderer returns a Renderer writing into dir at the given resolution.
// A non-positive dpi selects 300.
func NewRenderer(dir string, dpi int) *Renderer {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	return &Renderer{
		dir:    dir,
		dpi:    dpi,
		width:  defaultWidthInches * vg.Inch,
		height: defaultHeightInches * vg.Inch,
	}
}

// Render draws fig and writes it to the renderer's directory, returning the
// path of the written file.
func (r *Renderer) Render(ctx context.Context, fig Figure) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if fig.Hist == nil || fig.Hist.Bins() == 0 {
		return "", errors.Errorf("figure %s: no data", fig.File)
	}

	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.Add(bars(fig))

	if len(fig.Ticks) > 0 {
		ticks := make([]plot.Tick, len(fig.Ticks))
		for i, v := range fig.Ticks {
			ticks[i] = plot.Tick{Value: float64(v), Label: strconv.Itoa(v)}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
	}
	if fig.TickSize > 0 {
		p.X.Tick.Label.Font.Size = fig.TickSize
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create figures dir")
	}
	path := filepath.Join(r.dir, fig.File)

	c := vgimg.NewWith(vgimg.UseWH(r.width, r.height), vgimg.UseDPI(r.dpi))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", path)
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "encode %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "close %s", path)
	}
	return path, nil
}

// bars converts a histogram into density-scaled plotter bins.
func bars(fig Figure) *plotter.Histogram {
	h := fig.Hist
	dens := h.Density()
	bins := make([]plotter.HistogramBin, h.Bins())
	for i := range bins {
		bins[i] = plotter.HistogramBin{Min: h.Edges[i], Max: h.Edges[i+1], Weight: dens[i]}
	}

	fill := fig.Fill
	if fill == nil {
		fill = Blue
	}
	out := &plotter.Histogram{
		Bins:      bins,
		Width:     h.Edges[1] - h.Edges[0],
		FillColor: fill,
		LineStyle: plotter.DefaultLineStyle,
	}
	out.LineStyle.Color = color.Black
	out.LineStyle.Width = vg.Points(0.5)
	return out
}
