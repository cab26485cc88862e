// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/cylmag/coords"
	"github.com/katalvlaran/cylmag/magnet"
	"github.com/katalvlaran/cylmag/sweep"
)

// Defaults for HeatMap.
const (
	DefaultColors       = 64
	DefaultOutlineWidth = 1.5 // points
)

var (
	// ErrNilResult is returned by HeatMap for a nil result.
	ErrNilResult = errors.New("render: nil result")
	// ErrNoFiniteData is returned when no sample of the result is finite.
	ErrNoFiniteData = errors.New("render: result has no finite samples")
)

const (
	panicCeiling = "render: WithCeiling(c): c must be finite and >= 0"
	panicColors  = "render: WithColors(n): n must be >= 2"
)

// Option customises HeatMap.
type Option func(*options)

type options struct {
	ceiling float64
	colors  int
	title   string
	outline bool
}

// WithCeiling clips magnitudes above c to c. Zero disables clipping.
// Panics if c is negative or not finite.
func WithCeiling(c float64) Option {
	if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		panic(panicCeiling)
	}

	return func(o *options) { o.ceiling = c }
}

// WithColors sets the number of palette entries.
// Panics if n < 2.
func WithColors(n int) Option {
	if n < 2 {
		panic(panicColors)
	}

	return func(o *options) { o.colors = n }
}

// WithTitle replaces the generated title.
func WithTitle(s string) Option {
	return func(o *options) { o.title = s }
}

// WithoutOutline skips the magnet outline.
func WithoutOutline() Option {
	return func(o *options) { o.outline = false }
}

// clipped presents a Result to plotter.HeatMap with non-finite samples
// replaced by NaN and, when ceiling > 0, values capped at ceiling.
type clipped struct {
	*sweep.Result
	ceiling float64
}

func (g clipped) Z(c, r int) float64 {
	v := g.Result.Z(c, r)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN()
	}
	if g.ceiling > 0 && v > g.ceiling {
		return g.ceiling
	}

	return v
}

// HeatMap builds a plot of |res| for the magnet p.
// Implementation:
//   - Stage 1: wrap res so non-finite samples are NaN and large ones clipped.
//   - Stage 2: heat map with a Heat palette over [min, max] of the clipped data.
//   - Stage 3: magnet outline for XZ and YZ planes.
//   - Stage 4: title and axis labels from the plane.
//
// Returns ErrNilResult, ErrNoFiniteData, or an error from the outline or line
// construction.
func HeatMap(res *sweep.Result, p magnet.Parameters, opts ...Option) (*plot.Plot, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	o := options{colors: DefaultColors, outline: true}
	for _, opt := range opts {
		opt(&o)
	}

	lo, ok := res.Min()
	if !ok {
		return nil, ErrNoFiniteData
	}
	hi, _ := res.Max()
	if o.ceiling > 0 {
		hi = math.Min(hi, o.ceiling)
		lo = math.Min(lo, hi)
	}
	if hi <= lo {
		hi = lo + 1
	}

	hm := plotter.NewHeatMap(clipped{Result: res, ceiling: o.ceiling}, palette.Heat(o.colors, 1))
	hm.Min, hm.Max = lo, hi
	hm.NaN = color.Transparent

	plt := plot.New()
	plt.Add(hm)

	if view, hasView := res.Plane.Kind.View(); hasView && o.outline {
		poly, err := coords.Outline(p, view)
		if err != nil {
			return nil, err
		}
		xys := make(plotter.XYs, len(poly))
		for i, v := range poly {
			xys[i] = plotter.XY{X: v[0], Y: v[1]}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("render: outline: %w", err)
		}
		line.LineStyle.Width = vg.Points(DefaultOutlineWidth)
		line.LineStyle.Color = color.Black
		plt.Add(line)
		plt.Legend.Add("magnet", line)
	}

	u, v := res.Plane.Kind.Labels()
	plt.X.Label.Text = u
	plt.Y.Label.Text = v
	plt.Title.Text = o.title
	if plt.Title.Text == "" {
		plt.Title.Text = fmt.Sprintf("|%s| in the %s plane at %s = %g",
			res.Quantity, res.Plane.Kind, normalAxis(res.Plane.Kind), res.Plane.Offset)
	}

	return plt, nil
}

func normalAxis(k sweep.Kind) string {
	switch k {
	case sweep.YZ:
		return "x"
	case sweep.XY:
		return "z"
	default:
		return "y"
	}
}

// Save writes plt to path; the format follows the extension (png, svg, pdf, ...).
func Save(plt *plot.Plot, path string, width, height vg.Length) error {
	if err := plt.Save(width, height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
