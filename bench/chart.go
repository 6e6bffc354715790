// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart geometry defaults, used when SaveChart gets non-positive sizes.
const (
	DefaultChartWidth  = 8 * vg.Inch
	DefaultChartHeight = 5 * vg.Inch

	barWidth = 12 * vg.Millimeter
)

// Chart builds a grouped bar chart: one group per matrix size, one bar per
// operation, bar height = speedup (dense time / sparse time).
//
// Errors:
//   - ErrEmptyReport when the report holds no sizes.
//   - Any error from plotter.NewBarChart.
func (r *Report) Chart() (*plot.Plot, error) {
	if r == nil || len(r.Results) == 0 {
		return nil, ErrEmptyReport
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sparse speedup (density %.2f, %s kernels)", r.Config.Density, r.Config.Kernel)
	p.Y.Label.Text = "Speedup (dense / sparse)"
	p.X.Label.Text = "Matrix size"
	p.Legend.Top = true

	names := make([]string, len(r.Results))
	for i, res := range r.Results {
		names[i] = fmt.Sprintf("%dx%d", res.Size, res.Size)
	}

	n := len(Operations)
	for k, op := range Operations {
		vals := make(plotter.Values, len(r.Results))
		for i, res := range r.Results {
			vals[i] = res.Timings[k].Speedup()
		}
		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return nil, fmt.Errorf("bench: %s bars: %w", op, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(k)
		// Center the group of n bars on each tick.
		bars.Offset = (vg.Length(k) - vg.Length(n-1)/2) * barWidth
		p.Add(bars)
		p.Legend.Add(op.String(), bars)
	}
	p.NominalX(names...)

	return p, nil
}

// SaveChart renders Chart to path. The format follows the file extension
// (.png, .svg, .pdf, ...). Non-positive width or height fall back to
// DefaultChartWidth / DefaultChartHeight.
func (r *Report) SaveChart(path string, width, height vg.Length) error {
	p, err := r.Chart()
	if err != nil {
		return err
	}
	if width <= 0 {
		width = DefaultChartWidth
	}
	if height <= 0 {
		height = DefaultChartHeight
	}
	if err = p.Save(width, height, path); err != nil {
		return fmt.Errorf("bench: save chart %s: %w", path, err)
	}

	return nil
}
