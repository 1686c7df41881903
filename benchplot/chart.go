// Copyright 2026 The irqsuspend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders aggregated throughput tables as bar
// charts.
package benchplot

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/alirezasalamat/irqsuspend/benchagg"
)

// Options configure chart rendering.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	// DPI is the raster resolution of the written PNG.
	// Zero means DefaultOptions.DPI.
	DPI int
}

// DefaultOptions are the options used by the plotqps command.
var DefaultOptions = Options{
	Title:  "Average Throughput by Scenario",
	XLabel: "Scenario",
	YLabel: "Throughput (QPS)",
	DPI:    300,
}

const (
	chartWidth  = 12 * vg.Inch
	chartHeight = 6 * vg.Inch
)

var (
	barWidth = vg.Points(30)
	capWidth = vg.Points(6)
)

// WritePNG renders t as a bar chart and writes it to path. There is
// one bar per scenario, in table order; bar height is the mean QPS
// and the error bar spans one standard deviation, omitted for
// single-sample groups. Each bar is annotated with its rounded mean
// and sample count. An empty table produces a chart with axes and no
// bars.
func WritePNG(t *benchagg.Table, path string, opts Options) error {
	pl, err := build(t, opts)
	if err != nil {
		return err
	}

	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultOptions.DPI
	}
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func build(t *benchagg.Table, opts Options) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = opts.Title
	pl.Title.TextStyle.Font.Size = vg.Points(16)
	pl.X.Label.Text = opts.XLabel
	pl.Y.Label.Text = opts.YLabel
	pl.X.Label.TextStyle.Font.Size = vg.Points(13)
	pl.Y.Label.TextStyle.Font.Size = vg.Points(13)
	pl.BackgroundColor = color.NRGBA{R: 0xf9, G: 0xf9, B: 0xf9, A: 0xff}
	pl.Y.Tick.Marker = commaTicks{}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{Y: 0xb0}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	pl.Add(grid)

	if len(t.Rows) == 0 {
		// Nothing to place on the axes; pin the ranges so the
		// empty chart still renders.
		pl.X.Min, pl.X.Max = -0.5, 0.5
		pl.Y.Min, pl.Y.Max = 0, 1
		pl.X.Tick.Marker = plot.ConstantTicks(nil)
		return pl, nil
	}

	labels := make([]string, len(t.Rows))
	means := make(plotter.Values, len(t.Rows))
	for i, row := range t.Rows {
		labels[i] = row.Scenario
		means[i] = row.Mean
	}

	bars, err := plotter.NewBarChart(means, barWidth)
	if err != nil {
		return nil, err
	}
	bars.Color = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xcc}
	bars.LineStyle.Color = color.Black
	bars.LineStyle.Width = vg.Points(1.2)
	pl.Add(bars)

	eb, err := errorBars(t)
	if err != nil {
		return nil, err
	}
	if eb != nil {
		pl.Add(eb)
	}

	ann, err := annotations(t)
	if err != nil {
		return nil, err
	}
	pl.Add(ann)

	pl.NominalX(labels...)
	pl.X.Tick.Label.Rotation = -math.Pi / 4
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft

	// Bars grow from zero, and the annotations need headroom above
	// the tallest error bar.
	pl.Y.Min = 0
	pl.Y.Max *= 1.2
	return pl, nil
}

// errorBars builds the one-deviation error bars. Rows with an
// undefined deviation get no error bar. Returns nil if no row has a
// defined deviation.
func errorBars(t *benchagg.Table) (*plotter.YErrorBars, error) {
	var xys plotter.XYs
	var errs plotter.YErrors
	for i, row := range t.Rows {
		if math.IsNaN(row.Std) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i), Y: row.Mean})
		errs = append(errs, struct{ Low, High float64 }{row.Std, row.Std})
	}
	if len(xys) == 0 {
		return nil, nil
	}
	eb, err := plotter.NewYErrorBars(struct {
		plotter.XYs
		plotter.YErrors
	}{xys, errs})
	if err != nil {
		return nil, err
	}
	eb.LineStyle.Width = vg.Points(1.2)
	eb.CapWidth = capWidth
	return eb, nil
}

// annotations builds the per-bar labels: the comma-grouped rounded
// mean over the sample count, sitting above the bar or its error bar.
func annotations(t *benchagg.Table) (*plotter.Labels, error) {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(t.Rows)),
		Labels: make([]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		top := row.Mean
		if !math.IsNaN(row.Std) {
			top += row.Std
		}
		xyl.XYs[i] = plotter.XY{X: float64(i), Y: top}
		xyl.Labels[i] = fmt.Sprintf("%s\n(n=%d)",
			humanize.Comma(int64(math.Round(row.Mean))), row.Count)
	}
	lb, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range lb.TextStyle {
		lb.TextStyle[i].XAlign = draw.XCenter
		lb.TextStyle[i].YAlign = draw.YBottom
		lb.TextStyle[i].Font.Size = vg.Points(9)
	}
	return lb, nil
}

// commaTicks lays out ticks like plot.DefaultTicks but formats the
// labels as comma-grouped integers.
type commaTicks struct{}

func (commaTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, tk := range ticks {
		if tk.Label == "" {
			// Minor tick.
			continue
		}
		ticks[i].Label = humanize.Comma(int64(math.Round(tk.Value)))
	}
	return ticks
}
