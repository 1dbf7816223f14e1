package analysis

import (
	"errors"
	"io"

	"randviz/internal/chart"
)

// WritePNG renders the measured errors and the CLT reference as a log-log
// chart and writes it as a PNG image.
func WritePNG(w io.Writer, results []Result, ref []float64) error {
	if len(results) == 0 {
		return errors.New("analysis: no results to plot")
	}

	c := chart.NewCanvas(800, 600)
	c.Fill(chart.ColorBackground)
	region := chart.Columns(c, 1, 8)[0]
	p := chart.NewPlot(c, region)

	ymin, ymax := results[0].Error, results[0].Error
	for _, r := range results {
		if r.Error > 0 && r.Error < ymin {
			ymin = r.Error
		}
		if r.Error > ymax {
			ymax = r.Error
		}
	}
	for _, v := range ref {
		if v > 0 && v < ymin {
			ymin = v
		}
		if v > ymax {
			ymax = v
		}
	}
	if ymin <= 0 {
		ymin = 1e-9
	}
	p.SetXLim(float64(results[0].N), float64(results[len(results)-1].N))
	p.SetYLim(ymin/2, ymax*2)
	p.SetLogLog()

	p.Grid(chart.ColorGrid)
	p.Frame(chart.ColorFrame)
	p.Ticks(chart.ColorText)

	xs := make([]float64, len(results))
	for i, r := range results {
		xs[i] = float64(r.N)
	}
	if len(ref) == len(results) {
		p.PolyLine(xs, ref, chart.ColorRed)
	}
	for _, r := range results {
		if r.Error > 0 {
			p.Dot(float64(r.N), r.Error, 2, chart.ColorBlue)
		}
	}

	p.Legend(0, "monte carlo error", chart.ColorBlue, chart.ColorText)
	p.Legend(1, "1/sqrt(N) reference", chart.ColorRed, chart.ColorText)
	p.Title("Monte Carlo pi error vs sample size", chart.ColorText)
	p.XLabel("samples (N)", chart.ColorText)

	return c.EncodePNG(w)
}
