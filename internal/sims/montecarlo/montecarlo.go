// Package montecarlo animates the classic Monte Carlo estimation of π:
// uniform points in the unit square, with the running estimate
// 4·inside/total converging toward π as points are revealed.
package montecarlo

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"randviz/internal/chart"
	"randviz/internal/core"
	"randviz/internal/stats"
)

// Config holds parameters for the Monte Carlo π simulation.
type Config struct {
	Limit    int // total number of points sampled
	Interval int // points revealed per tick
	Width    int
	Height   int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Limit: 25000, Interval: 1000, Width: 960, Height: 480}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["limit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Limit = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// MonteCarlo reveals pre-sampled points batch by batch and tracks the
// progressive π estimate.
type MonteCarlo struct {
	cfg Config

	xs, ys []float64
	inside []bool
	est    []float64
	ns     []float64

	shown       int
	insideShown int

	xview float64
	yview stats.Window
}

// New creates a simulation with the given configuration.
func New(cfg Config) *MonteCarlo {
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Interval < 1 {
		cfg.Interval = 1
	}
	if cfg.Interval > cfg.Limit {
		cfg.Interval = cfg.Limit
	}
	return &MonteCarlo{cfg: cfg}
}

// Name returns the simulation identifier.
func (m *MonteCarlo) Name() string { return "montecarlo" }

// Size returns the chart surface dimensions.
func (m *MonteCarlo) Size() core.Size { return core.Size{W: m.cfg.Width, H: m.cfg.Height} }

// Reset samples all points and progressive estimates up front so the reveal
// is fully deterministic for the seed.
func (m *MonteCarlo) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	n := m.cfg.Limit
	m.xs = make([]float64, n)
	m.ys = make([]float64, n)
	stats.UniformPoints(rng, m.xs, m.ys)
	m.inside = stats.Inside(m.xs, m.ys)
	m.est = stats.PiEstimates(m.inside)
	m.ns = make([]float64, n)
	if n > 1 {
		floats.Span(m.ns, 1, float64(n))
	} else {
		m.ns[0] = 1
	}
	m.shown = 0
	m.insideShown = 0
	m.xview = float64(m.cfg.Interval)
	m.yview = stats.Window{Lo: 2, Hi: 4}
}

// Step reveals the next batch of points and eases the estimate panel's view
// window toward the recent estimates.
func (m *MonteCarlo) Step() {
	if m.shown >= m.cfg.Limit {
		return
	}
	next := m.shown + m.cfg.Interval
	if next > m.cfg.Limit {
		next = m.cfg.Limit
	}
	for i := m.shown; i < next; i++ {
		if m.inside[i] {
			m.insideShown++
		}
	}
	m.shown = next

	if float64(m.shown) > m.xview-float64(m.cfg.Interval) {
		m.xview = float64(m.shown + m.cfg.Interval)
	}
	lo := m.shown - m.cfg.Interval
	if lo < 0 {
		lo = 0
	}
	recent := m.est[lo:m.shown]
	m.yview.Approach(floats.Min(recent)-0.05, floats.Max(recent)+0.05, 0.2)
}

// Done reports whether every point has been revealed.
func (m *MonteCarlo) Done() bool { return m.shown >= m.cfg.Limit }

// Shown returns the number of points revealed so far.
func (m *MonteCarlo) Shown() int { return m.shown }

// InsideShown returns how many revealed points fell inside the circle.
func (m *MonteCarlo) InsideShown() int { return m.insideShown }

// Estimate returns the current running estimate of π, or 0 before the first
// batch.
func (m *MonteCarlo) Estimate() float64 {
	if m.shown == 0 {
		return 0
	}
	return m.est[m.shown-1]
}

// Status returns a one-line progress readout.
func (m *MonteCarlo) Status() string {
	if m.shown == 0 {
		return fmt.Sprintf("0/%d points", m.cfg.Limit)
	}
	return fmt.Sprintf("pi ~ %.6f | error %.4f%% | %d/%d points",
		m.Estimate(), stats.PercentError(m.Estimate()), m.shown, m.cfg.Limit)
}

// Parameters lists the tunables the factory accepts.
func (m *MonteCarlo) Parameters() []core.Parameter {
	d := DefaultConfig()
	return []core.Parameter{
		{Key: "limit", Type: core.ParamTypeInt, Default: strconv.Itoa(d.Limit), Description: "total number of points to sample"},
		{Key: "interval", Type: core.ParamTypeInt, Default: strconv.Itoa(d.Interval), Description: "points revealed per tick"},
		{Key: "w", Type: core.ParamTypeInt, Default: strconv.Itoa(d.Width), Description: "chart width in pixels"},
		{Key: "h", Type: core.ParamTypeInt, Default: strconv.Itoa(d.Height), Description: "chart height in pixels"},
	}
}

// Render draws the point cloud on the left and the estimate trace on the
// right.
func (m *MonteCarlo) Render(c *chart.Canvas) {
	c.Fill(chart.ColorBackground)
	cols := chart.Columns(c, 2, 8)

	left := chart.NewPlot(c, squared(cols[0]))
	left.SetXLim(0, 1)
	left.SetYLim(0, 1)
	left.Frame(chart.ColorFrame)
	left.Ticks(chart.ColorText)
	left.Title(fmt.Sprintf("Dots in circle: %d / %d", m.insideShown, m.shown), chart.ColorText)
	for i := 0; i < m.shown; i++ {
		col := chart.ColorRed
		if m.inside[i] {
			col = chart.ColorBlue
		}
		left.Dot(m.xs[i], m.ys[i], 0, col)
	}
	drawQuarterArc(c, left)

	right := chart.NewPlot(c, cols[1])
	right.SetXLim(0, m.xview)
	right.SetYLim(m.yview.Lo, m.yview.Hi)
	right.Grid(chart.ColorGrid)
	right.Frame(chart.ColorFrame)
	right.Ticks(chart.ColorText)
	right.HLine(math.Pi, chart.ColorRed)
	right.PolyLine(m.ns[:m.shown], m.est[:m.shown], chart.ColorBlue)
	right.Legend(0, "estimate", chart.ColorBlue, chart.ColorText)
	right.Legend(1, "true pi", chart.ColorRed, chart.ColorText)
	if m.shown > 0 {
		right.Title(fmt.Sprintf("pi ~ %.6f | error %.4f%%",
			m.Estimate(), stats.PercentError(m.Estimate())), chart.ColorText)
	} else {
		right.Title("Approximating pi", chart.ColorText)
	}
	right.XLabel("number of points (N)", chart.ColorText)
}

// drawQuarterArc traces a dashed unit-circle arc through the point panel.
func drawQuarterArc(c *chart.Canvas, p *chart.Plot) {
	const segments = 96
	for k := 0; k < segments; k += 2 {
		a0 := float64(k) * (math.Pi / 2) / segments
		a1 := float64(k+1) * (math.Pi / 2) / segments
		c.Line(p.PX(math.Cos(a0)), p.PY(math.Sin(a0)),
			p.PX(math.Cos(a1)), p.PY(math.Sin(a1)), chart.ColorFrame)
	}
}

// squared trims a region to keep the point panel's aspect ratio close to 1.
func squared(r chart.Rect) chart.Rect {
	w, h := r.W(), r.H()
	if w > h {
		r.X1 = r.X0 + h
	} else if h > w {
		r.Y1 = r.Y0 + w
	}
	return r
}

func init() {
	core.Register("montecarlo", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
