// Package randomwalk animates a 1-D ±1 random walk: a single spotlight walk
// traced step by step, next to the distribution of end positions across many
// walks compared with the theoretical N(0, √steps) curve.
package randomwalk

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"randviz/internal/chart"
	"randviz/internal/core"
	"randviz/internal/stats"
)

// Config holds parameters for the random walk simulation.
type Config struct {
	Walks  int // number of independent walks feeding the histogram
	Steps  int // steps per walk
	Bins   int // histogram buckets
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Walks: 1000, Steps: 2000, Bins: 50, Width: 960, Height: 480}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["walks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Walks = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["bins"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Bins = parsed
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

// animTicks is roughly how many ticks a full reveal takes.
const animTicks = 240

// RandomWalk reveals a pre-generated spotlight walk and folds end positions
// into the histogram as the animation runs.
type RandomWalk struct {
	cfg Config

	trace   []float64
	stepIdx []float64
	ends    []float64

	shownSteps int
	shownWalks int
	stepBatch  int
	walkBatch  int
}

// New creates a simulation with the given configuration.
func New(cfg Config) *RandomWalk {
	if cfg.Walks < 1 {
		cfg.Walks = 1
	}
	if cfg.Steps < 1 {
		cfg.Steps = 1
	}
	if cfg.Bins < 1 {
		cfg.Bins = 1
	}
	return &RandomWalk{
		cfg:       cfg,
		stepBatch: (cfg.Steps + animTicks - 1) / animTicks,
		walkBatch: (cfg.Walks + animTicks - 1) / animTicks,
	}
}

// Name returns the simulation identifier.
func (r *RandomWalk) Name() string { return "randomwalk" }

// Size returns the chart surface dimensions.
func (r *RandomWalk) Size() core.Size { return core.Size{W: r.cfg.Width, H: r.cfg.Height} }

// Reset generates the spotlight walk and every end position up front so the
// reveal is fully deterministic for the seed.
func (r *RandomWalk) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	r.trace = stats.Walk1D(rng, r.cfg.Steps)
	r.ends = stats.EndPositions(rng, r.cfg.Walks, r.cfg.Steps)
	r.stepIdx = make([]float64, r.cfg.Steps+1)
	floats.Span(r.stepIdx, 0, float64(r.cfg.Steps))
	r.shownSteps = 0
	r.shownWalks = 0
}

// Step advances the spotlight trace and folds more walks into the histogram.
func (r *RandomWalk) Step() {
	r.shownSteps += r.stepBatch
	if r.shownSteps > r.cfg.Steps {
		r.shownSteps = r.cfg.Steps
	}
	r.shownWalks += r.walkBatch
	if r.shownWalks > r.cfg.Walks {
		r.shownWalks = r.cfg.Walks
	}
}

// Done reports whether the trace is complete and every walk is folded in.
func (r *RandomWalk) Done() bool {
	return r.shownSteps >= r.cfg.Steps && r.shownWalks >= r.cfg.Walks
}

// ShownSteps returns how much of the spotlight trace is revealed.
func (r *RandomWalk) ShownSteps() int { return r.shownSteps }

// ShownWalks returns how many end positions are folded into the histogram.
func (r *RandomWalk) ShownWalks() int { return r.shownWalks }

// Status returns a one-line progress readout.
func (r *RandomWalk) Status() string {
	return fmt.Sprintf("trace %d/%d steps | %d/%d walks",
		r.shownSteps, r.cfg.Steps, r.shownWalks, r.cfg.Walks)
}

// Parameters lists the tunables the factory accepts.
func (r *RandomWalk) Parameters() []core.Parameter {
	d := DefaultConfig()
	return []core.Parameter{
		{Key: "walks", Type: core.ParamTypeInt, Default: strconv.Itoa(d.Walks), Description: "number of independent walks"},
		{Key: "steps", Type: core.ParamTypeInt, Default: strconv.Itoa(d.Steps), Description: "steps per walk"},
		{Key: "bins", Type: core.ParamTypeInt, Default: strconv.Itoa(d.Bins), Description: "histogram buckets"},
		{Key: "w", Type: core.ParamTypeInt, Default: strconv.Itoa(d.Width), Description: "chart width in pixels"},
		{Key: "h", Type: core.ParamTypeInt, Default: strconv.Itoa(d.Height), Description: "chart height in pixels"},
	}
}

// Render draws the spotlight trace on the left and the end-position
// distribution on the right.
func (r *RandomWalk) Render(c *chart.Canvas) {
	c.Fill(chart.ColorBackground)
	if len(r.trace) == 0 {
		return
	}
	cols := chart.Columns(c, 2, 8)

	left := chart.NewPlot(c, cols[0])
	left.SetXLim(0, float64(r.cfg.Steps))
	lo := floats.Min(r.trace)
	hi := floats.Max(r.trace)
	if hi <= lo {
		lo, hi = lo-1, hi+1
	}
	pad := (hi - lo) * 0.05
	left.SetYLim(lo-pad, hi+pad)
	left.Grid(chart.ColorGrid)
	left.Frame(chart.ColorFrame)
	left.Ticks(chart.ColorText)
	left.Title(fmt.Sprintf("Single 1D random walk (%d steps)", r.cfg.Steps), chart.ColorText)
	left.XLabel("step", chart.ColorText)
	left.PolyLine(r.stepIdx[:r.shownSteps+1], r.trace[:r.shownSteps+1], chart.ColorBlue)

	drawDistribution(c, cols[1], r.ends, r.shownWalks, r.cfg.Steps, r.cfg.Bins)
}

// RenderHistogram draws the end-position distribution with the theoretical
// overlay as a single full-width chart. Used by the headless summary tool.
func RenderHistogram(c *chart.Canvas, ends []float64, steps, bins int) {
	c.Fill(chart.ColorBackground)
	cols := chart.Columns(c, 1, 8)
	drawDistribution(c, cols[0], ends, len(ends), steps, bins)
}

func drawDistribution(c *chart.Canvas, region chart.Rect, ends []float64, shown, steps, bins int) {
	if len(ends) == 0 {
		return
	}
	p := chart.NewPlot(c, region)

	lo := floats.Min(ends)
	hi := floats.Max(ends)
	if hi <= lo {
		lo, hi = lo-1, hi+1
	}
	p.SetXLim(lo, hi)

	pdf := stats.NormalPDF(0, math.Sqrt(float64(steps)))
	ymax := pdf(0)
	var dividers, heights []float64
	if shown >= 2 {
		dividers, heights = stats.DensityHistogram(ends[:shown], bins)
		if m := floats.Max(heights); m > ymax {
			ymax = m
		}
	}
	p.SetYLim(0, ymax*1.15)

	p.Grid(chart.ColorGrid)
	if heights != nil {
		p.Bars(dividers, heights, chart.ColorRed)
	}
	p.Curve(pdf, 250, chart.ColorBlue)
	p.Frame(chart.ColorFrame)
	p.Ticks(chart.ColorText)
	p.Legend(0, "final positions", chart.ColorRed, chart.ColorText)
	p.Legend(1, "N(0, sqrt N)", chart.ColorBlue, chart.ColorText)
	p.Title(fmt.Sprintf("End positions of %d walks", shown), chart.ColorText)
	p.XLabel("final position", chart.ColorText)
}

func init() {
	core.Register("randomwalk", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
