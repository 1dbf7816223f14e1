package montecarlo

import (
	"math"
	"testing"

	"randviz/internal/chart"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"limit": "5000", "interval": "250", "w": "640", "h": "320"})
	if cfg.Limit != 5000 || cfg.Interval != 250 || cfg.Width != 640 || cfg.Height != 320 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	cfg = FromMap(map[string]string{"limit": "bogus", "interval": "-3"})
	d := DefaultConfig()
	if cfg.Limit != d.Limit || cfg.Interval != d.Interval {
		t.Fatalf("invalid values overrode defaults: %+v", cfg)
	}
}

func TestRevealProgress(t *testing.T) {
	m := New(Config{Limit: 1000, Interval: 300, Width: 100, Height: 100})
	m.Reset(1)
	if m.Shown() != 0 || m.Done() {
		t.Fatal("fresh sim should have nothing revealed")
	}
	m.Step()
	if m.Shown() != 300 {
		t.Fatalf("after one step shown = %d, want 300", m.Shown())
	}
	for i := 0; i < 10; i++ {
		m.Step()
	}
	if m.Shown() != 1000 || !m.Done() {
		t.Fatalf("reveal did not complete: shown = %d", m.Shown())
	}
	// Step past the end must be a no-op.
	m.Step()
	if m.Shown() != 1000 {
		t.Fatalf("step past the end changed shown to %d", m.Shown())
	}
}

func TestEstimateMatchesCount(t *testing.T) {
	m := New(Config{Limit: 2000, Interval: 500, Width: 100, Height: 100})
	m.Reset(42)
	for !m.Done() {
		m.Step()
	}
	want := 4 * float64(m.InsideShown()) / float64(m.Shown())
	if math.Abs(m.Estimate()-want) > 1e-12 {
		t.Fatalf("estimate %v disagrees with count-based value %v", m.Estimate(), want)
	}
}

func TestEstimateConverges(t *testing.T) {
	m := New(Config{Limit: 20000, Interval: 1000, Width: 100, Height: 100})
	m.Reset(42)
	for !m.Done() {
		m.Step()
	}
	if est := m.Estimate(); est < 2.9 || est > 3.4 {
		t.Fatalf("estimate after 20000 points = %v, not near π", est)
	}
}

func TestResetDeterminism(t *testing.T) {
	a := New(DefaultConfig())
	b := New(DefaultConfig())
	a.Reset(9)
	b.Reset(9)
	for !a.Done() {
		a.Step()
		b.Step()
	}
	if a.Estimate() != b.Estimate() || a.InsideShown() != b.InsideShown() {
		t.Fatal("same seed produced different runs")
	}
}

func TestRenderSmoke(t *testing.T) {
	m := New(Config{Limit: 1000, Interval: 500, Width: 400, Height: 200})
	m.Reset(3)
	m.Step()
	c := chart.NewCanvas(400, 200)
	m.Render(c)
	if c.At(0, 0) != chart.ColorBackground {
		t.Fatalf("corner pixel = %v, want background", c.At(0, 0))
	}
	found := false
	for y := 0; y < 200 && !found; y++ {
		for x := 0; x < 400; x++ {
			if col := c.At(x, y); col == chart.ColorBlue || col == chart.ColorRed {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("render drew no data points")
	}
}
