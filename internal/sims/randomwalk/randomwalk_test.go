package randomwalk

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"randviz/internal/chart"
	"randviz/internal/stats"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"walks": "50", "steps": "200", "bins": "10"})
	if cfg.Walks != 50 || cfg.Steps != 200 || cfg.Bins != 10 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	cfg = FromMap(map[string]string{"walks": "0", "steps": "nope"})
	d := DefaultConfig()
	if cfg.Walks != d.Walks || cfg.Steps != d.Steps {
		t.Fatalf("invalid values overrode defaults: %+v", cfg)
	}
}

func TestRevealCompletes(t *testing.T) {
	r := New(Config{Walks: 10, Steps: 50, Bins: 5, Width: 100, Height: 100})
	r.Reset(1)
	if r.Done() {
		t.Fatal("fresh sim reported done")
	}
	for i := 0; i < 1000 && !r.Done(); i++ {
		r.Step()
	}
	if !r.Done() {
		t.Fatal("reveal never completed")
	}
	if r.ShownSteps() != 50 || r.ShownWalks() != 10 {
		t.Fatalf("reveal overshot: %d steps, %d walks", r.ShownSteps(), r.ShownWalks())
	}
}

func TestResetDeterminism(t *testing.T) {
	a := New(Config{Walks: 20, Steps: 100, Bins: 10, Width: 200, Height: 120})
	b := New(Config{Walks: 20, Steps: 100, Bins: 10, Width: 200, Height: 120})
	a.Reset(5)
	b.Reset(5)
	for !a.Done() {
		a.Step()
		b.Step()
	}
	for !b.Done() {
		b.Step()
	}
	ca := chart.NewCanvas(200, 120)
	cb := chart.NewCanvas(200, 120)
	a.Render(ca)
	b.Render(cb)
	if !bytes.Equal(ca.Pixels(), cb.Pixels()) {
		t.Fatal("same seed rendered different charts")
	}
}

func TestRenderBeforeReset(t *testing.T) {
	r := New(DefaultConfig())
	c := chart.NewCanvas(960, 480)
	// must not panic with no generated data
	r.Render(c)
}

func TestRenderHistogram(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 0))
	ends := stats.EndPositions(rng, 500, 400)
	c := chart.NewCanvas(400, 300)
	RenderHistogram(c, ends, 400, 25)

	foundBar, foundCurve := false, false
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			switch c.At(x, y) {
			case chart.ColorRed:
				foundBar = true
			case chart.ColorBlue:
				foundCurve = true
			}
		}
	}
	if !foundBar {
		t.Fatal("histogram bars not drawn")
	}
	if !foundCurve {
		t.Fatal("normal overlay not drawn")
	}
}
