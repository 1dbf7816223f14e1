package stats

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestWalk1DShape(t *testing.T) {
	const steps = 500
	walk := Walk1D(newRNG(1), steps)
	if len(walk) != steps+1 {
		t.Fatalf("walk length = %d, want %d", len(walk), steps+1)
	}
	if walk[0] != 0 {
		t.Fatalf("walk starts at %v, want origin", walk[0])
	}
	for i := 1; i < len(walk); i++ {
		d := walk[i] - walk[i-1]
		if d != 1 && d != -1 {
			t.Fatalf("increment %d is %v, want ±1", i, d)
		}
		if math.Mod(math.Abs(walk[i]), 2) != math.Mod(float64(i), 2) {
			t.Fatalf("position %d = %v breaks parity", i, walk[i])
		}
	}
}

func TestEndPositionsBounds(t *testing.T) {
	const (
		walks = 200
		steps = 99
	)
	ends := EndPositions(newRNG(2), walks, steps)
	if len(ends) != walks {
		t.Fatalf("got %d end positions, want %d", len(ends), walks)
	}
	for i, e := range ends {
		if math.Abs(e) > steps {
			t.Fatalf("end %d = %v exceeds %d steps", i, e, steps)
		}
		if math.Mod(math.Abs(e), 2) != math.Mod(float64(steps), 2) {
			t.Fatalf("end %d = %v has wrong parity for %d steps", i, e, steps)
		}
	}
}

func TestPiEstimates(t *testing.T) {
	inside := []bool{true, false, true, true}
	est := PiEstimates(inside)
	want := []float64{4, 2, 8.0 / 3, 3}
	for i := range want {
		if math.Abs(est[i]-want[i]) > 1e-12 {
			t.Fatalf("estimate %d = %v, want %v", i, est[i], want[i])
		}
	}
}

func TestPercentError(t *testing.T) {
	if got := PercentError(math.Pi); got != 0 {
		t.Fatalf("error at π = %v, want 0", got)
	}
	if got := PercentError(0); math.Abs(got-100) > 1e-12 {
		t.Fatalf("error at 0 = %v, want 100", got)
	}
}

func TestInside(t *testing.T) {
	xs := []float64{0, 1, 0.9}
	ys := []float64{0, 1, 0.9}
	in := Inside(xs, ys)
	want := []bool{true, false, false}
	for i := range want {
		if in[i] != want[i] {
			t.Fatalf("inside[%d] = %v, want %v", i, in[i], want[i])
		}
	}
}

func TestDensityHistogramArea(t *testing.T) {
	rng := newRNG(3)
	samples := make([]float64, 5000)
	for i := range samples {
		samples[i] = rng.NormFloat64() * 10
	}
	const bins = 40
	dividers, heights := DensityHistogram(samples, bins)
	if len(dividers) != bins+1 || len(heights) != bins {
		t.Fatalf("got %d dividers and %d heights", len(dividers), len(heights))
	}
	width := (dividers[bins] - dividers[0]) / bins
	area := 0.0
	for _, h := range heights {
		area += h * width
	}
	if math.Abs(area-1) > 1e-6 {
		t.Fatalf("histogram area = %v, want 1", area)
	}
}

func TestDensityHistogramDegenerate(t *testing.T) {
	samples := []float64{5, 5, 5, 5}
	dividers, heights := DensityHistogram(samples, 4)
	if dividers == nil || heights == nil {
		t.Fatal("degenerate range produced no histogram")
	}
	if dividers[0] >= 5 || dividers[len(dividers)-1] <= 5 {
		t.Fatalf("widened range [%v, %v] does not contain the value", dividers[0], dividers[len(dividers)-1])
	}
}

func TestSampleSizes(t *testing.T) {
	sizes := SampleSizes(1e2, 1e7, 20)
	if len(sizes) == 0 {
		t.Fatal("no sample sizes returned")
	}
	if sizes[0] != 100 {
		t.Fatalf("first size = %d, want 100", sizes[0])
	}
	if sizes[len(sizes)-1] != 10000000 {
		t.Fatalf("last size = %d, want 10000000", sizes[len(sizes)-1])
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			t.Fatalf("sizes not strictly ascending at %d: %d <= %d", i, sizes[i], sizes[i-1])
		}
	}
}

func TestSampleSizesCollapsedRange(t *testing.T) {
	sizes := SampleSizes(1e2, 1e2, 20)
	if len(sizes) != 1 || sizes[0] != 100 {
		t.Fatalf("collapsed range gave %v, want [100]", sizes)
	}
	if sizes := SampleSizes(1e2, 50, 20); sizes != nil {
		t.Fatalf("inverted range gave %v, want nil", sizes)
	}
}

func TestNormalPDF(t *testing.T) {
	const sigma = 44.7
	pdf := NormalPDF(0, sigma)
	peak := 1 / (sigma * math.Sqrt(2*math.Pi))
	if math.Abs(pdf(0)-peak) > 1e-12 {
		t.Fatalf("pdf(0) = %v, want %v", pdf(0), peak)
	}
	if math.Abs(pdf(10)-pdf(-10)) > 1e-12 {
		t.Fatalf("pdf not symmetric: %v vs %v", pdf(10), pdf(-10))
	}
}

func TestWindowApproach(t *testing.T) {
	w := Window{Lo: 2, Hi: 4}
	w.Approach(3, 3.5, 0.2)
	if math.Abs(w.Lo-2.2) > 1e-12 || math.Abs(w.Hi-3.9) > 1e-12 {
		t.Fatalf("after one step window = [%v, %v], want [2.2, 3.9]", w.Lo, w.Hi)
	}
	for i := 0; i < 200; i++ {
		w.Approach(3, 3.5, 0.2)
	}
	if math.Abs(w.Lo-3) > 1e-6 || math.Abs(w.Hi-3.5) > 1e-6 {
		t.Fatalf("window did not converge: [%v, %v]", w.Lo, w.Hi)
	}
}
