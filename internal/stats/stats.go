// Package stats holds the numeric kernels behind the probability sims:
// ±1 random walks, progressive Monte Carlo π estimates, and the histogram
// and distribution helpers the charts are built from.
package stats

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"randviz/internal/core"
)

// Walk1D simulates steps independent ±1 increments and returns the cumulative
// position after each one. The returned slice has length steps+1 and starts
// at the origin. Position i always has the same parity as i.
func Walk1D(rng *rand.Rand, steps int) []float64 {
	walk := make([]float64, steps+1)
	pos := 0.0
	for i := 1; i <= steps; i++ {
		pos += float64(core.StepDir(rng))
		walk[i] = pos
	}
	return walk
}

// EndPositions returns the final positions of walks independent 1-D walks of
// the given length.
func EndPositions(rng *rand.Rand, walks, steps int) []float64 {
	out := make([]float64, walks)
	for i := range out {
		pos := 0
		for j := 0; j < steps; j++ {
			pos += core.StepDir(rng)
		}
		out[i] = float64(pos)
	}
	return out
}

// UniformPoints fills xs and ys with uniform samples in [0, 1).
func UniformPoints(rng *rand.Rand, xs, ys []float64) {
	for i := range xs {
		xs[i] = rng.Float64()
	}
	for i := range ys {
		ys[i] = rng.Float64()
	}
}

// Inside reports, per point, whether (x, y) falls inside the unit circle.
func Inside(xs, ys []float64) []bool {
	in := make([]bool, len(xs))
	for i := range xs {
		in[i] = xs[i]*xs[i]+ys[i]*ys[i] <= 1
	}
	return in
}

// PiEstimates returns the running estimate of π after each point:
// est[i] = 4 · inside(0..i) / (i+1).
func PiEstimates(inside []bool) []float64 {
	est := make([]float64, len(inside))
	count := 0
	for i, in := range inside {
		if in {
			count++
		}
		est[i] = 4 * float64(count) / float64(i+1)
	}
	return est
}

// PercentError returns 100·|est−π|/π.
func PercentError(est float64) float64 {
	return 100 * math.Abs(est-math.Pi) / math.Pi
}

// NormalPDF returns the density function of N(mu, sigma).
func NormalPDF(mu, sigma float64) func(x float64) float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	return dist.Prob
}

// DensityHistogram bins samples into equal-width buckets spanning their range
// and normalizes the heights so the total area is 1. It returns the bucket
// dividers (len bins+1) and heights (len bins). A degenerate sample range is
// widened to the unit interval around the value.
func DensityHistogram(samples []float64, bins int) (dividers, heights []float64) {
	if len(samples) == 0 || bins <= 0 {
		return nil, nil
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	if hi <= lo {
		lo -= 0.5
		hi += 0.5
	}
	dividers = make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram requires every sample strictly below the last divider.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	heights = stat.Histogram(nil, dividers, sorted, nil)
	width := (hi - lo) / float64(bins)
	norm := 1 / (float64(len(sorted)) * width)
	for i := range heights {
		heights[i] *= norm
	}
	return dividers, heights
}

// SampleSizes returns count log-spaced integer sample sizes between lo and
// hi, ascending with duplicates removed. A collapsed range (hi == lo) yields
// that single size.
func SampleSizes(lo, hi float64, count int) []int {
	if count <= 0 || lo <= 0 || hi < lo {
		return nil
	}
	if count == 1 || hi == lo {
		return []int{int(math.Round(lo))}
	}
	span := make([]float64, count)
	floats.LogSpan(span, lo, hi)
	sizes := make([]int, 0, count)
	for _, v := range span {
		n := int(math.Round(v))
		if len(sizes) > 0 && n <= sizes[len(sizes)-1] {
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes
}

// Window is a smoothed 1-D view interval used for gentle axis rescaling.
type Window struct {
	Lo, Hi float64
}

// Approach moves the window a fraction alpha of the way toward the target
// interval, matching the eased rescale of the animated estimate panel.
func (w *Window) Approach(lo, hi, alpha float64) {
	w.Lo += alpha * (lo - w.Lo)
	w.Hi += alpha * (hi - w.Hi)
}
