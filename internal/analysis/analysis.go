// Package analysis measures how the Monte Carlo π error shrinks with sample
// size and compares it against the 1/√N rate predicted by the central limit
// theorem.
package analysis

import (
	"math"
	"runtime"
	"sync"

	"randviz/internal/core"
	"randviz/internal/stats"
)

// Config controls an error-analysis run.
type Config struct {
	MinSamples float64 // smallest sample size
	MaxSamples float64 // largest sample size
	Points     int     // number of log-spaced sample sizes
	Workers    int     // parallel sampling goroutines per estimate
	Seed       int64
}

// DefaultConfig returns the default analysis range: 20 sizes from 1e2 to 1e7.
func DefaultConfig() Config {
	return Config{MinSamples: 1e2, MaxSamples: 1e7, Points: 20, Workers: runtime.NumCPU(), Seed: 42}
}

// Result is the measured error at one sample size.
type Result struct {
	N     int
	Error float64
}

// Run estimates π independently at each log-spaced sample size and records
// the absolute error. Each size gets its own seed offset so the runs are
// uncorrelated but still reproducible.
func Run(cfg Config) []Result {
	sizes := stats.SampleSizes(cfg.MinSamples, cfg.MaxSamples, cfg.Points)
	out := make([]Result, len(sizes))
	for i, n := range sizes {
		est := EstimatePi(n, cfg.Workers, cfg.Seed+int64(i))
		out[i] = Result{N: n, Error: math.Abs(est - math.Pi)}
	}
	return out
}

// EstimatePi splits n samples across workers and returns 4·inside/n. Each
// worker draws from its own RNG stream, so the result does not depend on
// goroutine scheduling.
func EstimatePi(n, workers int, seed int64) float64 {
	if n < 1 {
		return 0
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	per := n / workers
	rem := n % workers

	var wg sync.WaitGroup
	counts := make(chan int, workers)
	for w := 0; w < workers; w++ {
		samples := per
		if w == workers-1 {
			samples += rem
		}
		wg.Add(1)
		go func(stream uint64, samples int) {
			defer wg.Done()
			rng := core.NewStream(seed, stream)
			inside := 0
			for i := 0; i < samples; i++ {
				x := rng.Float64()
				y := rng.Float64()
				if x*x+y*y <= 1 {
					inside++
				}
			}
			counts <- inside
		}(uint64(w+1), samples)
	}
	go func() {
		wg.Wait()
		close(counts)
	}()

	total := 0
	for c := range counts {
		total += c
	}
	return 4 * float64(total) / float64(n)
}

// RunReuse derives errors from a single progressive run: the estimate after
// the first N points stands in for an independent run of size N.
func RunReuse(limit, points int, seed int64) []Result {
	if limit < 100 {
		limit = 100
	}
	rng := core.NewRNG(seed).Source()
	xs := make([]float64, limit)
	ys := make([]float64, limit)
	stats.UniformPoints(rng, xs, ys)
	est := stats.PiEstimates(stats.Inside(xs, ys))

	sizes := stats.SampleSizes(1e2, float64(limit), points)
	out := make([]Result, len(sizes))
	for i, n := range sizes {
		out[i] = Result{N: n, Error: math.Abs(est[n-1] - math.Pi)}
	}
	return out
}

// CLTReference returns a 1/√N curve scaled so its first point matches the
// first measured error.
func CLTReference(results []Result) []float64 {
	if len(results) == 0 {
		return nil
	}
	scale := results[0].Error * math.Sqrt(float64(results[0].N))
	ref := make([]float64, len(results))
	for i, r := range results {
		ref[i] = scale / math.Sqrt(float64(r.N))
	}
	return ref
}
