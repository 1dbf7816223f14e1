package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"randviz/internal/analysis"
	"randviz/internal/core"
	"randviz/internal/stats"
)

func main() {
	points := flag.Int("points", 20, "number of log-spaced sample sizes")
	minSamples := flag.Float64("min", 1e2, "smallest sample size")
	maxSamples := flag.Float64("max", 1e7, "largest sample size")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel sampling goroutines")
	seed := flag.Int64("seed", 0, "random seed; 0 derives one from the clock")
	reuse := flag.Bool("reuse", false, "derive errors from one progressive run instead of independent runs")
	limit := flag.Int("limit", 25000, "progressive run length for -reuse and -progress")
	interval := flag.Int("interval", 1000, "points per console update in -progress mode")
	progress := flag.Bool("progress", false, "print a paced running estimate instead of the error table")
	tps := flag.Int("tps", 10, "updates per second in -progress mode")
	pngPath := flag.String("png", "", "write a log-log error chart to this file")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
		log.Printf("[INFO] no seed provided, using %d", *seed)
	} else {
		log.Printf("[INFO] random seed set to %d for reproducibility", *seed)
	}

	if *progress {
		runProgress(*limit, *interval, *seed, *tps)
		return
	}

	var results []analysis.Result
	if *reuse {
		log.Printf("[INFO] reusing one progressive run of %d points", *limit)
		results = analysis.RunReuse(*limit, *points, *seed)
	} else {
		cfg := analysis.Config{
			MinSamples: *minSamples,
			MaxSamples: *maxSamples,
			Points:     *points,
			Workers:    *workers,
			Seed:       *seed,
		}
		results = analysis.Run(cfg)
	}
	ref := analysis.CLTReference(results)

	fmt.Printf("%12s  %14s  %14s\n", "N", "abs error", "1/sqrt(N) ref")
	for i, r := range results {
		fmt.Printf("%12d  %14.6e  %14.6e\n", r.N, r.Error, ref[i])
	}

	if *pngPath != "" {
		writeChart(*pngPath, results, ref)
	}
}

func writeChart(path string, results []analysis.Result, ref []float64) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	if err := analysis.WritePNG(f, results, ref); err != nil {
		f.Close()
		log.Fatalf("write chart: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", path, err)
	}
	log.Printf("[INFO] wrote %s", path)
}

// runProgress replays a progressive run on the console, one estimate per
// interval, paced by the fixed-step timer.
func runProgress(limit, interval int, seed int64, tps int) {
	if interval < 1 {
		interval = 1
	}
	if limit < interval {
		limit = interval
	}
	rng := core.NewRNG(seed).Source()
	xs := make([]float64, limit)
	ys := make([]float64, limit)
	stats.UniformPoints(rng, xs, ys)
	est := stats.PiEstimates(stats.Inside(xs, ys))

	timer := core.NewFixedStep(tps)
	report := func(n int) {
		fmt.Printf("n=%8d  pi ~ %.6f  error %.4f%%\n", n, est[n-1], stats.PercentError(est[n-1]))
	}
	for n := interval; n <= limit; n += interval {
		for !timer.ShouldStep() {
			time.Sleep(timer.Interval() / 8)
		}
		report(n)
	}
	if limit%interval != 0 {
		report(limit)
	}
}
