package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"gonum.org/v1/gonum/stat"

	"randviz/internal/chart"
	"randviz/internal/core"
	"randviz/internal/sims/randomwalk"
	"randviz/internal/stats"
)

func main() {
	walks := flag.Int("walks", 1000, "number of random walks")
	steps := flag.Int("steps", 2000, "steps per walk")
	bins := flag.Int("bins", 50, "histogram buckets for the chart")
	seed := flag.Int64("seed", 0, "random seed; 0 derives one from the clock")
	pngPath := flag.String("png", "", "write the histogram chart to this file")
	flag.Parse()

	if *walks < 1 || *steps < 1 {
		log.Fatalf("walks and steps must be positive, got %d and %d", *walks, *steps)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
		log.Printf("[INFO] no seed provided, using %d", *seed)
	} else {
		log.Printf("[INFO] random seed set to %d for reproducibility", *seed)
	}

	fmt.Printf("Simulating %d walks, each with %d steps:\n", *walks, *steps)
	rng := core.NewRNG(*seed).Source()
	ends := stats.EndPositions(rng, *walks, *steps)

	mean := stat.Mean(ends, nil)
	sigma := stat.StdDev(ends, nil)
	expected := math.Sqrt(float64(*steps))

	fmt.Printf("mean final position:   %+.3f\n", mean)
	fmt.Printf("sample std dev:        %.3f\n", sigma)
	fmt.Printf("theoretical sqrt(N):   %.3f\n", expected)
	fmt.Printf("within 1 sigma:        %.1f%% (normal: 68.3%%)\n", withinSigma(ends, expected, 1))
	fmt.Printf("within 2 sigma:        %.1f%% (normal: 95.4%%)\n", withinSigma(ends, expected, 2))

	if *pngPath != "" {
		c := chart.NewCanvas(800, 600)
		randomwalk.RenderHistogram(c, ends, *steps, *bins)
		f, err := os.Create(*pngPath)
		if err != nil {
			log.Fatalf("create %s: %v", *pngPath, err)
		}
		if err := c.EncodePNG(f); err != nil {
			f.Close()
			log.Fatalf("write chart: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close %s: %v", *pngPath, err)
		}
		log.Printf("[INFO] wrote %s", *pngPath)
	}
}

// withinSigma reports the percentage of end positions within k theoretical
// standard deviations of the origin.
func withinSigma(ends []float64, sigma, k float64) float64 {
	count := 0
	for _, e := range ends {
		if math.Abs(e) <= k*sigma {
			count++
		}
	}
	return 100 * float64(count) / float64(len(ends))
}
