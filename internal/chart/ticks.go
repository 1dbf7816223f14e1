package chart

import (
	"math"
	"strconv"
)

// niceTicks returns round tick positions covering [lo, hi], aiming for the
// requested count. Steps are 1, 2 or 5 times a power of ten.
func niceTicks(lo, hi float64, count int) []float64 {
	if count < 2 {
		count = 2
	}
	span := hi - lo
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return nil
	}
	raw := span / float64(count)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	var step float64
	switch {
	case norm < 1.5:
		step = 1 * mag
	case norm < 3.5:
		step = 2 * mag
	case norm < 7.5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	first := math.Ceil(lo/step) * step
	var ticks []float64
	for v := first; v <= hi+step*1e-9; v += step {
		// avoid -0 labels
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// logTicks returns the powers of ten inside [lo, hi]. Both bounds must be
// positive.
func logTicks(lo, hi float64) []float64 {
	if lo <= 0 || hi <= lo {
		return nil
	}
	first := int(math.Ceil(math.Log10(lo) - 1e-9))
	last := int(math.Floor(math.Log10(hi) + 1e-9))
	var ticks []float64
	for e := first; e <= last; e++ {
		ticks = append(ticks, math.Pow(10, float64(e)))
	}
	return ticks
}

// formatTick renders a tick value compactly, switching to scientific notation
// outside the comfortable decimal range.
func formatTick(v float64) string {
	av := math.Abs(v)
	if v != 0 && (av >= 1e5 || av < 1e-3) {
		return strconv.FormatFloat(v, 'e', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
