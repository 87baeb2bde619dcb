package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ReturnSeries computes period-over-period returns. The first value is NaN.
func ReturnSeries(closes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		if i == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (closes[i] - closes[i-1]) / closes[i-1]
	}
	return out
}

// VolatilitySeries computes the rolling sample standard deviation of returns over window.
// NaN returns are skipped; one defined sample yields 0 and none yields NaN.
func VolatilitySeries(returns []float64, window int) []float64 {
	out := make([]float64, len(returns))
	if window < 1 {
		window = 1
	}
	sample := make([]float64, 0, window)
	for i := range returns {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sample = sample[:0]
		for _, r := range returns[start : i+1] {
			if !math.IsNaN(r) {
				sample = append(sample, r)
			}
		}
		switch len(sample) {
		case 0:
			out[i] = math.NaN()
		case 1:
			out[i] = 0
		default:
			out[i] = stat.StdDev(sample, nil)
		}
	}
	return out
}
