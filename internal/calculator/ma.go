package calculator

// SMASeries computes the simple moving average of values over period.
// Warm-up bars average every value available so far, so no output is undefined.
func SMASeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if period < 1 {
		period = 1
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		n := period
		if i+1 < period {
			n = i + 1
		}
		out[i] = sum / float64(n)
	}
	return out
}

// EMASeries computes the exponential moving average with alpha = 2/(period+1),
// seeded with the first value.
func EMASeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	if period < 1 {
		period = 1
	}
	alpha := 2.0 / float64(period+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
