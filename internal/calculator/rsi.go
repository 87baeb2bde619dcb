package calculator

// NeutralRSI is reported when the window shows no movement at all.
const NeutralRSI = 50.0

// RSISeries computes the Wilder-smoothed RSI for every bar.
// Bar 0 is seeded with a zero move, so warm-up values are filled rather than undefined.
func RSISeries(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}
	if period < 1 {
		period = 1
	}
	alpha := 1.0 / float64(period)

	var avgGain, avgLoss float64
	for i := range closes {
		gain, loss := 0.0, 0.0
		if i > 0 {
			change := closes[i] - closes[i-1]
			if change > 0 {
				gain = change
			} else {
				loss = -change
			}
		}
		if i == 0 {
			avgGain, avgLoss = gain, loss
		} else {
			avgGain = (1-alpha)*avgGain + alpha*gain
			avgLoss = (1-alpha)*avgLoss + alpha*loss
		}
		out[i] = rsiFromAverages(avgGain, avgLoss)
	}
	return out
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	switch {
	case avgGain == 0 && avgLoss == 0:
		return NeutralRSI
	case avgLoss == 0:
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
