package calculator

import (
	"math"

	"SignalSentinel/internal/model"
)

// Range is the high/low envelope of a series and where the latest close sits in it.
type Range struct {
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Position float64 `json:"position"` // 0.0 ~ 1.0
}

// PriceRange scans every bar for the highest high and lowest low.
// ok is false for an empty series.
func PriceRange(bars []model.PriceBar) (r Range, ok bool) {
	if len(bars) == 0 {
		return Range{}, false
	}
	r.High = math.Inf(-1)
	r.Low = math.Inf(1)
	for _, b := range bars {
		if b.High > r.High {
			r.High = b.High
		}
		if b.Low < r.Low {
			r.Low = b.Low
		}
	}
	r.Position = rangePosition(bars[len(bars)-1].Close, r.High, r.Low)
	return r, true
}

func rangePosition(current, high, low float64) float64 {
	if high <= low {
		return 0.5
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos
}
