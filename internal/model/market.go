package model

import "time"

// PriceBar is one trading day of the input series.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PriceSeries holds the chronologically ordered bars the engine reads.
type PriceSeries struct {
	Symbol string
	Bars   []PriceBar
}

// Len returns the number of bars.
func (s PriceSeries) Len() int { return len(s.Bars) }

// Closes returns the close prices in bar order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Last returns the most recent bar. ok is false for an empty series.
func (s PriceSeries) Last() (bar PriceBar, ok bool) {
	if len(s.Bars) == 0 {
		return PriceBar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}
