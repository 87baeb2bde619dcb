package collector

import (
	"math"

	"SignalSentinel/internal/model"
)

// Validate checks every bar and the ordering of the series.
// line numbers the first bar; CSV input passes 2 to account for the header.
func Validate(series model.PriceSeries, firstLine int) error {
	for i, b := range series.Bars {
		line := firstLine + i
		if err := validateBar(b, line); err != nil {
			return err
		}
		if i > 0 && !b.Date.After(series.Bars[i-1].Date) {
			return &model.MalformedInputError{
				Line:   line,
				Field:  "Date",
				Value:  b.Date.Format(dateLayout),
				Reason: "dates must be strictly ascending",
			}
		}
	}
	return nil
}

func validateBar(b model.PriceBar, line int) error {
	prices := []struct {
		field string
		value float64
	}{
		{"Open", b.Open}, {"High", b.High}, {"Low", b.Low}, {"Close", b.Close},
	}
	for _, p := range prices {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) || p.value <= 0 {
			return &model.MalformedInputError{
				Line:   line,
				Field:  p.field,
				Value:  formatFloat(p.value),
				Reason: "price must be a positive finite number",
			}
		}
	}
	if b.Volume < 0 {
		return &model.MalformedInputError{
			Line:   line,
			Field:  "Volume",
			Value:  formatInt(b.Volume),
			Reason: "volume must be non-negative",
		}
	}
	if b.Date.IsZero() {
		return &model.MalformedInputError{Line: line, Field: "Date", Reason: "date is missing"}
	}
	return nil
}
