// Package pipeline runs the signal engine end to end: window selection,
// indicator computation, classification, then narrative composition.
package pipeline

import (
	"context"

	"SignalSentinel/internal/calculator"
	"SignalSentinel/internal/classifier"
	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/model"
	"SignalSentinel/internal/narrative"
)

// Result holds every stage's output for one run.
type Result struct {
	Series     model.PriceSeries
	Windows    model.WindowConfig
	Indicators model.IndicatorSeries
	Snapshot   model.SignalSnapshot
	Report     model.NarrativeReport
	Range      calculator.Range
}

// Analyze runs the engine over series. On error no partial result is returned.
func Analyze(series model.PriceSeries) (*Result, error) {
	windows := calculator.SelectWindows(series.Len())
	ind := calculator.ComputeIndicators(series, windows)

	snap, err := classifier.Classify(ind, windows)
	if err != nil {
		return nil, err
	}
	rng, _ := calculator.PriceRange(series.Bars)

	return &Result{
		Series:     series,
		Windows:    windows,
		Indicators: ind,
		Snapshot:   snap,
		Report:     narrative.Compose(snap),
		Range:      rng,
	}, nil
}

// Run loads the series from src and analyzes it.
func Run(ctx context.Context, src collector.Source) (*Result, error) {
	series, err := collector.Collect(ctx, src)
	if err != nil {
		return nil, err
	}
	return Analyze(series)
}
