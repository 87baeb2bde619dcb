package collector

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"SignalSentinel/internal/model"
)

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	Symbol    string
	BasePrice float64
	Count     int
	Start     time.Time
	Bars      []model.PriceBar
}

func (m *MockSource) Name() string { return "mock" }

// Load returns Bars when set, after validation, otherwise Count generated daily bars.
func (m *MockSource) Load(_ context.Context) (model.PriceSeries, error) {
	if m.Bars != nil {
		series := model.PriceSeries{Symbol: m.Symbol, Bars: m.Bars}
		if err := Validate(series, 1); err != nil {
			return model.PriceSeries{}, err
		}
		return series, nil
	}
	start := m.Start
	if start.IsZero() {
		start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return model.PriceSeries{Symbol: m.Symbol, Bars: GenerateBars(m.BasePrice, m.Count, start)}, nil
}

// GenerateBars builds count deterministic bars starting at start, one per day.
// Closes follow a slow oscillation around basePrice so every regime path gets exercised.
func GenerateBars(basePrice float64, count int, start time.Time) []model.PriceBar {
	if basePrice <= 0 {
		basePrice = 100
	}
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001 + 0.02*math.Sin(float64(i)/5))
		bars[i] = model.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000 + int64(i%7)*25000,
		}
	}
	return bars
}

// Collect loads the series from src and logs the outcome.
func Collect(ctx context.Context, src Source) (model.PriceSeries, error) {
	series, err := src.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("source", src.Name()).Msg("load failed")
		return model.PriceSeries{}, fmt.Errorf("load %s: %w", src.Name(), err)
	}
	log.Info().Str("source", src.Name()).Int("bars", series.Len()).Msg("series loaded")
	return series, nil
}
