package model

import (
	"fmt"
	"strings"
)

// VolatilityRegime buckets the latest return dispersion.
type VolatilityRegime string

const (
	VolatilityLow    VolatilityRegime = "Low"
	VolatilityMedium VolatilityRegime = "Medium"
	VolatilityHigh   VolatilityRegime = "High"
)

// TrendBias is the directional read from EMA versus the short moving average.
type TrendBias string

const (
	BiasBullish TrendBias = "Bullish"
	BiasBearish TrendBias = "Bearish"
)

// MomentumState buckets the latest momentum oscillator value.
type MomentumState string

const (
	MomentumOverbought MomentumState = "Overbought"
	MomentumOversold   MomentumState = "Oversold"
	MomentumNeutral    MomentumState = "Neutral"
)

// SignalSnapshot classifies the last bar of a run.
type SignalSnapshot struct {
	VolatilityRegime VolatilityRegime `json:"volatility_regime"`
	TrendBias        TrendBias        `json:"trend_bias"`
	MomentumState    MomentumState    `json:"momentum_state"`
	LatestMomentum   float64          `json:"latest_momentum"`
	LatestVolatility float64          `json:"latest_volatility"`
	MomentumWindow   int              `json:"momentum_window"`
}

// NarrativeSummary is the structured header of a report.
type NarrativeSummary struct {
	VolatilityRegime VolatilityRegime `json:"volatility_regime"`
	TrendBias        TrendBias        `json:"trend_bias"`
	MomentumWindow   int              `json:"momentum_window"`
	MomentumValue    float64          `json:"momentum_value"`
}

// NarrativeReport is the composed prose for one snapshot.
type NarrativeReport struct {
	Summary    NarrativeSummary `json:"summary"`
	Insights   []string         `json:"insights"`
	Disclaimer string           `json:"disclaimer"`
}

// Text renders the report as plain prose.
func (r NarrativeReport) Text() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Volatility Regime: %s\n", r.Summary.VolatilityRegime))
	b.WriteString(fmt.Sprintf("Trend Bias: %s\n", r.Summary.TrendBias))
	b.WriteString(fmt.Sprintf("Momentum (RSI %d): %.1f\n", r.Summary.MomentumWindow, r.Summary.MomentumValue))
	for _, p := range r.Insights {
		b.WriteString("\n")
		b.WriteString(p)
		b.WriteString("\n")
	}
	if r.Disclaimer != "" {
		b.WriteString("\n")
		b.WriteString(r.Disclaimer)
		b.WriteString("\n")
	}
	return b.String()
}
