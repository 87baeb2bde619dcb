package classifier

import (
	"fmt"

	"SignalSentinel/internal/model"
)

// VolatilityRules maps the latest volatility to a regime, checked in order.
// A reading matching no rule (including an undefined one) is VolatilityHigh.
var VolatilityRules = []struct {
	Below  float64
	Regime model.VolatilityRegime
}{
	{0.01, model.VolatilityLow},
	{0.025, model.VolatilityMedium},
}

// Bound direction for a momentum rule.
type Bound int

const (
	Above Bound = iota
	Below
)

// Oscillator guide levels shared with chart overlays.
const (
	OverboughtLevel = 70.0
	OversoldLevel   = 30.0
)

// MomentumRules maps the latest oscillator value to a state, checked in order.
// Bounds are strict: 30 and 70 themselves are Neutral.
var MomentumRules = []struct {
	Bound     Bound
	Threshold float64
	State     model.MomentumState
}{
	{Above, OverboughtLevel, model.MomentumOverbought},
	{Below, OversoldLevel, model.MomentumOversold},
}

// DefaultMomentum applies when no momentum rule matches.
const DefaultMomentum = model.MomentumNeutral

// Classify reads the last value of each series and buckets it.
func Classify(ind model.IndicatorSeries, cfg model.WindowConfig) (model.SignalSnapshot, error) {
	if ind.Len() == 0 {
		return model.SignalSnapshot{}, fmt.Errorf("classify latest bar: %w", model.ErrInsufficientData)
	}
	last := ind.Len() - 1

	vol := ind.Volatility[last]
	momentum := ind.Momentum[last]
	return model.SignalSnapshot{
		VolatilityRegime: volatilityRegime(vol),
		TrendBias:        trendBias(ind.EMA[last], ind.ShortMA[last]),
		MomentumState:    momentumState(momentum),
		LatestMomentum:   momentum,
		LatestVolatility: vol,
		MomentumWindow:   cfg.Momentum,
	}, nil
}

func volatilityRegime(v float64) model.VolatilityRegime {
	for _, r := range VolatilityRules {
		if v < r.Below {
			return r.Regime
		}
	}
	return model.VolatilityHigh
}

// trendBias resolves ties to Bearish.
func trendBias(ema, shortMA float64) model.TrendBias {
	if ema > shortMA {
		return model.BiasBullish
	}
	return model.BiasBearish
}

func momentumState(v float64) model.MomentumState {
	for _, r := range MomentumRules {
		switch r.Bound {
		case Above:
			if v > r.Threshold {
				return r.State
			}
		case Below:
			if v < r.Threshold {
				return r.State
			}
		}
	}
	return DefaultMomentum
}
