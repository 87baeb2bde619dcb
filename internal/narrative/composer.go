// Package narrative turns a classified snapshot into report prose.
// It never looks at raw indicator values; every branch is keyed by an enum.
package narrative

import (
	"fmt"
	"strings"

	"SignalSentinel/internal/model"
)

// RegimePhrases describes what each volatility regime suggests.
var RegimePhrases = map[model.VolatilityRegime]string{
	model.VolatilityLow:    "stable conditions with controlled risk",
	model.VolatilityMedium: "moderate risk with selective opportunities",
	model.VolatilityHigh:   "heightened uncertainty requiring caution",
}

// MomentumPhrases describes each momentum state.
var MomentumPhrases = map[model.MomentumState]string{
	model.MomentumOverbought: "overbought conditions",
	model.MomentumOversold:   "oversold conditions",
	model.MomentumNeutral:    "balanced participation",
}

// BiasPhrases names each trend bias inside a sentence.
var BiasPhrases = map[model.TrendBias]string{
	model.BiasBullish: "bullish bias",
	model.BiasBearish: "bearish bias",
}

const (
	supportNotice = "This system provides decision support only and does not execute trades."
	// Disclaimer closes every report.
	Disclaimer = "Paper trading only. No financial advice."
)

// Compose assembles the report for snap.
func Compose(snap model.SignalSnapshot) model.NarrativeReport {
	regime := fmt.Sprintf(
		"The market is operating in a %s volatility regime, suggesting %s.",
		strings.ToLower(string(snap.VolatilityRegime)), lookup(RegimePhrases, snap.VolatilityRegime),
	)
	trend := fmt.Sprintf(
		"Trend structure indicates a %s, while momentum signals show %s.",
		lookup(BiasPhrases, snap.TrendBias), lookup(MomentumPhrases, snap.MomentumState),
	)
	return model.NarrativeReport{
		Summary: model.NarrativeSummary{
			VolatilityRegime: snap.VolatilityRegime,
			TrendBias:        snap.TrendBias,
			MomentumWindow:   snap.MomentumWindow,
			MomentumValue:    snap.LatestMomentum,
		},
		Insights:   []string{regime, trend, supportNotice},
		Disclaimer: Disclaimer,
	}
}

func lookup[K comparable](table map[K]string, key K) string {
	if p, ok := table[key]; ok {
		return p
	}
	return fmt.Sprint(key)
}
