package calculator

import "SignalSentinel/internal/model"

// WindowTiers maps available history to indicator windows, checked in order.
var WindowTiers = []struct {
	MinBars int
	Windows model.WindowConfig
}{
	{100, model.WindowConfig{ShortMA: 20, LongMA: 50, EMA: 20, Momentum: 14, Volatility: 20, Mode: model.ModeProduction}},
	{60, model.WindowConfig{ShortMA: 14, LongMA: 30, EMA: 14, Momentum: 10, Volatility: 14, Mode: model.ModeReducedHistory}},
}

// DemoWindows is used when no tier matches.
var DemoWindows = model.WindowConfig{ShortMA: 3, LongMA: 5, EMA: 3, Momentum: 3, Volatility: 3, Mode: model.ModeDemo}

// SelectWindows picks the window preset for a series of barCount bars.
func SelectWindows(barCount int) model.WindowConfig {
	for _, t := range WindowTiers {
		if barCount >= t.MinBars {
			return t.Windows
		}
	}
	return DemoWindows
}
