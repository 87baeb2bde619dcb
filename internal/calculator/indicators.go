package calculator

import "SignalSentinel/internal/model"

// ComputeIndicators derives every indicator series for the bars under cfg.
// An empty series produces empty outputs.
func ComputeIndicators(series model.PriceSeries, cfg model.WindowConfig) model.IndicatorSeries {
	closes := series.Closes()
	returns := ReturnSeries(closes)
	return model.IndicatorSeries{
		ShortMA:    SMASeries(closes, cfg.ShortMA),
		LongMA:     SMASeries(closes, cfg.LongMA),
		EMA:        EMASeries(closes, cfg.EMA),
		Momentum:   RSISeries(closes, cfg.Momentum),
		Return:     returns,
		Volatility: VolatilitySeries(returns, cfg.Volatility),
	}
}
