package model

// Mode names the window preset chosen for the available history.
type Mode string

const (
	ModeProduction     Mode = "Production"
	ModeReducedHistory Mode = "ReducedHistory"
	ModeDemo           Mode = "Demo"
)

// Label is the human-readable form shown next to the chart.
func (m Mode) Label() string {
	if m == ModeReducedHistory {
		return "Reduced History"
	}
	return string(m)
}

// WindowConfig holds the look-back lengths (in bars) for one run.
type WindowConfig struct {
	ShortMA    int  `json:"short_ma"`
	LongMA     int  `json:"long_ma"`
	EMA        int  `json:"ema"`
	Momentum   int  `json:"momentum"`
	Volatility int  `json:"volatility"`
	Mode       Mode `json:"mode"`
}

// IndicatorSeries holds the derived series, aligned index-for-index with the bars.
// Return[0] and Volatility[0] are NaN; every other value is defined.
type IndicatorSeries struct {
	ShortMA    []float64
	LongMA     []float64
	EMA        []float64
	Momentum   []float64
	Return     []float64
	Volatility []float64
}

// Len returns the number of aligned values.
func (s IndicatorSeries) Len() int { return len(s.ShortMA) }

// DisplayToggles selects which indicator families a renderer shows.
// Toggles never change computed values.
type DisplayToggles struct {
	MovingAverages bool `json:"sma" yaml:"show_sma"`
	EMA            bool `json:"ema" yaml:"show_ema"`
	Momentum       bool `json:"rsi" yaml:"show_rsi"`
	Volume         bool `json:"volume" yaml:"show_volume"`
}

// AllVisible returns toggles with every family shown.
func AllVisible() DisplayToggles {
	return DisplayToggles{MovingAverages: true, EMA: true, Momentum: true, Volume: true}
}
