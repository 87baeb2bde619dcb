// Package render turns a pipeline result into the chart payload and the
// terminal panel. Display toggles select what is shown; they never feed back
// into computation.
package render

import (
	"math"

	"SignalSentinel/internal/calculator"
	"SignalSentinel/internal/classifier"
	"SignalSentinel/internal/model"
	"SignalSentinel/internal/pipeline"
)

const dateLayout = "2006-01-02"

// MomentumPanel is the oscillator sub-chart with its guide levels.
type MomentumPanel struct {
	Window     int        `json:"window"`
	Values     []*float64 `json:"values"`
	Overbought float64    `json:"overbought"`
	Oversold   float64    `json:"oversold"`
}

// Chart is the JSON-ready chart payload. Undefined values encode as null.
type Chart struct {
	Symbol    string               `json:"symbol,omitempty"`
	Mode      model.Mode           `json:"mode"`
	ModeLabel string               `json:"mode_label"`
	Windows   model.WindowConfig   `json:"windows"`
	Toggles   model.DisplayToggles `json:"toggles"`
	Dates     []string             `json:"dates"`
	Open      []float64            `json:"open"`
	High      []float64            `json:"high"`
	Low       []float64            `json:"low"`
	Close     []float64            `json:"close"`
	Volume    []int64              `json:"volume,omitempty"`
	ShortMA   []*float64           `json:"short_ma,omitempty"`
	LongMA    []*float64           `json:"long_ma,omitempty"`
	EMA       []*float64           `json:"ema,omitempty"`
	Momentum  *MomentumPanel       `json:"momentum,omitempty"`
	Range     calculator.Range     `json:"range"`
}

// NewChart builds the chart payload for res, including only toggled-on series.
func NewChart(res *pipeline.Result, toggles model.DisplayToggles) Chart {
	bars := res.Series.Bars
	c := Chart{
		Symbol:    res.Series.Symbol,
		Mode:      res.Windows.Mode,
		ModeLabel: res.Windows.Mode.Label(),
		Windows:   res.Windows,
		Toggles:   toggles,
		Dates:     make([]string, len(bars)),
		Open:      make([]float64, len(bars)),
		High:      make([]float64, len(bars)),
		Low:       make([]float64, len(bars)),
		Close:     make([]float64, len(bars)),
		Range:     res.Range,
	}
	for i, b := range bars {
		c.Dates[i] = b.Date.Format(dateLayout)
		c.Open[i] = b.Open
		c.High[i] = b.High
		c.Low[i] = b.Low
		c.Close[i] = b.Close
	}

	ind := res.Indicators
	if toggles.MovingAverages {
		c.ShortMA = nullable(ind.ShortMA)
		c.LongMA = nullable(ind.LongMA)
	}
	if toggles.EMA {
		c.EMA = nullable(ind.EMA)
	}
	if toggles.Momentum {
		c.Momentum = &MomentumPanel{
			Window:     res.Windows.Momentum,
			Values:     nullable(ind.Momentum),
			Overbought: classifier.OverboughtLevel,
			Oversold:   classifier.OversoldLevel,
		}
	}
	if toggles.Volume {
		c.Volume = make([]int64, len(bars))
		for i, b := range bars {
			c.Volume[i] = b.Volume
		}
	}
	return c
}

// Snapshot is the JSON form of model.SignalSnapshot with a nullable volatility.
type Snapshot struct {
	VolatilityRegime model.VolatilityRegime `json:"volatility_regime"`
	TrendBias        model.TrendBias        `json:"trend_bias"`
	MomentumState    model.MomentumState    `json:"momentum_state"`
	LatestMomentum   *float64               `json:"latest_momentum"`
	LatestVolatility *float64               `json:"latest_volatility"`
	MomentumWindow   int                    `json:"momentum_window"`
	Mode             model.Mode             `json:"mode"`
}

// NewSnapshot converts the classified snapshot of res.
func NewSnapshot(res *pipeline.Result) Snapshot {
	s := res.Snapshot
	return Snapshot{
		VolatilityRegime: s.VolatilityRegime,
		TrendBias:        s.TrendBias,
		MomentumState:    s.MomentumState,
		LatestMomentum:   value(s.LatestMomentum),
		LatestVolatility: value(s.LatestVolatility),
		MomentumWindow:   s.MomentumWindow,
		Mode:             res.Windows.Mode,
	}
}

// Report bundles everything the API and the --json CLI output return.
type Report struct {
	Snapshot  Snapshot              `json:"snapshot"`
	Narrative model.NarrativeReport `json:"narrative"`
	Text      string                `json:"text"`
	Chart     Chart                 `json:"chart"`
}

// NewReport builds the full report payload.
func NewReport(res *pipeline.Result, toggles model.DisplayToggles) Report {
	return Report{
		Snapshot:  NewSnapshot(res),
		Narrative: res.Report,
		Text:      res.Report.Text(),
		Chart:     NewChart(res, toggles),
	}
}

func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = value(v)
	}
	return out
}

func value(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
