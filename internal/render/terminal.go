package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"SignalSentinel/internal/model"
	"SignalSentinel/internal/pipeline"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	mutedStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	regimeColor = map[model.VolatilityRegime]lipgloss.Color{
		model.VolatilityLow:    "42",
		model.VolatilityMedium: "214",
		model.VolatilityHigh:   "196",
	}
	biasColor = map[model.TrendBias]lipgloss.Color{
		model.BiasBullish: "42",
		model.BiasBearish: "196",
	}
)

// Terminal renders res as a bordered panel. Toggles pick which indicator
// lines appear in the latest-values block.
func Terminal(res *pipeline.Result, toggles model.DisplayToggles) string {
	w := res.Windows
	snap := res.Snapshot
	last := res.Indicators.Len() - 1

	title := "SignalSentinel"
	if res.Series.Symbol != "" {
		title += " · " + res.Series.Symbol
	}

	var lines []string
	lines = append(lines, titleStyle.Render(title))
	lines = append(lines, fmt.Sprintf("%s %s (%d bars)", labelStyle.Render("Mode:"), w.Mode.Label(), res.Series.Len()))
	lines = append(lines, fmt.Sprintf("%s SMA %d/%d · EMA %d · RSI %d · Vol %d",
		labelStyle.Render("Windows:"), w.ShortMA, w.LongMA, w.EMA, w.Momentum, w.Volatility))

	if bar, ok := res.Series.Last(); ok {
		lines = append(lines, fmt.Sprintf("%s %s close %.2f · range %.2f-%.2f (%.0f%%)",
			labelStyle.Render("Latest:"), bar.Date.Format(dateLayout), bar.Close,
			res.Range.Low, res.Range.High, res.Range.Position*100))
		if toggles.Volume {
			lines = append(lines, fmt.Sprintf("%s %d", labelStyle.Render("Volume:"), bar.Volume))
		}
	}
	if last >= 0 {
		ind := res.Indicators
		if toggles.MovingAverages {
			lines = append(lines, fmt.Sprintf("%s %.2f / %.2f", labelStyle.Render("SMA short/long:"), ind.ShortMA[last], ind.LongMA[last]))
		}
		if toggles.EMA {
			lines = append(lines, fmt.Sprintf("%s %.2f", labelStyle.Render("EMA:"), ind.EMA[last]))
		}
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Volatility Regime:"),
		lipgloss.NewStyle().Foreground(regimeColor[snap.VolatilityRegime]).Render(string(snap.VolatilityRegime))+volatilityNote(snap.LatestVolatility)))
	lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Trend Bias:"),
		lipgloss.NewStyle().Foreground(biasColor[snap.TrendBias]).Render(string(snap.TrendBias))))
	if toggles.Momentum {
		lines = append(lines, fmt.Sprintf("%s %.1f (%s)",
			labelStyle.Render(fmt.Sprintf("Momentum (RSI %d):", snap.MomentumWindow)), snap.LatestMomentum, snap.MomentumState))
	}

	for _, p := range res.Report.Insights {
		lines = append(lines, "", p)
	}
	lines = append(lines, "", mutedStyle.Render(res.Report.Disclaimer))

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func volatilityNote(v float64) string {
	if math.IsNaN(v) {
		return " (undefined)"
	}
	return fmt.Sprintf(" (σ %.4f)", v)
}
