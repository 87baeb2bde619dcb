package notifier

import (
	"fmt"
	"html"
	"math"
	"strings"

	"SignalSentinel/internal/pipeline"
)

var regimeEmoji = map[string]string{
	"Low":    "🟢",
	"Medium": "🟡",
	"High":   "🔴",
}

// FormatReport formats a run as a Telegram HTML message.
func FormatReport(res *pipeline.Result) string {
	var b strings.Builder

	title := "SignalSentinel"
	if res.Series.Symbol != "" {
		title += " | " + html.EscapeString(res.Series.Symbol)
	}
	if bar, ok := res.Series.Last(); ok {
		title += " | " + bar.Date.Format("2006-01-02")
	}
	b.WriteString(fmt.Sprintf("📊 <b>%s</b>\n\n", title))

	b.WriteString(FormatSnapshot(res))
	b.WriteString("\n")

	for _, p := range res.Report.Insights {
		b.WriteString(html.EscapeString(p))
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("<i>%s</i>", html.EscapeString(res.Report.Disclaimer)))
	return b.String()
}

// FormatSnapshot formats the classified regimes and latest values.
func FormatSnapshot(res *pipeline.Result) string {
	snap := res.Snapshot
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Mode: %s (%d bars)\n", res.Windows.Mode.Label(), res.Series.Len()))
	if bar, ok := res.Series.Last(); ok {
		b.WriteString(fmt.Sprintf("Close: %.2f (range %.2f - %.2f)\n", bar.Close, res.Range.Low, res.Range.High))
	}
	b.WriteString(fmt.Sprintf("%s <b>Volatility Regime:</b> %s", regimeEmoji[string(snap.VolatilityRegime)], snap.VolatilityRegime))
	if !math.IsNaN(snap.LatestVolatility) {
		b.WriteString(fmt.Sprintf(" (%.4f)", snap.LatestVolatility))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("<b>Trend Bias:</b> %s\n", snap.TrendBias))
	b.WriteString(fmt.Sprintf("<b>Momentum (RSI %d):</b> %.1f %s\n", snap.MomentumWindow, snap.LatestMomentum, snap.MomentumState))
	return b.String()
}

// FormatError formats a failed run.
func FormatError(err error) string {
	return fmt.Sprintf("❌ <b>Run failed</b>\n\n%s", html.EscapeString(err.Error()))
}
