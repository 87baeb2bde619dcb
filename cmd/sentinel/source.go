package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/config"
	"SignalSentinel/internal/model"
)

// openSource builds the configured source. release frees any handle it holds.
func openSource(cfg *config.Config) (src collector.Source, release func(), err error) {
	noop := func() {}
	switch cfg.Source.Kind {
	case config.SourceCSV:
		return collector.NewCSVSource(cfg.Source.CSVPath, cfg.Source.Symbol), noop, nil
	case config.SourceSQLite:
		s, err := collector.NewSQLiteSource(cfg.Source.SQLitePath, cfg.Source.Table, cfg.Source.Symbol)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { s.Close() }, nil
	case config.SourceMock:
		return &collector.MockSource{Symbol: cfg.Source.Symbol, BasePrice: 100, Count: 150}, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}

// toggleFlags registers --no-sma, --no-ema, --no-rsi and --no-volume.
type toggleFlags struct {
	noSMA, noEMA, noRSI, noVolume bool
}

func (f *toggleFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noSMA, "no-sma", false, "hide moving averages")
	cmd.Flags().BoolVar(&f.noEMA, "no-ema", false, "hide the EMA")
	cmd.Flags().BoolVar(&f.noRSI, "no-rsi", false, "hide momentum")
	cmd.Flags().BoolVar(&f.noVolume, "no-volume", false, "hide volume")
}

// apply turns off whatever the flags hide on top of the configured toggles.
func (f *toggleFlags) apply(t model.DisplayToggles) model.DisplayToggles {
	if f.noSMA {
		t.MovingAverages = false
	}
	if f.noEMA {
		t.EMA = false
	}
	if f.noRSI {
		t.Momentum = false
	}
	if f.noVolume {
		t.Volume = false
	}
	return t
}
