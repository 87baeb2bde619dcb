package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"SignalSentinel/internal/config"
)

// app carries state shared by every subcommand.
type app struct {
	cfgPath string
	cfg     *config.Config
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("load .env")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("sentinel failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "sentinel",
		Short:         "Adaptive signal engine for daily OHLCV series",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", config.Path(), "path to config YAML")

	root.AddCommand(reportCmd(a), serveCmd(a), watchCmd(a), importCmd(a))
	return root
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.Level())
	a.cfg = cfg
	log.Debug().Str("config", a.cfgPath).Str("source", cfg.Source.Kind).Msg("config loaded")
	return nil
}
