package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"SignalSentinel/internal/notifier"
	"SignalSentinel/internal/scheduler"
)

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Deliver scheduled reports to Telegram and answer chat commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if err := cfg.ValidateTelegram(); err != nil {
				return err
			}
			src, closeSrc, err := openSource(cfg)
			if err != nil {
				return err
			}
			defer closeSrc()
			log.Info().Str("source", src.Name()).Msg("data source ready")

			ctx := cmd.Context()
			tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

			sched := scheduler.NewScheduler(ctx, src, tn)
			if err := sched.Register(cfg.Schedule.ReportCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			go tn.StartPolling(ctx, sched.HandleCommand)
			log.Info().Msg("telegram polling started")

			if cfg.Schedule.RunOnStart {
				log.Info().Msg("run_on_start enabled, executing report task now")
				go sched.RunNow()
			}

			log.Info().Msg("SignalSentinel is running. Press Ctrl+C to stop.")
			<-ctx.Done()
			log.Info().Msg("shutdown signal received, stopping...")
			return nil
		},
	}
}
