package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/notifier"
	"SignalSentinel/internal/pipeline"
)

// Notifier delivers formatted reports.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// MaxRetries bounds delivery attempts per report.
const MaxRetries = 3

// Scheduler re-runs the pipeline on a cron expression and delivers the report.
// Runs share nothing; each reloads the source.
type Scheduler struct {
	Cron     *cron.Cron
	Source   collector.Source
	Notifier Notifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler. Cron expressions include seconds.
func NewScheduler(ctx context.Context, src collector.Source, n Notifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Source:   src,
		Notifier: n,
		Ctx:      ctx,
	}
}

// Register adds the report task.
func (s *Scheduler) Register(reportCron string) error {
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	log.Info().Str("cron", reportCron).Msg("report task registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the report task immediately (manual trigger / run on start).
func (s *Scheduler) RunNow() {
	s.reportTask()
}

func (s *Scheduler) reportTask() {
	log.Info().Str("source", s.Source.Name()).Msg("running report task")
	res, err := pipeline.Run(s.Ctx, s.Source)
	if err != nil {
		log.Error().Err(err).Msg("report run failed")
		s.trySend(notifier.FormatError(err))
		return
	}
	log.Info().
		Str("regime", string(res.Snapshot.VolatilityRegime)).
		Str("bias", string(res.Snapshot.TrendBias)).
		Str("momentum", string(res.Snapshot.MomentumState)).
		Msg("report computed")
	s.trySend(notifier.FormatReport(res))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	switch command {
	case "/report":
		res, err := pipeline.Run(ctx, s.Source)
		if err != nil {
			return notifier.FormatError(err)
		}
		return notifier.FormatReport(res)
	case "/snapshot":
		res, err := pipeline.Run(ctx, s.Source)
		if err != nil {
			return notifier.FormatError(err)
		}
		return notifier.FormatSnapshot(res)
	default:
		return "Available commands:\n• /report\n• /snapshot"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, MaxRetries); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
