// Package scheduler drives periodic re-syncs at the configured interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/inovacc/repojump/internal/model"
)

// Syncer triggers a sync run.
type Syncer interface {
	Sync(ctx context.Context, notifyOnSuccess bool) ([]model.Suggestion, error)
}

// Settings exposes the persisted configuration.
type Settings interface {
	Config() (*model.Config, error)
}

type Scheduler struct {
	settings Settings
	syncer   Syncer
	logger   *slog.Logger
}

func NewScheduler(settings Settings, syncer Syncer, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		settings: settings,
		syncer:   syncer,
		logger:   logger,
	}
}

// Run re-syncs until the context is cancelled. The interval is re-read
// from the settings before every cycle so a config change applies on the
// next cycle without a restart; an interval of zero stops the loop.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		cfg, err := s.settings.Config()
		if err != nil {
			return err
		}

		interval := time.Duration(cfg.AutoSyncIntervalMinutes) * time.Minute
		if interval <= 0 {
			s.logger.Info("auto-sync disabled")

			return nil
		}

		s.logger.Debug("next sync scheduled", slog.Duration("in", interval))

		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")

			return ctx.Err()
		case <-time.After(interval):
			if _, err := s.syncer.Sync(ctx, false); err != nil {
				s.logger.Error("scheduled sync failed", slog.String("error", err.Error()))
			}
		}
	}
}
