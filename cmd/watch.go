package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/inovacc/repojump/internal/scheduler"
	"github.com/inovacc/repojump/internal/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the cache fresh with periodic syncs",
	Long: `Runs an initial sync, then re-syncs at the configured interval until
interrupted. The interval is re-read before every cycle, so a settings
change applies without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := store.Open()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		sy, err := newSyncer(ctx, st, logger)
		if err != nil {
			return err
		}

		if _, err := sy.Sync(ctx, false); err != nil {
			logger.Warn("initial sync failed, will retry on schedule", slog.String("error", err.Error()))
		}

		sched := scheduler.NewScheduler(st, sy, logger)

		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
