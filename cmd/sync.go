package cmd

import (
	"github.com/spf13/cobra"

	"github.com/inovacc/repojump/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the cached repository list",
	Long: `Fetches your complete repository list from GitHub and replaces the local
cache. The previous cache is kept when the fetch fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		st, err := store.Open()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		sy, err := newSyncer(cmd.Context(), st, logger)
		if err != nil {
			return err
		}

		if _, err := sy.Sync(cmd.Context(), true); err != nil {
			// The notifier already reported the failure.
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
