package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/repojump/internal/application"
)

var (
	verbose   bool
	tokenFlag string
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Jump to your GitHub repositories from the terminal",
	Long: `Repojump keeps a local cache of your GitHub repository list and ranks it
against whatever you type, so you can jump straight to a repository in the
browser. Run 'repojump jump' for the interactive picker, 'repojump sync' to
refresh the cache, or 'repojump watch' to keep it fresh in the background.`,
	Version:       application.Version,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "GitHub access token (overrides env and stored config)")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
