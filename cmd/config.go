package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inovacc/repojump/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change repojump settings",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		cfg, err := st.Config()
		if err != nil {
			return err
		}

		token := "(not set)"
		if cfg.Token != "" {
			token = "(set)"
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "token:             %s\n", token)
		_, _ = fmt.Fprintf(out, "sync interval:     %d minutes\n", cfg.AutoSyncIntervalMinutes)
		_, _ = fmt.Fprintf(out, "include archived:  %t\n", cfg.IncludeArchived)

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Changes a setting and persists it. Keys:

  token             GitHub access token
  interval          auto-sync interval in minutes (0 disables)
  include-archived  whether archived repositories are suggested (true/false)

Changing the token or the archived filter re-syncs the cache right away.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		st, err := store.Open()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		cfg, err := st.Config()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		resync := false

		switch key {
		case "token":
			cfg.Token = value
			resync = true

		case "interval":
			minutes, err := strconv.Atoi(value)
			if err != nil || minutes < 0 {
				return fmt.Errorf("interval must be a non-negative number of minutes, got %q", value)
			}

			cfg.AutoSyncIntervalMinutes = minutes

		case "include-archived":
			include, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("include-archived must be true or false, got %q", value)
			}

			cfg.IncludeArchived = include
			resync = true

		default:
			return fmt.Errorf("unknown setting %q", key)
		}

		if err := st.SaveConfig(cfg); err != nil {
			return err
		}

		// A token or filter change invalidates the cached list.
		if resync {
			sy, err := newSyncer(cmd.Context(), st, logger)
			if err != nil {
				return err
			}

			if _, err := sy.Sync(cmd.Context(), true); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
