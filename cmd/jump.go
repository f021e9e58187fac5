package cmd

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/inovacc/repojump/internal/cli"
	"github.com/inovacc/repojump/internal/session"
	"github.com/inovacc/repojump/internal/store"
)

var jumpCmd = &cobra.Command{
	Use:   "jump",
	Short: "Interactively pick a repository and open it in the browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		st, err := store.Open()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		orch, err := pickerOrchestrator(cmd, st, logger)
		if err != nil {
			return err
		}

		m := cli.NewPicker(cmd.Context(), st, orch, logger)

		p := tea.NewProgram(m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		picker := finalModel.(cli.PickerModel)
		if url := picker.Chosen(); url != "" {
			logger.Debug("opening repository", slog.String("url", url))

			return browser.OpenURL(url)
		}

		return nil
	},
}

// pickerOrchestrator returns a real syncer when a token resolves. Without
// a token the picker can still browse an already-warm cache.
func pickerOrchestrator(cmd *cobra.Command, st store.Store, logger *slog.Logger) (session.Orchestrator, error) {
	sy, err := newSyncer(cmd.Context(), st, logger)
	if err == nil {
		return sy, nil
	}

	cached, cerr := st.Suggestions()
	if cerr == nil && len(cached) > 0 {
		logger.Debug("no token; using cached suggestions only")

		return noSync{}, nil
	}

	return nil, err
}

func init() {
	rootCmd.AddCommand(jumpCmd)
}
