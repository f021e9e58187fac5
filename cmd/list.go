package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/repojump/internal/cli"
	"github.com/inovacc/repojump/internal/match"
	"github.com/inovacc/repojump/internal/session"
	"github.com/inovacc/repojump/internal/store"
)

var listLimit int

// printEmitter renders one session exchange as plain output.
type printEmitter struct {
	w io.Writer
}

func (p *printEmitter) SetDefaultSuggestion(text string) {
	_, _ = fmt.Fprintln(p.w, cli.RenderHighlights(text))
}

func (p *printEmitter) SuggestResults(results []match.Annotated) {
	for _, r := range results {
		_, _ = fmt.Fprintf(p.w, "%s  %s\n", cli.RenderHighlights(r.Display), r.Content)
	}
}

func (p *printEmitter) Navigate(url string) {}

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print the ranked suggestions for a query",
	Long: `Ranks the cached repository list against the query and prints the results,
best match first. With no query the cache order stands.`,
	Args: cobra.MaximumNArgs(1),
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

		query := ""
		if len(args) > 0 {
			query = strings.TrimSpace(args[0])
		}

		sess := session.New(st, orch, &printEmitter{w: cmd.OutOrStdout()}, logger)
		sess.SetLimit(listLimit)
		sess.Start(cmd.Context())
		sess.QueryChanged(cmd.Context(), query)

		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", match.DefaultLimit, "maximum number of results")
	rootCmd.AddCommand(listCmd)
}
