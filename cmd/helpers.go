package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/inovacc/repojump/internal/auth"
	"github.com/inovacc/repojump/internal/gh"
	"github.com/inovacc/repojump/internal/model"
	"github.com/inovacc/repojump/internal/notify"
	"github.com/inovacc/repojump/internal/store"
	"github.com/inovacc/repojump/internal/syncer"
)

const tokenHelp = `Set one with:
  repojump config set token <token>
or export GITHUB_TOKEN. A token stored by the gh CLI is picked up
automatically.`

// resolveToken finds the access token: flag, environment, gh CLI
// credentials, then the persisted config, in that order.
func resolveToken(st store.Store) (string, error) {
	result, err := auth.NewResolver("GitHub").
		WithFlagValue(tokenFlag).
		WithEnvs("REPOJUMP_TOKEN", "GITHUB_TOKEN", "GH_TOKEN").
		WithProvider(auth.FromGHCLI()).
		WithProvider(func() (string, string, error) {
			cfg, err := st.Config()
			if err != nil {
				return "", "", err
			}

			if cfg.Token != "" {
				return cfg.Token, "config", nil
			}

			return "", "", nil
		}).
		WithHelpMessage(tokenHelp).
		Resolve()
	if err != nil {
		return "", err
	}

	return result.Token, nil
}

// newSyncer wires the fetcher, the store and the terminal notifier into a
// sync orchestrator.
func newSyncer(ctx context.Context, st store.Store, logger *slog.Logger) (*syncer.Syncer, error) {
	token, err := resolveToken(st)
	if err != nil {
		return nil, err
	}

	client := gh.NewClient(ctx, token, logger)

	return syncer.New(client, st, notify.NewTerminal(os.Stderr), logger), nil
}

// noSync is used when no token is available but the cache is already warm;
// the session then never needs a fetch.
type noSync struct{}

func (noSync) Sync(ctx context.Context, notifyOnSuccess bool) ([]model.Suggestion, error) {
	return nil, nil
}
