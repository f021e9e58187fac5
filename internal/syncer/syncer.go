// Package syncer coordinates fetch, archived filtering, cache write and UI
// signalling. At most one sync is in flight system-wide at any time.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/inovacc/repojump/internal/gh"
	"github.com/inovacc/repojump/internal/model"
	"github.com/inovacc/repojump/internal/notify"
)

type state int

const (
	stateIdle state = iota
	stateFetching
)

// Fetcher retrieves the complete remote repository list.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]model.Repository, error)
}

// Cache is the orchestrator's view of the local store.
type Cache interface {
	Config() (*model.Config, error)
	ReplaceSuggestions(suggestions []model.Suggestion) error
}

// Syncer is the sync orchestrator. Its state field makes the single-flight
// invariant explicit instead of an ambient module flag.
type Syncer struct {
	mu    sync.Mutex
	state state

	fetcher Fetcher
	cache   Cache
	ui      notify.Notifier
	logger  *slog.Logger
}

// New creates a Syncer.
func New(fetcher Fetcher, cache Cache, ui notify.Notifier, logger *slog.Logger) *Syncer {
	return &Syncer{
		fetcher: fetcher,
		cache:   cache,
		ui:      ui,
		logger:  logger,
	}
}

// Sync fetches the remote repository list, filters archived repositories
// per the current config, replaces the cache and signals the UI. While a
// sync is in flight, further calls return immediately with no result and
// perform no I/O. On failure the previous cache is left untouched.
func (s *Syncer) Sync(ctx context.Context, notifyOnSuccess bool) ([]model.Suggestion, error) {
	s.mu.Lock()
	if s.state == stateFetching {
		s.mu.Unlock()

		return nil, nil
	}

	s.state = stateFetching
	s.mu.Unlock()

	s.ui.SetSyncControl(notify.ControlDisabled)

	run := uuid.NewString()[:8]
	s.logger.Info("sync started", slog.String("run", run))

	suggestions, err := s.refresh(ctx)

	s.mu.Lock()
	s.state = stateIdle
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, gh.ErrUnauthorized) {
			s.logger.Warn("sync rejected", slog.String("run", run))
			s.ui.Notify(notify.AuthFailed, "GitHub rejected the access token.")
			s.ui.SetSyncControl(notify.ControlNeedsToken)
		} else {
			s.logger.Error("sync failed",
				slog.String("run", run),
				slog.String("error", err.Error()),
			)
			s.ui.Notify(notify.SyncFailed, "Could not refresh the repository list: "+err.Error())
			s.ui.SetSyncControl(notify.ControlEnabled)
		}

		return nil, err
	}

	s.ui.SetSyncControl(notify.ControlEnabled)

	if notifyOnSuccess {
		s.ui.Notify(notify.SyncComplete, fmt.Sprintf("Synced %d repositories.", len(suggestions)))
	}

	s.logger.Info("sync finished",
		slog.String("run", run),
		slog.Int("repos", len(suggestions)),
	)

	return suggestions, nil
}

// refresh performs the fetch → filter → map → cache-write pipeline. Config
// is read at the moment of use so a settings change applies to the next
// sync, never retroactively to one in flight.
func (s *Syncer) refresh(ctx context.Context) ([]model.Suggestion, error) {
	cfg, err := s.cache.Config()
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	repos, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if !cfg.IncludeArchived {
		repos = lo.Filter(repos, func(r model.Repository, _ int) bool {
			return !r.Archived
		})
	}

	suggestions := lo.Map(repos, func(r model.Repository, _ int) model.Suggestion {
		return r.ToSuggestion()
	})

	if err := s.cache.ReplaceSuggestions(suggestions); err != nil {
		return nil, fmt.Errorf("writing cache: %w", err)
	}

	return suggestions, nil
}
