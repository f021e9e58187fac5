// Package session binds the cache, the orchestrator and the matcher to the
// address-bar style input events of a UI collaborator.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/inovacc/repojump/internal/match"
	"github.com/inovacc/repojump/internal/model"
)

// Emitter is the input surface the session drives.
type Emitter interface {
	// SetDefaultSuggestion sets the inline top-result line.
	SetDefaultSuggestion(text string)

	// SuggestResults provides the ranked results below the default line.
	SuggestResults(results []match.Annotated)

	// Navigate opens the given URL.
	Navigate(url string)
}

// Cache is the session's read view of the local store.
type Cache interface {
	Suggestions() ([]model.Suggestion, error)
}

// Orchestrator triggers a sync when the cache is empty.
type Orchestrator interface {
	Sync(ctx context.Context, notifyOnSuccess bool) ([]model.Suggestion, error)
}

// Session maintains the default-suggestion line for one input session.
type Session struct {
	cache   Cache
	syncer  Orchestrator
	emitter Emitter
	logger  *slog.Logger
	limit   int
}

// New creates a Session with the default result limit.
func New(cache Cache, syncer Orchestrator, emitter Emitter, logger *slog.Logger) *Session {
	return &Session{
		cache:   cache,
		syncer:  syncer,
		emitter: emitter,
		logger:  logger,
		limit:   match.DefaultLimit,
	}
}

// SetLimit overrides the maximum number of results per query.
func (s *Session) SetLimit(limit int) {
	if limit > 0 {
		s.limit = limit
	}
}

// Start warms the cache so results are ready before the first keystroke.
func (s *Session) Start(ctx context.Context) {
	if _, err := s.suggestions(ctx); err != nil {
		s.logger.Warn("cache warm-up failed", slog.String("error", err.Error()))
	}
}

// QueryChanged ranks the cache against the new query text, sets the
// default suggestion from the top result and emits the rest.
func (s *Session) QueryChanged(ctx context.Context, text string) {
	cached, err := s.suggestions(ctx)
	if err != nil {
		s.logger.Warn("suggestion lookup failed", slog.String("error", err.Error()))
	}

	results := match.Match(text, cached, s.limit)
	if len(results) == 0 {
		s.emitter.SetDefaultSuggestion(fmt.Sprintf("no repository matching %q", text))
		s.emitter.SuggestResults(nil)

		return
	}

	s.emitter.SetDefaultSuggestion(results[0].Display)
	s.emitter.SuggestResults(results[1:])
}

// Confirmed resolves the entered text to a destination: an absolute URL is
// opened as-is, otherwise the best cache match wins, otherwise nothing
// happens.
func (s *Session) Confirmed(ctx context.Context, text string) {
	if u, err := url.Parse(text); err == nil && u.IsAbs() && u.Host != "" {
		s.emitter.Navigate(text)

		return
	}

	cached, err := s.suggestions(ctx)
	if err != nil || len(cached) == 0 {
		return
	}

	results := match.Match(text, cached, 1)
	if len(results) == 0 {
		return
	}

	s.emitter.Navigate(results[0].Content)
}

// suggestions reads through the cache, triggering a sync when it is empty.
func (s *Session) suggestions(ctx context.Context) ([]model.Suggestion, error) {
	cached, err := s.cache.Suggestions()
	if err != nil {
		return nil, err
	}

	if len(cached) > 0 {
		return cached, nil
	}

	return s.syncer.Sync(ctx, false)
}
