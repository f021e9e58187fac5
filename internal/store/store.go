package store

import (
	"github.com/inovacc/repojump/internal/model"
)

// Store is the local cache slot for the suggestion list plus the persisted
// user settings. The suggestion sequence is always read and written as a
// whole value; there is no partial update.
type Store interface {
	Ping() error

	// Suggestions returns the cached ordered suggestion sequence. An empty
	// cache yields an empty slice, never an error.
	Suggestions() ([]model.Suggestion, error)

	// ReplaceSuggestions overwrites the cached sequence in full.
	ReplaceSuggestions(suggestions []model.Suggestion) error

	// Config returns the persisted settings, falling back to defaults when
	// nothing has been saved yet.
	Config() (*model.Config, error)

	// SaveConfig persists the settings.
	SaveConfig(cfg *model.Config) error

	Close() error
}

// Open opens the default store backend in the application data directory.
func Open() (Store, error) {
	return initDB()
}
