//go:build sqlite

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/inovacc/repojump/internal/model"
	"github.com/inovacc/repojump/internal/params"
)

const (
	slotSuggestions = "suggestions"
	slotConfig      = "config"
)

// SQLite keeps each slot as a single row so writes replace the whole value,
// matching the bolt backend's semantics.
type SQLite struct {
	db *sql.DB
}

func initDB() (Store, error) {
	return NewSQLite(filepath.Join(params.AppdataDir, "repojump.db"))
}

// NewSQLite opens (or creates) a sqlite store at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		name    TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Ping() error {
	return s.db.Ping()
}

func (s *SQLite) readSlot(name string) ([]byte, error) {
	var payload []byte

	err := s.db.QueryRow(`SELECT payload FROM slots WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return payload, err
}

func (s *SQLite) writeSlot(name string, payload []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, payload) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		name, payload,
	)

	return err
}

func (s *SQLite) Suggestions() ([]model.Suggestion, error) {
	payload, err := s.readSlot(slotSuggestions)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		return []model.Suggestion{}, nil
	}

	var out []model.Suggestion
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *SQLite) ReplaceSuggestions(suggestions []model.Suggestion) error {
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}

	data, err := json.Marshal(suggestions)
	if err != nil {
		return err
	}

	return s.writeSlot(slotSuggestions, data)
}

func (s *SQLite) Config() (*model.Config, error) {
	payload, err := s.readSlot(slotConfig)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		defaultCfg := model.DefaultConfig()

		return &defaultCfg, nil
	}

	var cfg model.Config
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (s *SQLite) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return s.writeSlot(slotConfig, data)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
