//go:build !sqlite

package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/inovacc/repojump/internal/model"
	"github.com/inovacc/repojump/internal/params"
)

const (
	boltBucketSuggestions = "suggestions" // key: "repos" -> ordered Suggestion list JSON
	boltBucketConfig      = "config"      // key: "config" -> Config JSON

	boltKeyRepos  = "repos"
	boltKeyConfig = "config"
)

type Bolt struct {
	db *bbolt.DB
}

func initDB() (Store, error) {
	return NewBolt(filepath.Join(params.AppdataDir, "repojump.bolt"))
}

// NewBolt opens (or creates) a bolt store at the given path.
func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketSuggestions)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) Suggestions() ([]model.Suggestion, error) {
	var out []model.Suggestion

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketSuggestions))

		v := bucket.Get([]byte(boltKeyRepos))
		if v == nil {
			out = []model.Suggestion{}

			return nil
		}

		return json.Unmarshal(v, &out)
	})

	return out, err
}

func (b *Bolt) ReplaceSuggestions(suggestions []model.Suggestion) error {
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}

	data, err := json.Marshal(suggestions)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketSuggestions))

		return bucket.Put([]byte(boltKeyRepos), data)
	})
}

func (b *Bolt) Config() (*model.Config, error) {
	var cfg *model.Config

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))

		v := bucket.Get([]byte(boltKeyConfig))
		if v == nil {
			defaultCfg := model.DefaultConfig()
			cfg = &defaultCfg

			return nil
		}

		var c model.Config
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}

		cfg = &c

		return nil
	})

	return cfg, err
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))

		return bucket.Put([]byte(boltKeyConfig), data)
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
