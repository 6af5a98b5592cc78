// Package savedata keeps user settings between runs as JSON items in the
// platform data directory. It has no dependencies on ebitengine.
package savedata

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// Settings represents the settings data stored on disk
type Settings struct {
	Speed      float64 `json:"speed"`
	ShowPoints bool    `json:"showPoints"`
}

// ItemStore is the subset of *gdata.Manager the store needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes one settings item. A nil *Store is valid and
// behaves as if nothing was ever saved.
type Store struct {
	items ItemStore
	key   string
}

// Open creates a gdata backed store for appName.
func Open(appName, key string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata for %s: %w", appName, err)
	}
	return New(m, key), nil
}

func New(items ItemStore, key string) *Store {
	return &Store{items: items, key: key}
}

// Load returns nil settings when nothing has been saved yet.
func (s *Store) Load() (*Settings, error) {
	if s == nil {
		return nil, nil
	}

	data, err := s.items.LoadItem(s.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.key, err)
	}
	return &settings, nil
}

func (s *Store) Save(settings Settings) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", s.key, err)
	}
	if err := s.items.SaveItem(s.key, data); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}
