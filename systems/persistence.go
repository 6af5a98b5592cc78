package systems

import (
	"log"

	"github.com/automoto/pathtrace/components"
	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/shared/savedata"
)

var settingsStore *savedata.Store

// InitPersistence opens the gdata backed settings store
func InitPersistence() error {
	s, err := savedata.Open(cfg.Persistence.AppName, cfg.Persistence.SettingsKey)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	settingsStore = s
	return nil
}

// LoadSettings loads settings from disk. Without persistence it returns nil.
func LoadSettings() (*savedata.Settings, error) {
	return settingsStore.Load()
}

// SaveCurrentSettings saves the persisted subset of the settings component
func SaveCurrentSettings(s *components.SettingsData) error {
	err := settingsStore.Save(savedata.Settings{
		Speed:      s.Speed,
		ShowPoints: s.ShowPoints,
	})
	if err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
	return err
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		Speed:           cfg.Trace.DefaultSpeed,
		MinPointSpacing: cfg.Trace.MinPointSpacing,
		ShowPoints:      cfg.Debug.ShowPoints,
	}
}

// MergeSavedSettings overlays saved values on base. Out of range speeds are
// clamped. The points overlay stays on if either side enables it.
func MergeSavedSettings(base components.SettingsData, saved *savedata.Settings) components.SettingsData {
	if saved == nil {
		return base
	}
	if saved.Speed > 0 {
		base.Speed = cfg.ClampSpeed(saved.Speed)
	}
	base.ShowPoints = base.ShowPoints || saved.ShowPoints
	return base
}
