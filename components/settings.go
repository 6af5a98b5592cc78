package components

import "github.com/yohamta/donburi"

// SettingsData holds user-facing settings and the last status message shown by
// the speed panel.
type SettingsData struct {
	Speed           float64
	MinPointSpacing float64
	Status          string
	StatusIsError   bool
	ShowPoints      bool
}

var Settings = donburi.NewComponentType[SettingsData]()
