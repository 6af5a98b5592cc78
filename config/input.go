package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical board action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionStop
	ActionTogglePoints
	ActionNextPreset
	ActionPreset1
	ActionPreset2
	ActionPreset3
	ActionPreset4
	ActionPreset5
	ActionPreset6
	ActionPreset7
	ActionPreset8
	ActionPreset9
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings. Keys that can be typed into the speed
// field are never bound.
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionStop: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionTogglePoints: {
				Keys: []ebiten.Key{ebiten.KeyF10},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionNextPreset: {
				Keys: []ebiten.Key{ebiten.KeyPageDown},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
		},
	}

	presetKeys := []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3,
		ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9,
	}
	for i, key := range presetKeys {
		Input.Bindings[ActionPreset1+ActionID(i)] = InputBinding{Keys: []ebiten.Key{key}}
	}
}

// PresetSlot returns the zero-based preset index bound to id.
func PresetSlot(id ActionID) (int, bool) {
	if id < ActionPreset1 || id > ActionPreset9 {
		return 0, false
	}
	return int(id - ActionPreset1), true
}
