package systems

import (
	"fmt"

	"github.com/automoto/pathtrace/assets"
	"github.com/automoto/pathtrace/trace"
	"github.com/yohamta/donburi/ecs"
)

// PlayPreset draws the named embedded preset centred on the board and starts
// the marker on it.
func PlayPreset(ecs *ecs.ECS, name string) error {
	_, board, ok := getBoard(ecs)
	if !ok {
		return nil
	}
	guide, ok := assets.Guides().Lookup(name)
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	return board.Session.Play(trace.Path(guide.Centered()))
}

// PresetNames lists the embedded presets in hotkey order.
func PresetNames() []string {
	return assets.Guides().Names
}
