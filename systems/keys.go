package systems

import (
	"log"

	cfg "github.com/automoto/pathtrace/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKeys turns board actions into session calls. Actions are ignored
// while a gesture is being drawn.
func UpdateKeys(ecs *ecs.ECS) {
	_, board, ok := getBoard(ecs)
	if !ok || board.Session.Drawing() {
		return
	}
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionStop).JustPressed {
		board.Session.Stop()
	}
	if GetAction(input, cfg.ActionTogglePoints).JustPressed {
		ToggleShowPoints(ecs)
	}

	names := PresetNames()
	if len(names) == 0 {
		return
	}
	if GetAction(input, cfg.ActionNextPreset).JustPressed {
		playPresetSlot(ecs, input.NextPreset%len(names))
		return
	}
	for id := cfg.ActionPreset1; id <= cfg.ActionPreset9; id++ {
		slot, _ := cfg.PresetSlot(id)
		if slot < len(names) && GetAction(input, id).JustPressed {
			playPresetSlot(ecs, slot)
			return
		}
	}
}

func playPresetSlot(ecs *ecs.ECS, slot int) {
	names := PresetNames()
	if err := PlayPreset(ecs, names[slot]); err != nil {
		log.Printf("Warning: could not play preset %s: %v", names[slot], err)
		return
	}
	getOrCreateInput(ecs).NextPreset = slot + 1
}
