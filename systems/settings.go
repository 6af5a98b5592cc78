package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/pathtrace/components"
	"github.com/automoto/pathtrace/tags"
	"github.com/automoto/pathtrace/trace"
	"github.com/yohamta/donburi/ecs"
)

// GetSettings returns the settings component of the board, or nil if the
// board has not been created yet.
func GetSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := tags.Board.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}

// ApplySpeed reads the speed from src and hands it to the board session. The
// outcome is stored as the settings status line and a successful change is
// saved to disk.
func ApplySpeed(ecs *ecs.ECS, src trace.SpeedSource) error {
	entry, board, ok := getBoard(ecs)
	if !ok {
		return nil
	}
	settings := components.Settings.Get(entry)

	if err := board.Session.SyncSpeed(src); err != nil {
		settings.StatusIsError = true
		switch {
		case errors.Is(err, trace.ErrConfigurationConflict):
			settings.Status = "Wait for the marker to stop"
		case errors.Is(err, trace.ErrInvalidSpeed):
			settings.Status = "Invalid speed"
		default:
			settings.Status = "Could not read speed"
			log.Printf("Warning: %v", err)
		}
		return err
	}

	settings.Speed = board.Session.Speed()
	settings.Status = fmt.Sprintf("Speed set to %g", settings.Speed)
	settings.StatusIsError = false
	if err := SaveCurrentSettings(settings); err != nil {
		settings.Status += " (not saved)"
	}
	return nil
}

// ToggleShowPoints flips the recorded points overlay and saves the choice.
func ToggleShowPoints(ecs *ecs.ECS) {
	settings := GetSettings(ecs)
	if settings == nil {
		return
	}
	settings.ShowPoints = !settings.ShowPoints
	// Already logged; the overlay still toggles for this run
	_ = SaveCurrentSettings(settings)
}
