package systems

import (
	"time"

	"github.com/automoto/pathtrace/components"
	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFollower is the tick source: it measures the frame delta and hands it
// to the board session. Deltas are not capped; after a stall the marker may
// cross several segments in one tick.
func UpdateFollower(ecs *ecs.ECS) {
	entry, board, ok := getBoard(ecs)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	elapsed := gamemath.FrameMillis(ebiten.TPS())
	if cfg.Trace.VariableStep {
		now := time.Now()
		// First tick has no reference point, fall back to the fixed step
		if clock.Started {
			elapsed = gamemath.ElapsedMillis(clock.Last, now)
		}
		clock.Last = now
		clock.Started = true
	}

	board.Session.Tick(elapsed)
}
