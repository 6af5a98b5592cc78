package systems

import (
	"github.com/automoto/pathtrace/components"
	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMarker steps the pop-in tween of a freshly shown marker.
func UpdateMarker(ecs *ecs.ECS) {
	dt := float32(gamemath.FrameMillis(ebiten.TPS()) / 1000)
	components.Marker.Each(ecs.World, func(e *donburi.Entry) {
		marker := components.Marker.Get(e)
		if marker.Pop == nil {
			return
		}
		scale, finished := marker.Pop.Update(dt)
		marker.Scale = scale
		if finished {
			marker.Scale = 1
			marker.Pop = nil
		}
	})
}

// DrawMarker renders visible markers relative to the board origin.
func DrawMarker(ecs *ecs.ECS, screen *ebiten.Image) {
	_, board, ok := getBoard(ecs)
	if !ok {
		return
	}
	components.Marker.Each(ecs.World, func(e *donburi.Entry) {
		marker := components.Marker.Get(e)
		if !marker.Visible {
			return
		}
		x := float32(marker.Position.X + board.Origin.X)
		y := float32(marker.Position.Y + board.Origin.Y)
		r := cfg.Marker.Radius * marker.Scale
		if r <= 0 {
			return
		}
		vector.FillCircle(screen, x, y, r, cfg.Marker.Color, true)
		vector.StrokeCircle(screen, x, y, r, 2, cfg.Marker.RingColor, true)
	})
}
