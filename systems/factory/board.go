package factory

import (
	"github.com/automoto/pathtrace/archetypes"
	"github.com/automoto/pathtrace/components"
	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/trace"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoard spawns the marker and the drawing board, and wires a trace
// session between them. The local origin sits at the screen centre.
func CreateBoard(ecs *ecs.ECS, settings components.SettingsData) *donburi.Entry {
	marker := CreateMarker(ecs)

	board := archetypes.Board.Spawn(ecs)
	canvas := ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	origin := trace.Pt(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)

	session := trace.NewSession(trace.SessionConfig{
		MinPointSpacing: settings.MinPointSpacing,
		Speed:           settings.Speed,
		Mapper:          trace.OffsetMapper{Origin: origin},
		Canvas:          &strokeCanvas{img: canvas, origin: origin},
		Marker:          markerEntity{entry: marker},
	})

	components.Board.SetValue(board, components.BoardData{
		Session: session,
		Canvas:  canvas,
		Origin:  origin,
	})
	components.Settings.SetValue(board, settings)

	return board
}

func CreateMarker(ecs *ecs.ECS) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)
	components.Marker.SetValue(marker, components.MarkerData{Scale: 1})
	return marker
}
