package components

import (
	"github.com/automoto/pathtrace/trace"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// BoardData owns the drawing session and the offscreen stroke canvas.
type BoardData struct {
	Session *trace.Session
	Canvas  *ebiten.Image // Persistent stroke layer, cleared on each new gesture
	Origin  trace.Point   // Screen position of the local origin
}

var Board = donburi.NewComponentType[BoardData]()
