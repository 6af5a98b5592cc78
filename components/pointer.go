package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PointerSource identifies which device owns the active gesture.
type PointerSource int

const (
	PointerNone PointerSource = iota
	PointerMouse
	PointerTouch
)

// PointerData tracks the single gesture in progress. Only one pointer is
// followed at a time; other touches are ignored until it is released.
type PointerData struct {
	Source  PointerSource
	TouchID ebiten.TouchID
	Last    math.Vec2 // Last screen position fed to the session
}

var Pointer = donburi.NewComponentType[PointerData]()
