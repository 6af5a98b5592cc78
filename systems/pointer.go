package systems

import (
	"errors"
	"image"
	"log"

	"github.com/automoto/pathtrace/components"
	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/trace"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var justPressedTouches []ebiten.TouchID

// UpdatePointer turns mouse and touch input into gesture events on the board
// session. One pointer owns the gesture until it is released.
func UpdatePointer(ecs *ecs.ECS) {
	entry, board, ok := getBoard(ecs)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(entry)

	switch ptr.Source {
	case components.PointerNone:
		beginGesture(board, ptr)

	case components.PointerMouse:
		x, y := ebiten.CursorPosition()
		moveGesture(board, ptr, x, y)
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			endGesture(board, ptr)
		}

	case components.PointerTouch:
		// Position is undefined once the touch is gone, so check release first
		if inpututil.IsTouchJustReleased(ptr.TouchID) {
			endGesture(board, ptr)
			return
		}
		x, y := ebiten.TouchPosition(ptr.TouchID)
		moveGesture(board, ptr, x, y)
	}
}

func beginGesture(board *components.BoardData, ptr *components.PointerData) {
	justPressedTouches = inpututil.AppendJustPressedTouchIDs(justPressedTouches[:0])
	for _, id := range justPressedTouches {
		x, y := ebiten.TouchPosition(id)
		if onSpeedPanel(x, y) {
			continue
		}
		ptr.Source = components.PointerTouch
		ptr.TouchID = id
		pointerDown(board, ptr, x, y)
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if onSpeedPanel(x, y) {
			return
		}
		ptr.Source = components.PointerMouse
		pointerDown(board, ptr, x, y)
	}
}

func pointerDown(board *components.BoardData, ptr *components.PointerData, x, y int) {
	p := trace.Pt(float64(x), float64(y))
	ptr.Last = p
	board.Session.PointerDown(p)
}

func moveGesture(board *components.BoardData, ptr *components.PointerData, x, y int) {
	p := trace.Pt(float64(x), float64(y))
	if p == ptr.Last {
		return
	}
	ptr.Last = p
	board.Session.PointerMove(p)
}

func endGesture(board *components.BoardData, ptr *components.PointerData) {
	ptr.Source = components.PointerNone
	if err := board.Session.PointerUp(); err != nil && !errors.Is(err, trace.ErrInvalidPath) {
		log.Printf("Warning: could not start traversal: %v", err)
	}
}

func onSpeedPanel(x, y int) bool {
	return image.Pt(x, y).In(cfg.UI.Panel)
}
