package systems

import (
	"image/color"

	"github.com/automoto/pathtrace/components"
	"github.com/automoto/pathtrace/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var boardDrawOp = &ebiten.DrawImageOptions{}

var pointColor = color.RGBA{R: 255, G: 80, B: 80, A: 255}

// getBoard returns the board entry and its data.
func getBoard(ecs *ecs.ECS) (*donburi.Entry, *components.BoardData, bool) {
	entry, ok := tags.Board.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Board.Get(entry), true
}

// DrawBoard renders the persistent stroke canvas.
func DrawBoard(ecs *ecs.ECS, screen *ebiten.Image) {
	_, board, ok := getBoard(ecs)
	if !ok || board.Canvas == nil {
		return
	}
	boardDrawOp.GeoM.Reset()
	screen.DrawImage(board.Canvas, boardDrawOp)
}

// DrawPoints marks every recorded point when the points overlay is enabled.
func DrawPoints(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, board, ok := getBoard(ecs)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	if !settings.ShowPoints {
		return
	}

	// Presets bypass the recorder
	path := board.Session.Recorder().Path()
	if len(path) == 0 {
		path = board.Session.Follower().Path()
	}
	for _, p := range path {
		x := float32(p.X + board.Origin.X)
		y := float32(p.Y + board.Origin.Y)
		vector.FillCircle(screen, x, y, 3, pointColor, true)
	}
}
