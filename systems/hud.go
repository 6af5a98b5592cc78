package systems

import (
	"fmt"

	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 16

const hudHint = "Drag to draw  |  F1-F9 or PgDn presets  |  Esc stop  |  F10 points"

// DrawHUD renders the traversal readout in the bottom-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	_, board, ok := getBoard(ecs)
	if !ok {
		return
	}
	session := board.Session
	face := fonts.HUD.Get()
	x := cfg.UI.HUDMargin
	y := screen.Bounds().Dy() - cfg.UI.HUDMargin - 2*hudLineHeight

	var status string
	switch {
	case session.Drawing():
		status = fmt.Sprintf("Drawing: %d point(s)", session.Recorder().Len())
	case session.Moving():
		st := session.Follower().State()
		status = fmt.Sprintf("Moving: segment %d/%d  %3.0f%%",
			st.SegmentIndex+1, session.Follower().SegmentCount(),
			session.Follower().Progress()*100)
	default:
		status = "Idle"
	}

	line := fmt.Sprintf("Speed %.3g px/ms  |  %s", session.Speed(), status)
	text.Draw(screen, line, face, x, y, cfg.UI.HUDTextColor)
	text.Draw(screen, hudHint, fonts.HUDSmall.Get(), x, y+hudLineHeight, cfg.UI.StatusColor)
}
