package factory

import (
	"github.com/automoto/pathtrace/components"
	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/trace"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// strokeCanvas renders accepted segments onto the board's offscreen image.
// Segments arrive in local coordinates and are shifted by origin.
type strokeCanvas struct {
	img    *ebiten.Image
	origin trace.Point
}

func (c *strokeCanvas) RenderSegment(from, to trace.Point) {
	x0, y0 := float32(from.X+c.origin.X), float32(from.Y+c.origin.Y)
	x1, y1 := float32(to.X+c.origin.X), float32(to.Y+c.origin.Y)
	vector.StrokeLine(c.img, x0, y0, x1, y1, cfg.Board.LineWidth, cfg.Board.StrokeColor, true)

	// Wide butt-capped lines leave notches at every joint
	if cfg.Board.RoundJoins {
		r := cfg.Board.LineWidth / 2
		vector.FillCircle(c.img, x0, y0, r, cfg.Board.StrokeColor, true)
		vector.FillCircle(c.img, x1, y1, r, cfg.Board.StrokeColor, true)
	}
}

func (c *strokeCanvas) ClearRendering() {
	c.img.Clear()
}

// markerEntity forwards follower transitions to the marker entity.
type markerEntity struct {
	entry *donburi.Entry
}

func (m markerEntity) SetMarkerVisible(visible bool) {
	marker := components.Marker.Get(m.entry)
	if visible && !marker.Visible {
		marker.Scale = 0
		marker.Pop = gween.New(0, 1, cfg.Marker.PopDuration, ease.OutQuad)
	}
	if !visible {
		marker.Pop = nil
	}
	marker.Visible = visible
}

func (m markerEntity) SetMarkerPosition(p trace.Point) {
	components.Marker.Get(m.entry).Position = p
}
