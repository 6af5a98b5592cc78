// Package leveldata parses preset guide paths out of Tiled TMX maps.
// It has no dependencies on ebitengine; pure data only.
package leveldata

import "github.com/yohamta/donburi/features/math"

// PathsGroup is the Tiled object group that holds preset paths.
const PathsGroup = "Paths"

// GuideData holds the preset paths of one TMX file.
type GuideData struct {
	Paths     map[string]GuidePath
	Names     []string // sorted path names
	MapWidth  int
	MapHeight int
}

// GuidePath is a named polyline in world coordinates.
type GuidePath struct {
	Name   string
	Points []math.Vec2
}

// Centered returns the points shifted so the centre of their bounding box is
// the origin. The receiver is not modified.
func (p GuidePath) Centered() []math.Vec2 {
	if len(p.Points) == 0 {
		return nil
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2

	out := make([]math.Vec2, len(p.Points))
	for i, pt := range p.Points {
		out[i] = math.Vec2{X: pt.X - cx, Y: pt.Y - cy}
	}
	return out
}
