package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MarkerData is the presentation state of the travelling marker.
type MarkerData struct {
	Position math.Vec2 // Local board coordinates
	Visible  bool
	Scale    float32      // 0..1, driven by Pop
	Pop      *gween.Tween // nil once the pop-in has finished
}

var Marker = donburi.NewComponentType[MarkerData]()
