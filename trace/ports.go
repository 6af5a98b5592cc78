package trace

// ScreenMapper converts pointer coordinates into local drawing space.
type ScreenMapper interface {
	ScreenToLocal(screen Point) Point
}

// Canvas draws the recorded stroke.
type Canvas interface {
	RenderSegment(from, to Point)
	ClearRendering()
}

// Marker presents the moving marker.
type Marker interface {
	SetMarkerVisible(visible bool)
	SetMarkerPosition(p Point)
}

// SpeedSource supplies the user configured speed in distance per millisecond.
type SpeedSource interface {
	ConfiguredSpeed() (float64, error)
}

// IdentityMapper uses screen coordinates as local coordinates.
type IdentityMapper struct{}

func (IdentityMapper) ScreenToLocal(screen Point) Point { return screen }

// OffsetMapper places the local origin at Origin in screen space.
type OffsetMapper struct {
	Origin Point
}

func (m OffsetMapper) ScreenToLocal(screen Point) Point {
	return screen.Sub(m.Origin)
}

type nopCanvas struct{}

func (nopCanvas) RenderSegment(_, _ Point) {}
func (nopCanvas) ClearRendering()          {}

type nopMarker struct{}

func (nopMarker) SetMarkerVisible(bool)   {}
func (nopMarker) SetMarkerPosition(Point) {}
