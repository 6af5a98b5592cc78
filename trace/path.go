// Package trace records freehand strokes as polylines and moves a marker along
// them at a constant speed, one tick at a time.
//
// Nothing in this package draws or reads input. Collaborators are injected
// through the Canvas, Marker, ScreenMapper and SpeedSource interfaces.
package trace

import dmath "github.com/yohamta/donburi/features/math"

// Point is a position in local drawing space.
type Point = dmath.Vec2

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Path is an ordered polyline. Insertion order is travel order.
type Path []Point

// Segment is the span between two consecutive path points.
type Segment struct {
	Index  int
	From   Point
	To     Point
	Vector Point
	Length float64
}

// Duration returns the milliseconds needed to cross the segment at speed.
func (s Segment) Duration(speed float64) float64 {
	return s.Length / speed
}

func (p Path) Len() int { return len(p) }

// Travelable reports whether the path has a direction to travel.
func (p Path) Travelable() bool {
	return len(p) >= 2
}

// SegmentCount returns the number of segments, zero for a path that is not
// travelable.
func (p Path) SegmentCount() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 1
}

// Last returns the final point. ok is false for an empty path.
func (p Path) Last() (pt Point, ok bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1], true
}

// Segment derives segment i. It panics when i is outside [0, SegmentCount()).
func (p Path) Segment(i int) Segment {
	if i < 0 || i >= p.SegmentCount() {
		precondition("Path.Segment", "index %d out of range [0, %d]", i, len(p)-2)
	}
	vec := p[i+1].Sub(p[i])
	return Segment{
		Index:  i,
		From:   p[i],
		To:     p[i+1],
		Vector: vec,
		Length: vec.Magnitude(),
	}
}

// Length returns the total polyline length.
func (p Path) Length() float64 {
	total := 0.0
	for i := 0; i < p.SegmentCount(); i++ {
		total += p[i].Distance(p[i+1])
	}
	return total
}

// Duration returns the milliseconds needed to travel the whole path at speed.
func (p Path) Duration(speed float64) float64 {
	return p.Length() / speed
}

// Clone returns a copy that does not share storage with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}
