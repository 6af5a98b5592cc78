package trace

import (
	"math"

	"github.com/automoto/pathtrace/shared/gamemath"
)

// FollowerState is the per-traversal bookkeeping of a Follower.
type FollowerState struct {
	SegmentIndex int     // segment currently being crossed
	Remaining    float64 // distance left to the end of that segment
	Vector       Point   // path[SegmentIndex+1] - path[SegmentIndex]
	Duration     float64 // ms needed for the whole segment at the traversal speed
	Moving       bool
}

// Follower moves a marker along a finalized path at constant speed. Advance is
// frame-rate independent: one call may cross several segments.
//
// Inside a segment the marker position is updated incrementally from its
// current position, so rounding error accumulates from tick to tick. Every
// segment end snaps the marker onto the exact path point, which bounds the
// drift to a single segment.
type Follower struct {
	marker   Marker
	path     Path
	speed    float64
	position Point
	state    FollowerState
	// travelled is the distance covered in segments already completed.
	travelled float64
	length    float64
}

// NewFollower returns an idle follower. A nil marker is allowed.
func NewFollower(marker Marker) *Follower {
	if marker == nil {
		marker = nopMarker{}
	}
	return &Follower{marker: marker}
}

// Start begins a traversal of path at speed (distance per millisecond).
//
// A path with fewer than two points is refused with ErrInvalidPath and leaves
// the follower and the marker untouched. A speed that is not a positive
// finite number panics.
func (f *Follower) Start(path Path, speed float64) error {
	if !(speed > 0) || !gamemath.IsFinite(speed) {
		precondition("Follower.Start", "speed must be > 0, got %v", speed)
	}
	if !path.Travelable() {
		return ErrInvalidPath
	}

	f.path = path.Clone()
	f.speed = speed
	f.travelled = 0
	f.length = f.path.Length()
	f.state = FollowerState{Moving: true}
	f.setPosition(f.path[0])
	f.marker.SetMarkerVisible(true)
	f.loadSegment(0)
	return nil
}

func (f *Follower) loadSegment(i int) {
	if i < 0 || i > len(f.path)-2 {
		precondition("Follower.loadSegment", "segment %d out of range [0, %d]", i, len(f.path)-2)
	}
	seg := f.path.Segment(i)
	f.state.SegmentIndex = i
	f.state.Vector = seg.Vector
	f.state.Remaining = seg.Length
	f.state.Duration = seg.Duration(f.speed)
}

// HasNextSegment reports whether another segment follows the current one.
func (f *Follower) HasNextSegment() bool {
	return f.state.SegmentIndex < len(f.path)-2
}

// Advance consumes elapsedMs of travel time. It is a no-op when idle and
// panics on a negative or NaN elapsed time.
func (f *Follower) Advance(elapsedMs float64) {
	if elapsedMs < 0 || math.IsNaN(elapsedMs) {
		precondition("Follower.Advance", "elapsed time must be >= 0, got %v", elapsedMs)
	}

	for elapsedMs > 0 && f.state.Moving {
		budget := elapsedMs * f.speed
		if budget < f.state.Remaining {
			f.state.Remaining -= budget
			fraction := elapsedMs / f.state.Duration
			f.setPosition(f.position.Add(f.state.Vector.MulScalar(fraction)))
			break
		}

		finish := f.state.Remaining / f.speed
		f.setPosition(f.path[f.state.SegmentIndex+1])
		f.travelled += f.state.Vector.Magnitude()
		f.state.Remaining = 0
		elapsedMs -= finish

		if !f.HasNextSegment() {
			f.state.Moving = false
			break
		}
		f.loadSegment(f.state.SegmentIndex + 1)
	}
}

// Stop ends the traversal at the current tick boundary. The marker keeps its
// last position.
func (f *Follower) Stop() {
	f.state.Moving = false
}

func (f *Follower) setPosition(p Point) {
	f.position = p
	f.marker.SetMarkerPosition(p)
}

func (f *Follower) Moving() bool { return f.state.Moving }

func (f *Follower) Position() Point { return f.position }

// Speed returns the speed snapshot of the current or last traversal.
func (f *Follower) Speed() float64 { return f.speed }

func (f *Follower) State() FollowerState { return f.state }

// Path returns the path of the current or last traversal.
func (f *Follower) Path() Path { return f.path.Clone() }

// SegmentCount returns the number of segments of the current or last
// traversal without copying the path.
func (f *Follower) SegmentCount() int { return f.path.SegmentCount() }

// Length returns the total length of the current or last traversal.
func (f *Follower) Length() float64 { return f.length }

// Progress returns the fraction of the path length covered, in [0, 1].
func (f *Follower) Progress() float64 {
	if f.length == 0 {
		return 0
	}
	done := f.travelled
	if f.state.Remaining > 0 {
		done += f.state.Vector.Magnitude() - f.state.Remaining
	}
	return math.Min(1, math.Max(0, done/f.length))
}
