package trace

import (
	"fmt"

	"github.com/automoto/pathtrace/shared/gamemath"
)

// Recorder turns a stream of pointer samples into a polyline. Samples closer
// than minSpacing to the last accepted point are dropped so that fast pointer
// sampling cannot produce near-zero segments.
type Recorder struct {
	minSpacing float64
	path       Path
	recording  bool
}

// NewRecorder panics if minSpacing is not a positive finite number.
func NewRecorder(minSpacing float64) *Recorder {
	if !(minSpacing > 0) || !gamemath.IsFinite(minSpacing) {
		precondition("NewRecorder", "minSpacing must be > 0, got %v", minSpacing)
	}
	return &Recorder{minSpacing: minSpacing}
}

// Begin discards any previous path and starts a new one at p.
func (r *Recorder) Begin(p Point) {
	r.path = append(r.path[:0], p)
	r.recording = true
}

// TryAppend appends p if it is at least minSpacing away from the last point.
// It returns false without touching the path otherwise, and always returns
// false outside of a gesture.
func (r *Recorder) TryAppend(p Point) bool {
	if !r.recording || len(r.path) == 0 {
		return false
	}
	last := r.path[len(r.path)-1]
	if last.Distance(p) < r.minSpacing {
		return false
	}
	r.path = append(r.path, p)
	return true
}

// Finalize ends the gesture and returns a copy of the recorded path. The path
// stays frozen until the next Begin.
func (r *Recorder) Finalize() (Path, error) {
	r.recording = false
	out := r.path.Clone()
	if !out.Travelable() {
		return out, fmt.Errorf("finalize with %d point(s): %w", len(out), ErrInvalidPath)
	}
	return out, nil
}

// Reset drops the path and leaves the recorder idle.
func (r *Recorder) Reset() {
	r.path = r.path[:0]
	r.recording = false
}

// Path returns a copy of the points recorded so far.
func (r *Recorder) Path() Path { return r.path.Clone() }

func (r *Recorder) Len() int { return len(r.path) }

// Recording reports whether a gesture is in progress.
func (r *Recorder) Recording() bool { return r.recording }
