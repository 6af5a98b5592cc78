package trace

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

type markerCall struct {
	visible  *bool
	position *Point
}

type recordingMarker struct {
	calls    []markerCall
	visible  bool
	position Point
}

func (m *recordingMarker) SetMarkerVisible(v bool) {
	m.visible = v
	m.calls = append(m.calls, markerCall{visible: &v})
}

func (m *recordingMarker) SetMarkerPosition(p Point) {
	m.position = p
	m.calls = append(m.calls, markerCall{position: &p})
}

func near(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func expectPrecondition(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected %s to panic", op)
		}
		var pe *PreconditionError
		err, ok := r.(error)
		if !ok || !errors.As(err, &pe) {
			t.Fatalf("Expected *PreconditionError, got %T: %v", r, r)
		}
		if pe.Op != op {
			t.Errorf("Expected op %q, got %q", op, pe.Op)
		}
	}()
	fn()
}

func lPath() Path {
	return Path{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
}

func TestFollowerWalkthrough(t *testing.T) {
	marker := &recordingMarker{}
	f := NewFollower(marker)

	if err := f.Start(lPath(), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !f.Moving() || !marker.visible {
		t.Fatalf("Expected moving with a visible marker")
	}
	if f.Position() != Pt(0, 0) {
		t.Errorf("Expected marker at (0,0), got %v", f.Position())
	}
	if st := f.State(); st.SegmentIndex != 0 || st.Duration != 10 || st.Remaining != 10 {
		t.Errorf("Unexpected initial state %+v", st)
	}

	f.Advance(5)
	if !near(f.Position(), Pt(5, 0), epsilon) || !f.Moving() {
		t.Errorf("Expected (5,0) and moving, got %v moving=%v", f.Position(), f.Moving())
	}

	f.Advance(5)
	if f.Position() != Pt(10, 0) {
		t.Errorf("Expected exact snap to (10,0), got %v", f.Position())
	}
	if st := f.State(); st.SegmentIndex != 1 || st.Duration != 10 || !st.Moving {
		t.Errorf("Expected segment 1 loaded, got %+v", st)
	}

	f.Advance(20)
	if f.Position() != Pt(10, 10) {
		t.Errorf("Expected (10,10), got %v", f.Position())
	}
	if f.Moving() {
		t.Errorf("Expected traversal to be finished")
	}
	if marker.position != Pt(10, 10) {
		t.Errorf("Expected marker to be told (10,10), got %v", marker.position)
	}
}

func TestFollowerStartRejectsShortPath(t *testing.T) {
	tests := []struct {
		name string
		path Path
	}{
		{"Nil", nil},
		{"Empty", Path{}},
		{"Single tap", Path{Pt(4, 4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker := &recordingMarker{}
			f := NewFollower(marker)
			err := f.Start(tt.path, 1)
			if !errors.Is(err, ErrInvalidPath) {
				t.Fatalf("Expected ErrInvalidPath, got %v", err)
			}
			if f.Moving() {
				t.Errorf("Expected follower to stay idle")
			}
			if len(marker.calls) != 0 {
				t.Errorf("Expected marker untouched, got %d call(s)", len(marker.calls))
			}
		})
	}
}

func TestFollowerOvershootCrossesEverySegment(t *testing.T) {
	path := Path{Pt(0, 0), Pt(3, 4), Pt(3, 14), Pt(-5, 14), Pt(-5, 0), Pt(20, 0)}
	f := NewFollower(nil)
	if err := f.Start(path, 0.5); err != nil {
		t.Fatalf("Start: %v", err)
	}

	f.Advance(path.Duration(0.5) * 100)

	if f.Moving() {
		t.Errorf("Expected traversal finished")
	}
	if f.Position() != Pt(20, 0) {
		t.Errorf("Expected marker exactly on last point, got %v", f.Position())
	}
	if got := f.Progress(); got != 1 {
		t.Errorf("Expected progress 1, got %v", got)
	}

	// Further ticks are harmless.
	f.Advance(1000)
	if f.Position() != Pt(20, 0) {
		t.Errorf("Expected marker to stay put, got %v", f.Position())
	}
}

func TestFollowerSegmentDurationsSumToPathDuration(t *testing.T) {
	path := Path{Pt(0, 0), Pt(30, 40), Pt(30, 52), Pt(0, 52), Pt(11, 90)}
	speed := 0.8
	f := NewFollower(nil)
	if err := f.Start(path, speed); err != nil {
		t.Fatalf("Start: %v", err)
	}

	total := 0.0
	seen := -1
	for f.Moving() {
		st := f.State()
		if st.SegmentIndex != seen {
			total += st.Duration
			seen = st.SegmentIndex
		}
		f.Advance(1)
	}
	if seen != path.SegmentCount()-1 {
		t.Fatalf("Expected to visit %d segments, last was %d", path.SegmentCount(), seen)
	}

	want := path.Length() / speed
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("Expected total duration %v, got %v", want, total)
	}
}

func TestFollowerVariableTicksMatchSingleTick(t *testing.T) {
	path := Path{Pt(0, 0), Pt(12, 0), Pt(12, 12), Pt(30, 12)}
	ticks := []float64{3.3, 16.7, 0, 0.25, 7, 1.5, 33.4, 2}

	stepped := NewFollower(nil)
	if err := stepped.Start(path, 0.4); err != nil {
		t.Fatal(err)
	}
	sum := 0.0
	for _, dt := range ticks {
		stepped.Advance(dt)
		sum += dt
	}

	whole := NewFollower(nil)
	if err := whole.Start(path, 0.4); err != nil {
		t.Fatal(err)
	}
	whole.Advance(sum)

	if !near(stepped.Position(), whole.Position(), 1e-6) {
		t.Errorf("Expected %v, got %v", whole.Position(), stepped.Position())
	}
	if stepped.State().SegmentIndex != whole.State().SegmentIndex {
		t.Errorf("Expected segment %d, got %d", whole.State().SegmentIndex, stepped.State().SegmentIndex)
	}
}

func TestFollowerDriftIsSnappedAtBoundary(t *testing.T) {
	path := Path{Pt(0, 0), Pt(1, 0.1), Pt(1, 5)}
	f := NewFollower(nil)
	if err := f.Start(path, 0.003); err != nil {
		t.Fatal(err)
	}
	for f.State().SegmentIndex == 0 && f.Moving() {
		f.Advance(0.1)
	}
	if f.State().SegmentIndex != 1 {
		t.Fatalf("Expected to reach segment 1")
	}
	// The segment end snap leaves the marker exactly on the path point, the
	// partial step into segment 1 is the only motion since.
	st := f.State()
	done := (gLen(st.Vector) - st.Remaining) / gLen(st.Vector)
	want := Pt(1, 0.1+4.9*done)
	if !near(f.Position(), want, 1e-9) {
		t.Errorf("Expected %v, got %v", want, f.Position())
	}
}

func gLen(p Point) float64 { return math.Hypot(p.X, p.Y) }

func TestFollowerStopKeepsPosition(t *testing.T) {
	f := NewFollower(nil)
	if err := f.Start(lPath(), 1); err != nil {
		t.Fatal(err)
	}
	f.Advance(4)
	f.Stop()
	pos := f.Position()
	f.Advance(50)
	if f.Moving() {
		t.Errorf("Expected stopped follower")
	}
	if f.Position() != pos {
		t.Errorf("Expected position %v after stop, got %v", pos, f.Position())
	}
	if got := f.Progress(); math.Abs(got-0.2) > epsilon {
		t.Errorf("Expected progress 0.2, got %v", got)
	}
}

func TestFollowerRestartUsesNewPath(t *testing.T) {
	f := NewFollower(nil)
	if err := f.Start(lPath(), 1); err != nil {
		t.Fatal(err)
	}
	f.Advance(100)
	if err := f.Start(Path{Pt(5, 5), Pt(5, 25)}, 2); err != nil {
		t.Fatal(err)
	}
	if f.Position() != Pt(5, 5) || f.Speed() != 2 {
		t.Errorf("Expected fresh traversal at (5,5) speed 2, got %v speed %v", f.Position(), f.Speed())
	}
	f.Advance(5)
	if !near(f.Position(), Pt(5, 15), epsilon) {
		t.Errorf("Expected (5,15), got %v", f.Position())
	}
}

func TestFollowerPathIsCopied(t *testing.T) {
	path := lPath()
	f := NewFollower(nil)
	if err := f.Start(path, 1); err != nil {
		t.Fatal(err)
	}
	path[1] = Pt(100, 100)
	f.Advance(10)
	if f.Position() != Pt(10, 0) {
		t.Errorf("Expected caller mutation to be ignored, got %v", f.Position())
	}
}

func TestFollowerPreconditions(t *testing.T) {
	t.Run("Zero speed", func(t *testing.T) {
		expectPrecondition(t, "Follower.Start", func() {
			_ = NewFollower(nil).Start(lPath(), 0)
		})
	})
	t.Run("Negative speed", func(t *testing.T) {
		expectPrecondition(t, "Follower.Start", func() {
			_ = NewFollower(nil).Start(lPath(), -1)
		})
	})
	t.Run("NaN speed", func(t *testing.T) {
		expectPrecondition(t, "Follower.Start", func() {
			_ = NewFollower(nil).Start(lPath(), math.NaN())
		})
	})
	t.Run("Negative elapsed", func(t *testing.T) {
		f := NewFollower(nil)
		if err := f.Start(lPath(), 1); err != nil {
			t.Fatal(err)
		}
		expectPrecondition(t, "Follower.Advance", func() { f.Advance(-1) })
	})
	t.Run("Segment out of range", func(t *testing.T) {
		f := NewFollower(nil)
		if err := f.Start(lPath(), 1); err != nil {
			t.Fatal(err)
		}
		expectPrecondition(t, "Follower.loadSegment", func() { f.loadSegment(2) })
		expectPrecondition(t, "Follower.loadSegment", func() { f.loadSegment(-1) })
	})
}

func TestFollowerIdleAdvanceIsNoop(t *testing.T) {
	marker := &recordingMarker{}
	f := NewFollower(marker)
	f.Advance(16)
	if len(marker.calls) != 0 || f.Moving() {
		t.Errorf("Expected idle follower to ignore ticks")
	}
}

func TestFollowerLoadsSegmentsFromPath(t *testing.T) {
	path := Path{Pt(0, 0), Pt(30, 40), Pt(30, 52), Pt(-6, 52)}
	speed := 0.4
	f := NewFollower(nil)
	if err := f.Start(path, speed); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < path.SegmentCount(); i++ {
		f.loadSegment(i)
		seg := path.Segment(i)
		st := f.State()
		if st.SegmentIndex != i || st.Vector != seg.Vector {
			t.Errorf("Segment %d: expected vector %v, got %+v", i, seg.Vector, st)
		}
		if st.Remaining != seg.Length || st.Duration != seg.Duration(speed) {
			t.Errorf("Segment %d: expected length %v and duration %v, got %+v",
				i, seg.Length, seg.Duration(speed), st)
		}
	}
}

func TestFollowerLengthAndSegmentCount(t *testing.T) {
	f := NewFollower(nil)
	if err := f.Start(lPath(), 1); err != nil {
		t.Fatal(err)
	}
	if f.SegmentCount() != 2 || f.Length() != 20 {
		t.Fatalf("Expected 2 segments of total length 20, got %d, %v", f.SegmentCount(), f.Length())
	}

	f.Advance(5)
	if got := f.Progress(); math.Abs(got-0.25) > epsilon {
		t.Errorf("Expected progress 0.25, got %v", got)
	}
	f.Advance(10)
	if got := f.Progress(); math.Abs(got-0.75) > epsilon {
		t.Errorf("Expected progress 0.75, got %v", got)
	}

	// A refused start keeps the last traversal's measurements.
	if err := f.Start(Path{Pt(1, 1)}, 1); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("Expected ErrInvalidPath, got %v", err)
	}
	if f.SegmentCount() != 2 || f.Length() != 20 {
		t.Errorf("Expected measurements unchanged, got %d, %v", f.SegmentCount(), f.Length())
	}

	if err := f.Start(Path{Pt(0, 0), Pt(0, 7)}, 1); err != nil {
		t.Fatal(err)
	}
	if f.SegmentCount() != 1 || f.Length() != 7 || f.Progress() != 0 {
		t.Errorf("Expected fresh measurements for the new path, got %d, %v, %v",
			f.SegmentCount(), f.Length(), f.Progress())
	}
}
