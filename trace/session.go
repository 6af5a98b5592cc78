package trace

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/pathtrace/shared/gamemath"
)

// SessionConfig wires a Session to its collaborators. Nil collaborators are
// replaced with no-op implementations.
type SessionConfig struct {
	MinPointSpacing float64
	Speed           float64
	Mapper          ScreenMapper
	Canvas          Canvas
	Marker          Marker
}

// Session connects pointer gestures, the recorder and the follower. It is the
// only type the input and tick sources talk to. A Session is not safe for
// concurrent use; it expects to be driven from the game loop.
type Session struct {
	recorder *Recorder
	follower *Follower
	mapper   ScreenMapper
	canvas   Canvas
	marker   Marker
	speed    float64
}

// NewSession panics if cfg.MinPointSpacing or cfg.Speed is not positive.
func NewSession(cfg SessionConfig) *Session {
	if !(cfg.Speed > 0) || !gamemath.IsFinite(cfg.Speed) {
		precondition("NewSession", "speed must be > 0, got %v", cfg.Speed)
	}
	s := &Session{
		recorder: NewRecorder(cfg.MinPointSpacing),
		mapper:   cfg.Mapper,
		canvas:   cfg.Canvas,
		marker:   cfg.Marker,
		speed:    cfg.Speed,
	}
	if s.mapper == nil {
		s.mapper = IdentityMapper{}
	}
	if s.canvas == nil {
		s.canvas = nopCanvas{}
	}
	if s.marker == nil {
		s.marker = nopMarker{}
	}
	s.follower = NewFollower(s.marker)
	s.marker.SetMarkerVisible(false)
	return s
}

// PointerDown starts a new gesture. Any traversal in flight is abandoned and
// the previous stroke is cleared.
func (s *Session) PointerDown(screen Point) {
	s.follower.Stop()
	s.canvas.ClearRendering()
	s.marker.SetMarkerVisible(false)
	s.recorder.Begin(s.mapper.ScreenToLocal(screen))
}

// PointerMove feeds a sample of the current gesture. It reports whether the
// sample was far enough from the previous point to extend the stroke.
func (s *Session) PointerMove(screen Point) bool {
	if !s.recorder.Recording() {
		return false
	}
	p := s.mapper.ScreenToLocal(screen)
	prev, ok := s.recorder.path.Last()
	if !ok || !s.recorder.TryAppend(p) {
		return false
	}
	s.canvas.RenderSegment(prev, p)
	return true
}

// PointerUp ends the gesture and starts the marker if the stroke has a
// direction. ErrInvalidPath means the gesture was a tap; nothing moves.
func (s *Session) PointerUp() error {
	if !s.recorder.Recording() {
		return nil
	}

	path, err := s.recorder.Finalize()
	if err != nil {
		return err
	}
	return s.start(path)
}

// Play draws path as if it had been recorded and starts following it.
func (s *Session) Play(path Path) error {
	if !path.Travelable() {
		return fmt.Errorf("play %d point(s): %w", len(path), ErrInvalidPath)
	}
	s.follower.Stop()
	s.recorder.Reset()
	s.canvas.ClearRendering()
	s.marker.SetMarkerVisible(false)
	for i := 0; i < path.SegmentCount(); i++ {
		s.canvas.RenderSegment(path[i], path[i+1])
	}
	return s.start(path)
}

func (s *Session) start(path Path) error {
	if err := s.follower.Start(path, s.speed); err != nil {
		return err
	}
	log.Printf("[trace] following %d segment(s), length %.1f at %.3f/ms (%.0fms)",
		path.SegmentCount(), path.Length(), s.speed, path.Duration(s.speed))
	return nil
}

// Tick advances the marker by elapsedMs.
func (s *Session) Tick(elapsedMs float64) {
	if !s.follower.Moving() {
		return
	}
	s.follower.Advance(elapsedMs)
	if !s.follower.Moving() {
		log.Printf("[trace] traversal complete at (%.1f, %.1f)",
			s.follower.Position().X, s.follower.Position().Y)
	}
}

// Stop abandons the traversal in flight, leaving the marker where it is.
func (s *Session) Stop() {
	s.follower.Stop()
}

// SetSpeed changes the speed used by the next traversal. It is refused with
// ErrConfigurationConflict while the marker is moving.
func (s *Session) SetSpeed(v float64) error {
	if s.follower.Moving() {
		return ErrConfigurationConflict
	}
	if !(v > 0) || !gamemath.IsFinite(v) {
		return fmt.Errorf("%v: %w", v, ErrInvalidSpeed)
	}
	s.speed = v
	return nil
}

// SyncSpeed reads src and applies the value through SetSpeed. The source is
// not consulted at all while the marker is moving.
func (s *Session) SyncSpeed(src SpeedSource) error {
	if s.follower.Moving() {
		return ErrConfigurationConflict
	}
	v, err := src.ConfiguredSpeed()
	if err != nil {
		if errors.Is(err, ErrInvalidSpeed) {
			return err
		}
		return fmt.Errorf("read configured speed: %w", err)
	}
	return s.SetSpeed(v)
}

func (s *Session) Moving() bool { return s.follower.Moving() }

// Drawing reports whether a gesture is in progress.
func (s *Session) Drawing() bool { return s.recorder.Recording() }

// Speed returns the configured speed for the next traversal.
func (s *Session) Speed() float64 { return s.speed }

func (s *Session) Recorder() *Recorder { return s.recorder }

func (s *Session) Follower() *Follower { return s.follower }
