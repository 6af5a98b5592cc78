package gamemath

import "time"

// FrameMillis returns the fixed per-tick delta in milliseconds for a tick rate.
// A non-positive rate falls back to 60 ticks per second.
func FrameMillis(tps int) float64 {
	if tps <= 0 {
		tps = 60
	}
	return 1000.0 / float64(tps)
}

// ElapsedMillis returns the wall time between prev and now in milliseconds.
// A clock that went backwards yields zero.
func ElapsedMillis(prev, now time.Time) float64 {
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
