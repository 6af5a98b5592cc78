package trace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/pathtrace/shared/gamemath"
)

// ParseSpeed reads a speed typed by the user. Surrounding whitespace is
// ignored. Values outside [min, max] are rejected rather than clamped so the
// user sees what went wrong.
func ParseSpeed(s string, min, max float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty input: %w", ErrInvalidSpeed)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !gamemath.IsFinite(v) || v <= 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidSpeed)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%g outside [%g, %g]: %w", v, min, max, ErrInvalidSpeed)
	}
	return v, nil
}
