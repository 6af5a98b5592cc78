package trace

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is returned when a traversal is requested for a path with
	// fewer than two points. Callers treat it as "nothing to do".
	ErrInvalidPath = errors.New("path needs at least 2 points")

	// ErrConfigurationConflict is returned when the speed is changed while a
	// traversal is in flight. The speed is left unchanged.
	ErrConfigurationConflict = errors.New("speed cannot change while the marker is moving")

	// ErrInvalidSpeed is returned for a configured speed that is not a positive
	// finite number.
	ErrInvalidSpeed = errors.New("speed must be a positive number")
)

// PreconditionError signals a caller bug. It is raised with panic, never
// returned.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("trace: %s: %s", e.Op, e.Msg)
}

func precondition(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
