package game

import (
	"errors"
	"fmt"

	"startrek/internal/log"
)

var (
	// ErrOutOfRange is returned when a coordinate falls outside the 8x8 grid.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInvariant marks a bookkeeping bug inside the simulation. It aborts
	// the current game, never the process.
	ErrInvariant = errors.New("internal invariant violated")

	// ErrNoEmptySector is wrapped when random placement runs out of retries.
	ErrNoEmptySector = errors.New("no empty sector found")
)

// InvariantError carries the diagnostic for an ErrInvariant failure.
type InvariantError struct {
	Msg string
	Err error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("internal error: %s: %v", e.Msg, e.Err)
	}
	return "internal error: " + e.Msg
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func invariantf(format string, args ...any) *InvariantError {
	err := &InvariantError{Msg: fmt.Sprintf(format, args...)}
	log.Error("invariant violated", "error", err.Msg)
	return err
}
