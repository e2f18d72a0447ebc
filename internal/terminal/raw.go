package terminal

import (
	"fmt"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"startrek/internal/log"
)

// IsTerminal reports whether fd is an interactive terminal.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Raw switches fd to raw mode so single key presses reach the line editor
// unbuffered. When fd is not a terminal nothing changes. The returned
// restore function is always safe to call.
func Raw(fd uintptr) (restore func(), err error) {
	noop := func() {}
	if !isatty.IsTerminal(fd) {
		return noop, nil
	}

	state, err := term.MakeRaw(int(fd))
	if err != nil {
		return noop, fmt.Errorf("enable raw mode: %w", err)
	}
	log.Debug("raw mode enabled", "fd", fd)

	return func() {
		if err := term.Restore(int(fd), state); err != nil {
			log.Warn("restore terminal failed", "error", err)
		}
	}, nil
}
