package game

import (
	"fmt"

	"startrek/internal/api"
)

// screen wraps the console's output side. The first write error sticks and
// every later call is a no-op; the turn loop checks err at command
// boundaries.
type screen struct {
	con api.Console
	err error
}

func (s *screen) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.con, format, args...)
}

func (s *screen) print(text string) {
	if s.err != nil {
		return
	}
	_, s.err = s.con.Write([]byte(text))
}

// styled writes text under style and returns to the default pen.
func (s *screen) styled(style api.Style, format string, args ...any) {
	if s.err != nil {
		return
	}
	if s.err = s.con.SetStyle(style); s.err != nil {
		return
	}
	s.printf(format, args...)
	if s.err != nil {
		return
	}
	s.err = s.con.ResetStyle()
}
