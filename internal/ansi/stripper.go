package ansi

import (
	"io"
	"strings"
)

type stripState int

const (
	stateText stripState = iota
	stateEscape
	stateSequence
)

// StreamingStripper removes ANSI escape sequences from streaming text.
// It keeps state so a sequence split across chunks is still removed.
type StreamingStripper struct {
	state   stripState
	pending strings.Builder
}

// NewStreamingStripper creates a new streaming ANSI stripper
func NewStreamingStripper() *StreamingStripper {
	return &StreamingStripper{}
}

// StripChunk returns text with every complete or in-progress CSI sequence
// removed. Lone escapes not followed by '[' pass through.
func (s *StreamingStripper) StripChunk(text string) string {
	var result strings.Builder

	for _, char := range text {
		switch s.state {
		case stateText:
			if char == '\x1b' {
				s.state = stateEscape
				s.pending.Reset()
				s.pending.WriteRune(char)
			} else {
				result.WriteRune(char)
			}

		case stateEscape:
			s.pending.WriteRune(char)
			if char == '[' {
				s.state = stateSequence
			} else {
				result.WriteString(s.pending.String())
				s.pending.Reset()
				s.state = stateText
			}

		case stateSequence:
			// Parameters and intermediates run until a final byte in @..~.
			if char >= '@' && char <= '~' {
				s.pending.Reset()
				s.state = stateText
			} else {
				s.pending.WriteRune(char)
			}
		}
	}

	return result.String()
}

// Reset drops any partial sequence
func (s *StreamingStripper) Reset() {
	s.state = stateText
	s.pending.Reset()
}

// StripString strips ANSI from a complete string
func StripString(text string) string {
	return NewStreamingStripper().StripChunk(text)
}

// StripWriter forwards writes with ANSI sequences removed. It is used when
// colour is turned off.
type StripWriter struct {
	w        io.Writer
	stripper *StreamingStripper
}

func NewStripWriter(w io.Writer) *StripWriter {
	return &StripWriter{w: w, stripper: NewStreamingStripper()}
}

// Write reports len(p) on success even though fewer bytes reach the
// underlying writer.
func (sw *StripWriter) Write(p []byte) (int, error) {
	plain := sw.stripper.StripChunk(string(p))
	if plain == "" {
		return len(p), nil
	}
	if _, err := io.WriteString(sw.w, plain); err != nil {
		return 0, err
	}
	return len(p), nil
}
