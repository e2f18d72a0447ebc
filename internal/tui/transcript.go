package tui

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// defaultMaxLines bounds the scrollback kept in the transcript.
const defaultMaxLines = 2000

// Transcript collects console output for the transcript view. It applies
// the few control codes the console emits: backspace, bell and clear screen.
// Colour sequences are kept for tview.TranslateANSI.
type Transcript struct {
	mu       sync.Mutex
	text     []byte
	maxLines int
	bells    int

	inEscape bool
	sequence []byte
}

func NewTranscript(maxLines int) *Transcript {
	if maxLines <= 0 {
		maxLines = defaultMaxLines
	}
	return &Transcript{maxLines: maxLines}
}

// Write never fails.
func (t *Transcript) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, b := range p {
		if t.inEscape {
			t.sequence = append(t.sequence, b)
			if len(t.sequence) == 2 && b != '[' {
				t.text = append(t.text, t.sequence...)
				t.endSequence()
			} else if len(t.sequence) > 2 && b >= '@' && b <= '~' {
				t.applySequence()
				t.endSequence()
			}
			continue
		}

		switch b {
		case 0x1b:
			t.inEscape = true
			t.sequence = append(t.sequence[:0], b)
		case '\b':
			t.backspace()
		case '\a':
			t.bells++
		case '\r':
		default:
			t.text = append(t.text, b)
		}
	}

	t.trim()
	return len(p), nil
}

func (t *Transcript) endSequence() {
	t.inEscape = false
	t.sequence = t.sequence[:0]
}

func (t *Transcript) applySequence() {
	seq := string(t.sequence)
	switch {
	case seq == "\x1b[2J":
		t.text = t.text[:0]
	case seq == "\x1b[?5h":
		// Visual bell from the console's rate limiter.
		t.bells++
	case strings.HasSuffix(seq, "H"):
		// Cursor home only follows a clear.
	case strings.HasSuffix(seq, "m"):
		t.text = append(t.text, t.sequence...)
	}
}

// backspace removes the last character on the current line.
func (t *Transcript) backspace() {
	if len(t.text) == 0 {
		return
	}
	r, size := utf8.DecodeLastRune(t.text)
	if r == '\n' {
		return
	}
	t.text = t.text[:len(t.text)-size]
}

func (t *Transcript) trim() {
	lines := strings.Count(string(t.text), "\n")
	for lines > t.maxLines {
		i := strings.IndexByte(string(t.text), '\n')
		if i < 0 {
			return
		}
		t.text = t.text[i+1:]
		lines--
	}
}

// Content returns the transcript with colour sequences intact.
func (t *Transcript) Content() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.text)
}

// TakeBells returns how many bells rang since the last call.
func (t *Transcript) TakeBells() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.bells
	t.bells = 0
	return n
}
