package terminal

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"startrek/internal/ansi"
	"startrek/internal/api"
	"startrek/internal/log"
	"startrek/internal/theme"
)

// ErrInterrupt is returned from reads when the player presses Ctrl-C.
var ErrInterrupt = errors.New("interrupted")

// Control keys understood by the line editor.
const (
	keyCtrlC     = 0x03
	keyBackspace = 0x08
	keyCtrlU     = 0x15
	keyEsc       = 0x1b
	keyDelete    = 0x7f
)

// buzzGap separates the two bells of a buzz so terminals do not merge them.
const buzzGap = 120 * time.Millisecond

// Options configures a Console.
type Options struct {
	// Theme maps engine styles to pens. Nil disables styling.
	Theme theme.Theme

	// CRLF writes "\r\n" for every "\n". Raw-mode terminals need it.
	CRLF bool

	// BellPerSecond caps how often the bell may ring. Zero means no cap.
	BellPerSecond float64

	// Sleep replaces time.Sleep, mostly for tests.
	Sleep func(time.Duration)
}

// Console implements api.Console over a byte stream. It is not safe for
// concurrent use; the engine is its only caller.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	theme   theme.Theme
	crlf    bool
	bell    *rate.Limiter
	upper   cases.Caser
	sleep   func(time.Duration)
	afterCR bool

	// afterAnswer is set by ReadYesNo. The Enter a line-buffered terminal
	// sends after the letter is not a key press of its own.
	afterAnswer bool
}

var _ api.Console = (*Console)(nil)

// NewConsole creates a console reading keys from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, opts Options) *Console {
	limit := rate.Inf
	if opts.BellPerSecond > 0 {
		limit = rate.Limit(opts.BellPerSecond)
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		theme: opts.Theme,
		crlf:  opts.CRLF,
		bell:  rate.NewLimiter(limit, 2),
		upper: cases.Upper(language.Und),
		sleep: sleep,
	}
}

// Write sends engine output to the terminal. The returned count is len(p)
// even when newlines were expanded.
func (c *Console) Write(p []byte) (int, error) {
	if !c.crlf {
		return c.out.Write(p)
	}
	expanded := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(c.out, expanded); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *Console) writeString(s string) error {
	_, err := io.WriteString(c, s)
	return err
}

// SetStyle switches to the theme's pen for style.
func (c *Console) SetStyle(style api.Style) error {
	if c.theme == nil {
		return nil
	}
	pen := c.theme.Pen(style)
	return c.writeString(ansi.SGR(pen.Foreground, tcell.ColorDefault, pen.Bold, pen.Dim))
}

func (c *Console) ResetStyle() error {
	if c.theme == nil {
		return nil
	}
	return c.writeString(ansi.Reset)
}

func (c *Console) ClearScreen() error {
	return c.writeString(ansi.ClearScreen)
}

// Beep rings the bell once. Past the rate limit it flashes the screen
// instead, so every alert is still seen.
func (c *Console) Beep() {
	if !c.bell.Allow() {
		c.flash()
		return
	}
	c.ring()
}

// Buzz rings the bell twice in quick succession, or flashes past the rate
// limit.
func (c *Console) Buzz() {
	if !c.bell.Allow() {
		c.flash()
		return
	}
	c.ring()
	c.sleep(buzzGap)
	c.ring()
}

func (c *Console) flash() {
	log.Debug("bell over rate limit, flashing")
	if err := c.writeString(ansi.Flash); err != nil {
		log.Warn("flash write failed", "error", err)
	}
}

func (c *Console) ring() {
	if err := c.writeString(ansi.Bell); err != nil {
		log.Warn("bell write failed", "error", err)
	}
}

func (c *Console) Delay(d time.Duration) {
	c.sleep(d)
}

// readRune returns the next key. A line feed directly after a carriage
// return is the second half of one Enter press and is skipped.
func (c *Console) readRune() (rune, error) {
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			return 0, err
		}
		skip := c.afterCR && r == '\n'
		if c.afterAnswer {
			skip = skip || r == '\r' || r == '\n'
			c.afterAnswer = false
		}
		c.afterCR = r == '\r'
		if skip {
			continue
		}
		if r == keyCtrlC {
			return 0, ErrInterrupt
		}
		return r, nil
	}
}

func (c *Console) upperRune(r rune) rune {
	s := c.upper.String(string(r))
	for _, u := range s {
		return u
	}
	return r
}

// swallowSequence consumes the rest of a cursor or function key sequence
// that is already buffered behind an escape. It reports whether one was found.
func (c *Console) swallowSequence() bool {
	if c.in.Buffered() == 0 {
		return false
	}
	next, err := c.in.Peek(1)
	if err != nil || (next[0] != '[' && next[0] != 'O') {
		return false
	}
	_, _ = c.in.ReadByte()
	for c.in.Buffered() > 0 {
		b, err := c.in.ReadByte()
		if err != nil || (b >= '@' && b <= '~') {
			break
		}
	}
	return true
}

// ReadKey returns the next key press without echo.
func (c *Console) ReadKey() (rune, error) {
	r, err := c.readRune()
	if err != nil {
		return 0, err
	}
	if r == keyEsc {
		c.swallowSequence()
	}
	return r, nil
}

// ReadYesNo waits for Y or N and echoes it. Escape counts as N.
func (c *Console) ReadYesNo() (bool, error) {
	for {
		r, err := c.ReadKey()
		if err != nil {
			return false, err
		}
		switch c.upperRune(r) {
		case 'Y':
			c.afterAnswer = true
			return true, c.writeString("Y")
		case 'N', keyEsc:
			c.afterAnswer = true
			return false, c.writeString("N")
		default:
			c.Beep()
		}
	}
}

// erase rubs out n echoed characters.
func (c *Console) erase(n int) error {
	return c.writeString(strings.Repeat("\b \b", n))
}

// ReadLine runs the line editor. Letters are shifted to upper case before
// the mode check. Enter finishes the line and Escape abandons it.
// Backspace removes one character and Ctrl-U the whole buffer.
func (c *Console) ReadLine(maxLen int, mode api.InputMode) (api.Entry, error) {
	var buf []rune
	for {
		r, err := c.readRune()
		if err != nil {
			return api.Entry{}, err
		}

		switch {
		case r == '\r' || r == '\n':
			if len(buf) == 0 {
				return api.Entry{Kind: api.EntryBlank}, nil
			}
			return api.TextEntry(string(buf)), nil

		case r == keyEsc:
			if c.swallowSequence() {
				c.Beep()
				continue
			}
			if err := c.erase(len(buf)); err != nil {
				return api.Entry{}, err
			}
			return api.Entry{Kind: api.EntryAborted}, nil

		case r == keyBackspace || r == keyDelete:
			if len(buf) == 0 {
				c.Buzz()
				continue
			}
			buf = buf[:len(buf)-1]
			if err := c.erase(1); err != nil {
				return api.Entry{}, err
			}

		case r == keyCtrlU:
			if len(buf) == 0 {
				c.Buzz()
				continue
			}
			if err := c.erase(len(buf)); err != nil {
				return api.Entry{}, err
			}
			buf = buf[:0]

		case r < ' ' || r > '~' || len(buf) >= maxLen:
			c.Beep()

		default:
			up := c.upperRune(r)
			if !mode.Accepts(up) {
				c.Beep()
				continue
			}
			buf = append(buf, up)
			if err := c.writeString(string(up)); err != nil {
				return api.Entry{}, err
			}
		}
	}
}
