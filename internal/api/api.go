package api

import (
	"io"
	"time"
)

// Input defines how the engine reads from the player.
//
// Implementations block until the player answers; the engine does no work
// while a read is outstanding.
type Input interface {
	// ReadKey returns the next single key press.
	ReadKey() (rune, error)

	// ReadYesNo waits for Y or N (either case) and reports whether it was Y.
	ReadYesNo() (bool, error)

	// ReadLine collects an echoed, editable buffer of at most maxLen
	// characters accepted by mode.
	ReadLine(maxLen int, mode InputMode) (Entry, error)
}

// Display defines how the engine writes to the player.
type Display interface {
	io.Writer

	// SetStyle switches the pen for subsequent writes. Implementations
	// without colour support may ignore it.
	SetStyle(style Style) error

	// ResetStyle returns to the default pen.
	ResetStyle() error

	// ClearScreen clears the display and homes the cursor.
	ClearScreen() error
}

// Alerter defines audible feedback.
type Alerter interface {
	// Beep is the short high "invalid input" tone.
	Beep()

	// Buzz is the longer low "can't do that" tone.
	Buzz()

	// Delay pauses output pacing.
	Delay(d time.Duration)
}

// Console bundles every capability the engine consumes.
type Console interface {
	Input
	Display
	Alerter
}

// InputMode restricts which characters ReadLine accepts.
type InputMode int

const (
	// InputAny accepts any printable character.
	InputAny InputMode = iota
	// InputAlpha accepts letters, space and asterisk.
	InputAlpha
	// InputNumeric accepts digits, sign, decimal point and comma.
	InputNumeric
	// InputAlphanumeric accepts letters, digits and space.
	InputAlphanumeric
)

func (m InputMode) String() string {
	switch m {
	case InputAny:
		return "any"
	case InputAlpha:
		return "alpha"
	case InputNumeric:
		return "numeric"
	case InputAlphanumeric:
		return "alphanumeric"
	default:
		return "unknown"
	}
}

// Accepts reports whether r may be entered in this mode. Letters are
// expected to be upper-cased before the check.
func (m InputMode) Accepts(r rune) bool {
	isUpper := r >= 'A' && r <= 'Z'
	isDigit := r >= '0' && r <= '9'
	switch m {
	case InputAny:
		return r >= ' ' && r <= '~'
	case InputAlpha:
		return isUpper || r == '*' || r == ' '
	case InputNumeric:
		return isDigit || r == '.' || r == ',' || r == '-' || r == '+'
	case InputAlphanumeric:
		return isUpper || isDigit || r == ' '
	default:
		return false
	}
}

// EntryKind is the three-way result of a line read.
type EntryKind int

const (
	// EntryText means the player typed something and pressed Enter.
	EntryText EntryKind = iota
	// EntryBlank means Enter with an empty buffer.
	EntryBlank
	// EntryAborted means the player pressed Escape.
	EntryAborted
)

func (k EntryKind) String() string {
	switch k {
	case EntryText:
		return "text"
	case EntryBlank:
		return "blank"
	case EntryAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Entry is what ReadLine produced.
type Entry struct {
	Kind EntryKind
	Text string
}

// TextEntry builds an EntryText entry.
func TextEntry(text string) Entry {
	return Entry{Kind: EntryText, Text: text}
}

// Style names a pen the engine asks for. The front end maps it to real
// colours through the active theme.
type Style int

const (
	StyleDefault Style = iota
	StyleConditionRed
	StyleConditionYellow
	StyleConditionGreen
	StyleConditionDocked
	StyleRedacted
	StyleEnemyCount
	StyleBaseCount
	StyleStarCount
	StyleEnemyCountBold
	StyleBaseCountBold
	StyleStarCountBold
	StyleBold
)

func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleConditionRed:
		return "condition-red"
	case StyleConditionYellow:
		return "condition-yellow"
	case StyleConditionGreen:
		return "condition-green"
	case StyleConditionDocked:
		return "condition-docked"
	case StyleRedacted:
		return "redacted"
	case StyleEnemyCount:
		return "enemy-count"
	case StyleBaseCount:
		return "base-count"
	case StyleStarCount:
		return "star-count"
	case StyleEnemyCountBold:
		return "enemy-count-bold"
	case StyleBaseCountBold:
		return "base-count-bold"
	case StyleStarCountBold:
		return "star-count-bold"
	case StyleBold:
		return "bold"
	default:
		return "unknown"
	}
}
