package theme

import (
	"github.com/rivo/tview"
)

// ThemedComponents creates tview widgets styled by a theme
type ThemedComponents struct {
	theme Theme
}

// NewThemedComponents creates a new themed components factory
func NewThemedComponents(theme Theme) *ThemedComponents {
	return &ThemedComponents{theme: theme}
}

// NewTranscriptView creates the scrolling game transcript. Colours arrive as
// tview tags translated from the engine's ANSI output.
func (tc *ThemedComponents) NewTranscriptView() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.TerminalColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetBorderColor(colors.Border)
	textView.SetDynamicColors(true)
	textView.SetScrollable(true)
	textView.SetWrap(false)

	return textView
}

// NewStatusBar creates a new text view styled for status bars
func (tc *ThemedComponents) NewStatusBar() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.StatusColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetDynamicColors(true)

	return textView
}
