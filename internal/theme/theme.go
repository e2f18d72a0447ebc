package theme

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"startrek/internal/api"
)

// Pen is how one api.Style is drawn.
type Pen struct {
	Foreground tcell.Color
	Bold       bool
	Dim        bool
}

// TerminalColors defines colour scheme for the transcript area
type TerminalColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
}

// StatusColors defines colour scheme for the status bar
type StatusColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Highlight  tcell.Color
}

// Theme interface defines all theming properties
type Theme interface {
	// Name returns the theme name
	Name() string

	// Pen maps an engine style to colours and attributes.
	Pen(style api.Style) Pen

	TerminalColors() TerminalColors
	StatusColors() StatusColors
}

// ThemeManager manages theme selection
type ThemeManager struct {
	currentTheme Theme
	themes       map[string]Theme
}

// NewThemeManager creates a manager with the built-in themes, "dos" current.
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes: make(map[string]Theme),
	}

	tm.RegisterTheme(NewDOSTheme())
	tm.RegisterTheme(NewMonoTheme())
	tm.currentTheme = tm.themes[DOSThemeName]

	return tm
}

// RegisterTheme registers a new theme
func (tm *ThemeManager) RegisterTheme(theme Theme) {
	tm.themes[theme.Name()] = theme
}

// SetTheme sets the current theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	if theme, exists := tm.themes[name]; exists {
		tm.currentTheme = theme
		return nil
	}
	return fmt.Errorf("theme '%s' not found", name)
}

// Current returns the current theme
func (tm *ThemeManager) Current() Theme {
	return tm.currentTheme
}

// Available returns the registered theme names, sorted
func (tm *ThemeManager) Available() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
