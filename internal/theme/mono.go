package theme

import (
	"github.com/gdamore/tcell/v2"

	"startrek/internal/api"
)

const MonoThemeName = "mono"

// MonoTheme keeps the terminal's own colours and uses only bold and dim.
type MonoTheme struct{}

func NewMonoTheme() *MonoTheme {
	return &MonoTheme{}
}

func (t *MonoTheme) Name() string {
	return MonoThemeName
}

func (t *MonoTheme) Pen(style api.Style) Pen {
	switch style {
	case api.StyleRedacted:
		return Pen{Foreground: tcell.ColorDefault, Dim: true}
	case api.StyleDefault, api.StyleEnemyCount, api.StyleBaseCount, api.StyleStarCount:
		return Pen{Foreground: tcell.ColorDefault}
	default:
		return Pen{Foreground: tcell.ColorDefault, Bold: true}
	}
}

func (t *MonoTheme) TerminalColors() TerminalColors {
	return TerminalColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		Border:     tcell.ColorDefault,
	}
}

func (t *MonoTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		Highlight:  tcell.ColorDefault,
	}
}
