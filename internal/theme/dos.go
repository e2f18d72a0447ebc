package theme

import (
	"github.com/gdamore/tcell/v2"

	"startrek/internal/api"
)

// Standard 16-colour DOS palette using fixed hex values so the scan looks
// the same on every terminal scheme.
var (
	DOSBlack     = tcell.NewHexColor(0x000000)
	DOSRed       = tcell.NewHexColor(0x800000)
	DOSGreen     = tcell.NewHexColor(0x008000)
	DOSBrown     = tcell.NewHexColor(0x808000)
	DOSBlue      = tcell.NewHexColor(0x000080)
	DOSMagenta   = tcell.NewHexColor(0x800080)
	DOSCyan      = tcell.NewHexColor(0x008080)
	DOSLightGray = tcell.NewHexColor(0xC0C0C0)

	DOSDarkGray     = tcell.NewHexColor(0x808080)
	DOSLightRed     = tcell.NewHexColor(0xFF0000)
	DOSLightGreen   = tcell.NewHexColor(0x00FF00)
	DOSYellow       = tcell.NewHexColor(0xFFFF00)
	DOSLightBlue    = tcell.NewHexColor(0x0000FF)
	DOSLightMagenta = tcell.NewHexColor(0xFF00FF)
	DOSLightCyan    = tcell.NewHexColor(0x00FFFF)
	DOSWhite        = tcell.NewHexColor(0xFFFFFF)
)

const DOSThemeName = "dos"

// DOSTheme is the default colour theme: bright condition colours, magenta
// enemies, cyan bases and yellow stars.
type DOSTheme struct{}

func NewDOSTheme() *DOSTheme {
	return &DOSTheme{}
}

func (t *DOSTheme) Name() string {
	return DOSThemeName
}

func (t *DOSTheme) Pen(style api.Style) Pen {
	switch style {
	case api.StyleConditionRed:
		return Pen{Foreground: DOSLightRed, Bold: true}
	case api.StyleConditionYellow:
		return Pen{Foreground: DOSYellow, Bold: true}
	case api.StyleConditionGreen:
		return Pen{Foreground: DOSLightGreen, Bold: true}
	case api.StyleConditionDocked:
		return Pen{Foreground: DOSLightCyan, Bold: true}
	case api.StyleRedacted:
		return Pen{Foreground: DOSDarkGray, Dim: true}
	case api.StyleEnemyCount:
		return Pen{Foreground: DOSMagenta}
	case api.StyleBaseCount:
		return Pen{Foreground: DOSCyan}
	case api.StyleStarCount:
		return Pen{Foreground: DOSBrown}
	case api.StyleEnemyCountBold:
		return Pen{Foreground: DOSLightMagenta, Bold: true}
	case api.StyleBaseCountBold:
		return Pen{Foreground: DOSLightCyan, Bold: true}
	case api.StyleStarCountBold:
		return Pen{Foreground: DOSYellow, Bold: true}
	case api.StyleBold:
		return Pen{Foreground: DOSWhite, Bold: true}
	default:
		return Pen{Foreground: tcell.ColorDefault}
	}
}

func (t *DOSTheme) TerminalColors() TerminalColors {
	return TerminalColors{
		Background: DOSBlack,
		Foreground: DOSLightGray,
		Border:     DOSLightGray,
	}
}

func (t *DOSTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: DOSBlue,
		Foreground: DOSLightGray,
		Highlight:  DOSWhite,
	}
}
