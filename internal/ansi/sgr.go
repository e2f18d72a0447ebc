package ansi

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	// Reset returns the terminal to its default pen.
	Reset = "\x1b[0m"

	// ClearScreen erases the display and homes the cursor.
	ClearScreen = "\x1b[2J\x1b[H"

	// Bell rings the terminal bell.
	Bell = "\a"

	// Flash briefly toggles reverse video, a visual bell.
	Flash = "\x1b[?5h\x1b[?5l"
)

// colorToANSI converts a tcell.Color to true colour SGR parameters using
// its exact RGB values.
func colorToANSI(color tcell.Color) (fg, bg string) {
	r, g, b := color.RGB()
	fg = fmt.Sprintf("38;2;%d;%d;%d", r, g, b)
	bg = fmt.Sprintf("48;2;%d;%d;%d", r, g, b)
	return fg, bg
}

// SGR builds one select-graphic-rendition sequence. It always starts from a
// reset so pens never accumulate. tcell.ColorDefault leaves the terminal's
// own colour in place.
func SGR(foreground, background tcell.Color, bold, dim bool) string {
	params := []string{"0"}
	if bold {
		params = append(params, "1")
	}
	if dim {
		params = append(params, "2")
	}
	if foreground != tcell.ColorDefault {
		fg, _ := colorToANSI(foreground)
		params = append(params, fg)
	}
	if background != tcell.ColorDefault {
		_, bg := colorToANSI(background)
		params = append(params, bg)
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
