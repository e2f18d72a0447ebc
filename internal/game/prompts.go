package game

import (
	"strconv"
	"strings"

	"startrek/internal/api"
)

const (
	commandWidth = 7
	courseWidth  = 4
	amountWidth  = 15
)

// readNumber prompts until the player enters a parsable number. A blank or
// aborted entry reads as zero.
func (g *Game) readNumber(prompt string, width int) (float64, error) {
	for {
		g.out.print(prompt)
		if g.out.err != nil {
			return 0, g.out.err
		}
		entry, err := g.con.ReadLine(width, api.InputNumeric)
		if err != nil {
			return 0, err
		}
		g.out.print("\n")
		if entry.Kind != api.EntryText {
			return 0, g.out.err
		}
		v, err := parseNumber(entry.Text)
		if err != nil {
			g.con.Beep()
			continue
		}
		return v, g.out.err
	}
}

// parseNumber accepts the numeric input mode's alphabet. Commas are digit
// grouping and are dropped.
func parseNumber(text string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", ""), 64)
}

func (g *Game) readCourse() (float64, error) {
	return g.readNumber("COURSE (1-8.99)? ", courseWidth)
}

func (g *Game) readWarp() (float64, error) {
	return g.readNumber("WARP (0-12.0)? ", courseWidth)
}

func (g *Game) readCommand() (Command, error) {
	g.out.print("COMMAND? ")
	if g.out.err != nil {
		return CommandUndefined, g.out.err
	}
	entry, err := g.con.ReadLine(commandWidth, api.InputNumeric)
	if err != nil {
		return CommandUndefined, err
	}
	g.out.print("\n")
	return ParseCommand(entry), g.out.err
}

func (g *Game) showMenu() {
	for _, c := range menuCommands {
		g.out.printf("  %d = %s\n", int(c), c)
	}
	g.out.print("  -99 OR ESC TO QUIT\n\n")
}

// confirmQuit asks before ending the game. Only an explicit Y quits.
func (g *Game) confirmQuit() error {
	g.out.print("\nARE YOU SURE YOU WANT TO QUIT? ")
	if g.out.err != nil {
		return g.out.err
	}
	yes, err := g.con.ReadYesNo()
	if err != nil {
		return err
	}
	g.out.print("\n")
	if yes {
		g.setOutcome(Quit)
	}
	return g.out.err
}
