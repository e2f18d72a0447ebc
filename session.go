package main

import (
	"errors"
	"fmt"
	"io"

	"startrek/internal/api"
	"startrek/internal/game"
	"startrek/internal/log"
	"startrek/internal/terminal"
)

const title = `
                    ----------------------------
                              STAR TREK
                    ----------------------------

           ,------*------,
           '---------   -'     YOU ARE CAPTAIN OF THE STARSHIP
                 '- -'          ENTERPRISE.  THE KLINGONS ARE
             ,----' '----,      INVADING FEDERATION SPACE.
              '-------'
`

var instructionPages = []string{
	`
THE GALAXY IS AN 8 BY 8 GRID OF QUADRANTS AND EVERY QUADRANT IS AN
8 BY 8 GRID OF SECTORS.  YOUR MISSION IS TO DESTROY EVERY KLINGON
BATTLE CRUISER BEFORE TIME RUNS OUT.

THE SHORT RANGE SCAN SHOWS THE CURRENT QUADRANT:
   E = ENTERPRISE    K = KLINGON    B = STARBASE    * = STAR    . = EMPTY

A QUADRANT IS DESCRIBED BY A THREE DIGIT NUMBER: KLINGONS, STARBASES
AND STARS.  314 MEANS 3 KLINGONS, 1 STARBASE AND 4 STARS.  *** MEANS
THE QUADRANT HAS NOT BEEN SCANNED.
`,
	`
COURSES ARE MEASURED COUNTER-CLOCKWISE FROM 1 TO 8.99:

          4  3  2
           \ | /
        5 -- * -- 1
           / | \
          6  7  8

FRACTIONAL COURSES LIE BETWEEN THE WHOLE ONES.  ONE WARP FACTOR
CROSSES ONE QUADRANT.  EVERY WARP ADVANCES THE STARDATE BY ONE AND
COSTS ENERGY.

COMMANDS:
  1 = WARP ENGINES          4 = PHASERS
  2 = SHORT RANGE SENSORS   5 = PHOTON TORPEDOES
  3 = LONG RANGE SENSORS    6 = GALACTIC RECORDS
  -99 OR ESC TO QUIT
`,
	`
PHASERS SPLIT THE ENERGY YOU FIRE AMONG ALL KLINGONS IN THE QUADRANT
AND WEAKEN WITH DISTANCE.  TORPEDOES FLY IN A STRAIGHT LINE AND
DESTROY THE FIRST THING THEY HIT.

KLINGONS FIRE BACK AFTER EVERY ATTACK AND WHEN YOU ENTER THEIR
QUADRANT.  DOCK NEXT TO A STARBASE TO BE REFUELED, REARMED AND
REPAIRED.  SPACE STORMS DAMAGE SYSTEMS; TIME AND LUCK REPAIR THEM.

AT THE PROMPTS, BACKSPACE ERASES A CHARACTER, CTRL-U ERASES THE LINE
AND ESC CANCELS.  GOOD LUCK, CAPTAIN!
`,
}

// runSession shows the title and optional instructions, then plays games
// until the player declines another. Ctrl-C and end of input end it
// without an error.
func runSession(con api.Console, newGame func(api.Console) *game.Game) error {
	err := session(con, newGame)
	if errors.Is(err, terminal.ErrInterrupt) || errors.Is(err, io.EOF) {
		log.Info("session ended by player", "reason", err)
		return nil
	}
	return err
}

func session(con api.Console, newGame func(api.Console) *game.Game) error {
	if err := con.ClearScreen(); err != nil {
		return err
	}
	if _, err := fmt.Fprint(con, title); err != nil {
		return err
	}

	want, err := ask(con, "\nDO YOU WANT INSTRUCTIONS? ")
	if err != nil {
		return err
	}
	if want {
		if err := showInstructions(con); err != nil {
			return err
		}
	}

	for {
		if err := con.ClearScreen(); err != nil {
			return err
		}

		err := newGame(con).Play()
		if errors.Is(err, game.ErrInvariant) {
			log.Error("game ended on internal error", "error", err)
			if _, werr := fmt.Fprintf(con, "\n*** INTERNAL ERROR: %v ***\n", err); werr != nil {
				return werr
			}
		} else if err != nil {
			return err
		}

		again, err := ask(con, "\nTRY AGAIN? ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func ask(con api.Console, question string) (bool, error) {
	if _, err := fmt.Fprint(con, question); err != nil {
		return false, err
	}
	yes, err := con.ReadYesNo()
	if err != nil {
		return false, err
	}
	_, err = fmt.Fprint(con, "\n")
	return yes, err
}

func showInstructions(con api.Console) error {
	for _, page := range instructionPages {
		if err := con.ClearScreen(); err != nil {
			return err
		}
		if _, err := fmt.Fprint(con, page); err != nil {
			return err
		}
		if _, err := fmt.Fprint(con, "\nPRESS A KEY TO CONTINUE ... "); err != nil {
			return err
		}
		if _, err := con.ReadKey(); err != nil {
			return err
		}
		if _, err := fmt.Fprint(con, "\n"); err != nil {
			return err
		}
	}
	return nil
}
