package game

import (
	"fmt"

	"startrek/internal/log"
)

// Play runs one game to completion and prints the final report. A returned
// error is either a console I/O failure or an ErrInvariant; both end this
// game only.
func (g *Game) Play() (err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InvariantError)
			if !ok {
				panic(r)
			}
			log.Error("game aborted", "error", ie)
			err = ie
		}
	}()

	if err := g.Init(); err != nil {
		return err
	}
	for !g.outcome.Done() {
		arrived := g.newQuadrant
		if arrived {
			if err := g.enterQuadrant(); err != nil {
				return err
			}
		}
		g.shortRangeScan(arrived)
		if g.out.err != nil {
			return g.out.err
		}
		if g.energy <= 0 {
			g.setOutcome(Lost)
			break
		}
		if err := g.commandLoop(); err != nil {
			return err
		}
	}
	return g.report()
}

// commandLoop reads commands until the game ends or the ship moves.
func (g *Game) commandLoop() error {
	for {
		cmd, err := g.readCommand()
		if err != nil {
			return err
		}
		g.lastCommand = cmd
		log.Debug("command", "command", cmd.String())

		moved, err := g.dispatch(cmd)
		if err != nil {
			return err
		}
		if g.out.err != nil {
			return g.out.err
		}
		if g.outcome.Done() || moved {
			return nil
		}
	}
}

func (g *Game) dispatch(cmd Command) (moved bool, err error) {
	switch cmd {
	case CommandWarpEngines:
		moved, err = g.warp()
	case CommandShortRangeScan:
		g.shortRangeScan(false)
	case CommandLongRangeScan:
		g.longRangeScan()
	case CommandPhasers:
		err = g.firePhasers()
	case CommandPhotonTorpedoes:
		err = g.fireTorpedo()
	case CommandGalacticRecords:
		g.galacticRecords()
	case CommandQuit:
		return false, g.confirmQuit()
	case CommandUndefined:
		g.showMenu()
		return false, nil
	default:
		return false, invariantf("unhandled command %d", int(cmd))
	}
	if err != nil {
		return false, err
	}
	g.checkTermination()
	return moved, nil
}

// report prints the end-of-game summary.
func (g *Game) report() error {
	g.out.printf("\nIT IS STARDATE %d.\n", int(g.stardate))
	switch g.outcome {
	case Won:
		years := int(g.stardate - g.defs.StartDate)
		rating := int(float64(g.initialEnemies) / float64(max(1, years)) * 1000)
		g.out.print("THE FEDERATION HAS BEEN SAVED!\n")
		g.out.print("YOU ARE PROMOTED TO ADMIRAL.\n")
		g.out.printf("%d KLINGONS IN %d YEARS.  RATING = %d\n\n", g.initialEnemies, years, rating)
	case Lost:
		outOfTime := g.stardate > g.endDate
		outOfEnergy := g.energy <= 0
		if !outOfTime && !outOfEnergy {
			return invariantf("game lost with time and energy left")
		}
		if outOfTime {
			g.out.print("YOU RAN OUT OF TIME!\n")
		}
		if outOfEnergy {
			g.out.print("YOU RAN OUT OF ENERGY!\n")
		}
		g.out.print("THANKS TO YOUR BUNGLING, THE FEDERATION WILL BE\n")
		g.out.printf("CONQUERED BY THE REMAINING %d KLINGON CRUISERS!\n", g.totalEnemies)
		g.out.print("YOU ARE DEMOTED TO CABIN BOY!\n")
	case Quit:
		g.out.print("OKAY, QUITTER -- NO KUDOS FOR YOU.\n")
	default:
		return invariantf("report requested while game is %s", g.outcome)
	}
	if g.out.err != nil {
		return fmt.Errorf("write report: %w", g.out.err)
	}
	return nil
}
