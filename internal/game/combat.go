package game

import (
	"math"

	"startrek/internal/log"
)

func (g *Game) showHit(at Sector, target string, left, hit float64) {
	g.out.printf("%.3f UNIT HIT ON %s SECTOR %s  (%.3f LEFT)\n", hit, target, at, left)
}

func (g *Game) attenuation(from Sector) float64 {
	return math.Pow(from.DistanceTo(g.sector), g.defs.HitAttenuator)
}

// incomingFire lets every live enemy in the quadrant shoot at the ship. An
// enemy spends a random share of its strength; the ship takes that amount
// scaled down by distance. A docked ship is shielded by the base.
func (g *Game) incomingFire() {
	if g.galaxy.At(g.quadrant).Enemies < 1 {
		return
	}
	if g.condition == ConditionDocked {
		g.out.print("STARBASE PROTECTS ENTERPRISE.\n")
		return
	}
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.alive() {
			continue
		}
		h := e.strength * g.defs.EnemyFireRate * g.rnd.Float()
		e.strength -= h
		h /= g.attenuation(e.sector)
		g.energy -= h
		g.showHit(e.sector, "ENTERPRISE FROM", g.energy, h)
	}
	log.Debug("incoming fire", "energy", g.energy)
}

// afterCombat runs the shared tail of every weapon command.
func (g *Game) afterCombat() {
	if g.energy <= 0 {
		g.setOutcome(Lost)
	}
	g.incomingFire()
	if g.energy <= 0 {
		g.setOutcome(Lost)
	}
	if g.totalEnemies < 1 {
		g.setOutcome(Won)
	}
	if !g.outcome.Done() {
		g.checkCondition()
	}
}

// phaserFactor is the per-shot variance of a phaser hit, in [0.75,1.25).
func (g *Game) phaserFactor() float64 {
	return 0.75 + g.rnd.Float()*0.5
}

func (g *Game) firePhasers() error {
	if g.damage.IsDamaged(SystemPhasers) {
		g.showDamage(SystemPhasers)
		return g.out.err
	}

	var amount float64
	for {
		x, err := g.readNumber("PHASERS READY: ENERGY UNITS TO FIRE? ", amountWidth)
		if err != nil {
			return err
		}
		if x < 0 {
			g.con.Beep()
			continue
		}
		if x <= g.energy {
			amount = x
			break
		}
		g.out.printf("ONLY GOT %.3f\n", g.energy)
	}
	if amount <= 0 {
		return g.out.err
	}

	g.energy -= amount
	count := float64(g.galaxy.At(g.quadrant).Enemies)
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.alive() {
			continue
		}
		h := amount / (count * g.attenuation(e.sector) * g.phaserFactor())
		e.strength -= h
		g.showHit(e.sector, "KLINGON AT", e.strength, h)
		if !e.alive() {
			g.out.print("**KLINGON DESTROYED**\n")
			g.destroyEnemy(i)
		}
	}
	log.Debug("phasers fired", "amount", amount, "energy", g.energy)

	g.afterCombat()
	return g.out.err
}

func (g *Game) fireTorpedo() error {
	if g.damage.IsDamaged(SystemPhotonTorpedoes) {
		g.out.print("SPACE CRUD BLOCKING TUBES.  ")
		g.showRepairTime(SystemPhotonTorpedoes)
		g.con.Buzz()
		return g.out.err
	}
	if g.torpedoes < 1 {
		g.out.print("NO TORPEDOES LEFT!\n")
		return g.out.err
	}

	var course float64
	for {
		g.out.print("TORPEDO ")
		c, err := g.readCourse()
		if err != nil {
			return err
		}
		if c < 9 {
			course = c
			break
		}
		g.con.Beep()
	}
	if course < 1 {
		return g.out.err
	}

	g.torpedoes--
	g.out.print("TRACK: ")
	r := g.trace(course, g.defs.TorpedoRange, func(s Sector) {
		g.out.printf("%s  ", s)
	})
	if err := g.resolveTorpedo(r); err != nil {
		return err
	}

	g.afterCombat()
	return g.out.err
}

func (g *Game) resolveTorpedo(r traceResult) error {
	if r.left || !r.hit {
		g.out.print("MISSED!\n")
		return nil
	}
	g.out.print("\n")
	switch r.contents {
	case ContentsEnemy:
		i := g.enemyAt(r.at)
		if i < 0 {
			return invariantf("torpedo hit untracked enemy at %s", r.at)
		}
		g.destroyEnemy(i)
		g.out.print("KLINGON DESTROYED!\n")
	case ContentsStar:
		cell := g.galaxy.Cell(g.quadrant)
		if cell.Stars < 1 {
			return invariantf("torpedo hit star at %s with no stars counted", r.at)
		}
		cell.Stars--
		g.grid.Set(r.at, ContentsEmpty)
		g.out.print("STAR DESTROYED!\n")
	case ContentsBase:
		g.out.print("STARBASE HIT BY ACCIDENT . . . NO DAMAGE, BUT BAD LUCK!\n")
	default:
		return invariantf("torpedo hit %s at %s", r.contents.Name(), r.at)
	}
	log.Debug("torpedo hit", "contents", r.contents.Name(), "sector", r.at.String())
	return nil
}

func (g *Game) enemyAt(s Sector) int {
	for i, e := range g.enemies {
		if e.alive() && e.sector == s {
			return i
		}
	}
	return -1
}

func (g *Game) showRepairTime(s System) {
	g.out.printf("%d YEARS ESTIMATED FOR REPAIR.\n\n", g.damage.Severity(s))
}

// showDamage reports a system that blocked the player's command.
func (g *Game) showDamage(s System) {
	g.out.printf("%s DAMAGED.  ", s)
	g.con.Buzz()
	g.showRepairTime(s)
}
