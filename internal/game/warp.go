package game

import (
	"math"

	"startrek/internal/log"
)

// warp runs the warp-engine dialog and moves the ship. It reports whether
// the ship actually moved.
func (g *Game) warp() (bool, error) {
	course, factor, err := g.readWarpOrders()
	if err != nil || course < 1 {
		return false, err
	}

	g.incomingFire()
	if g.energy <= 0 {
		g.setOutcome(Lost)
		return false, g.out.err
	}

	g.spaceWeather()

	steps := int(math.Floor(factor * 8))
	g.energy = g.energy - float64(steps) - float64(steps) + 0.5
	g.stardate++
	g.grid.Set(g.sector, ContentsEmpty)
	if g.stardate > g.endDate {
		g.setOutcome(Lost)
		return false, g.out.err
	}

	if err := g.moveShip(course, factor, steps); err != nil {
		return false, err
	}
	if g.energy <= 0 {
		g.setOutcome(Lost)
		return false, g.out.err
	}
	return true, g.out.err
}

// readWarpOrders asks for a course and a warp factor. A course below 1
// cancels the command; an out-of-range warp factor goes back to the course.
func (g *Game) readWarpOrders() (course, factor float64, err error) {
	for {
		course, err = g.readCourse()
		if err != nil {
			return 0, 0, err
		}
		if course >= 9 {
			g.con.Beep()
			continue
		}
		if course < 1 {
			return course, 0, nil
		}
		for {
			factor, err = g.readWarp()
			if err != nil {
				return 0, 0, err
			}
			if factor <= 0 || factor > g.defs.MaxWarp {
				factor = 0
				break
			}
			if !g.damage.IsDamaged(SystemWarpEngines) || factor <= g.defs.DamagedWarpLimit {
				return course, factor, nil
			}
			g.out.printf("%s DAMAGED; MAX IS %.1f; ", SystemWarpEngines, g.defs.DamagedWarpLimit)
			g.showRepairTime(SystemWarpEngines)
			g.con.Buzz()
		}
	}
}

// spaceWeather rolls the once-per-warp storm or field repair, then advances
// every repair by one year.
func (g *Game) spaceWeather() {
	if g.rnd.Float() <= g.defs.StormChance {
		s := System(math.Floor(g.rnd.Float() * float64(systemCount)))
		if g.rnd.Float() <= 0.5 {
			g.con.Beep()
			g.damage.Add(s, int(math.Floor(6-g.rnd.Float()*5)))
			g.out.printf("**SPACE STORM, %s DAMAGED**\n", s)
			g.showRepairTime(s)
			g.damage.Add(s, 1)
			g.con.Delay(g.defs.StormDelay)
			g.con.Beep()
			log.Debug("space storm", "system", s.String(), "years", g.damage.Severity(s))
		} else if fixed, ok := g.damage.FieldRepair(s); ok {
			g.out.print("**SPOCK USED A NEW REPAIR TECHNIQUE**\n")
			log.Debug("field repair", "system", fixed.String())
		}
	}
	for _, s := range g.damage.Tick() {
		g.out.printf("%s ARE FIXED!\n", s)
		g.con.Beep()
	}
}

// moveShip traces the warp path. The ship either stops inside the quadrant,
// is blocked one sector short of an obstacle, or leaves for the quadrant the
// full vector points at, clamped to the galaxy edge.
func (g *Game) moveShip(course, factor float64, steps int) error {
	r := g.trace(course, steps, nil)
	if r.left {
		qx := int(math.Floor(float64(g.quadrant.x) + factor*r.dx + (float64(g.sector.x)+0.5)/8))
		qy := int(math.Floor(float64(g.quadrant.y) + factor*r.dy + (float64(g.sector.y)+0.5)/8))
		g.quadrant = ClampQuadrant(qx, qy)
		g.newQuadrant = true
		g.lastMove = MoveLeftQuadrant
		log.Debug("warp left quadrant", "quadrant", g.quadrant.String())
		return nil
	}

	g.out.print("\n")
	dest := r.at
	g.lastMove = MoveStayedInQuadrant
	if r.hit {
		switch r.contents {
		case ContentsEnemy, ContentsBase, ContentsStar:
		default:
			return invariantf("ship blocked by %s at %s", r.contents.Name(), r.at)
		}
		g.out.printf("BLOCKED BY %s AT SECTOR %s\n", r.contents.Name(), r.at)
		dest = r.before
		g.lastMove = MoveBlocked
	}
	g.sector = dest
	g.grid.Set(dest, ContentsShip)
	log.Debug("warp within quadrant", "sector", g.sector.String(), "outcome", g.lastMove.String())
	return nil
}
