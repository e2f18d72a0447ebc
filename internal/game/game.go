package game

import (
	"startrek/internal/api"
	"startrek/internal/log"
)

// enemy is one slot of the per-quadrant tracking table. A slot with no
// strength left is dead or unused.
type enemy struct {
	sector   Sector
	strength float64
}

func (e enemy) alive() bool {
	return e.strength > 0
}

// Game is the whole mutable state of one play-through. It is driven from a
// single goroutine; every blocking read goes through the console.
type Game struct {
	defs Defs
	rnd  Random
	con  api.Console
	out  *screen

	energy         float64
	torpedoes      int
	stardate       StarDate
	endDate        StarDate
	totalEnemies   int
	initialEnemies int
	totalBases     int

	quadrant Quadrant
	sector   Sector
	grid     SectorGrid
	galaxy   QuadrantMap
	damage   DamageTable
	enemies  []enemy

	condition   Condition
	outcome     Outcome
	newQuadrant bool
	lastCommand Command
	lastMove    MoveOutcome
}

// New returns a game ready for Init. Nothing is drawn or printed yet.
func New(defs Defs, rnd Random, con api.Console) *Game {
	return &Game{
		defs:      defs,
		rnd:       rnd,
		con:       con,
		out:       &screen{con: con},
		energy:    defs.InitialEnergy,
		torpedoes: defs.InitialTorpedoes,
		stardate:  defs.StartDate,
		endDate:   defs.EndDate,
		enemies:   make([]enemy, defs.MaxEnemySlots),
		condition: ConditionUndefined,
		outcome:   InProgress,
	}
}

func (g *Game) Energy() float64      { return g.energy }
func (g *Game) Torpedoes() int       { return g.torpedoes }
func (g *Game) StarDate() StarDate   { return g.stardate }
func (g *Game) EndDate() StarDate    { return g.endDate }
func (g *Game) Outcome() Outcome     { return g.outcome }
func (g *Game) Condition() Condition { return g.condition }
func (g *Game) Quadrant() Quadrant   { return g.quadrant }
func (g *Game) Sector() Sector       { return g.sector }
func (g *Game) EnemiesLeft() int     { return g.totalEnemies }

// LastCommand is the most recent command the player issued.
func (g *Game) LastCommand() Command { return g.lastCommand }

// LastMove is what the most recent warp did inside the current quadrant.
func (g *Game) LastMove() MoveOutcome { return g.lastMove }

// Init populates the galaxy, picks the starting quadrant and prints the
// objective.
func (g *Game) Init() error {
	g.damage.RepairAll()
	g.quadrant = mustQuadrant(g.rnd.Coord(), g.rnd.Coord())
	g.totalEnemies, g.totalBases = g.galaxy.populate(g.defs, g.rnd)

	if years := int(g.endDate - g.defs.StartDate); g.totalEnemies > years {
		g.endDate = g.defs.StartDate + StarDate(g.totalEnemies)
	}
	if g.totalBases == 0 {
		q := mustQuadrant(g.rnd.Coord(), g.rnd.Coord())
		g.galaxy.Cell(q).Bases = 1
		g.totalBases = 1
	}
	g.initialEnemies = g.totalEnemies
	g.newQuadrant = true

	log.Info("galaxy populated",
		"enemies", g.totalEnemies,
		"bases", g.totalBases,
		"end_date", int(g.endDate),
		"quadrant", g.quadrant.String())

	g.out.printf("\nOBJECTIVE: DESTROY %d KLINGON BATTLE CRUISERS IN %d YEARS.\n",
		g.totalEnemies, int(g.endDate-g.stardate))
	g.out.printf(" THE NUMBER OF STARBASES IS %d.\n\n", g.totalBases)
	return g.out.err
}

// enterQuadrant lays out the sector grid for the current quadrant.
func (g *Game) enterQuadrant() error {
	cell := g.galaxy.Cell(g.quadrant)
	if err := cell.Validate(); err != nil {
		return &InvariantError{Msg: "quadrant " + g.quadrant.String(), Err: err}
	}
	if cell.Enemies > len(g.enemies) {
		return invariantf("quadrant %s holds %d enemies, only %d slots",
			g.quadrant, cell.Enemies, len(g.enemies))
	}
	cell.Hidden = false
	g.newQuadrant = false
	g.lastMove = MoveNone

	g.sector = mustSector(g.rnd.Coord(), g.rnd.Coord())
	g.grid.Clear()
	g.grid.Set(g.sector, ContentsShip)

	for i := range g.enemies {
		g.enemies[i] = enemy{}
		if i >= cell.Enemies {
			continue
		}
		s, err := g.placeRandom(ContentsEnemy)
		if err != nil {
			return err
		}
		g.enemies[i] = enemy{sector: s, strength: g.defs.EnemyStrength}
	}
	if cell.Bases > 0 {
		if _, err := g.placeRandom(ContentsBase); err != nil {
			return err
		}
	}
	for range cell.Stars {
		if _, err := g.placeRandom(ContentsStar); err != nil {
			return err
		}
	}

	log.Debug("quadrant entered",
		"quadrant", g.quadrant.String(),
		"sector", g.sector.String(),
		"contents", cell.String())
	return nil
}

func (g *Game) placeRandom(c SectorContents) (Sector, error) {
	s, err := g.grid.FindEmpty(g.rnd, g.defs.PlacementRetries)
	if err != nil {
		log.Error("placement failed", "contents", c.Name(), "error", err)
		return Sector{}, err
	}
	g.grid.Set(s, c)
	return s, nil
}

// checkCondition recomputes the alert status. A base in the 3x3
// neighbourhood docks the ship, which resupplies it and clears all damage.
func (g *Game) checkCondition() {
	for x := g.sector.x - 1; x <= g.sector.x+1; x++ {
		for y := g.sector.y - 1; y <= g.sector.y+1; y++ {
			if !inBounds(x, y) || g.grid[x][y] != ContentsBase {
				continue
			}
			g.condition = ConditionDocked
			g.energy = g.defs.InitialEnergy
			g.torpedoes = g.defs.InitialTorpedoes
			g.damage.RepairAll()
			return
		}
	}
	switch {
	case g.galaxy.At(g.quadrant).Enemies > 0:
		g.condition = ConditionRed
	case g.energy < g.defs.LowEnergyRatio*g.defs.InitialEnergy:
		g.condition = ConditionYellow
	default:
		g.condition = ConditionGreen
	}
}

// setOutcome applies a terminal state; the first one set wins.
func (g *Game) setOutcome(o Outcome) {
	if g.outcome.Update(o) {
		log.Info("game over", "outcome", o.String(), "stardate", int(g.stardate))
	}
}

// checkTermination applies the end conditions after a command.
func (g *Game) checkTermination() {
	switch {
	case g.energy <= 0:
		g.setOutcome(Lost)
	case g.totalEnemies < 1:
		g.setOutcome(Won)
	case g.stardate > g.endDate:
		g.setOutcome(Lost)
	}
}

// destroyEnemy retires slot i and keeps every enemy count in step.
func (g *Game) destroyEnemy(i int) {
	e := &g.enemies[i]
	cell := g.galaxy.Cell(g.quadrant)
	if cell.Enemies < 1 || g.totalEnemies < 1 {
		panic(invariantf("enemy destroyed in %s with no enemies counted", g.quadrant))
	}
	e.strength = 0
	g.grid.Set(e.sector, ContentsEmpty)
	cell.Enemies--
	g.totalEnemies--
	log.Debug("enemy destroyed", "sector", e.sector.String(), "left", g.totalEnemies)
}
