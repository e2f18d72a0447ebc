package game

import "startrek/internal/api"

// shortRangeScan redraws the quadrant with the status panel. On arrival in a
// new quadrant the enemies get one volley before the player can act.
func (g *Game) shortRangeScan(arrived bool) {
	g.checkCondition()
	if arrived {
		g.incomingFire()
		if g.energy <= 0 {
			return
		}
	}
	if g.damage.IsDamaged(SystemShortRangeSensors) {
		g.showDamage(SystemShortRangeSensors)
		return
	}
	for x := range GridSize {
		for y := range GridSize {
			g.out.printf("%c ", g.grid[x][y].Symbol())
		}
		g.out.print("  ")
		g.statusLine(x)
	}
}

func (g *Game) statusLine(row int) {
	switch row {
	case 0:
		g.out.printf("YEARS = %d\n", int(g.endDate-g.stardate))
	case 1:
		g.out.printf("STARDATE = %d\n", int(g.stardate))
	case 2:
		g.out.print("CONDITION: ")
		g.out.styled(g.condition.Style(), "%s", g.condition)
		g.out.print("\n")
	case 3:
		g.out.printf("QUADRANT = %s\n", g.quadrant)
	case 4:
		g.out.printf("SECTOR = %s\n", g.sector)
	case 5:
		g.out.printf("ENERGY = %.3f\n", g.energy)
	case 6:
		g.out.printf("%s = %d\n", SystemPhotonTorpedoes, g.torpedoes)
	case 7:
		g.out.printf("KLINGONS LEFT = %d\n", g.totalEnemies)
	}
}

// longRangeScan shows, and marks as scouted, the 3x3 block of quadrants
// around the ship. Cells past the galaxy edge print dimmed.
func (g *Game) longRangeScan() {
	if g.damage.IsDamaged(SystemLongRangeSensors) {
		g.showDamage(SystemLongRangeSensors)
		return
	}
	g.out.printf("%s FOR QUADRANT %s\n", SystemLongRangeSensors, g.quadrant)
	for x := g.quadrant.x - 1; x <= g.quadrant.x+1; x++ {
		for y := g.quadrant.y - 1; y <= g.quadrant.y+1; y++ {
			g.out.print("   ")
			if !inBounds(x, y) {
				g.out.styled(api.StyleRedacted, "***")
				continue
			}
			q := mustQuadrant(x, y)
			g.galaxy.Reveal(q)
			g.drawQuadrant(q)
		}
		g.out.print("\n")
	}
}

// galacticRecords prints every quadrant scouted so far.
func (g *Game) galacticRecords() {
	if g.damage.IsDamaged(SystemGalacticRecords) {
		g.showDamage(SystemGalacticRecords)
		return
	}
	g.out.printf("CUMULATIVE GALACTIC MAP FOR STARDATE %d\n", int(g.stardate))
	for x := range GridSize {
		for y := range GridSize {
			g.out.print("  ")
			g.drawQuadrant(mustQuadrant(x, y))
		}
		g.out.print("\n")
	}
}

// drawQuadrant prints one census cell as three coloured digits. Zero digits
// stay uncoloured; the ship's own quadrant is bold.
func (g *Game) drawQuadrant(q Quadrant) {
	c := g.galaxy.At(q)
	if c.Hidden {
		g.out.styled(api.StyleRedacted, "***")
		return
	}
	current := q == g.quadrant
	g.drawDigit(c.Enemies, current, api.StyleEnemyCount, api.StyleEnemyCountBold)
	g.drawDigit(c.Bases, current, api.StyleBaseCount, api.StyleBaseCountBold)
	g.drawDigit(c.Stars, current, api.StyleStarCount, api.StyleStarCountBold)
}

func (g *Game) drawDigit(n int, current bool, normal, bold api.Style) {
	style := api.StyleDefault
	switch {
	case n != 0 && current:
		style = bold
	case n != 0:
		style = normal
	case current:
		style = api.StyleBold
	}
	g.out.styled(style, "%d", n)
}
