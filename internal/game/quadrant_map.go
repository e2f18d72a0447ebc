package game

import (
	"fmt"
	"math"
)

// QuadrantContents is the census of one quadrant. Hidden quadrants print as
// "***" until a scan reveals them.
type QuadrantContents struct {
	Enemies int
	Bases   int
	Stars   int
	Hidden  bool
}

// QuadrantContentsFromInt decodes enemies*100 + bases*10 + stars. A negative
// value (or zero) marks the quadrant hidden.
func QuadrantContentsFromInt(v int) QuadrantContents {
	hidden := v <= 0
	if v < 0 {
		v = -v
	}
	return QuadrantContents{
		Enemies: v / 100,
		Bases:   v / 10 % 10,
		Stars:   v % 10,
		Hidden:  hidden,
	}
}

// Int is the inverse of QuadrantContentsFromInt.
func (q QuadrantContents) Int() int {
	v := q.Enemies*100 + q.Bases*10 + q.Stars
	if q.Hidden {
		return -v
	}
	return v
}

// Validate checks enemy and star counts fit in one decimal digit and a
// quadrant holds at most one base.
func (q QuadrantContents) Validate() error {
	for _, c := range []struct {
		name string
		n    int
		max  int
	}{{"enemies", q.Enemies, 9}, {"bases", q.Bases, 1}, {"stars", q.Stars, 9}} {
		if c.n < 0 || c.n > c.max {
			return fmt.Errorf("%w: %s count %d", ErrOutOfRange, c.name, c.n)
		}
	}
	return nil
}

func (q QuadrantContents) String() string {
	if q.Hidden {
		return "***"
	}
	return fmt.Sprintf("%d%d%d", q.Enemies, q.Bases, q.Stars)
}

// QuadrantMap is the galaxy, indexed [X][Y] like SectorGrid.
type QuadrantMap [GridSize][GridSize]QuadrantContents

func (m *QuadrantMap) At(q Quadrant) QuadrantContents {
	return m[q.x][q.y]
}

// Cell gives mutable access to one quadrant.
func (m *QuadrantMap) Cell(q Quadrant) *QuadrantContents {
	return &m[q.x][q.y]
}

func (m *QuadrantMap) Reveal(q Quadrant) {
	m[q.x][q.y].Hidden = false
}

// Totals sums enemies and bases over the whole galaxy.
func (m *QuadrantMap) Totals() (enemies, bases int) {
	for x := range m {
		for y := range m[x] {
			enemies += m[x][y].Enemies
			bases += m[x][y].Bases
		}
	}
	return enemies, bases
}

// drawQuadrant rolls the census of one quadrant. Draw order is enemies,
// base, stars.
func drawQuadrant(d Defs, rnd Random) QuadrantContents {
	q := QuadrantContents{Hidden: true}
	if n := rnd.Float(); n < d.EnemyChance {
		n *= d.EnemyScale
		q.Enemies = 1
		for _, threshold := range d.EnemyThresholds {
			if n < threshold {
				q.Enemies++
			}
		}
	}
	if rnd.Float() > d.NoBaseChance {
		q.Bases = 1
	}
	q.Stars = int(math.Floor(rnd.Float()*d.StarSpread + d.StarMin))
	return q
}

// populate fills every quadrant of m. It returns the galaxy totals.
func (m *QuadrantMap) populate(d Defs, rnd Random) (enemies, bases int) {
	for x := range m {
		for y := range m[x] {
			m[x][y] = drawQuadrant(d, rnd)
		}
	}
	return m.Totals()
}
