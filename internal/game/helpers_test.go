package game

import (
	"bytes"
	"errors"
	"time"

	"startrek/internal/api"
)

// scriptedRandom replays fixed draws and falls back to constants once a
// script runs dry.
type scriptedRandom struct {
	floats    []float64
	coords    []int
	lastFloat float64
	lastCoord int
}

func (r *scriptedRandom) Float() float64 {
	if len(r.floats) == 0 {
		return r.lastFloat
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRandom) Coord() int {
	if len(r.coords) == 0 {
		return r.lastCoord
	}
	c := r.coords[0]
	r.coords = r.coords[1:]
	return c
}

var errScriptDone = errors.New("script exhausted")

// scriptedConsole answers prompts from a queue and records output.
type scriptedConsole struct {
	lines  []api.Entry
	keys   []rune
	yesNo  []bool
	out    bytes.Buffer
	styles []api.Style
	beeps  int
	buzzes int
	delays []time.Duration
}

func (c *scriptedConsole) ReadKey() (rune, error) {
	if len(c.keys) == 0 {
		return 0, errScriptDone
	}
	k := c.keys[0]
	c.keys = c.keys[1:]
	return k, nil
}

func (c *scriptedConsole) ReadYesNo() (bool, error) {
	if len(c.yesNo) == 0 {
		return false, errScriptDone
	}
	v := c.yesNo[0]
	c.yesNo = c.yesNo[1:]
	return v, nil
}

func (c *scriptedConsole) ReadLine(maxLen int, mode api.InputMode) (api.Entry, error) {
	if len(c.lines) == 0 {
		return api.Entry{}, errScriptDone
	}
	e := c.lines[0]
	c.lines = c.lines[1:]
	return e, nil
}

func (c *scriptedConsole) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *scriptedConsole) SetStyle(s api.Style) error {
	c.styles = append(c.styles, s)
	return nil
}

func (c *scriptedConsole) ResetStyle() error { return nil }
func (c *scriptedConsole) ClearScreen() error { return nil }
func (c *scriptedConsole) Beep()              { c.beeps++ }
func (c *scriptedConsole) Buzz()              { c.buzzes++ }

func (c *scriptedConsole) Delay(d time.Duration) {
	c.delays = append(c.delays, d)
}

func text(s string) api.Entry {
	return api.TextEntry(s)
}

var blank = api.Entry{Kind: api.EntryBlank}

// failingConsole fails every write.
type failingConsole struct {
	scriptedConsole
}

var errBrokenPipe = errors.New("broken pipe")

func (c *failingConsole) Write(p []byte) (int, error) {
	return 0, errBrokenPipe
}

// newTestGame builds a game parked in quadrant (3,3) with an empty sector
// grid and the ship at ship. No galaxy population is drawn.
func newTestGame(ship Sector) (*Game, *scriptedConsole, *scriptedRandom) {
	con := &scriptedConsole{}
	rnd := &scriptedRandom{lastFloat: 0.99}
	g := New(DefaultDefs(), rnd, con)
	g.quadrant = mustQuadrant(3, 3)
	g.grid.Clear()
	g.sector = ship
	g.grid.Set(ship, ContentsShip)
	for x := range GridSize {
		for y := range GridSize {
			g.galaxy[x][y] = QuadrantContents{Hidden: true}
		}
	}
	g.galaxy.Reveal(g.quadrant)
	g.totalBases = 1
	return g, con, rnd
}

// addEnemy places a live enemy in the current quadrant and counts it.
func addEnemy(g *Game, s Sector, strength float64) int {
	for i := range g.enemies {
		if g.enemies[i].alive() {
			continue
		}
		g.enemies[i] = enemy{sector: s, strength: strength}
		g.grid.Set(s, ContentsEnemy)
		g.galaxy.Cell(g.quadrant).Enemies++
		g.totalEnemies++
		g.initialEnemies++
		return i
	}
	panic("no free enemy slot")
}

func addStar(g *Game, s Sector) {
	g.grid.Set(s, ContentsStar)
	g.galaxy.Cell(g.quadrant).Stars++
}

func addBase(g *Game, s Sector) {
	g.grid.Set(s, ContentsBase)
	g.galaxy.Cell(g.quadrant).Bases++
}
