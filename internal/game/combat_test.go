package game

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startrek/internal/api"
)

func TestPhasersRePromptWhenOverBudget(t *testing.T) {
	g, con, rnd := newTestGame(mustSector(4, 4))
	i := addEnemy(g, mustSector(4, 6), 400)
	g.totalEnemies++ // one more elsewhere in the galaxy
	g.energy = 100
	con.lines = []api.Entry{text("500"), text("50")}
	// Phaser variance of exactly 1, then a volley that does no harm.
	rnd.floats = []float64{0.5, 0.0}

	require.NoError(t, g.firePhasers())

	out := con.out.String()
	assert.Equal(t, 2, strings.Count(out, "PHASERS READY: ENERGY UNITS TO FIRE? "))
	assert.Contains(t, out, "ONLY GOT 100.000\n")
	assert.InDelta(t, 50.0, g.Energy(), 1e-9)

	wantHit := 50 / math.Pow(2, 0.4)
	assert.InDelta(t, 400-wantHit, g.enemies[i].strength, 1e-9)
	assert.Contains(t, out, "UNIT HIT ON KLINGON AT SECTOR 5 - 7")
	assert.Contains(t, out, "UNIT HIT ON ENTERPRISE FROM SECTOR 5 - 7")
	assert.Equal(t, InProgress, g.Outcome())
	assert.Equal(t, ConditionRed, g.Condition())
}

func TestPhasersDestroyEnemy(t *testing.T) {
	g, con, rnd := newTestGame(mustSector(4, 4))
	i := addEnemy(g, mustSector(4, 5), 100)
	g.totalEnemies++
	con.lines = []api.Entry{text("3,000")}
	rnd.floats = []float64{0.5}

	require.NoError(t, g.firePhasers())

	assert.Contains(t, con.out.String(), "**KLINGON DESTROYED**")
	assert.False(t, g.enemies[i].alive())
	assert.Equal(t, ContentsEmpty, g.grid.At(mustSector(4, 5)))
	assert.Zero(t, g.galaxy.At(g.quadrant).Enemies)
	assert.Equal(t, 1, g.EnemiesLeft())
	assert.Equal(t, 1000.0, g.Energy())
	assert.Equal(t, ConditionGreen, g.Condition())
}

func TestPhasersKillingLastEnemyWithLastEnergyLoses(t *testing.T) {
	g, con, rnd := newTestGame(mustSector(4, 4))
	addEnemy(g, mustSector(4, 5), 10)
	g.energy = 100
	con.lines = []api.Entry{text("100")}
	rnd.floats = []float64{0.5}

	require.NoError(t, g.firePhasers())

	assert.Zero(t, g.EnemiesLeft())
	assert.Equal(t, Lost, g.Outcome())
}

func TestPhasersBlankEntryFiresNothing(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	i := addEnemy(g, mustSector(4, 5), 400)
	con.lines = []api.Entry{blank}

	require.NoError(t, g.firePhasers())

	assert.Equal(t, 4000.0, g.Energy())
	assert.Equal(t, 400.0, g.enemies[i].strength)
	assert.NotContains(t, con.out.String(), "UNIT HIT")
}

func TestPhasersRejectNegativeAmount(t *testing.T) {
	g, con, rnd := newTestGame(mustSector(4, 4))
	addEnemy(g, mustSector(4, 5), 400)
	g.totalEnemies++
	con.lines = []api.Entry{text("-20"), text("20")}
	rnd.floats = []float64{0.5, 0.0}

	require.NoError(t, g.firePhasers())

	assert.Equal(t, 1, con.beeps)
	assert.Equal(t, 3980.0, g.Energy())
}

func TestPhasersDamaged(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	g.damage.Add(SystemPhasers, 3)

	require.NoError(t, g.firePhasers())

	assert.Equal(t, "PHASERS DAMAGED.  3 YEARS ESTIMATED FOR REPAIR.\n\n", con.out.String())
	assert.Equal(t, 1, con.buzzes)
}

func TestTorpedoMissesWhenLeavingQuadrant(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	g.totalEnemies = 1
	before := g.grid
	con.lines = []api.Entry{text("1")}

	require.NoError(t, g.fireTorpedo())

	assert.Equal(t, "TORPEDO COURSE (1-8.99)? \nTRACK: 5 - 6  5 - 7  5 - 8  MISSED!\n", con.out.String())
	assert.Equal(t, before, g.grid)
	assert.Equal(t, mustSector(4, 4), g.Sector())
	assert.Equal(t, 4000.0, g.Energy())
	assert.Equal(t, 1, g.EnemiesLeft())
	assert.Equal(t, 9, g.Torpedoes())
	assert.Equal(t, InProgress, g.Outcome())
}

func TestTorpedoDestroysEnemy(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	i := addEnemy(g, mustSector(4, 6), 400)
	g.totalEnemies++
	con.lines = []api.Entry{text("1")}

	require.NoError(t, g.fireTorpedo())

	assert.Contains(t, con.out.String(), "TRACK: 5 - 6  5 - 7  \nKLINGON DESTROYED!\n")
	assert.False(t, g.enemies[i].alive())
	assert.Equal(t, ContentsEmpty, g.grid.At(mustSector(4, 6)))
	assert.Zero(t, g.galaxy.At(g.quadrant).Enemies)
	assert.Equal(t, 1, g.EnemiesLeft())
	assert.Equal(t, ConditionGreen, g.Condition())
}

func TestTorpedoDestroysLastEnemyAndWins(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	addEnemy(g, mustSector(3, 4), 400)
	con.lines = []api.Entry{text("3")}

	require.NoError(t, g.fireTorpedo())

	assert.Equal(t, Won, g.Outcome())
}

func TestTorpedoDestroysStar(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	g.totalEnemies = 1
	addStar(g, mustSector(4, 2))
	con.lines = []api.Entry{text("5")}

	require.NoError(t, g.fireTorpedo())

	assert.Contains(t, con.out.String(), "STAR DESTROYED!")
	assert.Zero(t, g.galaxy.At(g.quadrant).Stars)
	assert.Equal(t, ContentsEmpty, g.grid.At(mustSector(4, 2)))
}

func TestTorpedoHitsBaseWithoutDestroyingIt(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	g.totalEnemies = 1
	addBase(g, mustSector(4, 7))
	con.lines = []api.Entry{text("1")}

	require.NoError(t, g.fireTorpedo())

	out := con.out.String()
	assert.Contains(t, out, "STARBASE HIT BY ACCIDENT")
	assert.NotContains(t, out, "GOOD WORK")
	assert.NotContains(t, out, "DESTROYED")
	assert.Equal(t, ContentsBase, g.grid.At(mustSector(4, 7)))
	assert.Equal(t, 1, g.galaxy.At(g.quadrant).Bases)
}

func TestTorpedoCourseAboveNineIsRejected(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	g.totalEnemies = 1
	con.lines = []api.Entry{text("9.5"), blank}

	require.NoError(t, g.fireTorpedo())

	assert.Equal(t, 1, con.beeps)
	assert.Equal(t, 10, g.Torpedoes())
}

func TestTorpedoesExhausted(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	g.torpedoes = 0

	require.NoError(t, g.fireTorpedo())

	assert.Equal(t, "NO TORPEDOES LEFT!\n", con.out.String())
}

func TestTorpedoTubesDamaged(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	g.damage.Add(SystemPhotonTorpedoes, 2)

	require.NoError(t, g.fireTorpedo())

	assert.Equal(t, "SPACE CRUD BLOCKING TUBES.  2 YEARS ESTIMATED FOR REPAIR.\n\n", con.out.String())
	assert.Equal(t, 10, g.Torpedoes())
}

func TestIncomingFire(t *testing.T) {
	g, con, rnd := newTestGame(mustSector(4, 4))
	i := addEnemy(g, mustSector(4, 5), 400)
	rnd.floats = []float64{0.5}

	g.incomingFire()

	assert.Equal(t, 320.0, g.enemies[i].strength)
	assert.Equal(t, 3920.0, g.Energy())
	assert.Equal(t, "80.000 UNIT HIT ON ENTERPRISE FROM SECTOR 5 - 6  (3920.000 LEFT)\n", con.out.String())
}

func TestIncomingFireBlockedWhenDocked(t *testing.T) {
	g, con, _ := newTestGame(mustSector(4, 4))
	addEnemy(g, mustSector(0, 0), 400)
	addBase(g, mustSector(4, 5))
	g.checkCondition()

	g.incomingFire()

	assert.Equal(t, "STARBASE PROTECTS ENTERPRISE.\n", con.out.String())
	assert.Equal(t, 4000.0, g.Energy())
}

func TestTraceCourses(t *testing.T) {
	tests := []struct {
		course float64
		want   Sector
	}{
		{1, mustSector(4, 5)},
		{2, mustSector(3, 5)},
		{3, mustSector(3, 4)},
		{5, mustSector(4, 3)},
		{7, mustSector(5, 4)},
	}
	for _, tt := range tests {
		g, _, _ := newTestGame(mustSector(4, 4))
		r := g.trace(tt.course, 1, nil)
		assert.False(t, r.left)
		assert.False(t, r.hit)
		assert.Equal(t, tt.want, r.at, "course %v", tt.course)
	}
}
