package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadrantContentsIntRoundTrip(t *testing.T) {
	for enemies := range 10 {
		for bases := range 2 {
			for stars := range 10 {
				v := enemies*100 + bases*10 + stars
				for _, encoded := range []int{v, -v} {
					q := QuadrantContentsFromInt(encoded)
					if q.Int() != encoded {
						t.Fatalf("round trip of %d gave %d", encoded, q.Int())
					}
				}
			}
		}
	}
}

func TestQuadrantContentsFromInt(t *testing.T) {
	q := QuadrantContentsFromInt(-215)
	assert.Equal(t, QuadrantContents{Enemies: 2, Bases: 1, Stars: 5, Hidden: true}, q)
	assert.Equal(t, "***", q.String())

	q = QuadrantContentsFromInt(307)
	assert.Equal(t, QuadrantContents{Enemies: 3, Bases: 0, Stars: 7}, q)
	assert.Equal(t, "307", q.String())
}

func TestQuadrantContentsValidate(t *testing.T) {
	assert.NoError(t, QuadrantContents{Enemies: 7, Bases: 1, Stars: 8}.Validate())
	assert.ErrorIs(t, QuadrantContents{Enemies: -1}.Validate(), ErrOutOfRange)
	assert.ErrorIs(t, QuadrantContents{Stars: 10}.Validate(), ErrOutOfRange)
	assert.ErrorIs(t, QuadrantContents{Bases: 2, Stars: 1}.Validate(), ErrOutOfRange)
	assert.NoError(t, QuadrantContents{Enemies: 9, Stars: 9}.Validate())
}

func TestDrawQuadrant(t *testing.T) {
	tests := []struct {
		name   string
		floats []float64
		want   QuadrantContents
	}{
		{
			name:   "empty of enemies, no base",
			floats: []float64{0.5, 0.5, 0.5},
			want:   QuadrantContents{Stars: 5, Hidden: true},
		},
		{
			name:   "three thresholds passed",
			floats: []float64{0.01, 0.97, 0.0},
			want:   QuadrantContents{Enemies: 4, Bases: 1, Stars: 1, Hidden: true},
		},
		{
			name:   "every threshold passed",
			floats: []float64{0.0001, 0.1, 0.999},
			want:   QuadrantContents{Enemies: 7, Stars: 8, Hidden: true},
		},
		{
			name:   "just under the enemy chance",
			floats: []float64{0.2, 0.96, 0.25},
			want:   QuadrantContents{Enemies: 1, Stars: 3, Hidden: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rnd := &scriptedRandom{floats: tt.floats}
			assert.Equal(t, tt.want, drawQuadrant(DefaultDefs(), rnd))
		})
	}
}

func TestPopulateStaysInBounds(t *testing.T) {
	for seed := range uint64(50) {
		var m QuadrantMap
		enemies, bases := m.populate(DefaultDefs(), NewSeededRandom(seed))

		gotEnemies, gotBases := 0, 0
		for x := range GridSize {
			for y := range GridSize {
				c := m[x][y]
				require.NoError(t, c.Validate())
				assert.True(t, c.Hidden)
				assert.LessOrEqual(t, c.Enemies, DefaultDefs().MaxEnemySlots)
				assert.LessOrEqual(t, c.Bases, 1)
				assert.GreaterOrEqual(t, c.Stars, 1)
				assert.LessOrEqual(t, c.Stars, 8)
				gotEnemies += c.Enemies
				gotBases += c.Bases
			}
		}
		assert.Equal(t, gotEnemies, enemies)
		assert.Equal(t, gotBases, bases)
	}
}
