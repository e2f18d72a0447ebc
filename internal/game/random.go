package game

import "math/rand/v2"

// Random is the source of every draw the simulation makes.
type Random interface {
	// Float returns a uniform value in [0,1).
	Float() float64
	// Coord returns a uniform grid index in [0,7].
	Coord() int
}

type pcgRandom struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeded from the runtime's entropy. Runs are not
// reproducible.
func NewRandom() Random {
	return NewSeededRandom(rand.Uint64())
}

// NewSeededRandom returns a PCG-backed Random.
func NewSeededRandom(seed uint64) Random {
	return &pcgRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *pcgRandom) Float() float64 {
	return r.rng.Float64()
}

func (r *pcgRandom) Coord() int {
	return r.rng.IntN(GridSize)
}
