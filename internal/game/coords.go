package game

import (
	"fmt"
	"math"
)

// GridSize is the edge of both the sector grid and the galaxy.
const GridSize = 8

func inBounds(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// Sector is a cell of the current quadrant.
//
// Axis order: X is the first grid index, drawn by the short-range scan as the
// row, and Y is the second (the column). The course tracer moves Y with
// cos(angle) and X with -sin(angle), so course 1 runs along a row and course 3
// runs up the rows. Every display prints "X - Y", 1-based. Swapping the axes
// changes what a course means on screen.
type Sector struct {
	x, y int
}

// NewSector validates x and y against the grid.
func NewSector(x, y int) (Sector, error) {
	if !inBounds(x, y) {
		return Sector{}, fmt.Errorf("%w: sector (%d, %d)", ErrOutOfRange, x, y)
	}
	return Sector{x: x, y: y}, nil
}

// mustSector is for coordinates the caller already range-checked.
func mustSector(x, y int) Sector {
	s, err := NewSector(x, y)
	if err != nil {
		panic(&InvariantError{Msg: "sector construction", Err: err})
	}
	return s
}

func (s Sector) X() int { return s.x }
func (s Sector) Y() int { return s.y }

func (s Sector) String() string {
	return fmt.Sprintf("%d - %d", s.x+1, s.y+1)
}

// DistanceTo is the Euclidean distance between two cells.
func (s Sector) DistanceTo(o Sector) float64 {
	return Distance(s.x, s.y, o.x, o.y)
}

// Quadrant is a cell of the galaxy. It shares Sector's axis order.
type Quadrant struct {
	x, y int
}

// NewQuadrant validates x and y against the galaxy.
func NewQuadrant(x, y int) (Quadrant, error) {
	if !inBounds(x, y) {
		return Quadrant{}, fmt.Errorf("%w: quadrant (%d, %d)", ErrOutOfRange, x, y)
	}
	return Quadrant{x: x, y: y}, nil
}

func mustQuadrant(x, y int) Quadrant {
	q, err := NewQuadrant(x, y)
	if err != nil {
		panic(&InvariantError{Msg: "quadrant construction", Err: err})
	}
	return q
}

// ClampQuadrant pins x and y to the galaxy edge. Travel never wraps.
func ClampQuadrant(x, y int) Quadrant {
	return Quadrant{x: clamp(x), y: clamp(y)}
}

func clamp(v int) int {
	return max(0, min(GridSize-1, v))
}

func (q Quadrant) X() int { return q.x }
func (q Quadrant) Y() int { return q.y }

func (q Quadrant) String() string {
	return fmt.Sprintf("%d - %d", q.x+1, q.y+1)
}

// Distance is sqrt(dx^2 + dy^2) over integer cell deltas.
func Distance(x1, y1, x2, y2 int) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(float64(dx*dx + dy*dy))
}
