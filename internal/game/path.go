package game

import "math"

// traceResult is where a straight-line trace through the quadrant stopped.
type traceResult struct {
	// left is set when the path crossed the quadrant edge.
	left bool
	// hit is set when the path stopped on an occupied sector.
	hit      bool
	contents SectorContents
	// at is the hit sector, or the last sector reached when nothing was hit.
	at Sector
	// before is the last sector passed before a hit.
	before Sector
	// dx and dy are the per-step deltas along X and Y.
	dx, dy float64
}

// courseDeltas turns a course in [1,9) into per-step deltas. Course 1 moves
// along +Y, course 3 along -X (see Sector for the axis order).
func courseDeltas(course float64) (dx, dy float64) {
	angle := (course - 1) * math.Pi / 4
	return -math.Sin(angle), math.Cos(angle)
}

// trace walks up to steps sectors from the ship along course. The ship's own
// sector must already be clear when the trace is for a warp. visit is called
// with every in-quadrant sector before it is checked for an obstacle.
func (g *Game) trace(course float64, steps int, visit func(Sector)) traceResult {
	dx, dy := courseDeltas(course)
	r := traceResult{at: g.sector, dx: dx, dy: dy}
	px := float64(g.sector.x) + 0.5
	py := float64(g.sector.y) + 0.5
	for range steps {
		px += dx
		py += dy
		x, y := int(math.Floor(px)), int(math.Floor(py))
		if !inBounds(x, y) {
			r.left = true
			return r
		}
		s := mustSector(x, y)
		if visit != nil {
			visit(s)
		}
		r.before = r.at
		r.at = s
		if c := g.grid.At(s); c != ContentsEmpty {
			r.hit = true
			r.contents = c
			return r
		}
	}
	return r
}
