package game

import "fmt"

// SectorContents is what occupies one sector.
type SectorContents int

const (
	ContentsUnknown SectorContents = iota
	ContentsEmpty
	ContentsShip
	ContentsEnemy
	ContentsBase
	ContentsStar
)

const contentsSymbols = "U.EKB*"

// Symbol is the short-range scan glyph.
func (c SectorContents) Symbol() byte {
	if c < ContentsUnknown || c > ContentsStar {
		return '?'
	}
	return contentsSymbols[c]
}

// Name is used in blockage and hit messages.
func (c SectorContents) Name() string {
	switch c {
	case ContentsEmpty:
		return "EMPTY SPACE"
	case ContentsShip:
		return "ENTERPRISE"
	case ContentsEnemy:
		return "KLINGON"
	case ContentsBase:
		return "STARBASE"
	case ContentsStar:
		return "STAR"
	default:
		return "UNKNOWN"
	}
}

func (c SectorContents) String() string {
	return c.Name()
}

// SectorGrid is the 8x8 content map of the current quadrant, indexed [X][Y].
type SectorGrid [GridSize][GridSize]SectorContents

func (g *SectorGrid) At(s Sector) SectorContents {
	return g[s.x][s.y]
}

func (g *SectorGrid) Set(s Sector, c SectorContents) {
	g[s.x][s.y] = c
}

// Clear marks every sector empty.
func (g *SectorGrid) Clear() {
	for x := range g {
		for y := range g[x] {
			g[x][y] = ContentsEmpty
		}
	}
}

// Count returns how many sectors hold c.
func (g *SectorGrid) Count(c SectorContents) int {
	n := 0
	for x := range g {
		for y := range g[x] {
			if g[x][y] == c {
				n++
			}
		}
	}
	return n
}

// FindEmpty draws random sectors until one is empty. It gives up after
// retries draws.
func (g *SectorGrid) FindEmpty(rnd Random, retries int) (Sector, error) {
	for range retries {
		s := mustSector(rnd.Coord(), rnd.Coord())
		if g.At(s) == ContentsEmpty {
			return s, nil
		}
	}
	return Sector{}, &InvariantError{
		Msg: fmt.Sprintf("placement gave up after %d draws", retries),
		Err: ErrNoEmptySector,
	}
}
