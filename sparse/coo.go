package sparse

import (
	"fmt"

	"github.com/IrakliGurgenidze/Matmul/hashctx"
)

// COO is a coordinate-list representation of a Boolean M x N matrix: an
// ordered sequence of nonzero Coords plus a positionwise-corresponding
// sequence of HashCoords carrying the per-axis hashes under hc's seeds.
//
// Invariants: 0 <= row < M and 0 <= col < N for every entry; no duplicate
// (row, col); len(Coords) == len(Hashed).
type COO struct {
	M, N   int
	Coords []Coord
	Hashed []HashCoord
}

// cooErrorf tags an error with the constructor that produced it.
func cooErrorf(op string, err error) error {
	return fmt.Errorf("sparse.%s: %w", op, err)
}

// NewCOO validates dims and coordinates and builds a COO, computing each
// entry's HashCoord under hc. Order is preserved from coords (no sort).
//
// Complexity: O(len(coords)) time, with an O(len(coords)) map for dedup
// detection.
func NewCOO(rows, cols int, coords []Coord, hc *hashctx.HashContext) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, cooErrorf("NewCOO", ErrInvalidDimensions)
	}
	if hc == nil {
		return nil, cooErrorf("NewCOO", ErrNilHashContext)
	}

	seen := make(map[Coord]struct{}, len(coords))
	hashed := make([]HashCoord, len(coords))
	out := make([]Coord, len(coords))
	for i, c := range coords {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, cooErrorf("NewCOO", fmt.Errorf("(%d,%d) outside %dx%d: %w", c.Row, c.Col, rows, cols, ErrOutOfRange))
		}
		if _, dup := seen[c]; dup {
			return nil, cooErrorf("NewCOO", fmt.Errorf("(%d,%d): %w", c.Row, c.Col, ErrDuplicateCoord))
		}
		seen[c] = struct{}{}

		out[i] = c
		hashed[i] = HashCoord{Row: c.Row, Col: c.Col, H1: hc.H1(c.Row), H2: hc.H2(c.Col)}
	}

	return &COO{M: rows, N: cols, Coords: out, Hashed: hashed}, nil
}

// Shape returns (M, N).
func (m *COO) Shape() (int, int) { return m.M, m.N }

// CoordsSlice returns the coordinate-list view.
func (m *COO) CoordsSlice() []Coord { return m.Coords }

// HashedCoords returns the hash-enriched coordinate-list view.
func (m *COO) HashedCoords() []HashCoord { return m.Hashed }
