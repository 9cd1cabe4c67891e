package airspace

import (
	"fmt"
	"math"
)

// EstimatedPointsPerCell is used for initial sector index capacity estimation.
const EstimatedPointsPerCell = 4

// SectorIndex buckets point IDs into a uniform grid of square sectors. Cell
// size must be at least the conflict radius so that any pair within the
// radius falls in the same or an adjacent sector.
//
// The index is read-only after BuildSectorIndex returns; concurrent readers
// need no locking.
type SectorIndex struct {
	CellSize float64
	Bounds   Bounds
	MaxCell  int // highest valid cell coordinate on either axis

	cells map[Cell][]int
}

// BuildSectorIndex assigns every point to exactly one sector. It fails with
// ErrInvalidParameter if cellSize is non-positive, a coordinate lies outside
// the domain, or a point's ID does not match its position in the slice.
func BuildSectorIndex(points []Point, bounds Bounds, cellSize float64) (*SectorIndex, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size must be positive, got %v", ErrInvalidParameter, cellSize)
	}
	if bounds.Size <= 0 {
		return nil, fmt.Errorf("%w: airspace size must be positive, got %v", ErrInvalidParameter, bounds.Size)
	}

	si := &SectorIndex{
		CellSize: cellSize,
		Bounds:   bounds,
		MaxCell:  int(bounds.Size / cellSize),
		cells:    make(map[Cell][]int, len(points)/EstimatedPointsPerCell+1),
	}

	for i, p := range points {
		if p.ID != i {
			return nil, fmt.Errorf("%w: point at position %d has ID %d", ErrInvalidParameter, i, p.ID)
		}
		if !bounds.Contains(p.X, p.Y) {
			return nil, fmt.Errorf("%w: point %d at (%v, %v) outside airspace [0, %v)",
				ErrInvalidParameter, p.ID, p.X, p.Y, bounds.Size)
		}
		c := si.CellOf(p.X, p.Y)
		si.cells[c] = append(si.cells[c], p.ID)
	}

	return si, nil
}

// CellOf returns the sector containing (x, y).
func (si *SectorIndex) CellOf(x, y float64) Cell {
	return Cell{
		CX: int(math.Floor(x / si.CellSize)),
		CY: int(math.Floor(y / si.CellSize)),
	}
}

// Bucket returns the point IDs assigned to sector c. The returned slice is
// shared with the index and must not be mutated.
func (si *SectorIndex) Bucket(c Cell) []int {
	return si.cells[c]
}

// SectorCount returns the number of occupied sectors.
func (si *SectorIndex) SectorCount() int {
	return len(si.cells)
}

// NeighborCells returns the 3x3 block of sectors centred on c, clipped to
// the grid. Sectors outside the airspace are omitted; there is no
// wraparound at the edges.
//
// With CellSize >= conflict radius, any point within the radius of a point
// in c must lie in one of the returned sectors.
func (si *SectorIndex) NeighborCells(c Cell) []Cell {
	cells := make([]Cell, 0, 9)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			n := Cell{CX: c.CX + dx, CY: c.CY + dy}
			if n.CX < 0 || n.CY < 0 || n.CX > si.MaxCell || n.CY > si.MaxCell {
				continue
			}
			cells = append(cells, n)
		}
	}
	return cells
}
