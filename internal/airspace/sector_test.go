package airspace

import (
	"testing"

	"github.com/banshee-data/airspace.report/internal/testutil"
)

func TestBuildSectorIndex_InvalidCellSize(t *testing.T) {
	points := []Point{{ID: 0, X: 1, Y: 1}}
	for _, cellSize := range []float64{0, -1} {
		_, err := BuildSectorIndex(points, NewBounds(128), cellSize)
		testutil.AssertErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestBuildSectorIndex_OutOfDomain(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"negative x", -0.1, 5},
		{"negative y", 5, -0.1},
		{"x at size (upper edge exclusive)", 128, 5},
		{"y beyond size", 5, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := []Point{{ID: 0, X: tt.x, Y: tt.y}}
			_, err := BuildSectorIndex(points, NewBounds(128), 1.0)
			testutil.AssertErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestBuildSectorIndex_MismatchedID(t *testing.T) {
	points := []Point{{ID: 5, X: 1, Y: 1}}
	_, err := BuildSectorIndex(points, NewBounds(128), 1.0)
	testutil.AssertErrorIs(t, err, ErrInvalidParameter)
}

func TestBuildSectorIndex_EveryPointExactlyOnce(t *testing.T) {
	points, err := Generate(200, 128, 7)
	testutil.AssertNoError(t, err)

	si, err := BuildSectorIndex(points, NewBounds(128), 1.0)
	testutil.AssertNoError(t, err)

	seen := make(map[int]int)
	total := 0
	for _, size := range si.BucketSizes() {
		total += size
	}
	testutil.AssertCount(t, "total bucketed IDs", total, len(points))

	for _, p := range points {
		c := si.CellOf(p.X, p.Y)
		for _, id := range si.Bucket(c) {
			if id == p.ID {
				seen[id]++
			}
		}
	}
	for _, p := range points {
		if seen[p.ID] != 1 {
			t.Fatalf("point %d bucketed %d times, want exactly once in its own cell", p.ID, seen[p.ID])
		}
	}
}

func TestCellOf(t *testing.T) {
	si, err := BuildSectorIndex(nil, NewBounds(128), 1.0)
	testutil.AssertNoError(t, err)

	tests := []struct {
		x, y float64
		want Cell
	}{
		{0, 0, Cell{0, 0}},
		{0.99, 0.99, Cell{0, 0}},
		{1.0, 0, Cell{1, 0}},
		{100.5, 2.5, Cell{100, 2}},
		{127.999, 127.999, Cell{127, 127}},
	}
	for _, tt := range tests {
		if got := si.CellOf(tt.x, tt.y); got != tt.want {
			t.Errorf("CellOf(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNeighborCells_Clipping(t *testing.T) {
	// S=128, C=1 → valid cell coordinates are 0..128.
	si, err := BuildSectorIndex(nil, NewBounds(128), 1.0)
	testutil.AssertNoError(t, err)

	tests := []struct {
		name     string
		cell     Cell
		want     int
		contains Cell
	}{
		{"interior gets full 3x3", Cell{5, 5}, 9, Cell{4, 4}},
		{"origin corner clipped to 2x2", Cell{0, 0}, 4, Cell{1, 1}},
		{"edge clipped to 2x3", Cell{5, 0}, 6, Cell{6, 1}},
		{"high corner keeps in-range block", Cell{128, 128}, 4, Cell{127, 127}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := si.NeighborCells(tt.cell)
			testutil.AssertCount(t, "neighbor cells", len(got), tt.want)

			found := false
			for _, c := range got {
				if c == tt.contains {
					found = true
				}
				if c.CX < 0 || c.CY < 0 || c.CX > si.MaxCell || c.CY > si.MaxCell {
					t.Errorf("neighbor %v outside grid range [0, %d]", c, si.MaxCell)
				}
			}
			if !found {
				t.Errorf("neighbors of %v missing %v: %v", tt.cell, tt.contains, got)
			}
		})
	}
}

func TestNeighborCells_NoWraparound(t *testing.T) {
	si, err := BuildSectorIndex(nil, NewBounds(128), 1.0)
	testutil.AssertNoError(t, err)

	for _, c := range si.NeighborCells(Cell{0, 0}) {
		if c.CX > 1 || c.CY > 1 {
			t.Errorf("neighbor %v of origin indicates wraparound", c)
		}
	}
}
