package airspace

import (
	"errors"

	"github.com/golang/geo/r2"
)

// ErrInvalidParameter is returned for caller errors: non-positive sizes or
// radii, out-of-domain coordinates, or malformed point sets. Check with
// errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Point is one aircraft position inside the airspace. ID is the point's
// position in its PointSet; detection relies on IDs being dense 0..N-1.
type Point struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Cell identifies one square sector of the airspace grid.
type Cell struct {
	CX int
	CY int
}

// ConflictPair is an unordered pair of point IDs closer than the conflict
// radius. A is always the lower ID, so (a,b) and (b,a) collapse to one value.
type ConflictPair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Bounds is the square airspace domain [0, Size) on both axes.
type Bounds struct {
	Size float64
	rect r2.Rect
}

// NewBounds returns the domain for a square airspace with the given side
// length in meters.
func NewBounds(size float64) Bounds {
	return Bounds{
		Size: size,
		rect: r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: size, Y: size}),
	}
}

// Contains reports whether (x, y) lies inside the domain. The upper edge is
// exclusive: a coordinate equal to Size is out of bounds.
func (b Bounds) Contains(x, y float64) bool {
	if !b.rect.ContainsPoint(r2.Point{X: x, Y: y}) {
		return false
	}
	return x < b.Size && y < b.Size
}
