package airspace

import (
	"fmt"
	"math/rand"
)

// Defaults from the drone airspace exercise: a 128 km square airspace,
// 10,000 drones, and a 500 m horizontal separation radius.
const (
	DefaultAirspaceSize   = 128000.0 // meters
	DefaultConflictRadius = 500.0    // meters
	DefaultNumDrones      = 10000
	DefaultSeed           = 1
)

// Generate produces n uniformly random points in [0, size) on both axes.
// The same seed always yields the same point set.
func Generate(n int, size float64, seed int64) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: point count must be non-negative, got %d", ErrInvalidParameter, n)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: airspace size must be positive, got %v", ErrInvalidParameter, size)
	}

	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			ID: i,
			X:  rng.Float64() * size,
			Y:  rng.Float64() * size,
		}
	}
	return points, nil
}

// FromCoordinates ingests an Nx2 coordinate slice, assigning IDs by
// position. Domain validation happens at index build time.
func FromCoordinates(coords [][2]float64) []Point {
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{ID: i, X: c[0], Y: c[1]}
	}
	return points
}
