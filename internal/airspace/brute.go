package airspace

import "fmt"

// BruteForce enumerates conflicts by comparing every unordered pair of
// points. O(N^2); kept as the correctness reference for the sector sweep
// and for benchmarking at small N.
func BruteForce(points []Point, params DetectParams) (*Detection, error) {
	if params.Radius <= 0 {
		return nil, fmt.Errorf("%w: conflict radius must be positive, got %v", ErrInvalidParameter, params.Radius)
	}

	det := &Detection{Pairs: []ConflictPair{}}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			det.Comparisons++
			if inConflict(params.Metric, params.Boundary, points[j].X-points[i].X, points[j].Y-points[i].Y, params.Radius) {
				det.PairCount++
				det.Pairs = append(det.Pairs, ConflictPair{A: points[i].ID, B: points[j].ID})
			}
		}
	}
	return det, nil
}
