package airspace

import (
	"fmt"
	"sort"
	"sync"
)

// DetectParams controls one proximity sweep.
type DetectParams struct {
	// Radius is the conflict separation distance in meters. Must be
	// positive.
	Radius float64
	// Metric is the distance function (default Euclidean).
	Metric Metric
	// Boundary is the rule at exactly Radius (default Strict).
	Boundary Boundary
	// Workers sets the number of goroutines for the sweep. Values below 2
	// run serially. The sweep is deterministic regardless of worker count.
	Workers int
}

// Detection is the outcome of one proximity sweep.
type Detection struct {
	// PairCount is the number of distinct conflicting pairs.
	PairCount int
	// Pairs enumerates the conflicts, sorted by (A, B). Nil when the sweep
	// was count-only.
	Pairs []ConflictPair
	// Comparisons counts candidate distance checks performed. A sector
	// sweep over roughly uniform points stays far below the all-pairs
	// N*(N-1)/2.
	Comparisons int64
}

// detectAccum is one worker's local tally, merged after the sweep.
type detectAccum struct {
	count       int
	comparisons int64
	pairs       []ConflictPair
}

// Detect counts conflicting pairs using the sector index. The count is
// exactly what an all-pairs comparison would produce; the index only prunes
// candidates that cannot be within the radius.
func Detect(points []Point, si *SectorIndex, params DetectParams) (int, error) {
	det, err := detect(points, si, params, false)
	if err != nil {
		return 0, err
	}
	return det.PairCount, nil
}

// DetectPairs runs the sweep and enumerates every conflicting pair.
func DetectPairs(points []Point, si *SectorIndex, params DetectParams) (*Detection, error) {
	return detect(points, si, params, true)
}

func detect(points []Point, si *SectorIndex, params DetectParams, collect bool) (*Detection, error) {
	if err := validateDetect(si, params); err != nil {
		return nil, err
	}

	n := len(points)
	workers := params.Workers
	if workers > n {
		workers = n
	}

	var merged detectAccum
	if workers < 2 {
		merged = detectRange(points, si, params, 0, n, collect)
	} else {
		accums := make([]detectAccum, workers)
		chunk := (n + workers - 1) / workers

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			if lo >= hi {
				continue
			}
			wg.Add(1)
			go func(w, lo, hi int) {
				defer wg.Done()
				accums[w] = detectRange(points, si, params, lo, hi, collect)
			}(w, lo, hi)
		}
		wg.Wait()

		for _, acc := range accums {
			merged.count += acc.count
			merged.comparisons += acc.comparisons
			merged.pairs = append(merged.pairs, acc.pairs...)
		}
	}

	det := &Detection{
		PairCount:   merged.count,
		Comparisons: merged.comparisons,
	}
	if collect {
		sort.Slice(merged.pairs, func(i, j int) bool {
			if merged.pairs[i].A != merged.pairs[j].A {
				return merged.pairs[i].A < merged.pairs[j].A
			}
			return merged.pairs[i].B < merged.pairs[j].B
		})
		det.Pairs = merged.pairs
		if det.Pairs == nil {
			det.Pairs = []ConflictPair{}
		}
	}
	return det, nil
}

// detectRange sweeps points[lo:hi]. Each point only examines candidates in
// its 3x3 sector neighborhood, and a pair is only evaluated from its
// lower-ID side (j > i), so every conflict is counted exactly once across
// all ranges.
func detectRange(points []Point, si *SectorIndex, params DetectParams, lo, hi int, collect bool) detectAccum {
	var acc detectAccum
	for i := lo; i < hi; i++ {
		p := points[i]
		for _, c := range si.NeighborCells(si.CellOf(p.X, p.Y)) {
			for _, j := range si.Bucket(c) {
				if j <= p.ID {
					continue
				}
				q := points[j]
				acc.comparisons++
				if inConflict(params.Metric, params.Boundary, q.X-p.X, q.Y-p.Y, params.Radius) {
					acc.count++
					if collect {
						acc.pairs = append(acc.pairs, ConflictPair{A: p.ID, B: j})
					}
				}
			}
		}
	}
	return acc
}

func validateDetect(si *SectorIndex, params DetectParams) error {
	if si == nil {
		return fmt.Errorf("%w: nil sector index", ErrInvalidParameter)
	}
	if params.Radius <= 0 {
		return fmt.Errorf("%w: conflict radius must be positive, got %v", ErrInvalidParameter, params.Radius)
	}
	// The 3x3 neighborhood only covers the full radius when cells are at
	// least that large.
	if si.CellSize < params.Radius {
		return fmt.Errorf("%w: cell size %v smaller than conflict radius %v",
			ErrInvalidParameter, si.CellSize, params.Radius)
	}
	return nil
}

// ConflictedPoints returns the IDs that appear in at least one conflict
// pair, sorted ascending. This matches the "drones in a conflicted state"
// count: a drone in three conflicts is still one conflicted drone.
func ConflictedPoints(pairs []ConflictPair) []int {
	seen := make(map[int]struct{}, len(pairs)*2)
	for _, pr := range pairs {
		seen[pr.A] = struct{}{}
		seen[pr.B] = struct{}{}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
