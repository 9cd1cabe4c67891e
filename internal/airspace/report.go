package airspace

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunParams bundles everything needed for one detection run.
type RunParams struct {
	// AirspaceSize is the side length of the square domain in meters.
	AirspaceSize float64
	// CellSize is the sector side length. Zero means use the conflict
	// radius (the smallest size that preserves the neighborhood
	// guarantee).
	CellSize float64
	// Detect holds the sweep parameters.
	Detect DetectParams
	// IncludePairs attaches the full pair list to the report.
	IncludePairs bool
}

// Report is the JSON-serialisable outcome of one detection run.
type Report struct {
	RunID            string         `json:"run_id"`
	NumPoints        int            `json:"num_points"`
	AirspaceSizeM    float64        `json:"airspace_size_m"`
	ConflictRadiusM  float64        `json:"conflict_radius_m"`
	CellSizeM        float64        `json:"cell_size_m"`
	Metric           string         `json:"metric"`
	Boundary         string         `json:"boundary"`
	Workers          int            `json:"workers"`
	ConflictPairs    int            `json:"conflict_pairs"`
	ConflictedPoints int            `json:"conflicted_points"`
	Comparisons      int64          `json:"comparisons"`
	BuildMs          int64          `json:"build_time_ms"`
	DetectMs         int64          `json:"detect_time_ms"`
	Occupancy        OccupancyStats `json:"occupancy"`
	Pairs            []ConflictPair `json:"pairs,omitempty"`
}

// RunDetection builds a sector index over the points, runs the sweep, and
// returns a report stamped with a fresh run ID and per-phase timings.
func RunDetection(points []Point, params RunParams) (*Report, error) {
	cellSize := params.CellSize
	if cellSize == 0 {
		cellSize = params.Detect.Radius
	}

	buildStart := time.Now()
	si, err := BuildSectorIndex(points, NewBounds(params.AirspaceSize), cellSize)
	if err != nil {
		return nil, fmt.Errorf("build sector index: %w", err)
	}
	buildMs := time.Since(buildStart).Milliseconds()

	detectStart := time.Now()
	det, err := DetectPairs(points, si, params.Detect)
	if err != nil {
		return nil, fmt.Errorf("detect conflicts: %w", err)
	}
	detectMs := time.Since(detectStart).Milliseconds()

	report := &Report{
		RunID:            uuid.New().String(),
		NumPoints:        len(points),
		AirspaceSizeM:    params.AirspaceSize,
		ConflictRadiusM:  params.Detect.Radius,
		CellSizeM:        cellSize,
		Metric:           params.Detect.Metric.String(),
		Boundary:         params.Detect.Boundary.String(),
		Workers:          params.Detect.Workers,
		ConflictPairs:    det.PairCount,
		ConflictedPoints: len(ConflictedPoints(det.Pairs)),
		Comparisons:      det.Comparisons,
		BuildMs:          buildMs,
		DetectMs:         detectMs,
		Occupancy:        si.Occupancy(),
	}
	if params.IncludePairs {
		report.Pairs = det.Pairs
	}
	return report, nil
}
