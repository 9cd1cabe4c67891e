package airspace

import (
	"testing"

	"github.com/google/uuid"

	"github.com/banshee-data/airspace.report/internal/testutil"
)

func TestRunDetection_ReportFields(t *testing.T) {
	points := FromCoordinates([][2]float64{
		{0, 0},
		{0, 0.5},
		{100, 100},
		{127, 127},
	})
	params := RunParams{
		AirspaceSize: 128,
		Detect:       DetectParams{Radius: 1.0},
	}

	report, err := RunDetection(points, params)
	testutil.AssertNoError(t, err)

	if _, err := uuid.Parse(report.RunID); err != nil {
		t.Errorf("run ID %q is not a valid UUID: %v", report.RunID, err)
	}
	testutil.AssertCount(t, "num points", report.NumPoints, 4)
	testutil.AssertCount(t, "conflict pairs", report.ConflictPairs, 1)
	testutil.AssertCount(t, "conflicted points", report.ConflictedPoints, 2)
	if report.CellSizeM != 1.0 {
		t.Errorf("cell size defaulted to %v, want the radius 1.0", report.CellSizeM)
	}
	if report.Metric != "euclidean" || report.Boundary != "strict" {
		t.Errorf("policy strings = %q/%q, want euclidean/strict", report.Metric, report.Boundary)
	}
	if report.Pairs != nil {
		t.Error("pairs attached without IncludePairs")
	}
	if report.Occupancy.OccupiedSectors == 0 {
		t.Error("occupancy stats missing from report")
	}
}

func TestRunDetection_IncludePairs(t *testing.T) {
	points := FromCoordinates([][2]float64{{0, 0}, {0, 0.5}})
	report, err := RunDetection(points, RunParams{
		AirspaceSize: 128,
		Detect:       DetectParams{Radius: 1.0},
		IncludePairs: true,
	})
	testutil.AssertNoError(t, err)
	testutil.AssertCount(t, "attached pairs", len(report.Pairs), 1)
}

func TestRunDetection_ExplicitCellSize(t *testing.T) {
	points := FromCoordinates([][2]float64{{0, 0}, {0, 0.5}})
	report, err := RunDetection(points, RunParams{
		AirspaceSize: 128,
		CellSize:     4.0,
		Detect:       DetectParams{Radius: 1.0},
	})
	testutil.AssertNoError(t, err)
	if report.CellSizeM != 4.0 {
		t.Errorf("cell size = %v, want 4.0", report.CellSizeM)
	}
	testutil.AssertCount(t, "conflict pairs", report.ConflictPairs, 1)
}

func TestRunDetection_PropagatesInvalidParameter(t *testing.T) {
	points := FromCoordinates([][2]float64{{500, 500}})
	_, err := RunDetection(points, RunParams{
		AirspaceSize: 128, // point outside domain
		Detect:       DetectParams{Radius: 1.0},
	})
	testutil.AssertErrorIs(t, err, ErrInvalidParameter)
}

func TestRunDetection_UniqueRunIDs(t *testing.T) {
	points := FromCoordinates([][2]float64{{1, 1}})
	params := RunParams{AirspaceSize: 128, Detect: DetectParams{Radius: 1.0}}

	first, err := RunDetection(points, params)
	testutil.AssertNoError(t, err)
	second, err := RunDetection(points, params)
	testutil.AssertNoError(t, err)
	if first.RunID == second.RunID {
		t.Error("two runs share a run ID")
	}
}
