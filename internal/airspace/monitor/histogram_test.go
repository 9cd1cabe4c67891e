package monitor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/airspace.report/internal/airspace"
)

func TestSaveOccupancyHistogram(t *testing.T) {
	points, err := airspace.Generate(500, 128, 3)
	if err != nil {
		t.Fatal(err)
	}
	si, err := airspace.BuildSectorIndex(points, airspace.NewBounds(128), 4.0)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "occupancy.png")
	if err := SaveOccupancyHistogram(path, si); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("histogram file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("histogram file is empty")
	}
}

func TestSaveOccupancyHistogram_EmptyIndex(t *testing.T) {
	si, err := airspace.BuildSectorIndex(nil, airspace.NewBounds(128), 4.0)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "occupancy.png")
	if err := SaveOccupancyHistogram(path, si); err == nil {
		t.Fatal("expected error for empty index")
	}
}
