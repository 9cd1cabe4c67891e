package monitor

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/airspace.report/internal/airspace"
)

// SaveOccupancyHistogram writes a PNG histogram of sector occupancy to
// path. A long right tail means clustered input and a slower sweep.
func SaveOccupancyHistogram(path string, si *airspace.SectorIndex) error {
	sizes := si.BucketSizes()
	if len(sizes) == 0 {
		return fmt.Errorf("no occupied sectors to plot")
	}

	values := make(plotter.Values, len(sizes))
	maxSize := 0
	for i, s := range sizes {
		values[i] = float64(s)
		if s > maxSize {
			maxSize = s
		}
	}

	bins := 16
	if maxSize < bins {
		bins = maxSize
	}

	p := plot.New()
	p.Title.Text = "Sector Occupancy"
	p.X.Label.Text = "points per sector"
	p.Y.Label.Text = "sectors"

	hist, err := plotter.NewHist(values, bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(hist)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	return nil
}
