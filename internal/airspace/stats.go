package airspace

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// OccupancyStats summarises how points are spread across occupied sectors.
// Heavily skewed occupancy (large Max relative to Mean) signals clustered
// input, where the sweep degrades toward quadratic cost.
type OccupancyStats struct {
	OccupiedSectors int     `json:"occupied_sectors"`
	Mean            float64 `json:"mean"`
	StdDev          float64 `json:"std_dev"`
	P95             float64 `json:"p95"`
	Max             int     `json:"max"`
}

// BucketSizes returns the occupancy of every occupied sector, in no
// particular order.
func (si *SectorIndex) BucketSizes() []int {
	sizes := make([]int, 0, len(si.cells))
	for _, bucket := range si.cells {
		sizes = append(sizes, len(bucket))
	}
	return sizes
}

// Occupancy computes bucket-occupancy statistics over the occupied sectors.
func (si *SectorIndex) Occupancy() OccupancyStats {
	if len(si.cells) == 0 {
		return OccupancyStats{}
	}

	counts := make([]float64, 0, len(si.cells))
	for _, bucket := range si.cells {
		counts = append(counts, float64(len(bucket)))
	}
	sort.Float64s(counts)

	mean, std := stat.MeanStdDev(counts, nil)
	stats := OccupancyStats{
		OccupiedSectors: len(counts),
		Mean:            mean,
		P95:             stat.Quantile(0.95, stat.Empirical, counts, nil),
		Max:             int(counts[len(counts)-1]),
	}
	// MeanStdDev returns NaN for a single sample.
	if len(counts) > 1 {
		stats.StdDev = std
	}
	return stats
}
