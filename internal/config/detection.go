// Package config loads and saves detection tuning parameters as JSON.
// Fields are pointer-typed so a partial config file only overrides what it
// names; everything else keeps its default.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DetectionConfig holds the tunable parameters of a detection run. The
// schema matches the CLI flags so the same JSON can seed a run that flags
// then override.
type DetectionConfig struct {
	// Airspace params
	AirspaceSizeM   *float64 `json:"airspace_size_m,omitempty"`
	ConflictRadiusM *float64 `json:"conflict_radius_m,omitempty"`
	CellSizeM       *float64 `json:"cell_size_m,omitempty"`

	// Generator params
	NumDrones *int   `json:"num_drones,omitempty"`
	Seed      *int64 `json:"seed,omitempty"`

	// Sweep params
	Workers  *int    `json:"workers,omitempty"`
	Metric   *string `json:"metric,omitempty"`   // "euclidean" or "chebyshev"
	Boundary *string `json:"boundary,omitempty"` // "strict" or "inclusive"

	// Report params
	IncludePairs *bool `json:"include_pairs,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrInt64(v int64) *int64       { return &v }
func ptrString(v string) *string    { return &v }
func ptrBool(v bool) *bool          { return &v }

// DefaultDetectionConfig returns the drone airspace exercise defaults:
// 10,000 drones in a 128 km square with a 500 m separation radius.
func DefaultDetectionConfig() *DetectionConfig {
	return &DetectionConfig{
		AirspaceSizeM:   ptrFloat64(128000),
		ConflictRadiusM: ptrFloat64(500),
		NumDrones:       ptrInt(10000),
		Seed:            ptrInt64(1),
		Workers:         ptrInt(1),
		Metric:          ptrString("euclidean"),
		Boundary:        ptrString("strict"),
		IncludePairs:    ptrBool(false),
	}
}

// LoadDetectionConfig loads a DetectionConfig from a JSON file. Fields
// omitted from the file stay nil, so partial configs are safe to merge.
func LoadDetectionConfig(path string) (*DetectionConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &DetectionConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the config as indented JSON.
func (c *DetectionConfig) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Merge overlays the set fields of other onto c. Nil fields in other leave
// c untouched.
func (c *DetectionConfig) Merge(other *DetectionConfig) {
	if other == nil {
		return
	}
	if other.AirspaceSizeM != nil {
		c.AirspaceSizeM = other.AirspaceSizeM
	}
	if other.ConflictRadiusM != nil {
		c.ConflictRadiusM = other.ConflictRadiusM
	}
	if other.CellSizeM != nil {
		c.CellSizeM = other.CellSizeM
	}
	if other.NumDrones != nil {
		c.NumDrones = other.NumDrones
	}
	if other.Seed != nil {
		c.Seed = other.Seed
	}
	if other.Workers != nil {
		c.Workers = other.Workers
	}
	if other.Metric != nil {
		c.Metric = other.Metric
	}
	if other.Boundary != nil {
		c.Boundary = other.Boundary
	}
	if other.IncludePairs != nil {
		c.IncludePairs = other.IncludePairs
	}
}

// Validate checks that any set values are usable.
func (c *DetectionConfig) Validate() error {
	if c.AirspaceSizeM != nil && *c.AirspaceSizeM <= 0 {
		return fmt.Errorf("airspace_size_m must be positive, got %f", *c.AirspaceSizeM)
	}
	if c.ConflictRadiusM != nil && *c.ConflictRadiusM <= 0 {
		return fmt.Errorf("conflict_radius_m must be positive, got %f", *c.ConflictRadiusM)
	}
	if c.CellSizeM != nil && *c.CellSizeM <= 0 {
		return fmt.Errorf("cell_size_m must be positive, got %f", *c.CellSizeM)
	}
	if c.NumDrones != nil && *c.NumDrones < 0 {
		return fmt.Errorf("num_drones must be non-negative, got %d", *c.NumDrones)
	}
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", *c.Workers)
	}
	if c.Metric != nil {
		switch *c.Metric {
		case "euclidean", "chebyshev":
		default:
			return fmt.Errorf("metric must be euclidean or chebyshev, got %q", *c.Metric)
		}
	}
	if c.Boundary != nil {
		switch *c.Boundary {
		case "strict", "inclusive":
		default:
			return fmt.Errorf("boundary must be strict or inclusive, got %q", *c.Boundary)
		}
	}
	return nil
}

// GetAirspaceSizeM returns the airspace side length, defaulting to 128 km.
func (c *DetectionConfig) GetAirspaceSizeM() float64 {
	if c.AirspaceSizeM == nil {
		return 128000
	}
	return *c.AirspaceSizeM
}

// GetConflictRadiusM returns the conflict radius, defaulting to 500 m.
func (c *DetectionConfig) GetConflictRadiusM() float64 {
	if c.ConflictRadiusM == nil {
		return 500
	}
	return *c.ConflictRadiusM
}

// GetCellSizeM returns the sector cell size. Zero means "same as the
// conflict radius".
func (c *DetectionConfig) GetCellSizeM() float64 {
	if c.CellSizeM == nil {
		return 0
	}
	return *c.CellSizeM
}

// GetNumDrones returns the synthetic point count, defaulting to 10,000.
func (c *DetectionConfig) GetNumDrones() int {
	if c.NumDrones == nil {
		return 10000
	}
	return *c.NumDrones
}

// GetSeed returns the generator seed, defaulting to 1.
func (c *DetectionConfig) GetSeed() int64 {
	if c.Seed == nil {
		return 1
	}
	return *c.Seed
}

// GetWorkers returns the sweep worker count, defaulting to serial.
func (c *DetectionConfig) GetWorkers() int {
	if c.Workers == nil {
		return 1
	}
	return *c.Workers
}

// GetMetric returns the metric name, defaulting to euclidean.
func (c *DetectionConfig) GetMetric() string {
	if c.Metric == nil {
		return "euclidean"
	}
	return *c.Metric
}

// GetBoundary returns the boundary rule, defaulting to strict.
func (c *DetectionConfig) GetBoundary() string {
	if c.Boundary == nil {
		return "strict"
	}
	return *c.Boundary
}

// GetIncludePairs reports whether reports should carry the full pair list.
func (c *DetectionConfig) GetIncludePairs() bool {
	if c.IncludePairs == nil {
		return false
	}
	return *c.IncludePairs
}
