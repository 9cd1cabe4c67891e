package main

import (
	"testing"

	"github.com/banshee-data/airspace.report/internal/airspace"
)

// TestFlagDefaults verifies the flags exist with the exercise defaults: a
// 128 km airspace, 10,000 drones, and a 500 m separation radius.
func TestFlagDefaults(t *testing.T) {
	if numDrones == nil || *numDrones != airspace.DefaultNumDrones {
		t.Errorf("drones default = %v, want %d", numDrones, airspace.DefaultNumDrones)
	}
	if sizeFlag == nil || *sizeFlag != "128km" {
		t.Errorf("size default = %v, want 128km", sizeFlag)
	}
	if radiusFlag == nil || *radiusFlag != "500m" {
		t.Errorf("radius default = %v, want 500m", radiusFlag)
	}
	if workers == nil || *workers != 1 {
		t.Errorf("workers default = %v, want 1 (serial)", workers)
	}
	if metricFlag == nil || *metricFlag != "euclidean" {
		t.Errorf("metric default = %v, want euclidean", metricFlag)
	}
	if boundaryFlag == nil || *boundaryFlag != "strict" {
		t.Errorf("boundary default = %v, want strict", boundaryFlag)
	}
}

// TestEffectiveConfigDefaults checks that with no flags set and no config
// file, the effective config is the exercise defaults.
func TestEffectiveConfigDefaults(t *testing.T) {
	cfg, err := effectiveConfig()
	if err != nil {
		t.Fatalf("effectiveConfig() error: %v", err)
	}
	if cfg.GetAirspaceSizeM() != airspace.DefaultAirspaceSize {
		t.Errorf("airspace size = %v, want %v", cfg.GetAirspaceSizeM(), airspace.DefaultAirspaceSize)
	}
	if cfg.GetConflictRadiusM() != airspace.DefaultConflictRadius {
		t.Errorf("conflict radius = %v, want %v", cfg.GetConflictRadiusM(), airspace.DefaultConflictRadius)
	}
	if cfg.GetNumDrones() != airspace.DefaultNumDrones {
		t.Errorf("drones = %v, want %v", cfg.GetNumDrones(), airspace.DefaultNumDrones)
	}
}
