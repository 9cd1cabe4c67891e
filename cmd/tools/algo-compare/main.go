// Package main provides an algorithm comparison tool for conflict
// detection. It runs the sector sweep and the brute-force reference over
// the same synthetic point sets and compares counts, comparisons, and
// timings across a range of population sizes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/banshee-data/airspace.report/internal/airspace"
	"github.com/banshee-data/airspace.report/internal/units"
)

// Config holds configuration for the algorithm comparison.
type Config struct {
	DroneCounts string
	SizeM       float64
	RadiusM     float64
	Seed        int64
	Workers     int
	OutputJSON  string
}

// ComparisonResult holds the results across all population sizes.
type ComparisonResult struct {
	AirspaceSizeM float64    `json:"airspace_size_m"`
	RadiusM       float64    `json:"conflict_radius_m"`
	Seed          int64      `json:"seed"`
	Runs          []RunStats `json:"runs"`
	Agreement     bool       `json:"agreement"`
}

// RunStats holds one population size's comparison.
type RunStats struct {
	NumPoints         int     `json:"num_points"`
	SectorPairs       int     `json:"sector_pairs"`
	BrutePairs        int     `json:"brute_pairs"`
	Agree             bool    `json:"agree"`
	SectorComparisons int64   `json:"sector_comparisons"`
	BruteComparisons  int64   `json:"brute_comparisons"`
	SectorMs          int64   `json:"sector_ms"`
	BruteMs           int64   `json:"brute_ms"`
	Speedup           float64 `json:"speedup"`
}

func main() {
	cfg := parseFlags()

	result, err := runComparison(cfg)
	if err != nil {
		log.Fatalf("comparison failed: %v", err)
	}

	printResults(cfg, result)

	if cfg.OutputJSON != "" {
		if err := exportJSON(result, cfg.OutputJSON); err != nil {
			log.Printf("Warning: failed to export JSON: %v", err)
		} else {
			log.Printf("Results exported to: %s", cfg.OutputJSON)
		}
	}

	if !result.Agreement {
		os.Exit(1)
	}
}

func parseFlags() Config {
	cfg := Config{}

	var size, radius string
	flag.StringVar(&cfg.DroneCounts, "drones", "1000,2000,5000,10000", "Comma-separated population sizes to compare")
	flag.StringVar(&size, "size", "128km", "Airspace side length")
	flag.StringVar(&radius, "radius", "500m", "Conflict separation radius")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Random seed")
	flag.IntVar(&cfg.Workers, "workers", 1, "Sector sweep workers")
	flag.StringVar(&cfg.OutputJSON, "json", "", "Output JSON filename (e.g. results.json)")
	flag.Parse()

	var err error
	if cfg.SizeM, err = units.ParseDistance(size); err != nil {
		log.Fatalf("invalid -size: %v", err)
	}
	if cfg.RadiusM, err = units.ParseDistance(radius); err != nil {
		log.Fatalf("invalid -radius: %v", err)
	}
	return cfg
}

func parseCounts(s string) ([]int, error) {
	var counts []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid population size %q", field)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func runComparison(cfg Config) (*ComparisonResult, error) {
	counts, err := parseCounts(cfg.DroneCounts)
	if err != nil {
		return nil, err
	}

	result := &ComparisonResult{
		AirspaceSizeM: cfg.SizeM,
		RadiusM:       cfg.RadiusM,
		Seed:          cfg.Seed,
		Agreement:     true,
	}

	params := airspace.DetectParams{Radius: cfg.RadiusM, Workers: cfg.Workers}

	for _, n := range counts {
		points, err := airspace.Generate(n, cfg.SizeM, cfg.Seed)
		if err != nil {
			return nil, err
		}
		si, err := airspace.BuildSectorIndex(points, airspace.NewBounds(cfg.SizeM), cfg.RadiusM)
		if err != nil {
			return nil, err
		}

		sectorStart := time.Now()
		sector, err := airspace.DetectPairs(points, si, params)
		if err != nil {
			return nil, err
		}
		sectorMs := time.Since(sectorStart).Milliseconds()

		bruteStart := time.Now()
		brute, err := airspace.BruteForce(points, params)
		if err != nil {
			return nil, err
		}
		bruteMs := time.Since(bruteStart).Milliseconds()

		run := RunStats{
			NumPoints:         n,
			SectorPairs:       sector.PairCount,
			BrutePairs:        brute.PairCount,
			Agree:             sector.PairCount == brute.PairCount,
			SectorComparisons: sector.Comparisons,
			BruteComparisons:  brute.Comparisons,
			SectorMs:          sectorMs,
			BruteMs:           bruteMs,
		}
		if sectorMs > 0 {
			run.Speedup = float64(bruteMs) / float64(sectorMs)
		}
		if !run.Agree {
			result.Agreement = false
		}
		result.Runs = append(result.Runs, run)
	}

	return result, nil
}

func printResults(cfg Config, result *ComparisonResult) {
	fmt.Printf("Airspace %s, radius %s, seed %d\n",
		units.FormatDistance(cfg.SizeM), units.FormatDistance(cfg.RadiusM), cfg.Seed)
	fmt.Printf("%10s %12s %12s %16s %16s %10s %10s %8s\n",
		"drones", "sector", "brute", "sector-cmps", "brute-cmps", "sector-ms", "brute-ms", "agree")
	for _, run := range result.Runs {
		fmt.Printf("%10d %12d %12d %16d %16d %10d %10d %8v\n",
			run.NumPoints, run.SectorPairs, run.BrutePairs,
			run.SectorComparisons, run.BruteComparisons,
			run.SectorMs, run.BruteMs, run.Agree)
	}
	if result.Agreement {
		fmt.Println("All runs agree.")
	} else {
		fmt.Println("DISAGREEMENT detected between sector sweep and brute force.")
	}
}

func exportJSON(result *ComparisonResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
