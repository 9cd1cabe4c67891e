// Command airspace runs one proximity-conflict detection over a synthetic
// drone airspace and reports how many pairs (and drones) are too close.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/airspace.report/internal/airspace"
	"github.com/banshee-data/airspace.report/internal/airspace/monitor"
	"github.com/banshee-data/airspace.report/internal/config"
	"github.com/banshee-data/airspace.report/internal/monitoring"
	"github.com/banshee-data/airspace.report/internal/units"
	"github.com/banshee-data/airspace.report/internal/version"
)

var (
	configPath   = flag.String("config", "", "Optional JSON tuning config; explicit flags override it")
	numDrones    = flag.Int("drones", airspace.DefaultNumDrones, "Number of synthetic drones to generate")
	sizeFlag     = flag.String("size", "128km", "Airspace side length (e.g. 128km or 128000m)")
	radiusFlag   = flag.String("radius", "500m", "Conflict separation radius (e.g. 500m or 0.5km)")
	cellFlag     = flag.String("cell", "", "Sector cell size; defaults to the conflict radius")
	seed         = flag.Int64("seed", airspace.DefaultSeed, "Random seed for drone generation")
	workers      = flag.Int("workers", 1, "Parallel sweep workers (0 or 1 = serial)")
	metricFlag   = flag.String("metric", "euclidean", "Distance metric: euclidean or chebyshev")
	boundaryFlag = flag.String("boundary", "strict", "Radius boundary rule: strict or inclusive")
	withPairs    = flag.Bool("pairs", false, "Include the conflict pair list in the JSON report")
	verify       = flag.Bool("verify", false, "Cross-check the sector count against brute force")
	jsonOut      = flag.String("json", "", "Write the run report as JSON to this file")
	htmlOut      = flag.String("html", "", "Write an HTML conflict scatter to this file")
	histOut      = flag.String("hist", "", "Write a PNG sector-occupancy histogram to this file")
	quiet        = flag.Bool("quiet", false, "Suppress progress logging")
	showVersion  = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("airspace %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	if *quiet {
		monitoring.SetLogger(nil)
	}

	cfg, err := effectiveConfig()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	metric, err := airspace.ParseMetric(cfg.GetMetric())
	if err != nil {
		log.Fatalf("invalid metric: %v", err)
	}
	boundary, err := airspace.ParseBoundary(cfg.GetBoundary())
	if err != nil {
		log.Fatalf("invalid boundary rule: %v", err)
	}

	monitoring.Logf("generating %d drones in a %s airspace (seed %d)",
		cfg.GetNumDrones(), units.FormatDistance(cfg.GetAirspaceSizeM()), cfg.GetSeed())
	points, err := airspace.Generate(cfg.GetNumDrones(), cfg.GetAirspaceSizeM(), cfg.GetSeed())
	if err != nil {
		log.Fatalf("failed to generate points: %v", err)
	}

	params := airspace.RunParams{
		AirspaceSize: cfg.GetAirspaceSizeM(),
		CellSize:     cfg.GetCellSizeM(),
		Detect: airspace.DetectParams{
			Radius:   cfg.GetConflictRadiusM(),
			Metric:   metric,
			Boundary: boundary,
			Workers:  cfg.GetWorkers(),
		},
		IncludePairs: cfg.GetIncludePairs() || *htmlOut != "",
	}

	report, err := airspace.RunDetection(points, params)
	if err != nil {
		log.Fatalf("detection failed: %v", err)
	}

	monitoring.Logf("run %s: build %dms, sweep %dms, %d comparisons",
		report.RunID, report.BuildMs, report.DetectMs, report.Comparisons)
	log.Printf("conflict pairs: %d (drones in conflict: %d)",
		report.ConflictPairs, report.ConflictedPoints)

	if *verify {
		brute, err := airspace.BruteForce(points, params.Detect)
		if err != nil {
			log.Fatalf("brute force verification failed: %v", err)
		}
		if brute.PairCount != report.ConflictPairs {
			log.Fatalf("verification FAILED: sector=%d brute=%d", report.ConflictPairs, brute.PairCount)
		}
		monitoring.Logf("verification passed: brute force agrees (%d pairs, %d comparisons)",
			brute.PairCount, brute.Comparisons)
	}

	if err := writeOutputs(report, points, params, cfg.GetIncludePairs()); err != nil {
		log.Fatal(err)
	}
}

// effectiveConfig starts from the exercise defaults, overlays an optional
// config file, then overlays any flag the user set explicitly.
func effectiveConfig() (*config.DetectionConfig, error) {
	cfg := config.DefaultDetectionConfig()

	if *configPath != "" {
		fileCfg, err := config.LoadDetectionConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}

	overlay := &config.DetectionConfig{}
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch f.Name {
		case "drones":
			overlay.NumDrones = numDrones
		case "size":
			meters, err := units.ParseDistance(*sizeFlag)
			if err != nil {
				flagErr = err
				return
			}
			overlay.AirspaceSizeM = &meters
		case "radius":
			meters, err := units.ParseDistance(*radiusFlag)
			if err != nil {
				flagErr = err
				return
			}
			overlay.ConflictRadiusM = &meters
		case "cell":
			meters, err := units.ParseDistance(*cellFlag)
			if err != nil {
				flagErr = err
				return
			}
			overlay.CellSizeM = &meters
		case "seed":
			overlay.Seed = seed
		case "workers":
			overlay.Workers = workers
		case "metric":
			overlay.Metric = metricFlag
		case "boundary":
			overlay.Boundary = boundaryFlag
		case "pairs":
			overlay.IncludePairs = withPairs
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}
	cfg.Merge(overlay)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeOutputs(report *airspace.Report, points []airspace.Point, params airspace.RunParams, pairsInJSON bool) error {
	if *jsonOut != "" {
		out := *report
		if !pairsInJSON {
			out.Pairs = nil
		}
		data, err := json.MarshalIndent(&out, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(*jsonOut, data, 0644); err != nil {
			return err
		}
		monitoring.Logf("report written to %s", *jsonOut)
	}

	if *htmlOut != "" {
		f, err := os.Create(*htmlOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := monitor.WriteConflictScatter(f, points, report.Pairs, params.AirspaceSize); err != nil {
			return err
		}
		monitoring.Logf("conflict scatter written to %s", *htmlOut)
	}

	if *histOut != "" {
		cellSize := report.CellSizeM
		si, err := airspace.BuildSectorIndex(points, airspace.NewBounds(params.AirspaceSize), cellSize)
		if err != nil {
			return err
		}
		if err := monitor.SaveOccupancyHistogram(*histOut, si); err != nil {
			return err
		}
		monitoring.Logf("occupancy histogram written to %s", *histOut)
	}

	return nil
}
