package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"defg-support/internal/batch"
	"defg-support/internal/clock"
	"defg-support/internal/config"
	"defg-support/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	testN := flag.Int("test", 0, "Render only first N point files for testing")
	dataDir := flag.String("data", "", "Path to base directory (default: current directory)")
	outputDir := flag.String("output", "", "Output directory (default: <data>/previews)")
	size := flag.Int("size", 0, "Preview size in pixels (default: 256)")
	encoding := flag.String("encoding", "", "Text encoding of BOM-less point files (windows-1252, iso-8859-1)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		DataDir:   *dataDir,
		OutputDir: *outputDir,
		Size:      *size,
		Encoding:  *encoding,
		Points:    flag.Args(),
	})

	files, err := cfg.PointFiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding point files: %v\n", err)
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(files) {
		files = files[:*testN]
	}

	if len(files) == 0 {
		fmt.Println("No point files to render.")
		os.Exit(0)
	}

	ramp := texture.DefaultRamp()
	if cfg.RampImage != "" {
		r, err := texture.LoadRamp(cfg.RampImage)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, using built-in ramp\n", err)
		} else {
			ramp = r
			fmt.Printf("Ramp: %s (%d stops)\n", cfg.RampImage, ramp.Len())
		}
	}

	// Print summary
	mode := ""
	if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("DEFG point previews → WebP%s\n", mode)
	fmt.Printf("Files: %d, Size: %d (x%d supersample)\n", len(files), cfg.RenderSize, cfg.Supersample)
	fmt.Printf("Sun: azimuth %.0f°, altitude %.0f°\n", cfg.SunAzimuth, cfg.SunAltitude)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := clock.Seconds()

	results := batch.Run(batch.Config{
		OutputDir:       cfg.OutputDir,
		Encoding:        cfg.Encoding,
		Ramp:            ramp,
		RenderSize:      cfg.RenderSize,
		Supersample:     cfg.Supersample,
		FillRadius:      cfg.FillRadius,
		SunAzimuth:      cfg.SunAzimuth,
		SunAltitude:     cfg.SunAltitude,
		MinClusterRatio: cfg.MinClusterRatio,
	}, files)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", clock.Since(start))

	// Count results
	success, points := 0, 0
	var failed []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			points += r.Points
		} else {
			failed = append(failed, r)
		}
	}

	fmt.Printf("Rendered: %d/%d (%d points)\n", success, len(files), points)

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(20, len(failed))
		for _, e := range failed[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
