package batch

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"defg-support/internal/clock"
	"defg-support/internal/mathutil"
	"defg-support/internal/pointfile"
	"defg-support/internal/pointset"
	"defg-support/internal/postprocess"
	"defg-support/internal/raster"
	"defg-support/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir       string
	Encoding        string
	Ramp            *texture.Ramp
	RenderSize      int
	Supersample     int
	FillRadius      int
	SunAzimuth      float64
	SunAltitude     float64
	MinClusterRatio float64
}

// Result holds the outcome of processing one point file.
type Result struct {
	Name    string
	File    string
	Image   string
	Points  int
	Min     mathutil.Vec3
	Max     mathutil.Vec3
	Seconds float64
	Success bool
	Error   string
}

// Run renders a preview for every file, one after another, printing a progress
// line per file.
func Run(cfg Config, files []string) []Result {
	if cfg.Ramp == nil {
		cfg.Ramp = texture.DefaultRamp()
	}
	if cfg.RenderSize <= 0 {
		cfg.RenderSize = 256
	}
	if cfg.Supersample < 1 {
		cfg.Supersample = 1
	}
	lc := raster.NewLightConfig(cfg.SunAzimuth, cfg.SunAltitude)

	total := len(files)
	results := make([]Result, total)
	var points pointset.Collector

	for i, file := range files {
		points.Reset()
		r := processFile(cfg, lc, &points, file)
		results[i] = r
		if r.Success {
			fmt.Printf("  [%d/%d] %s: %d points in %.3fs\n", i+1, total, r.Name, r.Points, r.Seconds)
		} else {
			fmt.Printf("  [%d/%d] %s: %s\n", i+1, total, r.Name, r.Error)
		}
	}
	return results
}

func processFile(cfg Config, lc raster.LightConfig, points *pointset.Collector, file string) Result {
	name := filepath.Base(file)
	res := Result{Name: name, File: file}

	start := clock.Seconds()
	res.Points = pointfile.LoadWith(file, points, pointfile.Options{Encoding: cfg.Encoding})
	res.Seconds = clock.Since(start)

	bounds, ok := points.Bounds()
	if res.Points == 0 || !ok {
		res.Error = "no points loaded"
		return res
	}
	res.Min, res.Max = bounds.Min, bounds.Max
	if !finite(bounds.Min) || !finite(bounds.Max) {
		res.Error = "coordinates out of range"
		return res
	}

	g := raster.BuildGrid(points.Points(), bounds, cfg.RenderSize*cfg.Supersample)
	if cfg.FillRadius > 0 {
		g.Fill(cfg.FillRadius * cfg.Supersample)
	}
	img := raster.Render(g, lc, cfg.Ramp)

	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	if cfg.MinClusterRatio > 0 {
		img = postprocess.RemoveSmallClusters(img, cfg.MinClusterRatio)
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	res.Image = stem + ".webp"
	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}

func finite(v mathutil.Vec3) bool {
	for _, c := range v {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return false
		}
	}
	return true
}
