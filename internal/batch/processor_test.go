package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HugoSmits86/nativewebp"
)

func writePoints(t *testing.T, dir, name string, n int) string {
	t.Helper()
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fmt.Fprintf(&sb, "%d %d %d\n", x, y, x+y)
		}
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunWritesPreviews(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "previews")
	good := writePoints(t, dir, "hill.xyz", 10)
	empty := filepath.Join(dir, "empty.xyz")
	os.WriteFile(empty, []byte("not numbers\n"), 0644)
	missing := filepath.Join(dir, "missing.xyz")

	results := Run(Config{
		OutputDir:       out,
		RenderSize:      32,
		Supersample:     2,
		FillRadius:      2,
		SunAzimuth:      315,
		SunAltitude:     45,
		MinClusterRatio: 0.002,
	}, []string{good, empty, missing})

	if len(results) != 3 {
		t.Fatalf("results=%d", len(results))
	}

	r := results[0]
	if !r.Success || r.Points != 100 || r.Image != "hill.webp" {
		t.Fatalf("good result=%+v", r)
	}
	if r.Min[0] != -9 || r.Max[0] != 0 || r.Min[2] != 0 || r.Max[2] != 18 {
		t.Fatalf("bounds min=%v max=%v", r.Min, r.Max)
	}
	if r.Seconds < 0 {
		t.Fatalf("seconds=%v", r.Seconds)
	}

	f, err := os.Open(filepath.Join(out, "hill.webp"))
	if err != nil {
		t.Fatalf("open preview: %v", err)
	}
	defer f.Close()
	cfg, err := nativewebp.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Fatalf("preview size=%dx%d", cfg.Width, cfg.Height)
	}

	for _, r := range results[1:] {
		if r.Success || r.Error != "no points loaded" {
			t.Errorf("%s: %+v", r.Name, r)
		}
	}
}

func TestRunRejectsInfiniteCoordinates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.xyz")
	os.WriteFile(path, []byte("1 2 3\n1e400 0 0\n"), 0644)

	results := Run(Config{OutputDir: dir}, []string{path})
	if results[0].Success || results[0].Points != 2 {
		t.Fatalf("result=%+v", results[0])
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{File: "a.xyz", Image: "a.webp", Points: 3, Seconds: 0.25, Success: true},
		{File: "b.xyz", Error: "no points loaded"},
	}
	results[0].Min = [3]float64{-1, -2, 0}
	results[0].Max = [3]float64{1, 2, 5}

	if err := WriteManifest(path, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries=%d", len(entries))
	}
	e := entries[0]
	if e.File != "a.xyz" || e.Image != "a.webp" || e.Points != 3 || e.Max != [3]float64{1, 2, 5} {
		t.Fatalf("entry=%+v", e)
	}
}
