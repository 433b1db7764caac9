package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
)

// Config holds all configurable paths and preview settings.
type Config struct {
	// Paths
	BaseDir   string   `json:"base_dir"`
	InputDir  string   `json:"input_dir"`
	Points    []string `json:"points"`
	PointGlob string   `json:"point_glob"`
	OutputDir string   `json:"output_dir"`
	RampImage string   `json:"ramp_image"`

	// Input decoding
	Encoding string `json:"encoding"`

	// Preview settings
	RenderSize      int     `json:"render_size"`
	Supersample     int     `json:"supersample"`
	FillRadius      int     `json:"fill_radius"`
	SunAzimuth      float64 `json:"sun_azimuth"`
	SunAltitude     float64 `json:"sun_altitude"`
	MinClusterRatio float64 `json:"min_cluster_ratio"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values. Values are decoded weakly,
// so "render_size": "512" is accepted.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.DataDir != "" {
		c.BaseDir = flags.DataDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Encoding != "" {
		c.Encoding = flags.Encoding
	}
	if len(flags.Points) > 0 {
		c.Points = flags.Points
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	c.InputDir = resolvePath(c.BaseDir, c.InputDir, c.BaseDir)
	c.OutputDir = resolvePath(c.BaseDir, c.OutputDir, filepath.Join(c.BaseDir, "previews"))
	if c.RampImage != "" {
		c.RampImage = resolvePath(c.BaseDir, c.RampImage, "")
	}
	for i, p := range c.Points {
		c.Points[i] = resolvePath(c.InputDir, p, p)
	}

	if c.PointGlob == "" {
		c.PointGlob = "*.xyz"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	// A negative radius disables hole filling.
	if c.FillRadius < 0 {
		c.FillRadius = 0
	} else if c.FillRadius == 0 {
		c.FillRadius = 2
	}
	// A sun on or below the horizon lights nothing; treat it as unset. Azimuth 0
	// (north) is kept once an altitude is given.
	if c.SunAltitude <= 0 {
		c.SunAltitude = 45
		if c.SunAzimuth == 0 {
			c.SunAzimuth = 315
		}
	}
	if c.MinClusterRatio <= 0 {
		c.MinClusterRatio = 0.002
	}
}

// PointFiles returns the explicit point list, or the files in InputDir matching
// PointGlob.
func (c *Config) PointFiles() ([]string, error) {
	if len(c.Points) > 0 {
		return c.Points, nil
	}
	files, err := filepath.Glob(filepath.Join(c.InputDir, c.PointGlob))
	if err != nil {
		return nil, fmt.Errorf("config: glob %s: %w", c.PointGlob, err)
	}
	return files, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	DataDir   string
	OutputDir string
	Size      int
	Encoding  string
	Points    []string
}

func resolvePath(base, p, def string) string {
	if p == "" {
		return def
	}
	if filepath.IsAbs(p) || base == "" {
		return p
	}
	return filepath.Join(base, p)
}
