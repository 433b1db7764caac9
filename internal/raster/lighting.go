package raster

import (
	"math"

	"defg-support/internal/mathutil"
)

// LightConfig holds precomputed hillshade parameters.
type LightConfig struct {
	SunDir  mathutil.Vec3 // unit vector towards the sun, east/north/up
	Ambient float64
	Hemi    float64
	Direct  float64
}

// DefaultLightConfig returns the cartographic default: sun in the north-west,
// 45 degrees above the horizon.
func DefaultLightConfig() LightConfig {
	return NewLightConfig(315, 45)
}

// NewLightConfig places the sun at azimuth/altitude degrees.
func NewLightConfig(azimuth, altitude float64) LightConfig {
	return LightConfig{
		SunDir:  mathutil.SunDirection(azimuth, altitude),
		Ambient: 0.30,
		Hemi:    0.20,
		Direct:  0.70,
	}
}

// ComputeShade returns the combined lighting scalar for an up-facing unit normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	ndl := normal.Dot(lc.SunDir)
	if ndl < 0 {
		ndl = 0
	}

	// Sky fill: flat ground sees the whole sky, walls half of it.
	hemi := normal[2]*0.5 + 0.5

	return lc.Ambient + hemi*lc.Hemi + ndl*lc.Direct
}

func clamp8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
