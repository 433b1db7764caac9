// Package texture provides the elevation colour ramps used by preview renders.
package texture

import (
	"image/color"
	"math"
)

// Ramp maps a normalized elevation in [0,1] to a colour by linear interpolation
// between evenly spaced stops.
type Ramp struct {
	stops []color.NRGBA
}

// NewRamp builds a ramp from low to high stops. With no stops it is mid grey.
func NewRamp(stops ...color.NRGBA) *Ramp {
	if len(stops) == 0 {
		stops = []color.NRGBA{{160, 160, 170, 255}}
	}
	return &Ramp{stops: stops}
}

// DefaultRamp is a hypsometric tint: lowland green through tan and brown to snow.
func DefaultRamp() *Ramp {
	return NewRamp(
		color.NRGBA{R: 46, G: 112, B: 62, A: 255},
		color.NRGBA{R: 124, G: 168, B: 88, A: 255},
		color.NRGBA{R: 214, G: 196, B: 128, A: 255},
		color.NRGBA{R: 150, G: 104, B: 64, A: 255},
		color.NRGBA{R: 246, G: 246, B: 250, A: 255},
	)
}

// At samples the ramp. t is clamped to [0,1].
func (r *Ramp) At(t float64) color.NRGBA {
	n := len(r.stops)
	if n == 1 || t <= 0 || math.IsNaN(t) {
		return r.stops[0]
	}
	if t >= 1 {
		return r.stops[n-1]
	}

	f := t * float64(n-1)
	i := int(f)
	d := f - float64(i)
	a, b := r.stops[i], r.stops[i+1]
	return color.NRGBA{
		R: lerp8(a.R, b.R, d),
		G: lerp8(a.G, b.G, d),
		B: lerp8(a.B, b.B, d),
		A: lerp8(a.A, b.A, d),
	}
}

// Len returns the number of stops.
func (r *Ramp) Len() int {
	return len(r.stops)
}

func lerp8(a, b uint8, d float64) uint8 {
	return uint8(float64(a)*(1-d) + float64(b)*d + 0.5)
}
