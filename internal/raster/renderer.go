package raster

import (
	"image"

	"defg-support/internal/texture"
)

// Render shades a grid into an NRGBA image: ramp colour by elevation, hillshaded
// by lc. Empty cells stay transparent.
func Render(g *Grid, lc LightConfig, ramp *texture.Ramp) *image.NRGBA {
	fb := g.FB
	zRange := g.MaxZ - g.MinZ

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			z, ok := g.Z(x, y)
			if !ok {
				continue
			}

			t := 0.5
			if zRange > 0 {
				t = (z - g.MinZ) / zRange
			}
			base := ramp.At(t)
			shade := lc.ComputeShade(g.Normal(x, y))

			i := (y*fb.Width + x) * 4
			fb.Color[i] = clamp8(float64(base.R) * shade)
			fb.Color[i+1] = clamp8(float64(base.G) * shade)
			fb.Color[i+2] = clamp8(float64(base.B) * shade)
			fb.Color[i+3] = 255
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
