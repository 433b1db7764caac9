package raster

import (
	"math"

	"defg-support/internal/mathutil"
	"defg-support/internal/pointset"
)

// Grid bins a point set into square cells over its XY extent, keeping the highest
// Z per cell. Row 0 is the minimum Y, which after the loader's sign flip is the
// northern edge, so the grid reads north-up with east to the right.
type Grid struct {
	FB     *FrameBuffer
	Origin mathutil.Vec3 // minimum corner of the binned extent
	Cell   float64       // cell edge length in world units
	MinZ   float64
	MaxZ   float64
}

// BuildGrid bins points into a size×size grid covering b.
func BuildGrid(points []mathutil.Vec3, b pointset.Bounds, size int) *Grid {
	if size < 1 {
		size = 1
	}
	ext := b.Size()
	span := math.Max(ext[0], ext[1])
	if span <= 0 {
		span = 1
	}

	g := &Grid{
		FB:     NewFrameBuffer(size, size),
		Origin: b.Min,
		Cell:   span / float64(size),
		MinZ:   b.Min[2],
		MaxZ:   b.Max[2],
	}
	for _, p := range points {
		x, y := g.cellOf(p)
		g.FB.Plot(x, y, p[2])
	}
	return g
}

func (g *Grid) cellOf(p mathutil.Vec3) (int, int) {
	d := mathutil.Difference(p, g.Origin)
	x := int(d[0] / g.Cell)
	y := int(d[1] / g.Cell)
	// Points on the far edge land exactly on size; fold them into the last cell.
	if x == g.FB.Width {
		x--
	}
	if y == g.FB.Height {
		y--
	}
	return x, y
}

// Z returns the elevation at (x, y) and whether the cell is filled.
func (g *Grid) Z(x, y int) (float64, bool) {
	if x < 0 || x >= g.FB.Width || y < 0 || y >= g.FB.Height {
		return 0, false
	}
	z := g.FB.ZBuf[y*g.FB.Width+x]
	return z, !math.IsInf(z, -1)
}

// Fill gives each empty cell the elevation of the nearest filled cell within
// radius cells. Only cells filled before the call are used as sources.
func (g *Grid) Fill(radius int) int {
	if radius <= 0 {
		return 0
	}
	w, h := g.FB.Width, g.FB.Height
	src := make([]float64, len(g.FB.ZBuf))
	copy(src, g.FB.ZBuf)

	limit := float64(radius * radius)
	filled := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !math.IsInf(src[y*w+x], -1) {
				continue
			}
			here := mathutil.Vec3{float64(x), float64(y), 0}
			best := math.Inf(1)
			bestZ := math.Inf(-1)
			for ny := max(0, y-radius); ny <= min(h-1, y+radius); ny++ {
				for nx := max(0, x-radius); nx <= min(w-1, x+radius); nx++ {
					z := src[ny*w+nx]
					if math.IsInf(z, -1) {
						continue
					}
					d := mathutil.DistanceSquared(here, mathutil.Vec3{float64(nx), float64(ny), 0})
					if d <= limit && d < best {
						best = d
						bestZ = z
					}
				}
			}
			if !math.IsInf(bestZ, -1) {
				g.FB.ZBuf[y*w+x] = bestZ
				filled++
			}
		}
	}
	return filled
}

// Normal returns the up-facing unit surface normal at a filled cell, from central
// differences over its neighbours. Missing neighbours reuse the cell's own height.
func (g *Grid) Normal(x, y int) mathutil.Vec3 {
	zc, _ := g.Z(x, y)
	at := func(nx, ny int) float64 {
		if z, ok := g.Z(nx, ny); ok {
			return z
		}
		return zc
	}

	// Row index grows southwards.
	east := mathutil.Vec3{2 * g.Cell, 0, at(x+1, y) - at(x-1, y)}
	north := mathutil.Vec3{0, 2 * g.Cell, at(x, y-1) - at(x, y+1)}

	// north × east points into the ground.
	n := mathutil.SurfaceNormal(north, east)
	n.Negate()
	return n
}
