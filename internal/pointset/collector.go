// Package pointset collects loaded points the way DEFG's input list does.
package pointset

import (
	"math"

	"github.com/twpayne/go-geom"

	"defg-support/internal/mathutil"
)

// Collector is an in-memory point sink. Points keep their arrival order.
type Collector struct {
	points []mathutil.Vec3
}

// AddPoint appends one point.
func (c *Collector) AddPoint(x, y, z float64) {
	c.points = append(c.points, mathutil.Vec3{x, y, z})
}

func (c *Collector) Len() int {
	return len(c.points)
}

// Points returns the collected points. The slice is shared with the collector.
func (c *Collector) Points() []mathutil.Vec3 {
	return c.points
}

// Reset drops all points but keeps the backing storage.
func (c *Collector) Reset() {
	c.points = c.points[:0]
}

// Centroid returns the mean of all points, or the origin when empty.
func (c *Collector) Centroid() mathutil.Vec3 {
	var sum mathutil.Vec3
	if len(c.points) == 0 {
		return sum
	}
	for _, p := range c.points {
		sum.Accumulate(p)
	}
	n := float64(len(c.points))
	return mathutil.Vec3{sum[0] / n, sum[1] / n, sum[2] / n}
}

// MultiPoint returns the points as an XYZ geometry.
func (c *Collector) MultiPoint() *geom.MultiPoint {
	flat := make([]float64, 0, 3*len(c.points))
	for _, p := range c.points {
		flat = append(flat, p[0], p[1], p[2])
	}
	return geom.NewMultiPointFlat(geom.XYZ, flat)
}

// Bounds returns the axis-aligned extent of the points. ok is false when the
// collector is empty.
func (c *Collector) Bounds() (b Bounds, ok bool) {
	if len(c.points) == 0 {
		return Bounds{}, false
	}
	gb := c.MultiPoint().Bounds()
	for i := 0; i < 3; i++ {
		b.Min[i] = gb.Min(i)
		b.Max[i] = gb.Max(i)
	}
	return b, true
}

// Nearest returns the index of the point closest to p within maxDist, or -1.
// A negative maxDist means no limit.
func (c *Collector) Nearest(p mathutil.Vec3, maxDist float64) int {
	best := -1
	bestSq := math.Inf(1)
	if maxDist >= 0 {
		// Strictly-less comparison below, so nudge the limit to include maxDist itself.
		bestSq = math.Nextafter(maxDist*maxDist, math.Inf(1))
	}
	for i, q := range c.points {
		if d := mathutil.DistanceSquared(p, q); d < bestSq {
			bestSq = d
			best = i
		}
	}
	return best
}

// Bounds is an axis-aligned box.
type Bounds struct {
	Min, Max mathutil.Vec3
}

// Size returns the box extent along each axis.
func (b Bounds) Size() mathutil.Vec3 {
	return mathutil.Difference(b.Max, b.Min)
}

// Diagonal returns the distance between the two corners.
func (b Bounds) Diagonal() float64 {
	return mathutil.Distance(b.Min, b.Max)
}
