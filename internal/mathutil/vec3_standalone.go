//go:build !wcs_host

package mathutil

import "math"

// The explicit float64 conversions keep the compiler from fusing multiply-add
// pairs, so results round identically on every architecture.

// Difference returns end - start.
func Difference(end, start Vec3) Vec3 {
	return Vec3{end[0] - start[0], end[1] - start[1], end[2] - start[2]}
}

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(float64(v[0]*v[0]) + float64(v[1]*v[1]) + float64(v[2]*v[2]))
}

// DistanceSquared returns the squared distance between a and b. Cheaper than
// Distance when only the ordering of distances matters.
func DistanceSquared(a, b Vec3) float64 {
	d := Difference(a, b)
	return float64(d[0]*d[0]) + float64(d[1]*d[1]) + float64(d[2]*d[2])
}

// Cross returns a × b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		float64(a[1]*b[2]) - float64(a[2]*b[1]),
		float64(a[2]*b[0]) - float64(a[0]*b[2]),
		float64(a[0]*b[1]) - float64(a[1]*b[0]),
	}
}

// Normalize scales v to unit length in place. A zero vector is left unchanged.
func (v *Vec3) Normalize() {
	l := v.Magnitude()
	if l > 0 {
		inv := 1.0 / l
		v[0] *= inv
		v[1] *= inv
		v[2] *= inv
	}
}
