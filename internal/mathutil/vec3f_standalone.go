//go:build !wcs_host

package mathutil

import "github.com/chewxy/math32"

// DifferenceF returns end - start.
func DifferenceF(end, start Vec3f) Vec3f {
	return Vec3f{end[0] - start[0], end[1] - start[1], end[2] - start[2]}
}

func (v Vec3f) Magnitude() float32 {
	return math32.Sqrt(float32(v[0]*v[0]) + float32(v[1]*v[1]) + float32(v[2]*v[2]))
}

func DistanceSquaredF(a, b Vec3f) float32 {
	d := DifferenceF(a, b)
	return float32(d[0]*d[0]) + float32(d[1]*d[1]) + float32(d[2]*d[2])
}

func CrossF(a, b Vec3f) Vec3f {
	return Vec3f{
		float32(a[1]*b[2]) - float32(a[2]*b[1]),
		float32(a[2]*b[0]) - float32(a[0]*b[2]),
		float32(a[0]*b[1]) - float32(a[1]*b[0]),
	}
}

func (v *Vec3f) Normalize() {
	l := v.Magnitude()
	if l > 0 {
		inv := 1 / l
		v[0] *= inv
		v[1] *= inv
		v[2] *= inv
	}
}
