//go:build wcs_host

package mathutil

import "github.com/go-gl/mathgl/mgl32"

func DifferenceF(end, start Vec3f) Vec3f {
	return Vec3f(mgl32.Vec3(end).Sub(mgl32.Vec3(start)))
}

func (v Vec3f) Magnitude() float32 {
	return mgl32.Vec3(v).Len()
}

func DistanceSquaredF(a, b Vec3f) float32 {
	d := mgl32.Vec3(a).Sub(mgl32.Vec3(b))
	return d.Dot(d)
}

func CrossF(a, b Vec3f) Vec3f {
	return Vec3f(mgl32.Vec3(a).Cross(mgl32.Vec3(b)))
}

func (v *Vec3f) Normalize() {
	h := mgl32.Vec3(*v)
	if l := h.Len(); l > 0 {
		*v = Vec3f(h.Mul(1 / l))
	}
}
