//go:build wcs_host

package mathutil

import "github.com/go-gl/mathgl/mgl64"

func Difference(end, start Vec3) Vec3 {
	return Vec3(mgl64.Vec3(end).Sub(mgl64.Vec3(start)))
}

func (v Vec3) Magnitude() float64 {
	return mgl64.Vec3(v).Len()
}

func DistanceSquared(a, b Vec3) float64 {
	d := mgl64.Vec3(a).Sub(mgl64.Vec3(b))
	return d.Dot(d)
}

func Cross(a, b Vec3) Vec3 {
	return Vec3(mgl64.Vec3(a).Cross(mgl64.Vec3(b)))
}

// Normalize follows the framework's UnitVector: zero-length input is left alone
// instead of dividing by zero the way mgl64.Vec3.Normalize does.
func (v *Vec3) Normalize() {
	h := mgl64.Vec3(*v)
	if l := h.Len(); l > 0 {
		*v = Vec3(h.Mul(1.0 / l))
	}
}
