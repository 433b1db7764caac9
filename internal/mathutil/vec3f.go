package mathutil

// Vec3f is the single-precision counterpart of Vec3.
type Vec3f [3]float32

func (v Vec3f) X() float32 { return v[0] }
func (v Vec3f) Y() float32 { return v[1] }
func (v Vec3f) Z() float32 { return v[2] }

// Vec3 widens v to double precision.
func (v Vec3f) Vec3() Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// DistanceF returns the Euclidean distance between a and b.
func DistanceF(a, b Vec3f) float32 {
	return DifferenceF(a, b).Magnitude()
}

// SurfaceNormalF returns the unit normal a × b.
func SurfaceNormalF(a, b Vec3f) Vec3f {
	n := CrossF(a, b)
	n.Normalize()
	return n
}

func (v *Vec3f) Negate() {
	v[0] = -v[0]
	v[1] = -v[1]
	v[2] = -v[2]
}

func (v *Vec3f) Accumulate(delta Vec3f) {
	v[0] += delta[0]
	v[1] += delta[1]
	v[2] += delta[2]
}
