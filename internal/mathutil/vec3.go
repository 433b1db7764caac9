package mathutil

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Difference(a, b)
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Cross(a, b)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return Difference(a, b).Magnitude()
}

// SurfaceNormal returns the unit normal a × b. Parallel or zero inputs give the
// zero vector.
func SurfaceNormal(a, b Vec3) Vec3 {
	n := Cross(a, b)
	n.Normalize()
	return n
}

// Normalized returns a unit-length copy of v, or v itself when it has zero length.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// Negate flips the sign of every component in place.
func (v *Vec3) Negate() {
	v[0] = -v[0]
	v[1] = -v[1]
	v[2] = -v[2]
}

// Accumulate adds delta to v in place.
func (v *Vec3) Accumulate(delta Vec3) {
	v[0] += delta[0]
	v[1] += delta[1]
	v[2] += delta[2]
}
