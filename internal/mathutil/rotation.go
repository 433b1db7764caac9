package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// SunDirection returns the unit vector pointing at a light source in an
// east/north/up frame. Azimuth is clockwise from north, altitude above the horizon,
// both in degrees.
func SunDirection(azimuth, altitude float64) Vec3 {
	// Tilt north up to the altitude, then swing it clockwise by the azimuth.
	m := Mat3Mul(RotZ(Deg2Rad(-azimuth)), RotX(Deg2Rad(altitude)))
	return m.MulVec3(Vec3{0, 1, 0}).Normalized()
}
