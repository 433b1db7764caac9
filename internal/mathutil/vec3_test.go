package mathutil

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vec3Equal(a, b Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

var samples = []Vec3{
	{0, 0, 0},
	{1, 2, 3},
	{-4.5, 0.25, 9},
	{1e-3, -1e3, 7},
	{123.456, -98.765, 0.5},
}

func TestDifference(t *testing.T) {
	got := Difference(Vec3{5, 7, 9}, Vec3{1, 2, 3})
	if got != (Vec3{4, 5, 6}) {
		t.Fatalf("difference=%v", got)
	}
	if got := (Vec3{5, 7, 9}).Sub(Vec3{1, 2, 3}); got != (Vec3{4, 5, 6}) {
		t.Fatalf("sub=%v", got)
	}
}

func TestMagnitude(t *testing.T) {
	if m := (Vec3{3, 4, 0}).Magnitude(); m != 5 {
		t.Fatalf("magnitude=%v", m)
	}
	if m := (Vec3{}).Magnitude(); m != 0 {
		t.Fatalf("zero magnitude=%v", m)
	}
	if m := (Vec3{-2, -3, -6}).Magnitude(); m != 7 {
		t.Fatalf("negative magnitude=%v", m)
	}
}

func TestDistanceProperties(t *testing.T) {
	for _, a := range samples {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%v,%v)=%v", a, a, d)
		}
		for _, b := range samples {
			ab, ba := Distance(a, b), Distance(b, a)
			if ab < 0 {
				t.Errorf("Distance(%v,%v)=%v is negative", a, b, ab)
			}
			if ab != ba {
				t.Errorf("asymmetric distance %v vs %v", ab, ba)
			}
			sq := DistanceSquared(a, b)
			if math.Abs(sq-ab*ab) > 1e-9*math.Max(1, sq) {
				t.Errorf("DistanceSquared(%v,%v)=%v want %v", a, b, sq, ab*ab)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	for _, v := range samples[1:] {
		n := v
		n.Normalize()
		if m := n.Magnitude(); math.Abs(m-1) > 1e-12 {
			t.Errorf("|normalize(%v)|=%v", v, m)
		}
		if n.Dot(v) <= 0 {
			t.Errorf("normalize(%v)=%v flipped direction", v, n)
		}
	}

	var zero Vec3
	zero.Normalize()
	if zero != (Vec3{}) {
		t.Fatalf("zero vector normalized to %v", zero)
	}
	if got := (Vec3{0, 0, 2}).Normalized(); got != (Vec3{0, 0, 1}) {
		t.Fatalf("normalized=%v", got)
	}
}

func TestSurfaceNormal(t *testing.T) {
	cases := []struct {
		a, b, want Vec3
	}{
		{Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{Vec3{0, 1, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{Vec3{0, 0, 1}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{Vec3{2, 0, 0}, Vec3{0, 0, 3}, Vec3{0, -1, 0}},
	}
	for _, c := range cases {
		if got := SurfaceNormal(c.a, c.b); !vec3Equal(got, c.want) {
			t.Errorf("SurfaceNormal(%v,%v)=%v want %v", c.a, c.b, got, c.want)
		}
	}

	if got := SurfaceNormal(Vec3{1, 2, 3}, Vec3{2, 4, 6}); got != (Vec3{}) {
		t.Fatalf("parallel inputs gave %v", got)
	}
	if got := SurfaceNormal(Vec3{}, Vec3{1, 0, 0}); got != (Vec3{}) {
		t.Fatalf("zero input gave %v", got)
	}
}

func TestNegateAccumulate(t *testing.T) {
	v := Vec3{1, -2, 3}
	v.Negate()
	if v != (Vec3{-1, 2, -3}) {
		t.Fatalf("negate=%v", v)
	}
	v.Accumulate(Vec3{1, 1, 1})
	if v != (Vec3{0, 3, -2}) {
		t.Fatalf("accumulate=%v", v)
	}
}

func TestVec3f(t *testing.T) {
	a := Vec3f{1, 0, 0}
	b := Vec3f{0, 1, 0}
	if n := SurfaceNormalF(a, b); n != (Vec3f{0, 0, 1}) {
		t.Fatalf("normal=%v", n)
	}
	if d := DistanceF(Vec3f{0, 0, 0}, Vec3f{3, 4, 0}); d != 5 {
		t.Fatalf("distance=%v", d)
	}
	if d := DistanceSquaredF(Vec3f{1, 1, 1}, Vec3f{2, 3, 4}); d != 14 {
		t.Fatalf("distanceSquared=%v", d)
	}
	if got := DifferenceF(Vec3f{1, 1, 1}, Vec3f{2, 3, 4}); got != (Vec3f{-1, -2, -3}) {
		t.Fatalf("difference=%v", got)
	}

	var zero Vec3f
	zero.Normalize()
	if zero != (Vec3f{}) {
		t.Fatalf("zero vector normalized to %v", zero)
	}

	v := Vec3f{0, 3, 4}
	v.Normalize()
	if m := v.Magnitude(); math.Abs(float64(m)-1) > 1e-6 {
		t.Fatalf("|v|=%v", m)
	}
	v.Negate()
	v.Accumulate(Vec3f{1, 1, 1})
	got := v.Vec3()
	if math.Abs(got[0]-1) > 1e-6 || math.Abs(got[1]-0.4) > 1e-6 || math.Abs(got[2]-0.2) > 1e-6 {
		t.Fatalf("accumulated=%v", v)
	}
}

func TestSunDirection(t *testing.T) {
	cases := []struct {
		az, alt float64
		want    Vec3
	}{
		{0, 0, Vec3{0, 1, 0}},
		{90, 0, Vec3{1, 0, 0}},
		{180, 0, Vec3{0, -1, 0}},
		{0, 90, Vec3{0, 0, 1}},
	}
	for _, c := range cases {
		got := SunDirection(c.az, c.alt)
		if !(math.Abs(got[0]-c.want[0]) < 1e-9 && math.Abs(got[1]-c.want[1]) < 1e-9 && math.Abs(got[2]-c.want[2]) < 1e-9) {
			t.Errorf("SunDirection(%v,%v)=%v want %v", c.az, c.alt, got, c.want)
		}
	}
}
