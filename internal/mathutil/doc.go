// Package mathutil holds the small vector and matrix helpers DEFG needs from the
// host framework.
//
// Vec3 mirrors the framework's Point3d (float64) and Vec3f its Point3f (float32).
// Both are value types; operations that mutate in place take a pointer receiver.
//
// Backend:
//
// By default the package compiles its own standalone primitives. Building with the
// tag `wcs_host` routes the same primitives through github.com/go-gl/mathgl instead,
// standing in for the host framework's math support. The selection is all-or-nothing
// and there is no runtime switch.
package mathutil
