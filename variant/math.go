// Package variant holds the engine math value types (Vector3, Quaternion,
// Basis, Plane, Transform3D) together with their property wrappers.
//
// The value types are plain structs with value-receiver methods for queries
// and pointer-receiver methods for in-place changes. For each type C the
// package also provides CProperty, which wraps any read-write handle over a C,
// and CView, which wraps any read-only one. Both expose the fields of C as
// cascading handles and forward the methods of C; CView forwards only the
// value-receiver ones.
package variant

import "math"

// Real is the scalar type used by all math routines.
type Real = float32

const (
	CMPEpsilon  Real = 0.00001
	CMPEpsilon2 Real = CMPEpsilon * CMPEpsilon
	UnitEpsilon Real = 0.001

	Pi  Real = math.Pi
	Tau Real = 2 * math.Pi

	sqrt12 Real = 0.7071067811865475244
)

// IsEqualApprox reports whether a and b are equal within a tolerance scaled
// by their magnitude.
func IsEqualApprox(a, b Real) bool {
	if a == b {
		return true
	}
	tol := CMPEpsilon * absf(a)
	if tol < CMPEpsilon {
		tol = CMPEpsilon
	}
	return absf(a-b) < tol
}

func IsZeroApprox(v Real) bool { return absf(v) < CMPEpsilon }

func Lerp(from, to, w Real) Real { return from + (to-from)*w }

func Clamp(v, lo, hi Real) Real {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absf(v Real) Real {
	if v < 0 {
		return -v
	}
	return v
}

func sqrtf(v Real) Real     { return Real(math.Sqrt(float64(v))) }
func sinf(v Real) Real      { return Real(math.Sin(float64(v))) }
func cosf(v Real) Real      { return Real(math.Cos(float64(v))) }
func acosf(v Real) Real     { return Real(math.Acos(float64(v))) }
func asinf(v Real) Real     { return Real(math.Asin(float64(v))) }
func atanf(v Real) Real     { return Real(math.Atan(float64(v))) }
func atan2f(y, x Real) Real { return Real(math.Atan2(float64(y), float64(x))) }
