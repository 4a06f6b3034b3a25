package variant

import "fmt"

// Quaternion is a rotation quaternion. The zero value is not a rotation; use
// QuaternionIdentity.
type Quaternion struct {
	X, Y, Z, W Real
}

func QuaternionIdentity() Quaternion { return Quaternion{W: 1} }

// QuaternionFromAxisAngle builds a rotation of angle radians around a
// normalized axis.
func QuaternionFromAxisAngle(axis Vector3, angle Real) Quaternion {
	d := axis.Length()
	if d == 0 {
		return Quaternion{}
	}
	s := sinf(angle*0.5) / d
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, cosf(angle * 0.5)}
}

func (q Quaternion) Dot(o Quaternion) Real {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quaternion) LengthSquared() Real { return q.Dot(q) }
func (q Quaternion) Length() Real        { return sqrtf(q.Dot(q)) }

func (q Quaternion) IsNormalized() bool {
	return IsEqualApprox(q.LengthSquared(), 1)
}

func (q *Quaternion) Normalize() {
	l := q.Length()
	if l == 0 {
		return
	}
	*q = q.MulScalar(1 / l)
}

func (q Quaternion) Normalized() Quaternion {
	q.Normalize()
	return q
}

func (q Quaternion) MulScalar(s Real) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q Quaternion) Neg() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, -q.W} }

// Inverse returns the conjugate, which is the inverse of a unit quaternion.
func (q Quaternion) Inverse() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, q.W} }

// Mul composes q and o: the result rotates by o first, then by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y + q.Y*o.W + q.Z*o.X - q.X*o.Z,
		Z: q.W*o.Z + q.Z*o.W + q.X*o.Y - q.Y*o.X,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Xform rotates v by q.
func (q Quaternion) Xform(v Vector3) Vector3 {
	u := Vector3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	return v.Add(uv.Mul(q.W).Add(u.Cross(uv)).Mul(2))
}

// Slerp interpolates along the shortest arc between two unit quaternions.
func (q Quaternion) Slerp(to Quaternion, w Real) Quaternion {
	cosom := q.Dot(to)
	if cosom < 0 {
		cosom = -cosom
		to = to.Neg()
	}
	var s0, s1 Real
	if 1-cosom > CMPEpsilon {
		omega := acosf(cosom)
		sinom := sinf(omega)
		s0 = sinf((1-w)*omega) / sinom
		s1 = sinf(w*omega) / sinom
	} else {
		s0 = 1 - w
		s1 = w
	}
	return Quaternion{
		X: s0*q.X + s1*to.X,
		Y: s0*q.Y + s1*to.Y,
		Z: s0*q.Z + s1*to.Z,
		W: s0*q.W + s1*to.W,
	}
}

func (q Quaternion) IsEqualApprox(o Quaternion) bool {
	return IsEqualApprox(q.X, o.X) && IsEqualApprox(q.Y, o.Y) &&
		IsEqualApprox(q.Z, o.Z) && IsEqualApprox(q.W, o.W)
}

// GetAxis returns the rotation axis of a unit quaternion.
func (q Quaternion) GetAxis() Vector3 {
	if absf(q.W) > 1-CMPEpsilon {
		return Vector3{q.X, q.Y, q.Z}
	}
	r := 1 / sqrtf(1-q.W*q.W)
	return Vector3{q.X * r, q.Y * r, q.Z * r}
}

// GetAngle returns the rotation angle of a unit quaternion in radians.
func (q Quaternion) GetAngle() Real {
	return 2 * acosf(Clamp(q.W, -1, 1))
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

func (q Quaternion) GetX() Real { return q.X }
func (q Quaternion) GetY() Real { return q.Y }
func (q Quaternion) GetZ() Real { return q.Z }
func (q Quaternion) GetW() Real { return q.W }

func (q *Quaternion) SetX(v Real) { q.X = v }
func (q *Quaternion) SetY(v Real) { q.Y = v }
func (q *Quaternion) SetZ(v Real) { q.Z = v }
func (q *Quaternion) SetW(v Real) { q.W = v }
