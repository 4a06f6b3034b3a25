package variant

import "fmt"

// Basis is a 3x3 matrix stored as rows. Columns are the local axes. The zero
// value is the zero matrix; use BasisIdentity for the identity.
type Basis struct {
	Rows [3]Vector3
}

func BasisIdentity() Basis {
	return Basis{Rows: [3]Vector3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// NewBasis builds a basis from its elements in row order.
func NewBasis(xx, xy, xz, yx, yy, yz, zx, zy, zz Real) Basis {
	return Basis{Rows: [3]Vector3{{xx, xy, xz}, {yx, yy, yz}, {zx, zy, zz}}}
}

// BasisFromColumns builds a basis whose columns are x, y and z.
func BasisFromColumns(x, y, z Vector3) Basis {
	var b Basis
	b.SetColumns(x, y, z)
	return b
}

func BasisFromAxisAngle(axis Vector3, angle Real) Basis {
	var b Basis
	b.SetAxisAngle(axis, angle)
	return b
}

func BasisFromQuaternion(q Quaternion) Basis {
	var b Basis
	b.SetQuaternion(q)
	return b
}

func BasisFromScale(s Vector3) Basis {
	return NewBasis(s.X, 0, 0, 0, s.Y, 0, 0, 0, s.Z)
}

// BasisFromEuler builds a basis from YXZ Euler angles in radians.
func BasisFromEuler(e Vector3) Basis {
	var b Basis
	b.SetEuler(e)
	return b
}

// BasisLookingAt builds a basis whose -Z axis points at target. It returns
// the identity when target is zero or parallel to up.
func BasisLookingAt(target, up Vector3) Basis {
	if target.IsZeroApprox() || up.IsZeroApprox() {
		return BasisIdentity()
	}
	z := target.Normalized().Neg()
	x := up.Cross(z)
	if x.IsZeroApprox() {
		return BasisIdentity()
	}
	x.Normalize()
	y := z.Cross(x)
	return BasisFromColumns(x, y, z)
}

func (b Basis) el(i, j int) Real {
	return b.Rows[i].At(Axis(j))
}

func (b *Basis) setEl(i, j int, v Real) {
	b.Rows[i].SetAxis(Axis(j), v)
}

// At returns row i.
func (b Basis) At(i int) Vector3 { return b.Rows[i] }

// SetElements sets all nine elements in row order.
func (b *Basis) SetElements(xx, xy, xz, yx, yy, yz, zx, zy, zz Real) {
	*b = NewBasis(xx, xy, xz, yx, yy, yz, zx, zy, zz)
}

func (b *Basis) SetColumns(x, y, z Vector3) {
	b.SetColumn(0, x)
	b.SetColumn(1, y)
	b.SetColumn(2, z)
}

func (b Basis) GetColumn(i int) Vector3 {
	return Vector3{b.Rows[0].At(Axis(i)), b.Rows[1].At(Axis(i)), b.Rows[2].At(Axis(i))}
}

func (b *Basis) SetColumn(i int, v Vector3) {
	b.Rows[0].SetAxis(Axis(i), v.X)
	b.Rows[1].SetAxis(Axis(i), v.Y)
	b.Rows[2].SetAxis(Axis(i), v.Z)
}

func (b Basis) GetMainDiagonal() Vector3 {
	return Vector3{b.Rows[0].X, b.Rows[1].Y, b.Rows[2].Z}
}

func (b *Basis) SetZero() { *b = Basis{} }

func (b *Basis) setDiagonal(d Vector3) {
	*b = BasisFromScale(d)
}

func (b Basis) Determinant() Real {
	r := b.Rows
	return r[0].X*(r[1].Y*r[2].Z-r[2].Y*r[1].Z) -
		r[1].X*(r[0].Y*r[2].Z-r[2].Y*r[0].Z) +
		r[2].X*(r[0].Y*r[1].Z-r[1].Y*r[0].Z)
}

// Invert replaces b with its inverse. A singular basis is left unchanged.
func (b *Basis) Invert() {
	r := b.Rows
	co := [3]Real{
		r[1].Y*r[2].Z - r[1].Z*r[2].Y,
		r[1].Z*r[2].X - r[1].X*r[2].Z,
		r[1].X*r[2].Y - r[1].Y*r[2].X,
	}
	det := r[0].X*co[0] + r[0].Y*co[1] + r[0].Z*co[2]
	if det == 0 {
		return
	}
	s := 1 / det
	b.SetElements(
		co[0]*s, (r[0].Z*r[2].Y-r[0].Y*r[2].Z)*s, (r[0].Y*r[1].Z-r[0].Z*r[1].Y)*s,
		co[1]*s, (r[0].X*r[2].Z-r[0].Z*r[2].X)*s, (r[0].Z*r[1].X-r[0].X*r[1].Z)*s,
		co[2]*s, (r[0].Y*r[2].X-r[0].X*r[2].Y)*s, (r[0].X*r[1].Y-r[0].Y*r[1].X)*s,
	)
}

func (b Basis) Inverse() Basis {
	b.Invert()
	return b
}

func (b *Basis) Transpose() {
	r := &b.Rows
	r[0].Y, r[1].X = r[1].X, r[0].Y
	r[0].Z, r[2].X = r[2].X, r[0].Z
	r[1].Z, r[2].Y = r[2].Y, r[1].Z
}

func (b Basis) Transposed() Basis {
	b.Transpose()
	return b
}

// Mul returns the matrix product b*o.
func (b Basis) Mul(o Basis) Basis {
	return NewBasis(
		o.Tdotx(b.Rows[0]), o.Tdoty(b.Rows[0]), o.Tdotz(b.Rows[0]),
		o.Tdotx(b.Rows[1]), o.Tdoty(b.Rows[1]), o.Tdotz(b.Rows[1]),
		o.Tdotx(b.Rows[2]), o.Tdoty(b.Rows[2]), o.Tdotz(b.Rows[2]),
	)
}

func (b Basis) MulScalar(s Real) Basis {
	return Basis{Rows: [3]Vector3{b.Rows[0].Mul(s), b.Rows[1].Mul(s), b.Rows[2].Mul(s)}}
}

func (b Basis) Add(o Basis) Basis {
	return Basis{Rows: [3]Vector3{b.Rows[0].Add(o.Rows[0]), b.Rows[1].Add(o.Rows[1]), b.Rows[2].Add(o.Rows[2])}}
}

func (b Basis) Sub(o Basis) Basis {
	return Basis{Rows: [3]Vector3{b.Rows[0].Sub(o.Rows[0]), b.Rows[1].Sub(o.Rows[1]), b.Rows[2].Sub(o.Rows[2])}}
}

// Tdotx, Tdoty and Tdotz are dot products of v with column 0, 1 and 2.

func (b Basis) Tdotx(v Vector3) Real { return b.Rows[0].X*v.X + b.Rows[1].X*v.Y + b.Rows[2].X*v.Z }
func (b Basis) Tdoty(v Vector3) Real { return b.Rows[0].Y*v.X + b.Rows[1].Y*v.Y + b.Rows[2].Y*v.Z }
func (b Basis) Tdotz(v Vector3) Real { return b.Rows[0].Z*v.X + b.Rows[1].Z*v.Y + b.Rows[2].Z*v.Z }

func (b Basis) Xform(v Vector3) Vector3 {
	return Vector3{b.Rows[0].Dot(v), b.Rows[1].Dot(v), b.Rows[2].Dot(v)}
}

// XformInv multiplies v by the transpose of b, which inverts an orthonormal b.
func (b Basis) XformInv(v Vector3) Vector3 {
	return Vector3{b.Tdotx(v), b.Tdoty(v), b.Tdotz(v)}
}

// TransposeXform returns transpose(b) * m.
func (b Basis) TransposeXform(m Basis) Basis {
	var out Basis
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.setEl(i, j, b.el(0, i)*m.el(0, j)+b.el(1, i)*m.el(1, j)+b.el(2, i)*m.el(2, j))
		}
	}
	return out
}

// FromZ sets b to an orthonormal basis whose third column is z.
func (b *Basis) FromZ(z Vector3) {
	var tx, ty Vector3
	if absf(z.Z) > sqrt12 {
		a := z.Y*z.Y + z.Z*z.Z
		k := 1 / sqrtf(a)
		tx = Vector3{0, -z.Z * k, z.Y * k}
		ty = Vector3{a * k, -z.X * tx.Z, z.X * tx.Y}
	} else {
		a := z.X*z.X + z.Y*z.Y
		k := 1 / sqrtf(a)
		tx = Vector3{-z.Y * k, z.X * k, 0}
		ty = Vector3{-z.Z * tx.Y, z.Z * tx.X, a * k}
	}
	*b = BasisFromColumns(tx, ty, z)
}

// Rotate applies a global rotation of angle radians around axis.
func (b *Basis) Rotate(axis Vector3, angle Real) {
	*b = BasisFromAxisAngle(axis, angle).Mul(*b)
}

func (b Basis) Rotated(axis Vector3, angle Real) Basis {
	b.Rotate(axis, angle)
	return b
}

// RotateLocal applies a rotation around an axis expressed in local space.
func (b *Basis) RotateLocal(axis Vector3, angle Real) {
	*b = b.Mul(BasisFromAxisAngle(axis, angle))
}

func (b Basis) RotatedLocal(axis Vector3, angle Real) Basis {
	b.RotateLocal(axis, angle)
	return b
}

func (b *Basis) RotateQuaternion(q Quaternion) {
	*b = BasisFromQuaternion(q).Mul(*b)
}

// RotateToAlign rotates b by the rotation taking start onto end.
func (b *Basis) RotateToAlign(start, end Vector3) {
	axis := start.Cross(end).Normalized()
	if axis.LengthSquared() == 0 {
		return
	}
	dot := Clamp(start.Normalized().Dot(end.Normalized()), -1, 1)
	b.Rotate(axis, acosf(dot))
}

// SetAxisAngle sets b to a rotation of angle radians around a normalized axis.
func (b *Basis) SetAxisAngle(axis Vector3, angle Real) {
	sq := Vector3{axis.X * axis.X, axis.Y * axis.Y, axis.Z * axis.Z}
	c := cosf(angle)
	s := sinf(angle)
	t := 1 - c

	r := &b.Rows
	r[0].X = sq.X + c*(1-sq.X)
	r[1].Y = sq.Y + c*(1-sq.Y)
	r[2].Z = sq.Z + c*(1-sq.Z)

	xyzt := axis.X * axis.Y * t
	zyxs := axis.Z * s
	r[0].Y = xyzt - zyxs
	r[1].X = xyzt + zyxs

	xyzt = axis.X * axis.Z * t
	zyxs = axis.Y * s
	r[0].Z = xyzt + zyxs
	r[2].X = xyzt - zyxs

	xyzt = axis.Y * axis.Z * t
	zyxs = axis.X * s
	r[1].Z = xyzt - zyxs
	r[2].Y = xyzt + zyxs
}

// GetAxisAngle returns the axis and angle of a rotation basis.
func (b Basis) GetAxisAngle() (Vector3, Real) {
	q := b.GetRotationQuaternion()
	if absf(q.W) > 1-CMPEpsilon {
		return Vector3{0, 1, 0}, 0
	}
	return q.GetAxis().Normalized(), q.GetAngle()
}

func (b *Basis) SetAxisAngleScale(axis Vector3, angle Real, scale Vector3) {
	b.setDiagonal(scale)
	b.Rotate(axis, angle)
}

func (b *Basis) SetQuaternionScale(q Quaternion, scale Vector3) {
	b.setDiagonal(scale)
	b.RotateQuaternion(q)
}

// SetQuaternion sets b to the rotation described by q.
func (b *Basis) SetQuaternion(q Quaternion) {
	d := q.LengthSquared()
	if d == 0 {
		*b = BasisIdentity()
		return
	}
	s := 2 / d
	xs, ys, zs := q.X*s, q.Y*s, q.Z*s
	wx, wy, wz := q.W*xs, q.W*ys, q.W*zs
	xx, xy, xz := q.X*xs, q.X*ys, q.X*zs
	yy, yz, zz := q.Y*ys, q.Y*zs, q.Z*zs
	b.SetElements(
		1-(yy+zz), xy-wz, xz+wy,
		xy+wz, 1-(xx+zz), yz-wx,
		xz-wy, yz+wx, 1-(xx+yy),
	)
}

// GetQuaternion converts a rotation basis to a quaternion. The result is
// meaningless when b is not a rotation; see GetRotationQuaternion.
func (b Basis) GetQuaternion() Quaternion {
	m := b
	trace := m.el(0, 0) + m.el(1, 1) + m.el(2, 2)
	var tmp [4]Real
	if trace > 0 {
		s := sqrtf(trace + 1)
		tmp[3] = s * 0.5
		s = 0.5 / s
		tmp[0] = (m.el(2, 1) - m.el(1, 2)) * s
		tmp[1] = (m.el(0, 2) - m.el(2, 0)) * s
		tmp[2] = (m.el(1, 0) - m.el(0, 1)) * s
	} else {
		var i int
		switch {
		case m.el(0, 0) < m.el(1, 1) && m.el(1, 1) < m.el(2, 2):
			i = 2
		case m.el(0, 0) < m.el(1, 1):
			i = 1
		case m.el(0, 0) < m.el(2, 2):
			i = 2
		}
		j := (i + 1) % 3
		k := (i + 2) % 3
		s := sqrtf(m.el(i, i) - m.el(j, j) - m.el(k, k) + 1)
		tmp[i] = s * 0.5
		s = 0.5 / s
		tmp[3] = (m.el(k, j) - m.el(j, k)) * s
		tmp[j] = (m.el(j, i) + m.el(i, j)) * s
		tmp[k] = (m.el(k, i) + m.el(i, k)) * s
	}
	return Quaternion{tmp[0], tmp[1], tmp[2], tmp[3]}
}

// rotation returns b orthonormalized with any reflection removed.
func (b Basis) rotation() Basis {
	m := b.Orthonormalized()
	if m.Determinant() < 0 {
		m = m.MulScalar(-1)
	}
	return m
}

// GetRotationQuaternion returns the rotation part of b with scale removed.
func (b Basis) GetRotationQuaternion() Quaternion {
	return b.rotation().GetQuaternion()
}

// GetRotationAxisAngle is GetAxisAngle for a basis that may carry scale.
func (b Basis) GetRotationAxisAngle() (Vector3, Real) {
	return b.rotation().GetAxisAngle()
}

// GetRotationAxisAngleLocal returns the axis and angle of the rotation part
// expressed in the local frame of b.
func (b Basis) GetRotationAxisAngleLocal() (Vector3, Real) {
	axis, angle := b.Transposed().rotation().GetAxisAngle()
	return axis, -angle
}

// Scale scales b in global space: row i is multiplied by s[i].
func (b *Basis) Scale(s Vector3) {
	b.Rows[0] = b.Rows[0].Mul(s.X)
	b.Rows[1] = b.Rows[1].Mul(s.Y)
	b.Rows[2] = b.Rows[2].Mul(s.Z)
}

func (b Basis) Scaled(s Vector3) Basis {
	b.Scale(s)
	return b
}

// ScaleLocal scales b in local space: column i is multiplied by s[i].
func (b *Basis) ScaleLocal(s Vector3) {
	*b = b.Mul(BasisFromScale(s))
}

func (b Basis) ScaledLocal(s Vector3) Basis {
	b.ScaleLocal(s)
	return b
}

// ScaleOrthogonal scales b along its own orthonormalized axes, keeping
// skewed axes skewed.
func (b *Basis) ScaleOrthogonal(s Vector3) {
	*b = b.ScaledOrthogonal(s)
}

func (b Basis) ScaledOrthogonal(s Vector3) Basis {
	d := s.Sub(Vector3{1, 1, 1})
	neg := d.X+d.Y+d.Z < 0
	o := b.Orthonormalized()
	d = o.XformInv(d)
	var dots Vector3
	for i := AxisX; i <= AxisZ; i++ {
		c := b.GetColumn(int(i)).Normalized()
		di := d.At(i)
		dots = dots.Add(Vector3{
			di * absf(c.Dot(o.GetColumn(0))),
			di * absf(c.Dot(o.GetColumn(1))),
			di * absf(c.Dot(o.GetColumn(2))),
		})
	}
	if neg != (dots.X+dots.Y+dots.Z < 0) {
		dots = dots.Neg()
	}
	b.ScaleLocal(Vector3{1, 1, 1}.Add(dots))
	return b
}

func (b Basis) GetUniformScale() Real {
	return (b.Rows[0].Length() + b.Rows[1].Length() + b.Rows[2].Length()) / 3
}

func (b *Basis) MakeScaleUniform() {
	l := b.GetUniformScale()
	for i := range b.Rows {
		b.Rows[i] = b.Rows[i].Normalized().Mul(l)
	}
}

func (b Basis) GetScaleAbs() Vector3 {
	return Vector3{b.GetColumn(0).Length(), b.GetColumn(1).Length(), b.GetColumn(2).Length()}
}

// GetScale returns the column lengths, negated when b contains a reflection.
func (b Basis) GetScale() Vector3 {
	s := b.GetScaleAbs()
	if b.Determinant() < 0 {
		return s.Neg()
	}
	return s
}

// GetScaleLocal returns the row lengths, negated when b contains a
// reflection.
func (b Basis) GetScaleLocal() Vector3 {
	s := Vector3{b.Rows[0].Length(), b.Rows[1].Length(), b.Rows[2].Length()}
	if b.Determinant() < 0 {
		return s.Neg()
	}
	return s
}

// GetEulerNormalized is GetEuler for a basis that may carry scale.
func (b Basis) GetEulerNormalized() Vector3 {
	return b.rotation().GetEuler()
}

// GetEuler returns the YXZ Euler angles of a rotation basis.
func (b Basis) GetEuler() Vector3 {
	var e Vector3
	r := b.Rows
	m12 := r[1].Z
	switch {
	case m12 >= 1-CMPEpsilon:
		e.X = -Pi * 0.5
		e.Y = -atan2f(r[0].Y, r[0].X)
	case m12 <= -(1 - CMPEpsilon):
		e.X = Pi * 0.5
		e.Y = atan2f(r[0].Y, r[0].X)
	case r[1].X == 0 && r[0].Y == 0 && r[0].Z == 0 && r[2].X == 0 && r[0].X == 1:
		// Pure X rotation.
		e.X = atan2f(-m12, r[1].Y)
	default:
		e.X = asinf(-m12)
		e.Y = atan2f(r[0].Z, r[2].Z)
		e.Z = atan2f(r[1].X, r[1].Y)
	}
	return e
}

// SetEuler sets b from YXZ Euler angles in radians.
func (b *Basis) SetEuler(e Vector3) {
	c, s := cosf(e.X), sinf(e.X)
	xmat := NewBasis(1, 0, 0, 0, c, -s, 0, s, c)
	c, s = cosf(e.Y), sinf(e.Y)
	ymat := NewBasis(c, 0, s, 0, 1, 0, -s, 0, c)
	c, s = cosf(e.Z), sinf(e.Z)
	zmat := NewBasis(c, -s, 0, s, c, 0, 0, 0, 1)
	*b = ymat.Mul(xmat).Mul(zmat)
}

// SetEulerScale sets b to the scale s followed by the YXZ rotation e.
func (b *Basis) SetEulerScale(e, s Vector3) {
	b.setDiagonal(s)
	*b = BasisFromEuler(e).Mul(*b)
}

func (b Basis) IsEqualApprox(o Basis) bool {
	return b.Rows[0].IsEqualApprox(o.Rows[0]) &&
		b.Rows[1].IsEqualApprox(o.Rows[1]) &&
		b.Rows[2].IsEqualApprox(o.Rows[2])
}

// IsOrthogonal reports whether the columns are mutually perpendicular.
func (b Basis) IsOrthogonal() bool {
	x, y, z := b.GetColumn(0), b.GetColumn(1), b.GetColumn(2)
	return IsZeroApprox(x.Dot(y)) && IsZeroApprox(x.Dot(z)) && IsZeroApprox(y.Dot(z))
}

func (b Basis) IsDiagonal() bool {
	r := b.Rows
	return IsZeroApprox(r[0].Y) && IsZeroApprox(r[0].Z) &&
		IsZeroApprox(r[1].X) && IsZeroApprox(r[1].Z) &&
		IsZeroApprox(r[2].X) && IsZeroApprox(r[2].Y)
}

// IsRotation reports whether b is orthonormal with determinant 1.
func (b Basis) IsRotation() bool {
	return IsEqualApprox(b.Determinant(), 1) && b.Mul(b.Transposed()).IsEqualApprox(BasisIdentity())
}

func (b Basis) Lerp(to Basis, w Real) Basis {
	return Basis{Rows: [3]Vector3{
		b.Rows[0].Lerp(to.Rows[0], w),
		b.Rows[1].Lerp(to.Rows[1], w),
		b.Rows[2].Lerp(to.Rows[2], w),
	}}
}

// Slerp interpolates the rotation spherically and the row scale linearly.
func (b Basis) Slerp(to Basis, w Real) Basis {
	from := b.GetRotationQuaternion()
	dst := to.GetRotationQuaternion()
	out := BasisFromQuaternion(from.Slerp(dst, w))
	for i := range out.Rows {
		out.Rows[i] = out.Rows[i].Mul(Lerp(b.Rows[i].Length(), to.Rows[i].Length(), w))
	}
	return out
}

// Orthonormalize applies Gram-Schmidt to the columns.
func (b *Basis) Orthonormalize() {
	x, y, z := b.GetColumn(0), b.GetColumn(1), b.GetColumn(2)
	x.Normalize()
	y = y.Sub(x.Mul(x.Dot(y)))
	y.Normalize()
	z = z.Sub(x.Mul(x.Dot(z))).Sub(y.Mul(y.Dot(z)))
	z.Normalize()
	b.SetColumns(x, y, z)
}

func (b Basis) Orthonormalized() Basis {
	b.Orthonormalize()
	return b
}

// Orthogonalize makes the columns perpendicular while keeping their lengths.
func (b *Basis) Orthogonalize() {
	s := b.GetScale()
	b.Orthonormalize()
	b.ScaleLocal(s)
}

func (b Basis) Orthogonalized() Basis {
	b.Orthogonalize()
	return b
}

// Diagonalize turns a symmetric b into a diagonal matrix with Jacobi
// rotations and returns the accumulated rotation.
func (b *Basis) Diagonalize() Basis {
	const maxIter = 1024
	off := b.el(0, 1)*b.el(0, 1) + b.el(0, 2)*b.el(0, 2) + b.el(1, 2)*b.el(1, 2)
	acc := BasisIdentity()
	for it := 0; off > CMPEpsilon2 && it < maxIter; it++ {
		e01 := b.el(0, 1) * b.el(0, 1)
		e02 := b.el(0, 2) * b.el(0, 2)
		e12 := b.el(1, 2) * b.el(1, 2)

		var i, j int
		switch {
		case e01 > e02 && e12 > e01:
			i, j = 1, 2
		case e01 > e02:
			i, j = 0, 1
		case e12 > e02:
			i, j = 1, 2
		default:
			i, j = 0, 2
		}

		var angle Real
		if IsEqualApprox(b.el(j, j), b.el(i, i)) {
			angle = Pi / 4
		} else {
			angle = 0.5 * atanf(2*b.el(i, j)/(b.el(j, j)-b.el(i, i)))
		}

		rot := BasisIdentity()
		c, s := cosf(angle), sinf(angle)
		rot.setEl(i, i, c)
		rot.setEl(j, j, c)
		rot.setEl(j, i, s)
		rot.setEl(i, j, -s)

		off -= b.el(i, j) * b.el(i, j)
		*b = rot.Mul(*b).Mul(rot.Transposed())
		acc = rot.Mul(acc)
	}
	return acc
}

func (b Basis) String() string {
	return fmt.Sprintf("[X: %v, Y: %v, Z: %v]", b.GetColumn(0), b.GetColumn(1), b.GetColumn(2))
}

// Row accessors. X, Y and Z name rows 0, 1 and 2.

func (b Basis) GetX() Vector3 { return b.Rows[0] }
func (b Basis) GetY() Vector3 { return b.Rows[1] }
func (b Basis) GetZ() Vector3 { return b.Rows[2] }

func (b *Basis) SetX(v Vector3) { b.Rows[0] = v }
func (b *Basis) SetY(v Vector3) { b.Rows[1] = v }
func (b *Basis) SetZ(v Vector3) { b.Rows[2] = v }

func (b Basis) GetRows() [3]Vector3   { return b.Rows }
func (b *Basis) SetRows(r [3]Vector3) { b.Rows = r }
