package variant

import "quarkprop/property"

// BasisView wraps a readable handle over a Basis.
type BasisView[P property.Readable[Basis]] struct {
	p P
}

func BasisViewOf[P property.Readable[Basis]](p P) BasisView[P] {
	return BasisView[P]{p: p}
}

func (b BasisView[P]) Get() Basis   { return b.p.Get() }
func (b BasisView[P]) Value() Basis { return b.p.Get() }

func (b BasisView[P]) GetRows() [3]Vector3       { return property.Inspect(b.p, Basis.GetRows) }
func (b BasisView[P]) GetX() Vector3             { return property.Inspect(b.p, Basis.GetX) }
func (b BasisView[P]) GetY() Vector3             { return property.Inspect(b.p, Basis.GetY) }
func (b BasisView[P]) GetZ() Vector3             { return property.Inspect(b.p, Basis.GetZ) }
func (b BasisView[P]) GetQuaternion() Quaternion { return property.Inspect(b.p, Basis.GetQuaternion) }
func (b BasisView[P]) GetColumn(i int) Vector3   { return property.Inspect1(b.p, Basis.GetColumn, i) }

func (b BasisView[P]) Rows() property.FieldView[P, Basis, [3]Vector3] {
	return property.ViewOf(b.p, Basis.GetRows)
}

func (b BasisView[P]) X() Vector3View[property.FieldView[P, Basis, Vector3]] {
	return Vector3ViewOf(property.ViewOf(b.p, Basis.GetX))
}

func (b BasisView[P]) Y() Vector3View[property.FieldView[P, Basis, Vector3]] {
	return Vector3ViewOf(property.ViewOf(b.p, Basis.GetY))
}

func (b BasisView[P]) Z() Vector3View[property.FieldView[P, Basis, Vector3]] {
	return Vector3ViewOf(property.ViewOf(b.p, Basis.GetZ))
}

func (b BasisView[P]) Quaternion() QuaternionView[property.FieldView[P, Basis, Quaternion]] {
	return QuaternionViewOf(property.ViewOf(b.p, Basis.GetQuaternion))
}

func (b BasisView[P]) Column(i int) Vector3View[property.FieldView[P, Basis, Vector3]] {
	return Vector3ViewOf(property.ViewOf(b.p, func(m Basis) Vector3 { return m.GetColumn(i) }))
}

// At returns row i. A writable handle sees the basis stored back.
func (b BasisView[P]) At(i int) Vector3 {
	return property.Index[P, Basis, int, Vector3](b.p, i)
}

func (b BasisView[P]) Inverse() Basis                    { return property.Inspect(b.p, Basis.Inverse) }
func (b BasisView[P]) Transposed() Basis                 { return property.Inspect(b.p, Basis.Transposed) }
func (b BasisView[P]) Determinant() Real                 { return property.Inspect(b.p, Basis.Determinant) }
func (b BasisView[P]) GetRotationQuaternion() Quaternion { return property.Inspect(b.p, Basis.GetRotationQuaternion) }
func (b BasisView[P]) GetEuler() Vector3                 { return property.Inspect(b.p, Basis.GetEuler) }
func (b BasisView[P]) GetUniformScale() Real             { return property.Inspect(b.p, Basis.GetUniformScale) }
func (b BasisView[P]) GetScale() Vector3                 { return property.Inspect(b.p, Basis.GetScale) }
func (b BasisView[P]) GetScaleAbs() Vector3              { return property.Inspect(b.p, Basis.GetScaleAbs) }
func (b BasisView[P]) GetMainDiagonal() Vector3          { return property.Inspect(b.p, Basis.GetMainDiagonal) }
func (b BasisView[P]) IsOrthogonal() bool                { return property.Inspect(b.p, Basis.IsOrthogonal) }
func (b BasisView[P]) IsDiagonal() bool                  { return property.Inspect(b.p, Basis.IsDiagonal) }
func (b BasisView[P]) IsRotation() bool                  { return property.Inspect(b.p, Basis.IsRotation) }
func (b BasisView[P]) Orthonormalized() Basis            { return property.Inspect(b.p, Basis.Orthonormalized) }
func (b BasisView[P]) Orthogonalized() Basis             { return property.Inspect(b.p, Basis.Orthogonalized) }
func (b BasisView[P]) String() string                    { return property.Inspect(b.p, Basis.String) }

func (b BasisView[P]) GetEulerNormalized() Vector3 { return property.Inspect(b.p, Basis.GetEulerNormalized) }
func (b BasisView[P]) GetScaleLocal() Vector3      { return property.Inspect(b.p, Basis.GetScaleLocal) }

func (b BasisView[P]) GetAxisAngle() (Vector3, Real) { return property.InspectPair(b.p, Basis.GetAxisAngle) }

func (b BasisView[P]) GetRotationAxisAngle() (Vector3, Real) {
	return property.InspectPair(b.p, Basis.GetRotationAxisAngle)
}

func (b BasisView[P]) GetRotationAxisAngleLocal() (Vector3, Real) {
	return property.InspectPair(b.p, Basis.GetRotationAxisAngleLocal)
}

func (b BasisView[P]) Rotated(axis Vector3, angle Real) Basis      { return property.Inspect2(b.p, Basis.Rotated, axis, angle) }
func (b BasisView[P]) RotatedLocal(axis Vector3, angle Real) Basis { return property.Inspect2(b.p, Basis.RotatedLocal, axis, angle) }
func (b BasisView[P]) Scaled(s Vector3) Basis                      { return property.Inspect1(b.p, Basis.Scaled, s) }
func (b BasisView[P]) ScaledLocal(s Vector3) Basis                 { return property.Inspect1(b.p, Basis.ScaledLocal, s) }
func (b BasisView[P]) ScaledOrthogonal(s Vector3) Basis            { return property.Inspect1(b.p, Basis.ScaledOrthogonal, s) }
func (b BasisView[P]) Tdotx(v Vector3) Real                        { return property.Inspect1(b.p, Basis.Tdotx, v) }
func (b BasisView[P]) Tdoty(v Vector3) Real                        { return property.Inspect1(b.p, Basis.Tdoty, v) }
func (b BasisView[P]) Tdotz(v Vector3) Real                        { return property.Inspect1(b.p, Basis.Tdotz, v) }
func (b BasisView[P]) Xform(v Vector3) Vector3                     { return property.Inspect1(b.p, Basis.Xform, v) }
func (b BasisView[P]) XformInv(v Vector3) Vector3                  { return property.Inspect1(b.p, Basis.XformInv, v) }
func (b BasisView[P]) TransposeXform(m Basis) Basis                { return property.Inspect1(b.p, Basis.TransposeXform, m) }
func (b BasisView[P]) Mul(o Basis) Basis                           { return property.Inspect1(b.p, Basis.Mul, o) }
func (b BasisView[P]) MulScalar(s Real) Basis                      { return property.Inspect1(b.p, Basis.MulScalar, s) }
func (b BasisView[P]) Add(o Basis) Basis                           { return property.Inspect1(b.p, Basis.Add, o) }
func (b BasisView[P]) Sub(o Basis) Basis                           { return property.Inspect1(b.p, Basis.Sub, o) }
func (b BasisView[P]) IsEqualApprox(o Basis) bool                  { return property.Inspect1(b.p, Basis.IsEqualApprox, o) }
func (b BasisView[P]) Lerp(to Basis, w Real) Basis                 { return property.Inspect2(b.p, Basis.Lerp, to, w) }
func (b BasisView[P]) Slerp(to Basis, w Real) Basis                { return property.Inspect2(b.p, Basis.Slerp, to, w) }

func (b BasisView[P]) ReadOnly() BasisView[P] { return b }

// BasisProperty wraps a read-write handle over a Basis. Row, column and
// quaternion handles write the whole basis back through the wrapped handle.
type BasisProperty[P property.ReadWritable[Basis]] struct {
	BasisView[P]
}

func BasisPropertyOf[P property.ReadWritable[Basis]](p P) BasisProperty[P] {
	return BasisProperty[P]{BasisView[P]{p: p}}
}

func (b BasisProperty[P]) Set(v Basis)    { b.p.Set(v) }
func (b BasisProperty[P]) Assign(v Basis) { b.p.Set(v) }

func (b BasisProperty[P]) Rows() property.Field[P, Basis, [3]Vector3] {
	return property.FieldOf(b.p, Basis.GetRows, (*Basis).SetRows)
}

func (b BasisProperty[P]) row(get func(Basis) Vector3, set func(*Basis, Vector3)) property.Field[P, Basis, Vector3] {
	return property.FieldOf(b.p, get, set)
}

func (b BasisProperty[P]) X() Vector3Property[property.Field[P, Basis, Vector3]] {
	return Vector3PropertyOf(b.row(Basis.GetX, (*Basis).SetX))
}

func (b BasisProperty[P]) Y() Vector3Property[property.Field[P, Basis, Vector3]] {
	return Vector3PropertyOf(b.row(Basis.GetY, (*Basis).SetY))
}

func (b BasisProperty[P]) Z() Vector3Property[property.Field[P, Basis, Vector3]] {
	return Vector3PropertyOf(b.row(Basis.GetZ, (*Basis).SetZ))
}

// Column returns a handle over column i.
func (b BasisProperty[P]) Column(i int) Vector3Property[property.Field[P, Basis, Vector3]] {
	return Vector3PropertyOf(b.row(
		func(m Basis) Vector3 { return m.GetColumn(i) },
		func(m *Basis, v Vector3) { m.SetColumn(i, v) },
	))
}

// Quaternion returns a handle over the rotation of the basis. Setting it
// replaces the whole basis with that rotation.
func (b BasisProperty[P]) Quaternion() QuaternionProperty[property.Field[P, Basis, Quaternion]] {
	return QuaternionPropertyOf(property.FieldOf(b.p, Basis.GetQuaternion, (*Basis).SetQuaternion))
}

func (b BasisProperty[P]) SetRows(r [3]Vector3) [3]Vector3 { return b.Rows().Assign(r) }
func (b BasisProperty[P]) SetX(v Vector3) Vector3          { return b.row(Basis.GetX, (*Basis).SetX).Assign(v) }
func (b BasisProperty[P]) SetY(v Vector3) Vector3          { return b.row(Basis.GetY, (*Basis).SetY).Assign(v) }
func (b BasisProperty[P]) SetZ(v Vector3) Vector3          { return b.row(Basis.GetZ, (*Basis).SetZ).Assign(v) }

func (b BasisProperty[P]) SetQuaternion(q Quaternion) Quaternion {
	return property.FieldOf(b.p, Basis.GetQuaternion, (*Basis).SetQuaternion).Assign(q)
}

func (b BasisProperty[P]) SetColumn(i int, v Vector3) {
	property.Update(b.p, func(m *Basis) { m.SetColumn(i, v) })
}

func (b BasisProperty[P]) Invert()           { property.Update(b.p, (*Basis).Invert) }
func (b BasisProperty[P]) Transpose()        { property.Update(b.p, (*Basis).Transpose) }
func (b BasisProperty[P]) MakeScaleUniform() { property.Update(b.p, (*Basis).MakeScaleUniform) }
func (b BasisProperty[P]) SetZero()          { property.Update(b.p, (*Basis).SetZero) }
func (b BasisProperty[P]) Orthonormalize()   { property.Update(b.p, (*Basis).Orthonormalize) }
func (b BasisProperty[P]) Orthogonalize()    { property.Update(b.p, (*Basis).Orthogonalize) }

// Diagonalize diagonalizes the stored basis and returns the rotation used.
func (b BasisProperty[P]) Diagonalize() Basis { return property.Mutate(b.p, (*Basis).Diagonalize) }

func (b BasisProperty[P]) FromZ(z Vector3) {
	property.Update(b.p, func(m *Basis) { m.FromZ(z) })
}

func (b BasisProperty[P]) Rotate(axis Vector3, angle Real) {
	property.Update(b.p, func(m *Basis) { m.Rotate(axis, angle) })
}

func (b BasisProperty[P]) RotateLocal(axis Vector3, angle Real) {
	property.Update(b.p, func(m *Basis) { m.RotateLocal(axis, angle) })
}

func (b BasisProperty[P]) RotateQuaternion(q Quaternion) {
	property.Update(b.p, func(m *Basis) { m.RotateQuaternion(q) })
}

func (b BasisProperty[P]) RotateToAlign(start, end Vector3) {
	property.Update(b.p, func(m *Basis) { m.RotateToAlign(start, end) })
}

func (b BasisProperty[P]) SetEuler(e Vector3) {
	property.Update(b.p, func(m *Basis) { m.SetEuler(e) })
}

func (b BasisProperty[P]) SetAxisAngle(axis Vector3, angle Real) {
	property.Update(b.p, func(m *Basis) { m.SetAxisAngle(axis, angle) })
}

func (b BasisProperty[P]) SetAxisAngleScale(axis Vector3, angle Real, scale Vector3) {
	property.Update(b.p, func(m *Basis) { m.SetAxisAngleScale(axis, angle, scale) })
}

func (b BasisProperty[P]) SetQuaternionScale(q Quaternion, scale Vector3) {
	property.Update(b.p, func(m *Basis) { m.SetQuaternionScale(q, scale) })
}

func (b BasisProperty[P]) SetEulerScale(e, scale Vector3) {
	property.Update(b.p, func(m *Basis) { m.SetEulerScale(e, scale) })
}

func (b BasisProperty[P]) Scale(s Vector3) {
	property.Update(b.p, func(m *Basis) { m.Scale(s) })
}

func (b BasisProperty[P]) ScaleLocal(s Vector3) {
	property.Update(b.p, func(m *Basis) { m.ScaleLocal(s) })
}

func (b BasisProperty[P]) ScaleOrthogonal(s Vector3) {
	property.Update(b.p, func(m *Basis) { m.ScaleOrthogonal(s) })
}

func (b BasisProperty[P]) SetElements(xx, xy, xz, yx, yy, yz, zx, zy, zz Real) {
	property.Update(b.p, func(m *Basis) { m.SetElements(xx, xy, xz, yx, yy, yz, zx, zy, zz) })
}

func (b BasisProperty[P]) SetColumns(x, y, z Vector3) {
	property.Update(b.p, func(m *Basis) { m.SetColumns(x, y, z) })
}

func (b BasisProperty[P]) ReadOnly() BasisView[property.Source[P, Basis]] {
	return BasisViewOf(property.SourceOf[P, Basis](b.p))
}

func (b BasisProperty[P]) WriteOnly() property.Sink[P, Basis] {
	return property.SinkOf[P, Basis](b.p)
}
