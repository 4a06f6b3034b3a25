package variant

import "quarkprop/property"

// QuaternionView wraps a readable handle over a Quaternion.
type QuaternionView[P property.Readable[Quaternion]] struct {
	p P
}

func QuaternionViewOf[P property.Readable[Quaternion]](p P) QuaternionView[P] {
	return QuaternionView[P]{p: p}
}

func (q QuaternionView[P]) Get() Quaternion   { return q.p.Get() }
func (q QuaternionView[P]) Value() Quaternion { return q.p.Get() }

func (q QuaternionView[P]) GetX() Real { return property.Inspect(q.p, Quaternion.GetX) }
func (q QuaternionView[P]) GetY() Real { return property.Inspect(q.p, Quaternion.GetY) }
func (q QuaternionView[P]) GetZ() Real { return property.Inspect(q.p, Quaternion.GetZ) }
func (q QuaternionView[P]) GetW() Real { return property.Inspect(q.p, Quaternion.GetW) }

func (q QuaternionView[P]) X() property.FieldView[P, Quaternion, Real] { return property.ViewOf(q.p, Quaternion.GetX) }
func (q QuaternionView[P]) Y() property.FieldView[P, Quaternion, Real] { return property.ViewOf(q.p, Quaternion.GetY) }
func (q QuaternionView[P]) Z() property.FieldView[P, Quaternion, Real] { return property.ViewOf(q.p, Quaternion.GetZ) }
func (q QuaternionView[P]) W() property.FieldView[P, Quaternion, Real] { return property.ViewOf(q.p, Quaternion.GetW) }

func (q QuaternionView[P]) Length() Real           { return property.Inspect(q.p, Quaternion.Length) }
func (q QuaternionView[P]) LengthSquared() Real    { return property.Inspect(q.p, Quaternion.LengthSquared) }
func (q QuaternionView[P]) Normalized() Quaternion { return property.Inspect(q.p, Quaternion.Normalized) }
func (q QuaternionView[P]) IsNormalized() bool     { return property.Inspect(q.p, Quaternion.IsNormalized) }
func (q QuaternionView[P]) Inverse() Quaternion    { return property.Inspect(q.p, Quaternion.Inverse) }
func (q QuaternionView[P]) Neg() Quaternion        { return property.Inspect(q.p, Quaternion.Neg) }
func (q QuaternionView[P]) GetAxis() Vector3       { return property.Inspect(q.p, Quaternion.GetAxis) }
func (q QuaternionView[P]) GetAngle() Real         { return property.Inspect(q.p, Quaternion.GetAngle) }
func (q QuaternionView[P]) String() string         { return property.Inspect(q.p, Quaternion.String) }

func (q QuaternionView[P]) Mul(o Quaternion) Quaternion            { return property.Inspect1(q.p, Quaternion.Mul, o) }
func (q QuaternionView[P]) MulScalar(s Real) Quaternion            { return property.Inspect1(q.p, Quaternion.MulScalar, s) }
func (q QuaternionView[P]) Dot(o Quaternion) Real                  { return property.Inspect1(q.p, Quaternion.Dot, o) }
func (q QuaternionView[P]) Xform(v Vector3) Vector3                { return property.Inspect1(q.p, Quaternion.Xform, v) }
func (q QuaternionView[P]) Slerp(to Quaternion, w Real) Quaternion { return property.Inspect2(q.p, Quaternion.Slerp, to, w) }
func (q QuaternionView[P]) IsEqualApprox(o Quaternion) bool        { return property.Inspect1(q.p, Quaternion.IsEqualApprox, o) }

func (q QuaternionView[P]) ReadOnly() QuaternionView[P] { return q }

// QuaternionProperty wraps a read-write handle over a Quaternion.
type QuaternionProperty[P property.ReadWritable[Quaternion]] struct {
	QuaternionView[P]
}

func QuaternionPropertyOf[P property.ReadWritable[Quaternion]](p P) QuaternionProperty[P] {
	return QuaternionProperty[P]{QuaternionView[P]{p: p}}
}

func (q QuaternionProperty[P]) Set(v Quaternion)    { q.p.Set(v) }
func (q QuaternionProperty[P]) Assign(v Quaternion) { q.p.Set(v) }

func (q QuaternionProperty[P]) X() property.Field[P, Quaternion, Real] {
	return property.FieldOf(q.p, Quaternion.GetX, (*Quaternion).SetX)
}

func (q QuaternionProperty[P]) Y() property.Field[P, Quaternion, Real] {
	return property.FieldOf(q.p, Quaternion.GetY, (*Quaternion).SetY)
}

func (q QuaternionProperty[P]) Z() property.Field[P, Quaternion, Real] {
	return property.FieldOf(q.p, Quaternion.GetZ, (*Quaternion).SetZ)
}

func (q QuaternionProperty[P]) W() property.Field[P, Quaternion, Real] {
	return property.FieldOf(q.p, Quaternion.GetW, (*Quaternion).SetW)
}

func (q QuaternionProperty[P]) SetX(v Real) Real { return q.X().Assign(v) }
func (q QuaternionProperty[P]) SetY(v Real) Real { return q.Y().Assign(v) }
func (q QuaternionProperty[P]) SetZ(v Real) Real { return q.Z().Assign(v) }
func (q QuaternionProperty[P]) SetW(v Real) Real { return q.W().Assign(v) }

func (q QuaternionProperty[P]) Normalize() { property.Update(q.p, (*Quaternion).Normalize) }

func (q QuaternionProperty[P]) ReadOnly() QuaternionView[property.Source[P, Quaternion]] {
	return QuaternionViewOf(property.SourceOf[P, Quaternion](q.p))
}

func (q QuaternionProperty[P]) WriteOnly() property.Sink[P, Quaternion] {
	return property.SinkOf[P, Quaternion](q.p)
}
