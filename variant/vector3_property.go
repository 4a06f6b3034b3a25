package variant

import "quarkprop/property"

// Vector3View wraps a readable handle over a Vector3.
type Vector3View[P property.Readable[Vector3]] struct {
	p P
}

func Vector3ViewOf[P property.Readable[Vector3]](p P) Vector3View[P] {
	return Vector3View[P]{p: p}
}

func (v Vector3View[P]) Get() Vector3   { return v.p.Get() }
func (v Vector3View[P]) Value() Vector3 { return v.p.Get() }

func (v Vector3View[P]) GetX() Real { return property.Inspect(v.p, Vector3.GetX) }
func (v Vector3View[P]) GetY() Real { return property.Inspect(v.p, Vector3.GetY) }
func (v Vector3View[P]) GetZ() Real { return property.Inspect(v.p, Vector3.GetZ) }

func (v Vector3View[P]) X() property.FieldView[P, Vector3, Real] { return property.ViewOf(v.p, Vector3.GetX) }
func (v Vector3View[P]) Y() property.FieldView[P, Vector3, Real] { return property.ViewOf(v.p, Vector3.GetY) }
func (v Vector3View[P]) Z() property.FieldView[P, Vector3, Real] { return property.ViewOf(v.p, Vector3.GetZ) }

// At indexes the vector. A writable handle sees the vector stored back.
func (v Vector3View[P]) At(axis Axis) Real {
	return property.Index[P, Vector3, Axis, Real](v.p, axis)
}

func (v Vector3View[P]) Add(o Vector3) Vector3   { return property.Inspect1(v.p, Vector3.Add, o) }
func (v Vector3View[P]) Sub(o Vector3) Vector3   { return property.Inspect1(v.p, Vector3.Sub, o) }
func (v Vector3View[P]) Mul(s Real) Vector3      { return property.Inspect1(v.p, Vector3.Mul, s) }
func (v Vector3View[P]) MulV(o Vector3) Vector3  { return property.Inspect1(v.p, Vector3.MulV, o) }
func (v Vector3View[P]) Div(s Real) Vector3      { return property.Inspect1(v.p, Vector3.Div, s) }
func (v Vector3View[P]) Dot(o Vector3) Real      { return property.Inspect1(v.p, Vector3.Dot, o) }
func (v Vector3View[P]) Cross(o Vector3) Vector3 { return property.Inspect1(v.p, Vector3.Cross, o) }

func (v Vector3View[P]) Neg() Vector3        { return property.Inspect(v.p, Vector3.Neg) }
func (v Vector3View[P]) Abs() Vector3        { return property.Inspect(v.p, Vector3.Abs) }
func (v Vector3View[P]) Length() Real        { return property.Inspect(v.p, Vector3.Length) }
func (v Vector3View[P]) LengthSquared() Real { return property.Inspect(v.p, Vector3.LengthSquared) }
func (v Vector3View[P]) Normalized() Vector3 { return property.Inspect(v.p, Vector3.Normalized) }
func (v Vector3View[P]) IsNormalized() bool  { return property.Inspect(v.p, Vector3.IsNormalized) }
func (v Vector3View[P]) IsZeroApprox() bool  { return property.Inspect(v.p, Vector3.IsZeroApprox) }
func (v Vector3View[P]) String() string      { return property.Inspect(v.p, Vector3.String) }

func (v Vector3View[P]) Lerp(to Vector3, w Real) Vector3 { return property.Inspect2(v.p, Vector3.Lerp, to, w) }
func (v Vector3View[P]) DistanceTo(o Vector3) Real       { return property.Inspect1(v.p, Vector3.DistanceTo, o) }
func (v Vector3View[P]) IsEqualApprox(o Vector3) bool    { return property.Inspect1(v.p, Vector3.IsEqualApprox, o) }

func (v Vector3View[P]) ReadOnly() Vector3View[P] { return v }

// Vector3Property wraps a read-write handle over a Vector3. Field handles
// write the whole vector back through the wrapped handle.
type Vector3Property[P property.ReadWritable[Vector3]] struct {
	Vector3View[P]
}

func Vector3PropertyOf[P property.ReadWritable[Vector3]](p P) Vector3Property[P] {
	return Vector3Property[P]{Vector3View[P]{p: p}}
}

func (v Vector3Property[P]) Set(x Vector3)    { v.p.Set(x) }
func (v Vector3Property[P]) Assign(x Vector3) { v.p.Set(x) }

func (v Vector3Property[P]) X() property.Field[P, Vector3, Real] {
	return property.FieldOf(v.p, Vector3.GetX, (*Vector3).SetX)
}

func (v Vector3Property[P]) Y() property.Field[P, Vector3, Real] {
	return property.FieldOf(v.p, Vector3.GetY, (*Vector3).SetY)
}

func (v Vector3Property[P]) Z() property.Field[P, Vector3, Real] {
	return property.FieldOf(v.p, Vector3.GetZ, (*Vector3).SetZ)
}

func (v Vector3Property[P]) SetX(x Real) Real { return v.X().Assign(x) }
func (v Vector3Property[P]) SetY(y Real) Real { return v.Y().Assign(y) }
func (v Vector3Property[P]) SetZ(z Real) Real { return v.Z().Assign(z) }

func (v Vector3Property[P]) Normalize() { property.Update(v.p, (*Vector3).Normalize) }
func (v Vector3Property[P]) Zero()      { property.Update(v.p, (*Vector3).Zero) }

func (v Vector3Property[P]) SetAxis(axis Axis, value Real) {
	property.Update(v.p, func(x *Vector3) { x.SetAxis(axis, value) })
}

func (v Vector3Property[P]) ReadOnly() Vector3View[property.Source[P, Vector3]] {
	return Vector3ViewOf(property.SourceOf[P, Vector3](v.p))
}

func (v Vector3Property[P]) WriteOnly() property.Sink[P, Vector3] {
	return property.SinkOf[P, Vector3](v.p)
}
