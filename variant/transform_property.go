package variant

import "quarkprop/property"

// TransformView wraps a readable handle over a Transform3D.
type TransformView[P property.Readable[Transform3D]] struct {
	p P
}

func TransformViewOf[P property.Readable[Transform3D]](p P) TransformView[P] {
	return TransformView[P]{p: p}
}

func (t TransformView[P]) Get() Transform3D   { return t.p.Get() }
func (t TransformView[P]) Value() Transform3D { return t.p.Get() }

func (t TransformView[P]) GetBasis() Basis    { return property.Inspect(t.p, Transform3D.GetBasis) }
func (t TransformView[P]) GetOrigin() Vector3 { return property.Inspect(t.p, Transform3D.GetOrigin) }

func (t TransformView[P]) Basis() BasisView[property.FieldView[P, Transform3D, Basis]] {
	return BasisViewOf(property.ViewOf(t.p, Transform3D.GetBasis))
}

func (t TransformView[P]) Origin() Vector3View[property.FieldView[P, Transform3D, Vector3]] {
	return Vector3ViewOf(property.ViewOf(t.p, Transform3D.GetOrigin))
}

func (t TransformView[P]) Inverse() Transform3D         { return property.Inspect(t.p, Transform3D.Inverse) }
func (t TransformView[P]) AffineInverse() Transform3D   { return property.Inspect(t.p, Transform3D.AffineInverse) }
func (t TransformView[P]) Orthonormalized() Transform3D { return property.Inspect(t.p, Transform3D.Orthonormalized) }
func (t TransformView[P]) String() string               { return property.Inspect(t.p, Transform3D.String) }

func (t TransformView[P]) Xform(v Vector3) Vector3                      { return property.Inspect1(t.p, Transform3D.Xform, v) }
func (t TransformView[P]) XformInv(v Vector3) Vector3                   { return property.Inspect1(t.p, Transform3D.XformInv, v) }
func (t TransformView[P]) Translated(offset Vector3) Transform3D        { return property.Inspect1(t.p, Transform3D.Translated, offset) }
func (t TransformView[P]) Rotated(axis Vector3, angle Real) Transform3D { return property.Inspect2(t.p, Transform3D.Rotated, axis, angle) }
func (t TransformView[P]) Scaled(s Vector3) Transform3D                 { return property.Inspect1(t.p, Transform3D.Scaled, s) }
func (t TransformView[P]) LookingAt(target, up Vector3) Transform3D     { return property.Inspect2(t.p, Transform3D.LookingAt, target, up) }
func (t TransformView[P]) IsEqualApprox(o Transform3D) bool             { return property.Inspect1(t.p, Transform3D.IsEqualApprox, o) }
func (t TransformView[P]) Mul(o Transform3D) Transform3D                { return property.Inspect1(t.p, Transform3D.Mul, o) }

func (t TransformView[P]) ReadOnly() TransformView[P] { return t }

// TransformProperty wraps a read-write handle over a Transform3D.
type TransformProperty[P property.ReadWritable[Transform3D]] struct {
	TransformView[P]
}

func TransformPropertyOf[P property.ReadWritable[Transform3D]](p P) TransformProperty[P] {
	return TransformProperty[P]{TransformView[P]{p: p}}
}

func (t TransformProperty[P]) Set(v Transform3D)    { t.p.Set(v) }
func (t TransformProperty[P]) Assign(v Transform3D) { t.p.Set(v) }

func (t TransformProperty[P]) basis() property.Field[P, Transform3D, Basis] {
	return property.FieldOf(t.p, Transform3D.GetBasis, (*Transform3D).SetBasis)
}

func (t TransformProperty[P]) origin() property.Field[P, Transform3D, Vector3] {
	return property.FieldOf(t.p, Transform3D.GetOrigin, (*Transform3D).SetOrigin)
}

func (t TransformProperty[P]) Basis() BasisProperty[property.Field[P, Transform3D, Basis]] {
	return BasisPropertyOf(t.basis())
}

func (t TransformProperty[P]) Origin() Vector3Property[property.Field[P, Transform3D, Vector3]] {
	return Vector3PropertyOf(t.origin())
}

func (t TransformProperty[P]) SetBasis(b Basis) Basis      { return t.basis().Assign(b) }
func (t TransformProperty[P]) SetOrigin(o Vector3) Vector3 { return t.origin().Assign(o) }

func (t TransformProperty[P]) Invert()         { property.Update(t.p, (*Transform3D).Invert) }
func (t TransformProperty[P]) AffineInvert()   { property.Update(t.p, (*Transform3D).AffineInvert) }
func (t TransformProperty[P]) Orthonormalize() { property.Update(t.p, (*Transform3D).Orthonormalize) }

func (t TransformProperty[P]) Translate(offset Vector3) {
	property.Update(t.p, func(x *Transform3D) { x.Translate(offset) })
}

func (t TransformProperty[P]) Rotate(axis Vector3, angle Real) {
	property.Update(t.p, func(x *Transform3D) { x.Rotate(axis, angle) })
}

func (t TransformProperty[P]) Scale(s Vector3) {
	property.Update(t.p, func(x *Transform3D) { x.Scale(s) })
}

func (t TransformProperty[P]) ReadOnly() TransformView[property.Source[P, Transform3D]] {
	return TransformViewOf(property.SourceOf[P, Transform3D](t.p))
}

func (t TransformProperty[P]) WriteOnly() property.Sink[P, Transform3D] {
	return property.SinkOf[P, Transform3D](t.p)
}
