package variant

import "fmt"

// Transform3D is an affine transform: a basis followed by a translation.
type Transform3D struct {
	Basis  Basis
	Origin Vector3
}

func TransformIdentity() Transform3D { return Transform3D{Basis: BasisIdentity()} }

func (t Transform3D) Xform(v Vector3) Vector3 {
	return t.Basis.Xform(v).Add(t.Origin)
}

// XformInv applies the inverse of an orthonormal transform.
func (t Transform3D) XformInv(v Vector3) Vector3 {
	return t.Basis.XformInv(v.Sub(t.Origin))
}

// Inverse inverts an orthonormal transform.
func (t Transform3D) Inverse() Transform3D {
	b := t.Basis.Transposed()
	return Transform3D{Basis: b, Origin: b.Xform(t.Origin.Neg())}
}

// AffineInverse inverts any invertible transform.
func (t Transform3D) AffineInverse() Transform3D {
	b := t.Basis.Inverse()
	return Transform3D{Basis: b, Origin: b.Xform(t.Origin.Neg())}
}

func (t *Transform3D) Invert()       { *t = t.Inverse() }
func (t *Transform3D) AffineInvert() { *t = t.AffineInverse() }

func (t *Transform3D) Translate(offset Vector3)        { *t = t.Translated(offset) }
func (t *Transform3D) Rotate(axis Vector3, angle Real) { *t = t.Rotated(axis, angle) }
func (t *Transform3D) Scale(s Vector3)                 { *t = t.Scaled(s) }
func (t *Transform3D) Orthonormalize()                 { t.Basis.Orthonormalize() }

// Translated moves t by offset in global space.
func (t Transform3D) Translated(offset Vector3) Transform3D {
	t.Origin = t.Origin.Add(offset)
	return t
}

// Rotated rotates t around axis in global space, origin included.
func (t Transform3D) Rotated(axis Vector3, angle Real) Transform3D {
	r := BasisFromAxisAngle(axis, angle)
	return Transform3D{Basis: r.Mul(t.Basis), Origin: r.Xform(t.Origin)}
}

// Scaled scales t in global space, origin included.
func (t Transform3D) Scaled(s Vector3) Transform3D {
	return Transform3D{Basis: t.Basis.Scaled(s), Origin: t.Origin.MulV(s)}
}

// LookingAt keeps the origin and turns the basis towards target.
func (t Transform3D) LookingAt(target, up Vector3) Transform3D {
	t.Basis = BasisLookingAt(target.Sub(t.Origin), up)
	return t
}

func (t Transform3D) Orthonormalized() Transform3D {
	t.Basis.Orthonormalize()
	return t
}

func (t Transform3D) IsEqualApprox(o Transform3D) bool {
	return t.Basis.IsEqualApprox(o.Basis) && t.Origin.IsEqualApprox(o.Origin)
}

// Mul composes t and o: the result applies o first, then t.
func (t Transform3D) Mul(o Transform3D) Transform3D {
	return Transform3D{Basis: t.Basis.Mul(o.Basis), Origin: t.Xform(o.Origin)}
}

func (t Transform3D) String() string {
	return fmt.Sprintf("[%v, O: %v]", t.Basis, t.Origin)
}

func (t Transform3D) GetBasis() Basis      { return t.Basis }
func (t *Transform3D) SetBasis(b Basis)    { t.Basis = b }
func (t Transform3D) GetOrigin() Vector3   { return t.Origin }
func (t *Transform3D) SetOrigin(o Vector3) { t.Origin = o }
