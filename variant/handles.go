package variant

import "quarkprop/property"

// Owner-level handles. These bind a single Basis or Plane value as the owner,
// so writes through them change that value in place.

// X returns a handle over row 0.
func (b *Basis) X() property.Property[Basis, Vector3] {
	return property.New(b, (*Basis).GetX, (*Basis).SetX)
}

// Y returns a handle over row 1.
func (b *Basis) Y() property.Property[Basis, Vector3] {
	return property.New(b, (*Basis).GetY, (*Basis).SetY)
}

// Z returns a handle over row 2.
func (b *Basis) Z() property.Property[Basis, Vector3] {
	return property.New(b, (*Basis).GetZ, (*Basis).SetZ)
}

func (p *Plane) X() property.Property[Plane, Real] { return property.New(p, (*Plane).GetX, (*Plane).SetX) }
func (p *Plane) Y() property.Property[Plane, Real] { return property.New(p, (*Plane).GetY, (*Plane).SetY) }
func (p *Plane) Z() property.Property[Plane, Real] { return property.New(p, (*Plane).GetZ, (*Plane).SetZ) }

// Ref returns a handle over the whole value, the root for composite wrappers:
//
//	variant.BasisPropertyOf(b.Ref()).X().SetY(1)
func (b *Basis) Ref() property.Property[Basis, Basis] {
	return property.New(b, func(b *Basis) Basis { return *b }, func(b *Basis, v Basis) { *b = v })
}

func (v *Vector3) Ref() property.Property[Vector3, Vector3] {
	return property.New(v, func(v *Vector3) Vector3 { return *v }, func(v *Vector3, x Vector3) { *v = x })
}

func (p *Plane) Ref() property.Property[Plane, Plane] {
	return property.New(p, func(p *Plane) Plane { return *p }, func(p *Plane, v Plane) { *p = v })
}

func (t *Transform3D) Ref() property.Property[Transform3D, Transform3D] {
	return property.New(t, func(t *Transform3D) Transform3D { return *t }, func(t *Transform3D, v Transform3D) { *t = v })
}
