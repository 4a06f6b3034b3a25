package variant

import "quarkprop/property"

// PlaneView wraps a readable handle over a Plane.
type PlaneView[P property.Readable[Plane]] struct {
	p P
}

func PlaneViewOf[P property.Readable[Plane]](p P) PlaneView[P] {
	return PlaneView[P]{p: p}
}

func (p PlaneView[P]) Get() Plane   { return p.p.Get() }
func (p PlaneView[P]) Value() Plane { return p.p.Get() }

func (p PlaneView[P]) GetNormal() Vector3 { return property.Inspect(p.p, Plane.GetNormal) }
func (p PlaneView[P]) GetD() Real         { return property.Inspect(p.p, Plane.GetD) }
func (p PlaneView[P]) GetX() Real         { return property.Inspect(p.p, Plane.GetX) }
func (p PlaneView[P]) GetY() Real         { return property.Inspect(p.p, Plane.GetY) }
func (p PlaneView[P]) GetZ() Real         { return property.Inspect(p.p, Plane.GetZ) }

func (p PlaneView[P]) Normal() Vector3View[property.FieldView[P, Plane, Vector3]] {
	return Vector3ViewOf(property.ViewOf(p.p, Plane.GetNormal))
}

func (p PlaneView[P]) D() property.FieldView[P, Plane, Real] { return property.ViewOf(p.p, Plane.GetD) }
func (p PlaneView[P]) X() property.FieldView[P, Plane, Real] { return property.ViewOf(p.p, Plane.GetX) }
func (p PlaneView[P]) Y() property.FieldView[P, Plane, Real] { return property.ViewOf(p.p, Plane.GetY) }
func (p PlaneView[P]) Z() property.FieldView[P, Plane, Real] { return property.ViewOf(p.p, Plane.GetZ) }

func (p PlaneView[P]) Normalized() Plane                  { return property.Inspect(p.p, Plane.Normalized) }
func (p PlaneView[P]) Center() Vector3                    { return property.Inspect(p.p, Plane.Center) }
func (p PlaneView[P]) GetAnyPerpendicularNormal() Vector3 { return property.Inspect(p.p, Plane.GetAnyPerpendicularNormal) }
func (p PlaneView[P]) Neg() Plane                         { return property.Inspect(p.p, Plane.Neg) }
func (p PlaneView[P]) String() string                     { return property.Inspect(p.p, Plane.String) }

func (p PlaneView[P]) IsPointOver(v Vector3) bool              { return property.Inspect1(p.p, Plane.IsPointOver, v) }
func (p PlaneView[P]) DistanceTo(v Vector3) Real               { return property.Inspect1(p.p, Plane.DistanceTo, v) }
func (p PlaneView[P]) HasPoint(v Vector3, tolerance Real) bool { return property.Inspect2(p.p, Plane.HasPoint, v, tolerance) }
func (p PlaneView[P]) Project(v Vector3) Vector3               { return property.Inspect1(p.p, Plane.Project, v) }
func (p PlaneView[P]) IsEqualApprox(o Plane) bool              { return property.Inspect1(p.p, Plane.IsEqualApprox, o) }
func (p PlaneView[P]) IsEqualApproxAnySide(o Plane) bool       { return property.Inspect1(p.p, Plane.IsEqualApproxAnySide, o) }

func (p PlaneView[P]) Intersect3(p1, p2 Plane) (Vector3, bool) {
	return property.InspectPair(p.p, func(x Plane) (Vector3, bool) { return x.Intersect3(p1, p2) })
}

func (p PlaneView[P]) IntersectsRay(from, dir Vector3) (Vector3, bool) {
	return property.InspectPair(p.p, func(x Plane) (Vector3, bool) { return x.IntersectsRay(from, dir) })
}

func (p PlaneView[P]) IntersectsSegment(begin, end Vector3) (Vector3, bool) {
	return property.InspectPair(p.p, func(x Plane) (Vector3, bool) { return x.IntersectsSegment(begin, end) })
}

func (p PlaneView[P]) ReadOnly() PlaneView[P] { return p }

// PlaneProperty wraps a read-write handle over a Plane.
type PlaneProperty[P property.ReadWritable[Plane]] struct {
	PlaneView[P]
}

func PlanePropertyOf[P property.ReadWritable[Plane]](p P) PlaneProperty[P] {
	return PlaneProperty[P]{PlaneView[P]{p: p}}
}

func (p PlaneProperty[P]) Set(v Plane)    { p.p.Set(v) }
func (p PlaneProperty[P]) Assign(v Plane) { p.p.Set(v) }

func (p PlaneProperty[P]) normal() property.Field[P, Plane, Vector3] {
	return property.FieldOf(p.p, Plane.GetNormal, (*Plane).SetNormal)
}

func (p PlaneProperty[P]) Normal() Vector3Property[property.Field[P, Plane, Vector3]] {
	return Vector3PropertyOf(p.normal())
}

func (p PlaneProperty[P]) D() property.Field[P, Plane, Real] {
	return property.FieldOf(p.p, Plane.GetD, (*Plane).SetD)
}

func (p PlaneProperty[P]) X() property.Field[P, Plane, Real] {
	return property.FieldOf(p.p, Plane.GetX, (*Plane).SetX)
}

func (p PlaneProperty[P]) Y() property.Field[P, Plane, Real] {
	return property.FieldOf(p.p, Plane.GetY, (*Plane).SetY)
}

func (p PlaneProperty[P]) Z() property.Field[P, Plane, Real] {
	return property.FieldOf(p.p, Plane.GetZ, (*Plane).SetZ)
}

func (p PlaneProperty[P]) SetNormal(n Vector3) Vector3 { return p.normal().Assign(n) }
func (p PlaneProperty[P]) SetD(d Real) Real            { return p.D().Assign(d) }
func (p PlaneProperty[P]) SetX(v Real) Real            { return p.X().Assign(v) }
func (p PlaneProperty[P]) SetY(v Real) Real            { return p.Y().Assign(v) }
func (p PlaneProperty[P]) SetZ(v Real) Real            { return p.Z().Assign(v) }

func (p PlaneProperty[P]) Normalize() { property.Update(p.p, (*Plane).Normalize) }

func (p PlaneProperty[P]) ReadOnly() PlaneView[property.Source[P, Plane]] {
	return PlaneViewOf(property.SourceOf[P, Plane](p.p))
}

func (p PlaneProperty[P]) WriteOnly() property.Sink[P, Plane] {
	return property.SinkOf[P, Plane](p.p)
}
