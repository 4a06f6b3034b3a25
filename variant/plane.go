package variant

import "fmt"

// Plane is the set of points p with Normal.Dot(p) == D.
type Plane struct {
	Normal Vector3
	D      Real
}

func NewPlane(a, b, c, d Real) Plane { return Plane{Normal: Vector3{a, b, c}, D: d} }

// PlaneFromPoint builds the plane through point with the given normal.
func PlaneFromPoint(normal, point Vector3) Plane {
	return Plane{Normal: normal, D: normal.Dot(point)}
}

// PlaneFromPoints builds the plane through three points, with the normal
// following the clockwise winding p1, p2, p3.
func PlaneFromPoints(p1, p2, p3 Vector3) Plane {
	n := p1.Sub(p3).Cross(p1.Sub(p2)).Normalized()
	return Plane{Normal: n, D: n.Dot(p1)}
}

func (p *Plane) Normalize() {
	l := p.Normal.Length()
	if l == 0 {
		*p = Plane{}
		return
	}
	p.Normal = p.Normal.Div(l)
	p.D /= l
}

func (p Plane) Normalized() Plane {
	p.Normalize()
	return p
}

// Center returns the point of the plane closest to the origin.
func (p Plane) Center() Vector3 { return p.Normal.Mul(p.D) }

// GetAnyPerpendicularNormal returns a unit vector lying in the plane.
func (p Plane) GetAnyPerpendicularNormal() Vector3 {
	ref := Vector3{1, 0, 0}
	if absf(p.Normal.Dot(ref)) > 0.99 {
		ref = Vector3{0, 1, 0}
	}
	return ref.Sub(p.Normal.Mul(p.Normal.Dot(ref))).Normalized()
}

func (p Plane) IsPointOver(point Vector3) bool { return p.Normal.Dot(point) > p.D }

// DistanceTo returns the signed distance from the plane to point.
func (p Plane) DistanceTo(point Vector3) Real { return p.Normal.Dot(point) - p.D }

func (p Plane) HasPoint(point Vector3, tolerance Real) bool {
	return absf(p.DistanceTo(point)) <= tolerance
}

// Intersect3 returns the point shared by p, p1 and p2.
func (p Plane) Intersect3(p1, p2 Plane) (Vector3, bool) {
	n0, n1, n2 := p.Normal, p1.Normal, p2.Normal
	denom := n0.Cross(n1).Dot(n2)
	if IsZeroApprox(denom) {
		return Vector3{}, false
	}
	v := n1.Cross(n2).Mul(p.D).
		Add(n2.Cross(n0).Mul(p1.D)).
		Add(n0.Cross(n1).Mul(p2.D))
	return v.Div(denom), true
}

// IntersectsRay returns where the ray from from along dir meets the plane.
func (p Plane) IntersectsRay(from, dir Vector3) (Vector3, bool) {
	den := p.Normal.Dot(dir)
	if IsZeroApprox(den) {
		return Vector3{}, false
	}
	dist := (p.Normal.Dot(from) - p.D) / den
	if dist > CMPEpsilon {
		return Vector3{}, false
	}
	return from.Add(dir.Mul(-dist)), true
}

// IntersectsSegment returns where the segment from begin to end meets the
// plane.
func (p Plane) IntersectsSegment(begin, end Vector3) (Vector3, bool) {
	seg := begin.Sub(end)
	den := p.Normal.Dot(seg)
	if IsZeroApprox(den) {
		return Vector3{}, false
	}
	dist := (p.Normal.Dot(begin) - p.D) / den
	if dist < -CMPEpsilon || dist > 1+CMPEpsilon {
		return Vector3{}, false
	}
	return begin.Add(seg.Mul(-dist)), true
}

// Project returns the orthogonal projection of point onto the plane.
func (p Plane) Project(point Vector3) Vector3 {
	return point.Sub(p.Normal.Mul(p.DistanceTo(point)))
}

func (p Plane) Neg() Plane { return Plane{Normal: p.Normal.Neg(), D: -p.D} }

func (p Plane) IsEqualApprox(o Plane) bool {
	return p.Normal.IsEqualApprox(o.Normal) && IsEqualApprox(p.D, o.D)
}

// IsEqualApproxAnySide is IsEqualApprox that also accepts the flipped plane.
func (p Plane) IsEqualApproxAnySide(o Plane) bool {
	return p.IsEqualApprox(o) || p.IsEqualApprox(o.Neg())
}

func (p Plane) String() string {
	return fmt.Sprintf("[N: %v, D: %g]", p.Normal, p.D)
}

func (p Plane) GetNormal() Vector3   { return p.Normal }
func (p *Plane) SetNormal(n Vector3) { p.Normal = n }
func (p Plane) GetD() Real           { return p.D }
func (p *Plane) SetD(d Real)         { p.D = d }

// X, Y and Z name the components of the normal.

func (p Plane) GetX() Real { return p.Normal.X }
func (p Plane) GetY() Real { return p.Normal.Y }
func (p Plane) GetZ() Real { return p.Normal.Z }

func (p *Plane) SetX(v Real) { p.Normal.X = v }
func (p *Plane) SetY(v Real) { p.Normal.Y = v }
func (p *Plane) SetZ(v Real) { p.Normal.Z = v }
