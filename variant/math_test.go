package variant

import "testing"

func near(a, b Real) bool { return absf(a-b) < 1e-4 }

func nearV(a, b Vector3) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func nearB(a, b Basis) bool {
	return nearV(a.Rows[0], b.Rows[0]) && nearV(a.Rows[1], b.Rows[1]) && nearV(a.Rows[2], b.Rows[2])
}

func TestVector3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)
	if got := a.Dot(b); got != 32 {
		t.Fatalf("dot: got %v", got)
	}
	if got := a.Cross(b); got != V3(-3, 6, -3) {
		t.Fatalf("cross: got %v", got)
	}
	if got := V3(3, 4, 0).Length(); got != 5 {
		t.Fatalf("length: got %v", got)
	}
	n := V3(0, 3, 4).Normalized()
	if !n.IsNormalized() || !nearV(n, V3(0, 0.6, 0.8)) {
		t.Fatalf("normalized: got %v", n)
	}
	var z Vector3
	z.Normalize()
	if z != (Vector3{}) {
		t.Fatalf("normalizing zero changed it: %v", z)
	}
	if a.At(AxisZ) != 3 {
		t.Fatalf("At(Z): got %v", a.At(AxisZ))
	}
	a.SetAxis(AxisY, 9)
	if a.Y != 9 {
		t.Fatalf("SetAxis: got %v", a)
	}
}

func TestBasisMulIdentity(t *testing.T) {
	id := BasisIdentity()
	b := BasisFromEuler(V3(0.3, 0.5, 0.2))
	if got := id.Mul(b); !nearB(got, b) {
		t.Fatalf("identity*b mismatch: %v", got)
	}
	if got := b.Mul(id); !nearB(got, b) {
		t.Fatalf("b*identity mismatch: %v", got)
	}
}

func TestBasisInverse(t *testing.T) {
	b := BasisFromEuler(V3(0.3, -0.4, 1.1)).Scaled(V3(2, 3, 4))
	if got := b.Mul(b.Inverse()); !nearB(got, BasisIdentity()) {
		t.Fatalf("b*inverse not identity: %v", got)
	}

	singular := Basis{}
	singular.Invert()
	if singular != (Basis{}) {
		t.Fatalf("singular basis changed: %v", singular)
	}
}

func TestBasisAxisAngle(t *testing.T) {
	b := BasisFromAxisAngle(V3(0, 1, 0), Pi/2)
	if got := b.Xform(V3(1, 0, 0)); !nearV(got, V3(0, 0, -1)) {
		t.Fatalf("rotating x around y: got %v", got)
	}
	if !b.IsRotation() {
		t.Fatalf("axis-angle basis is not a rotation")
	}
	axis, angle := b.GetAxisAngle()
	if !nearV(axis, V3(0, 1, 0)) || !near(angle, Pi/2) {
		t.Fatalf("axis angle: got %v %v", axis, angle)
	}
	if got := b.XformInv(b.Xform(V3(1, 2, 3))); !nearV(got, V3(1, 2, 3)) {
		t.Fatalf("xform inverse: got %v", got)
	}
}

func TestBasisEulerRoundTrip(t *testing.T) {
	e := V3(0.3, 0.5, 0.2)
	if got := BasisFromEuler(e).GetEuler(); !nearV(got, e) {
		t.Fatalf("euler round trip: got %v", got)
	}
	pureX := V3(0.7, 0, 0)
	if got := BasisFromEuler(pureX).GetEuler(); !nearV(got, pureX) {
		t.Fatalf("pure x euler: got %v", got)
	}
}

func TestBasisQuaternionRoundTrip(t *testing.T) {
	q := QuaternionFromAxisAngle(V3(1, 1, 0).Normalized(), 0.9)
	got := BasisFromQuaternion(q).GetQuaternion()
	if !got.IsEqualApprox(q) && !got.IsEqualApprox(q.Neg()) {
		t.Fatalf("quaternion round trip: got %v want %v", got, q)
	}
	v := V3(0.2, -1, 3)
	if a, b := q.Xform(v), BasisFromQuaternion(q).Xform(v); !nearV(a, b) {
		t.Fatalf("quaternion and basis disagree: %v %v", a, b)
	}
}

func TestBasisScale(t *testing.T) {
	b := BasisFromEuler(V3(0.1, 0.2, 0.3)).ScaledLocal(V3(2, 3, 4))
	if got := b.GetScale(); !nearV(got, V3(2, 3, 4)) {
		t.Fatalf("scale: got %v", got)
	}
	ortho := b.Orthonormalized()
	if !ortho.IsRotation() {
		t.Fatalf("orthonormalized basis is not a rotation: %v", ortho)
	}
	if !b.IsOrthogonal() {
		t.Fatalf("scaled rotation should stay orthogonal")
	}
}

func TestBasisColumnsAndTranspose(t *testing.T) {
	b := NewBasis(1, 2, 3, 4, 5, 6, 7, 8, 9)
	if got := b.GetColumn(1); got != V3(2, 5, 8) {
		t.Fatalf("column: got %v", got)
	}
	tr := b.Transposed()
	if tr.Rows[0] != V3(1, 4, 7) {
		t.Fatalf("transpose: got %v", tr)
	}
	if b.Determinant() != 0 {
		t.Fatalf("determinant: got %v", b.Determinant())
	}
	if got := b.GetMainDiagonal(); got != V3(1, 5, 9) {
		t.Fatalf("diagonal: got %v", got)
	}
}

func TestBasisDiagonalize(t *testing.T) {
	b := NewBasis(2, 1, 0, 1, 2, 0, 0, 0, 3)
	rot := b.Diagonalize()
	if !b.IsDiagonal() {
		t.Fatalf("not diagonal: %v", b)
	}
	d := b.GetMainDiagonal()
	if !near(d.X+d.Y+d.Z, 7) {
		t.Fatalf("trace changed: %v", d)
	}
	if !rot.IsRotation() {
		t.Fatalf("accumulated rotation is not a rotation: %v", rot)
	}
}

func TestBasisLookingAt(t *testing.T) {
	b := BasisLookingAt(V3(0, 0, -5), V3(0, 1, 0))
	if !nearB(b, BasisIdentity()) {
		t.Fatalf("looking down -z should be identity: %v", b)
	}
	if got := BasisLookingAt(Vector3{}, V3(0, 1, 0)); got != BasisIdentity() {
		t.Fatalf("degenerate target: got %v", got)
	}
}

func TestPlaneIntersections(t *testing.T) {
	p := NewPlane(0, 1, 0, 1)
	if got, ok := p.IntersectsRay(V3(0, 5, 0), V3(0, -1, 0)); !ok || !nearV(got, V3(0, 1, 0)) {
		t.Fatalf("ray: got %v %v", got, ok)
	}
	if _, ok := p.IntersectsRay(V3(0, 5, 0), V3(0, 1, 0)); ok {
		t.Fatalf("ray pointing away should miss")
	}
	if got, ok := p.IntersectsSegment(V3(0, 5, 0), V3(0, -5, 0)); !ok || !nearV(got, V3(0, 1, 0)) {
		t.Fatalf("segment: got %v %v", got, ok)
	}
	if _, ok := p.IntersectsSegment(V3(0, 5, 0), V3(0, 3, 0)); ok {
		t.Fatalf("short segment should miss")
	}
	got, ok := NewPlane(1, 0, 0, 1).Intersect3(NewPlane(0, 1, 0, 2), NewPlane(0, 0, 1, 3))
	if !ok || !nearV(got, V3(1, 2, 3)) {
		t.Fatalf("intersect3: got %v %v", got, ok)
	}
}

func TestPlaneQueries(t *testing.T) {
	p := PlaneFromPoint(V3(0, 0, 2), V3(0, 0, 3)).Normalized()
	if !near(p.D, 3) || p.Normal != V3(0, 0, 1) {
		t.Fatalf("normalized: got %v", p)
	}
	if !p.IsPointOver(V3(0, 0, 4)) || p.IsPointOver(V3(0, 0, 1)) {
		t.Fatalf("IsPointOver wrong")
	}
	if got := p.Project(V3(1, 1, 7)); !nearV(got, V3(1, 1, 3)) {
		t.Fatalf("project: got %v", got)
	}
	if !p.HasPoint(V3(5, 5, 3), 1e-3) {
		t.Fatalf("HasPoint wrong")
	}
	if !p.IsEqualApproxAnySide(p.Neg()) || p.IsEqualApprox(p.Neg()) {
		t.Fatalf("any side comparison wrong")
	}
	if n := p.GetAnyPerpendicularNormal(); !near(n.Dot(p.Normal), 0) || !n.IsNormalized() {
		t.Fatalf("perpendicular: got %v", n)
	}
}

func TestTransformInverse(t *testing.T) {
	tr := Transform3D{Basis: BasisFromEuler(V3(0.2, 0.4, 0.6)), Origin: V3(1, 2, 3)}
	v := V3(-2, 0.5, 4)
	if got := tr.Inverse().Xform(tr.Xform(v)); !nearV(got, v) {
		t.Fatalf("inverse: got %v", got)
	}
	if got := tr.XformInv(tr.Xform(v)); !nearV(got, v) {
		t.Fatalf("xform inv: got %v", got)
	}
	scaled := tr.Scaled(V3(2, 2, 2))
	if got := scaled.AffineInverse().Xform(scaled.Xform(v)); !nearV(got, v) {
		t.Fatalf("affine inverse: got %v", got)
	}
	if got := tr.Mul(tr.Inverse()); !got.IsEqualApprox(TransformIdentity()) {
		t.Fatalf("t*inverse: got %v", got)
	}
}

func TestBasisRotationAndScaleParts(t *testing.T) {
	rot := BasisFromAxisAngle(V3(0, 1, 0), 0.5)
	b := rot.ScaledLocal(V3(2, 3, 4))

	axis, angle := b.GetRotationAxisAngle()
	if !nearV(axis, V3(0, 1, 0)) || !near(angle, 0.5) {
		t.Fatalf("rotation axis angle: got %v %v", axis, angle)
	}
	axis, angle = rot.GetRotationAxisAngleLocal()
	if got := BasisFromAxisAngle(axis, angle); !nearB(got, rot) {
		t.Fatalf("local axis angle does not rebuild the rotation: %v %v", axis, angle)
	}

	e := V3(0.3, 0.5, 0.2)
	if got := BasisFromEuler(e).ScaledLocal(V3(5, 5, 5)).GetEulerNormalized(); !nearV(got, e) {
		t.Fatalf("normalized euler: got %v", got)
	}

	if got := BasisFromScale(V3(2, 3, 4)).GetScaleLocal(); !nearV(got, V3(2, 3, 4)) {
		t.Fatalf("local scale: got %v", got)
	}
	if got := BasisFromScale(V3(-2, 3, 4)).GetScaleLocal(); !nearV(got, V3(-2, -3, -4)) {
		t.Fatalf("local scale with reflection: got %v", got)
	}
}

func TestBasisEulerScaleAndOrthogonalScale(t *testing.T) {
	var b Basis
	e, s := V3(0.2, -0.4, 0.1), V3(2, 3, 4)
	b.SetEulerScale(e, s)
	if got := b.GetScale(); !nearV(got, s) {
		t.Fatalf("euler scale: scale got %v", got)
	}
	if got := b.GetEulerNormalized(); !nearV(got, e) {
		t.Fatalf("euler scale: euler got %v", got)
	}

	if got := BasisIdentity().ScaledOrthogonal(s); !nearB(got, BasisFromScale(s)) {
		t.Fatalf("orthogonal scale of identity: got %v", got)
	}
	half := BasisIdentity()
	half.ScaleOrthogonal(V3(0.5, 0.5, 0.5))
	if !nearB(half, BasisFromScale(V3(0.5, 0.5, 0.5))) {
		t.Fatalf("orthogonal shrink: got %v", half)
	}
}
