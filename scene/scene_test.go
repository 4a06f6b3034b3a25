package scene

import (
	"testing"

	"quarkprop/property"
	"quarkprop/variant"
)

func near(a, b variant.Real) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestAddNodeFillsSlots(t *testing.T) {
	s := CreateScene(2)
	a, ok := s.AddNode("a")
	if !ok || a == nil {
		t.Fatalf("first add failed")
	}
	if _, ok := s.AddNode("b"); !ok {
		t.Fatalf("second add failed")
	}
	if _, ok := s.AddNode("c"); ok {
		t.Fatalf("add past capacity succeeded")
	}
	if s.Len() != 2 || s.Cap() != 2 {
		t.Fatalf("len/cap: %d/%d", s.Len(), s.Cap())
	}

	s.RemoveNode(0)
	if s.Node(0) != nil || s.Find("a") != nil {
		t.Fatalf("removed node still reachable")
	}
	c, ok := s.AddNode("c")
	if !ok || s.Node(0) != c {
		t.Fatalf("freed slot was not reused")
	}
	if s.FindID(c.ID()) != c {
		t.Fatalf("FindID failed")
	}
	if c.ID() == s.Find("b").ID() {
		t.Fatalf("node ids collide")
	}
}

func TestNilSceneIsSafe(t *testing.T) {
	var s *Scene
	if _, ok := s.AddNode("x"); ok {
		t.Fatalf("nil scene accepted a node")
	}
	if s.Node(0) != nil || s.Len() != 0 || s.Cap() != 0 {
		t.Fatalf("nil scene not empty")
	}
	s.RemoveNode(0)
}

func TestNodeDefaults(t *testing.T) {
	s := CreateScene(1)
	n, _ := s.AddNode("cube")
	if n.Name().Get() != "cube" {
		t.Fatalf("name: %q", n.Name().Get())
	}
	if n.Transform().Get() != variant.TransformIdentity() {
		t.Fatalf("transform not identity")
	}
	if !n.Visible().Get() || n.Layers().Get() != 1 {
		t.Fatalf("visible/layers defaults wrong")
	}
}

func TestNodeHandlesShareState(t *testing.T) {
	s := CreateScene(1)
	n, _ := s.AddNode("cube")

	n.Origin().SetY(2)
	if n.Transform().Origin().GetY() != 2 {
		t.Fatalf("origin handle and transform handle disagree")
	}
	n.Transform().Basis().X().SetX(3)
	if n.Basis().GetX().X != 3 {
		t.Fatalf("basis handle and transform handle disagree")
	}

	property.OrAssign(n.Layers(), 0b100)
	property.AndNotAssign(n.Layers(), 0b1)
	if n.GetLayers() != 0b100 {
		t.Fatalf("layers: %b", n.GetLayers())
	}
	n.Visible().Set(property.Not(n.Visible()))
	if n.IsVisible() {
		t.Fatalf("visible not toggled")
	}

	n.ClipPlane().Set(variant.NewPlane(0, 0, 1, 5))
	if got := n.ClipPlane().DistanceTo(variant.V3(0, 0, 7)); got != 2 {
		t.Fatalf("clip distance: %v", got)
	}
}

func TestNodeLookTarget(t *testing.T) {
	s := CreateScene(1)
	n, _ := s.AddNode("cam")
	n.Origin().Set(variant.V3(0, 0, 5))
	n.LookTarget().Set(variant.V3(0, 0, 0))

	if !n.Basis().IsEqualApprox(variant.BasisIdentity()) {
		t.Fatalf("looking down -z should keep identity: %v", n.GetBasis())
	}
	if n.GetOrigin() != variant.V3(0, 0, 5) {
		t.Fatalf("origin moved: %v", n.GetOrigin())
	}
}

func TestCameraFOVClamped(t *testing.T) {
	s := CreateScene(0)
	fov := s.Camera.FOV()
	if got := fov.Assign(10); got != maxFOV {
		t.Fatalf("fov clamp: %v", got)
	}
	fov.Set(0.5)
	if s.Camera.GetFOV() != 0.5 {
		t.Fatalf("fov: %v", s.Camera.GetFOV())
	}
	property.MulAssign(fov, 0)
	if s.Camera.GetFOV() != minFOV {
		t.Fatalf("fov lower clamp: %v", s.Camera.GetFOV())
	}
}

func TestCameraViewBasis(t *testing.T) {
	s := CreateScene(0)
	v := s.Camera.ViewBasis()
	if !v.IsEqualApprox(variant.BasisIdentity()) {
		t.Fatalf("default view basis: %v", v.Get())
	}
	if property.CanWrite[variant.Basis](v) {
		t.Fatalf("view basis is writable")
	}

	s.Camera.Target().SetX(3)
	s.Camera.Position().Set(variant.V3(3, 0, 3))
	if !v.Z().IsEqualApprox(variant.V3(0, 0, 1)) {
		t.Fatalf("view basis not recomputed: %v", v.Get())
	}
}

func TestOrbitControllerApply(t *testing.T) {
	s := CreateScene(0)
	s.Camera.Up().Zero()

	oc := OrbitController{Target: variant.V3(1, 0, 0), Radius: 2}
	oc.Apply(&s.Camera)
	if got := s.Camera.GetPosition(); !near(got.X, 1) || !near(got.Z, 2) {
		t.Fatalf("position: %v", got)
	}
	if s.Camera.GetUp() != variant.V3(0, 1, 0) {
		t.Fatalf("up not restored: %v", s.Camera.GetUp())
	}

	oc.Rotate(variant.Pi/2, 0)
	oc.Apply(&s.Camera)
	if got := s.Camera.GetPosition(); !near(got.X, 3) || !near(got.Z, 0) {
		t.Fatalf("rotated position: %v", got)
	}
	if got := s.Camera.Position().DistanceTo(s.Camera.GetTarget()); !near(got, 2) {
		t.Fatalf("radius: %v", got)
	}

	oc.MinRadius, oc.MaxRadius = 1, 4
	oc.Zoom(10)
	if oc.Radius != 4 {
		t.Fatalf("zoom clamp: %v", oc.Radius)
	}
	oc.Apply(nil)
}
