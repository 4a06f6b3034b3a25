package scene

import (
	"github.com/google/uuid"

	"quarkprop/property"
	"quarkprop/variant"
)

// Handle types returned by Node.
type (
	TransformHandle = variant.TransformProperty[property.Property[Node, variant.Transform3D]]
	BasisHandle     = variant.BasisProperty[property.Property[Node, variant.Basis]]
	OriginHandle    = variant.Vector3Property[property.Property[Node, variant.Vector3]]
	PlaneHandle     = variant.PlaneProperty[property.Property[Node, variant.Plane]]
)

// Node is a named object placed in a scene. State is reached through paired
// accessors; the handle methods bind those accessors to the node.
type Node struct {
	id        uuid.UUID
	name      string
	transform variant.Transform3D
	clip      variant.Plane
	layers    uint32
	visible   bool
}

func newNode(name string) Node {
	return Node{
		id:        uuid.New(),
		name:      name,
		transform: variant.TransformIdentity(),
		layers:    1,
		visible:   true,
	}
}

func (n *Node) ID() uuid.UUID { return n.id }

func (n *Node) GetName() string { return n.name }

func (n *Node) GetTransform() variant.Transform3D  { return n.transform }
func (n *Node) SetTransform(t variant.Transform3D) { n.transform = t }
func (n *Node) GetBasis() variant.Basis            { return n.transform.Basis }
func (n *Node) SetBasis(b variant.Basis)           { n.transform.Basis = b }
func (n *Node) GetOrigin() variant.Vector3         { return n.transform.Origin }
func (n *Node) SetOrigin(o variant.Vector3)        { n.transform.Origin = o }
func (n *Node) GetClipPlane() variant.Plane        { return n.clip }
func (n *Node) SetClipPlane(p variant.Plane)       { n.clip = p }
func (n *Node) GetLayers() uint32                  { return n.layers }
func (n *Node) SetLayers(l uint32)                 { n.layers = l }
func (n *Node) IsVisible() bool                    { return n.visible }
func (n *Node) SetVisible(v bool)                  { n.visible = v }

// LookAt turns the node so its -Z axis points at target, keeping the origin.
func (n *Node) LookAt(target variant.Vector3) {
	n.transform = n.transform.LookingAt(target, variant.V3(0, 1, 0))
}

// Name is read-only: nodes are renamed only by re-adding them.
func (n *Node) Name() property.ReadOnly[Node, string] {
	return property.NewReadOnly(n, (*Node).GetName)
}

func (n *Node) Transform() TransformHandle {
	return variant.TransformPropertyOf(property.New(n, (*Node).GetTransform, (*Node).SetTransform))
}

func (n *Node) Basis() BasisHandle {
	return variant.BasisPropertyOf(property.New(n, (*Node).GetBasis, (*Node).SetBasis))
}

func (n *Node) Origin() OriginHandle {
	return variant.Vector3PropertyOf(property.New(n, (*Node).GetOrigin, (*Node).SetOrigin))
}

func (n *Node) ClipPlane() PlaneHandle {
	return variant.PlanePropertyOf(property.New(n, (*Node).GetClipPlane, (*Node).SetClipPlane))
}

// Layers is the render layer bitmask.
func (n *Node) Layers() property.Property[Node, uint32] {
	return property.New(n, (*Node).GetLayers, (*Node).SetLayers)
}

func (n *Node) Visible() property.Property[Node, bool] {
	return property.New(n, (*Node).IsVisible, (*Node).SetVisible)
}

// LookTarget is write-only: storing a point orients the node towards it.
func (n *Node) LookTarget() property.WriteOnly[Node, variant.Vector3] {
	return property.NewWriteOnly(n, (*Node).LookAt)
}
