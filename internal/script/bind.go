package script

import (
	"fmt"
	"strings"

	"quarkprop/property"
	"quarkprop/scene"
	"quarkprop/variant"
)

// Bind resolves a dotted path on a node to a typed handle.
//
// Recognised roots are transform, origin, basis, clip, layers, visible and
// look_target. Composite roots accept nested components, for example
// origin.y, basis.x.z, basis.quaternion.w, basis.column1.x, clip.normal.x,
// clip.d and transform.origin.z.
func Bind(n *scene.Node, path string) (Target, error) {
	if n == nil {
		return nil, ErrUnknownNode
	}
	root, rest := split(path)
	var (
		t  Target
		ok bool
	)
	switch root {
	case "transform":
		t, ok = transformPath(path, rest, n.Transform())
	case "origin":
		t, ok = vectorPath(path, rest, n.Origin())
	case "basis":
		t, ok = basisPath(path, rest, n.Basis())
	case "clip":
		t, ok = planePath(path, rest, n.ClipPlane())
	case "layers":
		t, ok = bitsTarget[property.Property[scene.Node, uint32]]{path, n.Layers()}, len(rest) == 0
	case "visible":
		t, ok = boolTarget[property.Property[scene.Node, bool]]{path, n.Visible()}, len(rest) == 0
	case "look_target":
		t, ok = sinkTarget[property.WriteOnly[scene.Node, variant.Vector3]]{path, n.LookTarget()}, len(rest) == 0
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return t, nil
}

// BindCamera resolves a dotted path on a camera: position, target and up with
// optional components, fov, near and far.
func BindCamera(c *scene.Camera, path string) (Target, error) {
	root, rest := split(path)
	var (
		t  Target
		ok bool
	)
	switch root {
	case "position":
		t, ok = vectorPath(path, rest, c.Position())
	case "target":
		t, ok = vectorPath(path, rest, c.Target())
	case "up":
		t, ok = vectorPath(path, rest, c.Up())
	case "fov":
		t, ok = realTarget[property.Result[scene.Camera, variant.Real, variant.Real]]{path, c.FOV()}, len(rest) == 0
	case "near":
		t, ok = realTarget[property.Property[scene.Camera, variant.Real]]{path, c.Near()}, len(rest) == 0
	case "far":
		t, ok = realTarget[property.Property[scene.Camera, variant.Real]]{path, c.Far()}, len(rest) == 0
	}
	if !ok {
		return nil, fmt.Errorf("%w: camera.%s", ErrUnknownPath, path)
	}
	return t, nil
}

// Resolve binds a step target within a scene. Paths beginning with "camera."
// address the scene camera and ignore the node name.
func Resolve(sc *scene.Scene, node, path string) (Target, error) {
	if rest, ok := strings.CutPrefix(path, "camera."); ok {
		return BindCamera(&sc.Camera, rest)
	}
	n := sc.Find(node)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, node)
	}
	return Bind(n, path)
}

func split(path string) (string, []string) {
	parts := strings.Split(path, ".")
	return parts[0], parts[1:]
}

func component[P property.ReadWritable[variant.Vector3]](v variant.Vector3Property[P], name string) (property.Field[P, variant.Vector3, variant.Real], bool) {
	switch name {
	case "x":
		return v.X(), true
	case "y":
		return v.Y(), true
	case "z":
		return v.Z(), true
	}
	return property.Field[P, variant.Vector3, variant.Real]{}, false
}

func vectorPath[P property.ReadWritable[variant.Vector3]](path string, rest []string, v variant.Vector3Property[P]) (Target, bool) {
	switch len(rest) {
	case 0:
		return vectorTarget[P]{path, v}, true
	case 1:
		f, ok := component(v, rest[0])
		if !ok {
			return nil, false
		}
		return realTarget[property.Field[P, variant.Vector3, variant.Real]]{path, f}, true
	}
	return nil, false
}

func quaternionPath[P property.ReadWritable[variant.Quaternion]](path string, rest []string, q variant.QuaternionProperty[P]) (Target, bool) {
	if len(rest) == 0 {
		return quaternionTarget[P]{path, q}, true
	}
	if len(rest) > 1 {
		return nil, false
	}
	var f property.Field[P, variant.Quaternion, variant.Real]
	switch rest[0] {
	case "x":
		f = q.X()
	case "y":
		f = q.Y()
	case "z":
		f = q.Z()
	case "w":
		f = q.W()
	default:
		return nil, false
	}
	return realTarget[property.Field[P, variant.Quaternion, variant.Real]]{path, f}, true
}

func basisPath[P property.ReadWritable[variant.Basis]](path string, rest []string, b variant.BasisProperty[P]) (Target, bool) {
	if len(rest) == 0 {
		return basisTarget[P]{path, b}, true
	}
	switch rest[0] {
	case "x":
		return vectorPath(path, rest[1:], b.X())
	case "y":
		return vectorPath(path, rest[1:], b.Y())
	case "z":
		return vectorPath(path, rest[1:], b.Z())
	case "column0":
		return vectorPath(path, rest[1:], b.Column(0))
	case "column1":
		return vectorPath(path, rest[1:], b.Column(1))
	case "column2":
		return vectorPath(path, rest[1:], b.Column(2))
	case "quaternion":
		return quaternionPath(path, rest[1:], b.Quaternion())
	}
	return nil, false
}

func planePath[P property.ReadWritable[variant.Plane]](path string, rest []string, p variant.PlaneProperty[P]) (Target, bool) {
	if len(rest) == 0 {
		return planeTarget[P]{path, p}, true
	}
	switch rest[0] {
	case "normal":
		return vectorPath(path, rest[1:], p.Normal())
	case "d":
		if len(rest) == 1 {
			return realTarget[property.Field[P, variant.Plane, variant.Real]]{path, p.D()}, true
		}
	}
	return nil, false
}

func transformPath[P property.ReadWritable[variant.Transform3D]](path string, rest []string, t variant.TransformProperty[P]) (Target, bool) {
	if len(rest) == 0 {
		return transformTarget[P]{path, t}, true
	}
	switch rest[0] {
	case "basis":
		return basisPath(path, rest[1:], t.Basis())
	case "origin":
		return vectorPath(path, rest[1:], t.Origin())
	}
	return nil, false
}
