package scene

import "quarkprop/variant"

// OrbitController provides basic orbit/zoom interactions for a camera.
//
// It does not depend on any input system and reaches the camera only through
// its property handles.
type OrbitController struct {
	Target variant.Vector3
	Yaw    variant.Real
	Pitch  variant.Real
	Radius variant.Real

	MinRadius variant.Real
	MaxRadius variant.Real
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = 3
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}

	// Yaw around Y, then pitch around X.
	rot := variant.BasisFromEuler(variant.V3(c.Pitch, c.Yaw, 0))
	cam.Position().Set(c.Target.Add(rot.Xform(variant.V3(0, 0, r))))
	cam.Target().Set(c.Target)
	if cam.Up().IsZeroApprox() {
		cam.Up().Set(variant.V3(0, 1, 0))
	}
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch variant.Real) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
}

func (c *OrbitController) Zoom(delta variant.Real) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
