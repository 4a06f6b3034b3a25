package scene

import (
	"quarkprop/property"
	"quarkprop/variant"
)

const (
	minFOV = variant.Real(0.01)
	maxFOV = variant.Pi - minFOV
)

// CameraVector is the handle type for the camera's vector properties.
type CameraVector = variant.Vector3Property[property.Property[Camera, variant.Vector3]]

// Camera describes the viewing transform.
type Camera struct {
	position variant.Vector3
	target   variant.Vector3
	up       variant.Vector3

	// Vertical field of view in radians.
	fov  variant.Real
	near variant.Real
	far  variant.Real
}

func defaultCamera() Camera {
	return Camera{
		position: variant.V3(0, 0, 3),
		up:       variant.V3(0, 1, 0),
		fov:      1.0,
		near:     0.05,
		far:      100,
	}
}

func (c *Camera) GetPosition() variant.Vector3  { return c.position }
func (c *Camera) SetPosition(v variant.Vector3) { c.position = v }
func (c *Camera) GetTarget() variant.Vector3    { return c.target }
func (c *Camera) SetTarget(v variant.Vector3)   { c.target = v }
func (c *Camera) GetUp() variant.Vector3        { return c.up }
func (c *Camera) SetUp(v variant.Vector3)       { c.up = v }
func (c *Camera) GetFOV() variant.Real          { return c.fov }
func (c *Camera) GetNear() variant.Real         { return c.near }
func (c *Camera) SetNear(v variant.Real)        { c.near = v }
func (c *Camera) GetFar() variant.Real          { return c.far }
func (c *Camera) SetFar(v variant.Real)         { c.far = v }

// SetFOV stores the field of view clamped to (0, Pi) and returns the stored
// value.
func (c *Camera) SetFOV(v variant.Real) variant.Real {
	c.fov = variant.Clamp(v, minFOV, maxFOV)
	return c.fov
}

// GetViewBasis returns the camera orientation: -Z looks from the position to
// the target.
func (c *Camera) GetViewBasis() variant.Basis {
	up := c.up
	if up == (variant.Vector3{}) {
		up = variant.V3(0, 1, 0)
	}
	return variant.BasisLookingAt(c.target.Sub(c.position), up)
}

func (c *Camera) Position() CameraVector {
	return variant.Vector3PropertyOf(property.New(c, (*Camera).GetPosition, (*Camera).SetPosition))
}

func (c *Camera) Target() CameraVector {
	return variant.Vector3PropertyOf(property.New(c, (*Camera).GetTarget, (*Camera).SetTarget))
}

func (c *Camera) Up() CameraVector {
	return variant.Vector3PropertyOf(property.New(c, (*Camera).GetUp, (*Camera).SetUp))
}

// FOV's Assign returns the clamped value that was stored.
func (c *Camera) FOV() property.Result[Camera, variant.Real, variant.Real] {
	return property.NewResult(c, (*Camera).GetFOV, (*Camera).SetFOV)
}

func (c *Camera) Near() property.Property[Camera, variant.Real] {
	return property.New(c, (*Camera).GetNear, (*Camera).SetNear)
}

func (c *Camera) Far() property.Property[Camera, variant.Real] {
	return property.New(c, (*Camera).GetFar, (*Camera).SetFar)
}

// ViewBasis is derived from position, target and up and cannot be set.
func (c *Camera) ViewBasis() variant.BasisView[property.ReadOnly[Camera, variant.Basis]] {
	return variant.BasisViewOf(property.NewReadOnly(c, (*Camera).GetViewBasis))
}
