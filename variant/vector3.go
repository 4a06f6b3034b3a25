package variant

import "fmt"

// Axis indexes the components of a Vector3.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vector3 is a 3D vector.
type Vector3 struct {
	X, Y, Z Real
}

func V3(x, y, z Real) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (v Vector3) Add(o Vector3) Vector3  { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3  { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(s Real) Vector3     { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) MulV(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3) Div(s Real) Vector3     { return Vector3{v.X / s, v.Y / s, v.Z / s} }
func (v Vector3) Neg() Vector3           { return Vector3{-v.X, -v.Y, -v.Z} }
func (v Vector3) Abs() Vector3           { return Vector3{absf(v.X), absf(v.Y), absf(v.Z)} }

func (v Vector3) Dot(o Vector3) Real { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) LengthSquared() Real { return v.Dot(v) }
func (v Vector3) Length() Real        { return sqrtf(v.Dot(v)) }

func (v Vector3) DistanceTo(o Vector3) Real { return o.Sub(v).Length() }

// Normalized returns v scaled to unit length, or the zero vector.
func (v Vector3) Normalized() Vector3 {
	v.Normalize()
	return v
}

func (v Vector3) IsNormalized() bool {
	return IsEqualApprox(v.LengthSquared(), 1)
}

func (v *Vector3) Normalize() {
	l := v.LengthSquared()
	if l == 0 {
		*v = Vector3{}
		return
	}
	*v = v.Div(sqrtf(l))
}

func (v *Vector3) Zero() { *v = Vector3{} }

func (v Vector3) Lerp(to Vector3, w Real) Vector3 {
	return Vector3{Lerp(v.X, to.X, w), Lerp(v.Y, to.Y, w), Lerp(v.Z, to.Z, w)}
}

func (v Vector3) IsEqualApprox(o Vector3) bool {
	return IsEqualApprox(v.X, o.X) && IsEqualApprox(v.Y, o.Y) && IsEqualApprox(v.Z, o.Z)
}

func (v Vector3) IsZeroApprox() bool {
	return IsZeroApprox(v.X) && IsZeroApprox(v.Y) && IsZeroApprox(v.Z)
}

// At returns the component for axis. It panics on an out of range axis.
func (v Vector3) At(axis Axis) Real {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic(fmt.Sprintf("variant: Vector3 axis %d out of range", axis))
}

func (v *Vector3) SetAxis(axis Axis, value Real) {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	default:
		panic(fmt.Sprintf("variant: Vector3 axis %d out of range", axis))
	}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Field accessors used by the property wrappers.

func (v Vector3) GetX() Real { return v.X }
func (v Vector3) GetY() Real { return v.Y }
func (v Vector3) GetZ() Real { return v.Z }

func (v *Vector3) SetX(x Real) { v.X = x }
func (v *Vector3) SetY(y Real) { v.Y = y }
func (v *Vector3) SetZ(z Real) { v.Z = z }
