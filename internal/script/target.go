package script

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"quarkprop/property"
	"quarkprop/variant"
)

// Target is a property resolved from a dotted path.
type Target interface {
	Path() string
	// Get returns the current value, or nil for write-only targets.
	Get() any
	Apply(op string, arg *yaml.Node) error
	Call(method string, args []variant.Real) error
}

type opSet map[string]bool

func ops(names ...string) opSet {
	s := make(opSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

var (
	realOps   = ops(OpSet, OpAdd, OpSub, OpMul, OpDiv, OpInc, OpDec)
	bitsOps   = ops(OpSet, OpAdd, OpSub, OpInc, OpDec, OpOr, OpAnd, OpXor, OpAndNot, OpShl, OpShr)
	boolOps   = ops(OpSet, OpNot)
	vectorOps = ops(OpSet, OpAdd, OpSub, OpMul, OpDiv)
	valueOps  = ops(OpSet)
)

func check(allowed opSet, kind, path, op string) error {
	if !allowed[op] {
		return fmt.Errorf("%w: %s on %s %s", ErrUnsupportedOp, op, kind, path)
	}
	return nil
}

type method struct {
	arity int
	fn    func(a []variant.Real)
}

func invoke(kind, path, name string, args []variant.Real, table map[string]method) error {
	m, ok := table[name]
	if !ok {
		return fmt.Errorf("%w: %s %s has no method %q", ErrUnsupportedOp, kind, path, name)
	}
	if len(args) != m.arity {
		return fmt.Errorf("%w: %s takes %d args, got %d", ErrBadValue, name, m.arity, len(args))
	}
	m.fn(args)
	return nil
}

func present(n *yaml.Node) bool { return n != nil && n.Kind != 0 }

func decode[T any](n *yaml.Node) (T, error) {
	var v T
	if !present(n) {
		return v, fmt.Errorf("%w: missing value", ErrBadValue)
	}
	if err := n.Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	return v, nil
}

func decodeReals(n *yaml.Node, count int) ([]variant.Real, error) {
	r, err := decode[[]variant.Real](n)
	if err != nil {
		return nil, err
	}
	if len(r) != count {
		return nil, fmt.Errorf("%w: want %d numbers, got %d", ErrBadValue, count, len(r))
	}
	return r, nil
}

func decodeVector(n *yaml.Node) (variant.Vector3, error) {
	r, err := decodeReals(n, 3)
	if err != nil {
		return variant.Vector3{}, err
	}
	return vec(r), nil
}

func vec(r []variant.Real) variant.Vector3 { return variant.V3(r[0], r[1], r[2]) }

// Scalars.

type realTarget[P property.ReadWritable[variant.Real]] struct {
	path string
	h    P
}

func (t realTarget[P]) Path() string { return t.path }
func (t realTarget[P]) Get() any     { return t.h.Get() }

func (t realTarget[P]) Apply(op string, arg *yaml.Node) error {
	if err := check(realOps, "real", t.path, op); err != nil {
		return err
	}
	switch op {
	case OpInc:
		property.Inc(t.h)
		return nil
	case OpDec:
		property.Dec(t.h)
		return nil
	}
	v, err := decode[variant.Real](arg)
	if err != nil {
		return err
	}
	switch op {
	case OpSet:
		t.h.Set(v)
	case OpAdd:
		property.AddAssign(t.h, v)
	case OpSub:
		property.SubAssign(t.h, v)
	case OpMul:
		property.MulAssign(t.h, v)
	case OpDiv:
		property.QuoAssign(t.h, v)
	}
	return nil
}

func (t realTarget[P]) Call(name string, args []variant.Real) error {
	return invoke("real", t.path, name, args, nil)
}

type bitsTarget[P property.ReadWritable[uint32]] struct {
	path string
	h    P
}

func (t bitsTarget[P]) Path() string { return t.path }
func (t bitsTarget[P]) Get() any     { return t.h.Get() }

func (t bitsTarget[P]) Apply(op string, arg *yaml.Node) error {
	if err := check(bitsOps, "bits", t.path, op); err != nil {
		return err
	}
	switch op {
	case OpInc:
		property.Inc(t.h)
		return nil
	case OpDec:
		property.Dec(t.h)
		return nil
	}
	v, err := decode[uint32](arg)
	if err != nil {
		return err
	}
	switch op {
	case OpSet:
		t.h.Set(v)
	case OpAdd:
		property.AddAssign(t.h, v)
	case OpSub:
		property.SubAssign(t.h, v)
	case OpOr:
		property.OrAssign(t.h, v)
	case OpAnd:
		property.AndAssign(t.h, v)
	case OpXor:
		property.XorAssign(t.h, v)
	case OpAndNot:
		property.AndNotAssign(t.h, v)
	case OpShl:
		property.ShlAssign(t.h, v)
	case OpShr:
		property.ShrAssign(t.h, v)
	}
	return nil
}

func (t bitsTarget[P]) Call(name string, args []variant.Real) error {
	return invoke("bits", t.path, name, args, nil)
}

type boolTarget[P property.ReadWritable[bool]] struct {
	path string
	h    P
}

func (t boolTarget[P]) Path() string { return t.path }
func (t boolTarget[P]) Get() any     { return t.h.Get() }

func (t boolTarget[P]) Apply(op string, arg *yaml.Node) error {
	if err := check(boolOps, "bool", t.path, op); err != nil {
		return err
	}
	if op == OpNot {
		t.h.Set(property.Not(t.h))
		return nil
	}
	v, err := decode[bool](arg)
	if err != nil {
		return err
	}
	t.h.Set(v)
	return nil
}

func (t boolTarget[P]) Call(name string, args []variant.Real) error {
	return invoke("bool", t.path, name, args, nil)
}

// Composites.

type vectorTarget[P property.ReadWritable[variant.Vector3]] struct {
	path string
	h    variant.Vector3Property[P]
}

func (t vectorTarget[P]) Path() string { return t.path }
func (t vectorTarget[P]) Get() any     { return t.h.Get() }

func (t vectorTarget[P]) Apply(op string, arg *yaml.Node) error {
	if err := check(vectorOps, "vector3", t.path, op); err != nil {
		return err
	}
	if (op == OpMul || op == OpDiv) && present(arg) && arg.Kind == yaml.ScalarNode {
		s, err := decode[variant.Real](arg)
		if err != nil {
			return err
		}
		if op == OpMul {
			property.Update(t.h, func(v *variant.Vector3) { *v = v.Mul(s) })
		} else {
			property.Update(t.h, func(v *variant.Vector3) { *v = v.Div(s) })
		}
		return nil
	}
	o, err := decodeVector(arg)
	if err != nil {
		return err
	}
	switch op {
	case OpSet:
		t.h.Set(o)
	case OpAdd:
		property.Update(t.h, func(v *variant.Vector3) { *v = v.Add(o) })
	case OpSub:
		property.Update(t.h, func(v *variant.Vector3) { *v = v.Sub(o) })
	case OpMul:
		property.Update(t.h, func(v *variant.Vector3) { *v = v.MulV(o) })
	case OpDiv:
		property.Update(t.h, func(v *variant.Vector3) { *v = variant.V3(v.X/o.X, v.Y/o.Y, v.Z/o.Z) })
	}
	return nil
}

func (t vectorTarget[P]) Call(name string, args []variant.Real) error {
	return invoke("vector3", t.path, name, args, map[string]method{
		"normalize": {0, func([]variant.Real) { t.h.Normalize() }},
		"zero":      {0, func([]variant.Real) { t.h.Zero() }},
	})
}

// sinkTarget accepts assignment only.
type sinkTarget[P property.Writable[variant.Vector3]] struct {
	path string
	h    P
}

func (t sinkTarget[P]) Path() string { return t.path }
func (t sinkTarget[P]) Get() any     { return nil }

func (t sinkTarget[P]) Apply(op string, arg *yaml.Node) error {
	if err := check(valueOps, "write-only vector3", t.path, op); err != nil {
		return err
	}
	v, err := decodeVector(arg)
	if err != nil {
		return err
	}
	t.h.Set(v)
	return nil
}

func (t sinkTarget[P]) Call(name string, args []variant.Real) error {
	return invoke("write-only vector3", t.path, name, args, nil)
}

type quaternionTarget[P property.ReadWritable[variant.Quaternion]] struct {
	path string
	h    variant.QuaternionProperty[P]
}

func (t quaternionTarget[P]) Path() string { return t.path }
func (t quaternionTarget[P]) Get() any     { return t.h.Get() }

func (t quaternionTarget[P]) Apply(op string, arg *yaml.Node) error {
	if err := check(valueOps, "quaternion", t.path, op); err != nil {
		return err
	}
	r, err := decodeReals(arg, 4)
	if err != nil {
		return err
	}
	t.h.Set(variant.Quaternion{X: r[0], Y: r[1], Z: r[2], W: r[3]})
	return nil
}

func (t quaternionTarget[P]) Call(name string, args []variant.Real) error {
	return invoke("quaternion", t.path, name, args, map[string]method{
		"normalize": {0, func([]variant.Real) { t.h.Normalize() }},
	})
}

type basisTarget[P property.ReadWritable[variant.Basis]] struct {
	path string
	h    variant.BasisProperty[P]
}

func (t basisTarget[P]) Path() string { return t.path }
func (t basisTarget[P]) Get() any     { return t.h.Get() }

// Apply with set takes nine numbers in row order.
func (t basisTarget[P]) Apply(op string, arg *yaml.Node) error {
	if err := check(valueOps, "basis", t.path, op); err != nil {
		return err
	}
	r, err := decodeReals(arg, 9)
	if err != nil {
		return err
	}
	t.h.Set(variant.NewBasis(r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7], r[8]))
	return nil
}

func (t basisTarget[P]) Call(name string, args []variant.Real) error {
	return invoke("basis", t.path, name, args, map[string]method{
		"rotate":         {4, func(a []variant.Real) { t.h.Rotate(vec(a), a[3]) }},
		"rotate_local":   {4, func(a []variant.Real) { t.h.RotateLocal(vec(a), a[3]) }},
		"scale":          {3, func(a []variant.Real) { t.h.Scale(vec(a)) }},
		"scale_local":    {3, func(a []variant.Real) { t.h.ScaleLocal(vec(a)) }},
		"scale_ortho":    {3, func(a []variant.Real) { t.h.ScaleOrthogonal(vec(a)) }},
		"euler":          {3, func(a []variant.Real) { t.h.SetEuler(vec(a)) }},
		"euler_scale":    {6, func(a []variant.Real) { t.h.SetEulerScale(vec(a), vec(a[3:])) }},
		"identity":       {0, func([]variant.Real) { t.h.Set(variant.BasisIdentity()) }},
		"invert":         {0, func([]variant.Real) { t.h.Invert() }},
		"transpose":      {0, func([]variant.Real) { t.h.Transpose() }},
		"orthonormalize": {0, func([]variant.Real) { t.h.Orthonormalize() }},
	})
}

type planeTarget[P property.ReadWritable[variant.Plane]] struct {
	path string
	h    variant.PlaneProperty[P]
}

func (t planeTarget[P]) Path() string { return t.path }
func (t planeTarget[P]) Get() any     { return t.h.Get() }

// Apply with set takes the normal followed by d.
func (t planeTarget[P]) Apply(op string, arg *yaml.Node) error {
	if err := check(valueOps, "plane", t.path, op); err != nil {
		return err
	}
	r, err := decodeReals(arg, 4)
	if err != nil {
		return err
	}
	t.h.Set(variant.NewPlane(r[0], r[1], r[2], r[3]))
	return nil
}

func (t planeTarget[P]) Call(name string, args []variant.Real) error {
	return invoke("plane", t.path, name, args, map[string]method{
		"normalize": {0, func([]variant.Real) { t.h.Normalize() }},
	})
}

type transformTarget[P property.ReadWritable[variant.Transform3D]] struct {
	path string
	h    variant.TransformProperty[P]
}

func (t transformTarget[P]) Path() string { return t.path }
func (t transformTarget[P]) Get() any     { return t.h.Get() }

// Apply with set takes nine basis numbers in row order and then the origin.
func (t transformTarget[P]) Apply(op string, arg *yaml.Node) error {
	if err := check(valueOps, "transform", t.path, op); err != nil {
		return err
	}
	r, err := decodeReals(arg, 12)
	if err != nil {
		return err
	}
	t.h.Set(variant.Transform3D{
		Basis:  variant.NewBasis(r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7], r[8]),
		Origin: vec(r[9:]),
	})
	return nil
}

func (t transformTarget[P]) Call(name string, args []variant.Real) error {
	return invoke("transform", t.path, name, args, map[string]method{
		"translate":      {3, func(a []variant.Real) { t.h.Translate(vec(a)) }},
		"rotate":         {4, func(a []variant.Real) { t.h.Rotate(vec(a), a[3]) }},
		"scale":          {3, func(a []variant.Real) { t.h.Scale(vec(a)) }},
		"identity":       {0, func([]variant.Real) { t.h.Set(variant.TransformIdentity()) }},
		"invert":         {0, func([]variant.Real) { t.h.Invert() }},
		"affine_invert":  {0, func([]variant.Real) { t.h.AffineInvert() }},
		"orthonormalize": {0, func([]variant.Real) { t.h.Orthonormalize() }},
	})
}
