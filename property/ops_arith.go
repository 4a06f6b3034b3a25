package property

import "golang.org/x/exp/constraints"

// Number is the set of types with the arithmetic operators.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Addable is the set of types with the + operator.
type Addable interface {
	Number | ~string
}

// Non-mutating arithmetic. Each reads once and never writes back.

func Add[P Readable[T], T Addable](p P, o T) T { return p.Get() + o }
func Sub[P Readable[T], T Number](p P, o T) T  { return p.Get() - o }
func Mul[P Readable[T], T Number](p P, o T) T  { return p.Get() * o }
func Quo[P Readable[T], T Number](p P, o T) T  { return p.Get() / o }

func Rem[P Readable[T], T constraints.Integer](p P, o T) T { return p.Get() % o }

// Pos is unary plus.
func Pos[P Readable[T], T Number](p P) T { return +p.Get() }

// Neg is unary minus.
func Neg[P Readable[T], T Number](p P) T { return -p.Get() }

// Compound assignment. Each is one read-modify-write unit and returns p so
// calls can be chained.

func AddAssign[P ReadWritable[T], T Addable](p P, o T) P {
	v := p.Get()
	v += o
	p.Set(v)
	return p
}

func SubAssign[P ReadWritable[T], T Number](p P, o T) P {
	v := p.Get()
	v -= o
	p.Set(v)
	return p
}

func MulAssign[P ReadWritable[T], T Number](p P, o T) P {
	v := p.Get()
	v *= o
	p.Set(v)
	return p
}

func QuoAssign[P ReadWritable[T], T Number](p P, o T) P {
	v := p.Get()
	v /= o
	p.Set(v)
	return p
}

func RemAssign[P ReadWritable[T], T constraints.Integer](p P, o T) P {
	v := p.Get()
	v %= o
	p.Set(v)
	return p
}

// Inc is prefix increment: it stores value+1 and returns the handle.
func Inc[P ReadWritable[T], T Number](p P) P {
	v := p.Get()
	v++
	p.Set(v)
	return p
}

// Dec is prefix decrement.
func Dec[P ReadWritable[T], T Number](p P) P {
	v := p.Get()
	v--
	p.Set(v)
	return p
}

// PostInc is postfix increment: it stores value+1 and returns the value read
// before the increment.
func PostInc[P ReadWritable[T], T Number](p P) T {
	old := p.Get()
	v := old
	v++
	p.Set(v)
	return old
}

// PostDec is postfix decrement.
func PostDec[P ReadWritable[T], T Number](p P) T {
	old := p.Get()
	v := old
	v--
	p.Set(v)
	return old
}
