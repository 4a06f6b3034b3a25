package property

import "golang.org/x/exp/constraints"

func And[P Readable[T], T constraints.Integer](p P, o T) T    { return p.Get() & o }
func Or[P Readable[T], T constraints.Integer](p P, o T) T     { return p.Get() | o }
func Xor[P Readable[T], T constraints.Integer](p P, o T) T    { return p.Get() ^ o }
func AndNot[P Readable[T], T constraints.Integer](p P, o T) T { return p.Get() &^ o }

// Complement is bitwise not (^x).
func Complement[P Readable[T], T constraints.Integer](p P) T { return ^p.Get() }

// Not is logical not.
func Not[P Readable[T], T ~bool](p P) T { return !p.Get() }

func Shl[P Readable[T], T, S constraints.Integer](p P, n S) T { return p.Get() << n }
func Shr[P Readable[T], T, S constraints.Integer](p P, n S) T { return p.Get() >> n }

func AndAssign[P ReadWritable[T], T constraints.Integer](p P, o T) P {
	v := p.Get()
	v &= o
	p.Set(v)
	return p
}

func OrAssign[P ReadWritable[T], T constraints.Integer](p P, o T) P {
	v := p.Get()
	v |= o
	p.Set(v)
	return p
}

func XorAssign[P ReadWritable[T], T constraints.Integer](p P, o T) P {
	v := p.Get()
	v ^= o
	p.Set(v)
	return p
}

func AndNotAssign[P ReadWritable[T], T constraints.Integer](p P, o T) P {
	v := p.Get()
	v &^= o
	p.Set(v)
	return p
}

func ShlAssign[P ReadWritable[T], T, S constraints.Integer](p P, n S) P {
	v := p.Get()
	v <<= n
	p.Set(v)
	return p
}

func ShrAssign[P ReadWritable[T], T, S constraints.Integer](p P, n S) P {
	v := p.Get()
	v >>= n
	p.Set(v)
	return p
}
