package property

// ReadOnly is a handle that can only read. It has no Set, so it does not
// satisfy Writable and cannot be used with mutating operators.
type ReadOnly[O, T any] struct {
	owner *O
	get   Getter[O, T]
}

// NewReadOnly binds owner to a getter. It panics if get is nil.
func NewReadOnly[O, T any](owner *O, get Getter[O, T]) ReadOnly[O, T] {
	if get == nil {
		panic("property: NewReadOnly needs a getter")
	}
	return ReadOnly[O, T]{owner: owner, get: get}
}

func (p ReadOnly[O, T]) Get() T      { return p.get(p.owner) }
func (p ReadOnly[O, T]) Value() T    { return p.get(p.owner) }
func (p ReadOnly[O, T]) Owner() *O   { return p.owner }
func (p ReadOnly[O, T]) Bound() bool { return p.owner != nil }

// ReadOnly returns p.
func (p ReadOnly[O, T]) ReadOnly() ReadOnly[O, T] { return p }

// WriteOnly is a handle that can only store. It has no Get, so it does not
// satisfy Readable.
type WriteOnly[O, T any] struct {
	owner *O
	set   Setter[O, T]
}

// NewWriteOnly binds owner to a setter. It panics if set is nil.
func NewWriteOnly[O, T any](owner *O, set Setter[O, T]) WriteOnly[O, T] {
	if set == nil {
		panic("property: NewWriteOnly needs a setter")
	}
	return WriteOnly[O, T]{owner: owner, set: set}
}

func (p WriteOnly[O, T]) Set(v T)     { p.set(p.owner, v) }
func (p WriteOnly[O, T]) Assign(v T)  { p.set(p.owner, v) }
func (p WriteOnly[O, T]) Owner() *O   { return p.owner }
func (p WriteOnly[O, T]) Bound() bool { return p.owner != nil }

// WriteOnly returns p.
func (p WriteOnly[O, T]) WriteOnly() WriteOnly[O, T] { return p }
