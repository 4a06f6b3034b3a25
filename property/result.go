package property

// Result is a read-write handle whose setter returns a value of type R.
// Set drops the result so Result still satisfies Writable; Assign returns it.
type Result[O, T, R any] struct {
	owner *O
	get   Getter[O, T]
	set   SetterFunc[O, T, R]
}

// NewResult binds owner to a getter and a result-returning setter. It panics
// if either accessor is nil.
func NewResult[O, T, R any](owner *O, get Getter[O, T], set SetterFunc[O, T, R]) Result[O, T, R] {
	if get == nil || set == nil {
		panic("property: NewResult needs both a getter and a setter")
	}
	return Result[O, T, R]{owner: owner, get: get, set: set}
}

func (p Result[O, T, R]) Get() T       { return p.get(p.owner) }
func (p Result[O, T, R]) Set(v T)      { p.set(p.owner, v) }
func (p Result[O, T, R]) Value() T     { return p.get(p.owner) }
func (p Result[O, T, R]) Assign(v T) R { return p.set(p.owner, v) }
func (p Result[O, T, R]) Owner() *O    { return p.owner }
func (p Result[O, T, R]) Bound() bool  { return p.owner != nil }

func (p Result[O, T, R]) ReadOnly() ReadOnly[O, T] {
	return ReadOnly[O, T]{owner: p.owner, get: p.get}
}

func (p Result[O, T, R]) WriteOnly() WriteOnly[O, T] {
	set := p.set
	return WriteOnly[O, T]{owner: p.owner, set: func(o *O, v T) { set(o, v) }}
}
