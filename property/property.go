package property

// Property is a read-write handle over an owner's getter/setter pair.
//
// The zero value is bound to no owner. Calling accessors on it is a
// precondition violation; Bound reports whether an owner is set.
type Property[O, T any] struct {
	owner *O
	get   Getter[O, T]
	set   Setter[O, T]
}

// New binds owner to a getter/setter pair. It panics if either accessor is
// nil; use NewReadOnly or NewWriteOnly when the owner exposes one direction.
func New[O, T any](owner *O, get Getter[O, T], set Setter[O, T]) Property[O, T] {
	if get == nil || set == nil {
		panic("property: New needs both a getter and a setter")
	}
	return Property[O, T]{owner: owner, get: get, set: set}
}

func (p Property[O, T]) Get() T { return p.get(p.owner) }

func (p Property[O, T]) Set(v T) { p.set(p.owner, v) }

// Value is Get under the name used where the handle stands in for a value.
func (p Property[O, T]) Value() T { return p.get(p.owner) }

// Assign is Set under the name used where the handle is the target of an
// assignment.
func (p Property[O, T]) Assign(v T) { p.set(p.owner, v) }

func (p Property[O, T]) Owner() *O { return p.owner }

func (p Property[O, T]) Bound() bool { return p.owner != nil }

// ReadOnly narrows p to its getter.
func (p Property[O, T]) ReadOnly() ReadOnly[O, T] {
	return ReadOnly[O, T]{owner: p.owner, get: p.get}
}

// WriteOnly narrows p to its setter.
func (p Property[O, T]) WriteOnly() WriteOnly[O, T] {
	return WriteOnly[O, T]{owner: p.owner, set: p.set}
}

// Same reports whether two handles view the same owner instance. Handles over
// the same owner built from the same accessors are interchangeable.
func Same[O any](a, b interface{ Owner() *O }) bool {
	return a.Owner() == b.Owner()
}
