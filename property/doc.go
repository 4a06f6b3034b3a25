// Package property turns accessor pairs into value-like handles.
//
// An owner type exposes a getter and/or a setter for some value:
//
//	func (b Basis) GetX() Vector3
//	func (b *Basis) SetX(v Vector3)
//
// A handle binds a pointer to one owner instance to that accessor pair and
// then behaves, as far as Go allows, like the value itself:
//
//	x := property.New(&b, (*Basis).GetX, (*Basis).SetX)
//	x.Set(v)
//	property.AddAssign(x, delta) // read, add, write back
//
// Handles are views. They never own the owner, hold no state besides the owner
// pointer and the accessor functions, and are meant to be built at the point of
// access rather than cached.
//
// Capabilities:
//
// Which operations a handle supports is decided by its type, not by runtime
// flags. Property has both directions, ReadOnly only Get, WriteOnly only Set.
// The operator functions are constrained by Readable, Writable and
// ReadWritable, so using a read-only handle with a mutating operator is a
// compile error rather than a runtime failure.
//
// Read-modify-write:
//
// Every mutating operator, every forwarded non-constant method and every write
// to a field handle is a read-modify-write unit: the current value is read
// through the getter, changed on a local copy and stored back through the
// setter. The unit is not atomic; callers own any synchronization.
//
// Fields:
//
// Field, FieldView and FieldSink give handles over one field of a composite
// value held by a parent handle. A write to a field reads the whole parent
// value, updates the field and writes the whole value back through the parent,
// so fields can be chained to any depth.
package property
