package property

// Method forwarding.
//
// A value-receiver method cannot change its receiver, so Inspect and Observe
// call it on the value read from the handle and never write back; they work on
// read-only handles. A pointer-receiver method may change its receiver, so
// Mutate and Update call it on a local copy and store the copy back; they need
// a ReadWritable handle, which makes calling such a method through a read-only
// handle a compile error.

// Inspect calls a value-receiver method and returns its result.
func Inspect[P Readable[T], T, R any](p P, fn func(T) R) R {
	return fn(p.Get())
}

// Inspect1 and Inspect2 are Inspect for methods taking arguments, so a method
// expression such as Vector3.Add can be passed as is.

func Inspect1[P Readable[T], T, A, R any](p P, fn func(T, A) R, a A) R {
	return fn(p.Get(), a)
}

func Inspect2[P Readable[T], T, A, B, R any](p P, fn func(T, A, B) R, a A, b B) R {
	return fn(p.Get(), a, b)
}

// InspectPair is Inspect for methods with two results.
func InspectPair[P Readable[T], T, R, S any](p P, fn func(T) (R, S)) (R, S) {
	return fn(p.Get())
}

// Observe calls a value-receiver method that returns nothing.
func Observe[P Readable[T], T any](p P, fn func(T)) {
	fn(p.Get())
}

// Mutate calls a pointer-receiver method on a copy, stores the copy and then
// returns the method's result.
func Mutate[P ReadWritable[T], T, R any](p P, fn func(*T) R) R {
	v := p.Get()
	r := fn(&v)
	p.Set(v)
	return r
}

// Update calls a pointer-receiver method that returns nothing and stores the
// copy.
func Update[P ReadWritable[T], T any](p P, fn func(*T)) {
	v := p.Get()
	fn(&v)
	p.Set(v)
}
