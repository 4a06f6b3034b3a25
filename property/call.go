package property

// Call forwarding. The callable is read through the handle, invoked, and then
// stored back when the handle is also Writable, so a setter observes every
// call. The result of the call is returned unchanged.

func Call0[P Readable[F], F Func0[R], R any](p P) R {
	f := p.Get()
	r := f()
	writeBack(p, f)
	return r
}

func Call1[P Readable[F], F Func1[A, R], A, R any](p P, a A) R {
	f := p.Get()
	r := f(a)
	writeBack(p, f)
	return r
}

func Call2[P Readable[F], F Func2[A, B, R], A, B, R any](p P, a A, b B) R {
	f := p.Get()
	r := f(a, b)
	writeBack(p, f)
	return r
}

// Do0, Do1 and Do2 are the forms for callables that return nothing.

func Do0[P Readable[F], F Proc0](p P) {
	f := p.Get()
	f()
	writeBack(p, f)
}

func Do1[P Readable[F], F Proc1[A], A any](p P, a A) {
	f := p.Get()
	f(a)
	writeBack(p, f)
}

func Do2[P Readable[F], F Proc2[A, B], A, B any](p P, a A, b B) {
	f := p.Get()
	f(a, b)
	writeBack(p, f)
}

// Indexer is implemented by value types with an element accessor.
type Indexer[K, E any] interface {
	At(K) E
}

// Index reads the value, indexes it and, when p is Writable, stores the whole
// value back. The element is returned by value: changing it afterwards does
// not reach the owner.
func Index[P Readable[T], T Indexer[K, E], K, E any](p P, k K) E {
	v := p.Get()
	e := v.At(k)
	writeBack(p, v)
	return e
}

// Elem is Index for slice values.
func Elem[P Readable[S], S ~[]E, E any](p P, i int) E {
	s := p.Get()
	e := s[i]
	writeBack(p, s)
	return e
}

// Lookup is Index for map values.
func Lookup[P Readable[M], M ~map[K]V, K comparable, V any](p P, k K) (V, bool) {
	m := p.Get()
	v, ok := m[k]
	writeBack(p, m)
	return v, ok
}
