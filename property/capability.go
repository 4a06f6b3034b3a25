package property

// Readable is implemented by handles that can read their value.
type Readable[T any] interface {
	Get() T
}

// Writable is implemented by handles that can store a value.
type Writable[T any] interface {
	Set(T)
}

// ReadWritable is implemented by handles that support both directions and can
// therefore take part in read-modify-write operations.
type ReadWritable[T any] interface {
	Readable[T]
	Writable[T]
}

// Callables that return nothing.
type (
	Proc0           interface{ ~func() }
	Proc1[A any]    interface{ ~func(A) }
	Proc2[A, B any] interface{ ~func(A, B) }
)

// Callables that return a result.
type (
	Func0[R any]       interface{ ~func() R }
	Func1[A, R any]    interface{ ~func(A) R }
	Func2[A, B, R any] interface{ ~func(A, B) R }
)

// CanRead reports whether h is a handle that reads values of type T.
func CanRead[T any](h any) bool {
	_, ok := h.(Readable[T])
	return ok
}

// CanWrite reports whether h is a handle that stores values of type T.
func CanWrite[T any](h any) bool {
	_, ok := h.(Writable[T])
	return ok
}

// writeBack stores v through p when p also implements Writable.
func writeBack[P any, T any](p P, v T) bool {
	w, ok := any(p).(Writable[T])
	if ok {
		w.Set(v)
	}
	return ok
}
