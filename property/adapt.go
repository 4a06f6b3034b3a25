package property

// Source narrows any readable handle to reading. Composite wrappers use it to
// build their read-only views without exposing the writable handle.
type Source[P Readable[T], T any] struct {
	h P
}

func SourceOf[P Readable[T], T any](h P) Source[P, T] { return Source[P, T]{h: h} }

func (s Source[P, T]) Get() T   { return s.h.Get() }
func (s Source[P, T]) Value() T { return s.h.Get() }

func (s Source[P, T]) ReadOnly() Source[P, T] { return s }

// Sink narrows any writable handle to storing.
type Sink[P Writable[T], T any] struct {
	h P
}

func SinkOf[P Writable[T], T any](h P) Sink[P, T] { return Sink[P, T]{h: h} }

func (s Sink[P, T]) Set(v T)    { s.h.Set(v) }
func (s Sink[P, T]) Assign(v T) { s.h.Set(v) }

func (s Sink[P, T]) WriteOnly() Sink[P, T] { return s }
