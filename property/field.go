package property

// Field is a read-write handle over one field of the value held by a parent
// handle. It closes over the parent rather than over storage: Get reads the
// parent and extracts the field, Set reads the parent, replaces the field on
// the copy and writes the whole value back through the parent.
//
// Field satisfies ReadWritable, so it can be the parent of another Field.
type Field[P ReadWritable[T], T, F any] struct {
	parent P
	get    func(T) F
	set    func(*T, F)
}

// FieldOf builds a Field from the parent handle and the field's accessors.
// Accessors are usually method expressions or small funcs of the composite:
//
//	property.FieldOf(basis, Basis.GetX, (*Basis).SetX)
func FieldOf[P ReadWritable[T], T, F any](parent P, get func(T) F, set func(*T, F)) Field[P, T, F] {
	if get == nil || set == nil {
		panic("property: FieldOf needs both a getter and a setter")
	}
	return Field[P, T, F]{parent: parent, get: get, set: set}
}

func (f Field[P, T, F]) Get() F   { return f.get(f.parent.Get()) }
func (f Field[P, T, F]) Value() F { return f.Get() }
func (f Field[P, T, F]) Set(v F)  { f.Assign(v) }

// Assign stores v and returns the field value read back from the updated
// copy.
func (f Field[P, T, F]) Assign(v F) F {
	t := f.parent.Get()
	f.set(&t, v)
	f.parent.Set(t)
	return f.get(t)
}

func (f Field[P, T, F]) Parent() P { return f.parent }

func (f Field[P, T, F]) ReadOnly() FieldView[P, T, F] {
	return FieldView[P, T, F]{parent: f.parent, get: f.get}
}

func (f Field[P, T, F]) WriteOnly() FieldSink[P, T, F] {
	return FieldSink[P, T, F]{field: f}
}

// FieldView is a read-only handle over one field of a readable parent.
type FieldView[P Readable[T], T, F any] struct {
	parent P
	get    func(T) F
}

// ViewOf builds a FieldView from a readable parent.
func ViewOf[P Readable[T], T, F any](parent P, get func(T) F) FieldView[P, T, F] {
	if get == nil {
		panic("property: ViewOf needs a getter")
	}
	return FieldView[P, T, F]{parent: parent, get: get}
}

func (f FieldView[P, T, F]) Get() F    { return f.get(f.parent.Get()) }
func (f FieldView[P, T, F]) Value() F  { return f.Get() }
func (f FieldView[P, T, F]) Parent() P { return f.parent }

func (f FieldView[P, T, F]) ReadOnly() FieldView[P, T, F] { return f }

// FieldSink is the write-only narrowing of a Field. Writing still reads the
// parent, since only the whole value can be stored.
type FieldSink[P ReadWritable[T], T, F any] struct {
	field Field[P, T, F]
}

func (f FieldSink[P, T, F]) Set(v F)      { f.field.Assign(v) }
func (f FieldSink[P, T, F]) Assign(v F) F { return f.field.Assign(v) }
func (f FieldSink[P, T, F]) Parent() P    { return f.field.parent }

func (f FieldSink[P, T, F]) WriteOnly() FieldSink[P, T, F] { return f }
