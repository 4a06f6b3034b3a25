package property

import (
	"fmt"
	"reflect"
)

// Getter reads a T from an owner of type O.
//
// Method expressions convert directly: (*Basis).GetX has type
// func(*Basis) Vector3 whether GetX has a value or a pointer receiver.
type Getter[O, T any] func(*O) T

// Setter stores a T into an owner of type O.
type Setter[O, T any] func(*O, T)

// SetterFunc is a setter that also returns a result, typically the value that
// ended up stored.
type SetterFunc[O, T, R any] func(*O, T) R

// Signature describes an accessor function. A nil Type field is the "no type"
// sentinel: a free function has no Owner, a setter returning nothing has no
// Return, and an absent accessor has nothing at all.
type Signature struct {
	Owner      reflect.Type
	Return     reflect.Type
	FirstParam reflect.Type
	Member     bool
	Const      bool
}

// Absent reports whether the signature describes a missing accessor.
func (s Signature) Absent() bool {
	return s.Owner == nil && s.Return == nil && s.FirstParam == nil && !s.Member
}

func (s Signature) String() string {
	if s.Absent() {
		return "<none>"
	}
	name := func(t reflect.Type) string {
		if t == nil {
			return "-"
		}
		return t.String()
	}
	kind := "func"
	switch {
	case s.Member && s.Const:
		kind = "const method"
	case s.Member:
		kind = "method"
	}
	return fmt.Sprintf("%s owner=%s arg=%s ret=%s", kind, name(s.Owner), name(s.FirstParam), name(s.Return))
}

// DescribeMethod inspects a method expression such as (*Basis).GetX or
// Basis.GetEuler. The first parameter is the receiver: Owner is its type with
// any pointer removed and Const reports that it is taken by value. A function
// with no parameters has no receiver and is described as by DescribeFunc.
// Nil values describe an absent accessor.
func DescribeMethod(fn any) Signature {
	t, ok := funcType(fn)
	if !ok {
		return Signature{}
	}
	if t.NumIn() == 0 {
		return describe(t, 0)
	}
	sig := describe(t, 1)
	sig.Member = true
	sig.Owner = t.In(0)
	sig.Const = true
	if sig.Owner.Kind() == reflect.Pointer {
		sig.Owner = sig.Owner.Elem()
		sig.Const = false
	}
	return sig
}

// DescribeFunc inspects a free function such as a constructor. It never
// reports an owner, whatever the type of the first parameter.
func DescribeFunc(fn any) Signature {
	t, ok := funcType(fn)
	if !ok {
		return Signature{}
	}
	return describe(t, 0)
}

func funcType(fn any) (reflect.Type, bool) {
	if fn == nil {
		return nil, false
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, false
	}
	return v.Type(), true
}

// describe fills the parameter and result facts, skipping the first skip
// parameters.
func describe(t reflect.Type, skip int) Signature {
	var sig Signature
	if t.NumIn() > skip {
		sig.FirstParam = t.In(skip)
	}
	if t.NumOut() > 0 {
		sig.Return = t.Out(0)
	}
	return sig
}

// Signature describes g. The accessor types always take *O, so a non-nil
// accessor is a non-const member of O.
func (g Getter[O, T]) Signature() Signature {
	if g == nil {
		return Signature{}
	}
	return Signature{Owner: reflect.TypeFor[O](), Return: reflect.TypeFor[T](), Member: true}
}

// Signature describes s.
func (s Setter[O, T]) Signature() Signature {
	if s == nil {
		return Signature{}
	}
	return Signature{Owner: reflect.TypeFor[O](), FirstParam: reflect.TypeFor[T](), Member: true}
}

// Signature describes s.
func (s SetterFunc[O, T, R]) Signature() Signature {
	if s == nil {
		return Signature{}
	}
	return Signature{Owner: reflect.TypeFor[O](), FirstParam: reflect.TypeFor[T](), Return: reflect.TypeFor[R](), Member: true}
}
