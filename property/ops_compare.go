package property

import "golang.org/x/exp/constraints"

func Eq[P Readable[T], T comparable](p P, o T) bool { return p.Get() == o }
func Ne[P Readable[T], T comparable](p P, o T) bool { return p.Get() != o }

func Lt[P Readable[T], T constraints.Ordered](p P, o T) bool { return p.Get() < o }
func Le[P Readable[T], T constraints.Ordered](p P, o T) bool { return p.Get() <= o }
func Gt[P Readable[T], T constraints.Ordered](p P, o T) bool { return p.Get() > o }
func Ge[P Readable[T], T constraints.Ordered](p P, o T) bool { return p.Get() >= o }
