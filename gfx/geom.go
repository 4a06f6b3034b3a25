//go:build !tinygo

// Package gfx wraps ebiten's value types in property handles so sprite
// transforms and color scales can be edited field by field.
package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"quarkprop/property"
)

// GeoM element positions.
type element struct{ i, j int }

var (
	elemA  = element{0, 0}
	elemB  = element{0, 1}
	elemC  = element{1, 0}
	elemD  = element{1, 1}
	elemTX = element{0, 2}
	elemTY = element{1, 2}
)

func (e element) get(m ebiten.GeoM) float64     { return m.Element(e.i, e.j) }
func (e element) set(m *ebiten.GeoM, v float64) { m.SetElement(e.i, e.j, v) }

// GeoMView wraps a readable handle over an ebiten.GeoM.
type GeoMView[P property.Readable[ebiten.GeoM]] struct {
	p P
}

func GeoMViewOf[P property.Readable[ebiten.GeoM]](p P) GeoMView[P] {
	return GeoMView[P]{p: p}
}

func (g GeoMView[P]) Get() ebiten.GeoM   { return g.p.Get() }
func (g GeoMView[P]) Value() ebiten.GeoM { return g.p.Get() }

func (g GeoMView[P]) view(e element) property.FieldView[P, ebiten.GeoM, float64] {
	return property.ViewOf(g.p, e.get)
}

func (g GeoMView[P]) A() property.FieldView[P, ebiten.GeoM, float64]  { return g.view(elemA) }
func (g GeoMView[P]) B() property.FieldView[P, ebiten.GeoM, float64]  { return g.view(elemB) }
func (g GeoMView[P]) C() property.FieldView[P, ebiten.GeoM, float64]  { return g.view(elemC) }
func (g GeoMView[P]) D() property.FieldView[P, ebiten.GeoM, float64]  { return g.view(elemD) }
func (g GeoMView[P]) TX() property.FieldView[P, ebiten.GeoM, float64] { return g.view(elemTX) }
func (g GeoMView[P]) TY() property.FieldView[P, ebiten.GeoM, float64] { return g.view(elemTY) }

// Element returns the element at row i, column j.
func (g GeoMView[P]) Element(i, j int) float64 {
	return property.Inspect(g.p, func(m ebiten.GeoM) float64 { return m.Element(i, j) })
}

func (g GeoMView[P]) Apply(x, y float64) (float64, float64) {
	return property.InspectPair(g.p, func(m ebiten.GeoM) (float64, float64) { return m.Apply(x, y) })
}

func (g GeoMView[P]) IsInvertible() bool {
	return property.Inspect(g.p, func(m ebiten.GeoM) bool { return m.IsInvertible() })
}

func (g GeoMView[P]) String() string {
	return property.Inspect(g.p, func(m ebiten.GeoM) string { return m.String() })
}

// GeoMProperty wraps a read-write handle over an ebiten.GeoM. Every ebiten
// method that changes the matrix is forwarded as one read-modify-write.
type GeoMProperty[P property.ReadWritable[ebiten.GeoM]] struct {
	GeoMView[P]
}

func GeoMPropertyOf[P property.ReadWritable[ebiten.GeoM]](p P) GeoMProperty[P] {
	return GeoMProperty[P]{GeoMView[P]{p: p}}
}

func (g GeoMProperty[P]) Set(m ebiten.GeoM)    { g.p.Set(m) }
func (g GeoMProperty[P]) Assign(m ebiten.GeoM) { g.p.Set(m) }

func (g GeoMProperty[P]) field(e element) property.Field[P, ebiten.GeoM, float64] {
	return property.FieldOf(g.p, e.get, e.set)
}

func (g GeoMProperty[P]) A() property.Field[P, ebiten.GeoM, float64]  { return g.field(elemA) }
func (g GeoMProperty[P]) B() property.Field[P, ebiten.GeoM, float64]  { return g.field(elemB) }
func (g GeoMProperty[P]) C() property.Field[P, ebiten.GeoM, float64]  { return g.field(elemC) }
func (g GeoMProperty[P]) D() property.Field[P, ebiten.GeoM, float64]  { return g.field(elemD) }
func (g GeoMProperty[P]) TX() property.Field[P, ebiten.GeoM, float64] { return g.field(elemTX) }
func (g GeoMProperty[P]) TY() property.Field[P, ebiten.GeoM, float64] { return g.field(elemTY) }

func (g GeoMProperty[P]) SetA(v float64) float64  { return g.A().Assign(v) }
func (g GeoMProperty[P]) SetB(v float64) float64  { return g.B().Assign(v) }
func (g GeoMProperty[P]) SetC(v float64) float64  { return g.C().Assign(v) }
func (g GeoMProperty[P]) SetD(v float64) float64  { return g.D().Assign(v) }
func (g GeoMProperty[P]) SetTX(v float64) float64 { return g.TX().Assign(v) }
func (g GeoMProperty[P]) SetTY(v float64) float64 { return g.TY().Assign(v) }

func (g GeoMProperty[P]) SetElement(i, j int, v float64) {
	property.Update(g.p, func(m *ebiten.GeoM) { m.SetElement(i, j, v) })
}

func (g GeoMProperty[P]) Translate(tx, ty float64) {
	property.Update(g.p, func(m *ebiten.GeoM) { m.Translate(tx, ty) })
}

func (g GeoMProperty[P]) Scale(x, y float64) {
	property.Update(g.p, func(m *ebiten.GeoM) { m.Scale(x, y) })
}

func (g GeoMProperty[P]) Rotate(theta float64) {
	property.Update(g.p, func(m *ebiten.GeoM) { m.Rotate(theta) })
}

func (g GeoMProperty[P]) Skew(skewX, skewY float64) {
	property.Update(g.p, func(m *ebiten.GeoM) { m.Skew(skewX, skewY) })
}

func (g GeoMProperty[P]) Concat(other ebiten.GeoM) {
	property.Update(g.p, func(m *ebiten.GeoM) { m.Concat(other) })
}

func (g GeoMProperty[P]) Invert() { property.Update(g.p, (*ebiten.GeoM).Invert) }
func (g GeoMProperty[P]) Reset()  { property.Update(g.p, (*ebiten.GeoM).Reset) }

func (g GeoMProperty[P]) ReadOnly() GeoMView[property.Source[P, ebiten.GeoM]] {
	return GeoMViewOf(property.SourceOf[P, ebiten.GeoM](g.p))
}
