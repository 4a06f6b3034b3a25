//go:build !tinygo

package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"quarkprop/property"
)

// Channel accessors over ebiten.ColorScale.

func scaleR(c ebiten.ColorScale) float32 { return c.R() }
func scaleG(c ebiten.ColorScale) float32 { return c.G() }
func scaleB(c ebiten.ColorScale) float32 { return c.B() }
func scaleA(c ebiten.ColorScale) float32 { return c.A() }

func setScaleR(c *ebiten.ColorScale, v float32) { c.SetR(v) }
func setScaleG(c *ebiten.ColorScale, v float32) { c.SetG(v) }
func setScaleB(c *ebiten.ColorScale, v float32) { c.SetB(v) }
func setScaleA(c *ebiten.ColorScale, v float32) { c.SetA(v) }

// ColorScaleView wraps a readable handle over an ebiten.ColorScale.
type ColorScaleView[P property.Readable[ebiten.ColorScale]] struct {
	p P
}

func ColorScaleViewOf[P property.Readable[ebiten.ColorScale]](p P) ColorScaleView[P] {
	return ColorScaleView[P]{p: p}
}

func (c ColorScaleView[P]) Get() ebiten.ColorScale   { return c.p.Get() }
func (c ColorScaleView[P]) Value() ebiten.ColorScale { return c.p.Get() }

func (c ColorScaleView[P]) R() property.FieldView[P, ebiten.ColorScale, float32] { return property.ViewOf(c.p, scaleR) }
func (c ColorScaleView[P]) G() property.FieldView[P, ebiten.ColorScale, float32] { return property.ViewOf(c.p, scaleG) }
func (c ColorScaleView[P]) B() property.FieldView[P, ebiten.ColorScale, float32] { return property.ViewOf(c.p, scaleB) }
func (c ColorScaleView[P]) A() property.FieldView[P, ebiten.ColorScale, float32] { return property.ViewOf(c.p, scaleA) }

func (c ColorScaleView[P]) String() string {
	return property.Inspect(c.p, func(s ebiten.ColorScale) string { return s.String() })
}

// ColorScaleProperty wraps a read-write handle over an ebiten.ColorScale.
type ColorScaleProperty[P property.ReadWritable[ebiten.ColorScale]] struct {
	ColorScaleView[P]
}

func ColorScalePropertyOf[P property.ReadWritable[ebiten.ColorScale]](p P) ColorScaleProperty[P] {
	return ColorScaleProperty[P]{ColorScaleView[P]{p: p}}
}

func (c ColorScaleProperty[P]) Set(s ebiten.ColorScale)    { c.p.Set(s) }
func (c ColorScaleProperty[P]) Assign(s ebiten.ColorScale) { c.p.Set(s) }

func (c ColorScaleProperty[P]) R() property.Field[P, ebiten.ColorScale, float32] {
	return property.FieldOf(c.p, scaleR, setScaleR)
}

func (c ColorScaleProperty[P]) G() property.Field[P, ebiten.ColorScale, float32] {
	return property.FieldOf(c.p, scaleG, setScaleG)
}

func (c ColorScaleProperty[P]) B() property.Field[P, ebiten.ColorScale, float32] {
	return property.FieldOf(c.p, scaleB, setScaleB)
}

func (c ColorScaleProperty[P]) A() property.Field[P, ebiten.ColorScale, float32] {
	return property.FieldOf(c.p, scaleA, setScaleA)
}

func (c ColorScaleProperty[P]) SetR(v float32) float32 { return c.R().Assign(v) }
func (c ColorScaleProperty[P]) SetG(v float32) float32 { return c.G().Assign(v) }
func (c ColorScaleProperty[P]) SetB(v float32) float32 { return c.B().Assign(v) }
func (c ColorScaleProperty[P]) SetA(v float32) float32 { return c.A().Assign(v) }

func (c ColorScaleProperty[P]) Scale(r, g, b, a float32) {
	property.Update(c.p, func(s *ebiten.ColorScale) { s.Scale(r, g, b, a) })
}

func (c ColorScaleProperty[P]) ScaleAlpha(a float32) {
	property.Update(c.p, func(s *ebiten.ColorScale) { s.ScaleAlpha(a) })
}

func (c ColorScaleProperty[P]) ScaleWithColor(clr color.Color) {
	property.Update(c.p, func(s *ebiten.ColorScale) { s.ScaleWithColor(clr) })
}

func (c ColorScaleProperty[P]) Reset() {
	property.Update(c.p, func(s *ebiten.ColorScale) { s.Reset() })
}

func (c ColorScaleProperty[P]) ReadOnly() ColorScaleView[property.Source[P, ebiten.ColorScale]] {
	return ColorScaleViewOf(property.SourceOf[P, ebiten.ColorScale](c.p))
}
