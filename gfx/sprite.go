//go:build !tinygo

package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"quarkprop/property"
)

// Sprite holds the draw state of one image.
type Sprite struct {
	geom   ebiten.GeoM
	scale  ebiten.ColorScale
	filter ebiten.Filter
}

func NewSprite() *Sprite {
	return &Sprite{filter: ebiten.FilterNearest}
}

func (s *Sprite) GetGeoM() ebiten.GeoM              { return s.geom }
func (s *Sprite) SetGeoM(m ebiten.GeoM)             { s.geom = m }
func (s *Sprite) GetColorScale() ebiten.ColorScale  { return s.scale }
func (s *Sprite) SetColorScale(c ebiten.ColorScale) { s.scale = c }
func (s *Sprite) GetFilter() ebiten.Filter          { return s.filter }
func (s *Sprite) SetFilter(f ebiten.Filter)         { s.filter = f }

func (s *Sprite) GeoM() GeoMProperty[property.Property[Sprite, ebiten.GeoM]] {
	return GeoMPropertyOf(property.New(s, (*Sprite).GetGeoM, (*Sprite).SetGeoM))
}

func (s *Sprite) ColorScale() ColorScaleProperty[property.Property[Sprite, ebiten.ColorScale]] {
	return ColorScalePropertyOf(property.New(s, (*Sprite).GetColorScale, (*Sprite).SetColorScale))
}

func (s *Sprite) Filter() property.Property[Sprite, ebiten.Filter] {
	return property.New(s, (*Sprite).GetFilter, (*Sprite).SetFilter)
}

// Options returns draw options built from the current state.
func (s *Sprite) Options() *ebiten.DrawImageOptions {
	return &ebiten.DrawImageOptions{
		GeoM:       s.geom,
		ColorScale: s.scale,
		Filter:     s.filter,
	}
}

func (s *Sprite) Draw(dst, src *ebiten.Image) {
	if dst == nil || src == nil {
		return
	}
	dst.DrawImage(src, s.Options())
}
