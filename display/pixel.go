package display

import "image/color"

func packRGB565(c color.RGBA) uint16 {
	rr := uint16(c.R>>3) & 0x1F
	gg := uint16(c.G>>2) & 0x3F
	bb := uint16(c.B>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func unpackRGB565(p uint16) color.RGBA {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return color.RGBA{
		R: uint8((uint32(rr) * 255) / 31),
		G: uint8((uint32(gg) * 255) / 63),
		B: uint8((uint32(bb) * 255) / 31),
		A: 0xFF,
	}
}
