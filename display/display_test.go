package display

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quarkprop/property"
	"quarkprop/scene"
	"quarkprop/variant"
)

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{
		{A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0xFF},
		{B: 0xFF, A: 0xFF},
	} {
		assert.Equal(t, c, unpackRGB565(packRGB565(c)))
	}
	assert.Equal(t, uint16(0xF800), packRGB565(color.RGBA{R: 0xFF}))
}

func TestFramebufferPixels(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	w, h := fb.Size()
	assert.Equal(t, int16(4), w)
	assert.Equal(t, int16(3), h)
	assert.Equal(t, 8, fb.StrideBytes())

	red := color.RGBA{R: 0xFF, A: 0xFF}
	fb.SetPixel(1, 2, red)
	fb.SetPixel(-1, 0, red)
	fb.SetPixel(4, 0, red)
	assert.Equal(t, red, fb.Pixel(1, 2))
	assert.Equal(t, color.RGBA{A: 0xFF}, fb.Pixel(0, 0))
	assert.Equal(t, color.RGBA{}, fb.Pixel(9, 9))

	blue := color.RGBA{B: 0xFF, A: 0xFF}
	fb.Clear(blue)
	img := fb.RGBA()
	assert.Equal(t, blue, img.RGBAAt(3, 2))

	require.NoError(t, fb.Display())
	assert.Equal(t, 1, fb.Presents())
}

func TestInspectorReadsAtDrawTime(t *testing.T) {
	s := scene.CreateScene(1)
	n, ok := s.AddNode("cube")
	require.True(t, ok)

	in := NewInspector()
	Readout(in, "name", n.Name(), "%s")
	Readout(in, "y", n.Origin().Y(), "%.1f")
	Readout(in, "layers", n.Layers(), "%03b")
	assert.Equal(t, 3, in.Len())

	assert.Equal(t, []string{"name: cube", "y: 0.0", "layers: 001"}, in.Lines())

	n.Origin().SetY(2.5)
	property.ShlAssign(n.Layers(), 2)
	assert.Equal(t, []string{"name: cube", "y: 2.5", "layers: 100"}, in.Lines())
}

func TestInspectorDraw(t *testing.T) {
	var v variant.Vector3
	in := NewInspector(WithColors(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, color.RGBA{A: 0xFF}))
	Readout(in, "v", v.Ref(), "")

	fb := NewFramebuffer(120, 32)
	fb.Clear(color.RGBA{G: 0xFF, A: 0xFF})
	require.NoError(t, in.Draw(fb))
	assert.Equal(t, 1, fb.Presents())

	lit := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 120; x++ {
			switch fb.Pixel(x, y) {
			case color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}:
				lit++
			case color.RGBA{G: 0xFF, A: 0xFF}:
				t.Fatalf("background not cleared at %d,%d", x, y)
			}
		}
	}
	assert.Positive(t, lit)
}
