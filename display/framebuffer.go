// Package display renders property readouts onto RGB565 framebuffers.
package display

import (
	"image"
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Framebuffer)(nil)

// Framebuffer is an in-memory RGB565 display, little-endian, two bytes per
// pixel.
type Framebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	presents int
}

func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * 2
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *Framebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }
func (f *Framebuffer) StrideBytes() int   { return f.stride }

// SetPixel stores c; pixels outside the buffer are ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	p := packRGB565(c)
	off := iy*f.stride + ix*2
	f.buf[off] = byte(p)
	f.buf[off+1] = byte(p >> 8)
}

// Display counts a presented frame; the buffer itself is the output.
func (f *Framebuffer) Display() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

// Presents returns how many frames were presented.
func (f *Framebuffer) Presents() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

func (f *Framebuffer) Clear(c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := packRGB565(c)
	lo := byte(p)
	hi := byte(p >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Pixel returns the color at (x, y) widened back to 8 bits per channel.
func (f *Framebuffer) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	off := y*f.stride + x*2
	return unpackRGB565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

// RGBA converts the buffer to an image.
func (f *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			img.SetRGBA(x, y, f.Pixel(x, y))
		}
	}
	return img
}
