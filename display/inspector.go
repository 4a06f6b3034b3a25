package display

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"quarkprop/property"
)

// Inspector is a list of labelled readouts. Each row keeps the handle, not a
// value, so every Lines or Draw call reads the current state of the owner.
type Inspector struct {
	rows []row

	font       tinyfont.Fonter
	fg, bg     color.RGBA
	x, y       int16
	lineHeight int16
}

type row struct {
	label string
	read  func() string
}

// Option configures an Inspector.
type Option func(*Inspector)

func WithFont(f tinyfont.Fonter) Option { return func(in *Inspector) { in.font = f } }

func WithColors(fg, bg color.RGBA) Option {
	return func(in *Inspector) { in.fg, in.bg = fg, bg }
}

// WithOrigin sets the top-left corner of the first row.
func WithOrigin(x, y int16) Option { return func(in *Inspector) { in.x, in.y = x, y } }

func NewInspector(opts ...Option) *Inspector {
	in := &Inspector{
		font: &proggy.TinySZ8pt7b,
		fg:   color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF},
		bg:   color.RGBA{A: 0xFF},
		x:    2,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.lineHeight = int16(in.font.GetYAdvance())
	if in.lineHeight <= 0 {
		in.lineHeight = 8
	}
	return in
}

// Readout adds a row showing the value read through h. An empty format means
// "%v".
func Readout[P property.Readable[T], T any](in *Inspector, label string, h P, format string) {
	if format == "" {
		format = "%v"
	}
	in.rows = append(in.rows, row{
		label: label,
		read:  func() string { return fmt.Sprintf(format, h.Get()) },
	})
}

func (in *Inspector) Len() int { return len(in.rows) }

// Lines reads every row and returns the text that Draw would render.
func (in *Inspector) Lines() []string {
	out := make([]string, 0, len(in.rows))
	for _, r := range in.rows {
		out = append(out, r.label+": "+r.read())
	}
	return out
}

// Draw clears d, writes one line per row and presents the frame.
func (in *Inspector) Draw(d drivers.Displayer) error {
	w, h := d.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.SetPixel(x, y, in.bg)
		}
	}
	y := in.y + in.lineHeight
	for _, line := range in.Lines() {
		if y > h {
			break
		}
		tinyfont.WriteLine(d, in.font, in.x, y, line, in.fg)
		y += in.lineHeight
	}
	return d.Display()
}
