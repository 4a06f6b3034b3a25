//go:build !tinygo

package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"quarkprop/display"
)

// Viewer is an ebiten.Game that shows a framebuffer through a Sprite. The
// sprite's GeoM scales the framebuffer up to the window.
type Viewer struct {
	fb     *display.Framebuffer
	sprite *Sprite
	img    *ebiten.Image
	step   func() error

	ticks uint64
	limit uint64
}

// NewViewer returns a viewer that calls step once per tick before drawing.
func NewViewer(fb *display.Framebuffer, scale float64, step func() error) *Viewer {
	if scale <= 0 {
		scale = 1
	}
	v := &Viewer{fb: fb, sprite: NewSprite(), step: step}
	v.sprite.GeoM().Scale(scale, scale)
	return v
}

func (v *Viewer) Sprite() *Sprite { return v.sprite }

// SetTickLimit stops the game after n updates; zero runs until the window
// closes.
func (v *Viewer) SetTickLimit(n uint64) { v.limit = n }

func (v *Viewer) Ticks() uint64 { return v.ticks }

func (v *Viewer) Update() error {
	if v.step != nil {
		if err := v.step(); err != nil {
			return err
		}
	}
	v.ticks++
	if v.limit > 0 && v.ticks >= v.limit {
		return ebiten.Termination
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	w, h := v.fb.Size()
	if v.img == nil || v.img.Bounds().Dx() != int(w) || v.img.Bounds().Dy() != int(h) {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(int(w), int(h))
	}
	v.img.WritePixels(v.fb.RGBA().Pix)
	v.sprite.Draw(screen, v.img)
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	w, h := v.fb.Size()
	g := v.sprite.GeoM()
	return int(float64(w) * g.A().Get()), int(float64(h) * g.D().Get())
}

// Run opens a window and blocks until it closes or the tick limit is reached.
func (v *Viewer) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(v.Layout(0, 0))
	ebiten.SetTPS(60)
	return ebiten.RunGame(v)
}
