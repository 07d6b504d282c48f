//go:build cgo

package main

import (
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"rdl/gfx"
	"rdl/hal"
	"rdl/internal/buildinfo"
)

// runWindow shows fb in a desktop window and calls step once per frame. It blocks
// until the window closes. Holding the left mouse button paints on the canvas.
func runWindow(fb frameStore, c *gfx.Canvas, step func(tick uint64) error, cfg config) error {
	scale := cfg.scale
	if scale <= 0 {
		scale = 1
	}
	g := &previewGame{fb: fb, canvas: c, step: step}
	ebiten.SetWindowTitle("gfxdemo " + cfg.scene + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(fb.Width()*scale, fb.Height()*scale)
	ebiten.SetTPS(cfg.hz)
	return errors.Wrap(ebiten.RunGame(g), "gfxdemo: window")
}

type previewGame struct {
	fb      frameStore
	canvas  *gfx.Canvas
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func(tick uint64) error
	tick    uint64
}

func (g *previewGame) Update() error {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		// The window layout is the physical frame, so the cursor is a physical point.
		if x, y, ok := g.canvas.ToLogical(ebiten.CursorPosition()); ok {
			g.canvas.FillCircle(x, y, 2, gfx.Yellow)
		}
	}
	if g.step != nil {
		if err := g.step(g.tick); err != nil {
			return err
		}
	}
	g.tick++
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	w, h := g.fb.Width(), g.fb.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, len(g.fb.Buffer()))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	switch fb := g.fb.(type) {
	case *hal.RGB565:
		fb.Snapshot(g.scratch)
		src := g.scratch
		dst := g.img.Pix
		for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
			r, gg, b := gfx.Color(uint16(src[i]) | uint16(src[i+1])<<8).RGB()
			j := (i / 2) * 4
			dst[j+0] = r
			dst[j+1] = gg
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
	default:
		draw.Draw(g.img, g.img.Bounds(), g.fb, g.fb.Bounds().Min, draw.Src)
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}
