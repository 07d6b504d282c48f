package main

import (
	"image/color"
	"io"

	"github.com/pkg/errors"
	"tinygo.org/x/drivers"

	"rdl/gfx"
	"rdl/hal"
)

var _ drivers.Displayer = (*panel)(nil)

// panel stands in for an SPI display controller. Pixels land in its RGB565 GRAM
// and every Display streams the frame to the wire in big-endian order.
type panel struct {
	gram   *hal.RGB565
	wire   io.Writer
	tx     []byte
	frames int
}

func newPanel(gram *hal.RGB565, wire io.Writer) *panel {
	return &panel{gram: gram, wire: wire, tx: make([]byte, len(gram.Buffer()))}
}

func (p *panel) Size() (x, y int16) {
	return int16(p.gram.Width()), int16(p.gram.Height())
}

func (p *panel) SetPixel(x, y int16, c color.RGBA) {
	p.gram.SetPixel(int(x), int(y), gfx.FromRGBA(c))
}

func (p *panel) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("panel: bad fill %dx%d", width, height)
	}
	p.gram.FillRect(int(x), int(y), int(width), int(height), gfx.FromRGBA(c))
	return nil
}

func (p *panel) Display() error {
	n := p.gram.CopyBigEndian(p.tx)
	if _, err := p.wire.Write(p.tx[:n]); err != nil {
		return errors.Wrap(err, "panel: write frame")
	}
	p.frames++
	return nil
}
