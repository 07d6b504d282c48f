package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer exposes a Canvas as a tinygo drivers.Displayer, so tinyfont, tinyterm
// and other driver-level code can draw through the rotation transform.
type Displayer struct {
	c *Canvas
}

var _ drivers.Displayer = (*Displayer)(nil)

// NewDisplayer wraps c.
func NewDisplayer(c *Canvas) *Displayer { return &Displayer{c: c} }

// Canvas returns the wrapped canvas.
func (d *Displayer) Canvas() *Canvas { return d.c }

// Size returns the logical size.
func (d *Displayer) Size() (x, y int16) {
	if d.c == nil {
		return 0, 0
	}
	return int16(d.c.Width()), int16(d.c.Height())
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.c == nil {
		return
	}
	d.c.setPixel(int(x), int(y), FromRGBA(c))
}

// Display flushes the sink.
func (d *Displayer) Display() error {
	if d.c == nil {
		return nil
	}
	return d.c.Flush()
}

func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.c == nil {
		return nil
	}
	d.c.fillClipped(int(x), int(y), int(width), int(height), FromRGBA(c))
	return nil
}

// SetScroll is a no-op: scrolling is a controller feature the engine does not model.
func (d *Displayer) SetScroll(line int16) {
	_ = line
}

func (d *Displayer) SetRotation(rotation drivers.Rotation) error {
	if d.c == nil {
		return nil
	}
	return d.c.SetRotation(rotation).Err()
}

// ScrollUp moves the canvas content up by pixels rows and clears the exposed rows
// to bg. Without a readable sink the whole canvas is cleared instead.
func (d *Displayer) ScrollUp(pixels int16, bg color.RGBA) error {
	if d.c == nil {
		return nil
	}
	c := d.c
	col := FromRGBA(bg)
	n := int(pixels)
	if c.reader == nil || n >= c.height {
		c.FillScreen(col)
		return nil
	}
	if n <= 0 {
		return nil
	}
	for y := 0; y < c.height-n; y++ {
		for x := 0; x < c.width; x++ {
			px, _ := c.ReadPixel(x, y+n)
			c.setPixel(x, y, px)
		}
	}
	c.fillClipped(0, c.height-n, c.width, n, col)
	return nil
}
