package hal

import (
	"image/color"

	"github.com/pkg/errors"
	"tinygo.org/x/drivers"

	"rdl/gfx"
)

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// DisplayerSink lets the engine draw on any tinygo display driver.
type DisplayerSink struct {
	d      drivers.Displayer
	filler rectFiller
}

// NewDisplayerSink wraps d. A nil driver fails with gfx.BufferEmpty.
func NewDisplayerSink(d drivers.Displayer) (*DisplayerSink, error) {
	if d == nil {
		return nil, errors.Wrap(gfx.BufferEmpty, "hal: displayer sink")
	}
	s := &DisplayerSink{d: d}
	if f, ok := d.(rectFiller); ok {
		s.filler = f
	}
	return s, nil
}

// Driver returns the wrapped driver.
func (s *DisplayerSink) Driver() drivers.Displayer { return s.d }

// Size implements gfx.PixelSink.
func (s *DisplayerSink) Size() (w, h int) {
	x, y := s.d.Size()
	return int(x), int(y)
}

// SetPixel implements gfx.PixelSink.
func (s *DisplayerSink) SetPixel(x, y int, c gfx.Color) {
	s.d.SetPixel(int16(x), int16(y), c.RGBA())
}

// FillRect implements gfx.Filler. Drivers without a rectangle fill get per-pixel writes.
func (s *DisplayerSink) FillRect(x, y, w, h int, c gfx.Color) {
	rgba := c.RGBA()
	if s.filler != nil {
		if err := s.filler.FillRectangle(int16(x), int16(y), int16(w), int16(h), rgba); err == nil {
			return
		}
	}
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.d.SetPixel(int16(xx), int16(yy), rgba)
		}
	}
}

// Flush implements gfx.Flusher.
func (s *DisplayerSink) Flush() error {
	return errors.Wrap(s.d.Display(), "hal: display")
}
