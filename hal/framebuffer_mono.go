package hal

import (
	"image"
	"image/color"
	"sync"

	"github.com/pkg/errors"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"rdl/gfx"
)

// Mono is a 1bpp frame store organized in 8-row pages, the layout of SSD1306,
// SH1106 and PCD8544 controllers. Black turns a pixel off, gfx.Inverse toggles
// it and any other color turns it on.
type Mono struct {
	mu      sync.Mutex
	img     *image1bit.VerticalLSB
	present func(buf []byte) error
}

// NewMono returns a w x h page-organized frame store over buf. A nil buf is
// allocated. The height must be a multiple of 8.
func NewMono(width, height int, buf []byte) (*Mono, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(gfx.ShapeSize, "hal: mono %dx%d", width, height)
	}
	if height%8 != 0 {
		return nil, errors.Wrapf(gfx.HorizontalSize, "hal: mono height %d is not a multiple of 8", height)
	}
	need := PixelFormatMonoVLSB.BytesFor(width, height)
	if buf == nil {
		buf = make([]byte, need)
	}
	if len(buf) != need {
		return nil, errors.Wrapf(gfx.BufferSize, "hal: mono %dx%d needs %d bytes, got %d", width, height, need, len(buf))
	}
	return &Mono{img: &image1bit.VerticalLSB{
		Pix:    buf,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}}, nil
}

// NewMonoFromBuffer wraps an existing image1bit frame, for example one shared
// with a periph.io ssd1306 device.
func NewMonoFromBuffer(img *image1bit.VerticalLSB) (*Mono, error) {
	if img == nil {
		return nil, errors.Wrap(gfx.BufferEmpty, "hal: mono")
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(gfx.ShapeSize, "hal: mono %dx%d", w, h)
	}
	if need := PixelFormatMonoVLSB.BytesFor(w, h); len(img.Pix) != need || img.Stride != w {
		return nil, errors.Wrapf(gfx.BufferSize, "hal: mono %dx%d needs %d bytes, got %d", w, h, need, len(img.Pix))
	}
	return &Mono{img: img}, nil
}

// Image returns the backing image, suitable for periph.io display.Drawer.Draw.
func (m *Mono) Image() *image1bit.VerticalLSB { return m.img }

func (m *Mono) Width() int          { return m.img.Rect.Dx() }
func (m *Mono) Height() int         { return m.img.Rect.Dy() }
func (m *Mono) Format() PixelFormat { return PixelFormatMonoVLSB }
func (m *Mono) StrideBytes() int    { return m.img.Stride }
func (m *Mono) Buffer() []byte      { return m.img.Pix }

// OnPresent sets the hook Present hands the page buffer to.
func (m *Mono) OnPresent(fn func(buf []byte) error) { m.present = fn }

func (m *Mono) Present() error {
	if m.present == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.present(m.img.Pix)
}

// ClearRGB turns every pixel on unless r, g and b are all zero.
func (m *Mono) ClearRGB(r, g, b uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var v byte
	if gfx.RGB(r, g, b).IsOn() {
		v = 0xFF
	}
	for i := range m.img.Pix {
		m.img.Pix[i] = v
	}
}

// Snapshot copies the page buffer into dst under the lock.
func (m *Mono) Snapshot(dst []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy(dst, m.img.Pix)
}

// Size implements gfx.PixelSink.
func (m *Mono) Size() (w, h int) { return m.img.Rect.Dx(), m.img.Rect.Dy() }

func (m *Mono) inside(x, y int) bool {
	return uint(x) < uint(m.img.Rect.Dx()) && uint(y) < uint(m.img.Rect.Dy())
}

// SetPixel implements gfx.PixelSink.
func (m *Mono) SetPixel(x, y int, c gfx.Color) {
	if !m.inside(x, y) {
		return
	}
	x += m.img.Rect.Min.X
	y += m.img.Rect.Min.Y
	switch {
	case c == gfx.Inverse:
		m.img.SetBit(x, y, !m.img.BitAt(x, y))
	case c.IsOn():
		m.img.SetBit(x, y, image1bit.On)
	default:
		m.img.SetBit(x, y, image1bit.Off)
	}
}

// Pixel implements gfx.PixelReader.
func (m *Mono) Pixel(x, y int) gfx.Color {
	if !m.inside(x, y) {
		return gfx.Black
	}
	if m.img.BitAt(x+m.img.Rect.Min.X, y+m.img.Rect.Min.Y) == image1bit.On {
		return gfx.White
	}
	return gfx.Black
}

// FillRect implements gfx.Filler, writing up to a page of rows per byte.
func (m *Mono) FillRect(x, y, w, h int, c gfx.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if !m.inside(x, y) || !m.inside(x+w-1, y+h-1) {
		return
	}
	for py := y; py < y+h; {
		bit := py & 7
		n := 8 - bit
		if rest := y + h - py; rest < n {
			n = rest
		}
		mask := byte(((1 << n) - 1) << bit)
		off := (py/8)*m.img.Stride + x
		row := m.img.Pix[off : off+w]
		for i := range row {
			switch {
			case c == gfx.Inverse:
				row[i] ^= mask
			case c.IsOn():
				row[i] |= mask
			default:
				row[i] &^= mask
			}
		}
		py += n
	}
}

// Flush implements gfx.Flusher.
func (m *Mono) Flush() error { return m.Present() }

// ColorModel implements image.Image.
func (m *Mono) ColorModel() color.Model { return m.img.ColorModel() }

// Bounds implements image.Image.
func (m *Mono) Bounds() image.Rectangle { return m.img.Bounds() }

// At implements image.Image.
func (m *Mono) At(x, y int) color.Color { return m.img.At(x, y) }

// Set implements draw.Image.
func (m *Mono) Set(x, y int, c color.Color) { m.img.Set(x, y, c) }
