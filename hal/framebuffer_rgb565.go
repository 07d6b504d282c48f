package hal

import (
	"image"
	"image/color"
	"sync"

	"github.com/pkg/errors"

	"rdl/gfx"
)

// RGB565 is a linear 16bpp frame store, two bytes per pixel, little-endian,
// rows packed without padding.
type RGB565 struct {
	mu      sync.Mutex
	width   int
	height  int
	stride  int
	buf     []byte
	present func(buf []byte) error
}

// NewRGB565 returns a w x h frame store over buf. A nil buf is allocated.
// A buf of the wrong length fails with gfx.BufferSize.
func NewRGB565(width, height int, buf []byte) (*RGB565, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(gfx.ShapeSize, "hal: rgb565 %dx%d", width, height)
	}
	need := PixelFormatRGB565.BytesFor(width, height)
	if buf == nil {
		buf = make([]byte, need)
	}
	if len(buf) != need {
		return nil, errors.Wrapf(gfx.BufferSize, "hal: rgb565 %dx%d needs %d bytes, got %d", width, height, need, len(buf))
	}
	return &RGB565{
		width:  width,
		height: height,
		stride: width * 2,
		buf:    buf,
	}, nil
}

func (f *RGB565) Width() int          { return f.width }
func (f *RGB565) Height() int         { return f.height }
func (f *RGB565) Format() PixelFormat { return PixelFormatRGB565 }
func (f *RGB565) StrideBytes() int    { return f.stride }
func (f *RGB565) Buffer() []byte      { return f.buf }

// OnPresent sets the hook Present hands the buffer to, typically a bus write.
func (f *RGB565) OnPresent(fn func(buf []byte) error) { f.present = fn }

func (f *RGB565) Present() error {
	if f.present == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.present(f.buf)
}

func (f *RGB565) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := uint16(gfx.RGB(r, g, b))
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Snapshot copies the frame into dst under the lock.
func (f *RGB565) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// CopyBigEndian writes the frame into dst with each pixel byte-swapped, the order
// SPI panel controllers expect on the wire. It returns the bytes written.
func (f *RGB565) CopyBigEndian(dst []byte) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return swapRGB565(dst, f.buf)
}

// Size implements gfx.PixelSink.
func (f *RGB565) Size() (w, h int) { return f.width, f.height }

// SetPixel implements gfx.PixelSink.
func (f *RGB565) SetPixel(x, y int, c gfx.Color) {
	if uint(x) >= uint(f.width) || uint(y) >= uint(f.height) {
		return
	}
	i := y*f.stride + x*2
	f.buf[i] = byte(c)
	f.buf[i+1] = byte(c >> 8)
}

// Pixel implements gfx.PixelReader.
func (f *RGB565) Pixel(x, y int) gfx.Color {
	if uint(x) >= uint(f.width) || uint(y) >= uint(f.height) {
		return gfx.Black
	}
	i := y*f.stride + x*2
	return gfx.Color(uint16(f.buf[i]) | uint16(f.buf[i+1])<<8)
}

// FillRect implements gfx.Filler. The first row is written pixel by pixel and
// then copied down.
func (f *RGB565) FillRect(x, y, w, h int, c gfx.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 || y < 0 || x+w > f.width || y+h > f.height {
		return
	}
	lo, hi := byte(c), byte(c>>8)
	row := f.buf[y*f.stride+x*2 : y*f.stride+(x+w)*2]
	for i := 0; i < len(row); i += 2 {
		row[i] = lo
		row[i+1] = hi
	}
	for yy := y + 1; yy < y+h; yy++ {
		off := yy*f.stride + x*2
		copy(f.buf[off:off+len(row)], row)
	}
}

// Flush implements gfx.Flusher.
func (f *RGB565) Flush() error { return f.Present() }

// ColorModel implements image.Image.
func (f *RGB565) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (f *RGB565) Bounds() image.Rectangle { return image.Rect(0, 0, f.width, f.height) }

// At implements image.Image.
func (f *RGB565) At(x, y int) color.Color { return f.Pixel(x, y).RGBA() }

// Set implements draw.Image.
func (f *RGB565) Set(x, y int, c color.Color) {
	f.SetPixel(x, y, gfx.FromRGBA(color.RGBAModel.Convert(c).(color.RGBA)))
}
