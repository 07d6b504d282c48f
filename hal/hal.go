package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little-endian in memory.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatMonoVLSB is 1bpp in 8-row pages, bit 0 is the top row of a page.
	PixelFormatMonoVLSB
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatMonoVLSB:
		return "mono-vlsb"
	default:
		return "unknown"
	}
}

// BytesFor returns the buffer length a w x h frame needs in format f.
func (f PixelFormat) BytesFor(w, h int) int {
	switch f {
	case PixelFormatRGB565:
		return w * h * 2
	case PixelFormatMonoVLSB:
		return w * ((h + 7) / 8)
	default:
		return 0
	}
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}
