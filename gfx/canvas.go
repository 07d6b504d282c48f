package gfx

import "rdl/font"

// Canvas is the drawing surface of one display instance.
//
// It owns the rotation, blitter and text state; the pixels themselves live in the
// injected PixelSink. The zero value is not usable, call New.
type Canvas struct {
	sink   PixelSink
	reader PixelReader
	filler Filler

	physW int
	physH int

	rotation Rotation
	width    int
	height   int

	bitmapAddr BitmapAddr
	arcOffset  float64

	text textState
}

// New returns a Canvas drawing into sink with rotation 0 and the default font.
//
// A nil sink yields a Canvas whose every draw is a no-op returning BufferEmpty.
func New(sink PixelSink) *Canvas {
	c := &Canvas{
		sink:       sink,
		bitmapAddr: AddrHorizontal,
		text:       newTextState(font.Default),
	}
	if sink != nil {
		c.physW, c.physH = sink.Size()
		if c.physW < 0 {
			c.physW = 0
		}
		if c.physH < 0 {
			c.physH = 0
		}
		c.reader, _ = sink.(PixelReader)
		c.filler, _ = sink.(Filler)
	}
	c.width, c.height = c.physW, c.physH
	return c
}

// Sink returns the sink the canvas draws into.
func (c *Canvas) Sink() PixelSink { return c.sink }

// Width is the logical (post-rotation) width.
func (c *Canvas) Width() int { return c.width }

// Height is the logical (post-rotation) height.
func (c *Canvas) Height() int { return c.height }

// PhysicalSize is the pre-rotation size fixed at construction.
func (c *Canvas) PhysicalSize() (w, h int) { return c.physW, c.physH }

// Rotation returns the active rotation.
func (c *Canvas) Rotation() Rotation { return c.rotation }

// SetRotation changes the orientation of subsequent drawing. Pixels already drawn
// are not moved. Unsupported values are rejected without changing anything.
func (c *Canvas) SetRotation(r Rotation) Status {
	if !validRotation(r) {
		return RotationInvalid
	}
	c.rotation = r
	c.width, c.height = logicalSize(r, c.physW, c.physH)
	return Success
}

// Flush forwards to the sink if it buffers pixels.
func (c *Canvas) Flush() error {
	if f, ok := c.sink.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// setPixel is the single write path of every primitive.
func (c *Canvas) setPixel(x, y int, col Color) bool {
	if c.sink == nil || !c.inBounds(x, y) {
		return false
	}
	px, py := transform(c.rotation, c.physW, c.physH, x, y)
	c.sink.SetPixel(px, py, col)
	return true
}

// DrawPixel sets one logical pixel.
func (c *Canvas) DrawPixel(x, y int, col Color) Status {
	if c.sink == nil {
		return BufferEmpty
	}
	if !c.setPixel(x, y, col) {
		return ScreenBounds
	}
	return Success
}

// ReadPixel returns the logical pixel at (x, y) if the sink can be read.
func (c *Canvas) ReadPixel(x, y int) (Color, bool) {
	if c.reader == nil || !c.inBounds(x, y) {
		return 0, false
	}
	px, py := transform(c.rotation, c.physW, c.physH, x, y)
	return c.reader.Pixel(px, py), true
}

// ToLogical maps a physical frame store point, such as a touch panel reading,
// to the logical coordinates of the current rotation.
func (c *Canvas) ToLogical(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 || px >= c.physW || py >= c.physH {
		return 0, 0, false
	}
	x, y = inverseTransform(c.rotation, c.physW, c.physH, px, py)
	return x, y, true
}

// FillScreen paints the whole canvas.
func (c *Canvas) FillScreen(col Color) {
	c.fillClipped(0, 0, c.width, c.height, col)
}

// fillClipped fills the part of the logical rectangle that lies on the canvas.
func (c *Canvas) fillClipped(x, y, w, h int, col Color) {
	if c.sink == nil || w <= 0 || h <= 0 {
		return
	}
	x0 := clampInt(x, 0, c.width)
	y0 := clampInt(y, 0, c.height)
	x1 := clampInt(x+w, 0, c.width)
	y1 := clampInt(y+h, 0, c.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if c.filler != nil {
		// A rectangle stays a rectangle under any of the four rotations.
		ax, ay := transform(c.rotation, c.physW, c.physH, x0, y0)
		bx, by := transform(c.rotation, c.physW, c.physH, x1-1, y1-1)
		if ax > bx {
			ax, bx = bx, ax
		}
		if ay > by {
			ay, by = by, ay
		}
		c.filler.FillRect(ax, ay, bx-ax+1, by-ay+1, col)
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			tx, ty := transform(c.rotation, c.physW, c.physH, px, py)
			c.sink.SetPixel(tx, ty, col)
		}
	}
}

// outside reports whether the box [x0,x1]x[y0,y1] misses the canvas entirely.
func (c *Canvas) outside(x0, y0, x1, y1 int) bool {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return x1 < 0 || y1 < 0 || x0 >= c.width || y0 >= c.height
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
