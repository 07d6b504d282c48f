package gfx

import "rdl/font"

type textState struct {
	font *font.Font
	x, y int

	fg, bg      Color
	invert      bool
	wrap        bool
	transparent bool

	writeErr bool
}

func newTextState(f *font.Font) textState {
	return textState{font: f, fg: White, bg: Black, wrap: true}
}

// SetFont switches the active font. The cursor and pixels already drawn are kept.
func (c *Canvas) SetFont(f *font.Font) Status {
	if f == nil {
		return Nullptr
	}
	c.text.font = f
	return Success
}

// Font returns the active font.
func (c *Canvas) Font() *font.Font { return c.text.font }

// SetCursor moves the print cursor.
func (c *Canvas) SetCursor(x, y int) { c.text.x, c.text.y = x, y }

// Cursor returns the print cursor.
func (c *Canvas) Cursor() (x, y int) { return c.text.x, c.text.y }

// SetTextColor sets the glyph foreground and background.
func (c *Canvas) SetTextColor(fg, bg Color) { c.text.fg, c.text.bg = fg, bg }

// TextColor returns the colors set by SetTextColor.
func (c *Canvas) TextColor() (fg, bg Color) { return c.text.fg, c.text.bg }

// SetInvertFont swaps foreground and background for glyphs drawn from now on.
func (c *Canvas) SetInvertFont(invert bool) { c.text.invert = invert }

// InvertFont reports the invert setting.
func (c *Canvas) InvertFont() bool { return c.text.invert }

// SetTextWrap controls whether printing wraps at the right edge.
func (c *Canvas) SetTextWrap(wrap bool) { c.text.wrap = wrap }

// SetTextTransparent leaves background pixels of glyph cells untouched.
func (c *Canvas) SetTextTransparent(on bool) { c.text.transparent = on }

// WriteChar draws one glyph cell with its top-left corner at (x, y).
func (c *Canvas) WriteChar(x, y int, code byte) Status {
	if c.sink == nil {
		return BufferEmpty
	}
	f := c.text.font
	if !f.Contains(code) {
		return CharFontASCIIRange
	}
	cw, ch := f.CellWidth(), f.CellHeight()
	if x < 0 || y < 0 || x+cw > c.width || y+ch > c.height {
		return CharScreenBounds
	}
	glyph := f.Glyph(code)
	if glyph == nil {
		return CharFontASCIIRange
	}

	fg, bg := c.text.fg, c.text.bg
	if c.text.invert {
		fg, bg = bg, fg
	}
	for row := 0; row < ch; row++ {
		for col := 0; col < cw; col++ {
			if f.Pixel(glyph, col, row) {
				c.setPixel(x+col, y+row, fg)
			} else if !c.text.transparent {
				c.setPixel(x+col, y+row, bg)
			}
		}
	}
	return Success
}

// WriteCharString draws s starting at (x, y), wrapping to the next line at the
// right edge when text wrap is on. Every byte is attempted; the first failure is
// returned.
func (c *Canvas) WriteCharString(x, y int, s string) Status {
	st := Success
	for i := 0; i < len(s); i++ {
		x, y = c.wrapAt(x, y)
		st = firstFailure(st, c.WriteChar(x, y, s[i]))
		x += c.text.font.CellWidth()
	}
	return st
}

// WriteCharBytes is WriteCharString for a byte buffer; nil is CharArrayNullptr.
func (c *Canvas) WriteCharBytes(x, y int, b []byte) Status {
	if b == nil {
		return CharArrayNullptr
	}
	return c.WriteCharString(x, y, string(b))
}

// wrapAt returns the position the next glyph goes to when it starts at (x, y).
func (c *Canvas) wrapAt(x, y int) (int, int) {
	if c.text.wrap && x > 0 && x+c.text.font.CellWidth() > c.width {
		return 0, y + c.text.font.CellHeight()
	}
	return x, y
}
