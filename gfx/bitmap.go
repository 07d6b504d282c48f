package gfx

// BitmapAddr is the bit packing of 1-bit bitmap sources.
type BitmapAddr uint8

const (
	// AddrHorizontal: each byte is 8 pixels of a row, MSB leftmost (image2cpp, XBM
	// after bit reversal). Width must be a multiple of 8.
	AddrHorizontal BitmapAddr = iota
	// AddrVertical: each byte is 8 pixels of a column, bit 0 on top, in pages of w
	// bytes (SSD1306/PCD8544 layout). Height must be a multiple of 8.
	AddrVertical
)

func (a BitmapAddr) String() string {
	switch a {
	case AddrHorizontal:
		return "horizontal"
	case AddrVertical:
		return "vertical"
	}
	return "unknown"
}

// SetDrawBitmapAddr selects how DrawBitmap and DrawSprite1 unpack their source.
// The mode stays in effect until changed again.
func (c *Canvas) SetDrawBitmapAddr(mode BitmapAddr) { c.bitmapAddr = mode }

// DrawBitmapAddr returns the current 1-bit addressing mode.
func (c *Canvas) DrawBitmapAddr() BitmapAddr { return c.bitmapAddr }

// DrawBitmap blits a 1-bit bitmap: set bits take fg, clear bits take bg.
func (c *Canvas) DrawBitmap(x, y int, data []byte, w, h int, fg, bg Color) Status {
	if st := c.checkMono(x, y, data, w, h); st != Success {
		return st
	}
	c.blitMono(x, y, data, w, h, func(px, py int, on bool) {
		if on {
			c.setPixel(px, py, fg)
		} else {
			c.setPixel(px, py, bg)
		}
	})
	return Success
}

// DrawSprite1 blits a 1-bit bitmap leaving clear bits untouched.
func (c *Canvas) DrawSprite1(x, y int, data []byte, w, h int, fg Color) Status {
	if st := c.checkMono(x, y, data, w, h); st != Success {
		return st
	}
	c.blitMono(x, y, data, w, h, func(px, py int, on bool) {
		if on {
			c.setPixel(px, py, fg)
		}
	})
	return Success
}

// DrawIcon draws an 8 pixel tall icon of w vertical columns, one byte per column
// with bit 0 on top, independent of the addressing mode.
func (c *Canvas) DrawIcon(x, y, w int, fg, bg Color, data []byte) Status {
	if st := c.checkBlit(x, y, data, w, 8); st != Success {
		return st
	}
	if len(data) != w {
		return Size
	}
	for col := 0; col < w; col++ {
		b := data[col]
		for row := 0; row < 8; row++ {
			if b&(1<<row) != 0 {
				c.setPixel(x+col, y+row, fg)
			} else {
				c.setPixel(x+col, y+row, bg)
			}
		}
	}
	return Success
}

// DrawBitmap16 blits big-endian RGB565 source pixels.
func (c *Canvas) DrawBitmap16(x, y int, data []byte, w, h int) Status {
	if st := c.checkColor(x, y, data, w, h, 2); st != Success {
		return st
	}
	i := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c.setPixel(x+col, y+row, Color(uint16(data[i])<<8|uint16(data[i+1])))
			i += 2
		}
	}
	return Success
}

// DrawSprite blits big-endian RGB565 source pixels, skipping those equal to key.
func (c *Canvas) DrawSprite(x, y int, data []byte, w, h int, key Color) Status {
	if st := c.checkColor(x, y, data, w, h, 2); st != Success {
		return st
	}
	i := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p := Color(uint16(data[i])<<8 | uint16(data[i+1]))
			i += 2
			if p == key {
				continue
			}
			c.setPixel(x+col, y+row, p)
		}
	}
	return Success
}

// DrawBitmap24 blits RGB888 source pixels, truncated to RGB565.
func (c *Canvas) DrawBitmap24(x, y int, data []byte, w, h int) Status {
	if st := c.checkColor(x, y, data, w, h, 3); st != Success {
		return st
	}
	i := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c.setPixel(x+col, y+row, RGB(data[i], data[i+1], data[i+2]))
			i += 3
		}
	}
	return Success
}

// blitMono walks a 1-bit source in the current addressing mode.
func (c *Canvas) blitMono(x, y int, data []byte, w, h int, put func(px, py int, on bool)) {
	switch c.bitmapAddr {
	case AddrVertical:
		for row := 0; row < h; row++ {
			page := (row / 8) * w
			mask := byte(1) << (row % 8)
			for col := 0; col < w; col++ {
				put(x+col, y+row, data[page+col]&mask != 0)
			}
		}
	default:
		bpr := w / 8
		for row := 0; row < h; row++ {
			line := data[row*bpr : (row+1)*bpr]
			for col := 0; col < w; col++ {
				put(x+col, y+row, line[col/8]&(0x80>>(col%8)) != 0)
			}
		}
	}
}

func (c *Canvas) checkMono(x, y int, data []byte, w, h int) Status {
	if st := c.checkBlit(x, y, data, w, h); st != Success {
		return st
	}
	switch c.bitmapAddr {
	case AddrVertical:
		if h%8 != 0 {
			return HorizontalSize
		}
	default:
		if w%8 != 0 {
			return HorizontalSize
		}
	}
	if len(data) != w*h/8 {
		return Size
	}
	return Success
}

func (c *Canvas) checkColor(x, y int, data []byte, w, h, bpp int) Status {
	if st := c.checkBlit(x, y, data, w, h); st != Success {
		return st
	}
	if len(data) != w*h*bpp {
		return Size
	}
	return Success
}

// checkBlit runs the checks shared by every blit. Unlike primitives, a blit that
// does not fit entirely on the canvas is rejected.
func (c *Canvas) checkBlit(x, y int, data []byte, w, h int) Status {
	if c.sink == nil {
		return BufferEmpty
	}
	if data == nil {
		return Nullptr
	}
	if w <= 0 || h <= 0 {
		return ShapeSize
	}
	if x < 0 || y < 0 || x+w > c.width || y+h > c.height {
		return ScreenBounds
	}
	return Success
}
