package gfx

// DrawRect outlines the rectangle spanned by two opposite corners (inclusive).
func (c *Canvas) DrawRect(x0, y0, x1, y1 int, col Color) Status {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return c.DrawRectWH(x0, y0, x1-x0+1, y1-y0+1, col)
}

// FillRect fills the rectangle spanned by two opposite corners (inclusive).
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col Color) Status {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return c.FillRectangle(x0, y0, x1-x0+1, y1-y0+1, col)
}

// DrawRectWH outlines a w x h rectangle with its top-left corner at (x, y).
func (c *Canvas) DrawRectWH(x, y, w, h int, col Color) Status {
	if st := c.checkBox(x, y, w, h); st != Success {
		return st
	}
	c.DrawFastHLine(x, y, w, col)
	if h > 1 {
		c.DrawFastHLine(x, y+h-1, w, col)
	}
	if h > 2 {
		c.DrawFastVLine(x, y+1, h-2, col)
		if w > 1 {
			c.DrawFastVLine(x+w-1, y+1, h-2, col)
		}
	}
	return Success
}

// FillRectangle fills a w x h rectangle with its top-left corner at (x, y),
// one horizontal span per row.
func (c *Canvas) FillRectangle(x, y, w, h int, col Color) Status {
	if st := c.checkBox(x, y, w, h); st != Success {
		return st
	}
	if c.filler != nil {
		c.fillClipped(x, y, w, h, col)
		return Success
	}
	for i := 0; i < h; i++ {
		c.DrawFastHLine(x, y+i, w, col)
	}
	return Success
}

// DrawRoundRect outlines a rectangle with quarter-circle corners. The radius is
// clamped to half the shorter side.
func (c *Canvas) DrawRoundRect(x, y, w, h, r int, col Color) Status {
	if st := c.checkBox(x, y, w, h); st != Success {
		return st
	}
	r = clampRadius(w, h, r)
	if r < 1 {
		return c.DrawRectWH(x, y, w, h, col)
	}
	c.DrawFastHLine(x+r, y, w-2*r, col)
	c.DrawFastHLine(x+r, y+h-1, w-2*r, col)
	c.DrawFastVLine(x, y+r, h-2*r, col)
	c.DrawFastVLine(x+w-1, y+r, h-2*r, col)
	c.DrawCircleHelper(x+r, y+r, r, CornerTopLeft, col)
	c.DrawCircleHelper(x+w-r-1, y+r, r, CornerTopRight, col)
	c.DrawCircleHelper(x+w-r-1, y+h-r-1, r, CornerBottomRight, col)
	c.DrawCircleHelper(x+r, y+h-r-1, r, CornerBottomLeft, col)
	return Success
}

// FillRoundRect fills a rectangle with quarter-circle corners.
func (c *Canvas) FillRoundRect(x, y, w, h, r int, col Color) Status {
	if st := c.checkBox(x, y, w, h); st != Success {
		return st
	}
	r = clampRadius(w, h, r)
	if r < 1 {
		return c.FillRectangle(x, y, w, h, col)
	}
	c.FillRectangle(x, y+r, w, h-2*r, col)
	c.FillCircleHelper(x+r, y+r, r, SideTop, w-2*r-1, col)
	c.FillCircleHelper(x+r, y+h-r-1, r, SideBottom, w-2*r-1, col)
	return Success
}

// checkBox validates a corner+size box against the canvas.
func (c *Canvas) checkBox(x, y, w, h int) Status {
	if c.sink == nil {
		return BufferEmpty
	}
	if w <= 0 || h <= 0 {
		return ShapeSize
	}
	if c.outside(x, y, x+w-1, y+h-1) {
		return ScreenBounds
	}
	return Success
}

func clampRadius(w, h, r int) int {
	if r < 0 {
		return 0
	}
	if m := minInt(w, h) / 2; r > m {
		return m
	}
	return r
}
