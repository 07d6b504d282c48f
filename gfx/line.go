package gfx

// DrawLine draws a straight line between two points with integer Bresenham.
// Horizontal and vertical lines take the fast paths.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		c.DrawFastHLine(x0, y0, x1-x0+1, col)
		return
	}
	if x0 == x1 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		c.DrawFastVLine(x0, y0, y1-y0+1, col)
		return
	}
	if c.outside(x0, y0, x1, y1) {
		return
	}

	linePoints(x0, y0, x1, y1, func(x, y int) { c.setPixel(x, y, col) })
}

// DrawFastHLine draws w pixels to the right of (x, y).
func (c *Canvas) DrawFastHLine(x, y, w int, col Color) {
	if w <= 0 || y < 0 || y >= c.height {
		return
	}
	c.fillClipped(x, y, w, 1, col)
}

// DrawFastVLine draws h pixels below (x, y).
func (c *Canvas) DrawFastVLine(x, y, h int, col Color) {
	if h <= 0 || x < 0 || x >= c.width {
		return
	}
	c.fillClipped(x, y, 1, h, col)
}
