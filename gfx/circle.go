package gfx

// Corner selects quarter circles for DrawCircleHelper.
type Corner uint8

const (
	CornerTopLeft Corner = 1 << iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// Side selects half circles for FillCircleHelper.
type Side uint8

const (
	SideTop Side = 1 << iota
	SideBottom
)

// DrawCircle outlines a circle with the midpoint algorithm.
func (c *Canvas) DrawCircle(x0, y0, r int, col Color) {
	if r <= 0 || c.outside(x0-r, y0-r, x0+r, y0+r) {
		return
	}
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	c.setPixel(x0, y0+r, col)
	c.setPixel(x0, y0-r, col)
	c.setPixel(x0+r, y0, col)
	c.setPixel(x0-r, y0, col)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		// Past the diagonal the octants only repeat earlier points.
		if x > y {
			break
		}

		c.setPixel(x0+x, y0+y, col)
		c.setPixel(x0-x, y0+y, col)
		c.setPixel(x0+x, y0-y, col)
		c.setPixel(x0-x, y0-y, col)
		if x == y {
			continue
		}
		c.setPixel(x0+y, y0+x, col)
		c.setPixel(x0-y, y0+x, col)
		c.setPixel(x0+y, y0-x, col)
		c.setPixel(x0-y, y0-x, col)
	}
}

// DrawCircleHelper outlines the selected quarter circles.
func (c *Canvas) DrawCircleHelper(x0, y0, r int, corners Corner, col Color) {
	if r <= 0 {
		return
	}
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		if x > y {
			break
		}
		diag := x == y
		if corners&CornerBottomRight != 0 {
			c.setPixel(x0+x, y0+y, col)
			if !diag {
				c.setPixel(x0+y, y0+x, col)
			}
		}
		if corners&CornerTopRight != 0 {
			c.setPixel(x0+x, y0-y, col)
			if !diag {
				c.setPixel(x0+y, y0-x, col)
			}
		}
		if corners&CornerBottomLeft != 0 {
			c.setPixel(x0-x, y0+y, col)
			if !diag {
				c.setPixel(x0-y, y0+x, col)
			}
		}
		if corners&CornerTopLeft != 0 {
			c.setPixel(x0-x, y0-y, col)
			if !diag {
				c.setPixel(x0-y, y0-x, col)
			}
		}
	}
}

// FillCircle fills a circle using horizontal spans mirrored four ways per step.
func (c *Canvas) FillCircle(x0, y0, r int, col Color) {
	if r <= 0 || c.outside(x0-r, y0-r, x0+r, y0+r) {
		return
	}
	c.DrawFastHLine(x0-r, y0, 2*r+1, col)
	c.FillCircleHelper(x0, y0, r, SideTop|SideBottom, 0, col)
}

// FillCircleHelper fills the selected halves of a circle. delta stretches every
// span to the right, which turns two half circles into a rounded bar.
func (c *Canvas) FillCircleHelper(x0, y0, r int, sides Side, delta int, col Color) {
	if r <= 0 {
		return
	}
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r
	px := x
	py := y

	delta++

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		// Skip the span that would redraw the diagonal twice.
		if x < y+1 {
			if sides&SideTop != 0 {
				c.DrawFastHLine(x0-y, y0-x, 2*y+delta, col)
			}
			if sides&SideBottom != 0 {
				c.DrawFastHLine(x0-y, y0+x, 2*y+delta, col)
			}
		}
		if y != py {
			if sides&SideTop != 0 {
				c.DrawFastHLine(x0-px, y0-py, 2*px+delta, col)
			}
			if sides&SideBottom != 0 {
				c.DrawFastHLine(x0-px, y0+py, 2*px+delta, col)
			}
			py = y
		}
		px = x
	}
}

// DrawEllipse draws an axis-aligned ellipse with semi-axes rx and ry using the
// two-region midpoint algorithm. Fills are drawn as one span per row.
func (c *Canvas) DrawEllipse(cx, cy, rx, ry int, col Color, fill bool) {
	if rx <= 0 || ry <= 0 || c.outside(cx-rx, cy-ry, cx+rx, cy+ry) {
		return
	}
	// half[y] is the widest x seen on row cy+y; x only grows as y falls.
	var half []int
	if fill {
		half = make([]int, ry+1)
	}
	plot := func(x, y int) {
		if fill {
			half[y] = x
			return
		}
		c.setPixel(cx+x, cy+y, col)
		if x != 0 {
			c.setPixel(cx-x, cy+y, col)
		}
		if y != 0 {
			c.setPixel(cx+x, cy-y, col)
			if x != 0 {
				c.setPixel(cx-x, cy-y, col)
			}
		}
	}

	rx2 := int64(rx) * int64(rx)
	ry2 := int64(ry) * int64(ry)
	x := 0
	y := ry
	dx := int64(0)
	dy := 2 * rx2 * int64(y)

	// Region 1: slope above -1.
	d1 := ry2 - rx2*int64(ry) + rx2/4
	for dx < dy {
		plot(x, y)
		x++
		dx += 2 * ry2
		if d1 < 0 {
			d1 += dx + ry2
		} else {
			y--
			dy -= 2 * rx2
			d1 += dx - dy + ry2
		}
	}

	// Region 2.
	d2 := ry2*(int64(x)*int64(x)+int64(x)) + ry2/4 + rx2*(int64(y-1)*int64(y-1)) - rx2*ry2
	for y >= 0 {
		plot(x, y)
		y--
		dy -= 2 * rx2
		if d2 > 0 {
			d2 += rx2 - dy
		} else {
			x++
			dx += 2 * ry2
			d2 += dx - dy + rx2
		}
	}

	for y, hx := range half {
		c.DrawFastHLine(cx-hx, cy+y, 2*hx+1, col)
		if y != 0 {
			c.DrawFastHLine(cx-hx, cy-y, 2*hx+1, col)
		}
	}
}
