package gfx

import "math"

// DrawTriangle outlines a triangle. Shared vertices are written once.
func (c *Canvas) DrawTriangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	set := newSpanSet()
	set.line(x0, y0, x1, y1)
	set.line(x1, y1, x2, y2)
	set.line(x2, y2, x0, y0)
	set.draw(c, col)
}

// FillTriangle fills a triangle by sorting the vertices on y and walking the two
// edges of the upper (flat-bottom) and lower (flat-top) parts one scanline at a time.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	if c.outside(minInt(x0, minInt(x1, x2)), minInt(y0, minInt(y1, y2)), maxInt(x0, maxInt(x1, x2)), maxInt(y0, maxInt(y1, y2))) {
		return
	}
	triangleSpans(x0, y0, x1, y1, x2, y2, func(x, y, w int) { c.DrawFastHLine(x, y, w, col) })
}

// triangleSpans emits one horizontal run per scanline of the triangle.
func triangleSpans(x0, y0, x1, y1, x2, y2 int, span func(x, y, w int)) {
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if y0 == y2 {
		a := minInt(x0, minInt(x1, x2))
		b := maxInt(x0, maxInt(x1, x2))
		span(a, y0, b-a+1)
		return
	}

	dx01, dy01 := x1-x0, y1-y0
	dx02, dy02 := x2-x0, y2-y0
	dx12, dy12 := x2-x1, y2-y1
	sa, sb := 0, 0

	// Include scanline y1 in the upper part only when the lower part is flat.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	y := y0
	for ; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		span(a, y, b-a+1)
	}

	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		span(a, y, b-a+1)
	}
}

// DrawQuadrilateral outlines four vertices connected in order.
func (c *Canvas) DrawQuadrilateral(x0, y0, x1, y1, x2, y2, x3, y3 int, col Color) {
	set := newSpanSet()
	set.line(x0, y0, x1, y1)
	set.line(x1, y1, x2, y2)
	set.line(x2, y2, x3, y3)
	set.line(x3, y3, x0, y0)
	set.draw(c, col)
}

// FillQuadrilateral fills four vertices as two triangles split on the 0-2 diagonal.
// The diagonal is written once.
func (c *Canvas) FillQuadrilateral(x0, y0, x1, y1, x2, y2, x3, y3 int, col Color) {
	if c.outside(minInt(minInt(x0, x1), minInt(x2, x3)), minInt(minInt(y0, y1), minInt(y2, y3)),
		maxInt(maxInt(x0, x1), maxInt(x2, x3)), maxInt(maxInt(y0, y1), maxInt(y2, y3))) {
		return
	}
	set := newSpanSet()
	triangleSpans(x0, y0, x1, y1, x2, y2, set.add)
	triangleSpans(x0, y0, x2, y2, x3, y3, set.add)
	set.draw(c, col)
}

// DrawPolygon draws a regular polygon inscribed in a circle of the given diameter,
// turned by rotationDeg. Filled polygons are a fan of triangles from the centre,
// merged per scanline before drawing.
func (c *Canvas) DrawPolygon(cx, cy, sides, diameter int, rotationDeg float64, fill bool, col Color) {
	if sides < 3 || diameter <= 0 {
		return
	}
	r := float64(diameter) / 2
	if c.outside(cx-int(r)-1, cy-int(r)-1, cx+int(r)+1, cy+int(r)+1) {
		return
	}
	step := 2 * math.Pi / float64(sides)
	rot := rotationDeg * math.Pi / 180
	vertex := func(i int) (int, int) {
		a := rot + float64(i)*step
		return cx + roundInt(r*math.Cos(a)), cy + roundInt(r*math.Sin(a))
	}

	set := newSpanSet()
	x0, y0 := vertex(0)
	for i := 1; i <= sides; i++ {
		x1, y1 := vertex(i % sides)
		if fill {
			triangleSpans(cx, cy, x0, y0, x1, y1, set.add)
		} else {
			set.line(x0, y0, x1, y1)
		}
		x0, y0 = x1, y1
	}
	set.draw(c, col)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
