package gfx

import "math"

// ArcAngleMax is the angle of a full turn for the arc primitives.
const ArcAngleMax = 360.0

// SetArcParams sets where 0 degrees points for the arc and angle-line primitives,
// as a counter-clockwise offset from the positive x axis.
func (c *Canvas) SetArcParams(offsetDeg float64) { c.arcOffset = offsetDeg }

// ArcOffset returns the offset set by SetArcParams.
func (c *Canvas) ArcOffset() float64 { return c.arcOffset }

// arcPoint returns the point at radius r and angle deg (counter-clockwise as seen on
// screen, so y decreases as the angle grows from 0 to 90).
func (c *Canvas) arcPoint(cx, cy int, r, deg float64) (int, int) {
	a := (deg + c.arcOffset) * math.Pi / 180
	return cx + roundInt(r*math.Cos(a)), cy - roundInt(r*math.Sin(a))
}

// arcSpan normalises start/end so that end > start and returns the step that keeps
// consecutive points at radius r no more than one pixel apart.
func arcSpan(startDeg, endDeg, r float64) (start, end, step float64, ok bool) {
	if r <= 0 || startDeg == endDeg {
		return 0, 0, 0, false
	}
	start = math.Mod(startDeg, ArcAngleMax)
	end = math.Mod(endDeg, ArcAngleMax)
	if start < 0 {
		start += ArcAngleMax
	}
	if end < 0 {
		end += ArcAngleMax
	}
	if end <= start {
		end += ArcAngleMax
	}
	step = 180 / (math.Pi * r)
	if step > 1 {
		step = 1
	}
	return start, end, step, true
}

// DrawSimpleArc draws a one-pixel arc from startDeg to endDeg.
func (c *Canvas) DrawSimpleArc(cx, cy, radius int, startDeg, endDeg float64, col Color) {
	if c.outside(cx-radius, cy-radius, cx+radius, cy+radius) {
		return
	}
	start, end, step, ok := arcSpan(startDeg, endDeg, float64(radius))
	if !ok {
		return
	}
	set := newSpanSet()
	for a := start; a < end; a += step {
		set.point(c.arcPoint(cx, cy, float64(radius), a))
	}
	set.point(c.arcPoint(cx, cy, float64(radius), end))
	set.draw(c, col)
}

// DrawArc draws an arc band of the given thickness, growing inwards from radius,
// as radial segments so that the band has no gaps. Overlapping segments are
// merged so each pixel is written once.
func (c *Canvas) DrawArc(cx, cy, radius, thickness int, startDeg, endDeg float64, col Color) {
	if thickness <= 1 {
		c.DrawSimpleArc(cx, cy, radius, startDeg, endDeg, col)
		return
	}
	if c.outside(cx-radius, cy-radius, cx+radius, cy+radius) {
		return
	}
	start, end, step, ok := arcSpan(startDeg, endDeg, float64(radius))
	if !ok {
		return
	}
	inner := float64(maxInt(radius-thickness+1, 0))
	set := newSpanSet()
	seg := func(a float64) {
		x0, y0 := c.arcPoint(cx, cy, inner, a)
		x1, y1 := c.arcPoint(cx, cy, float64(radius), a)
		set.line(x0, y0, x1, y1)
	}
	for a := start; a < end; a += step {
		seg(a)
	}
	seg(end)
	set.draw(c, col)
}

// DrawLineAngle draws a radial line from centre (x, y): it starts start pixels out,
// runs length pixels, and points at angleDeg+offsetDeg (plus the arc offset).
// Used for clock hands, gauges and sweep indicators.
func (c *Canvas) DrawLineAngle(x, y int, angleDeg float64, start, length int, offsetDeg float64, col Color) {
	if length <= 0 {
		return
	}
	a := angleDeg + offsetDeg
	x0, y0 := c.arcPoint(x, y, float64(start), a)
	x1, y1 := c.arcPoint(x, y, float64(start+length), a)
	c.DrawLine(x0, y0, x1, y1, col)
}

// DrawDotGrid sets single pixels every gap pixels inside the w x h box at (x, y).
func (c *Canvas) DrawDotGrid(x, y, w, h, gap int, col Color) {
	if gap <= 0 || w <= 0 || h <= 0 || c.outside(x, y, x+w-1, y+h-1) {
		return
	}
	for py := y; py < y+h; py += gap {
		for px := x; px < x+w; px += gap {
			c.setPixel(px, py, col)
		}
	}
}
