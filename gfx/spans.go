package gfx

import "slices"

// spanSet gathers the pixels of a composite shape as horizontal runs so that
// every pixel is written exactly once, which keeps Inverse from cancelling
// itself where the parts overlap.
type spanSet struct {
	rows map[int][][2]int
}

func newSpanSet() *spanSet {
	return &spanSet{rows: make(map[int][][2]int)}
}

// add records w pixels to the right of (x, y).
func (s *spanSet) add(x, y, w int) {
	if w <= 0 {
		return
	}
	s.rows[y] = append(s.rows[y], [2]int{x, x + w - 1})
}

func (s *spanSet) point(x, y int) { s.add(x, y, 1) }

// line records the Bresenham line from (x0, y0) to (x1, y1).
func (s *spanSet) line(x0, y0, x1, y1 int) {
	linePoints(x0, y0, x1, y1, s.point)
}

// draw merges overlapping or touching runs per row and fills them.
func (s *spanSet) draw(c *Canvas, col Color) {
	ys := make([]int, 0, len(s.rows))
	for y := range s.rows {
		ys = append(ys, y)
	}
	slices.Sort(ys)
	for _, y := range ys {
		runs := s.rows[y]
		slices.SortFunc(runs, func(a, b [2]int) int { return a[0] - b[0] })
		cur := runs[0]
		for _, r := range runs[1:] {
			if r[0] <= cur[1]+1 {
				cur[1] = maxInt(cur[1], r[1])
				continue
			}
			c.DrawFastHLine(cur[0], y, cur[1]-cur[0]+1, col)
			cur = r
		}
		c.DrawFastHLine(cur[0], y, cur[1]-cur[0]+1, col)
	}
}

// linePoints walks the integer Bresenham line between two points, endpoints included.
func linePoints(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}
