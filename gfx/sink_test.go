package gfx

// memSink is a color frame store that counts writes and records stray ones.
type memSink struct {
	w, h   int
	pix    []Color
	writes int
	stray  int
}

func newMemSink(w, h int) *memSink {
	return &memSink{w: w, h: h, pix: make([]Color, w*h)}
}

func (s *memSink) Size() (int, int) { return s.w, s.h }

func (s *memSink) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		s.stray++
		return
	}
	s.pix[y*s.w+x] = c
	s.writes++
}

func (s *memSink) Pixel(x, y int) Color { return s.pix[y*s.w+x] }

func (s *memSink) fill(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

func (s *memSink) count(c Color) int {
	n := 0
	for _, p := range s.pix {
		if p == c {
			n++
		}
	}
	return n
}

func (s *memSink) snapshot() []Color { return append([]Color(nil), s.pix...) }

// fillSink adds a rectangle fill to memSink.
type fillSink struct {
	*memSink
	fills int
}

func (s *fillSink) FillRect(x, y, w, h int, c Color) {
	s.fills++
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.SetPixel(xx, yy, c)
		}
	}
}

// bicolorSink is a 1-bit frame store: Black clears, Inverse toggles, anything
// else sets.
type bicolorSink struct {
	w, h int
	on   []bool
}

func newBicolorSink(w, h int) *bicolorSink {
	return &bicolorSink{w: w, h: h, on: make([]bool, w*h)}
}

func (s *bicolorSink) Size() (int, int) { return s.w, s.h }

func (s *bicolorSink) SetPixel(x, y int, c Color) {
	i := y*s.w + x
	switch {
	case c == Inverse:
		s.on[i] = !s.on[i]
	default:
		s.on[i] = c.IsOn()
	}
}

func (s *bicolorSink) Pixel(x, y int) Color {
	if s.on[y*s.w+x] {
		return White
	}
	return Black
}
