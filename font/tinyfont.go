package font

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonts implement tinyfont.Fonter so tinyfont.WriteLine and tinyterm can draw them
// on any drivers.Displayer.
var _ tinyfont.Fonter = (*Font)(nil)

type glyph struct {
	f    *Font
	r    rune
	code byte
}

// GetYAdvance implements tinyfont.Fonter.
func (f *Font) GetYAdvance() uint8 { return f.Height }

// GetGlyph implements tinyfont.Fonter. Runes without a glyph draw as '?' when the
// font has one.
func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	code, _ := f.Code(r)
	return glyph{f: f, r: r, code: code}
}

// Draw paints the set pixels with the baseline at y, like the tinyfont fonts.
func (g glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	bm := g.f.Glyph(g.code)
	if bm == nil {
		return
	}
	top := y - int16(g.f.Height) + 1
	for row := 0; row < int(g.f.Height); row++ {
		for col := 0; col < int(g.f.Width); col++ {
			if g.f.Pixel(bm, col, row) {
				display.SetPixel(x+int16(col), top+int16(row), c)
			}
		}
	}
}

func (g glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    g.f.Width,
		Height:   g.f.Height,
		XAdvance: uint8(g.f.CellWidth()),
		XOffset:  0,
		YOffset:  -int8(g.f.Height - 1),
	}
}
