package font

import (
	"image/color"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/encoding/charmap"
)

// Wide7x13 is the X11 7x13 fixed font from golang.org/x/image, converted to a
// row-major table covering Latin-1 (0x20..0xFF). Codes the face lacks are blank.
var Wide7x13 = fromBasicFace("7x13", basicfont.Face7x13, 0x20, 0xFF, charmap.ISO8859_1)

// fromBasicFace rasterizes the glyph masks of a basicfont face for codes
// first..last, read as Latin-1 runes.
func fromBasicFace(name string, face *basicfont.Face, first, last byte, cm *charmap.Charmap) *Font {
	f := &Font{
		Name:     name,
		Width:    uint8(face.Width),
		Height:   uint8(face.Height),
		Gap:      uint8(face.Advance - face.Width),
		First:    first,
		Last:     last,
		Encoding: RowMajor,
		Charmap:  cm,
	}
	bpr := (face.Width + 7) / 8
	f.Stride = bpr * face.Height
	f.Data = make([]byte, (int(last)-int(first)+1)*f.Stride)

	mb := face.Mask.Bounds()
	for code := int(first); code <= int(last); code++ {
		idx, ok := basicGlyphIndex(face, rune(code))
		if !ok {
			continue
		}
		dst := f.Data[(code-int(first))*f.Stride:]
		y0 := mb.Min.Y + idx*face.Height
		for row := 0; row < face.Height; row++ {
			for col := 0; col < face.Width; col++ {
				a := color.AlphaModel.Convert(face.Mask.At(mb.Min.X+col, y0+row)).(color.Alpha)
				if a.A >= 0x80 {
					dst[row*bpr+col/8] |= 0x80 >> (col % 8)
				}
			}
		}
	}
	return f
}

func basicGlyphIndex(face *basicfont.Face, r rune) (int, bool) {
	for _, rg := range face.Ranges {
		if r >= rg.Low && r < rg.High {
			return rg.Offset + int(r-rg.Low), true
		}
	}
	return 0, false
}
