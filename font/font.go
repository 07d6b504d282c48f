// Package font holds the fixed-cell bitmap fonts used by the gfx text engine.
//
// A Font is an immutable descriptor over a glyph table. Several fonts coexist and
// are shared read-only between canvases; switching fonts never touches pixels that
// were already drawn.
package font

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Encoding is the bit layout of one glyph in the table.
type Encoding uint8

const (
	// RowMajor stores ceil(Width/8) bytes per row, MSB leftmost.
	RowMajor Encoding = iota
	// ColumnMajor stores ceil(Height/8) bytes per column, bit 0 on top.
	ColumnMajor
)

// Font describes a fixed-width bitmap font covering codes First..Last.
type Font struct {
	Name string

	Width  uint8 // glyph bitmap columns
	Height uint8 // glyph bitmap rows
	Gap    uint8 // blank columns after every glyph

	First byte
	Last  byte

	Encoding Encoding
	Stride   int // bytes per glyph
	Data     []byte

	// Charmap maps runes to codes for fonts beyond ASCII. Nil means ASCII only.
	Charmap *charmap.Charmap
}

// CellWidth is the horizontal advance of one character.
func (f *Font) CellWidth() int { return int(f.Width) + int(f.Gap) }

// CellHeight is the line height.
func (f *Font) CellHeight() int { return int(f.Height) }

// Contains reports whether code has a glyph in this font.
func (f *Font) Contains(code byte) bool { return code >= f.First && code <= f.Last }

// Glyph returns the table slice for code, or nil if the code is out of range.
func (f *Font) Glyph(code byte) []byte {
	if !f.Contains(code) {
		return nil
	}
	off := int(code-f.First) * f.Stride
	if off < 0 || off+f.Stride > len(f.Data) {
		return nil
	}
	return f.Data[off : off+f.Stride]
}

// Pixel reports whether the glyph pixel at (col, row) is set.
func (f *Font) Pixel(glyph []byte, col, row int) bool {
	if col < 0 || row < 0 || col >= int(f.Width) || row >= int(f.Height) {
		return false
	}
	switch f.Encoding {
	case ColumnMajor:
		bpc := (int(f.Height) + 7) / 8
		i := col*bpc + row/8
		return i < len(glyph) && glyph[i]&(1<<(row%8)) != 0
	default:
		bpr := (int(f.Width) + 7) / 8
		i := row*bpr + col/8
		return i < len(glyph) && glyph[i]&(0x80>>(col%8)) != 0
	}
}

// Code maps r to a font code. ok is false when the rune has no code in the
// font's character set; the code is still in the font's range.
func (f *Font) Code(r rune) (code byte, ok bool) {
	if f.Charmap != nil {
		code, ok = f.Charmap.EncodeRune(r)
	} else if r >= 0 && r < 0x80 {
		code, ok = byte(r), true
	}
	if ok && f.Contains(code) {
		return code, true
	}
	if f.Contains('?') {
		return '?', false
	}
	return f.First, false
}

// Validate checks that the table matches the declared geometry.
func (f *Font) Validate() error {
	if f == nil {
		return errors.New("font: nil")
	}
	if f.Width == 0 || f.Height == 0 {
		return errors.Errorf("font %s: empty glyph size %dx%d", f.Name, f.Width, f.Height)
	}
	if f.Last < f.First {
		return errors.Errorf("font %s: last %#x before first %#x", f.Name, f.Last, f.First)
	}
	var need int
	switch f.Encoding {
	case ColumnMajor:
		need = int(f.Width) * ((int(f.Height) + 7) / 8)
	case RowMajor:
		need = int(f.Height) * ((int(f.Width) + 7) / 8)
	default:
		return errors.Errorf("font %s: unknown encoding %d", f.Name, f.Encoding)
	}
	if f.Stride < need {
		return errors.Errorf("font %s: stride %d below %d", f.Name, f.Stride, need)
	}
	glyphs := int(f.Last) - int(f.First) + 1
	if len(f.Data) < glyphs*f.Stride {
		return errors.Errorf("font %s: table has %d bytes, need %d", f.Name, len(f.Data), glyphs*f.Stride)
	}
	return nil
}

// All lists the built-in fonts.
func All() []*Font {
	return []*Font{Default, Tiny, Wide7x13}
}
