package gfx

import "image/color"

// Color is a pixel value.
//
// Color sinks store it as RGB565 (rrrrrggggggbbbbb). Bicolor sinks treat Black as
// pixel off, Inverse as "toggle the current pixel", and any other value as pixel on.
type Color uint16

// Bicolor values. White is also a valid RGB565 white.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Inverse Color = 0x0002
)

// RGB565 palette.
const (
	Navy        Color = 0x000F
	DarkGreen   Color = 0x03E0
	DarkCyan    Color = 0x03EF
	Maroon      Color = 0x7800
	Purple      Color = 0x780F
	Olive       Color = 0x7BE0
	LightGrey   Color = 0xC618
	DarkGrey    Color = 0x7BEF
	Blue        Color = 0x001F
	Green       Color = 0x07E0
	Cyan        Color = 0x07FF
	Red         Color = 0xF800
	Magenta     Color = 0xF81F
	Yellow      Color = 0xFFE0
	Orange      Color = 0xFD20
	GreenYellow Color = 0xAFE5
	Pink        Color = 0xFC18
	Tan         Color = 0xD5B1
)

// RGB truncates an 8-bit-per-channel color to RGB565.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3))
}

// FromRGBA converts c ignoring alpha.
func FromRGBA(c color.RGBA) Color { return RGB(c.R, c.G, c.B) }

// RGB expands c back to 8-bit channels, scaling so that full intensity stays 0xFF.
func (c Color) RGB() (r, g, b uint8) {
	rr := (uint16(c) >> 11) & 0x1F
	gg := (uint16(c) >> 5) & 0x3F
	bb := uint16(c) & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGBA returns c as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Invert returns the bitwise complement, the RGB565 equivalent of Inverse.
func (c Color) Invert() Color { return ^c }

// IsOn reports whether a bicolor sink should light the pixel for c.
// Inverse is not a level and reports false.
func (c Color) IsOn() bool { return c != Black && c != Inverse }
