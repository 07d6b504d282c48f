// Local glue for the replaced tinyterm module: the SGR codes, palette and text
// attributes tinyterm.go relies on. This file is not part of upstream tinyterm
// and must be carried over by hand when the module is updated.

package tinyterm

import "image/color"

// Select Graphic Rendition parameters understood by the terminal.
const (
	SGRReset = 0
	SGRBold  = 1

	SGRFgBlack   = 30
	SGRFgRed     = 31
	SGRFgGreen   = 32
	SGRFgYellow  = 33
	SGRFgBlue    = 34
	SGRFgMagenta = 35
	SGRFgCyan    = 36
	SGRFgWhite   = 37

	SGRSetFgColor     = 38
	SGRDefaultFgColor = 39

	SGRBgBlack   = 40
	SGRBgRed     = 41
	SGRBgGreen   = 42
	SGRBgYellow  = 43
	SGRBgBlue    = 44
	SGRBgMagenta = 45
	SGRBgCyan    = 46
	SGRBgWhite   = 47

	SGRSetBgColor     = 48
	SGRDefaultBgColor = 49
)

// Color is an index into the 8 color ANSI palette.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var palette = [...]color.RGBA{
	ColorBlack:   {0x00, 0x00, 0x00, 0xFF},
	ColorRed:     {0xFF, 0x00, 0x00, 0xFF},
	ColorGreen:   {0x00, 0xFF, 0x00, 0xFF},
	ColorYellow:  {0xFF, 0xFF, 0x00, 0xFF},
	ColorBlue:    {0x00, 0x00, 0xFF, 0xFF},
	ColorMagenta: {0xFF, 0x00, 0xFF, 0xFF},
	ColorCyan:    {0x00, 0xFF, 0xFF, 0xFF},
	ColorWhite:   {0xFF, 0xFF, 0xFF, 0xFF},
}

// RGBA returns the palette entry. Indexes past the basic 8 wrap around.
func (c Color) RGBA() color.RGBA {
	return palette[int(c)%len(palette)]
}

type sgrAttrs struct {
	attrs byte
	fgcol color.RGBA
	bgcol color.RGBA
}

func (a *sgrAttrs) reset() {
	a.attrs = 0
	a.fgcol = ColorWhite.RGBA()
	a.bgcol = ColorBlack.RGBA()
}

func (a *sgrAttrs) setFG(c Color) { a.fgcol = c.RGBA() }

func (a *sgrAttrs) setBG(c Color) { a.bgcol = c.RGBA() }
