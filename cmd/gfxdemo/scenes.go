package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"tinygo.org/x/tinyfont"

	"rdl/font"
	"rdl/gfx"
	"rdl/hal"
	"rdl/term"
)

// newScene returns the per-frame step for the named scene.
func newScene(name string, c *gfx.Canvas, log hal.Logger) (func(tick uint64) error, error) {
	switch name {
	case "shapes":
		return once(c, func() { drawShapes(c, log) }), nil
	case "text":
		return once(c, func() { drawText(c, log) }), nil
	case "clock":
		return func(tick uint64) error {
			drawClock(c, time.Now())
			return c.Flush()
		}, nil
	case "bench":
		b := &bench{c: c, log: log}
		return once(c, b.run), nil
	case "term":
		con, err := term.New(c, term.Config{})
		if err != nil {
			return nil, errors.Wrap(err, "gfxdemo: term scene")
		}
		return func(tick uint64) error {
			fg := 31 + tick%7
			if _, err := con.Printf("\x1b[%dmtick %d\x1b[0m %s\n", fg, tick, time.Now().Format("15:04:05")); err != nil {
				return err
			}
			return con.Flush()
		}, nil
	}
	return nil, errors.Errorf("gfxdemo: unknown scene %q", name)
}

// once draws on the first tick and only flushes afterwards.
func once(c *gfx.Canvas, draw func()) func(tick uint64) error {
	return func(tick uint64) error {
		if tick == 0 {
			draw()
		}
		return c.Flush()
	}
}

func drawShapes(c *gfx.Canvas, log hal.Logger) {
	w, h := c.Width(), c.Height()
	c.FillScreen(gfx.Black)
	c.DrawDotGrid(0, 0, w, h, 8, gfx.DarkGrey)

	logStatus(log, "frame", c.DrawRectWH(0, 0, w, h, gfx.White))
	c.DrawLine(0, 0, w-1, h-1, gfx.Red)
	c.DrawLine(w-1, 0, 0, h-1, gfx.Green)

	logStatus(log, "round rect", c.DrawRoundRect(8, 8, w/3, h/4, 6, gfx.Cyan))
	logStatus(log, "filled round rect", c.FillRoundRect(12, 12, w/3-8, h/4-8, 4, gfx.Navy))
	logStatus(log, "filled rect", c.FillRect(w-8-w/4, 8, w-9, 8+h/5, gfx.Orange))

	r := minInt(w, h) / 8
	c.DrawCircle(w/2, h/2, r*2, gfx.Yellow)
	c.FillCircle(w/2, h/2, r, gfx.Magenta)
	c.DrawEllipse(w/2, h/2, r*3, r+r/2, gfx.White, false)

	c.FillTriangle(8, h-8, 8+r*2, h-8, 8+r, h-8-r*2, gfx.Green)
	c.DrawTriangle(8, h-8, 8+r*2, h-8, 8+r, h-8-r*2, gfx.White)
	c.FillQuadrilateral(w-8-r*3, h-8, w-8, h-8, w-8-r/2, h-8-r*2, w-8-r*2, h-8-r*2, gfx.Purple)
	c.DrawPolygon(w/4, h/2, 6, r*2, 0, true, gfx.Blue)
	c.DrawPolygon(3*w/4, h/2, 5, r*2, 90, false, gfx.Pink)

	c.DrawArc(w/2, h/2, r*2+6, 4, 30, 150, gfx.GreenYellow)
	c.DrawSimpleArc(w/2, h/2, r*2+10, 210, 330, gfx.Tan)

	drawBitmaps(c, log, w/2-8, 8)
}

// smiley is a 16x16 horizontal 1-bit bitmap.
var smiley = []byte{
	0x07, 0xE0, 0x18, 0x18, 0x20, 0x04, 0x40, 0x02,
	0x4C, 0x32, 0x8C, 0x31, 0x80, 0x01, 0x80, 0x01,
	0x80, 0x01, 0x90, 0x09, 0x88, 0x11, 0x47, 0xE2,
	0x40, 0x02, 0x20, 0x04, 0x18, 0x18, 0x07, 0xE0,
}

// arrowIcon is an 8x8 vertical-column icon.
var arrowIcon = []byte{0x18, 0x18, 0x18, 0x18, 0xFF, 0x7E, 0x3C, 0x18}

func drawBitmaps(c *gfx.Canvas, log hal.Logger, x, y int) {
	logStatus(log, "bitmap", c.DrawBitmap(x, y, smiley, 16, 16, gfx.Yellow, gfx.Black))
	logStatus(log, "icon", c.DrawIcon(x+20, y+4, len(arrowIcon), gfx.White, gfx.Black, arrowIcon))

	// 8x8 gradient sprite with a black transparent key, and the same in RGB888.
	const n = 8
	px16 := make([]byte, 0, n*n*2)
	px24 := make([]byte, 0, n*n*3)
	for py := 0; py < n; py++ {
		for pxl := 0; pxl < n; pxl++ {
			col := gfx.Black
			r, g, b := uint8(pxl*32), uint8(py*32), uint8(255-pxl*32)
			if (pxl+py)%3 != 0 {
				col = gfx.RGB(r, g, b)
			}
			px16 = append(px16, byte(col>>8), byte(col))
			px24 = append(px24, r, g, b)
		}
	}
	logStatus(log, "sprite", c.DrawSprite(x+32, y, px16, n, n, gfx.Black))
	logStatus(log, "bitmap16", c.DrawBitmap16(x+32, y+n, px16, n, n))
	logStatus(log, "bitmap24", c.DrawBitmap24(x+32+n, y, px24, n, n))
}

func drawText(c *gfx.Canvas, log hal.Logger) {
	c.FillScreen(gfx.Black)
	c.SetTextColor(gfx.White, gfx.Black)

	y := 0
	for _, f := range font.All() {
		logStatus(log, "font", c.SetFont(f))
		logStatus(log, "font "+f.Name, c.WriteCharString(0, y, strings.ToUpper(describe(f))))
		y += f.CellHeight() + 2
	}

	logStatus(log, "font", c.SetFont(font.Default))
	c.SetCursor(0, y)
	c.Print("47 = 0x")
	c.PrintInt(47, gfx.Hex)
	c.Print(" = 0")
	c.PrintInt(47, gfx.Oct)
	c.Print(" = 0b")
	c.PrintInt(47, gfx.Bin)
	c.Newline()
	c.Print("-1 = 0x")
	c.PrintInt32(-1, gfx.Hex)
	c.Newline()
	c.Print("pi ~ ")
	c.PrintFloat(math.Pi, 4)
	c.Newline()
	c.Println([]int{1, 2, 3})
	c.Printf("%dx%d rot %v", c.Width(), c.Height(), c.Rotation())
	c.Newline()

	c.SetInvertFont(true)
	c.Println(" inverted ")
	c.SetInvertFont(false)

	logStatus(log, "font", c.SetFont(font.Wide7x13))
	c.SetTextColor(gfx.Cyan, gfx.Black)
	c.Print("caf")
	c.PrintRune('é')
	c.Print(" 25")
	c.PrintRune('°')
	c.Newline()
	if c.WriteError() {
		log.WriteLineString("gfxdemo: text did not fit")
		c.ClearWriteError()
	}

	// Driver-level text through the Displayer adapter, baseline at the bottom.
	d := gfx.NewDisplayer(c)
	tinyfont.WriteLine(d, font.Wide7x13, 2, int16(c.Height()-4), "tinyfont on gfx",
		color.RGBA{R: 0xFF, G: 0xC0, B: 0x40, A: 0xFF})
}

func drawClock(c *gfx.Canvas, now time.Time) {
	w, h := c.Width(), c.Height()
	cx, cy := w/2, h/2
	r := minInt(w, h)/2 - 4

	c.FillScreen(gfx.Black)
	c.SetArcParams(90)
	c.DrawCircle(cx, cy, r, gfx.White)
	for i := 0; i < 60; i++ {
		l := 2
		if i%5 == 0 {
			l = 6
		}
		c.DrawLineAngle(cx, cy, -float64(i*6), r-l, l, 0, gfx.LightGrey)
	}

	sec := float64(now.Second())
	minute := float64(now.Minute()) + sec/60
	hour := float64(now.Hour()%12) + minute/60
	c.DrawLineAngle(cx, cy, -hour*30, 0, r/2, 0, gfx.White)
	c.DrawLineAngle(cx, cy, -minute*6, 0, r*3/4, 0, gfx.Cyan)
	c.DrawLineAngle(cx, cy, -sec*6, 0, r-8, 0, gfx.Red)
	c.FillCircle(cx, cy, 2, gfx.Red)

	c.SetFont(font.Default)
	label := now.Format("15:04:05")
	c.WriteCharString(cx-len(label)*font.Default.CellWidth()/2, cy+r/3, label)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func describe(f *font.Font) string {
	return fmt.Sprintf("%s %dx%d", f.Name, f.CellWidth(), f.CellHeight())
}
