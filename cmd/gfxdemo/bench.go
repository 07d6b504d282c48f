package main

import (
	"fmt"
	"time"

	"rdl/font"
	"rdl/gfx"
	"rdl/hal"
)

const scoreScale = 1000

type benchTest struct {
	name string
	ops  uint64
	run  func()
}

type benchResult struct {
	name  string
	took  time.Duration
	score uint64
}

// bench times the primitive rasterizer through the Canvas API and prints a score
// table: operations per millisecond, scaled.
type bench struct {
	c   *gfx.Canvas
	log hal.Logger

	results    []benchResult
	totalScore uint64
}

func (b *bench) run() {
	b.results = b.results[:0]
	b.totalScore = 0
	for _, test := range b.tests() {
		took := measure(test.run)
		score := scoreFromOps(test.ops, took)
		b.results = append(b.results, benchResult{name: test.name, took: took, score: score})
		b.totalScore += score
	}
	b.report()
}

func (b *bench) tests() []benchTest {
	w, h := b.c.Width(), b.c.Height()
	baseOps := uint64(w * h)
	return []benchTest{
		{name: "Fill", ops: baseOps * 4, run: b.testFill},
		{name: "Text", ops: baseOps / 2, run: b.testText},
		{name: "Pixels", ops: baseOps, run: b.testPixels},
		{name: "Lines", ops: baseOps, run: b.testLines},
		{name: "Fast lines", ops: baseOps, run: b.testFastLines},
		{name: "Rects", ops: baseOps, run: b.testRects},
		{name: "Filled rects", ops: baseOps, run: b.testFilledRects},
		{name: "Circles", ops: baseOps, run: b.testCircles},
		{name: "Filled circles", ops: baseOps, run: b.testFilledCircles},
		{name: "Triangles", ops: baseOps, run: b.testTriangles},
		{name: "Filled triangles", ops: baseOps, run: b.testFilledTriangles},
		{name: "Round rects", ops: baseOps, run: b.testRoundRects},
		{name: "Filled round rects", ops: baseOps, run: b.testFilledRoundRects},
	}
}

func measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)
	if d <= 0 {
		d = time.Microsecond
	}
	return d
}

func scoreFromOps(ops uint64, took time.Duration) uint64 {
	us := uint64(took / time.Microsecond)
	if us == 0 {
		us = 1
	}
	return (ops * scoreScale) / us
}

func (b *bench) testFill() {
	for _, col := range []gfx.Color{gfx.White, gfx.Red, gfx.Green, gfx.Blue, gfx.Black} {
		b.c.FillScreen(col)
		_ = b.c.Flush()
	}
}

func (b *bench) testText() {
	c := b.c
	c.FillScreen(gfx.Black)
	c.SetFont(font.Default)
	c.SetTextColor(gfx.White, gfx.Black)
	c.WriteCharString(10, 10, "Framebuffer benchmark")
	c.SetTextColor(gfx.LightGrey, gfx.Black)
	c.WriteCharString(10, 24, "Shapes, fills, lines, text")
	c.SetTextColor(gfx.RGB(0x80, 0xC0, 0xFF), gfx.Black)
	c.WriteCharString(10, 38, "gfxdemo -scene bench")
	_ = c.Flush()
}

func (b *bench) testPixels() {
	c := b.c
	w, h := c.Width(), c.Height()
	c.FillScreen(gfx.Black)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.DrawPixel(x, y, gfx.RGB(uint8(x), uint8(y), uint8(x*y)))
		}
	}
	_ = c.Flush()
}

func (b *bench) testLines() {
	c := b.c
	w, h := c.Width(), c.Height()
	col := gfx.RGB(0x00, 0x80, 0xFF)
	c.FillScreen(gfx.Black)
	for x := 0; x < w; x += 6 {
		c.DrawLine(0, 0, x, h-1, col)
	}
	for y := 0; y < h; y += 6 {
		c.DrawLine(0, 0, w-1, y, col)
	}
	_ = c.Flush()
}

func (b *bench) testFastLines() {
	c := b.c
	w, h := c.Width(), c.Height()
	red := gfx.RGB(0xFF, 0x30, 0x30)
	blue := gfx.RGB(0x30, 0x80, 0xFF)
	c.FillScreen(gfx.Black)
	for y := 0; y < h; y += 5 {
		c.DrawFastHLine(0, y, w, red)
	}
	for x := 0; x < w; x += 5 {
		c.DrawFastVLine(x, 0, h, blue)
	}
	_ = c.Flush()
}

func (b *bench) testRects() {
	c := b.c
	w, h := c.Width(), c.Height()
	col := gfx.RGB(0x20, 0xFF, 0x60)
	c.FillScreen(gfx.Black)
	n := minInt(w, h)
	cx, cy := w/2, h/2
	for i := 2; i < n; i += 6 {
		half := i / 2
		c.DrawRectWH(cx-half, cy-half, i, i, col)
	}
	_ = c.Flush()
}

func (b *bench) testFilledRects() {
	c := b.c
	w, h := c.Width(), c.Height()
	c.FillScreen(gfx.Black)
	n := minInt(w, h)
	cx, cy := w/2-1, h/2-1
	for i := n; i > 0; i -= 6 {
		half := i / 2
		c.FillRectangle(cx-half, cy-half, i, i, gfx.RGB(0xFF, 0xE0, 0x40))
	}
	_ = c.Flush()
}

func (b *bench) testCircles() {
	c := b.c
	w, h := c.Width(), c.Height()
	radius := 10
	c.FillScreen(gfx.Black)
	for x := 0; x < w+radius; x += radius * 2 {
		for y := 0; y < h+radius; y += radius * 2 {
			c.DrawCircle(x, y, radius, gfx.White)
		}
	}
	_ = c.Flush()
}

func (b *bench) testFilledCircles() {
	c := b.c
	w, h := c.Width(), c.Height()
	radius := 10
	c.FillScreen(gfx.Black)
	for x := radius; x < w; x += radius * 2 {
		for y := radius; y < h; y += radius * 2 {
			c.FillCircle(x, y, radius, gfx.Magenta)
		}
	}
	_ = c.Flush()
}

func (b *bench) testTriangles() {
	c := b.c
	w, h := c.Width(), c.Height()
	c.FillScreen(gfx.Black)
	cx, cy := w/2-1, h/2-1
	limit := minInt(cx, cy)
	for i := 0; i < limit; i += 6 {
		c.DrawTriangle(cx, cy-i, cx-i, cy+i, cx+i, cy+i, gfx.RGB(uint8(i), 0x00, uint8(255-i)))
	}
	_ = c.Flush()
}

func (b *bench) testFilledTriangles() {
	c := b.c
	w, h := c.Width(), c.Height()
	c.FillScreen(gfx.Black)
	cx, cy := w/2-1, h/2-1
	limit := minInt(cx, cy)
	for i := limit; i > 10; i -= 6 {
		c.FillTriangle(cx, cy-i, cx-i, cy+i, cx+i, cy+i, gfx.RGB(0x00, uint8(i), 0xA0))
	}
	_ = c.Flush()
}

func (b *bench) testRoundRects() {
	c := b.c
	w, h := c.Width(), c.Height()
	c.FillScreen(gfx.Black)
	n := minInt(w, h)
	cx, cy := w/2-1, h/2-1
	for i := 1; i < n; i += 6 {
		half := i / 2
		r := maxInt(2, i/8)
		c.DrawRoundRect(cx-half, cy-half, i, i, r, gfx.RGB(uint8(i), 0x20, 0x20))
	}
	_ = c.Flush()
}

func (b *bench) testFilledRoundRects() {
	c := b.c
	w, h := c.Width(), c.Height()
	c.FillScreen(gfx.Black)
	n := minInt(w, h)
	cx, cy := w/2-1, h/2-1
	for i := n; i > 20; i -= 6 {
		half := i / 2
		r := maxInt(2, i/8)
		c.FillRoundRect(cx-half, cy-half, i, i, r, gfx.RGB(0x00, uint8(i), 0x00))
	}
	_ = c.Flush()
}

// report logs the table and draws it on the canvas.
func (b *bench) report() {
	c := b.c
	c.FillScreen(gfx.Black)
	c.SetFont(font.Default)
	c.SetTextColor(gfx.White, gfx.Black)
	c.SetCursor(0, 0)

	lines := []string{"Test                   us    score"}
	for _, res := range b.results {
		lines = append(lines, fmt.Sprintf("%-18s %6d %8d", res.name, res.took/time.Microsecond, res.score))
	}
	lines = append(lines, fmt.Sprintf("Total score: %d", b.totalScore))

	for _, line := range lines {
		b.log.WriteLineString(line)
		c.SetTextWrap(false)
		c.Println(line)
	}
	c.SetTextWrap(true)
	c.ClearWriteError()
}
