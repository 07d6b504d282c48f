package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checker is an 8x8 checkerboard, identical in both addressing modes.
var checker = []byte{0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55}

func TestDrawBitmapHorizontal(t *testing.T) {
	s := newMemSink(16, 8)
	c := New(s)
	// Row 0 is 1000 0001 0000 0000, the rest blank.
	data := make([]byte, 16*4/8)
	data[0] = 0x81
	require.Equal(t, Success, c.DrawBitmap(0, 0, data, 16, 4, Red, Blue))
	assert.Equal(t, Red, s.Pixel(0, 0))
	assert.Equal(t, Blue, s.Pixel(1, 0))
	assert.Equal(t, Red, s.Pixel(7, 0))
	assert.Equal(t, Blue, s.Pixel(8, 0))
	assert.Equal(t, Blue, s.Pixel(15, 3))
	assert.Equal(t, Black, s.Pixel(0, 4), "below the bitmap")
	assert.Equal(t, 16*4, s.writes)
}

func TestDrawBitmapVertical(t *testing.T) {
	s := newMemSink(8, 16)
	c := New(s)
	c.SetDrawBitmapAddr(AddrVertical)
	// Two pages of 4 columns: bit 0 of page 0 column 0 is the top-left pixel,
	// bit 7 of page 1 column 3 the bottom-right one.
	data := make([]byte, 4*16/8)
	data[0] = 0x01
	data[4+3] = 0x80
	require.Equal(t, Success, c.DrawBitmap(0, 0, data, 4, 16, White, Black))
	assert.Equal(t, 2, s.count(White))
	assert.Equal(t, White, s.Pixel(0, 0))
	assert.Equal(t, White, s.Pixel(3, 15))

	// The mode sticks until changed.
	assert.Equal(t, AddrVertical, c.DrawBitmapAddr())
	assert.Equal(t, HorizontalSize, c.DrawBitmap(0, 0, make([]byte, 4), 8, 4, White, Black))
	c.SetDrawBitmapAddr(AddrHorizontal)
	assert.Equal(t, Success, c.DrawBitmap(0, 0, make([]byte, 4), 8, 4, White, Black))
}

func TestDrawBitmapValidation(t *testing.T) {
	s := newMemSink(84, 48)
	c := New(s)
	tests := []struct {
		name string
		x, y int
		data []byte
		w, h int
		want Status
	}{
		{"nil data", 0, 0, nil, 8, 8, Nullptr},
		{"zero width", 0, 0, checker, 0, 8, ShapeSize},
		{"right edge", 80, 0, make([]byte, 16), 16, 8, ScreenBounds},
		{"negative", -1, 0, checker, 8, 8, ScreenBounds},
		{"bottom edge", 0, 41, checker, 8, 8, ScreenBounds},
		{"width not byte aligned", 0, 0, make([]byte, 10), 10, 8, HorizontalSize},
		{"short data", 0, 0, checker[:7], 8, 8, Size},
		{"long data", 0, 0, append(append([]byte{}, checker...), 0), 8, 8, Size},
		{"bounds before alignment", 80, 0, make([]byte, 10), 10, 8, ScreenBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.DrawBitmap(tt.x, tt.y, tt.data, tt.w, tt.h, White, Black))
			assert.Equal(t, tt.want, c.DrawSprite1(tt.x, tt.y, tt.data, tt.w, tt.h, White))
		})
	}
	assert.Zero(t, s.writes, "rejected blits write nothing")
	assert.Zero(t, s.stray)
}

func TestDrawBitmapOffRightEdge(t *testing.T) {
	s := newMemSink(84, 48)
	c := New(s)
	st := c.DrawBitmap(80, 0, make([]byte, 16*8/8), 16, 8, White, Black)
	assert.Equal(t, ScreenBounds, st)
	assert.Zero(t, s.writes)
}

func TestDrawBitmapDoubleInvert(t *testing.T) {
	s := newMemSink(16, 16)
	s.fill(White)
	c := New(s)
	require.Equal(t, Success, c.DrawBitmap(4, 4, checker, 8, 8, Black, White))
	first := s.snapshot()
	require.Equal(t, Success, c.DrawBitmap(4, 4, checker, 8, 8, White, Black))
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			i := y*16 + x
			assert.Equal(t, first[i].Invert(), s.pix[i], "(%d,%d)", x, y)
		}
	}
	require.Equal(t, Success, c.DrawBitmap(4, 4, checker, 8, 8, Black, White))
	assert.Equal(t, first, s.snapshot())
	assert.Equal(t, 256-32, s.count(White), "outside pixels untouched")
}

func TestSprite1InverseTwiceRestores(t *testing.T) {
	s := newBicolorSink(16, 8)
	c := New(s)
	c.FillRectangle(0, 0, 4, 8, White)
	before := append([]bool(nil), s.on...)
	require.Equal(t, Success, c.DrawSprite1(0, 0, checker, 8, 8, Inverse))
	assert.NotEqual(t, before, s.on)
	require.Equal(t, Success, c.DrawSprite1(0, 0, checker, 8, 8, Inverse))
	assert.Equal(t, before, s.on)
}

func TestDrawSprite1Transparent(t *testing.T) {
	s := newMemSink(8, 8)
	s.fill(Green)
	c := New(s)
	require.Equal(t, Success, c.DrawSprite1(0, 0, checker, 8, 8, Red))
	assert.Equal(t, 32, s.count(Red))
	assert.Equal(t, 32, s.count(Green))
}

func TestDrawIcon(t *testing.T) {
	s := newMemSink(10, 10)
	c := New(s)
	icon := []byte{0x01, 0x80, 0xFF}
	require.Equal(t, Success, c.DrawIcon(1, 1, 3, Red, Blue, icon))
	assert.Equal(t, Red, s.Pixel(1, 1))
	assert.Equal(t, Blue, s.Pixel(1, 2))
	assert.Equal(t, Red, s.Pixel(2, 8))
	assert.Equal(t, Blue, s.Pixel(2, 7))
	assert.Equal(t, Red, s.Pixel(3, 4))
	assert.Equal(t, 24, s.writes)

	assert.Equal(t, Size, c.DrawIcon(0, 0, 2, Red, Blue, icon))
	assert.Equal(t, ScreenBounds, c.DrawIcon(0, 3, 3, Red, Blue, icon))
	assert.Equal(t, Nullptr, c.DrawIcon(0, 0, 3, Red, Blue, nil))
}

func TestDrawBitmap16BigEndian(t *testing.T) {
	s := newMemSink(4, 4)
	c := New(s)
	data := []byte{0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F, 0xFF, 0xFF}
	require.Equal(t, Success, c.DrawBitmap16(1, 1, data, 2, 2))
	assert.Equal(t, Red, s.Pixel(1, 1))
	assert.Equal(t, Green, s.Pixel(2, 1))
	assert.Equal(t, Blue, s.Pixel(1, 2))
	assert.Equal(t, White, s.Pixel(2, 2))

	assert.Equal(t, Size, c.DrawBitmap16(0, 0, data[:6], 2, 2))
	assert.Equal(t, ScreenBounds, c.DrawBitmap16(3, 3, data, 2, 2))
}

func TestDrawSpriteKey(t *testing.T) {
	s := newMemSink(2, 1)
	s.fill(Yellow)
	c := New(s)
	data := []byte{0xF8, 0x1F, 0x00, 0x1F}
	require.Equal(t, Success, c.DrawSprite(0, 0, data, 2, 1, Magenta))
	assert.Equal(t, Yellow, s.Pixel(0, 0), "key color is transparent")
	assert.Equal(t, Blue, s.Pixel(1, 0))
}

func TestDrawBitmap24(t *testing.T) {
	s := newMemSink(3, 1)
	c := New(s)
	data := []byte{0xFF, 0x00, 0x00, 0x00, 0xFF, 0x00, 0xFF, 0xFF, 0xFF}
	require.Equal(t, Success, c.DrawBitmap24(0, 0, data, 3, 1))
	assert.Equal(t, []Color{Red, Green, White}, s.pix)
	assert.Equal(t, Size, c.DrawBitmap24(0, 0, data, 2, 1))
}

func TestBitmapRotated(t *testing.T) {
	s := newMemSink(8, 16)
	c := New(s)
	require.Equal(t, Success, c.SetRotation(Rotation90))
	require.Equal(t, 16, c.Width())
	data := make([]byte, 2)
	data[0] = 0x80
	require.Equal(t, Success, c.DrawBitmap(0, 0, data, 16, 1, White, Black))
	assert.Equal(t, White, s.Pixel(7, 0))
	assert.Equal(t, 1, s.count(White))
}
