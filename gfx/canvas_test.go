package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allRotations = []Rotation{Rotation0, Rotation90, Rotation180, Rotation270}

func TestNewCanvasSize(t *testing.T) {
	c := New(newMemSink(84, 48))
	assert.Equal(t, 84, c.Width())
	assert.Equal(t, 48, c.Height())
	assert.Equal(t, Rotation0, c.Rotation())
	assert.Equal(t, AddrHorizontal, c.DrawBitmapAddr())
	assert.NotNil(t, c.Font())
}

func TestNilSink(t *testing.T) {
	c := New(nil)
	assert.Equal(t, BufferEmpty, c.DrawPixel(0, 0, White))
	assert.Equal(t, BufferEmpty, c.FillRectangle(0, 0, 4, 4, White))
	assert.Equal(t, BufferEmpty, c.DrawBitmap(0, 0, []byte{0xFF}, 8, 1, White, Black))
	assert.Equal(t, BufferEmpty, c.WriteChar(0, 0, 'A'))
	assert.NotPanics(t, func() {
		c.DrawLine(0, 0, 10, 10, White)
		c.FillCircle(5, 5, 3, White)
		c.Print("hello")
		c.FillScreen(White)
	})
	assert.NoError(t, c.Flush())
}

func TestDrawPixelOutOfBounds(t *testing.T) {
	s := newMemSink(16, 8)
	c := New(s)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 8}, {100, 100}, {-5, 3}} {
		assert.Equal(t, ScreenBounds, c.DrawPixel(p[0], p[1], White), "%v", p)
	}
	assert.Zero(t, s.writes)
	assert.Zero(t, s.stray)

	// Primitives that only touch outside cells are no-ops too.
	c.DrawFastHLine(-10, 3, 5, White)
	c.DrawFastVLine(20, 0, 8, White)
	c.DrawLine(-5, -5, -1, -1, White)
	c.DrawCircle(-20, -20, 3, White)
	c.FillCircle(40, 4, 3, White)
	c.DrawTriangle(-9, -9, -5, -9, -7, -3, White)
	assert.Equal(t, ScreenBounds, c.FillRectangle(16, 0, 4, 4, White))
	assert.Zero(t, s.writes)
	assert.Zero(t, s.stray)
}

func TestSetRotation(t *testing.T) {
	c := New(newMemSink(84, 48))
	require.Equal(t, Success, c.SetRotation(Rotation90))
	assert.Equal(t, 48, c.Width())
	assert.Equal(t, 84, c.Height())
	w, h := c.PhysicalSize()
	assert.Equal(t, 84, w)
	assert.Equal(t, 48, h)

	assert.Equal(t, RotationInvalid, c.SetRotation(Rotation(7)))
	assert.Equal(t, Rotation90, c.Rotation(), "invalid rotation leaves state alone")

	for _, r := range []Rotation{Rotation180, Rotation270, Rotation0, Rotation90} {
		require.Equal(t, Success, c.SetRotation(r))
	}
	require.Equal(t, Success, c.SetRotation(Rotation0))
	assert.Equal(t, 84, c.Width())
	assert.Equal(t, 48, c.Height())
}

func TestRotationRoundTrip(t *testing.T) {
	const pw, ph = 20, 12
	for _, r := range allRotations {
		s := newMemSink(pw, ph)
		c := New(s)
		require.Equal(t, Success, c.SetRotation(r))
		for y := 0; y < c.Height(); y++ {
			for x := 0; x < c.Width(); x++ {
				px, py := transform(r, pw, ph, x, y)
				require.True(t, px >= 0 && px < pw && py >= 0 && py < ph, "rotation %d maps (%d,%d) off panel", r, x, y)
				lx, ly := inverseTransform(r, pw, ph, px, py)
				require.Equal(t, [2]int{x, y}, [2]int{lx, ly}, "rotation %d", r)
			}
		}

		assert.Equal(t, Success, c.DrawPixel(3, 2, Red))
		got, ok := c.ReadPixel(3, 2)
		require.True(t, ok)
		assert.Equal(t, Red, got)
		px, py := transform(r, pw, ph, 3, 2)
		assert.Equal(t, Red, s.Pixel(px, py))
		assert.Equal(t, 1, s.count(Red))
	}
}

func TestRotationCorners(t *testing.T) {
	const pw, ph = 10, 6
	cases := []struct {
		r      Rotation
		px, py int
	}{
		{Rotation0, 0, 0},
		{Rotation90, pw - 1, 0},
		{Rotation180, pw - 1, ph - 1},
		{Rotation270, 0, ph - 1},
	}
	for _, tc := range cases {
		s := newMemSink(pw, ph)
		c := New(s)
		require.Equal(t, Success, c.SetRotation(tc.r))
		c.DrawPixel(0, 0, White)
		assert.Equal(t, White, s.Pixel(tc.px, tc.py), "rotation %d", tc.r)
	}
}

func TestFillRectangleCoverage(t *testing.T) {
	for _, withFiller := range []bool{false, true} {
		for _, r := range allRotations {
			m := newMemSink(30, 20)
			m.fill(Navy)
			var sink PixelSink = m
			var fs *fillSink
			if withFiller {
				fs = &fillSink{memSink: m}
				sink = fs
			}
			c := New(sink)
			require.Equal(t, Success, c.SetRotation(r))
			require.Equal(t, Success, c.FillRectangle(2, 3, 7, 5, Yellow))

			for y := 0; y < c.Height(); y++ {
				for x := 0; x < c.Width(); x++ {
					got, _ := c.ReadPixel(x, y)
					inside := x >= 2 && x < 9 && y >= 3 && y < 8
					if inside {
						require.Equal(t, Yellow, got, "(%d,%d) rot %d", x, y, r)
					} else {
						require.Equal(t, Navy, got, "(%d,%d) rot %d", x, y, r)
					}
				}
			}
			before := m.snapshot()
			c.FillRectangle(2, 3, 7, 5, Yellow)
			assert.Equal(t, before, m.snapshot(), "refill is idempotent")
			if withFiller {
				assert.Equal(t, 2, fs.fills)
			}
		}
	}
}

func TestFillRectangleClipsPartial(t *testing.T) {
	s := newMemSink(10, 10)
	c := New(s)
	assert.Equal(t, Success, c.FillRectangle(-3, -3, 5, 5, White))
	assert.Equal(t, 4, s.count(White))
	assert.Zero(t, s.stray)

	assert.Equal(t, ShapeSize, c.FillRectangle(0, 0, 0, 5, White))
	assert.Equal(t, ShapeSize, c.DrawRectWH(0, 0, 5, -1, White))
}

func TestFillRectCorners(t *testing.T) {
	s := newMemSink(10, 10)
	c := New(s)
	assert.Equal(t, Success, c.FillRect(5, 6, 2, 3, White))
	assert.Equal(t, 4*4, s.count(White))
	assert.Equal(t, White, s.Pixel(2, 3))
	assert.Equal(t, White, s.Pixel(5, 6))
}

func TestFillScreen(t *testing.T) {
	s := newMemSink(7, 5)
	c := New(s)
	c.SetRotation(Rotation270)
	c.FillScreen(Orange)
	assert.Equal(t, 35, s.count(Orange))
}

type flushSink struct {
	*memSink
	flushed int
}

func (s *flushSink) Flush() error {
	s.flushed++
	return nil
}

func TestFlushForwards(t *testing.T) {
	s := &flushSink{memSink: newMemSink(4, 4)}
	c := New(s)
	require.NoError(t, c.Flush())
	assert.Equal(t, 1, s.flushed)

	// Sinks without Flush are fine.
	assert.NoError(t, New(newMemSink(2, 2)).Flush())
}

func TestStatusError(t *testing.T) {
	assert.NoError(t, Success.Err())
	assert.True(t, Success.OK())
	assert.Equal(t, ScreenBounds, ScreenBounds.Err())
	assert.EqualError(t, ScreenBounds, "gfx: screen bounds")
	assert.Equal(t, "status(200)", Status(200).String())
}

func TestToLogical(t *testing.T) {
	s := newMemSink(20, 10)
	c := New(s)
	for _, r := range []Rotation{Rotation0, Rotation90, Rotation180, Rotation270} {
		require.Equal(t, Success, c.SetRotation(r))
		require.Equal(t, Success, c.DrawPixel(3, 4, Red))
		for py := 0; py < 10; py++ {
			for px := 0; px < 20; px++ {
				if s.Pixel(px, py) != Red {
					continue
				}
				x, y, ok := c.ToLogical(px, py)
				require.True(t, ok)
				assert.Equal(t, [2]int{3, 4}, [2]int{x, y}, "rotation %d", r)
			}
		}
		s.fill(Black)
	}
	_, _, ok := c.ToLogical(20, 0)
	assert.False(t, ok)
	_, _, ok = c.ToLogical(0, -1)
	assert.False(t, ok)
}
