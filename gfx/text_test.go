package gfx

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdl/font"
)

// rendered draws s with WriteCharString on a fresh canvas of the same size, for
// comparing against cursor-driven output.
func rendered(t *testing.T, w, h int, f *font.Font, x, y int, s string) []Color {
	t.Helper()
	ref := newMemSink(w, h)
	c := New(ref)
	require.Equal(t, Success, c.SetFont(f))
	require.Equal(t, Success, c.WriteCharString(x, y, s))
	return ref.pix
}

func TestWriteCharRangeEveryFont(t *testing.T) {
	for _, f := range font.All() {
		s := newMemSink(64, 32)
		c := New(s)
		require.Equal(t, Success, c.SetFont(f), f.Name)
		if f.First > 0 {
			assert.Equal(t, CharFontASCIIRange, c.WriteChar(0, 0, f.First-1), f.Name)
		}
		if f.Last < 0xFF {
			assert.Equal(t, CharFontASCIIRange, c.WriteChar(0, 0, f.Last+1), f.Name)
		}
		assert.Zero(t, s.writes, "%s: rejected glyphs draw nothing", f.Name)

		assert.Equal(t, Success, c.WriteChar(0, 0, f.First), f.Name)
		assert.Equal(t, Success, c.WriteChar(0, 0, f.Last), f.Name)
		assert.Equal(t, 2*f.CellWidth()*f.CellHeight(), s.writes, "%s: full cells", f.Name)
	}
}

func TestWriteCharRangeCheckedBeforeBounds(t *testing.T) {
	c := New(newMemSink(10, 10))
	assert.Equal(t, CharFontASCIIRange, c.WriteChar(100, 100, 0x01))
	assert.Equal(t, CharScreenBounds, c.WriteChar(100, 100, 'A'))
	assert.Equal(t, CharScreenBounds, c.WriteChar(5, 0, 'A'), "cell must fit entirely")
}

func TestWriteCharColors(t *testing.T) {
	s := newMemSink(6, 8)
	c := New(s)
	c.SetTextColor(Red, Blue)
	require.Equal(t, Success, c.WriteChar(0, 0, ' '))
	assert.Equal(t, 48, s.count(Blue))

	c.SetInvertFont(true)
	assert.True(t, c.InvertFont())
	require.Equal(t, Success, c.WriteChar(0, 0, ' '))
	assert.Equal(t, 48, s.count(Red))

	fg, bg := c.TextColor()
	assert.Equal(t, Red, fg)
	assert.Equal(t, Blue, bg)
}

func TestWriteCharTransparent(t *testing.T) {
	s := newMemSink(6, 8)
	s.fill(Green)
	c := New(s)
	c.SetTextColor(Red, Blue)
	c.SetTextTransparent(true)
	require.Equal(t, Success, c.WriteChar(0, 0, 'A'))
	assert.Zero(t, s.count(Blue))
	assert.NotZero(t, s.count(Red))
	assert.Equal(t, 48, s.count(Red)+s.count(Green))
}

func TestWriteCharStringFirstFailure(t *testing.T) {
	s := newMemSink(84, 48)
	c := New(s)
	c.SetTextWrap(false)
	st := c.WriteCharString(0, 0, "ab\x01cd")
	assert.Equal(t, CharFontASCIIRange, st)
	// The glyphs around the bad one are still drawn.
	assert.Equal(t, 4*6*8, s.writes)

	assert.Equal(t, CharArrayNullptr, c.WriteCharBytes(0, 0, nil))
	assert.Equal(t, Success, c.WriteCharBytes(0, 8, []byte("ok")))
	assert.Equal(t, Success, c.WriteCharString(0, 0, ""))
}

func TestSetFontNil(t *testing.T) {
	c := New(newMemSink(8, 8))
	assert.Equal(t, Nullptr, c.SetFont(nil))
	assert.Equal(t, font.Default, c.Font())
}

func TestPrintWrapScenario(t *testing.T) {
	s := newMemSink(84, 48)
	c := New(s)
	c.SetCursor(0, 0)
	n := c.Print("123456789012345")
	assert.Equal(t, 15, n)
	assert.False(t, c.WriteError())

	x, y := c.Cursor()
	assert.Equal(t, 6, x)
	assert.Equal(t, 8, y)

	want := newMemSink(84, 48)
	wc := New(want)
	wc.SetTextWrap(false)
	require.Equal(t, Success, wc.WriteCharString(0, 0, "12345678901234"))
	require.Equal(t, Success, wc.WriteChar(0, 8, '5'))
	assert.Equal(t, want.pix, s.pix)
}

func TestPrintBases(t *testing.T) {
	cases := []struct {
		base Base
		want string
	}{
		{Hex, "2F"},
		{Oct, "57"},
		{Bin, "101111"},
		{Dec, "47"},
		{Base(1), "47"},
		{Base(40), "47"},
	}
	for _, tc := range cases {
		s := newMemSink(84, 48)
		c := New(s)
		n := c.PrintInt(47, tc.base)
		assert.Equal(t, len(tc.want), n, "base %d", tc.base)
		assert.Equal(t, rendered(t, 84, 48, font.Default, 0, 0, tc.want), s.pix, "base %d", tc.base)
	}
}

func TestPrintInt32Negative(t *testing.T) {
	s := newMemSink(84, 48)
	c := New(s)
	assert.Equal(t, 8, c.PrintInt32(-1, Hex))
	assert.Equal(t, rendered(t, 84, 48, font.Default, 0, 0, "FFFFFFFF"), s.pix)
}

func TestFormatNumbers(t *testing.T) {
	assert.Equal(t, "2F", formatInt(47, Hex))
	assert.Equal(t, "-47", formatInt(-47, Dec))
	assert.Equal(t, "FFFFFFFFFFFFFFFF", formatInt(-1, Hex))
	assert.Equal(t, "FFFFFFFF", formatInt32(-1, Hex))
	assert.Equal(t, "FFFFFFD1", formatInt32(-47, Hex))
	assert.Equal(t, "-47", formatInt32(-47, Dec))
	assert.Equal(t, "20000000000", formatInt32(math.MinInt32, Oct))
	assert.Equal(t, "0", formatUint(0, Bin))
	assert.Equal(t, "18446744073709551615", formatUint(math.MaxUint64, Dec))

	assert.Equal(t, "3.14", formatFloat(math.Pi, DefaultFloatDigits))
	assert.Equal(t, "-2.5000", formatFloat(-2.5, 4))
	assert.Equal(t, "3", formatFloat(3.2, 0))
	assert.Equal(t, "nan", formatFloat(math.NaN(), 2))
	assert.Equal(t, "inf", formatFloat(math.Inf(1), 2))
	assert.Equal(t, "-inf", formatFloat(math.Inf(-1), 2))
}

type named string

func (n named) String() string { return "<" + string(n) + ">" }

func TestPrintValues(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{"abc", "abc"},
		{[]byte("xyz"), "xyz"},
		{int8(-5), "-5"},
		{uint16(65535), "65535"},
		{byte('A'), "65"},
		{1.5, "1.50"},
		{float32(0.25), "0.25"},
		{true, "true"},
		{named("n"), "<n>"},
		{errors.New("bad"), "bad"},
		{[]int{1, 2, 3}, "1 2 3"},
		{[2]string{"a", "b"}, "a b"},
	}
	for _, tc := range cases {
		s := newMemSink(84, 48)
		c := New(s)
		n := c.Print(tc.v)
		assert.Equal(t, len(tc.want), n, "%#v", tc.v)
		assert.Equal(t, rendered(t, 84, 48, font.Default, 0, 0, tc.want), s.pix, "%#v", tc.v)
	}
}

func TestPrintlnAndControlCodes(t *testing.T) {
	c := New(newMemSink(84, 48))
	c.Println("ab")
	x, y := c.Cursor()
	assert.Equal(t, [2]int{0, 8}, [2]int{x, y})

	c.Print("abc\rd")
	x, y = c.Cursor()
	assert.Equal(t, [2]int{6, 8}, [2]int{x, y})

	c.Printf("%d\n", 12)
	x, y = c.Cursor()
	assert.Equal(t, [2]int{0, 16}, [2]int{x, y})
}

func TestStickyWriteError(t *testing.T) {
	c := New(newMemSink(84, 16))
	c.PrintChar(0x01)
	assert.True(t, c.WriteError())

	// Later successful prints do not clear it.
	c.Print("ok")
	assert.True(t, c.WriteError())

	c.ClearWriteError()
	assert.False(t, c.WriteError())
	c.Print("ok")
	assert.False(t, c.WriteError())

	// Running off the bottom sets it again.
	c.SetCursor(0, 12)
	c.Print("x")
	assert.True(t, c.WriteError())
}

func TestWriterInterfaces(t *testing.T) {
	s := newMemSink(84, 48)
	c := New(s)
	n, err := c.Write([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, c.WriteByte('!'))
	n, err = c.WriteString("é")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "byte count of the input")
	assert.True(t, c.WriteError(), "default font has no é")
	assert.Equal(t, rendered(t, 84, 48, font.Default, 0, 0, "hi!?"), s.pix)
}

func TestPrintRuneCharmap(t *testing.T) {
	s := newMemSink(84, 48)
	c := New(s)
	require.Equal(t, Success, c.SetFont(font.Wide7x13))
	c.PrintRune('é')
	assert.False(t, c.WriteError())
	assert.Equal(t, rendered(t, 84, 48, font.Wide7x13, 0, 0, "\xe9"), s.pix)

	c.PrintRune('€')
	assert.True(t, c.WriteError(), "not in Latin-1")
}

func TestPrintNoWrap(t *testing.T) {
	s := newMemSink(12, 8)
	c := New(s)
	c.SetTextWrap(false)
	c.Print("abc")
	assert.True(t, c.WriteError())
	x, y := c.Cursor()
	assert.Equal(t, 18, x)
	assert.Zero(t, y)
	assert.Zero(t, s.stray)
}

func TestPrintRotated(t *testing.T) {
	s := newMemSink(48, 84)
	c := New(s)
	require.Equal(t, Success, c.SetRotation(Rotation270))
	require.Equal(t, 84, c.Width())
	c.Print("123456789012345")
	assert.False(t, c.WriteError())
	x, y := c.Cursor()
	assert.Equal(t, [2]int{6, 8}, [2]int{x, y})
}
