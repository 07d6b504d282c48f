package gfx

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Base is the radix used by PrintInt and PrintUint.
type Base uint8

const (
	Bin Base = 2
	Oct Base = 8
	Dec Base = 10
	Hex Base = 16
)

// DefaultFloatDigits is the precision Print uses for floats.
const DefaultFloatDigits = 2

// WriteError reports whether any character since the last ClearWriteError failed
// to draw.
func (c *Canvas) WriteError() bool { return c.text.writeErr }

// ClearWriteError resets the sticky write error.
func (c *Canvas) ClearWriteError() { c.text.writeErr = false }

// Newline moves the cursor to column 0 of the next text row.
func (c *Canvas) Newline() {
	c.text.x = 0
	c.text.y += c.text.font.CellHeight()
}

// Write draws p at the cursor, one font code per byte. It implements io.Writer and
// never returns an error: failures only set the sticky write error.
func (c *Canvas) Write(p []byte) (int, error) {
	for _, b := range p {
		c.putCode(b)
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (c *Canvas) WriteByte(b byte) error {
	c.putCode(b)
	return nil
}

// WriteString implements io.StringWriter; runes go through the font's charmap.
func (c *Canvas) WriteString(s string) (int, error) {
	c.PrintString(s)
	return len(s), nil
}

// putCode is the single step of the incremental writer.
func (c *Canvas) putCode(b byte) {
	switch b {
	case '\n':
		c.Newline()
		return
	case '\r':
		c.text.x = 0
		return
	}
	c.text.x, c.text.y = c.wrapAt(c.text.x, c.text.y)
	if st := c.WriteChar(c.text.x, c.text.y, b); st != Success {
		c.text.writeErr = true
	}
	c.text.x += c.text.font.CellWidth()
}

// PrintChar prints one font code.
func (c *Canvas) PrintChar(b byte) int {
	c.putCode(b)
	return 1
}

// PrintRune prints r mapped through the active font's charmap. Runes the font
// cannot show print as a substitute and set the write error.
func (c *Canvas) PrintRune(r rune) int {
	if r == '\n' || r == '\r' {
		c.putCode(byte(r))
		return 1
	}
	code, ok := c.text.font.Code(r)
	if !ok {
		c.text.writeErr = true
	}
	c.putCode(code)
	return 1
}

// PrintString prints s rune by rune and returns the number of characters.
func (c *Canvas) PrintString(s string) int {
	n := 0
	for _, r := range s {
		n += c.PrintRune(r)
	}
	return n
}

// PrintInt prints v in base. Negative values print with a sign in Dec and as their
// 64-bit two's complement in the other bases.
func (c *Canvas) PrintInt(v int64, base Base) int {
	return c.printASCII(formatInt(v, base))
}

// PrintInt32 prints v in base. Negative values in bases other than Dec print as
// their 32-bit two's complement, so -1 in Hex is FFFFFFFF.
func (c *Canvas) PrintInt32(v int32, base Base) int {
	return c.printASCII(formatInt32(v, base))
}

// PrintUint prints v in base.
func (c *Canvas) PrintUint(v uint64, base Base) int {
	return c.printASCII(formatUint(v, base))
}

// PrintFloat prints v with digits decimals.
func (c *Canvas) PrintFloat(v float64, digits int) int {
	return c.printASCII(formatFloat(v, digits))
}

// Print prints a string, []byte, integer (decimal), float (two decimals), bool,
// fmt.Stringer, error, or a slice or array of those joined by single spaces.
// Use PrintChar and PrintRune for characters: byte and rune are integers here.
func (c *Canvas) Print(v any) int {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return c.PrintString(x)
	case []byte:
		n, _ := c.Write(x)
		return n
	case int:
		return c.PrintInt(int64(x), Dec)
	case int8:
		return c.PrintInt(int64(x), Dec)
	case int16:
		return c.PrintInt(int64(x), Dec)
	case int32:
		return c.PrintInt(int64(x), Dec)
	case int64:
		return c.PrintInt(x, Dec)
	case uint:
		return c.PrintUint(uint64(x), Dec)
	case uint8:
		return c.PrintUint(uint64(x), Dec)
	case uint16:
		return c.PrintUint(uint64(x), Dec)
	case uint32:
		return c.PrintUint(uint64(x), Dec)
	case uint64:
		return c.PrintUint(x, Dec)
	case float32:
		return c.PrintFloat(float64(x), DefaultFloatDigits)
	case float64:
		return c.PrintFloat(x, DefaultFloatDigits)
	case bool:
		return c.printASCII(strconv.FormatBool(x))
	case error:
		return c.PrintString(x.Error())
	case fmt.Stringer:
		return c.PrintString(x.String())
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		n := 0
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				n += c.PrintChar(' ')
			}
			n += c.Print(rv.Index(i).Interface())
		}
		return n
	}
	return c.PrintString(fmt.Sprint(v))
}

// Println prints v followed by a line feed.
func (c *Canvas) Println(v any) int {
	n := c.Print(v)
	c.Newline()
	return n
}

// Printf formats at the cursor.
func (c *Canvas) Printf(format string, args ...any) int {
	return c.PrintString(fmt.Sprintf(format, args...))
}

func (c *Canvas) printASCII(s string) int {
	for i := 0; i < len(s); i++ {
		c.putCode(s[i])
	}
	return len(s)
}

func validBase(base Base) Base {
	if base < 2 || base > 36 {
		return Dec
	}
	return base
}

func formatInt(v int64, base Base) string {
	base = validBase(base)
	if base == Dec {
		return strconv.FormatInt(v, 10)
	}
	return formatUint(uint64(v), base)
}

func formatInt32(v int32, base Base) string {
	base = validBase(base)
	if base == Dec {
		return strconv.FormatInt(int64(v), 10)
	}
	return formatUint(uint64(uint32(v)), base)
}

func formatUint(v uint64, base Base) string {
	return strings.ToUpper(strconv.FormatUint(v, int(validBase(base))))
}

func formatFloat(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}
