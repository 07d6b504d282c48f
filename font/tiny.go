package font

// Tiny is a 3x5 font for very small panels: digits, upper case and punctuation
// from ' ' to 'Z' in a 4x6 cell. Lower case is outside its range.
var Tiny = &Font{
	Name:     "tiny",
	Width:    3,
	Height:   6,
	Gap:      1,
	First:    ' ',
	Last:     'Z',
	Encoding: RowMajor,
	Stride:   6,
	Data:     packRows3(tinyRows[:]),
}

// Rows are 3 bits wide, bit 2 leftmost.
var tinyRows = [...][5]uint8{
	{0b000, 0b000, 0b000, 0b000, 0b000}, // ' '
	{0b010, 0b010, 0b010, 0b000, 0b010}, // !
	{0b101, 0b101, 0b000, 0b000, 0b000}, // "
	{0b101, 0b111, 0b101, 0b111, 0b101}, // #
	{0b011, 0b110, 0b010, 0b011, 0b110}, // $
	{0b101, 0b001, 0b010, 0b100, 0b101}, // %
	{0b010, 0b101, 0b010, 0b101, 0b011}, // &
	{0b010, 0b010, 0b000, 0b000, 0b000}, // '
	{0b001, 0b010, 0b010, 0b010, 0b001}, // (
	{0b100, 0b010, 0b010, 0b010, 0b100}, // )
	{0b000, 0b101, 0b010, 0b101, 0b000}, // *
	{0b000, 0b010, 0b111, 0b010, 0b000}, // +
	{0b000, 0b000, 0b000, 0b010, 0b100}, // ,
	{0b000, 0b000, 0b111, 0b000, 0b000}, // -
	{0b000, 0b000, 0b000, 0b000, 0b010}, // .
	{0b001, 0b001, 0b010, 0b100, 0b100}, // /
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b001, 0b001}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
	{0b000, 0b010, 0b000, 0b010, 0b000}, // :
	{0b000, 0b010, 0b000, 0b010, 0b100}, // ;
	{0b001, 0b010, 0b100, 0b010, 0b001}, // <
	{0b000, 0b111, 0b000, 0b111, 0b000}, // =
	{0b100, 0b010, 0b001, 0b010, 0b100}, // >
	{0b111, 0b001, 0b010, 0b000, 0b010}, // ?
	{0b010, 0b101, 0b111, 0b100, 0b011}, // @
	{0b010, 0b101, 0b111, 0b101, 0b101}, // A
	{0b110, 0b101, 0b110, 0b101, 0b110}, // B
	{0b011, 0b100, 0b100, 0b100, 0b011}, // C
	{0b110, 0b101, 0b101, 0b101, 0b110}, // D
	{0b111, 0b100, 0b110, 0b100, 0b111}, // E
	{0b111, 0b100, 0b110, 0b100, 0b100}, // F
	{0b011, 0b100, 0b101, 0b101, 0b011}, // G
	{0b101, 0b101, 0b111, 0b101, 0b101}, // H
	{0b111, 0b010, 0b010, 0b010, 0b111}, // I
	{0b011, 0b001, 0b001, 0b101, 0b010}, // J
	{0b101, 0b110, 0b100, 0b110, 0b101}, // K
	{0b100, 0b100, 0b100, 0b100, 0b111}, // L
	{0b101, 0b111, 0b101, 0b101, 0b101}, // M
	{0b101, 0b111, 0b111, 0b101, 0b101}, // N
	{0b010, 0b101, 0b101, 0b101, 0b010}, // O
	{0b110, 0b101, 0b110, 0b100, 0b100}, // P
	{0b010, 0b101, 0b101, 0b111, 0b011}, // Q
	{0b110, 0b101, 0b110, 0b101, 0b101}, // R
	{0b011, 0b100, 0b010, 0b001, 0b110}, // S
	{0b111, 0b010, 0b010, 0b010, 0b010}, // T
	{0b101, 0b101, 0b101, 0b101, 0b111}, // U
	{0b101, 0b101, 0b101, 0b101, 0b010}, // V
	{0b101, 0b101, 0b101, 0b111, 0b101}, // W
	{0b101, 0b101, 0b010, 0b101, 0b101}, // X
	{0b101, 0b101, 0b010, 0b010, 0b010}, // Y
	{0b111, 0b001, 0b010, 0b100, 0b111}, // Z
}

// packRows3 left-aligns 3-bit rows into a row-major table with a blank sixth row.
func packRows3(rows [][5]uint8) []byte {
	out := make([]byte, 0, len(rows)*6)
	for _, g := range rows {
		for _, r := range g {
			out = append(out, r<<5)
		}
		out = append(out, 0)
	}
	return out
}
