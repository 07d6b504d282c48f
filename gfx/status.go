package gfx

import "fmt"

// Status is the result of a drawing entry point.
//
// It implements error so callers can wrap it, but the zero value Success is not an
// error condition; use Err to get a nil error for Success.
type Status uint8

const (
	Success Status = iota
	// ScreenBounds: the requested geometry lies outside the logical canvas.
	ScreenBounds
	// ShapeSize: a shape was given a zero or negative width or height.
	ShapeSize
	// CharScreenBounds: a glyph cell would fall outside the canvas.
	CharScreenBounds
	// CharFontASCIIRange: the character is outside the active font's range.
	CharFontASCIIRange
	// CharArrayNullptr: a nil character buffer.
	CharArrayNullptr
	// Nullptr: a required buffer or font is missing.
	Nullptr
	// Size: buffer length does not match width*height*depth.
	Size
	// HorizontalSize: 1-bit width (or height in vertical mode) is not a multiple of 8.
	HorizontalSize
	// BufferEmpty: the frame store was never assigned.
	BufferEmpty
	// BufferSize: the frame store has the wrong length for its geometry.
	BufferSize
	// RotationInvalid: the rotation is not one of the four supported modes.
	RotationInvalid
)

var statusNames = [...]string{
	Success:            "success",
	ScreenBounds:       "screen bounds",
	ShapeSize:          "shape size",
	CharScreenBounds:   "char screen bounds",
	CharFontASCIIRange: "char outside font range",
	CharArrayNullptr:   "char array nil",
	Nullptr:            "nil pointer",
	Size:               "size mismatch",
	HorizontalSize:     "horizontal size not byte aligned",
	BufferEmpty:        "buffer empty",
	BufferSize:         "buffer size",
	RotationInvalid:    "invalid rotation",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

func (s Status) Error() string { return "gfx: " + s.String() }

// Err returns nil for Success and s otherwise.
func (s Status) Err() error {
	if s == Success {
		return nil
	}
	return s
}

// OK reports whether s is Success.
func (s Status) OK() bool { return s == Success }

// firstFailure keeps the first non-success status.
func firstFailure(cur, next Status) Status {
	if cur != Success {
		return cur
	}
	return next
}
