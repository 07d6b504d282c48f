package gfx

import "tinygo.org/x/drivers"

// Rotation is the display orientation, shared with the tinygo drivers.
type Rotation = drivers.Rotation

// Supported rotations, clockwise.
const (
	Rotation0   = drivers.Rotation0
	Rotation90  = drivers.Rotation90
	Rotation180 = drivers.Rotation180
	Rotation270 = drivers.Rotation270
)

func validRotation(r Rotation) bool {
	switch r {
	case Rotation0, Rotation90, Rotation180, Rotation270:
		return true
	}
	return false
}

// transform maps a logical coordinate to the physical frame store for rotation r
// on a panel of physical size pw x ph.
func transform(r Rotation, pw, ph, x, y int) (int, int) {
	switch r {
	case Rotation90:
		return pw - 1 - y, x
	case Rotation180:
		return pw - 1 - x, ph - 1 - y
	case Rotation270:
		return y, ph - 1 - x
	default:
		return x, y
	}
}

// inverseTransform maps a physical coordinate back to logical space.
func inverseTransform(r Rotation, pw, ph, px, py int) (int, int) {
	switch r {
	case Rotation90:
		return py, pw - 1 - px
	case Rotation180:
		return pw - 1 - px, ph - 1 - py
	case Rotation270:
		return ph - 1 - py, px
	default:
		return px, py
	}
}

// logicalSize returns width and height as seen by callers under rotation r.
func logicalSize(r Rotation, pw, ph int) (int, int) {
	if r == Rotation90 || r == Rotation270 {
		return ph, pw
	}
	return pw, ph
}
