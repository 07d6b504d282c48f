package gfx

// PixelSink is the capability a device driver provides to the engine.
//
// Coordinates are physical (pre-rotation). Implementations should ignore
// out-of-bounds coordinates; the Canvas never sends them.
type PixelSink interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
}

// PixelReader is implemented by sinks that keep a frame store the engine can read.
type PixelReader interface {
	Pixel(x, y int) Color
}

// Filler is implemented by sinks with a faster rectangle fill than per-pixel writes.
// Coordinates are physical and already clipped.
type Filler interface {
	FillRect(x, y, w, h int, c Color)
}

// Flusher is implemented by sinks that buffer pixels until an explicit update.
type Flusher interface {
	Flush() error
}
