// Package gfx is the device-independent 2D rendering and text layer shared by the
// display drivers.
//
// A Canvas turns drawing requests into per-pixel writes on a PixelSink. The sink is
// the device side: an in-memory frame store (see package hal) or a driver that pushes
// every pixel over the bus. Canvas never performs I/O of its own; callers flush the
// sink after drawing.
//
// Pipeline (fixed):
//
//	caller → font engine / rasterizer → rotation transform → SetPixel → sink.
//
// All methods are synchronous and a Canvas is not safe for concurrent use.
// Entry points report failures as a Status instead of panicking; the cursor-based
// print family records a sticky write error instead (see WriteError).
package gfx
