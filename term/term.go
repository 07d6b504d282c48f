// Package term runs a VT100-style text console on a gfx.Canvas.
package term

import (
	"github.com/pkg/errors"
	"tinygo.org/x/tinyterm"

	"rdl/font"
	"rdl/gfx"
)

// Config selects the console font. Zero values take the font's own metrics.
type Config struct {
	Font       *font.Font
	FontHeight int16
	FontOffset int16
}

// Console is a scrolling terminal: bytes written to it are drawn line by line,
// with ANSI SGR colors and erase-in-line support.
type Console struct {
	canvas *gfx.Canvas
	d      *gfx.Displayer
	t      *tinyterm.Terminal
	cfg    Config
}

// New returns a console drawing on c. The canvas is cleared.
func New(c *gfx.Canvas, cfg Config) (*Console, error) {
	if c == nil || c.Sink() == nil {
		return nil, errors.Wrap(gfx.BufferEmpty, "term: canvas")
	}
	if cfg.Font == nil {
		cfg.Font = font.Default
	}
	if err := cfg.Font.Validate(); err != nil {
		return nil, errors.Wrap(err, "term: font")
	}
	if cfg.FontHeight <= 0 {
		cfg.FontHeight = int16(cfg.Font.CellHeight())
	}
	if cfg.FontOffset <= 0 {
		// Glyphs draw with their baseline at the offset row.
		cfg.FontOffset = int16(cfg.Font.Height) - 1
	}
	if int(cfg.FontHeight) > c.Height() || cfg.Font.CellWidth() > c.Width() {
		return nil, errors.Wrapf(gfx.CharScreenBounds, "term: %s does not fit %dx%d", cfg.Font.Name, c.Width(), c.Height())
	}
	con := &Console{canvas: c, d: gfx.NewDisplayer(c), cfg: cfg}
	con.Reset()
	return con, nil
}

// Reset clears the canvas and homes the cursor.
func (con *Console) Reset() {
	con.canvas.FillScreen(gfx.Black)
	con.t = tinyterm.NewTerminal(con.d)
	con.t.Configure(&tinyterm.Config{
		Font:              con.cfg.Font,
		FontHeight:        con.cfg.FontHeight,
		FontOffset:        con.cfg.FontOffset,
		UseSoftwareScroll: true,
	})
}

// Canvas returns the canvas the console draws on.
func (con *Console) Canvas() *gfx.Canvas { return con.canvas }

// Write implements io.Writer.
func (con *Console) Write(p []byte) (int, error) { return con.t.Write(p) }

// WriteString writes s.
func (con *Console) WriteString(s string) (int, error) { return con.t.Write([]byte(s)) }

// Printf formats into the console.
func (con *Console) Printf(format string, args ...any) (int, error) {
	return con.t.Printf(format, args...)
}

// Flush pushes the canvas to the sink.
func (con *Console) Flush() error {
	return errors.Wrap(con.canvas.Flush(), "term: flush")
}

// Rows and Cols report the text grid.
func (con *Console) Rows() int { return con.canvas.Height() / int(con.cfg.FontHeight) }

func (con *Console) Cols() int { return con.canvas.Width() / con.cfg.Font.CellWidth() }
