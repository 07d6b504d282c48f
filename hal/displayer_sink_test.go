package hal

import (
	"bytes"
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"

	"rdl/gfx"
)

type fakeDriver struct {
	w, h    int16
	pix     map[[2]int16]color.RGBA
	fills   int
	failErr error
	shown   int
}

func newFakeDriver(w, h int16) *fakeDriver {
	return &fakeDriver{w: w, h: h, pix: map[[2]int16]color.RGBA{}}
}

func (d *fakeDriver) Size() (int16, int16) { return d.w, d.h }

func (d *fakeDriver) SetPixel(x, y int16, c color.RGBA) { d.pix[[2]int16{x, y}] = c }

func (d *fakeDriver) Display() error {
	d.shown++
	return d.failErr
}

// fillDriver adds a rectangle fill that can be told to refuse.
type fillDriver struct {
	*fakeDriver
	refuse bool
}

func (d *fillDriver) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	if d.refuse {
		return errors.New("unsupported")
	}
	d.fills++
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			d.pix[[2]int16{xx, yy}] = c
		}
	}
	return nil
}

var _ drivers.Displayer = (*fakeDriver)(nil)

func TestDisplayerSinkNil(t *testing.T) {
	_, err := NewDisplayerSink(nil)
	assert.Equal(t, gfx.BufferEmpty, errors.Cause(err))
}

func TestDisplayerSinkPixels(t *testing.T) {
	d := newFakeDriver(16, 8)
	s, err := NewDisplayerSink(d)
	require.NoError(t, err)
	assert.Same(t, d, s.Driver())

	c := gfx.New(s)
	assert.Equal(t, 16, c.Width())
	assert.Equal(t, 8, c.Height())

	c.DrawPixel(2, 3, gfx.Red)
	assert.Equal(t, gfx.Red.RGBA(), d.pix[[2]int16{2, 3}])

	c.FillRectangle(0, 0, 4, 2, gfx.Blue)
	assert.Zero(t, d.fills)
	assert.Equal(t, gfx.Blue.RGBA(), d.pix[[2]int16{3, 1}])

	require.NoError(t, c.Flush())
	assert.Equal(t, 1, d.shown)
}

func TestDisplayerSinkFill(t *testing.T) {
	d := &fillDriver{fakeDriver: newFakeDriver(16, 8)}
	s, err := NewDisplayerSink(d)
	require.NoError(t, err)

	s.FillRect(1, 1, 3, 3, gfx.Green)
	assert.Equal(t, 1, d.fills)
	assert.Len(t, d.pix, 9)

	d.refuse = true
	s.FillRect(8, 0, 2, 2, gfx.Green)
	assert.Equal(t, 1, d.fills)
	assert.Len(t, d.pix, 13, "falls back to pixels")
}

func TestDisplayerSinkFlushError(t *testing.T) {
	d := newFakeDriver(4, 4)
	d.failErr = errors.New("spi")
	s, err := NewDisplayerSink(d)
	require.NoError(t, err)
	err = s.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hal: display")
	assert.Equal(t, d.failErr, errors.Cause(err))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.WriteLineString("one")
	l.WriteLineBytes([]byte("two"))
	assert.Equal(t, "one\ntwo\n", buf.String())

	assert.NotPanics(t, func() { NewLogger(nil).WriteLineString("dropped") })
}

func TestRunHeadlessTicks(t *testing.T) {
	var seen []uint64
	err := RunHeadless(context.Background(), func(tick uint64) error {
		seen = append(seen, tick)
		return nil
	}, HeadlessConfig{Hz: 1000, Ticks: 3})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 2}, seen)
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(tick uint64) error {
		if tick == 1 {
			return boom
		}
		return nil
	}, HeadlessConfig{Hz: 1000})
	assert.Equal(t, boom, err)
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, nil, HeadlessConfig{Hz: 1000})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
