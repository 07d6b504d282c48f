package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"rdl/gfx"
	"rdl/hal"
)

func lit(fb frameStore) int {
	n := 0
	b := fb.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, g, bl, _ := fb.At(x, y).RGBA(); r|g|bl != 0 {
				n++
			}
		}
	}
	return n
}

func TestScenesDraw(t *testing.T) {
	scenes := []string{"shapes", "text", "clock", "term"}
	if !testing.Short() {
		scenes = append(scenes, "bench")
	}
	for _, mono := range []bool{false, true} {
		for _, name := range scenes {
			cfg := config{width: 320, height: 240, mono: mono}
			fb, err := newFrameStore(cfg)
			require.NoError(t, err)
			var logged bytes.Buffer
			c := gfx.New(fb)
			step, err := newScene(name, c, hal.NewLogger(&logged))
			require.NoError(t, err, name)
			require.NoError(t, step(0), name)
			require.NoError(t, step(1), name)
			assert.NotZero(t, lit(fb), "%s mono=%v draws something", name, mono)
		}
	}
}

func TestUnknownScene(t *testing.T) {
	fb, err := newFrameStore(config{width: 32, height: 32})
	require.NoError(t, err)
	_, err = newScene("nope", gfx.New(fb), hal.NewLogger(nil))
	assert.Error(t, err)
}

func TestRotationFromDegrees(t *testing.T) {
	for deg, want := range map[int]gfx.Rotation{0: gfx.Rotation0, 90: gfx.Rotation90, 180: gfx.Rotation180, 270: gfx.Rotation270} {
		got, err := rotationFromDegrees(deg)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := rotationFromDegrees(45)
	assert.Equal(t, gfx.RotationInvalid, errors.Cause(err))
}

func TestNewFrameStore(t *testing.T) {
	fb, err := newFrameStore(config{width: 84, height: 48, mono: true})
	require.NoError(t, err)
	assert.Equal(t, hal.PixelFormatMonoVLSB, fb.Format())

	_, err = newFrameStore(config{width: 84, height: 47, mono: true})
	assert.Equal(t, gfx.HorizontalSize, errors.Cause(err))

	_, err = newFrameStore(config{width: 0, height: 10})
	assert.Equal(t, gfx.ShapeSize, errors.Cause(err))
}

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shot.bmp")
	cfg := config{headless: true, out: out, width: 64, height: 32, scene: "shapes", hz: 1000, ticks: 2, rotation: 90}
	require.NoError(t, run(cfg))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestScoreFromOps(t *testing.T) {
	assert.Equal(t, uint64(5000), scoreFromOps(5, 0), "zero durations count as 1us")
	assert.Equal(t, uint64(1000), scoreFromOps(1000, 1000*1000))
}
