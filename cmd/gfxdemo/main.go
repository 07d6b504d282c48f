// Command gfxdemo draws demo scenes through the rdl engine, either in a preview
// window or headless into a BMP snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"rdl/gfx"
	"rdl/hal"
	"rdl/internal/buildinfo"
)

type config struct {
	headless bool
	out      string
	width    int
	height   int
	mono     bool
	rotation int
	scene    string
	hz       int
	ticks    uint64
	scale    int
	wire     string
}

// frameStore is what the demo needs from a hal framebuffer.
type frameStore interface {
	gfx.PixelSink
	hal.Framebuffer
	image.Image
}

func main() {
	var cfg config
	var showVersion bool
	flag.BoolVar(&cfg.headless, "headless", false, "Run without a window and write a snapshot.")
	flag.StringVar(&cfg.out, "out", "gfxdemo.bmp", "Snapshot file written in headless mode.")
	flag.IntVar(&cfg.width, "width", 320, "Physical display width in pixels.")
	flag.IntVar(&cfg.height, "height", 240, "Physical display height in pixels.")
	flag.BoolVar(&cfg.mono, "mono", false, "Use a 1-bit page-organized frame store.")
	flag.IntVar(&cfg.rotation, "rotation", 0, "Rotation in degrees (0, 90, 180, 270).")
	flag.StringVar(&cfg.scene, "scene", "shapes", "Scene: shapes, text, clock, bench, term.")
	flag.IntVar(&cfg.hz, "hz", 30, "Frame rate.")
	flag.Uint64Var(&cfg.ticks, "ticks", 1, "Frames to render in headless mode (0 = run until interrupted).")
	flag.IntVar(&cfg.scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&cfg.wire, "wire", "", "Draw through an emulated display driver and stream each frame to this file as big-endian RGB565.")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit.")
	flag.Parse()

	if showVersion {
		fmt.Println(buildinfo.String("gfxdemo"))
		return
	}

	if err := run(cfg); err != nil {
		if errors.Cause(err) == context.Canceled {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	log := hal.NewLogger(os.Stdout)

	fb, err := newFrameStore(cfg)
	if err != nil {
		return err
	}
	var sink gfx.PixelSink = fb
	if cfg.wire != "" {
		gram, ok := fb.(*hal.RGB565)
		if !ok {
			return errors.New("gfxdemo: -wire needs an RGB565 frame store")
		}
		f, err := os.Create(cfg.wire)
		if err != nil {
			return errors.Wrap(err, "gfxdemo: wire")
		}
		defer f.Close()
		ds, err := hal.NewDisplayerSink(newPanel(gram, f))
		if err != nil {
			return err
		}
		sink = ds
	}
	canvas := gfx.New(sink)
	rot, err := rotationFromDegrees(cfg.rotation)
	if err != nil {
		return err
	}
	if err := canvas.SetRotation(rot).Err(); err != nil {
		return errors.Wrap(err, "gfxdemo: rotation")
	}

	step, err := newScene(cfg.scene, canvas, log)
	if err != nil {
		return err
	}

	if cfg.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, step, hal.HeadlessConfig{Hz: cfg.hz, Ticks: cfg.ticks})
		if err != nil && err != context.Canceled {
			return errors.Wrap(err, "gfxdemo: headless")
		}
		if err := writeSnapshot(cfg.out, fb); err != nil {
			return err
		}
		log.WriteLineString(fmt.Sprintf("gfxdemo: wrote %s (%dx%d %s)", cfg.out, fb.Width(), fb.Height(), fb.Format()))
		return nil
	}

	return runWindow(fb, canvas, step, cfg)
}

func newFrameStore(cfg config) (frameStore, error) {
	if cfg.mono {
		fb, err := hal.NewMono(cfg.width, cfg.height, nil)
		if err != nil {
			return nil, errors.Wrap(err, "gfxdemo: frame store")
		}
		return fb, nil
	}
	fb, err := hal.NewRGB565(cfg.width, cfg.height, nil)
	if err != nil {
		return nil, errors.Wrap(err, "gfxdemo: frame store")
	}
	return fb, nil
}

func rotationFromDegrees(deg int) (gfx.Rotation, error) {
	switch deg {
	case 0:
		return gfx.Rotation0, nil
	case 90:
		return gfx.Rotation90, nil
	case 180:
		return gfx.Rotation180, nil
	case 270:
		return gfx.Rotation270, nil
	}
	return 0, errors.Wrapf(gfx.RotationInvalid, "gfxdemo: rotation %d", deg)
}

// logStatus reports a failed drawing call and keeps going.
func logStatus(log hal.Logger, what string, st gfx.Status) {
	if st.OK() {
		return
	}
	log.WriteLineString(fmt.Sprintf("gfxdemo: %s: %v", what, st))
}
