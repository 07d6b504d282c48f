package main

import (
	"image"
	"image/draw"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// writeSnapshot encodes the frame store as a 24-bit BMP.
func writeSnapshot(path string, fb image.Image) error {
	img := image.NewRGBA(fb.Bounds())
	draw.Draw(img, img.Bounds(), fb, fb.Bounds().Min, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "gfxdemo: snapshot")
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "gfxdemo: encode %s", path)
	}
	return errors.Wrapf(f.Close(), "gfxdemo: close %s", path)
}
