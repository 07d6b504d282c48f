package main

import (
	"bytes"
	"fmt"
	"go/format"
	"image"
	"image/color"
	"io"

	_ "image/gif"
	_ "image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"rdl/gfx"
)

// Format is the byte layout of the generated bitmap.
type Format string

const (
	MonoH  Format = "mono-h" // gfx.AddrHorizontal, for DrawBitmap
	MonoV  Format = "mono-v" // gfx.AddrVertical, for DrawBitmap and DrawIcon
	RGB565 Format = "rgb565" // big-endian, for DrawBitmap16 and DrawSprite
	RGB888 Format = "rgb888" // for DrawBitmap24
)

func parseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case MonoH, MonoV, RGB565, RGB888:
		return f, nil
	}
	return "", errors.Errorf("imgconv: unknown format %q", s)
}

// Options control a conversion.
type Options struct {
	Format    Format
	Width     int
	Height    int
	Threshold uint8
	Invert    bool
	Name      string
	Package   string
}

// Bitmap is a converted image.
type Bitmap struct {
	Format Format
	Width  int
	Height int
	Data   []byte
}

// decode reads any image format registered with the image package.
func decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "imgconv: decode")
	}
	return img, nil
}

// resize scales src to w x h. A zero dimension keeps the aspect ratio; both zero
// keeps the source size.
func resize(src image.Image, w, h int) *image.RGBA {
	b := src.Bounds()
	switch {
	case w <= 0 && h <= 0:
		w, h = b.Dx(), b.Dy()
	case w <= 0:
		w = (b.Dx()*h + b.Dy()/2) / b.Dy()
	case h <= 0:
		h = (b.Dy()*w + b.Dx()/2) / b.Dx()
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Convert encodes img in the layout opts.Format asks for.
func Convert(img image.Image, opts Options) (*Bitmap, error) {
	if img == nil {
		return nil, errors.Wrap(gfx.Nullptr, "imgconv: image")
	}
	rgba := resize(img, opts.Width, opts.Height)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	bm := &Bitmap{Format: opts.Format, Width: w, Height: h}

	switch opts.Format {
	case MonoH:
		if w%8 != 0 {
			return nil, errors.Wrapf(gfx.HorizontalSize, "imgconv: width %d", w)
		}
		bm.Data = make([]byte, w*h/8)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if on(rgba.RGBAAt(x, y), opts) {
					bm.Data[y*(w/8)+x/8] |= 0x80 >> uint(x&7)
				}
			}
		}
	case MonoV:
		if h%8 != 0 {
			return nil, errors.Wrapf(gfx.HorizontalSize, "imgconv: height %d", h)
		}
		bm.Data = make([]byte, w*h/8)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if on(rgba.RGBAAt(x, y), opts) {
					bm.Data[(y/8)*w+x] |= 1 << uint(y&7)
				}
			}
		}
	case RGB565:
		bm.Data = make([]byte, 0, w*h*2)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := gfx.FromRGBA(rgba.RGBAAt(x, y))
				bm.Data = append(bm.Data, byte(c>>8), byte(c))
			}
		}
	case RGB888:
		bm.Data = make([]byte, 0, w*h*3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := rgba.RGBAAt(x, y)
				bm.Data = append(bm.Data, c.R, c.G, c.B)
			}
		}
	default:
		return nil, errors.Errorf("imgconv: unknown format %q", opts.Format)
	}
	return bm, nil
}

// on reports whether a pixel is lit: opaque enough and at least as bright as the
// threshold, flipped by Invert.
func on(c color.RGBA, opts Options) bool {
	lit := false
	if c.A >= 0x80 {
		y := color.GrayModel.Convert(c).(color.Gray).Y
		lit = y >= opts.Threshold
	}
	return lit != opts.Invert
}

// WriteGo writes bm as a Go source file declaring a []byte variable.
func WriteGo(w io.Writer, bm *Bitmap, opts Options) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by imgconv. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", opts.Package)
	fmt.Fprintf(&buf, "// %s is a %dx%d %s bitmap.\n", opts.Name, bm.Width, bm.Height, bm.Format)
	fmt.Fprintf(&buf, "var %s = []byte{\n", opts.Name)
	for i, b := range bm.Data {
		if i%12 == 0 {
			buf.WriteByte('\t')
		}
		fmt.Fprintf(&buf, "0x%02X,", b)
		if i%12 == 11 || i == len(bm.Data)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString("}\n\n")
	fmt.Fprintf(&buf, "const (\n\t%sWidth  = %d\n\t%sHeight = %d\n)\n", opts.Name, bm.Width, opts.Name, bm.Height)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "imgconv: format output")
	}
	_, err = w.Write(src)
	return errors.Wrap(err, "imgconv: write")
}
