// Command imgconv turns an image file into a Go byte slice the gfx blitter can draw.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rdl/internal/buildinfo"
)

var (
	formatFlag    string
	widthFlag     int
	heightFlag    int
	thresholdFlag uint8
	invertFlag    bool
	nameFlag      string
	packageFlag   string
	outFlag       string
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]) + " [file]",
	Short:        "imgconv converts images to gfx bitmap sources",
	Long:         "imgconv converts an image (png, gif, bmp, tiff, webp) into a Go []byte in one of the gfx blitter layouts. Without a file it reads standard input.",
	Version:      buildinfo.String("imgconv"),
	SilenceUsage: true,
	Args:         cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		src := "stdin"
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "imgconv")
			}
			defer f.Close()
			in = f
			src = args[0]
		}
		out := cmd.OutOrStdout()
		if outFlag != "" {
			f, err := os.Create(outFlag)
			if err != nil {
				return errors.Wrap(err, "imgconv")
			}
			defer f.Close()
			out = f
		}
		if err := convertFile(in, out); err != nil {
			return errors.Wrapf(err, "imgconv: %s", src)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, `format`, `f`, string(MonoH), `output layout: mono-h, mono-v, rgb565, rgb888`)
	rootCmd.Flags().IntVar(&widthFlag, `width`, 0, `target width (0 keeps aspect ratio)`)
	rootCmd.Flags().IntVar(&heightFlag, `height`, 0, `target height (0 keeps aspect ratio)`)
	rootCmd.Flags().Uint8Var(&thresholdFlag, `threshold`, 128, `luminance at or above which a mono pixel is set`)
	rootCmd.Flags().BoolVar(&invertFlag, `invert`, false, `invert mono output`)
	rootCmd.Flags().StringVarP(&nameFlag, `name`, `n`, `bitmap`, `Go variable name`)
	rootCmd.Flags().StringVarP(&packageFlag, `package`, `p`, `main`, `Go package name`)
	rootCmd.Flags().StringVarP(&outFlag, `out`, `o`, ``, `output file (default stdout)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func convertFile(in io.Reader, out io.Writer) error {
	f, err := parseFormat(strings.ToLower(formatFlag))
	if err != nil {
		return err
	}
	opts := Options{
		Format:    f,
		Width:     widthFlag,
		Height:    heightFlag,
		Threshold: thresholdFlag,
		Invert:    invertFlag,
		Name:      nameFlag,
		Package:   packageFlag,
	}
	img, err := decode(in)
	if err != nil {
		return err
	}
	bm, err := Convert(img, opts)
	if err != nil {
		return err
	}
	if err := WriteGo(out, bm, opts); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "imgconv: %dx%d %s, %d bytes\n", bm.Width, bm.Height, bm.Format, len(bm.Data))
	return nil
}
