// Command pixconv converts a raw frame file between pixel formats.
//
//	pixconv -in frame.yuy2 -from YUY2 -to I420 -width 640 -height 480 -out frame.i420
//	pixconv -in frame.rgb565 -from RGB565 -to I420 -width 320 -height 240 -png preview.png
//	pixconv -pattern -from NV12 -to RGB565 -width 640 -height 480 -png bars.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/pion/pixfmt/internal/logging"
	"github.com/pion/pixfmt/pkg/accel/swizzle"
	"github.com/pion/pixfmt/pkg/convert"
	"github.com/pion/pixfmt/pkg/frame"
	"github.com/pion/pixfmt/pkg/io/video"
)

var logger = logging.NewLogger("pixfmt/cmd/pixconv")

type config struct {
	in, out, pngOut string
	from, to        frame.Format
	width, height   int
	pitch           int
	accelerate      bool
	pattern         bool
	verbose         bool
}

func parseFlags(args []string) (*config, bool, error) {
	fs := flag.NewFlagSet("pixconv", flag.ContinueOnError)
	var (
		c        config
		from, to string
		list     bool
	)
	fs.StringVar(&c.in, "in", "", "input raw frame")
	fs.StringVar(&c.out, "out", "", "output raw frame")
	fs.StringVar(&c.pngOut, "png", "", "also write the converted frame as PNG")
	fs.StringVar(&from, "from", "", "input format")
	fs.StringVar(&to, "to", "", "output format")
	fs.IntVar(&c.width, "width", 0, "frame width in pixels")
	fs.IntVar(&c.height, "height", 0, "frame height in pixels")
	fs.IntVar(&c.pitch, "pitch", 0, "input row stride in pixels (defaults to width)")
	fs.BoolVar(&c.accelerate, "accel", true, "use the word-at-a-time RGB reorder backend")
	fs.BoolVar(&c.pattern, "pattern", false, "convert a generated colour bar card in the -from format instead of -in")
	fs.BoolVar(&c.verbose, "v", false, "log conversion routing at debug level to stderr")
	fs.BoolVar(&list, "list", false, "list supported formats and exit")
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}
	if list {
		return nil, true, nil
	}

	var err error
	if c.from, err = frame.ParseFormat(from); err != nil {
		return nil, false, err
	}
	if c.to, err = frame.ParseFormat(to); err != nil {
		return nil, false, err
	}
	if c.in == "" && !c.pattern {
		return nil, false, errors.New("one of -in or -pattern is required")
	}
	if c.out == "" && c.pngOut == "" {
		return nil, false, errors.New("one of -out or -png is required")
	}
	if c.pitch == 0 {
		c.pitch = c.width
	}
	return &c, false, nil
}

func source(c *config) ([]byte, error) {
	if !c.pattern {
		return os.ReadFile(c.in)
	}
	card, err := video.ColorBars(c.from, c.width, c.height, 0)
	if err != nil {
		return nil, err
	}
	c.pitch = c.width
	return card.Pix, nil
}

func run(c *config) error {
	src, err := source(c)
	if err != nil {
		return err
	}

	var opts []convert.Option
	if c.accelerate {
		opts = append(opts, convert.WithAccelerator(swizzle.New()))
	}
	if c.verbose {
		opts = append(opts, convert.WithLoggerFactory(logging.NewLoggerFactory(os.Stderr, logging.LogLevelDebug)))
	}
	engine := convert.NewEngine(opts...)

	dst := frame.NewImage(c.to, c.width, c.height)
	if err := engine.Convert(src, dst.Pix, c.pitch, c.width, c.height, c.from, c.to); err != nil {
		return fmt.Errorf("convert %s to %s: %w", c.from, c.to, err)
	}
	logger.Infof("converted %dx%d %s to %s (%d bytes)", c.width, c.height, c.from, c.to, len(dst.Pix))

	if c.out != "" {
		if err := os.WriteFile(c.out, dst.Pix, 0o644); err != nil {
			return err
		}
	}
	if c.pngOut != "" {
		img, err := video.FrameToImage(dst)
		if err != nil {
			return err
		}
		return writePNG(c.pngOut, img)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func main() {
	c, list, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if list {
		names := make([]string, 0, len(frame.Formats()))
		for _, f := range frame.Formats() {
			names = append(names, fmt.Sprintf("%d=%s(%s)", f, f, f.Category()))
		}
		fmt.Println(strings.Join(names, "\n"))
		return
	}
	if err := run(c); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
