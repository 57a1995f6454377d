// seehuhn.de/go/sdfcanvas - signed-distance shape rendering for terminals
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
// Command shapeterm renders a scene file to the terminal, to HTML, or to an
// image file.
//
// Usage:
//
//	shapeterm [flags] scene.yaml
//
// With -frames, every shape is rotated by one full turn over the given
// number of frames, and the frames are drawn in place on the terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/sdfcanvas"
	"seehuhn.de/go/sdfcanvas/encode"
	"seehuhn.de/go/sdfcanvas/scene"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("shapeterm: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	format string
	depth  encode.ColorDepth
	output string
	frames int
	ease   string
	delay  time.Duration

	depthSet bool
}

// imageEncoders write image files.
var imageEncoders = map[string]func(io.Writer, image.Image) error{
	"png": png.Encode,
	"tiff": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	},
	"bmp": bmp.Encode,
}

// easings are the choices for the -ease flag.
var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inoutquad":  ease.InOutQuad,
	"inoutcubic": ease.InOutCubic,
	"outbounce":  ease.OutBounce,
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("shapeterm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opt options
	fs.StringVar(&opt.format, "format", "ansi", "output format: ansi, braille, buffer, html, png, tiff or bmp")
	fs.TextVar(&opt.depth, "depth", encode.TrueColor, "color depth: monochrome, 8color, 256color or truecolor")
	fs.StringVar(&opt.output, "o", "", "write output to `file` instead of stdout")
	fs.IntVar(&opt.frames, "frames", 1, "number of animation frames")
	fs.StringVar(&opt.ease, "ease", "linear", "animation easing: linear, inoutquad, inoutcubic or outbounce")
	fs.DurationVar(&opt.delay, "delay", 40*time.Millisecond, "time between animation frames")
	verbose := fs.Bool("v", false, "log debug messages to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: shapeterm [flags] scene.yaml")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "depth" {
			opt.depthSet = true
		}
	})
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one scene file, got %d arguments", fs.NArg())
	}

	if *verbose {
		sdfcanvas.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer sdfcanvas.SetLogger(nil)
	}

	sc, err := scene.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	out := stdout
	if opt.output != "" {
		f, err := os.Create(opt.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	if err := render(w, sc, &opt); err != nil {
		return err
	}
	return w.Flush()
}

func render(w *bufio.Writer, sc *scene.File, opt *options) error {
	var opts []sdfcanvas.Option
	opts = append(opts, sdfcanvas.WithBackground(color.NRGBA(sc.Background)))
	if sc.AARegion != nil {
		opts = append(opts, sdfcanvas.WithAARegion(*sc.AARegion))
	}
	c, err := sdfcanvas.New(sc.Width, sc.Height, opts...)
	if err != nil {
		return err
	}
	shapes := sc.ShapeList()
	ids := make([]int, len(shapes))
	for i, s := range shapes {
		ids[i], err = c.AddShape(s)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}

	if enc, ok := imageEncoders[opt.format]; ok {
		if opt.frames != 1 {
			return fmt.Errorf("format %s does not support animation", opt.format)
		}
		img, err := c.Image()
		if err != nil {
			return err
		}
		return enc(w, img)
	}

	var format encode.Format
	if err := format.UnmarshalText([]byte(opt.format)); err != nil {
		return err
	}
	if opt.frames < 1 {
		return fmt.Errorf("invalid number of frames %d", opt.frames)
	}
	if opt.frames > 1 && format != encode.ANSI && format != encode.Braille {
		return fmt.Errorf("format %s does not support animation", format)
	}
	depth := opt.depth
	if format == encode.Braille && !opt.depthSet {
		depth = encode.Color8
	}

	fn, ok := easings[strings.ToLower(opt.ease)]
	if !ok {
		return fmt.Errorf("unknown easing %q", opt.ease)
	}
	spin := gween.New(0, 2*math.Pi, float32(opt.frames), fn)

	bounds := encode.Full(sc.Width, sc.Height)
	var angle float32
	for frame := range opt.frames {
		if frame > 0 {
			angle, _ = spin.Update(1)
			for i, s := range shapes {
				s.Rotate += float64(angle)
				if err := c.UpdateShape(ids[i], s); err != nil {
					return err
				}
			}
			time.Sleep(opt.delay)
		}

		data, err := c.Encode(bounds, depth, format)
		if err != nil {
			return err
		}
		if opt.frames > 1 {
			if frame == 0 {
				w.WriteString(clearScreen)
			}
			w.WriteString(cursorHome)
		}
		w.Write(data)
		if format != encode.Buffer {
			w.WriteByte('\n')
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Terminal control sequences for animations.
const (
	clearScreen = "\x1B[2J"
	cursorHome  = "\x1B[H"
)
