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

// Package encode converts regions of an RGBA pixel buffer into terminal
// escape sequences, Braille text, HTML markup or raw bytes.
//
// The text encoders pack two vertically adjacent pixels into one output
// cell, so the height of the encoded region must be even.  Text lines are
// separated by "\n" ("<br>\n" for HTML), without a trailing separator.
package encode

import (
	"image"
	"strconv"
	"strings"

	"seehuhn.de/go/sdfcanvas/errors"
	"seehuhn.de/go/sdfcanvas/internal/logging"
)

// ColorDepth selects the color resolution of the text encoders.
type ColorDepth uint8

// These are the supported color depths.
const (
	Monochrome ColorDepth = iota
	Color8
	Color256
	TrueColor
)

var depthNames = []string{"monochrome", "8color", "256color", "truecolor"}

func (d ColorDepth) String() string {
	if int(d) < len(depthNames) {
		return depthNames[d]
	}
	return "ColorDepth(" + strconv.Itoa(int(d)) + ")"
}

// MarshalText implements [encoding.TextMarshaler].
func (d ColorDepth) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *ColorDepth) UnmarshalText(text []byte) error {
	i, err := parseName("color depth", depthNames, text)
	if err != nil {
		return err
	}
	*d = ColorDepth(i)
	return nil
}

// Format selects the output representation.
type Format uint8

// These are the supported output formats.
const (
	ANSI Format = iota
	Braille
	Buffer
	HTML
)

var formatNames = []string{"ansi", "braille", "buffer", "html"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	i, err := parseName("output format", formatNames, text)
	if err != nil {
		return err
	}
	*f = Format(i)
	return nil
}

func parseName(what string, names []string, text []byte) (int, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range names {
		if s == name {
			return i, nil
		}
	}
	return 0, errors.Range("encode.Parse", "unknown %s %q", what, s)
}

// Full returns the bounds covering a whole width×height buffer.  The
// height is rounded down to an even number of rows.
func Full(width, height int) image.Rectangle {
	return image.Rect(0, 0, width, height&^1)
}

// Encoder converts pixel buffer regions.  The zero value is ready for use.
type Encoder struct {
	// SkipValidation disables the argument checks.  The caller is then
	// responsible for passing well-formed arguments; unknown color depths
	// or formats cause a panic.
	SkipValidation bool
}

const opEncode = "encode.Encode"

// Encode converts the region bounds of pix, using the default [Encoder].
func Encode(bounds image.Rectangle, depth ColorDepth, pix []byte, stride int, format Format) ([]byte, error) {
	var e Encoder
	return e.Encode(bounds, depth, pix, stride, format)
}

// Encode converts the region bounds of the pixel buffer pix.
//
// The buffer holds 4 bytes (R, G, B, A) per pixel in row-major order, with
// stride bytes per row.  The region includes bounds.Min and excludes
// bounds.Max.  Text formats return UTF-8 text, [Buffer] returns the region
// as tightly packed RGBA bytes.
func (e *Encoder) Encode(bounds image.Rectangle, depth ColorDepth, pix []byte, stride int, format Format) ([]byte, error) {
	if !e.SkipValidation {
		if err := validate(bounds, depth, pix, stride, format); err != nil {
			return nil, err
		}
	}

	src := region{pix: pix, stride: stride, bounds: bounds}
	var res []byte
	switch format {
	case ANSI:
		res = encodeANSI(src, depth)
	case Braille:
		res = encodeBraille(src, depth)
	case Buffer:
		res = encodeBuffer(src)
	case HTML:
		res = encodeHTML(src, depth)
	default:
		panic(errors.Config(opEncode, "unknown output format %d", format))
	}

	logging.Logger().Debug("encode",
		"format", format, "depth", depth, "bounds", bounds, "bytes", len(res))
	return res, nil
}

func validate(bounds image.Rectangle, depth ColorDepth, pix []byte, stride int, format Format) error {
	if pix == nil {
		return errors.Type(opEncode, "nil pixel buffer")
	}
	if int(format) >= len(formatNames) {
		return errors.Range(opEncode, "unknown output format %d", format)
	}
	if int(depth) >= len(depthNames) {
		return errors.Range(opEncode, "unknown color depth %d", depth)
	}
	if format == Braille && depth != Monochrome && depth != Color8 {
		return errors.Config(opEncode, "braille output does not support %s", depth)
	}
	if stride <= 0 || stride%4 != 0 || len(pix)%stride != 0 {
		return errors.Range(opEncode, "invalid stride %d for %d-byte buffer", stride, len(pix))
	}
	width, height := stride/4, len(pix)/stride
	if bounds.Min.X < 0 || bounds.Min.Y < 0 || bounds.Min.X > bounds.Max.X || bounds.Min.Y > bounds.Max.Y {
		return errors.Range(opEncode, "invalid bounds %v", bounds)
	}
	if bounds.Max.X > width || bounds.Max.Y > height {
		return errors.Range(opEncode, "bounds %v exceed %dx%d buffer", bounds, width, height)
	}
	if bounds.Dy()%2 != 0 {
		return errors.Range(opEncode, "bounds height %d is odd", bounds.Dy())
	}
	return nil
}

// region is a rectangular part of an RGBA pixel buffer.
type region struct {
	pix    []byte
	stride int
	bounds image.Rectangle
}

// at returns the four bytes of the pixel (x, y).
func (r region) at(x, y int) []byte {
	i := y*r.stride + 4*x
	return r.pix[i : i+4 : i+4]
}
