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
// Package sdfcanvas renders shapes described by signed distance fields
// into an RGBA pixel buffer, for display in terminals and web pages.
//
// A [Canvas] holds the pixel buffer and an ordered list of shapes.  Shapes
// are combinations of unit primitives (see package shape), painted with an
// ink/paper pattern, an optional stroke and a blend mode.  The rendered
// buffer can be converted into ANSI escape sequences, Braille text, HTML or
// raw bytes (see package encode).
//
// World coordinates have their origin at the centre of the canvas, the y
// axis points down, and the shorter side of the canvas spans 10 world
// units.
package sdfcanvas

import (
	"image/color"
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/sdfcanvas/encode"
	"seehuhn.de/go/sdfcanvas/errors"
	"seehuhn.de/go/sdfcanvas/internal/logging"
	"seehuhn.de/go/sdfcanvas/raster"
	"seehuhn.de/go/sdfcanvas/shape"
)

// Canvas is a pixel buffer together with the shapes drawn on it.
//
// The pixel buffer is only updated by [Canvas.Render], and only if the
// canvas was changed since the last pass.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	background    color.NRGBA
	pix           []byte

	shapes []shape.Shape
	ids    []int
	nextID int

	dirty bool
	r     *raster.Rasteriser
	enc   encode.Encoder
}

// Option configures a [Canvas].
type Option func(*Canvas)

// WithBackground sets the color which every pass starts from.  The default
// is transparent black.
func WithBackground(bg color.NRGBA) Option {
	return func(c *Canvas) {
		c.background = bg
	}
}

// WithAARegion sets the width of the anti-aliasing band, in pixels.
func WithAARegion(pixels float64) Option {
	return func(c *Canvas) {
		c.r.AARegionPixels = pixels
	}
}

// WithSkipValidation disables the argument checks of the canvas, the
// rasteriser and the encoders.  Invalid input then causes a panic.
func WithSkipValidation() Option {
	return func(c *Canvas) {
		c.r.SkipValidation = true
		c.enc.SkipValidation = true
	}
}

const opNew = "sdfcanvas.New"

// New allocates a canvas of the given size in pixels.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Range(opNew, "invalid canvas size %dx%d", width, height)
	}
	if width > maxSide || height > maxSide {
		return nil, errors.Range(opNew, "canvas size %dx%d too large", width, height)
	}

	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]byte, 4*width*height),
		dirty:  true,
		r:      raster.NewRasteriser(),
	}
	for _, opt := range opts {
		opt(c)
	}

	aa := c.r.AARegionPixels
	if math.IsNaN(aa) || math.IsInf(aa, 0) || aa < 0 {
		return nil, errors.Range(opNew, "invalid anti-aliasing width %g", aa)
	}
	return c, nil
}

// maxSide limits the canvas dimensions.
const maxSide = 1 << 14

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.height }

// WorldUnitsPerPixel returns the size of one pixel in world units.
func (c *Canvas) WorldUnitsPerPixel() float64 {
	return raster.WorldUnitsPerPixel(c.width, c.height)
}

// Background returns the background color.
func (c *Canvas) Background() color.NRGBA {
	return c.background
}

// SetBackground changes the background color.
func (c *Canvas) SetBackground(bg color.NRGBA) {
	if bg != c.background {
		c.background = bg
		c.dirty = true
	}
}

// AddShape appends s to the paint list and returns an identifier for the
// new shape.  Identifiers are positive and never reused.  The canvas keeps
// its own copy of s.
func (c *Canvas) AddShape(s shape.Shape) (int, error) {
	if !c.r.SkipValidation {
		if err := shape.Validate(&s); err != nil {
			return 0, err
		}
	}
	s.Primitives = slices.Clone(s.Primitives)

	c.nextID++
	c.shapes = append(c.shapes, s)
	c.ids = append(c.ids, c.nextID)
	c.dirty = true
	return c.nextID, nil
}

// UpdateShape replaces the shape with the given identifier.
func (c *Canvas) UpdateShape(id int, s shape.Shape) error {
	i := slices.Index(c.ids, id)
	if i < 0 {
		return errors.Range("sdfcanvas.UpdateShape", "unknown shape id %d", id)
	}
	if !c.r.SkipValidation {
		if err := shape.Validate(&s); err != nil {
			return err
		}
	}
	s.Primitives = slices.Clone(s.Primitives)
	c.shapes[i] = s
	c.dirty = true
	return nil
}

// RemoveShape removes the shape with the given identifier from the paint
// list.  The return value reports whether the shape was present.
func (c *Canvas) RemoveShape(id int) bool {
	i := slices.Index(c.ids, id)
	if i < 0 {
		return false
	}
	c.shapes = slices.Delete(c.shapes, i, i+1)
	c.ids = slices.Delete(c.ids, i, i+1)
	c.dirty = true
	return true
}

// Shapes returns a copy of the paint list, in paint order.
func (c *Canvas) Shapes() []shape.Shape {
	res := make([]shape.Shape, len(c.shapes))
	for i, s := range c.shapes {
		s.Primitives = slices.Clone(s.Primitives)
		res[i] = s
	}
	return res
}

// SetLogger installs the logger used by all sdfcanvas packages.  Rendering
// passes and encoder calls are logged at debug level.  A nil logger
// restores the default, which discards all records.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}
