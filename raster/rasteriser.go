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

// Package raster renders shapes into an RGBA pixel buffer.
//
// Each pixel centre is mapped to world coordinates and every shape is
// evaluated through its signed distance field.  Fill and stroke coverage
// are derived from the distance, the fill color is taken from the shape's
// pattern, and the result is composited over the pixel using the shape's
// blend mode.
package raster

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sdfcanvas/errors"
	"seehuhn.de/go/sdfcanvas/internal/logging"
	"seehuhn.de/go/sdfcanvas/shape"
)

// Rasteriser converts shape lists into pixels.  Create one instance and
// reuse it for multiple passes.  Internal tables grow as needed but never
// shrink, so that repeated passes do not allocate.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// AARegionPixels is the width of the anti-aliasing band, in pixels.
	// Must be non-negative.  Zero gives aliased edges.
	AARegionPixels float64

	// SkipValidation disables the checks on the shape list.  The caller
	// is then responsible for passing valid shapes; enum values which are
	// not recognized at the point of use cause a panic.
	SkipValidation bool

	// Pass-scoped tables, indexed like the shape list or the pixel grid.
	colX     []float64
	rowY     []float64
	bounds   []rect.Rect
	fields   []shape.Field
	strokes  []RGBA
	patterns []PatternSampler
}

// NewRasteriser returns a Rasteriser with default settings.
func NewRasteriser() *Rasteriser {
	return &Rasteriser{
		AARegionPixels: defaultAARegionPixels,
	}
}

// WorldUnitsPerPixel returns the size of one pixel in world units, for a
// canvas of the given size.  The shorter canvas side spans WorldExtent
// world units.
func WorldUnitsPerPixel(width, height int) float64 {
	return WorldExtent / float64(min(width, height))
}

const opRasterise = "raster.Rasterise"

// Rasterise renders shapes into pix, which holds width×height pixels as
// 4 bytes (R, G, B, A) each, in row-major order.
//
// Every pixel is first reset to the background color.  Shapes are then
// painted in list order, so that later shapes appear on top.  The world
// origin is the centre of the canvas and the y axis points down.
//
// The arguments are checked before any pixel is written.  On error, pix is
// left unchanged.
func (r *Rasteriser) Rasterise(pix []byte, width, height int, background color.NRGBA, shapes []shape.Shape) error {
	if pix == nil {
		return errors.Type(opRasterise, "nil pixel buffer")
	}
	if width <= 0 || height <= 0 {
		return errors.Range(opRasterise, "invalid canvas size %dx%d", width, height)
	}
	if len(pix) != 4*width*height {
		return errors.Range(opRasterise, "pixel buffer has %d bytes, want %d", len(pix), 4*width*height)
	}
	if math.IsNaN(r.AARegionPixels) || math.IsInf(r.AARegionPixels, 0) || r.AARegionPixels < 0 {
		return errors.Range(opRasterise, "invalid anti-aliasing width %g", r.AARegionPixels)
	}
	if !r.SkipValidation {
		for i := range shapes {
			if err := shape.Validate(&shapes[i]); err != nil {
				return err
			}
		}
	}

	// 1. reset to background
	for i := 0; i < len(pix); i += 4 {
		p := pix[i : i+4 : i+4]
		p[0] = background.R
		p[1] = background.G
		p[2] = background.B
		p[3] = background.A
	}

	// 2. anti-aliasing band in world units
	wupp := WorldUnitsPerPixel(width, height)
	aa := r.AARegionPixels * wupp
	aaHalf := aa / 2

	// 3. per-shape tables
	r.prepareShapes(shapes, aaHalf, wupp)

	// 4. world coordinates of pixel centres
	r.colX = worldCoords(r.colX, width, float64(width)*wupp)
	r.rowY = worldCoords(r.rowY, height, float64(height)*wupp)

	// 5. paint
	culled := 0
	painted := 0
	for y, wy := range r.rowY {
		row := pix[4*y*width : 4*(y+1)*width]
		for x, wx := range r.colX {
			p := vec.Vec2{X: wx, Y: wy}
			dst := load(row, 4*x)
			changed := false
			for i := range shapes {
				if !shape.Contains(&r.bounds[i], p) {
					culled++
					continue
				}
				s := &shapes[i]
				d := r.fields[i].Distance(p)

				var fill RGBA
				var fillOpacity float64
				if c := FillCoverage(aa, aaHalf, d); c > 0 {
					fill = r.patterns[i].Sample(s, p, wupp)
					fillOpacity = c * fill.A
				}
				stroke := r.strokes[i]
				strokeOpacity := StrokeCoverage(aaHalf, d, s, wupp) * stroke.A

				if fillOpacity <= 0 && strokeOpacity <= 0 {
					continue
				}
				dst = Composite(s.Blend, dst, fill, fillOpacity, stroke, strokeOpacity)
				changed = true
			}
			// 6. quantize
			if changed {
				store(row, 4*x, dst)
				painted++
			}
		}
	}

	logging.Logger().Debug("rasterise",
		"width", width, "height", height, "shapes", len(shapes),
		"painted", painted, "culled", culled)
	return nil
}

// prepareShapes fills the per-shape tables for one pass.
func (r *Rasteriser) prepareShapes(shapes []shape.Shape, aaHalf, wupp float64) {
	n := len(shapes)
	r.bounds = resize(r.bounds, n)
	r.fields = resize(r.fields, n)
	r.strokes = resize(r.strokes, n)
	r.patterns = resize(r.patterns, n)
	for i := range shapes {
		s := &shapes[i]
		expand := aaHalf + StrokeMargin(s, wupp) + boundsSlack
		r.bounds[i] = shape.Bounds(s, expand)
		r.fields[i].Reset(s)
		r.strokes[i] = Normalize(s.StrokeColor)
		r.patterns[i] = PatternSampler{}
	}
}

// worldCoords returns the world coordinates of the centres of n pixels
// spanning extent world units, centred on zero.
func worldCoords(buf []float64, n int, extent float64) []float64 {
	buf = resize(buf, n)
	for i := range buf {
		buf[i] = ((float64(i)+0.5)/float64(n) - 0.5) * extent
	}
	return buf
}

// resize returns a slice of length n, reusing the storage of buf if
// possible.  The contents are not cleared.
func resize[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}

// Reset restores the default settings, preserving the capacity of the
// internal tables.
func (r *Rasteriser) Reset() {
	r.AARegionPixels = defaultAARegionPixels
	r.SkipValidation = false

	r.colX = r.colX[:0]
	r.rowY = r.rowY[:0]
	r.bounds = r.bounds[:0]
	r.fields = r.fields[:0]
	r.strokes = r.strokes[:0]
	r.patterns = r.patterns[:0]
}

const (
	// WorldExtent is the length of the shorter canvas side in world units.
	WorldExtent = 10.0

	// defaultAARegionPixels is the default width of the anti-aliasing band
	// in pixels.
	defaultAARegionPixels = 0.85

	// boundsSlack enlarges the culling boxes to absorb rounding errors in
	// the forward transforms.
	boundsSlack = 1e-9
)
