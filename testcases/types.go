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

// Package testcases contains named scenes used by tests, benchmarks and
// the reference image generator.
package testcases

import (
	"image/color"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sdfcanvas/raster"
	"seehuhn.de/go/sdfcanvas/shape"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string        // lowercase a-z, 0-9 and _ only
	Shapes     []shape.Shape // painted in order
	Width      int           // canvas width in pixels
	Height     int           // canvas height in pixels
	Background color.NRGBA
}

// WorldToDevice returns the map from world coordinates to pixel
// coordinates, with the origin at the top-left corner of the canvas.
func (tc *TestCase) WorldToDevice() matrix.Matrix {
	s := float64(min(tc.Width, tc.Height)) / raster.WorldExtent
	return matrix.Scale(s, s).Translate(float64(tc.Width)/2, float64(tc.Height)/2)
}

// Coverage returns copies of the shapes, painted in opaque white without
// stroke or pattern.  Rendered over black, the red channel of the result
// is the fill coverage of the union of all shapes.
func (tc *TestCase) Coverage() []shape.Shape {
	res := make([]shape.Shape, len(tc.Shapes))
	for i, s := range tc.Shapes {
		s.Primitives = slices.Clone(s.Primitives)
		s.Blend = shape.BlendNormal
		s.Ink = white
		s.Pattern = shape.AllInk
		s.StrokeWidth = 0
		res[i] = s
	}
	return res
}

var (
	black       = color.NRGBA{A: 255}
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red         = color.NRGBA{R: 255, A: 255}
	green       = color.NRGBA{G: 255, A: 255}
	blue        = color.NRGBA{B: 255, A: 255}
	yellow      = color.NRGBA{R: 255, G: 255, A: 255}
	grey        = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	transparent = color.NRGBA{}
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// prim returns a primitive of the given kind, scale and position.
func prim(kind shape.Kind, scale, x, y float64) shape.Primitive {
	return shape.Primitive{Kind: kind, Scale: scale, Translate: pt(x, y)}
}

// solid returns a shape with the given ink, scale and position.
func solid(ink color.NRGBA, scale, x, y float64, prims ...shape.Primitive) shape.Shape {
	s := shape.New(prims...)
	s.Ink = ink
	s.Scale = scale
	s.Translate = pt(x, y)
	return s
}
