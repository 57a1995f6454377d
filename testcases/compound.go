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

package testcases

import (
	"math"

	"seehuhn.de/go/sdfcanvas/shape"
)

var compoundCases = []TestCase{
	{
		Name: "ring",
		Shapes: []shape.Shape{
			solid(white, 1, 0, 0, prim(shape.Circle, 4, 0, 0), hole(shape.Circle, 2.5, 0, 0)),
		},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name: "capsule",
		Shapes: []shape.Shape{
			solid(white, 1, 0, 0,
				prim(shape.Circle, 1.5, -2, 0),
				prim(shape.Square, 1.5, 0, 0),
				prim(shape.Circle, 1.5, 2, 0)),
		},
		Width:      96,
		Height:     64,
		Background: black,
	},
	{
		Name: "square_with_notch",
		Shapes: []shape.Shape{
			solid(white, 1, 0, 0, prim(shape.Square, 3.5, 0, 0), hole(shape.TriangleRight, 2, 1.5, 1.5)),
		},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name: "arrow",
		Shapes: []shape.Shape{
			solid(white, 1.2, 0, 0,
				shape.Primitive{Kind: shape.Square, Scale: 0.6, Translate: pt(-1.5, 0)},
				shape.Primitive{Kind: shape.TriangleRight, Scale: 1.2, Translate: pt(0.6, -1.2)},
				shape.Primitive{Kind: shape.TriangleRight, Scale: 1.2, Flip: shape.FlipY, Translate: pt(0.6, 1.2)}),
		},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name: "pinwheel",
		Shapes: func() []shape.Shape {
			var prims []shape.Primitive
			for i := range 4 {
				prims = append(prims, shape.Primitive{
					Kind:      shape.TriangleRight,
					Scale:     1.5,
					Rotate:    float64(i) * math.Pi / 2,
					Translate: pt(0, 0),
				})
			}
			s := solid(white, 1, 0, 0, prims...)
			s.Rotate = 0.2
			return []shape.Shape{s}
		}(),
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name: "overlapping_shapes",
		Shapes: []shape.Shape{
			solid(white, 2.5, -1.5, 0, shape.NewPrimitive(shape.Circle)),
			solid(white, 2, 1.5, 0.5, shape.NewPrimitive(shape.Square)),
		},
		Width:      64,
		Height:     64,
		Background: black,
	},
}

// hole returns a primitive which is subtracted from the shape so far.
func hole(kind shape.Kind, scale, x, y float64) shape.Primitive {
	p := prim(kind, scale, x, y)
	p.Join = shape.Difference
	return p
}
