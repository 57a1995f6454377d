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

var primitiveCases = []TestCase{
	{
		Name:       "circle",
		Shapes:     []shape.Shape{solid(white, 3, 0, 0, shape.NewPrimitive(shape.Circle))},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "circle_small",
		Shapes:     []shape.Shape{solid(white, 0.4, 1, -1, shape.NewPrimitive(shape.Circle))},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "square",
		Shapes:     []shape.Shape{solid(white, 2.5, 0, 0, shape.NewPrimitive(shape.Square))},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "triangle_right",
		Shapes:     []shape.Shape{solid(white, 2, 0, 0, shape.NewPrimitive(shape.TriangleRight))},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "circle_wide_canvas",
		Shapes:     []shape.Shape{solid(white, 4, 5, 0, shape.NewPrimitive(shape.Circle))},
		Width:      128,
		Height:     64,
		Background: black,
	},
	{
		Name: "triangle_rotated",
		Shapes: []shape.Shape{func() shape.Shape {
			s := solid(white, 2, 0, 0, shape.NewPrimitive(shape.TriangleRight))
			s.Rotate = math.Pi / 6
			return s
		}()},
		Width:      64,
		Height:     64,
		Background: black,
	},
}
