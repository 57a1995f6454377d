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
	"image/color"

	"seehuhn.de/go/sdfcanvas/shape"
)

var strokeCases = []TestCase{
	{
		Name:       "stroke_center",
		Shapes:     []shape.Shape{stroked(shape.StrokeCenter, shape.UnitPixel, 3)},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "stroke_inside",
		Shapes:     []shape.Shape{stroked(shape.StrokeInside, shape.UnitWorld, 0.4)},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "stroke_outside",
		Shapes:     []shape.Shape{stroked(shape.StrokeOutside, shape.UnitShape, 1.5)},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name: "stroke_only",
		Shapes: []shape.Shape{func() shape.Shape {
			s := stroked(shape.StrokeCenter, shape.UnitPixel, 2)
			s.Ink = transparent
			return s
		}()},
		Width:      64,
		Height:     64,
		Background: grey,
	},
}

var patternCases = []TestCase{
	{
		Name:       "breton",
		Shapes:     []shape.Shape{striped(shape.Breton, shape.UnitPixel, 4, 0.5)},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "pinstripe",
		Shapes:     []shape.Shape{striped(shape.Pinstripe, shape.UnitWorld, 0.5, 0.25)},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "breton_fine",
		Shapes:     []shape.Shape{striped(shape.Breton, shape.UnitPixel, 1.3, 0.5)},
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "all_paper",
		Shapes:     []shape.Shape{striped(shape.AllPaper, shape.UnitPixel, 1, 0.5)},
		Width:      32,
		Height:     32,
		Background: black,
	},
}

var blendCases = []TestCase{
	{
		Name:       "multiply",
		Shapes:     blended(shape.BlendMultiply),
		Width:      64,
		Height:     64,
		Background: white,
	},
	{
		Name:       "screen",
		Shapes:     blended(shape.BlendScreen),
		Width:      64,
		Height:     64,
		Background: black,
	},
	{
		Name:       "overlay",
		Shapes:     blended(shape.BlendOverlay),
		Width:      64,
		Height:     64,
		Background: grey,
	},
	{
		Name: "translucent",
		Shapes: []shape.Shape{
			solid(color.NRGBA{R: 255, A: 128}, 2.5, -1, 0, shape.NewPrimitive(shape.Circle)),
			solid(color.NRGBA{B: 255, A: 128}, 2.5, 1, 0, shape.NewPrimitive(shape.Circle)),
		},
		Width:      64,
		Height:     64,
		Background: transparent,
	},
}

// stroked returns a circle with a yellow stroke over red ink.
func stroked(pos shape.StrokePosition, unit shape.Unit, width float64) shape.Shape {
	s := solid(red, 3, 0, 0, shape.NewPrimitive(shape.Circle), hole(shape.Square, 0.4, 0, 0))
	s.StrokeColor = yellow
	s.StrokePosition = pos
	s.StrokeUnit = unit
	s.StrokeWidth = width
	return s
}

// striped returns a square filled with a blue-on-white stripe pattern.
func striped(p shape.Pattern, unit shape.Unit, scale, ratio float64) shape.Shape {
	s := solid(blue, 3.5, 0, 0, shape.NewPrimitive(shape.Square))
	s.Paper = white
	s.Pattern = p
	s.PatternUnit = unit
	s.PatternScale = scale
	s.PatternRatio = ratio
	s.Rotate = 0.3
	return s
}

// blended returns three overlapping circles, the later two painted with
// the given blend mode.
func blended(mode shape.BlendMode) []shape.Shape {
	a := solid(red, 2.2, 0, -1, shape.NewPrimitive(shape.Circle))
	b := solid(green, 2.2, -1, 1, shape.NewPrimitive(shape.Circle))
	c := solid(blue, 2.2, 1, 1, shape.NewPrimitive(shape.Circle))
	b.Blend = mode
	c.Blend = mode
	return []shape.Shape{a, b, c}
}
