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

// Package shape describes vector shapes built from unit-sized primitives,
// and evaluates their signed distance fields and bounding boxes.
//
// A [Shape] is an ordered list of [Primitive] values together with a
// shape-level transform and paint settings.  Distances are negative inside
// a shape, zero on its boundary and positive outside, measured in world
// units.
package shape

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Primitive is one building block of a [Shape].
//
// The local geometry is unit-sized: a circle has radius 1, a square has
// half-extent 1 and a right triangle has legs of length 1 and 2.  The local
// geometry is mapped into shape space by scaling, rotating, flipping and
// translating, in this order.
type Primitive struct {
	Kind Kind
	Flip Flip

	// Join combines this primitive with the primitives before it.
	// The join mode of the first primitive is ignored.
	Join JoinMode

	// Rotate is the rotation angle in radians.
	Rotate float64

	// Scale is the uniform scale factor.  Must be non-negative.
	// Primitives with zero scale do not contribute to the shape.
	Scale float64

	Translate vec.Vec2
}

// Shape is a composition of primitives together with its paint settings.
//
// Shapes are plain values.  The rasteriser never modifies a shape.
type Shape struct {
	Blend BlendMode
	Flip  Flip

	// Ink and Paper are the two fill colors.  The pattern decides which
	// mix of the two is used at each point.
	Ink   color.NRGBA
	Paper color.NRGBA

	Pattern Pattern

	// PatternRatio is the fraction of each pattern cycle painted with ink.
	// Must be in [0, 1].
	PatternRatio float64

	// PatternScale is the length of one pattern cycle, measured in
	// PatternUnit.  Must be positive.
	PatternScale float64
	PatternUnit  Unit

	// Primitives are combined from left to right.
	Primitives []Primitive

	// Rotate is the shape rotation in radians.
	Rotate float64

	// Scale is the uniform shape scale factor.  Must be non-negative.
	// A shape with zero scale covers nothing.
	Scale float64

	StrokeColor    color.NRGBA
	StrokePosition StrokePosition
	StrokeUnit     Unit

	// StrokeWidth is measured in StrokeUnit.  Must be non-negative.
	StrokeWidth float64

	Translate vec.Vec2
}

// NewPrimitive returns a primitive of the given kind with unit scale.
func NewPrimitive(kind Kind) Primitive {
	return Primitive{Kind: kind, Scale: 1}
}

// New returns a shape with default settings: unit scale, opaque white ink,
// transparent paper, solid ink fill and no stroke.
func New(prims ...Primitive) Shape {
	return Shape{
		Ink:          color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Pattern:      AllInk,
		PatternRatio: 0.5,
		PatternScale: 1,
		PatternUnit:  UnitPixel,
		Primitives:   prims,
		Scale:        1,
		StrokeUnit:   UnitPixel,
	}
}
