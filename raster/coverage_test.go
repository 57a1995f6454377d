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
package raster

import (
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/sdfcanvas/shape"
)

func TestFillCoverage(t *testing.T) {
	const aa = 0.2
	if c := FillCoverage(aa, aa/2, 0); c != 0.5 {
		t.Errorf("coverage on the boundary = %g, want 0.5", c)
	}
	if c := FillCoverage(aa, aa/2, -aa); c != 1 {
		t.Errorf("coverage inside = %g, want 1", c)
	}
	if c := FillCoverage(aa, aa/2, aa); c != 0 {
		t.Errorf("coverage outside = %g, want 0", c)
	}

	prev := math.Inf(1)
	for d := -0.3; d <= 0.3; d += 0.001 {
		c := FillCoverage(aa, aa/2, d)
		if c > prev {
			t.Fatalf("coverage increases at d=%g: %g > %g", d, c, prev)
		}
		if c < 0 || c > 1 {
			t.Fatalf("coverage %g at d=%g out of range", c, d)
		}
		prev = c
	}
}

func strokeShape(pos shape.StrokePosition, unit shape.Unit, width float64) *shape.Shape {
	s := shape.New(shape.NewPrimitive(shape.Circle))
	s.Scale = 2
	s.StrokeColor = color.NRGBA{A: 255}
	s.StrokePosition = pos
	s.StrokeUnit = unit
	s.StrokeWidth = width
	return &s
}

func TestStrokeCoverage(t *testing.T) {
	const aaHalf = 0.1
	cases := []struct {
		pos  shape.StrokePosition
		d    float64
		want float64
	}{
		{shape.StrokeInside, -1, 1}, // lower edge of the band
		{shape.StrokeInside, 0, 1},
		{shape.StrokeInside, -0.5, 1},
		{shape.StrokeInside, 0.05, 0.5},
		{shape.StrokeInside, -1.05, 0.5},
		{shape.StrokeInside, 0.1, 0},
		{shape.StrokeCenter, -0.5, 1},
		{shape.StrokeCenter, 0.5, 1},
		{shape.StrokeCenter, 0.55, 0.5},
		{shape.StrokeCenter, -0.7, 0},
		{shape.StrokeOutside, 0, 1},
		{shape.StrokeOutside, 1, 1},
		{shape.StrokeOutside, -0.05, 0.5},
		{shape.StrokeOutside, 1.2, 0},
	}
	for _, c := range cases {
		s := strokeShape(c.pos, shape.UnitWorld, 1)
		got := StrokeCoverage(aaHalf, c.d, s, 0.1)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s stroke at d=%g: got %g, want %g", c.pos, c.d, got, c.want)
		}
	}

	s := strokeShape(shape.StrokeCenter, shape.UnitWorld, 0)
	if c := StrokeCoverage(aaHalf, 0, s, 0.1); c != 0 {
		t.Errorf("zero-width stroke has coverage %g", c)
	}
	s = strokeShape(shape.StrokeCenter, shape.UnitWorld, 1)
	s.StrokeColor.A = 0
	if c := StrokeCoverage(aaHalf, 0, s, 0.1); c != 0 {
		t.Errorf("transparent stroke has coverage %g", c)
	}
}

func TestStrokeWidthWorld(t *testing.T) {
	const wupp = 0.25
	cases := []struct {
		unit shape.Unit
		want float64
	}{
		{shape.UnitPixel, 3 * wupp},
		{shape.UnitShape, 3 * wupp * 2},
		{shape.UnitWorld, 3},
	}
	for _, c := range cases {
		s := strokeShape(shape.StrokeCenter, c.unit, 3)
		if got := StrokeWidthWorld(s, wupp); got != c.want {
			t.Errorf("%s: got %g, want %g", c.unit, got, c.want)
		}
	}

	if m := StrokeMargin(strokeShape(shape.StrokeInside, shape.UnitWorld, 2), wupp); m != 0 {
		t.Errorf("inside stroke margin = %g, want 0", m)
	}
	if m := StrokeMargin(strokeShape(shape.StrokeCenter, shape.UnitWorld, 2), wupp); m != 1 {
		t.Errorf("centre stroke margin = %g, want 1", m)
	}
	if m := StrokeMargin(strokeShape(shape.StrokeOutside, shape.UnitWorld, 2), wupp); m != 2 {
		t.Errorf("outside stroke margin = %g, want 2", m)
	}
}
