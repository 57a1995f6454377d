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
	"seehuhn.de/go/sdfcanvas/errors"
	"seehuhn.de/go/sdfcanvas/internal/fmath"
	"seehuhn.de/go/sdfcanvas/shape"
)

// Coverage model:
//
// The fill of a shape covers a pixel by the fraction
//
//	clamp01((aaHalf - d) / aa)
//
// where d is the signed distance of the pixel centre and aa is the width of
// the anti-aliasing band.  This is 1 deep inside, 0 beyond aa/2 outside
// and exactly 0.5 on the boundary.
//
// The stroke is a band [lo, hi] of distances around the boundary.  Inside
// the band the coverage is 1, and it falls off linearly to 0 over aa/2
// outside the band.  The two coverages are independent.

// FillCoverage returns the anti-aliased fill coverage for the signed
// distance d.  aaHalf must be aa/2.
func FillCoverage(aa, aaHalf, d float64) float64 {
	if d >= aaHalf {
		return 0
	}
	return fmath.Clamp01((aaHalf - d) / aa)
}

// StrokeCoverage returns the anti-aliased stroke coverage of shape s for the
// signed distance d.
//
// An unknown stroke unit or position panics with a [errors.KindConfig]
// error.
func StrokeCoverage(aaHalf, d float64, s *shape.Shape, worldUnitsPerPixel float64) float64 {
	if s.StrokeWidth == 0 || s.StrokeColor.A == 0 {
		return 0
	}
	lo, hi := strokeBand(s, worldUnitsPerPixel)
	return bandCoverage(aaHalf, d, lo, hi)
}

func bandCoverage(aaHalf, d, lo, hi float64) float64 {
	// The band is closed: the edges count as inside.
	if d >= lo && d <= hi {
		return 1
	}
	var dist float64
	if d < lo {
		dist = lo - d
	} else {
		dist = d - hi
	}
	if dist >= aaHalf {
		return 0
	}
	return 1 - dist/aaHalf
}

// StrokeWidthWorld converts the stroke width of s into world units.
func StrokeWidthWorld(s *shape.Shape, worldUnitsPerPixel float64) float64 {
	switch s.StrokeUnit {
	case shape.UnitPixel:
		return s.StrokeWidth * worldUnitsPerPixel
	case shape.UnitShape:
		return s.StrokeWidth * worldUnitsPerPixel * s.Scale
	case shape.UnitWorld:
		return s.StrokeWidth
	default:
		panic(errors.Config("raster.StrokeWidthWorld", "unknown stroke unit %d", s.StrokeUnit))
	}
}

// strokeBand returns the interval of signed distances painted by the
// stroke.
func strokeBand(s *shape.Shape, worldUnitsPerPixel float64) (lo, hi float64) {
	w := StrokeWidthWorld(s, worldUnitsPerPixel)
	switch s.StrokePosition {
	case shape.StrokeCenter:
		return -w / 2, w / 2
	case shape.StrokeInside:
		return -w, 0
	case shape.StrokeOutside:
		return 0, w
	default:
		panic(errors.Config("raster.strokeBand", "unknown stroke position %d", s.StrokePosition))
	}
}

// StrokeMargin returns how far the stroke of s reaches beyond the shape
// boundary, in world units.
func StrokeMargin(s *shape.Shape, worldUnitsPerPixel float64) float64 {
	if s.StrokeWidth == 0 || s.StrokeColor.A == 0 {
		return 0
	}
	_, hi := strokeBand(s, worldUnitsPerPixel)
	return max(hi, 0)
}
