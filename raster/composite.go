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

// Composite paints a stroke-over-fill source onto the destination color
// dst and returns the new destination.
//
// fillOpacity and strokeOpacity are the coverages of fill and stroke,
// already multiplied by the alpha of the respective color.  Within the
// pixel the stroke is painted over the fill.  The combined source is
// blended with dst channel by channel using mode, and the result is
// composited over dst with the source alpha.
//
// If both opacities are zero, dst is returned unchanged.
func Composite(mode shape.BlendMode, dst, fill RGBA, fillOpacity float64, stroke RGBA, strokeOpacity float64) RGBA {
	srcA := fmath.Clamp01(strokeOpacity + fillOpacity*(1-strokeOpacity))
	if srcA <= 0 {
		return dst
	}

	// premultiplied stroke over premultiplied fill
	var r, g, b float64
	if strokeOpacity > 0 {
		r = stroke.R * strokeOpacity
		g = stroke.G * strokeOpacity
		b = stroke.B * strokeOpacity
	}
	if fillOpacity > 0 {
		w := fillOpacity * (1 - strokeOpacity)
		r += fill.R * w
		g += fill.G * w
		b += fill.B * w
	}
	r /= srcA
	g /= srcA
	b /= srcA

	inv := 1 - srcA
	return RGBA{
		R: fmath.Clamp01(BlendChannel(mode, r, dst.R)*srcA + dst.R*inv),
		G: fmath.Clamp01(BlendChannel(mode, g, dst.G)*srcA + dst.G*inv),
		B: fmath.Clamp01(BlendChannel(mode, b, dst.B)*srcA + dst.B*inv),
		A: fmath.Clamp01(srcA + dst.A*inv),
	}
}

// BlendChannel combines one source and one destination channel value.
// An unknown mode panics with a [errors.KindConfig] error.
func BlendChannel(mode shape.BlendMode, src, dst float64) float64 {
	switch mode {
	case shape.BlendNormal:
		return fmath.Clamp01(src)
	case shape.BlendMultiply:
		return fmath.Clamp01(src * dst)
	case shape.BlendScreen:
		return fmath.Clamp01(1 - (1-src)*(1-dst))
	case shape.BlendOverlay:
		if dst <= 0.5 {
			return fmath.Clamp01(2 * src * dst)
		}
		return fmath.Clamp01(1 - 2*(1-src)*(1-dst))
	default:
		panic(errors.Config("raster.BlendChannel", "unknown blend mode %d", mode))
	}
}
