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

	"seehuhn.de/go/sdfcanvas/internal/fmath"
)

// RGBA is a straight-alpha color with channels normalized to [0, 1].
// The rasteriser works in this representation and converts to bytes only
// when writing pixels.
type RGBA struct {
	R, G, B, A float64
}

// Normalize converts a byte color to normalized form.
func Normalize(c color.NRGBA) RGBA {
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// NRGBA quantizes c to bytes, rounding to nearest.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: fmath.ToByte(c.R),
		G: fmath.ToByte(c.G),
		B: fmath.ToByte(c.B),
		A: fmath.ToByte(c.A),
	}
}

// lerp mixes a and b, returning a for t=0 and b for t=1.
func lerp(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: fmath.Lerp(a.R, b.R, t),
		G: fmath.Lerp(a.G, b.G, t),
		B: fmath.Lerp(a.B, b.B, t),
		A: fmath.Lerp(a.A, b.A, t),
	}
}

// load reads the pixel at byte offset i.
func load(pix []byte, i int) RGBA {
	p := pix[i : i+4 : i+4]
	return RGBA{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
		A: float64(p[3]) / 255,
	}
}

// store writes c to the pixel at byte offset i.
func store(pix []byte, i int, c RGBA) {
	p := pix[i : i+4 : i+4]
	p[0] = fmath.ToByte(c.R)
	p[1] = fmath.ToByte(c.G)
	p[2] = fmath.ToByte(c.B)
	p[3] = fmath.ToByte(c.A)
}
