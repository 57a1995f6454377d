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

// Package fmath contains small floating point helpers.
package fmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp01 restricts x to the interval [0, 1].  NaN maps to 0.
func Clamp01[T constraints.Float](x T) T {
	if x > 1 {
		return 1
	}
	if x >= 0 {
		return x
	}
	return 0
}

// Lerp returns a*(1-t) + b*t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// ToByte quantizes a value in [0, 1] to a byte, rounding to nearest.
// Values outside the interval are clamped first.
func ToByte(x float64) uint8 {
	return uint8(math.Round(Clamp01(x) * 255))
}
