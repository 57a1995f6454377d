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
package encode

// luminance returns the perceived brightness of an RGB color, in the
// range 0 to 254.
func luminance(p []byte) int {
	return (54*int(p[0]) + 183*int(p[1]) + 19*int(p[2])) >> 8
}

// isLight reports whether a pixel counts as lit in monochrome output.
func isLight(p []byte) bool {
	return luminance(p) > 128
}

// cubeLevel maps a channel value to the nearest of the six levels of the
// 256-color cube, as an index 0 to 5.
func cubeLevel(c byte) int {
	return (int(c) + 25) / 51
}

// cubeValues are the channel values of the six cube levels.
var cubeValues = [6]byte{0, 95, 135, 175, 215, 255}

// index256 returns the 256-color palette index for an RGB color.
func index256(p []byte) int {
	return 16 + 36*cubeLevel(p[0]) + 6*cubeLevel(p[1]) + cubeLevel(p[2])
}

// rgb256 returns the RGB values of the palette color chosen by index256.
func rgb256(p []byte) (r, g, b byte) {
	return cubeValues[cubeLevel(p[0])], cubeValues[cubeLevel(p[1])], cubeValues[cubeLevel(p[2])]
}

// on8 reports whether a channel is lit in 8-color output.
func on8(c byte) bool {
	return c > 127
}

// index8 returns the 8-color index for an RGB color, with red in bit 0,
// green in bit 1 and blue in bit 2.
func index8(p []byte) int {
	var n int
	if on8(p[0]) {
		n |= 1
	}
	if on8(p[1]) {
		n |= 2
	}
	if on8(p[2]) {
		n |= 4
	}
	return n
}

// rgb8 returns the RGB values of the color chosen by index8.
func rgb8(p []byte) (r, g, b byte) {
	level := func(c byte) byte {
		if on8(c) {
			return 255
		}
		return 0
	}
	return level(p[0]), level(p[1]), level(p[2])
}

// Block elements used by the monochrome encoders.
const (
	lowerHalf = '▄'
	upperHalf = '▀'
	fullBlock = '█'
)

// blockGlyph returns the monochrome glyph for a vertical pixel pair.
func blockGlyph(upper, lower []byte) rune {
	switch u, l := isLight(upper), isLight(lower); {
	case u && l:
		return fullBlock
	case u:
		return upperHalf
	case l:
		return lowerHalf
	default:
		return ' '
	}
}
