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

import (
	"strconv"
	"unicode/utf8"

	"seehuhn.de/go/sdfcanvas/errors"
)

const ansiReset = "\x1B[0m"

// encodeANSI renders each vertical pixel pair as a lower-half-block,
// with the background set to the upper pixel and the foreground set to
// the lower pixel.
func encodeANSI(src region, depth ColorDepth) []byte {
	b := src.bounds
	var out []byte
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			out = append(out, '\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			upper, lower := src.at(x, y), src.at(x, y+1)
			switch depth {
			case Monochrome:
				out = utf8.AppendRune(out, blockGlyph(upper, lower))
				continue
			case Color8:
				out = append(out, "\x1B[4"...)
				out = strconv.AppendInt(out, int64(index8(upper)), 10)
				out = append(out, "m\x1B[3"...)
				out = strconv.AppendInt(out, int64(index8(lower)), 10)
				out = append(out, 'm')
			case Color256:
				out = append(out, "\x1B[48;5;"...)
				out = strconv.AppendInt(out, int64(index256(upper)), 10)
				out = append(out, "m\x1B[38;5;"...)
				out = strconv.AppendInt(out, int64(index256(lower)), 10)
				out = append(out, 'm')
			case TrueColor:
				out = append(out, "\x1B[48;2;"...)
				out = appendRGB(out, upper[0], upper[1], upper[2], ';')
				out = append(out, "m\x1B[38;2;"...)
				out = appendRGB(out, lower[0], lower[1], lower[2], ';')
				out = append(out, 'm')
			default:
				panic(errors.Config(opEncode, "unknown color depth %d", depth))
			}
			out = utf8.AppendRune(out, lowerHalf)
		}
		if depth != Monochrome {
			out = append(out, ansiReset...)
		}
	}
	return out
}

// appendRGB appends the three channel values in decimal, separated by sep.
func appendRGB(out []byte, r, g, b byte, sep byte) []byte {
	out = strconv.AppendInt(out, int64(r), 10)
	out = append(out, sep)
	out = strconv.AppendInt(out, int64(g), 10)
	out = append(out, sep)
	return strconv.AppendInt(out, int64(b), 10)
}
