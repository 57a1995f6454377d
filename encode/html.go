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
	"unicode/utf8"

	"seehuhn.de/go/sdfcanvas/errors"
)

// encodeHTML renders the same cell layout as encodeANSI, with inline
// styles in place of escape codes.  Monochrome output uses bare block
// glyphs.
func encodeHTML(src region, depth ColorDepth) []byte {
	b := src.bounds
	var out []byte
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			out = append(out, "<br>\n"...)
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			upper, lower := src.at(x, y), src.at(x, y+1)
			if depth == Monochrome {
				out = utf8.AppendRune(out, blockGlyph(upper, lower))
				continue
			}
			bg, fg := htmlColor(upper, depth), htmlColor(lower, depth)
			out = append(out, `<b style="background:rgb(`...)
			out = appendRGB(out, bg[0], bg[1], bg[2], ',')
			out = append(out, ");color:rgb("...)
			out = appendRGB(out, fg[0], fg[1], fg[2], ',')
			out = append(out, `)">`...)
			out = utf8.AppendRune(out, lowerHalf)
			out = append(out, "</b>"...)
		}
	}
	return out
}

// htmlColor quantizes a pixel to the given depth.
func htmlColor(p []byte, depth ColorDepth) [3]byte {
	var r, g, b byte
	switch depth {
	case Color8:
		r, g, b = rgb8(p)
	case Color256:
		r, g, b = rgb256(p)
	case TrueColor:
		r, g, b = p[0], p[1], p[2]
	default:
		panic(errors.Config(opEncode, "unknown color depth %d", depth))
	}
	return [3]byte{r, g, b}
}
