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

// Dot bits for the channels of a vertical pixel pair.
const (
	dotUpperRed   = 0x01
	dotUpperBlue  = 0x02
	dotLowerRed   = 0x04
	dotUpperGreen = 0x08
	dotUpperAlpha = 0x10
	dotLowerGreen = 0x20
	dotLowerBlue  = 0x40
	dotLowerAlpha = 0x80

	brailleBase = 0x2800
)

var (
	upperDots = [4]byte{dotUpperRed, dotUpperGreen, dotUpperBlue, dotUpperAlpha}
	lowerDots = [4]byte{dotLowerRed, dotLowerGreen, dotLowerBlue, dotLowerAlpha}
)

// encodeBraille renders each vertical pixel pair as one Braille pattern.
// Every channel of both pixels which exceeds 127 raises one dot.
func encodeBraille(src region, depth ColorDepth) []byte {
	if depth != Monochrome && depth != Color8 {
		panic(errors.Config(opEncode, "braille output does not support %s", depth))
	}
	b := src.bounds
	var out []byte
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			out = append(out, '\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			out = utf8.AppendRune(out, brailleCell(src.at(x, y), src.at(x, y+1)))
		}
	}
	return out
}

func brailleCell(upper, lower []byte) rune {
	var mask byte
	for c := range 4 {
		if upper[c] > 127 {
			mask |= upperDots[c]
		}
		if lower[c] > 127 {
			mask |= lowerDots[c]
		}
	}
	return brailleBase + rune(mask)
}
