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

package shape

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Matrices use the PDF convention: a point (x, y) maps to
// (m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]), and concat(a, b)
// applies a first, then b.

// Apply maps the point p through f.
func (f Flip) Apply(p vec.Vec2) vec.Vec2 {
	switch f {
	case FlipX:
		p.X = -p.X
	case FlipY:
		p.Y = -p.Y
	case FlipXY:
		p.X, p.Y = -p.X, -p.Y
	}
	return p
}

// Matrix returns the linear map which applies f.
func (f Flip) Matrix() matrix.Matrix {
	p := f.Apply(vec.Vec2{X: 1, Y: 1})
	return matrix.Scale(p.X, p.Y)
}

// Matrix returns the map from primitive-local space to shape space:
// scale, rotate, flip, translate.
func (p *Primitive) Matrix() matrix.Matrix {
	return forward(p.Scale, p.Rotate, p.Flip, p.Translate)
}

// Matrix returns the map from shape space to world space:
// scale, rotate, flip, translate.
func (s *Shape) Matrix() matrix.Matrix {
	return forward(s.Scale, s.Rotate, s.Flip, s.Translate)
}

func forward(scale, rotate float64, flip Flip, translate vec.Vec2) matrix.Matrix {
	m := matrix.Scale(scale, scale)
	m = concat(m, rotation(rotate))
	m = concat(m, flip.Matrix())
	return concat(m, translation(translate))
}

// inverse returns the map from the outer space back into local space:
// subtract translate, undo the flip, divide by scale, rotate by -rotate.
// The caller must ensure scale != 0.
func inverse(scale, rotate float64, flip Flip, translate vec.Vec2) matrix.Matrix {
	m := translation(vec.Vec2{X: -translate.X, Y: -translate.Y})
	m = concat(m, flip.Matrix())
	m = concat(m, matrix.Scale(1/scale, 1/scale))
	return concat(m, rotation(-rotate))
}

func rotation(theta float64) matrix.Matrix {
	if theta == 0 {
		return matrix.Identity
	}
	s, c := math.Sincos(theta)
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

func translation(t vec.Vec2) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, t.X, t.Y}
}

func concat(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

func apply(m *matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
