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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// circleKappa places the control points of a cubic Bézier arc
// approximating a quarter circle.
const circleKappa = 0.5522847498307936

// circleArcs is the unit circle as a start point and four cubic arcs,
// counter-clockwise in a y-up coordinate system.
var circleArcs = []vec.Vec2{
	{X: 1, Y: 0},
	{X: 1, Y: circleKappa}, {X: circleKappa, Y: 1}, {X: 0, Y: 1},
	{X: -circleKappa, Y: 1}, {X: -1, Y: circleKappa}, {X: -1, Y: 0},
	{X: -1, Y: -circleKappa}, {X: -circleKappa, Y: -1}, {X: 0, Y: -1},
	{X: circleKappa, Y: -1}, {X: 1, Y: -circleKappa}, {X: 1, Y: 0},
}

// Outline returns the boundary of s in world coordinates, as one closed
// subpath per contributing primitive.
//
// Union primitives are emitted with positive orientation and difference
// primitives with negative orientation, so that filling the result with
// the nonzero winding rule reproduces the shape.  This is exact for
// unions, and for differences which are not overlapped by later union
// primitives.
func Outline(s *Shape) *path.Data {
	res := &path.Data{}
	if s.Scale == 0 {
		return res
	}
	toWorld := s.Matrix()

	var pts []vec.Vec2
	first := true
	for i := range s.Primitives {
		p := &s.Primitives[i]
		if p.Scale == 0 {
			continue
		}
		m := concat(p.Matrix(), toWorld)

		var local []vec.Vec2
		switch p.Kind {
		case Circle:
			local = circleArcs
		case Square:
			local = squareVertices
		case TriangleRight:
			local = triangleVertices
		default:
			local = p.Kind.Vertices()
		}
		pts = pts[:0]
		for _, v := range local {
			pts = append(pts, apply(&m, v))
		}

		// The local outlines are positively oriented; the linear part of m
		// reverses orientation if its determinant is negative.
		positive := m[0]*m[3]-m[1]*m[2] > 0
		wantPositive := first || p.Join == Union
		first = false
		if positive != wantPositive {
			slices.Reverse(pts)
		}

		res.MoveTo(pts[0])
		if p.Kind == Circle {
			for j := 1; j+2 < len(pts); j += 3 {
				res.CubeTo(pts[j], pts[j+1], pts[j+2])
			}
		} else {
			for _, q := range pts[1:] {
				res.LineTo(q)
			}
		}
		res.Close()
	}
	return res
}
