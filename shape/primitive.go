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
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sdfcanvas/errors"
)

// Local vertex sets.  The triangle vertices are listed so that the edge
// cross products are all non-negative for points inside.
var (
	squareVertices = []vec.Vec2{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	}
	triangleVertices = []vec.Vec2{
		{X: -0.5, Y: -1}, {X: 0.5, Y: -1}, {X: -0.5, Y: 1},
	}
)

// SDF returns the signed distance from the local point p to the boundary
// of the unit-sized primitive.
func (k Kind) SDF(p vec.Vec2) float64 {
	switch k {
	case Circle:
		return math.Hypot(p.X, p.Y) - 1
	case Square:
		return boxSDF(p)
	case TriangleRight:
		return triangleSDF(p)
	default:
		panic(errors.Config("shape.Kind.SDF", "unknown primitive kind %d", k))
	}
}

// Vertices returns a point set whose convex hull contains the local
// primitive.  For polygons these are the exact vertices.  For the circle
// they are the corners of the bounding square, which stays conservative
// under any rotation.
func (k Kind) Vertices() []vec.Vec2 {
	switch k {
	case Circle, Square:
		return slices.Clone(squareVertices)
	case TriangleRight:
		return slices.Clone(triangleVertices)
	default:
		panic(errors.Config("shape.Kind.Vertices", "unknown primitive kind %d", k))
	}
}

// boxSDF is the exact distance to the square [-1,1]×[-1,1].
func boxSDF(p vec.Vec2) float64 {
	qx := math.Abs(p.X) - 1
	qy := math.Abs(p.Y) - 1
	outside := math.Hypot(max(qx, 0), max(qy, 0))
	inside := min(max(qx, qy), 0)
	return outside + inside
}

// triangleSDF returns the distance to the nearest of the three edges,
// negative if p lies inside the triangle.
func triangleSDF(p vec.Vec2) float64 {
	v := triangleVertices
	d := math.Inf(1)
	inside := true
	for i := range v {
		a, b := v[i], v[(i+1)%len(v)]
		d = min(d, segmentDistance(p, a, b))

		e := b.Sub(a)
		w := p.Sub(a)
		if e.X*w.Y-e.Y*w.X < 0 {
			inside = false
		}
	}
	if inside {
		return -d
	}
	return d
}

// segmentDistance returns the Euclidean distance from p to the segment ab.
func segmentDistance(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	t := ap.Dot(ab) / ab.Dot(ab)
	t = max(0, min(1, t))
	return ap.Sub(ab.Mul(t)).Length()
}
