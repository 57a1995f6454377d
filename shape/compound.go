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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	// Outside is the distance reported for points when a shape has no
	// contributing primitive.
	Outside = 1e6

	// unbounded is the half-size of the box returned when a shape's extent
	// cannot be determined.
	unbounded = 1e6
)

// Unbounded is the box used when no tighter bound is known.
var Unbounded = rect.Rect{LLx: -unbounded, LLy: -unbounded, URx: unbounded, URy: unbounded}

// Field is a shape's distance function with all transforms precomputed.
// A Field can be reset to a new shape, reusing its internal storage.
type Field struct {
	prims []fieldPrimitive
}

type fieldPrimitive struct {
	kind     Kind
	join     JoinMode
	toLocal  matrix.Matrix // world space to primitive-local space
	distance float64       // local distance to world distance
}

// NewField precomputes the distance function of s.
func NewField(s *Shape) *Field {
	f := &Field{}
	f.Reset(s)
	return f
}

// Reset replaces the shape described by f.
func (f *Field) Reset(s *Shape) {
	f.prims = f.prims[:0]
	if s.Scale == 0 {
		return
	}
	toShape := inverse(s.Scale, s.Rotate, s.Flip, s.Translate)
	for i := range s.Primitives {
		p := &s.Primitives[i]
		if p.Scale == 0 {
			continue
		}
		toPrim := inverse(p.Scale, p.Rotate, p.Flip, p.Translate)
		f.prims = append(f.prims, fieldPrimitive{
			kind:     p.Kind,
			join:     p.Join,
			toLocal:  concat(toShape, toPrim),
			distance: s.Scale * p.Scale,
		})
	}
}

// Distance returns the signed distance from the world point p to the
// shape, in world units.  If no primitive contributes, Outside is
// returned.
func (f *Field) Distance(p vec.Vec2) float64 {
	if len(f.prims) == 0 {
		return Outside
	}
	var acc float64
	for i := range f.prims {
		fp := &f.prims[i]
		d := fp.kind.SDF(apply(&fp.toLocal, p)) * fp.distance
		switch {
		case i == 0:
			acc = d
		case fp.join == Difference:
			acc = max(acc, -d)
		default:
			acc = min(acc, d)
		}
	}
	return acc
}

// SDF returns the signed distance from the world point p to the shape s.
// Callers evaluating many points should use a [Field] instead.
func SDF(s *Shape, p vec.Vec2) float64 {
	return NewField(s).Distance(p)
}

// Bounds returns a world-space box which contains every point whose
// distance to s is less than expand.  The box is conservative: it may be
// larger than necessary, but never smaller.
//
// If s has zero scale or no contributing primitive, [Unbounded] is
// returned.
func Bounds(s *Shape, expand float64) rect.Rect {
	if s.Scale == 0 {
		return Unbounded
	}
	toWorld := s.Matrix()

	first := true
	var box rect.Rect
	include := func(p vec.Vec2, r float64) {
		if first {
			box = rect.Rect{LLx: p.X - r, LLy: p.Y - r, URx: p.X + r, URy: p.Y + r}
			first = false
			return
		}
		box.LLx = min(box.LLx, p.X-r)
		box.LLy = min(box.LLy, p.Y-r)
		box.URx = max(box.URx, p.X+r)
		box.URy = max(box.URy, p.Y+r)
	}

	for i := range s.Primitives {
		p := &s.Primitives[i]
		if p.Scale == 0 {
			continue
		}
		m := concat(p.Matrix(), toWorld)
		switch p.Kind {
		case Circle:
			// Every transform in the chain is a similarity, so the image
			// of the unit circle is a circle.
			include(apply(&m, vec.Vec2{}), math.Abs(s.Scale*p.Scale))
		case Square:
			for _, v := range squareVertices {
				include(apply(&m, v), 0)
			}
		case TriangleRight:
			for _, v := range triangleVertices {
				include(apply(&m, v), 0)
			}
		default:
			for _, v := range p.Kind.Vertices() {
				include(apply(&m, v), 0)
			}
		}
	}
	if first {
		return Unbounded
	}

	box.LLx -= expand
	box.LLy -= expand
	box.URx += expand
	box.URy += expand
	return box
}

// Contains reports whether the point p lies in the closed box b.
func Contains(b *rect.Rect, p vec.Vec2) bool {
	return p.X >= b.LLx && p.X <= b.URx && p.Y >= b.LLy && p.Y <= b.URy
}
