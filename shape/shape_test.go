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
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sdfcanvas/errors"
)

const epsilon = 1e-9

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestPrimitiveSDF(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		p    vec.Vec2
		want float64
	}{
		{"circle_centre", Circle, pt(0, 0), -1},
		{"circle_boundary", Circle, pt(0, 1), 0},
		{"circle_outside", Circle, pt(3, 4), 4},
		{"square_centre", Square, pt(0, 0), -1},
		{"square_edge", Square, pt(1, 0.3), 0},
		{"square_corner_outside", Square, pt(4, 5), 5},
		{"triangle_right_angle", TriangleRight, pt(-0.5, -1), 0},
		{"triangle_inside", TriangleRight, pt(-0.4, -0.9), -0.1},
		{"triangle_below", TriangleRight, pt(0, -3), 2},
		{"triangle_left", TriangleRight, pt(-1.5, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.kind.SDF(tt.p)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("%s.SDF(%v) = %g, want %g", tt.kind, tt.p, got, tt.want)
			}
		})
	}
}

func TestTriangleHypotenuse(t *testing.T) {
	// The hypotenuse runs from (0.5,-1) to (-0.5,1).  Points on either side
	// of its midpoint must have opposite signs and equal magnitude.
	n := vec.Vec2{X: 2, Y: 1}.Mul(1 / math.Sqrt(5))
	in := vec.Vec2{}.Sub(n.Mul(0.1))
	out := n.Mul(0.1)
	dIn := TriangleRight.SDF(in)
	dOut := TriangleRight.SDF(out)
	if dIn >= 0 || dOut <= 0 {
		t.Fatalf("wrong signs: inside %g, outside %g", dIn, dOut)
	}
	if math.Abs(dIn+dOut) > epsilon || math.Abs(dOut-0.1) > epsilon {
		t.Errorf("asymmetric distances: inside %g, outside %g", dIn, dOut)
	}
}

func TestSDFTransforms(t *testing.T) {
	s := New(NewPrimitive(Circle))
	s.Scale = 2
	s.Translate = pt(3, -1)
	if got := SDF(&s, pt(3, -1)); math.Abs(got+2) > epsilon {
		t.Errorf("centre distance = %g, want -2", got)
	}
	if got := SDF(&s, pt(8, -1)); math.Abs(got-3) > epsilon {
		t.Errorf("outside distance = %g, want 3", got)
	}

	// A triangle rotated by 90° and flipped: check that the world SDF
	// matches the local SDF of the inverse-mapped point.
	tri := New(Primitive{Kind: TriangleRight, Scale: 1.5, Rotate: 0.3, Flip: FlipX, Translate: pt(0.2, 0.1)})
	tri.Scale = 0.7
	tri.Rotate = math.Pi / 2
	tri.Flip = FlipY
	tri.Translate = pt(-1, 2)
	m := concat(tri.Primitives[0].Matrix(), tri.Matrix())
	for _, local := range []vec.Vec2{pt(-0.4, -0.9), pt(0, 0), pt(1, 1), pt(-2, 0.5)} {
		world := apply(&m, local)
		want := TriangleRight.SDF(local) * 0.7 * 1.5
		if got := SDF(&tri, world); math.Abs(got-want) > 1e-9 {
			t.Errorf("SDF at %v = %g, want %g", world, got, want)
		}
	}
}

func TestJoinModes(t *testing.T) {
	big := NewPrimitive(Circle)
	big.Scale = 2
	hole := NewPrimitive(Circle)
	hole.Join = Difference
	side := NewPrimitive(Circle)
	side.Translate = pt(5, 0)

	s := New(big, hole, side)
	tests := []struct {
		p    vec.Vec2
		want float64
	}{
		{pt(0, 0), 1},      // inside the hole
		{pt(1.5, 0), -0.5}, // in the ring
		{pt(5, 0), -1},     // centre of the union circle
		{pt(4, 0), 0},      // boundary of the side circle
	}
	for _, tt := range tests {
		if got := SDF(&s, tt.p); math.Abs(got-tt.want) > epsilon {
			t.Errorf("SDF(%v) = %g, want %g", tt.p, got, tt.want)
		}
	}
}

func TestDegenerateShapes(t *testing.T) {
	empty := New()
	if got := SDF(&empty, pt(0, 0)); got != Outside {
		t.Errorf("empty shape: got %g, want %g", got, Outside)
	}
	if got := Bounds(&empty, 1); got != Unbounded {
		t.Errorf("empty shape bounds: got %v", got)
	}

	zero := New(NewPrimitive(Circle))
	zero.Scale = 0
	if got := SDF(&zero, pt(0, 0)); got != Outside {
		t.Errorf("zero-scale shape: got %g, want %g", got, Outside)
	}
	if got := Bounds(&zero, 0); got != Unbounded {
		t.Errorf("zero-scale shape bounds: got %v", got)
	}

	// A zero-scale primitive is skipped, not treated as an exclusion.
	skipped := NewPrimitive(Square)
	skipped.Scale = 0
	s := New(skipped, NewPrimitive(Circle))
	if got := SDF(&s, pt(0, 0)); math.Abs(got+1) > epsilon {
		t.Errorf("skipped primitive: got %g, want -1", got)
	}
	b := Bounds(&s, 0)
	if math.Abs(b.LLx+1) > epsilon || math.Abs(b.URy-1) > epsilon {
		t.Errorf("skipped primitive bounds: got %v", b)
	}
}

func TestVertices(t *testing.T) {
	for _, k := range []Kind{Square, TriangleRight} {
		for _, v := range k.Vertices() {
			if d := k.SDF(v); math.Abs(d) > epsilon {
				t.Errorf("%s: vertex %v has distance %g", k, v, d)
			}
		}
	}

	// The circle's point set must enclose the unit circle.
	vs := Circle.Vertices()
	vs[0] = pt(100, 100) // callers get a copy
	for _, v := range Circle.Vertices() {
		if math.Abs(v.X) < 1 || math.Abs(v.Y) < 1 {
			t.Errorf("circle vertex %v inside the unit square", v)
		}
	}
}

func TestBoundsRotatedTriangle(t *testing.T) {
	// Transforming the corners of the unrotated bounding box would
	// under-estimate this box.
	s := New(Primitive{Kind: TriangleRight, Scale: 1, Rotate: math.Pi / 4})
	b := Bounds(&s, 0)
	for _, v := range triangleVertices {
		m := s.Primitives[0].Matrix()
		w := apply(&m, v)
		if !Contains(&b, w) {
			t.Errorf("vertex %v outside %v", w, b)
		}
	}
}

// TestBoundsSoundness checks that no point closer to the shape than the
// expansion margin lies outside the computed box.
func TestBoundsSoundness(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randomPrimitive := func() Primitive {
		return Primitive{
			Kind:      Kind(rng.IntN(3)),
			Flip:      Flip(rng.IntN(4)),
			Join:      JoinMode(rng.IntN(2)),
			Rotate:    rng.Float64() * 2 * math.Pi,
			Scale:     rng.Float64() * 2,
			Translate: pt(rng.Float64()*4-2, rng.Float64()*4-2),
		}
	}

	for range 200 {
		var prims []Primitive
		for range 1 + rng.IntN(4) {
			prims = append(prims, randomPrimitive())
		}
		s := New(prims...)
		s.Scale = 0.1 + rng.Float64()*2
		s.Rotate = rng.Float64() * 2 * math.Pi
		s.Flip = Flip(rng.IntN(4))
		s.Translate = pt(rng.Float64()*6-3, rng.Float64()*6-3)
		expand := rng.Float64() * 0.5

		field := NewField(&s)
		box := Bounds(&s, expand)
		for range 2000 {
			p := pt(rng.Float64()*24-12, rng.Float64()*24-12)
			if field.Distance(p) < expand && !Contains(&box, p) {
				t.Fatalf("point %v with distance %g escapes box %v",
					p, field.Distance(p), box)
			}
		}
	}
}

func TestOutline(t *testing.T) {
	outer := NewPrimitive(Square)
	outer.Scale = 2
	hole := NewPrimitive(Circle)
	hole.Join = Difference
	tri := Primitive{Kind: TriangleRight, Scale: 1, Flip: FlipX, Translate: pt(4, 0)}
	s := New(outer, hole, tri)
	s.Translate = pt(1, 1)

	data := Outline(&s)
	var moves, lines, cubes, closes int
	for _, cmd := range data.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdLineTo:
			lines++
		case path.CmdCubeTo:
			cubes++
		case path.CmdClose:
			closes++
		}
	}
	if moves != 3 || closes != 3 || cubes != 4 || lines != 3+2 {
		t.Errorf("got %d moves, %d lines, %d cubes, %d closes", moves, lines, cubes, closes)
	}

	// All outline points lie on the zero level of their primitive, which
	// for the square and triangle is the shape boundary or inside it.
	for _, c := range data.Coords[:4] {
		if d := SDF(&s, c); math.Abs(d) > epsilon {
			t.Errorf("square corner %v has distance %g", c, d)
		}
	}
}

func TestEnumText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("Triangle-Right")); err != nil || k != TriangleRight {
		t.Errorf("UnmarshalText: got %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("hexagon")); err == nil {
		t.Error("unknown kind accepted")
	}

	var b BlendMode
	text, _ := BlendOverlay.MarshalText()
	if err := b.UnmarshalText(text); err != nil || b != BlendOverlay {
		t.Errorf("blend mode round trip: got %v, %v", b, err)
	}

	if got := Pattern(42).String(); got != "42" {
		t.Errorf("unknown pattern string = %q", got)
	}
}

func TestValidate(t *testing.T) {
	good := New(NewPrimitive(Circle))
	if err := Validate(&good); err != nil {
		t.Fatalf("valid shape rejected: %v", err)
	}
	if err := Validate(nil); !errors.IsKind(err, errors.KindType) {
		t.Errorf("nil shape: got %v, want type error", err)
	}

	tests := []struct {
		name   string
		modify func(s *Shape)
	}{
		{"negative_scale", func(s *Shape) { s.Scale = -1 }},
		{"nan_rotation", func(s *Shape) { s.Rotate = math.NaN() }},
		{"ratio_too_large", func(s *Shape) { s.PatternRatio = 1.5 }},
		{"zero_pattern_scale", func(s *Shape) { s.PatternScale = 0 }},
		{"negative_stroke", func(s *Shape) { s.StrokeWidth = -0.5 }},
		{"unknown_unit", func(s *Shape) { s.StrokeUnit = 9 }},
		{"unknown_position", func(s *Shape) { s.StrokePosition = 9 }},
		{"infinite_translate", func(s *Shape) { s.Translate.X = math.Inf(1) }},
		{"primitive_scale", func(s *Shape) { s.Primitives[0].Scale = -2 }},
		{"primitive_kind", func(s *Shape) { s.Primitives[0].Kind = 17 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(NewPrimitive(Circle))
			tt.modify(&s)
			err := Validate(&s)
			if !errors.IsKind(err, errors.KindRange) {
				t.Errorf("got %v, want range error", err)
			}
		})
	}
}

func TestUnknownKindPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.IsKind(err, errors.KindConfig) {
			t.Errorf("recovered %v, want config error", r)
		}
	}()
	Kind(99).SDF(pt(0, 0))
}
