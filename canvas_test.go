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
package sdfcanvas

import (
	"bytes"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/sdfcanvas/encode"
	"seehuhn.de/go/sdfcanvas/errors"
	"seehuhn.de/go/sdfcanvas/shape"
)

func redCircle(scale float64) shape.Shape {
	s := shape.New(shape.NewPrimitive(shape.Circle))
	s.Ink = color.NRGBA{R: 255, A: 255}
	s.Scale = scale
	return s
}

func TestNew(t *testing.T) {
	c, err := New(40, 20)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != 40 || c.Height() != 20 || len(c.Pix()) != 4*40*20 {
		t.Errorf("unexpected canvas geometry %dx%d, %d bytes", c.Width(), c.Height(), len(c.Pix()))
	}
	if wupp := c.WorldUnitsPerPixel(); wupp != 0.5 {
		t.Errorf("world units per pixel = %g, want 0.5", wupp)
	}

	for _, bad := range [][2]int{{0, 10}, {10, -1}, {maxSide + 1, 1}} {
		if _, err := New(bad[0], bad[1]); !errors.IsKind(err, errors.KindRange) {
			t.Errorf("New(%d, %d): got %v", bad[0], bad[1], err)
		}
	}
	if _, err := New(4, 4, WithAARegion(-1)); !errors.IsKind(err, errors.KindRange) {
		t.Errorf("negative anti-aliasing width: got %v", err)
	}
}

func TestShapeList(t *testing.T) {
	c, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	id1, err := c.AddShape(redCircle(1))
	if err != nil {
		t.Fatal(err)
	}
	id2, err := c.AddShape(redCircle(2))
	if err != nil {
		t.Fatal(err)
	}
	if id1 <= 0 || id2 <= id1 {
		t.Errorf("identifiers %d, %d are not increasing", id1, id2)
	}

	bad := redCircle(1)
	bad.PatternRatio = 3
	if _, err := c.AddShape(bad); !errors.IsKind(err, errors.KindRange) {
		t.Errorf("invalid shape: got %v", err)
	}

	if err := c.UpdateShape(id1, redCircle(3)); err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateShape(99, redCircle(3)); err == nil {
		t.Error("updating an unknown shape succeeded")
	}

	if !c.RemoveShape(id2) || c.RemoveShape(id2) {
		t.Error("RemoveShape does not report presence correctly")
	}
	shapes := c.Shapes()
	if len(shapes) != 1 || shapes[0].Scale != 3 {
		t.Fatalf("unexpected shape list %+v", shapes)
	}

	// the returned list is a copy
	shapes[0].Primitives[0].Scale = 7
	if c.Shapes()[0].Primitives[0].Scale != 1 {
		t.Error("Shapes exposes internal state")
	}

	id3, _ := c.AddShape(redCircle(1))
	if id3 <= id2 {
		t.Errorf("identifier %d reused", id3)
	}
}

func TestRenderOnlyWhenDirty(t *testing.T) {
	c, err := New(2, 2, WithBackground(color.NRGBA{A: 255}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddShape(redCircle(20)); err != nil {
		t.Fatal(err)
	}
	if err := c.Render(); err != nil {
		t.Fatal(err)
	}
	want := bytes.Repeat([]byte{255, 0, 0, 255}, 4)
	if !bytes.Equal(c.Pix(), want) {
		t.Fatalf("got %v, want %v", c.Pix(), want)
	}

	// an unchanged canvas is not painted again
	c.Pix()[0] = 17
	if err := c.Render(); err != nil {
		t.Fatal(err)
	}
	if c.Pix()[0] != 17 {
		t.Error("clean canvas was rendered again")
	}

	c.SetBackground(color.NRGBA{B: 255, A: 255})
	if err := c.Render(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(c.Pix(), want) {
		t.Errorf("got %v after a background change, want %v", c.Pix(), want)
	}
}

func TestEncode(t *testing.T) {
	c, err := New(2, 2, WithBackground(color.NRGBA{A: 255}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddShape(redCircle(20)); err != nil {
		t.Fatal(err)
	}

	raw, err := c.Encode(encode.Full(2, 2), encode.TrueColor, encode.Buffer)
	if err != nil {
		t.Fatal(err)
	}
	if want := bytes.Repeat([]byte{255, 0, 0, 255}, 4); !bytes.Equal(raw, want) {
		t.Errorf("buffer: got %v, want %v", raw, want)
	}

	text, err := c.Encode(encode.Full(2, 2), encode.Color8, encode.ANSI)
	if err != nil {
		t.Fatal(err)
	}
	cell := "\x1B[41m\x1B[31m▄"
	if want := cell + cell + "\x1B[0m"; string(text) != want {
		t.Errorf("ansi: got %q, want %q", text, want)
	}

	img, err := c.Image()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("image pixel = %v", got)
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddShape(redCircle(1)); err != nil {
		t.Fatal(err)
	}
	if err := c.Render(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "msg=rasterise") {
		t.Errorf("no rasterisation record in log output %q", buf.String())
	}
}
