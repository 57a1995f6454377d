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
	"fmt"
	"strings"
)

// Kind identifies the local geometry of a primitive.
type Kind uint8

const (
	Circle Kind = iota
	Square
	TriangleRight
)

// Flip mirrors the local coordinates of a shape or primitive.
type Flip uint8

const (
	FlipNone Flip = iota
	FlipX         // negate x
	FlipY         // negate y
	FlipXY        // negate both coordinates
)

// JoinMode combines the distance of a primitive with the accumulated
// distance of the primitives before it.
type JoinMode uint8

const (
	Union      JoinMode = iota // min(acc, d)
	Difference                 // max(acc, -d)
)

// BlendMode selects how a shape's color combines with the pixels below.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
)

// Pattern selects how ink and paper are distributed over a shape.
type Pattern uint8

const (
	AllInk    Pattern = iota
	AllPaper          // paper color only
	Breton            // horizontal stripes
	Pinstripe         // vertical stripes
)

// Unit selects how lengths (stroke widths, pattern periods) are measured.
type Unit uint8

const (
	UnitPixel Unit = iota // screen pixels
	UnitShape             // pixels, multiplied by the shape scale
	UnitWorld             // world units
)

// StrokePosition places the stroke band relative to the shape boundary.
type StrokePosition uint8

const (
	StrokeCenter  StrokePosition = iota // centred on the boundary
	StrokeInside                        // inside the boundary
	StrokeOutside                       // outside the boundary
)

var (
	kindNames     = []string{"circle", "square", "triangle-right"}
	flipNames     = []string{"none", "x", "y", "xy"}
	joinNames     = []string{"union", "difference"}
	blendNames    = []string{"normal", "multiply", "screen", "overlay"}
	patternNames  = []string{"all-ink", "all-paper", "breton", "pinstripe"}
	unitNames     = []string{"pixel", "shape", "world"}
	positionNames = []string{"center", "inside", "outside"}
)

func enumString[E ~uint8](names []string, e E) string {
	if int(e) < len(names) {
		return names[e]
	}
	return fmt.Sprintf("%d", uint8(e))
}

func parseEnum[E ~uint8](what string, names []string, text []byte) (E, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range names {
		if s == name {
			return E(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", what, s, strings.Join(names, ", "))
}

func (k Kind) String() string           { return enumString(kindNames, k) }
func (f Flip) String() string           { return enumString(flipNames, f) }
func (j JoinMode) String() string       { return enumString(joinNames, j) }
func (b BlendMode) String() string      { return enumString(blendNames, b) }
func (p Pattern) String() string        { return enumString(patternNames, p) }
func (u Unit) String() string           { return enumString(unitNames, u) }
func (p StrokePosition) String() string { return enumString(positionNames, p) }

func (k Kind) valid() bool           { return int(k) < len(kindNames) }
func (f Flip) valid() bool           { return int(f) < len(flipNames) }
func (j JoinMode) valid() bool       { return int(j) < len(joinNames) }
func (b BlendMode) valid() bool      { return int(b) < len(blendNames) }
func (p Pattern) valid() bool        { return int(p) < len(patternNames) }
func (u Unit) valid() bool           { return int(u) < len(unitNames) }
func (p StrokePosition) valid() bool { return int(p) < len(positionNames) }

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) (err error) {
	*k, err = parseEnum[Kind]("primitive kind", kindNames, text)
	return err
}

// MarshalText implements [encoding.TextMarshaler].
func (f Flip) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Flip) UnmarshalText(text []byte) (err error) {
	*f, err = parseEnum[Flip]("flip", flipNames, text)
	return err
}

// MarshalText implements [encoding.TextMarshaler].
func (j JoinMode) MarshalText() ([]byte, error) { return []byte(j.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (j *JoinMode) UnmarshalText(text []byte) (err error) {
	*j, err = parseEnum[JoinMode]("join mode", joinNames, text)
	return err
}

// MarshalText implements [encoding.TextMarshaler].
func (b BlendMode) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (b *BlendMode) UnmarshalText(text []byte) (err error) {
	*b, err = parseEnum[BlendMode]("blend mode", blendNames, text)
	return err
}

// MarshalText implements [encoding.TextMarshaler].
func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Pattern) UnmarshalText(text []byte) (err error) {
	*p, err = parseEnum[Pattern]("pattern", patternNames, text)
	return err
}

// MarshalText implements [encoding.TextMarshaler].
func (u Unit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *Unit) UnmarshalText(text []byte) (err error) {
	*u, err = parseEnum[Unit]("unit", unitNames, text)
	return err
}

// MarshalText implements [encoding.TextMarshaler].
func (p StrokePosition) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *StrokePosition) UnmarshalText(text []byte) (err error) {
	*p, err = parseEnum[StrokePosition]("stroke position", positionNames, text)
	return err
}
