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

package scene

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/vec"
)

// Color is a straight-alpha RGBA color.  In scene files, colors are
// written either as "#rrggbb" or "#rrggbbaa" hex strings, or as a list of
// three or four byte values.  A missing alpha value means opaque.
type Color color.NRGBA

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	digits, ok := strings.CutPrefix(s, "#")
	if !ok || (len(digits) != 6 && len(digits) != 8) {
		return fmt.Errorf("invalid color %q", s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return fmt.Errorf("invalid color %q", s)
	}
	*c = Color{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return c.UnmarshalText([]byte(node.Value))
	case yaml.SequenceNode:
		var v []int
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: invalid color: %w", node.Line, err)
		}
		if len(v) != 3 && len(v) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 components, got %d", node.Line, len(v))
		}
		b := [4]uint8{3: 255}
		for i, x := range v {
			if x < 0 || x > 255 {
				return fmt.Errorf("line %d: color component %d out of range", node.Line, x)
			}
			b[i] = uint8(x)
		}
		*c = Color{R: b[0], G: b[1], B: b[2], A: b[3]}
		return nil
	}
	return fmt.Errorf("line %d: invalid color", node.Line)
}

// Point is a position in world coordinates, written as [x, y].
type Point vec.Vec2

// Vec2 returns p as a vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2(p)
}

// MarshalYAML implements [yaml.Marshaler].
func (p Point) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, x := range []float64{p.X, p.Y} {
		var item yaml.Node
		if err := item.Encode(x); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &item)
	}
	return node, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var v []float64
	if err := node.Decode(&v); err != nil || len(v) != 2 {
		return fmt.Errorf("line %d: point must be a list [x, y]", node.Line)
	}
	*p = Point{X: v[0], Y: v[1]}
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (p *Point) UnmarshalJSON(data []byte) error {
	var v [2]float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Point{X: v[0], Y: v[1]}
	return nil
}
