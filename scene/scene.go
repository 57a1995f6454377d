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

// Package scene reads and writes scene files.
//
// A scene file is a YAML document describing the canvas size, the
// background color and an ordered list of shapes:
//
//	width: 80
//	height: 48
//	background: "#000000"
//	shapes:
//	  - scale: 3
//	    ink: [255, 0, 0, 255]
//	    pattern: breton
//	    stroke: {color: "#ffff00", width: 2}
//	    primitives:
//	      - kind: circle
//	      - kind: square
//	        join: difference
//	        scale: 0.5
//
// Enumerated values are given by name.  Fields which are omitted take the
// defaults of [shape.New] and [shape.NewPrimitive].
package scene

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/sdfcanvas/errors"
	"seehuhn.de/go/sdfcanvas/shape"
)

// File is the contents of a scene file.
type File struct {
	Width      int     `yaml:"width" json:"width"`
	Height     int     `yaml:"height" json:"height"`
	Background Color   `yaml:"background" json:"background"`
	Shapes     []Shape `yaml:"shapes" json:"shapes"`

	// AARegion overrides the width of the anti-aliasing band, in pixels.
	AARegion *float64 `yaml:"aa_region,omitempty" json:"aa_region,omitempty"`
}

// Shape is the file representation of a [shape.Shape].
type Shape struct {
	Translate Point           `yaml:"translate" json:"translate"`
	Scale     float64         `yaml:"scale" json:"scale"`
	Rotate    float64         `yaml:"rotate" json:"rotate"`
	Flip      shape.Flip      `yaml:"flip" json:"flip"`
	Blend     shape.BlendMode `yaml:"blend" json:"blend"`

	Ink          Color         `yaml:"ink" json:"ink"`
	Paper        Color         `yaml:"paper" json:"paper"`
	Pattern      shape.Pattern `yaml:"pattern" json:"pattern"`
	PatternRatio float64       `yaml:"pattern_ratio" json:"pattern_ratio"`
	PatternScale float64       `yaml:"pattern_scale" json:"pattern_scale"`
	PatternUnit  shape.Unit    `yaml:"pattern_unit" json:"pattern_unit"`

	Stroke Stroke `yaml:"stroke" json:"stroke"`

	Primitives []Primitive `yaml:"primitives" json:"primitives"`
}

// Stroke holds the stroke settings of a shape.
type Stroke struct {
	Color    Color                `yaml:"color" json:"color"`
	Width    float64              `yaml:"width" json:"width"`
	Unit     shape.Unit           `yaml:"unit" json:"unit"`
	Position shape.StrokePosition `yaml:"position" json:"position"`
}

// Primitive is the file representation of a [shape.Primitive].
type Primitive struct {
	Kind      shape.Kind     `yaml:"kind" json:"kind"`
	Join      shape.JoinMode `yaml:"join" json:"join"`
	Translate Point          `yaml:"translate" json:"translate"`
	Scale     float64        `yaml:"scale" json:"scale"`
	Rotate    float64        `yaml:"rotate" json:"rotate"`
	Flip      shape.Flip     `yaml:"flip" json:"flip"`
}

// New returns a scene file describing the given canvas and shapes.
func New(width, height int, background color.NRGBA, shapes []shape.Shape) *File {
	f := &File{
		Width:      width,
		Height:     height,
		Background: Color(background),
		Shapes:     make([]Shape, len(shapes)),
	}
	for i := range shapes {
		f.Shapes[i] = FromShape(&shapes[i])
	}
	return f
}

// FromShape converts a shape into its file representation.
func FromShape(s *shape.Shape) Shape {
	res := Shape{
		Translate:    Point(s.Translate),
		Scale:        s.Scale,
		Rotate:       s.Rotate,
		Flip:         s.Flip,
		Blend:        s.Blend,
		Ink:          Color(s.Ink),
		Paper:        Color(s.Paper),
		Pattern:      s.Pattern,
		PatternRatio: s.PatternRatio,
		PatternScale: s.PatternScale,
		PatternUnit:  s.PatternUnit,
		Stroke: Stroke{
			Color:    Color(s.StrokeColor),
			Width:    s.StrokeWidth,
			Unit:     s.StrokeUnit,
			Position: s.StrokePosition,
		},
		Primitives: make([]Primitive, len(s.Primitives)),
	}
	for i, p := range s.Primitives {
		res.Primitives[i] = fromPrimitive(p)
	}
	return res
}

func fromPrimitive(p shape.Primitive) Primitive {
	return Primitive{
		Kind:      p.Kind,
		Join:      p.Join,
		Translate: Point(p.Translate),
		Scale:     p.Scale,
		Rotate:    p.Rotate,
		Flip:      p.Flip,
	}
}

// Model converts the file representation into a shape.
func (s *Shape) Model() shape.Shape {
	res := shape.Shape{
		Translate:      s.Translate.Vec2(),
		Scale:          s.Scale,
		Rotate:         s.Rotate,
		Flip:           s.Flip,
		Blend:          s.Blend,
		Ink:            color.NRGBA(s.Ink),
		Paper:          color.NRGBA(s.Paper),
		Pattern:        s.Pattern,
		PatternRatio:   s.PatternRatio,
		PatternScale:   s.PatternScale,
		PatternUnit:    s.PatternUnit,
		StrokeColor:    color.NRGBA(s.Stroke.Color),
		StrokeWidth:    s.Stroke.Width,
		StrokeUnit:     s.Stroke.Unit,
		StrokePosition: s.Stroke.Position,
		Primitives:     make([]shape.Primitive, len(s.Primitives)),
	}
	for i, p := range s.Primitives {
		res.Primitives[i] = shape.Primitive{
			Kind:      p.Kind,
			Join:      p.Join,
			Translate: p.Translate.Vec2(),
			Scale:     p.Scale,
			Rotate:    p.Rotate,
			Flip:      p.Flip,
		}
	}
	return res
}

// UnmarshalYAML implements [yaml.Unmarshaler].  Fields which are not
// present in the document keep the defaults of [shape.New].
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	def := shape.New()
	*s = FromShape(&def)
	type plain Shape
	return node.Decode((*plain)(s))
}

// UnmarshalYAML implements [yaml.Unmarshaler].  Fields which are not
// present in the document keep the defaults of [shape.NewPrimitive].
func (p *Primitive) UnmarshalYAML(node *yaml.Node) error {
	*p = fromPrimitive(shape.NewPrimitive(shape.Circle))
	type plain Primitive
	return node.Decode((*plain)(p))
}

// ShapeList returns the shapes of the scene, in paint order.
func (f *File) ShapeList() []shape.Shape {
	res := make([]shape.Shape, len(f.Shapes))
	for i := range f.Shapes {
		res[i] = f.Shapes[i].Model()
	}
	return res
}

// Validate checks the canvas size and all shapes of the scene.
func (f *File) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return errors.Range(opParse, "invalid canvas size %dx%d", f.Width, f.Height)
	}
	if f.AARegion != nil && !(*f.AARegion >= 0) {
		return errors.Range(opParse, "invalid anti-aliasing width %g", *f.AARegion)
	}
	for i := range f.Shapes {
		s := f.Shapes[i].Model()
		if err := shape.Validate(&s); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

const opParse = "scene.Parse"

// Parse decodes and validates a scene file.  Unknown top-level fields are
// an error.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.Type(opParse, "empty scene file")
		}
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and validates the scene file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Marshal encodes f as YAML.
func (f *File) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
