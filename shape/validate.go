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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sdfcanvas/errors"
)

const opValidate = "shape.Validate"

// Validate checks that all fields of s lie in their documented domains.
// Color channels are bytes and need no checking.
func Validate(s *Shape) error {
	if s == nil {
		return errors.Type(opValidate, "nil shape")
	}

	if !s.Blend.valid() {
		return errors.Range(opValidate, "unknown blend mode %d", s.Blend)
	}
	if !s.Flip.valid() {
		return errors.Range(opValidate, "unknown flip %d", s.Flip)
	}
	if !s.Pattern.valid() {
		return errors.Range(opValidate, "unknown pattern %d", s.Pattern)
	}
	if !s.PatternUnit.valid() {
		return errors.Range(opValidate, "unknown pattern unit %d", s.PatternUnit)
	}
	if !s.StrokePosition.valid() {
		return errors.Range(opValidate, "unknown stroke position %d", s.StrokePosition)
	}
	if !s.StrokeUnit.valid() {
		return errors.Range(opValidate, "unknown stroke unit %d", s.StrokeUnit)
	}

	if !finite(s.PatternRatio) || s.PatternRatio < 0 || s.PatternRatio > 1 {
		return errors.Range(opValidate, "pattern ratio %g not in [0, 1]", s.PatternRatio)
	}
	if !finite(s.PatternScale) || s.PatternScale <= 0 {
		return errors.Range(opValidate, "pattern scale %g must be positive", s.PatternScale)
	}
	if !finite(s.Rotate) {
		return errors.Range(opValidate, "shape rotation %g is not finite", s.Rotate)
	}
	if !finite(s.Scale) || s.Scale < 0 {
		return errors.Range(opValidate, "shape scale %g must be non-negative", s.Scale)
	}
	if !finite(s.StrokeWidth) || s.StrokeWidth < 0 {
		return errors.Range(opValidate, "stroke width %g must be non-negative", s.StrokeWidth)
	}
	if !finitePoint(s.Translate) {
		return errors.Range(opValidate, "shape translation %v is not finite", s.Translate)
	}

	for i := range s.Primitives {
		if err := validatePrimitive(&s.Primitives[i]); err != nil {
			err.Op = opValidate
			err.Err = wrapIndex(i, err.Err)
			return err
		}
	}
	return nil
}

func validatePrimitive(p *Primitive) *errors.Error {
	if !p.Kind.valid() {
		return errors.Range("", "unknown primitive kind %d", p.Kind)
	}
	if !p.Flip.valid() {
		return errors.Range("", "unknown flip %d", p.Flip)
	}
	if !p.Join.valid() {
		return errors.Range("", "unknown join mode %d", p.Join)
	}
	if !finite(p.Rotate) {
		return errors.Range("", "rotation %g is not finite", p.Rotate)
	}
	if !finite(p.Scale) || p.Scale < 0 {
		return errors.Range("", "scale %g must be non-negative", p.Scale)
	}
	if !finitePoint(p.Translate) {
		return errors.Range("", "translation %v is not finite", p.Translate)
	}
	return nil
}

func wrapIndex(i int, err error) error {
	return fmt.Errorf("primitive %d: %w", i, err)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func finitePoint(p vec.Vec2) bool {
	return finite(p.X) && finite(p.Y)
}
