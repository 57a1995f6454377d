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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sdfcanvas/internal/fmath"
	"seehuhn.de/go/sdfcanvas/internal/logging"
	"seehuhn.de/go/sdfcanvas/shape"
)

// PatternSampler resolves the fill color of a shape at world points.
//
// The sampler memoizes the pattern cycle length.  The cached value is
// keyed by every input it depends on and recomputed on mismatch, so one
// sampler may be used with different shapes, at the cost of recomputation.
// The zero value is ready for use.
type PatternSampler struct {
	valid bool
	key   cycleKey
	cycle float64
}

type cycleKey struct {
	patternScale       float64
	patternUnit        shape.Unit
	scale              float64
	worldUnitsPerPixel float64
}

// SamplePattern returns the fill color of s at the world point p.
// Callers sampling many points should use a [PatternSampler].
func SamplePattern(s *shape.Shape, p vec.Vec2, worldUnitsPerPixel float64) RGBA {
	var ps PatternSampler
	return ps.Sample(s, p, worldUnitsPerPixel)
}

// Sample returns the fill color of s at the world point p.
//
// For stripe patterns, the ink coverage of the stripes is integrated over
// the footprint of one pixel, so that stripe edges are anti-aliased.
// Unknown patterns fall back to a flat mix of ink and paper, weighted by
// the pattern ratio.
func (ps *PatternSampler) Sample(s *shape.Shape, p vec.Vec2, worldUnitsPerPixel float64) RGBA {
	var coverage float64
	switch s.Pattern {
	case shape.AllInk:
		return Normalize(s.Ink)
	case shape.AllPaper:
		return Normalize(s.Paper)
	case shape.Breton, shape.Pinstripe:
		local := toPatternSpace(s, p)
		centre := local.Y
		if s.Pattern == shape.Pinstripe {
			centre = local.X
		}
		footprint := worldUnitsPerPixel / nonZeroScale(s)
		coverage = stripeCoverage(centre, footprint, ps.cycleLength(s, worldUnitsPerPixel), s.PatternRatio)
	default:
		coverage = fmath.Clamp01(s.PatternRatio)
	}

	switch coverage {
	case 0:
		return Normalize(s.Paper)
	case 1:
		return Normalize(s.Ink)
	}
	return lerp(Normalize(s.Paper), Normalize(s.Ink), coverage)
}

// cycleLength returns the length of one pattern cycle in pattern space.
// Zero indicates a degenerate pattern.
func (ps *PatternSampler) cycleLength(s *shape.Shape, worldUnitsPerPixel float64) float64 {
	key := cycleKey{
		patternScale:       s.PatternScale,
		patternUnit:        s.PatternUnit,
		scale:              s.Scale,
		worldUnitsPerPixel: worldUnitsPerPixel,
	}
	if ps.valid && ps.key == key {
		return ps.cycle
	}

	scale := nonZeroScale(s)
	var period float64 // in world units
	switch s.PatternUnit {
	case shape.UnitPixel:
		period = s.PatternScale * worldUnitsPerPixel
	case shape.UnitShape:
		period = s.PatternScale * worldUnitsPerPixel * scale
	case shape.UnitWorld:
		period = s.PatternScale
	}
	cycle := period / scale
	if math.IsNaN(cycle) || math.IsInf(cycle, 0) || cycle <= 0 {
		logging.Logger().Warn("degenerate pattern period",
			"pattern", s.Pattern, "scale", s.PatternScale, "unit", s.PatternUnit)
		cycle = 0
	}

	ps.valid = true
	ps.key = key
	ps.cycle = cycle
	return cycle
}

// toPatternSpace maps a world point into the unrotated shape space in
// which patterns are defined.
func toPatternSpace(s *shape.Shape, p vec.Vec2) vec.Vec2 {
	q := s.Flip.Apply(p.Sub(s.Translate))
	return q.Mul(1 / nonZeroScale(s))
}

func nonZeroScale(s *shape.Shape) float64 {
	if s.Scale == 0 {
		return 1
	}
	return math.Abs(s.Scale)
}

// stripeCoverage returns the average ink coverage of a stripe pattern
// over the interval [centre-footprint/2, centre+footprint/2].  Each cycle
// of length cycle starts with ratio*cycle units of ink.
func stripeCoverage(centre, footprint, cycle, ratio float64) float64 {
	ratio = fmath.Clamp01(ratio)
	if cycle <= 0 {
		return ratio
	}
	ink := ratio * cycle
	if footprint <= 0 {
		if wrap(centre, cycle) < ink {
			return 1
		}
		return 0
	}

	// partial first cycle
	offset := wrap(centre-footprint/2, cycle)
	firstEnd := min(cycle-offset, footprint)
	total := overlap(offset, offset+firstEnd, ink)

	// whole cycles and the partial remainder
	rest := footprint - firstEnd
	if rest > 0 {
		whole := math.Floor(rest / cycle)
		total += whole * ink
		total += overlap(0, rest-whole*cycle, ink)
	}

	return fmath.Clamp01(total / footprint)
}

// overlap returns the length of [a, b] ∩ [0, ink], for 0 <= a <= b.
func overlap(a, b, ink float64) float64 {
	return max(0, min(b, ink)-min(a, ink))
}

// wrap returns x modulo cycle, in [0, cycle).
func wrap(x, cycle float64) float64 {
	r := math.Mod(x, cycle)
	if r < 0 {
		r += cycle
	}
	if r >= cycle {
		r = 0
	}
	return r
}
