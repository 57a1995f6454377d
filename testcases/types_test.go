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
package testcases

import (
	"regexp"
	"testing"

	"seehuhn.de/go/sdfcanvas/shape"
)

func TestCasesAreValid(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_]+$`)
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if !valid.MatchString(tc.Name) {
				t.Errorf("%s: invalid name", name)
			}
			if seen[name] {
				t.Errorf("%s: duplicate name", name)
			}
			seen[name] = true
			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s: invalid size %dx%d", name, tc.Width, tc.Height)
			}
			for i := range tc.Shapes {
				if err := shape.Validate(&tc.Shapes[i]); err != nil {
					t.Errorf("%s: shape %d: %v", name, i, err)
				}
			}
		}
	}
}

func TestWorldToDevice(t *testing.T) {
	tc := TestCase{Width: 40, Height: 20}
	m := tc.WorldToDevice()
	// the world origin maps to the canvas centre, 10 world units span the
	// shorter side
	want := [6]float64{2, 0, 0, 2, 20, 10}
	if [6]float64(m) != want {
		t.Errorf("got %v, want %v", m, want)
	}
}
