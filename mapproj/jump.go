// gmt-sub004 - contour tracing for static map plots
// Copyright (C) 2026  The GMT Team
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

package mapproj

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Jumper detects segments which cross the periodic boundary of a map,
// for example a contour wrapping from 179E to 179W.
type Jumper struct {
	// Period is the width of the map in x.  Zero disables jump detection.
	Period float64
}

// IsJump reports whether the step from a to b wraps around the map.
func (j Jumper) IsJump(a, b vec.Vec2) bool {
	return j.Period > 0 && math.Abs(b.X-a.X) > j.Period/2
}

// Split cuts pts at every jump.  The pieces share the underlying array
// with pts.  Pieces with a single point are dropped.
func (j Jumper) Split(pts []vec.Vec2) [][]vec.Vec2 {
	var res [][]vec.Vec2
	start := 0
	for k := 1; k <= len(pts); k++ {
		if k < len(pts) && !j.IsJump(pts[k-1], pts[k]) {
			continue
		}
		if k-start >= 2 {
			res = append(res, pts[start:k])
		}
		start = k
	}
	return res
}
