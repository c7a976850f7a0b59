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

package contour

import "seehuhn.de/go/geom/vec"

// Splice joins two traces which started on the same edge and ran in
// opposite directions.  The result runs from the far end of second
// through the common start point to the far end of first.
//
// The first point of second duplicates the start of first and is
// dropped, so the result has len(first)+len(second)-1 points.  If second
// has fewer than two points, first is returned unchanged.
func Splice(first, second *Contour) *Contour {
	n1, n2 := len(first.Points), len(second.Points)
	if n2 < 2 {
		return first
	}

	pts := make([]vec.Vec2, 0, n1+n2-1)
	for k := n2 - 1; k >= 1; k-- {
		pts = append(pts, second.Points[k])
	}
	pts = append(pts, first.Points...)

	res := &Contour{
		Value:  first.Value,
		Points: pts,
		Edges:  first.Edges + second.Edges,
		NaNs:   first.NaNs + second.NaNs,
		first:  second.last.reverse(),
		last:   first.last,
	}
	if !second.last.valid {
		res.first = first.first
	}
	return res
}
