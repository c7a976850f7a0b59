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

import "slices"

// rightCorner[entry][exit] is the corner which lies to the right of a
// contour crossing a cell from side entry to side exit, with y pointing
// up.  The entries follow from the corner numbering described in cell.go;
// with a different numbering the table must be derived again.
var rightCorner = [4][4]int{
	{-1, 1, 1, 1},
	{2, -1, 2, 2},
	{3, 3, -1, 3},
	{0, 0, 0, -1},
}

// handedness returns +1 if larger values lie to the left of a contour
// crossing the cell from side entry to side exit, and -1 otherwise.
func handedness(entry, exit int, z *[5]float64) int {
	k := rightCorner[entry][exit]
	if k < 0 {
		return 0
	}
	if z[k] > 0 {
		return -1
	}
	return +1
}

// Handedness returns +1 if larger values lie to the left of the direction
// of travel, -1 if they lie to the right, and 0 if the contour has no
// segment from which this can be told.
func (c *Contour) Handedness() int {
	if !c.first.valid {
		return 0
	}
	h := c.first.hand
	if c.reversed {
		h = -h
	}
	return h
}

// Enforce reverses the points of c if necessary, so that the handedness
// of c matches orient.  Use orient +1 for larger values on the left and
// -1 for larger values on the right.  An orient of 0 leaves c unchanged.
func Enforce(c *Contour, orient int) {
	if orient == 0 {
		return
	}
	h := c.Handedness()
	if h == 0 || h == orient {
		return
	}
	slices.Reverse(c.Points)
	c.reversed = !c.reversed
}
