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

import "math"

// Cell conventions.
//
// Cell (i, j) has its lower-left corner at node (i, j), so that valid
// cells have 0 <= i <= nx-2 and 1 <= j <= ny-1.  The corners are numbered
// counter-clockwise with y pointing up:
//
//	3 UL (i, j-1) ---- 2 UR (i+1, j-1)
//	     |                  |
//	0 LL (i, j)   ---- 1 LR (i+1, j)
//
// Side k runs from corner k to corner k+1: 0 bottom, 1 right, 2 top,
// 3 left.  The saddle rule in exitSide and the orientation table in
// orient.go both depend on this numbering; changing it means deriving
// both again.

// cornerDI and cornerDJ give the node offsets of the corners, with the
// first corner repeated at the end.
var (
	cornerDI = [5]int{0, 1, 1, 0, 0}
	cornerDJ = [5]int{0, 0, -1, -1, 0}
)

// Offsets from the cell to the node at which the edge of side k is indexed.
var (
	sideDI     = [4]int{0, 1, 0, 0}
	sideDJ     = [4]int{0, 0, -1, 0}
	sideFamily = [4]Family{Horizontal, Vertical, Horizontal, Vertical}
)

// Offsets to the neighbouring cell across side k.  The neighbour is
// entered through side (k+2)%4.
var (
	nextDI = [4]int{0, 1, 0, -1}
	nextDJ = [4]int{1, 0, -1, 0}
)

// crosses reports whether the contour passes between two corner values.
// Voids never cross.
func crosses(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return a*b <= 0
}

// fraction returns the position of the zero crossing between a and b,
// measured from a.
func fraction(a, b float64) float64 {
	return a / (a - b)
}

// exitSide chooses the side through which a contour entering the cell
// through side entry leaves it.  The corner values z are relative to
// the contour level, with z[4] == z[0].
//
// If only one other side carries a crossing, it is taken.  When all three
// other sides cross, the cell is a saddle and the pairing follows from
// the crossing fractions: the sides entry and entry+1 belong together if
// xk[entry]+xk[entry+2] exceeds xk[entry+1]+xk[entry+3], otherwise entry
// pairs with entry+3.  Exact ties pair side 0 with 1 and side 2 with 3,
// which keeps the choice symmetric between neighbouring entries.
func exitSide(z *[5]float64, entry int) (int, bool) {
	var cross [4]bool
	var xk [4]float64
	for k := range 4 {
		if crosses(z[k], z[k+1]) {
			cross[k] = true
			xk[k] = fraction(z[k], z[k+1])
		}
	}

	var cand [3]int
	n := 0
	for d := 1; d < 4; d++ {
		k := (entry + d) % 4
		if cross[k] {
			cand[n] = k
			n++
		}
	}

	switch n {
	case 0:
		return 0, false
	case 3:
		e := entry
		a := xk[e] + xk[(e+2)%4]
		b := xk[(e+1)%4] + xk[(e+3)%4]
		if a > b || (a == b && e%2 == 0) {
			return (e + 1) % 4, true
		}
		return (e + 3) % 4, true
	default:
		return cand[0], true
	}
}

// setContJump brings periodic values (degrees) into a contiguous window,
// so that a wrap from 359 to 1 is not mistaken for a contour crossing.
// The slice is modified in place.  NaN values are left alone.
func setContJump(z []float64) {
	jump := false
	for _, v := range z[1:] {
		if math.Abs(v-z[0]) > 180 {
			jump = true
			break
		}
	}
	if !jump {
		return
	}

	z[0] = wrap180(math.Mod(z[0], 360))
	for i := 1; i < len(z); i++ {
		v := wrap180(z[i])
		if dz := v - z[0]; math.Abs(dz) > 180 {
			v -= math.Copysign(360, dz)
		}
		z[i] = math.Mod(v, 360)
	}
}

func wrap180(v float64) float64 {
	switch {
	case v > 180:
		return v - 360
	case v < -180:
		return v + 360
	}
	return v
}

// countNaN returns the number of void corners of a cell.
func countNaN(z *[5]float64) int {
	n := 0
	for _, v := range z[:4] {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}
