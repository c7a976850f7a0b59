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

// MaxLevels is the largest number of contour levels Levels returns.
const MaxLevels = 100000

// Levels returns the multiples of interval which lie inside [zMin, zMax],
// in increasing order.
func Levels(zMin, zMax, interval float64) ([]float64, error) {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return nil, ErrInterval
	}
	if zMax < zMin {
		return nil, nil
	}

	first := math.Ceil(zMin / interval)
	last := math.Floor(zMax / interval)
	n := last - first + 1
	if math.IsNaN(n) || math.IsInf(n, 0) || n > MaxLevels {
		return nil, ErrTooManyLevels
	}
	if n < 1 {
		return nil, nil
	}
	res := make([]float64, int(n))
	for i := range res {
		res[i] = (first + float64(i)) * interval
	}
	return res, nil
}

// Annotated reports whether level v is a multiple of annot, and thus
// should be drawn with the heavier pen and labelled.  A non-positive
// annot annotates nothing.
func Annotated(v, annot float64) bool {
	if !(annot > 0) {
		return false
	}
	q := v / annot
	return math.Abs(q-math.Round(q)) < 1e-8
}
