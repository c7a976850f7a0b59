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

package testcases

import (
	"seehuhn.de/go/geom/rect"

	"github.com/GenericMappingTools/gmt-sub004/grid"
)

// TestCase is a small grid together with the contour topology expected at
// one level.
type TestCase struct {
	Name     string            // lowercase a-z and _ only
	Rows     [][]float64       // samples, north to south
	Reg      grid.Registration // gridline or pixel registration
	Region   rect.Rect         // west, south, east and north boundary
	Level    float64           // contour level
	Periodic bool              // values are angles in degrees

	// Closed and Open give the expected number of closed and open
	// contours.  Negative values are not checked.
	Closed, Open int
}

// Grid builds the grid described by the test case.
func (tc TestCase) Grid() (*grid.Grid, error) {
	r := tc.Region
	return grid.FromRows(tc.Rows, r.LLx, r.URx, r.LLy, r.URy, tc.Reg)
}

// unit returns the region [0, nx] x [0, ny], matching a pixel registered
// grid with unit spacing.
func unit(nx, ny int) rect.Rect {
	return rect.Rect{URx: float64(nx), URy: float64(ny)}
}

// sample evaluates f at the nodes of an nx by ny gridline registered
// grid, with row 0 at the top.
func sample(nx, ny int, f func(x, y float64) float64) [][]float64 {
	rows := make([][]float64, ny)
	for j := range rows {
		rows[j] = make([]float64, nx)
		for i := range rows[j] {
			rows[j][i] = f(float64(i), float64(ny-1-j))
		}
	}
	return rows
}
