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
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/GenericMappingTools/gmt-sub004/grid"
)

var nan = math.NaN()

var voidCases = []TestCase{
	{
		// A full row of voids cuts the contour in two.
		Name: "nan_row",
		Rows: [][]float64{
			{-1.5, -0.5, 0.5, 1.5},
			{-1.5, -0.5, 0.5, 1.5},
			{nan, nan, nan, nan},
			{-1.5, -0.5, 0.5, 1.5},
			{-1.5, -0.5, 0.5, 1.5},
		},
		Reg:    grid.Gridline,
		Region: rect.Rect{URx: 3, URy: 4},
		Closed: 0,
		Open:   2,
	},
	{
		// A void next to a basin opens the contour around the basin.
		// The scan starts in the interior and is completed by splicing.
		Name: "nan_notch",
		Rows: [][]float64{
			{1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1},
			{1, 1, -1, -1, nan, 1},
			{1, 1, -1, -1, 1, 1},
			{1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1},
		},
		Reg:    grid.Pixel,
		Region: unit(6, 6),
		Closed: 0,
		Open:   1,
	},
	{
		Name: "all_void",
		Rows: [][]float64{
			{nan, nan},
			{nan, nan},
		},
		Reg:    grid.Pixel,
		Region: unit(2, 2),
		Closed: 0,
		Open:   0,
	},
}
