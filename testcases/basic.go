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

var basicCases = []TestCase{
	{
		Name: "all_positive",
		Rows: [][]float64{
			{1, 2, 3, 4},
			{2, 3, 4, 5},
			{3, 4, 5, 6},
			{4, 5, 6, 7},
		},
		Reg:    grid.Pixel,
		Region: unit(4, 4),
		Closed: 0,
		Open:   0,
	},
	{
		Name: "pit",
		Rows: [][]float64{
			{1, 1, 1},
			{1, -1, 1},
			{1, 1, 1},
		},
		Reg:    grid.Pixel,
		Region: unit(3, 3),
		Closed: 1,
		Open:   0,
	},
	{
		Name: "ramp",
		Rows: [][]float64{
			{-1.5, -0.5, 0.5, 1.5},
			{-1.5, -0.5, 0.5, 1.5},
			{-1.5, -0.5, 0.5, 1.5},
		},
		Reg:    grid.Gridline,
		Region: rect.Rect{URx: 3, URy: 2},
		Closed: 0,
		Open:   1,
	},
	{
		Name: "diagonal",
		Rows: sample(4, 4, func(x, y float64) float64 {
			return x + (3 - y)
		}),
		Reg:    grid.Gridline,
		Region: rect.Rect{URx: 3, URy: 3},
		Level:  2.5,
		Closed: 0,
		Open:   1,
	},
	{
		Name: "cone",
		Rows: sample(5, 5, func(x, y float64) float64 {
			return 2 - max(math.Abs(x-2), math.Abs(y-2))
		}),
		Reg:    grid.Gridline,
		Region: rect.Rect{URx: 4, URy: 4},
		Level:  0.5,
		Closed: 1,
		Open:   0,
	},
}
