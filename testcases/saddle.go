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

var saddleCases = []TestCase{
	{
		Name: "symmetric",
		Rows: [][]float64{
			{1, -1},
			{-1, 1},
		},
		Reg:    grid.Gridline,
		Region: rect.Rect{URx: 1, URy: 1},
		Closed: 0,
		Open:   2,
	},
	{
		Name: "high_centre",
		Rows: [][]float64{
			{2, -1},
			{-1, 2},
		},
		Reg:    grid.Gridline,
		Region: rect.Rect{URx: 1, URy: 1},
		Closed: 0,
		Open:   2,
	},
	{
		Name: "checkerboard",
		Rows: [][]float64{
			{1, -1, 1, -1},
			{-1, 1, -1, 1},
			{1, -1, 1, -1},
			{-1, 1, -1, 1},
		},
		Reg:    grid.Pixel,
		Region: unit(4, 4),
		Closed: -1,
		Open:   -1,
	},
}
