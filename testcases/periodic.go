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

// phase holds angles which wrap from 355 to 5 degrees between the second
// and the third column.
var phase = [][]float64{
	{350, 355, 5, 10},
	{350, 355, 5, 10},
	{350, 355, 5, 10},
}

var periodicCases = []TestCase{
	{
		Name:     "wrap",
		Rows:     phase,
		Reg:      grid.Gridline,
		Region:   rect.Rect{URx: 3, URy: 2},
		Periodic: true,
		Closed:   0,
		Open:     1,
	},
	{
		Name:   "wrap_ignored",
		Rows:   phase,
		Reg:    grid.Gridline,
		Region: rect.Rect{URx: 3, URy: 2},
		Closed: 0,
		Open:   0,
	},
}
