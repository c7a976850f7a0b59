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

var largeCases = []TestCase{
	{
		Name: "waves",
		Rows: sample(96, 64, func(x, y float64) float64 {
			return math.Sin(x/6) * math.Cos(y/5)
		}),
		Reg:    grid.Gridline,
		Region: rect.Rect{LLx: -180, LLy: -60, URx: 180, URy: 60},
		Level:  0.25,
		Closed: -1,
		Open:   -1,
	},
	{
		Name: "peaks",
		Rows: sample(80, 80, func(x, y float64) float64 {
			u, v := x/13-3, y/13-3
			return 3*(1-u)*(1-u)*math.Exp(-u*u-(v+1)*(v+1)) -
				10*(u/5-u*u*u-math.Pow(v, 5))*math.Exp(-u*u-v*v) -
				math.Exp(-(u+1)*(u+1)-v*v)/3
		}),
		Reg:    grid.Pixel,
		Region: unit(80, 80),
		Level:  1,
		Closed: -1,
		Open:   -1,
	},
}
