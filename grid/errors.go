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

package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid without rows or columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrShape indicates that the number of samples does not match NX*NY.
	ErrShape = errors.New("grid: sample count does not match the grid dimensions")
	// ErrIncrement indicates a non-positive or non-finite node spacing.
	ErrIncrement = errors.New("grid: increments must be positive and finite")
	// ErrBounds indicates an empty or inverted region.
	ErrBounds = errors.New("grid: region is empty")
)
