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

import "errors"

var (
	// ErrAllocation indicates that a single trace needed more points than
	// Options.MaxPoints allows.  The extraction run for the level ends.
	ErrAllocation = errors.New("contour: point buffer limit exceeded")

	// ErrInterval indicates a non-positive or non-finite contour interval.
	ErrInterval = errors.New("contour: interval must be positive and finite")

	// ErrTooManyLevels indicates that an interval is too small for the
	// data range.
	ErrTooManyLevels = errors.New("contour: too many contour levels")
)
