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

// Package contour traces iso-lines through regularly gridded data.
//
// A [Scanner] walks one contour level at a time.  It visits the grid
// boundary first (south, east, north, west) and the interior edges
// afterwards, and starts a trace at every edge with a sign change that no
// earlier trace has consumed.  An [EdgeBitmap] keeps track of consumed
// edges, so every contour is reported exactly once.  Traces that run into
// void (NaN) cells are traced a second time in the opposite direction and
// the two halves are spliced together.
//
// The returned polylines can be oriented with [Enforce], resampled with
// the smooth package and handed to an output sink from the plot package.
package contour

import (
	"seehuhn.de/go/geom/vec"

	"github.com/GenericMappingTools/gmt-sub004/grid"
)

// Default values used for zero fields in [Options].
const (
	DefaultChunkSize = 2048
	DefaultZeroNudge = 1e-10
)

// Options control a contour scan.  The zero value is ready to use.
type Options struct {
	// Geometry maps fractional node indices to output coordinates.
	// If nil, the linear mapping of the grid header is used.
	Geometry grid.Geometry

	// Periodic marks the grid values as angles in degrees.  Differences
	// are then taken modulo 360.
	Periodic bool

	// ZeroNudge is added to samples which lie exactly on the contour
	// level.  If zero, DefaultZeroNudge is used.
	ZeroNudge float64

	// ChunkSize is the number of points by which the point buffer of a
	// trace grows.  If zero, DefaultChunkSize is used.
	ChunkSize int

	// MaxPoints limits the number of points in a single trace.  If the
	// limit is exceeded, the scan fails with ErrAllocation.
	// Zero means no limit.
	MaxPoints int
}

func (o *Options) withDefaults() Options {
	var res Options
	if o != nil {
		res = *o
	}
	if res.ZeroNudge == 0 {
		res.ZeroNudge = DefaultZeroNudge
	}
	if res.ChunkSize <= 0 {
		res.ChunkSize = DefaultChunkSize
	}
	return res
}

// Contour is one traced iso-line.
type Contour struct {
	// Value is the contour level.
	Value float64

	// Points holds the vertices in travel order.  For closed contours
	// the last point is an exact copy of the first one.
	Points []vec.Vec2

	// Closed is set if the trace returned to the edge it started from.
	Closed bool

	// Edges is the number of grid edges consumed by this contour.
	Edges int

	// NaNs counts the void cell corners seen during tracing.
	NaNs int

	first, last step
	reversed    bool
}

// Len returns the number of points.
func (c *Contour) Len() int {
	return len(c.Points)
}

// step records the passage of a trace through one cell.
type step struct {
	i, j        int
	entry, exit int

	// hand is +1 if larger values lie to the left of the direction of
	// travel, and -1 if they lie to the right.
	hand  int
	valid bool
}

// reverse returns the same passage travelled backwards.
func (s step) reverse() step {
	s.entry, s.exit = s.exit, s.entry
	s.hand = -s.hand
	return s
}
