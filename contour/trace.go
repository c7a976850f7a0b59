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

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"github.com/GenericMappingTools/gmt-sub004/grid"
)

// tracer follows single contours through a grid.  The values in d are
// relative to the contour level.
type tracer struct {
	d      []float64
	nx, ny int
	geo    grid.Geometry
	bits   *EdgeBitmap

	periodic  bool
	chunk     int
	maxPoints int
}

// edge returns the identifier of side k of cell (i, j).
func (t *tracer) edge(i, j, k int) edgeID {
	return edgeID{
		family: sideFamily[k],
		index:  (j+sideDJ[k])*t.nx + i + sideDI[k],
	}
}

// validCell reports whether (i, j) is the lower-left node of a cell.
func (t *tracer) validCell(i, j int) bool {
	return i >= 0 && i <= t.nx-2 && j >= 1 && j <= t.ny-1
}

// window loads the corner values of cell (i, j) into z.
func (t *tracer) window(i, j int, z *[5]float64) {
	for k := range 4 {
		z[k] = t.d[(j+cornerDJ[k])*t.nx+i+cornerDI[k]]
	}
	if t.periodic {
		setContJump(z[:4])
	}
	z[4] = z[0]
}

// point returns the location of the crossing on side k of cell (i, j).
func (t *tracer) point(i, j, k int, z *[5]float64) vec.Vec2 {
	r := fraction(z[k], z[k+1])
	fi := float64(i+cornerDI[k]) + r*float64(cornerDI[k+1]-cornerDI[k])
	fj := float64(j+cornerDJ[k]) + r*float64(cornerDJ[k+1]-cornerDJ[k])
	return vec.Vec2{X: t.geo.IToX(fi), Y: t.geo.JToY(fj)}
}

// push appends p to pts, growing the buffer by whole chunks.
func (t *tracer) push(pts []vec.Vec2, p vec.Vec2) ([]vec.Vec2, error) {
	if t.maxPoints > 0 && len(pts) >= t.maxPoints {
		return pts, ErrAllocation
	}
	if len(pts) == cap(pts) {
		pts = slices.Grow(pts, t.chunk)
	}
	return append(pts, p), nil
}

// trace follows the contour which enters cell (i, j) through side entry.
//
// If test is set, an already consumed start edge gives an empty result,
// and a trace which comes back to its start edge is closed.  Without
// test the start edge may already be consumed; this is used to follow a
// contour backwards from where an earlier trace started.
//
// The trace ends when it closes, when it leaves the grid, when it runs
// into a void or when the next edge has been consumed before.
func (t *tracer) trace(i, j, entry int, test bool) (*Contour, error) {
	start := t.edge(i, j, entry)
	if test && t.bits.isMarked(start) {
		return nil, nil
	}

	c := &Contour{}
	if !t.bits.isMarked(start) {
		t.bits.mark(start)
		c.Edges++
	}

	var z [5]float64
	t.window(i, j, &z)
	pts, err := t.push(nil, t.point(i, j, entry, &z))
	if err != nil {
		return nil, err
	}

	var last step
	for {
		c.NaNs += countNaN(&z)
		exit, ok := exitSide(&z, entry)
		if !ok {
			break
		}
		s := step{i: i, j: j, entry: entry, exit: exit, hand: handedness(entry, exit, &z), valid: true}

		e := t.edge(i, j, exit)
		if t.bits.isMarked(e) {
			if e == start && test {
				if pts, err = t.push(pts, pts[0]); err != nil {
					return nil, err
				}
				c.Closed = true
				if !c.first.valid {
					c.first = s
				}
				last = s
			}
			break
		}

		t.bits.mark(e)
		c.Edges++
		if pts, err = t.push(pts, t.point(i, j, exit, &z)); err != nil {
			return nil, err
		}
		if !c.first.valid {
			c.first = s
		}
		last = s

		ni, nj := i+nextDI[exit], j+nextDJ[exit]
		if !t.validCell(ni, nj) {
			break
		}
		i, j, entry = ni, nj, (exit+2)%4
		t.window(i, j, &z)
	}

	c.Points = make([]vec.Vec2, len(pts))
	copy(c.Points, pts)
	c.last = last
	return c, nil
}
