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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// flatten converts p into polylines in user space, stored in r.lines and
// r.shut.  Curves are replaced by chords which deviate from the curve by
// at most r.Flatness device pixels.
func (r *Rasterizer) flatten(p *path.Data) {
	for i := range r.lines {
		r.lines[i] = r.lines[i][:0]
	}
	r.lines = r.lines[:0]
	r.shut = r.shut[:0]

	var cur []vec.Vec2
	finish := func(closed bool) {
		if len(cur) > 0 {
			r.lines = append(r.lines, cur)
			r.shut = append(r.shut, closed)
		}
		cur = nil
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur = append(r.spare(), p.Coords[k])
			k++
		case path.CmdLineTo:
			cur = append(cur, p.Coords[k])
			k++
		case path.CmdQuadTo:
			last := cur[len(cur)-1]
			cur = r.bezier(cur, last, p.Coords[k], p.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			last := cur[len(cur)-1]
			cur = r.bezier(cur, last, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			k += 3
		case path.CmdClose:
			if len(cur) == 0 {
				continue
			}
			start := cur[0]
			finish(true)
			// a following segment without MoveTo starts at the closed point
			cur = append(r.spare(), start)
		}
	}
	finish(false)

	// isolated MoveTo points draw nothing
	n := 0
	for i, line := range r.lines {
		if len(line) < 2 {
			continue
		}
		r.lines[n], r.lines[i] = line, r.lines[n]
		r.shut[n] = r.shut[i]
		n++
	}
	r.lines = r.lines[:n]
	r.shut = r.shut[:n]
}

// spare returns an empty slice, reusing storage beyond len(r.lines).
func (r *Rasterizer) spare() []vec.Vec2 {
	if n := len(r.lines); n < cap(r.lines) {
		return r.lines[:n+1][n][:0]
	}
	return nil
}

// bezier appends a flattened Bézier curve with control points ctrl to dst.
// ctrl[0] is the current point and is not appended again.
func (r *Rasterizer) bezier(dst []vec.Vec2, ctrl ...vec.Vec2) []vec.Vec2 {
	// the second differences of the control polygon bound the distance
	// between the curve and its chords
	var dev float64
	for i := 2; i < len(ctrl); i++ {
		d := ctrl[i].Sub(ctrl[i-1].Mul(2)).Add(ctrl[i-2])
		dev = max(dev, d.Length())
	}
	deg := float64(len(ctrl) - 1)
	dev *= r.deviceScale() * deg * (deg - 1) / 8

	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	var tmp [4]vec.Vec2
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// de Casteljau
		w := tmp[:copy(tmp[:], ctrl)]
		for len(w) > 1 {
			for j := range len(w) - 1 {
				w[j] = w[j].Mul(1 - t).Add(w[j+1].Mul(t))
			}
			w = w[:len(w)-1]
		}
		dst = append(dst, w[0])
	}
	return dst
}
