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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke draws the outline of p using the current line width, caps,
// joins and dash pattern.
//
// The stroke is built as a set of polygons (one per segment, join and
// cap), all with the same orientation, and filled with the nonzero rule.
// Overlaps between the pieces therefore do not leave holes.
func (r *Rasterizer) Stroke(p *path.Data, emit Emit) {
	r.flatten(p)
	r.edges = r.edges[:0]
	if !(r.Width > 0) {
		return
	}

	for i, line := range r.lines {
		line = slices.Compact(line)
		closed := r.shut[i]
		if closed && len(line) > 1 && line[0] == line[len(line)-1] {
			line = line[:len(line)-1]
		}
		if !validDash(r.Dash) {
			r.strokeLine(line, closed)
			continue
		}
		for _, piece := range r.dashes(line, closed) {
			r.strokeLine(slices.Compact(piece), false)
		}
	}
	r.scan(false, emit)
}

// strokeLine adds the outline polygons for one polyline without repeated
// points.
func (r *Rasterizer) strokeLine(pts []vec.Vec2, closed bool) {
	d := r.Width / 2
	n := len(pts)
	if n == 1 {
		switch r.Cap {
		case graphics.LineCapRound:
			r.disc(pts[0], d)
		case graphics.LineCapSquare:
			r.square(pts[0], vec.Vec2{X: 1}, d)
		}
		return
	}
	if n == 2 {
		closed = false
	}

	segs := n - 1
	if closed {
		segs = n
	}
	for k := range segs {
		a, b := pts[k], pts[(k+1)%n]
		t := unit(b.Sub(a))
		nv := left(t).Mul(d)
		r.shape(a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
	}

	for k := range n {
		if !closed && (k == 0 || k == n-1) {
			continue
		}
		prev, cur, next := pts[(k+n-1)%n], pts[k], pts[(k+1)%n]
		r.join(cur, unit(cur.Sub(prev)), unit(next.Sub(cur)), d)
	}

	if !closed {
		r.cap(pts[0], unit(pts[0].Sub(pts[1])), d)
		r.cap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), d)
	}
}

// join fills the gap at vertex p between a segment with direction t1 and
// the following one with direction t2.
func (r *Rasterizer) join(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.X*t2.X + t1.Y*t2.Y
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.disc(p, d)
		return
	}

	// the gap opens on the outside of the turn
	side := -1.0
	if cross < 0 {
		side = 1
	}
	n1 := left(t1).Mul(side * d)
	n2 := left(t2).Mul(side * d)

	if r.Join == graphics.LineJoinMiter {
		half := math.Sqrt(max(0, (1+dot)/2)) // cosine of half the turn
		if half > 0 && 1/half <= r.MiterLimit {
			tip := p.Add(unit(n1.Add(n2)).Mul(d / half))
			r.shape(p, p.Add(n1), tip, p.Add(n2))
			return
		}
	}
	r.shape(p, p.Add(n1), p.Add(n2))
}

// cap adds the line cap at end point p, where t points away from the line.
func (r *Rasterizer) cap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.disc(p, d)
	case graphics.LineCapSquare:
		nv := left(t).Mul(d)
		ext := t.Mul(d)
		r.shape(p.Add(nv), p.Add(nv).Add(ext), p.Sub(nv).Add(ext), p.Sub(nv))
	}
}

// square adds a square of half-width d centred at p with one side
// parallel to t.
func (r *Rasterizer) square(p, t vec.Vec2, d float64) {
	u := t.Mul(d)
	v := left(t).Mul(d)
	r.shape(p.Add(u).Add(v), p.Sub(u).Add(v), p.Sub(u).Sub(v), p.Add(u).Sub(v))
}

// disc adds a polygon approximating the circle of radius d around p.
func (r *Rasterizer) disc(p vec.Vec2, d float64) {
	n := 8
	if rd := d * r.deviceScale(); rd > r.Flatness {
		n = int(math.Ceil(math.Pi / math.Acos(1-r.Flatness/rd)))
		n = min(max(n, 8), 256)
	}
	pts := make([]vec.Vec2, n)
	for k := range pts {
		phi := 2 * math.Pi * float64(k) / float64(n)
		pts[k] = vec.Vec2{X: p.X + d*math.Cos(phi), Y: p.Y + d*math.Sin(phi)}
	}
	r.addPolygon(pts, true)
}

// shape adds a convex polygon, turned counter-clockwise if necessary.
func (r *Rasterizer) shape(pts ...vec.Vec2) {
	var a float64
	for k := range pts {
		p, q := pts[k], pts[(k+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	if a < 0 {
		slices.Reverse(pts)
	}
	r.addPolygon(pts, true)
}

// dashes cuts a polyline into the "on" pieces of the dash pattern.
func (r *Rasterizer) dashes(pts []vec.Vec2, closed bool) [][]vec.Vec2 {
	if closed && len(pts) > 2 {
		pts = append(slices.Clip(pts), pts[0])
	}

	var total float64
	for _, l := range r.Dash {
		total += l
	}
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	for phase >= r.Dash[idx] {
		phase -= r.Dash[idx]
		idx = (idx + 1) % len(r.Dash)
	}
	remain := r.Dash[idx] - phase // rest of the current entry
	on := idx%2 == 0

	var res [][]vec.Vec2
	var cur []vec.Vec2
	if on {
		cur = []vec.Vec2{pts[0]}
	}
	for k := 1; k < len(pts); k++ {
		a, b := pts[k-1], pts[k]
		seg := b.Sub(a).Length()
		pos := 0.0
		for seg-pos > remain {
			pos += remain
			q := a.Add(b.Sub(a).Mul(pos / seg))
			if on {
				res = append(res, append(cur, q))
				cur = nil
			} else {
				cur = []vec.Vec2{q}
			}
			on = !on
			idx = (idx + 1) % len(r.Dash)
			remain = r.Dash[idx]
		}
		remain -= seg - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

// validDash reports whether dash describes a usable pattern.
func validDash(dash []float64) bool {
	if len(dash) == 0 {
		return false
	}
	var total float64
	for _, l := range dash {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return false
		}
		total += l
	}
	return total > 0
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{X: 1}
	}
	return v.Mul(1 / l)
}

// left returns v turned by 90 degrees counter-clockwise.
func left(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}
