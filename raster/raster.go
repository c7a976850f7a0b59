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

// Package raster turns vector paths into anti-aliased pixel coverage.
//
// Coverage is the fraction of a pixel's area inside the shape, from 0 to 1.
// It is delivered one scanline at a time to an Emit callback, so that the
// caller decides how to composite it.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Emit receives the coverage of the pixels xMin, xMin+1, ... in row y.
// The slice is only valid for the duration of the call.
type Emit func(y, xMin int, coverage []float32)

const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 10.0

	// edges with a smaller vertical extent do not contribute coverage
	minEdgeHeight = 1e-10
)

// Rasterizer converts paths to pixel coverage.  Buffers are kept between
// calls, so one Rasterizer should be reused for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip is the output region in device space.  The coordinates must be
	// integers.
	Clip rect.Rect

	// Flatness is the maximal distance in device pixels between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the line width in user space.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash lists alternating on and off lengths in user space.  Nil means
	// a solid line.
	Dash      []float64
	DashPhase float64

	edges     []edge
	active    []int
	cover     []float32
	area      []float32
	crossings []float64

	lines [][]vec.Vec2 // flattened subpaths
	shut  []bool       // whether each subpath was closed
	polys [][]vec.Vec2 // stroke outline polygons
}

// edge is a non-horizontal line segment in device space, stored top to
// bottom.
type edge struct {
	xTop       float64
	yTop, yBot float64
	slope      float64 // dx/dy
	dir        float32 // +1 if the segment runs downwards, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.xTop + e.slope*(y-e.yTop)
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.  The
// remaining fields are set to the PDF defaults.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters, keeping the internal buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit Emit) {
	r.flatten(p)
	r.edges = r.edges[:0]
	for _, line := range r.lines {
		r.addPolygon(line, true)
	}
	r.scan(false, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit Emit) {
	r.flatten(p)
	r.edges = r.edges[:0]
	for _, line := range r.lines {
		r.addPolygon(line, true)
	}
	r.scan(true, emit)
}

// device applies the CTM to a point.
func (r *Rasterizer) device(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceScale returns the largest factor by which the CTM stretches a
// vector.
func (r *Rasterizer) deviceScale() float64 {
	m := r.CTM
	a := math.Hypot(m[0], m[1])
	b := math.Hypot(m[2], m[3])
	return max(a, b)
}

// addPolygon adds the edges of the polygon pts given in user space.  If
// closed is set, the last vertex is joined back to the first.
func (r *Rasterizer) addPolygon(pts []vec.Vec2, closed bool) {
	if len(pts) < 2 {
		return
	}
	prev := r.device(pts[0])
	first := prev
	for _, p := range pts[1:] {
		q := r.device(p)
		r.addEdge(prev, q)
		prev = q
	}
	if closed {
		r.addEdge(prev, first)
	}
}

func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < minEdgeHeight || math.IsNaN(dy) {
		return
	}
	dir := float32(1)
	if dy < 0 {
		a, b = b, a
		dir = -1
	}
	r.edges = append(r.edges, edge{
		xTop:  a.X,
		yTop:  a.Y,
		yBot:  b.Y,
		slope: (b.X - a.X) / (b.Y - a.Y),
		dir:   dir,
	})
}

// bounds returns the pixel rectangle touched by the edges, clipped.
func (r *Rasterizer) bounds() (x0, x1, y0, y1 int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i := range r.edges {
		e := &r.edges[i]
		xb := e.xAt(e.yBot)
		xMin = min(xMin, e.xTop, xb)
		xMax = max(xMax, e.xTop, xb)
		yMin = min(yMin, e.yTop)
		yMax = max(yMax, e.yBot)
	}
	x0 = max(int(math.Floor(xMin)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(xMax))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(yMin)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(yMax))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, x1, y0, y1, true
}

// scan sweeps the collected edges from top to bottom and emits the
// coverage of every non-empty scanline.
//
// Each edge piece inside a pixel deposits its signed height into cover,
// which applies to all pixels further right, and the part of that height
// lying right of the edge into area, which applies to the pixel itself.
// A running sum over a row then gives the winding-weighted coverage.
func (r *Rasterizer) scan(evenOdd bool, emit Emit) {
	x0, x1, y0, y1, ok := r.bounds()
	if !ok {
		return
	}
	width := x1 - x0
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yTop, b.yTop)
	})
	r.active = r.active[:0]
	next := 0

	for y := y0; y < y1; y++ {
		top, bot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].yTop < bot {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].yBot <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.deposit(&r.edges[i], top, bot, x0, x1)
		}

		r.integrate(evenOdd)
		if row, off := trim(r.cover); row != nil {
			emit(y, x0+off, row)
		}
	}
}

// deposit adds the contribution of edge e within the scanline [top, bot)
// to the row buffers, which start at pixel x0.
func (r *Rasterizer) deposit(e *edge, top, bot float64, x0, x1 int) {
	top = max(top, e.yTop)
	bot = min(bot, e.yBot)
	if bot <= top {
		return
	}

	// split the piece where it crosses pixel columns
	r.crossings = append(r.crossings[:0], top, bot)
	xa, xb := e.xAt(top), e.xAt(bot)
	lo, hi := int(math.Floor(min(xa, xb))), int(math.Floor(max(xa, xb)))
	if lo != hi && e.slope != 0 {
		for x := lo + 1; x <= hi; x++ {
			y := e.yTop + (float64(x)-e.xTop)/e.slope
			if y > top && y < bot {
				r.crossings = append(r.crossings, y)
			}
		}
		slices.Sort(r.crossings)
	}

	for k := 1; k < len(r.crossings); k++ {
		ya, yb := r.crossings[k-1], r.crossings[k]
		if yb <= ya {
			continue
		}
		h := e.dir * float32(yb-ya)
		xm := e.xAt((ya + yb) / 2)
		px := int(math.Floor(xm))
		switch {
		case px < x0:
			r.cover[0] += h
			r.area[0] += h
		case px < x1:
			frac := float32(xm - float64(px))
			r.cover[px-x0] += h
			r.area[px-x0] += h * (1 - frac)
		}
	}
}

// integrate turns the row buffers into coverage, in place in r.cover.
func (r *Rasterizer) integrate(evenOdd bool) {
	var sum float32
	for i, c := range r.cover {
		w := sum + r.area[i]
		sum += c
		if w < 0 {
			w = -w
		}
		if evenOdd {
			w -= 2 * float32(math.Floor(float64(w/2)))
			if w > 1 {
				w = 2 - w
			}
		} else if w > 1 {
			w = 1
		}
		r.cover[i] = w
	}
}

// trim strips zero coverage from both ends of row.
func trim(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}
