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

// Package plot hands finished contours to output formats.
//
// A Hold sits between the contour tracer and a Sink.  It cuts lines where
// they jump across the periodic boundary of the map, decides which lines
// are annotated and places their labels.  Sinks then write the lines as
// PDF, PNG or GMT multi-segment text.
package plot

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/GenericMappingTools/gmt-sub004/label"
)

// Line is one polyline ready for output.
type Line struct {
	Value     float64
	Points    []vec.Vec2
	Closed    bool
	Annotated bool
	Labels    []label.Anchor

	// Donut marks a closed line around the antipode of an azimuthal map.
	// The region it bounds lies between Outer, the map boundary, and the
	// line itself.
	Donut bool
	Outer []vec.Vec2
}

// Path returns the line as a path.  A closed line ends with a ClosePath
// instead of repeating its first point.
func (l *Line) Path() *path.Data {
	p := &path.Data{}
	pts := l.Points
	if len(pts) == 0 {
		return p
	}
	if l.Closed && len(pts) > 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	p = p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	if l.Closed {
		p = p.Close()
	}
	return p
}

// Bounds returns the smallest rectangle containing the line.
func (l *Line) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range l.Points {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// ErrRegion indicates an empty or missing map region.
var ErrRegion = errors.New("plot: map region is empty")

// Sink receives finished lines.
type Sink interface {
	Add(l *Line) error
	Close() error
}

// fit returns the scale and offsets which map region into a w*h box with
// the given margin, keeping the aspect ratio and centring the result.
func fit(region rect.Rect, w, h, margin float64) (s, ox, oy float64) {
	dx, dy := region.URx-region.LLx, region.URy-region.LLy
	s = min((w-2*margin)/dx, (h-2*margin)/dy)
	ox = (w-s*dx)/2 - s*region.LLx
	oy = (h-s*dy)/2 - s*region.LLy
	return s, ox, oy
}

func validRegion(r rect.Rect) bool {
	return r.URx > r.LLx && r.URy > r.LLy &&
		!math.IsInf(r.URx-r.LLx, 0) && !math.IsInf(r.URy-r.LLy, 0)
}
