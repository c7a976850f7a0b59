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

package plot

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"github.com/GenericMappingTools/gmt-sub004/contour"
	"github.com/GenericMappingTools/gmt-sub004/label"
	"github.com/GenericMappingTools/gmt-sub004/mapproj"
)

// Hold prepares traced lines for a Sink.
type Hold struct {
	Sink Sink

	// Project converts lines to map coordinates.  If nil, lines are
	// passed on unchanged.
	Project *mapproj.Projector

	// Donut, if set, marks closed lines which enclose the antipode of
	// an azimuthal map.  It is applied before projection.
	Donut *mapproj.Donut

	// Jumps detects segments which wrap around a periodic map.
	Jumps mapproj.Jumper

	// Annot is the annotation interval.  Levels which are multiples of
	// Annot are annotated.  If Annot is zero, every level is annotated.
	Annot float64

	// Labels controls label placement on annotated lines.  Nil disables
	// labels.
	Labels *label.Options

	lines, pieces int
}

// Contour passes a traced contour to the sink.
func (h *Hold) Contour(c *contour.Contour) error {
	return h.Put(c.Value, c.Points, c.Closed)
}

// Put projects pts, splits the result at map jumps and forwards every
// piece with at least two points to the sink.
func (h *Hold) Put(value float64, pts []vec.Vec2, closed bool) error {
	donut := closed && h.Donut != nil && h.Donut.Encloses(pts)
	if h.Project != nil {
		var err error
		if pts, err = h.Project.Line(pts); err != nil {
			return err
		}
	}

	pieces := h.Jumps.Split(pts)
	if len(pieces) > 1 && closed {
		// a closed line which jumps is no longer closed, but its first and
		// last piece still belong together
		first, last := pieces[0], pieces[len(pieces)-1]
		wraps := first[0] == pts[0] && last[len(last)-1] == pts[len(pts)-1]
		if wraps && !h.Jumps.IsJump(last[len(last)-1], first[0]) {
			if last[len(last)-1] == first[0] {
				first = first[1:]
			}
			joined := append(slices.Clip(last), first...)
			pieces = append(pieces[1:len(pieces)-1], joined)
		}
		closed = false
		donut = false
	}

	annotated := h.Annot == 0 || contour.Annotated(value, h.Annot)
	h.lines++
	for _, piece := range pieces {
		l := &Line{
			Value:     value,
			Points:    piece,
			Closed:    closed,
			Annotated: annotated,
		}
		if donut {
			l.Donut = true
			l.Outer = h.Donut.Horizon
		}
		if annotated && h.Labels != nil {
			l.Labels = label.Place(piece, value, h.Labels)
		}
		contour.Logger().Debug("hold line",
			"value", value, "points", len(piece), "closed", closed, "donut", donut, "labels", len(l.Labels))
		if err := h.Sink.Add(l); err != nil {
			return err
		}
		h.pieces++
	}
	return nil
}

// Close closes the sink.
func (h *Hold) Close() error {
	contour.Logger().Info("output finished", "lines", h.lines, "pieces", h.pieces)
	return h.Sink.Close()
}
