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

// Package label chooses where along a contour the annotation text goes.
//
// Anchors can be spaced at a fixed distance, spread evenly by count, or put
// where the contour crosses a set of reference lines.
package label

import (
	"errors"
	"math"
	"slices"
	"sort"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// ErrReference indicates reference geometry without any line work.
var ErrReference = errors.New("label: reference geometry contains no lines")

// Mode selects the anchor placement strategy.
type Mode int

const (
	// None places no labels.
	None Mode = iota
	// Distance places the first anchor half a spacing from the start of
	// the line and then one anchor every Spacing units.
	Distance
	// Count places Count anchors, each in the middle of an equal share of
	// the line.
	Count
	// Crossing places an anchor wherever the line crosses a reference line.
	Crossing
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Distance:
		return "distance"
	case Count:
		return "count"
	case Crossing:
		return "crossing"
	default:
		return "unknown"
	}
}

// Options controls label placement.
type Options struct {
	Mode      Mode
	Spacing   float64    // Distance mode
	Count     int        // Count mode
	Reference *Reference // Crossing mode

	// MinLength is the shortest line that receives labels.
	MinLength float64

	// Precision is the number of digits after the decimal point in the
	// label text.  A negative value uses the fewest digits that represent
	// the contour value exactly.
	Precision int
}

// DefaultOptions returns options for one label every spacing units.
func DefaultOptions(spacing float64) *Options {
	return &Options{
		Mode:      Distance,
		Spacing:   spacing,
		Precision: -1,
	}
}

// Anchor is a label position on a line.
type Anchor struct {
	Point    vec.Vec2
	Angle    float64 // text direction in degrees, within [-90, 90]
	Distance float64 // along the line from its first point
	Text     string
}

// Text formats a contour value for display.
func Text(value float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// Place returns the label anchors for the polyline pts with contour value
// value, sorted by distance along the line.
func Place(pts []vec.Vec2, value float64, opts *Options) []Anchor {
	if opts == nil || opts.Mode == None || len(pts) < 2 {
		return nil
	}
	d := cumulative(pts)
	length := d[len(d)-1]
	if length <= 0 || length < opts.MinLength {
		return nil
	}

	var res []Anchor
	switch opts.Mode {
	case Distance:
		if !(opts.Spacing > 0) {
			return nil
		}
		for s := opts.Spacing / 2; s < length; s += opts.Spacing {
			res = append(res, at(pts, d, s))
		}
	case Count:
		n := opts.Count
		for k := range n {
			s := (float64(k) + 0.5) * length / float64(n)
			res = append(res, at(pts, d, s))
		}
	case Crossing:
		if opts.Reference == nil {
			return nil
		}
		res = opts.Reference.crossings(pts, d)
	}

	text := Text(value, opts.Precision)
	for k := range res {
		res[k].Text = text
	}
	return res
}

// cumulative returns the distance from pts[0] to every vertex.
func cumulative(pts []vec.Vec2) []float64 {
	d := make([]float64, len(pts))
	for k := 1; k < len(pts); k++ {
		d[k] = d[k-1] + pts[k].Sub(pts[k-1]).Length()
	}
	return d
}

// at returns the anchor at distance s along the line.
func at(pts []vec.Vec2, d []float64, s float64) Anchor {
	k := sort.SearchFloat64s(d, s)
	k = min(max(k, 1), len(d)-1)
	// skip zero length segments
	for k < len(d)-1 && d[k] == d[k-1] {
		k++
	}
	a, b := pts[k-1], pts[k]
	var t float64
	if seg := d[k] - d[k-1]; seg > 0 {
		t = (s - d[k-1]) / seg
	}
	return Anchor{
		Point:    a.Add(b.Sub(a).Mul(t)),
		Angle:    upright(a, b),
		Distance: s,
	}
}

// upright returns the direction from a to b in degrees, turned by half a
// revolution if needed so that text along it does not read upside down.
func upright(a, b vec.Vec2) float64 {
	angle := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
	switch {
	case angle > 90:
		angle -= 180
	case angle < -90:
		angle += 180
	}
	return angle
}

// dedupe removes anchors which follow the previous one at (almost) the
// same distance.  This happens where a line crosses a reference line
// exactly at a vertex.
func dedupe(anchors []Anchor, eps float64) []Anchor {
	slices.SortFunc(anchors, func(a, b Anchor) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})
	return slices.CompactFunc(anchors, func(a, b Anchor) bool {
		return b.Distance-a.Distance <= eps
	})
}
