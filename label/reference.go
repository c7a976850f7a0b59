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

package label

import (
	"fmt"
	"math"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/peterstace/simplefeatures/rtree"
	"seehuhn.de/go/geom/vec"
)

// Reference is a set of line segments that contours are labelled at.
type Reference struct {
	segs  [][2]vec.Vec2
	index *rtree.RTree
}

// ParseReference reads reference lines from WKT.  LineString,
// MultiLineString and Polygon (using its rings) geometries are accepted.
func ParseReference(wkt string) (*Reference, error) {
	g, err := geom.UnmarshalWKT(wkt)
	if err != nil {
		return nil, fmt.Errorf("label: parsing reference lines: %w", err)
	}

	var seqs []geom.Sequence
	switch g.Type() {
	case geom.TypeLineString:
		seqs = append(seqs, g.AsLineString().Coordinates())
	case geom.TypeMultiLineString:
		mls := g.AsMultiLineString()
		for i := 0; i < mls.NumLineStrings(); i++ {
			seqs = append(seqs, mls.LineStringN(i).Coordinates())
		}
	case geom.TypePolygon:
		poly := g.AsPolygon()
		seqs = append(seqs, poly.ExteriorRing().Coordinates())
		for i := 0; i < poly.NumInteriorRings(); i++ {
			seqs = append(seqs, poly.InteriorRingN(i).Coordinates())
		}
	default:
		return nil, fmt.Errorf("%w: got %s", ErrReference, g.Type())
	}

	var lines [][]vec.Vec2
	for _, seq := range seqs {
		line := make([]vec.Vec2, seq.Length())
		for j := range line {
			xy := seq.GetXY(j)
			line[j] = vec.Vec2{X: xy.X, Y: xy.Y}
		}
		lines = append(lines, line)
	}
	return NewReference(lines...)
}

// NewReference builds a Reference from polylines.
func NewReference(lines ...[]vec.Vec2) (*Reference, error) {
	r := &Reference{}
	var items []rtree.BulkItem
	for _, line := range lines {
		for k := 1; k < len(line); k++ {
			a, b := line[k-1], line[k]
			if a == b {
				continue
			}
			items = append(items, rtree.BulkItem{
				Box:      segmentBox(a, b),
				RecordID: len(r.segs),
			})
			r.segs = append(r.segs, [2]vec.Vec2{a, b})
		}
	}
	if len(r.segs) == 0 {
		return nil, ErrReference
	}
	r.index = rtree.BulkLoad(items)
	return r, nil
}

// Len returns the number of reference segments.
func (r *Reference) Len() int {
	return len(r.segs)
}

// crossings returns one anchor for every place where the polyline pts
// crosses a reference segment.  d holds the cumulative distances of pts.
func (r *Reference) crossings(pts []vec.Vec2, d []float64) []Anchor {
	var res []Anchor
	for k := 1; k < len(pts); k++ {
		a, b := pts[k-1], pts[k]
		if a == b {
			continue
		}
		_ = r.index.RangeSearch(segmentBox(a, b), func(id int) error {
			seg := r.segs[id]
			t, ok := intersect(a, b, seg[0], seg[1])
			if !ok {
				return nil
			}
			res = append(res, Anchor{
				Point:    a.Add(b.Sub(a).Mul(t)),
				Angle:    upright(a, b),
				Distance: d[k-1] + t*(d[k]-d[k-1]),
			})
			return nil
		})
	}
	return dedupe(res, 1e-9*d[len(d)-1])
}

func segmentBox(a, b vec.Vec2) rtree.Box {
	return rtree.Box{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

// intersect returns the parameter t in [0, 1] of the point a+t(b-a) where
// segment ab meets segment pq.  Parallel segments never intersect.
func intersect(a, b, p, q vec.Vec2) (float64, bool) {
	r := b.Sub(a)
	s := q.Sub(p)
	den := r.X*s.Y - r.Y*s.X
	if den == 0 {
		return 0, false
	}
	ap := p.Sub(a)
	t := (ap.X*s.Y - ap.Y*s.X) / den
	u := (ap.X*r.Y - ap.Y*r.X) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}
