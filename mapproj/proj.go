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

// Package mapproj converts finished contours to map coordinates and finds
// the places where a line jumps across the periodic boundary of a map.
package mapproj

import (
	"fmt"
	"math"

	"github.com/ctessum/geom/proj"
	"seehuhn.de/go/geom/vec"
)

// Geographic is the proj4 definition of longitude/latitude in degrees.
const Geographic = "+proj=longlat +datum=WGS84 +no_defs"

// WebMercator is the proj4 definition of the spherical Mercator projection
// used for web maps.
const WebMercator = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs"

// Projector transforms points between two spatial references.
type Projector struct {
	src, dst *proj.SR
	dstDef   string
	fwd      proj.Transformer
}

// New returns a Projector from the src to the dst spatial reference, both
// given as proj4 strings.
func New(src, dst string) (*Projector, error) {
	srcSR, err := proj.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("mapproj: parsing source %q: %w", src, err)
	}
	dstSR, err := proj.Parse(dst)
	if err != nil {
		return nil, fmt.Errorf("mapproj: parsing destination %q: %w", dst, err)
	}
	fwd, err := srcSR.NewTransform(dstSR)
	if err != nil {
		return nil, fmt.Errorf("mapproj: creating transform: %w", err)
	}
	return &Projector{src: srcSR, dst: dstSR, dstDef: dst, fwd: fwd}, nil
}

// Point transforms a single point.
func (p *Projector) Point(v vec.Vec2) (vec.Vec2, error) {
	x, y, err := p.fwd(v.X, v.Y)
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x, Y: y}, nil
}

// Line transforms a polyline into a new slice.
func (p *Projector) Line(pts []vec.Vec2) ([]vec.Vec2, error) {
	out := make([]vec.Vec2, len(pts))
	for k, v := range pts {
		q, err := p.Point(v)
		if err != nil {
			return nil, fmt.Errorf("mapproj: point %d (%g, %g): %w", k, v.X, v.Y, err)
		}
		out[k] = q
	}
	return out, nil
}

// Period returns the width of the whole globe in destination x
// coordinates, or 0 if the source is not geographic.
//
// The width is measured along the equator, which is exact for cylindrical
// projections.
func (p *Projector) Period() float64 {
	if p.src.Name != "longlat" {
		return 0
	}
	const lon = 179.5
	west, err1 := p.Point(vec.Vec2{X: -lon})
	east, err2 := p.Point(vec.Vec2{X: lon})
	if err1 != nil || err2 != nil {
		return 0
	}
	w := math.Abs(east.X-west.X) * 180 / lon
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}
