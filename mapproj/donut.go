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

package mapproj

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// horizonGap is the angular distance, in degrees, by which the map
// boundary of an azimuthal equidistant projection is drawn inside the
// antipode.
const horizonGap = 1e-4

// Donut describes the antipode of an azimuthal equidistant map.  The
// antipode of the projection centre is not a single map point but the
// whole outer boundary of the map.  A closed contour which encloses the
// antipode therefore bounds a ring shaped region: the area between the
// contour and the map boundary.
type Donut struct {
	Antipode vec.Vec2   // longitude and latitude in degrees
	Horizon  []vec.Vec2 // outer map boundary in map coordinates, closed
}

// Donut returns the antipode description for p, using n points for the
// map boundary.  The second return value is false unless p maps
// geographic coordinates to an azimuthal equidistant projection.
func (p *Projector) Donut(n int) (*Donut, bool) {
	if p.src.Name != "longlat" || p.dst.Name != "aeqd" || n < 3 {
		return nil, false
	}
	centre := vec.Vec2{X: param(p.dstDef, "lon_0"), Y: param(p.dstDef, "lat_0")}

	horizon := make([]vec.Vec2, 0, n+1)
	for k := range n {
		q := destination(centre, 180-horizonGap, 360*float64(k)/float64(n))
		m, err := p.Point(q)
		if err != nil {
			return nil, false
		}
		horizon = append(horizon, m)
	}
	horizon = append(horizon, horizon[0])
	return &Donut{Antipode: Antipode(centre), Horizon: horizon}, true
}

// Antipode returns the point opposite c on the globe.
func Antipode(c vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: wrap180(c.X + 180), Y: -c.Y}
}

// Encloses reports whether the closed geographic ring encloses the
// antipode.
//
// The ring is read as a polygon in longitude/latitude, with longitudes
// unwrapped along the ring.  A ring around a pole is closed through the
// nearer pole.
func (d *Donut) Encloses(ring []vec.Vec2) bool {
	n := len(ring)
	if n < 4 {
		return false
	}
	a := d.Antipode
	a.Y = max(min(a.Y, 90-horizonGap), -90+horizonGap)

	poly := make([]vec.Vec2, n, n+3)
	x := a.X + wrap180(ring[0].X-a.X)
	poly[0] = vec.Vec2{X: x, Y: ring[0].Y}
	lat := ring[0].Y
	for k := 1; k < n; k++ {
		x += wrap180(ring[k].X - ring[k-1].X)
		poly[k] = vec.Vec2{X: x, Y: ring[k].Y}
		lat += ring[k].Y
	}
	if math.Abs(poly[n-1].X-poly[0].X) > 180 {
		pole := 90.0
		if lat < 0 {
			pole = -90
		}
		poly = append(poly,
			vec.Vec2{X: poly[n-1].X, Y: pole},
			vec.Vec2{X: poly[0].X, Y: pole},
			poly[0])
		// the band covers all longitudes
		mid := vec.Vec2{X: (poly[0].X + poly[n-1].X) / 2, Y: a.Y}
		return winding(poly, mid) != 0
	}

	for _, shift := range []float64{-360, 0, 360} {
		if winding(poly, vec.Vec2{X: a.X + shift, Y: a.Y}) != 0 {
			return true
		}
	}
	return false
}

// winding returns the winding number of the closed polygon around p.
func winding(poly []vec.Vec2, p vec.Vec2) int {
	w := 0
	for k := range len(poly) - 1 {
		a, b := poly[k], poly[k+1]
		cross := (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
		if a.Y <= p.Y {
			if b.Y > p.Y && cross > 0 {
				w++
			}
		} else if b.Y <= p.Y && cross < 0 {
			w--
		}
	}
	return w
}

// destination returns the point reached from c by travelling dist
// degrees of arc along the initial bearing (degrees from north).
func destination(c vec.Vec2, dist, bearing float64) vec.Vec2 {
	const rad = math.Pi / 180
	phi, lambda := c.Y*rad, c.X*rad
	delta, theta := dist*rad, bearing*rad

	sinPhi := math.Sin(phi)*math.Cos(delta) + math.Cos(phi)*math.Sin(delta)*math.Cos(theta)
	phi2 := math.Asin(max(min(sinPhi, 1), -1))
	lambda2 := lambda + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi),
		math.Cos(delta)-math.Sin(phi)*sinPhi)
	return vec.Vec2{X: wrap180(lambda2 / rad), Y: phi2 / rad}
}

// wrap180 brings a longitude or longitude difference into [-180, 180).
func wrap180(v float64) float64 {
	return v - 360*math.Floor((v+180)/360)
}

// param returns the numeric value of a proj4 parameter such as lon_0,
// or 0 if it is not set.
func param(def, name string) float64 {
	for _, f := range strings.Fields(def) {
		k, v, ok := strings.Cut(strings.TrimPrefix(f, "+"), "=")
		if !ok || k != name {
			continue
		}
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			return x
		}
	}
	return 0
}
