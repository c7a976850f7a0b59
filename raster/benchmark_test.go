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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// wiggle is a closed contour-like curve around the centre of a size*size
// canvas.
func wiggle(size int) []vec.Vec2 {
	c := float64(size) / 2
	pts := make([]vec.Vec2, 360)
	for k := range pts {
		phi := 2 * math.Pi * float64(k) / float64(len(pts))
		rad := c * (0.7 + 0.2*math.Sin(5*phi))
		pts[k] = vec.Vec2{X: c + rad*math.Cos(phi), Y: c + rad*math.Sin(phi)}
	}
	return pts
}

func BenchmarkFill(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			pts := wiggle(size)
			p := (&path.Data{}).MoveTo(pts[0])
			for _, q := range pts[1:] {
				p = p.LineTo(q)
			}
			p = p.Close()

			b.ReportAllocs()
			for b.Loop() {
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorFill(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			pts := wiggle(size)

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
				for _, q := range pts[1:] {
					z.LineTo(float32(q.X), float32(q.Y))
				}
				z.ClosePath()
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkStroke(b *testing.B) {
	const size = 400
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	pts := wiggle(size)
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}

	b.ReportAllocs()
	for b.Loop() {
		r.Width = 1.5
		r.Dash = []float64{6, 3}
		r.Stroke(p, func(int, int, []float32) {})
	}
}
