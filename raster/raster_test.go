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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var canvas = rect.Rect{LLx: 0, LLy: 0, URx: 32, URy: 32}

// coverage renders with fn into a width*height buffer.
func coverage(r *Rasterizer, fn func(emit Emit)) []float32 {
	w, h := int(r.Clip.URx), int(r.Clip.URy)
	buf := make([]float32, w*h)
	fn(func(y, xMin int, cov []float32) {
		copy(buf[y*w+xMin:], cov)
	})
	return buf
}

func total(buf []float32) float64 {
	var s float64
	for _, c := range buf {
		s += float64(c)
	}
	return s
}

func box(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// circle appends a circle made of four cubic arcs.
func circle(p *path.Data, cx, cy, radius float64, clockwise bool) *path.Data {
	const k = 0.5522847498
	s := 1.0
	if clockwise {
		s = -1
	}
	pt := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: cx + x*radius, Y: cy + s*y*radius}
	}
	return p.MoveTo(pt(1, 0)).
		CubeTo(pt(1, k), pt(k, 1), pt(0, 1)).
		CubeTo(pt(-k, 1), pt(-1, k), pt(-1, 0)).
		CubeTo(pt(-1, -k), pt(-k, -1), pt(0, -1)).
		CubeTo(pt(k, -1), pt(1, -k), pt(1, 0)).
		Close()
}

func TestFillAlignedBox(t *testing.T) {
	r := NewRasterizer(canvas)
	buf := coverage(r, func(emit Emit) { r.FillNonZero(box(2, 3, 6, 5), emit) })

	for y := range 32 {
		for x := range 32 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 3 && y < 5 {
				want = 1
			}
			if got := buf[y*32+x]; got != want {
				t.Fatalf("pixel (%d, %d) = %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestFillPartialPixels(t *testing.T) {
	r := NewRasterizer(canvas)
	buf := coverage(r, func(emit Emit) { r.FillNonZero(box(0.5, 0.5, 1.5, 1.5), emit) })
	for _, idx := range []int{0, 1, 32, 33} {
		if math.Abs(float64(buf[idx])-0.25) > 1e-6 {
			t.Errorf("pixel %d = %g, want 0.25", idx, buf[idx])
		}
	}
	if s := total(buf); math.Abs(s-1) > 1e-6 {
		t.Errorf("total coverage %g, want 1", s)
	}
}

func TestFillArea(t *testing.T) {
	cases := []struct {
		name    string
		p       *path.Data
		evenOdd bool
		want    float64
	}{
		{
			name: "triangle",
			p: (&path.Data{}).
				MoveTo(vec.Vec2{X: 1.3, Y: 2.1}).
				LineTo(vec.Vec2{X: 27.7, Y: 5.9}).
				LineTo(vec.Vec2{X: 9.2, Y: 30.4}).
				Close(),
			want: 0.5 * math.Abs((27.7-1.3)*(30.4-2.1)-(9.2-1.3)*(5.9-2.1)),
		},
		{
			name:    "ring_evenodd",
			p:       circle(circle(&path.Data{}, 16, 16, 12, false), 16, 16, 6, false),
			evenOdd: true,
			want:    math.Pi * (144 - 36),
		},
		{
			name: "ring_nonzero",
			p:    circle(circle(&path.Data{}, 16, 16, 12, false), 16, 16, 6, true),
			want: math.Pi * (144 - 36),
		},
		{
			name: "disc_nonzero",
			p:    circle(circle(&path.Data{}, 16, 16, 12, false), 16, 16, 6, false),
			want: math.Pi * 144,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasterizer(canvas)
			r.Flatness = 0.01
			buf := coverage(r, func(emit Emit) {
				if tc.evenOdd {
					r.FillEvenOdd(tc.p, emit)
				} else {
					r.FillNonZero(tc.p, emit)
				}
			})
			if s := total(buf); math.Abs(s-tc.want) > 0.005*tc.want {
				t.Errorf("total coverage %g, want %g", s, tc.want)
			}
		})
	}
}

func TestClipAndCTM(t *testing.T) {
	r := NewRasterizer(canvas)
	called := false
	r.FillNonZero(box(40, 40, 50, 50), func(int, int, []float32) { called = true })
	if called {
		t.Error("shape outside the clip rectangle produced output")
	}

	// y flipped, scaled by 2: the unit box (1,1)-(3,2) covers 4x2 pixels
	r.CTM = matrix.Matrix{2, 0, 0, -2, 0, 32}
	buf := coverage(r, func(emit Emit) { r.FillNonZero(box(1, 1, 3, 2), emit) })
	if s := total(buf); math.Abs(s-8) > 1e-6 {
		t.Errorf("total coverage %g, want 8", s)
	}
	if buf[28*32+2] != 1 || buf[29*32+5] != 1 {
		t.Error("transformed box not at the expected pixels")
	}
}

func TestStrokeArea(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 8}).
		LineTo(vec.Vec2{X: 14, Y: 8})
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 8}).
		LineTo(vec.Vec2{X: 14, Y: 8}).
		LineTo(vec.Vec2{X: 14, Y: 18})

	cases := []struct {
		name  string
		p     *path.Data
		width float64
		cap   graphics.LineCapStyle
		join  graphics.LineJoinStyle
		dash  []float64
		want  float64
	}{
		{"butt", line, 2, graphics.LineCapButt, graphics.LineJoinMiter, nil, 20},
		{"square", line, 2, graphics.LineCapSquare, graphics.LineJoinMiter, nil, 24},
		{"round", line, 2, graphics.LineCapRound, graphics.LineJoinMiter, nil, 20 + math.Pi},
		{"dashed", line, 1, graphics.LineCapButt, graphics.LineJoinMiter, []float64{2, 2}, 6},
		{"miter", corner, 2, graphics.LineCapButt, graphics.LineJoinMiter, nil, 40},
		{"bevel", corner, 2, graphics.LineCapButt, graphics.LineJoinBevel, nil, 39.5},
		{"round_join", corner, 2, graphics.LineCapButt, graphics.LineJoinRound, nil, 39 + math.Pi/4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasterizer(canvas)
			r.Flatness = 0.001
			r.Width = tc.width
			r.Cap = tc.cap
			r.Join = tc.join
			r.Dash = tc.dash
			buf := coverage(r, func(emit Emit) { r.Stroke(tc.p, emit) })
			if s := total(buf); math.Abs(s-tc.want) > 0.01 {
				t.Errorf("total coverage %g, want %g", s, tc.want)
			}
		})
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	// a sharp turn, about 11 degrees
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		LineTo(vec.Vec2{X: 22, Y: 10}).
		LineTo(vec.Vec2{X: 2, Y: 14})

	area := func(limit float64) float64 {
		r := NewRasterizer(canvas)
		r.Width = 1
		r.MiterLimit = limit
		return total(coverage(r, func(emit Emit) { r.Stroke(p, emit) }))
	}
	if long, short := area(20), area(2); !(long > short+1) {
		t.Errorf("miter limit had no effect: %g vs %g", long, short)
	}
}

func TestDashPhase(t *testing.T) {
	r := NewRasterizer(canvas)
	r.Dash = []float64{2, 2}
	r.DashPhase = 1
	pieces := r.dashes([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}, false)

	want := [][2]float64{{0, 1}, {3, 5}, {7, 9}}
	if len(pieces) != len(want) {
		t.Fatalf("got %d dashes, want %d", len(pieces), len(want))
	}
	for k, piece := range pieces {
		a, b := piece[0].X, piece[len(piece)-1].X
		if math.Abs(a-want[k][0]) > 1e-12 || math.Abs(b-want[k][1]) > 1e-12 {
			t.Errorf("dash %d = [%g, %g], want %v", k, a, b, want[k])
		}
	}
}

func TestReuseKeepsResultsStable(t *testing.T) {
	r := NewRasterizer(canvas)
	p := circle(&path.Data{}, 16, 16, 9, false)
	first := coverage(r, func(emit Emit) { r.FillNonZero(p, emit) })
	r.Reset(canvas)
	r.Width = 3
	_ = coverage(r, func(emit Emit) { r.Stroke(box(1, 1, 30, 30), emit) })
	r.Reset(canvas)
	second := coverage(r, func(emit Emit) { r.FillNonZero(p, emit) })
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pixel %d changed from %g to %g", i, first[i], second[i])
		}
	}
}
