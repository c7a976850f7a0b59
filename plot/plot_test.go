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
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/GenericMappingTools/gmt-sub004/label"
	"github.com/GenericMappingTools/gmt-sub004/mapproj"
)

// recorder is a Sink which keeps everything it is given.
type recorder struct {
	lines  []*Line
	closed bool
}

func (r *recorder) Add(l *Line) error {
	r.lines = append(r.lines, l)
	return nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func xs(pts []vec.Vec2) []float64 {
	res := make([]float64, len(pts))
	for k, p := range pts {
		res[k] = p.X
	}
	return res
}

func TestHoldSplitsAtJumps(t *testing.T) {
	cases := []struct {
		name   string
		pts    []float64
		closed bool
		want   [][]float64
	}{
		{"no_jump", []float64{10, 20, 30}, false, [][]float64{{10, 20, 30}}},
		{"open", []float64{170, 178, -178, -170}, false, [][]float64{{170, 178}, {-178, -170}}},
		{"single_point_dropped", []float64{170, -178, 175}, false, nil},
		{
			name:   "closed_rejoined",
			pts:    []float64{-175, -179, 179, 175, 179, -179, -175},
			closed: true,
			want:   [][]float64{{179, 175, 179}, {-179, -175, -179}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pts := make([]vec.Vec2, len(tc.pts))
			for k, x := range tc.pts {
				pts[k] = vec.Vec2{X: x, Y: 0}
			}
			rec := &recorder{}
			h := &Hold{Sink: rec, Jumps: mapproj.Jumper{Period: 360}}
			require.NoError(t, h.Put(1, pts, tc.closed))

			var got [][]float64
			for _, l := range rec.lines {
				got = append(got, xs(l.Points))
				if len(rec.lines) > 1 && l.Closed {
					t.Error("piece of a split line is marked closed")
				}
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("pieces mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHoldDonut(t *testing.T) {
	horizon := []vec.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	rec := &recorder{}
	h := &Hold{
		Sink:  rec,
		Donut: &mapproj.Donut{Antipode: mapproj.Antipode(vec.Vec2{}), Horizon: horizon},
	}
	aroundAntipode := []vec.Vec2{{X: 170, Y: -10}, {X: -170, Y: -10}, {X: -170, Y: 10}, {X: 170, Y: 10}, {X: 170, Y: -10}}
	aroundCentre := []vec.Vec2{{X: -10, Y: -10}, {X: 10, Y: -10}, {X: 10, Y: 10}, {X: -10, Y: 10}, {X: -10, Y: -10}}
	require.NoError(t, h.Put(3, aroundAntipode, true))
	require.NoError(t, h.Put(3, aroundCentre, true))
	require.NoError(t, h.Put(3, aroundAntipode[:4], false))

	require.Len(t, rec.lines, 3)
	if l := rec.lines[0]; !l.Donut || !slices.Equal(l.Outer, horizon) {
		t.Errorf("ring around the antipode: donut=%t, outer=%v", l.Donut, l.Outer)
	}
	for _, l := range rec.lines[1:] {
		if l.Donut || l.Outer != nil {
			t.Error("line not around the antipode marked as donut")
		}
	}

	var buf bytes.Buffer
	text := NewText(&buf)
	require.NoError(t, text.Add(rec.lines[0]))
	require.NoError(t, text.Close())
	if got := buf.String(); !strings.Contains(got, "> C = 3 closed\n") || !strings.Contains(got, "> C = 3 outer\n-1\t-1\n") {
		t.Errorf("donut text output:\n%s", got)
	}
}

func TestHoldProjects(t *testing.T) {
	p, err := mapproj.New(mapproj.Geographic, mapproj.WebMercator)
	require.NoError(t, err)
	rec := &recorder{}
	h := &Hold{Sink: rec, Project: p}
	require.NoError(t, h.Put(1, []vec.Vec2{{X: 0, Y: 0}, {X: 90, Y: 0}}, false))

	require.Len(t, rec.lines, 1)
	const r = 6378137.0
	want := []vec.Vec2{{X: 0, Y: 0}, {X: r * math.Pi / 2, Y: 0}}
	if diff := cmp.Diff(want, rec.lines[0].Points, cmpopts.EquateApprox(1e-9, 1e-3)); diff != "" {
		t.Errorf("projected line mismatch (-want +got):\n%s", diff)
	}
}

func TestHoldAnnotation(t *testing.T) {
	rec := &recorder{}
	h := &Hold{
		Sink:   rec,
		Annot:  10,
		Labels: label.DefaultOptions(4),
	}
	line := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}
	require.NoError(t, h.Put(5, line, false))
	require.NoError(t, h.Put(20, line, false))
	require.NoError(t, h.Close())

	require.Len(t, rec.lines, 2)
	if rec.lines[0].Annotated || len(rec.lines[0].Labels) != 0 {
		t.Error("level 5 should be plain")
	}
	if !rec.lines[1].Annotated || len(rec.lines[1].Labels) != 2 {
		t.Errorf("level 20: annotated=%t, %d labels; want true, 2",
			rec.lines[1].Annotated, len(rec.lines[1].Labels))
	}
	if !rec.closed {
		t.Error("sink was not closed")
	}
}

func TestLinePath(t *testing.T) {
	l := &Line{
		Points: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}},
		Closed: true,
	}
	p := l.Path()
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if diff := cmp.Diff(want, p.Cmds); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	b := l.Bounds()
	if b != (rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}) {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	sink := NewText(&buf)
	require.NoError(t, sink.Add(&Line{
		Value:  -0.5,
		Points: []vec.Vec2{{X: 1, Y: 2.5}, {X: 3, Y: 4}},
	}))
	require.NoError(t, sink.Add(&Line{
		Value:  2,
		Points: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		Closed: true,
	}))
	require.NoError(t, sink.Close())

	want := strings.Join([]string{
		"> C = -0.5",
		"1\t2.5",
		"3\t4",
		"> C = 2 closed",
		"0\t0",
		"1\t0",
		"0\t1",
		"0\t0",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPNG(t *testing.T) {
	region := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5}
	opts := DefaultPNGOptions(region)
	opts.Width, opts.Height, opts.Margin = 100, 50, 0

	var buf bytes.Buffer
	sink, err := NewPNG(&buf, opts)
	require.NoError(t, err)

	// a horizontal line through the middle of the image
	require.NoError(t, sink.Add(&Line{
		Value:     1,
		Points:    []vec.Vec2{{X: 1, Y: 2.5}, {X: 9, Y: 2.5}},
		Annotated: true,
		Labels:    []label.Anchor{{Point: vec.Vec2{X: 5, Y: 2.5}}},
	}))

	img := sink.Image()
	isWhite := func(x, y int) bool {
		return img.RGBAAt(x, y) == color.RGBA{255, 255, 255, 255}
	}
	if isWhite(30, 25) || isWhite(30, 24) {
		t.Error("line not drawn")
	}
	if !isWhite(30, 10) || !isWhite(5, 25) {
		t.Error("pixels away from the line were painted")
	}
	if c := img.RGBAAt(50, 25); c.R <= c.G {
		t.Errorf("label marker not drawn, pixel is %v", c)
	}

	require.NoError(t, sink.Close())
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	if decoded.Bounds().Dx() != 100 || decoded.Bounds().Dy() != 50 {
		t.Errorf("decoded size %v", decoded.Bounds())
	}
}

func TestPDF(t *testing.T) {
	region := rect.Rect{LLx: -180, LLy: -90, URx: 180, URy: 90}
	fileName := filepath.Join(t.TempDir(), "map.pdf")
	opts := DefaultPDFOptions(region)
	opts.HumanReadable = true
	sink, err := NewPDF(fileName, opts)
	require.NoError(t, err)

	require.NoError(t, sink.Add(&Line{
		Value:  -10,
		Points: []vec.Vec2{{X: -100, Y: 0}, {X: 0, Y: 40}, {X: 100, Y: 0}},
	}))
	require.NoError(t, sink.Add(&Line{
		Value:     20,
		Points:    []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}},
		Closed:    true,
		Annotated: true,
		Labels:    []label.Anchor{{Point: vec.Vec2{X: 5, Y: 0}, Text: "20"}},
	}))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF file: %q", data[:min(len(data), 16)])
	}
	// the label "20" is typeset in Helvetica
	for _, want := range []string{"Helvetica", "BT", "ET"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("label text missing: no %q in the PDF", want)
		}
	}
	if !bytes.Contains(data, []byte("Tj")) && !bytes.Contains(data, []byte("TJ")) {
		t.Error("label text missing: no text showing operator in the PDF")
	}
}

// brokenFile fails every write but records whether it was closed.
type brokenFile struct {
	closed bool
}

func (f *brokenFile) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func (f *brokenFile) Close() error {
	f.closed = true
	return nil
}

func TestCloseAfterWriteError(t *testing.T) {
	region := rect.Rect{URx: 10, URy: 5}

	f := &brokenFile{}
	sink, err := NewPNG(f, DefaultPNGOptions(region))
	require.NoError(t, err)
	if err := sink.Close(); err == nil {
		t.Error("PNG: Close reported no error")
	}
	if !f.closed {
		t.Error("PNG: writer not closed after encoding failed")
	}

	f = &brokenFile{}
	text := NewText(f)
	require.NoError(t, text.Add(&Line{Value: 1, Points: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}}))
	if err := text.Close(); err == nil {
		t.Error("text: Close reported no error")
	}
	if !f.closed {
		t.Error("text: writer not closed after flushing failed")
	}
}

func TestEmptyRegion(t *testing.T) {
	if _, err := NewPNG(&bytes.Buffer{}, DefaultPNGOptions(rect.Rect{})); !errors.Is(err, ErrRegion) {
		t.Errorf("PNG: got %v, want ErrRegion", err)
	}
	fileName := filepath.Join(t.TempDir(), "empty.pdf")
	if _, err := NewPDF(fileName, DefaultPDFOptions(rect.Rect{})); !errors.Is(err, ErrRegion) {
		t.Errorf("PDF: got %v, want ErrRegion", err)
	}
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi(a, b)
	require.NoError(t, m.Add(&Line{Value: 3}))
	require.NoError(t, m.Close())
	if len(a.lines) != 1 || len(b.lines) != 1 || !a.closed || !b.closed {
		t.Error("lines or Close not forwarded to every sink")
	}
}
