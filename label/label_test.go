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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

// an L-shaped line of length 10
var corner = []vec.Vec2{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 4}}

func TestPlaceDistance(t *testing.T) {
	got := Place(corner, 25, DefaultOptions(4))
	want := []Anchor{
		{Point: vec.Vec2{X: 2, Y: 0}, Angle: 0, Distance: 2, Text: "25"},
		{Point: vec.Vec2{X: 6, Y: 0}, Angle: 0, Distance: 6, Text: "25"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("anchors mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceCount(t *testing.T) {
	opts := &Options{Mode: Count, Count: 2, Precision: 1}
	got := Place(corner, -5, opts)
	require.Len(t, got, 2)

	want := []Anchor{
		{Point: vec.Vec2{X: 2.5, Y: 0}, Angle: 0, Distance: 2.5, Text: "-5.0"},
		{Point: vec.Vec2{X: 6, Y: 1.5}, Angle: 90, Distance: 7.5, Text: "-5.0"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("anchors mismatch (-want +got):\n%s", diff)
	}
}

func TestMinLength(t *testing.T) {
	opts := DefaultOptions(1)
	opts.MinLength = 10.5
	if got := Place(corner, 1, opts); got != nil {
		t.Errorf("short line got %d anchors", len(got))
	}
	opts.MinLength = 10
	if got := Place(corner, 1, opts); len(got) != 10 {
		t.Errorf("got %d anchors, want 10", len(got))
	}
}

func TestUpright(t *testing.T) {
	cases := []struct {
		dx, dy float64
		want   float64
	}{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 90},
		{1, 1, 45},
		{-1, -1, 45},
		{-1, 1, -45},
	}
	for _, tc := range cases {
		got := upright(vec.Vec2{}, vec.Vec2{X: tc.dx, Y: tc.dy})
		if got < -90 || got > 90 || abs(got-tc.want) > 1e-12 {
			t.Errorf("upright(%g, %g) = %g, want %g", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestPlaceCrossing(t *testing.T) {
	ref, err := ParseReference("MULTILINESTRING((3 -1,3 1),(-1 2,10 2),(20 20,21 21))")
	require.NoError(t, err)
	require.Equal(t, 3, ref.Len())

	opts := &Options{Mode: Crossing, Reference: ref, Precision: -1}
	got := Place(corner, 0.5, opts)

	want := []Anchor{
		{Point: vec.Vec2{X: 3, Y: 0}, Angle: 0, Distance: 3, Text: "0.5"},
		{Point: vec.Vec2{X: 6, Y: 2}, Angle: 90, Distance: 8, Text: "0.5"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("anchors mismatch (-want +got):\n%s", diff)
	}
}

func TestCrossingAtVertexCountsOnce(t *testing.T) {
	ref, err := NewReference([]vec.Vec2{{X: 5, Y: -1}, {X: 7, Y: 1}})
	require.NoError(t, err)
	got := Place(corner, 1, &Options{Mode: Crossing, Reference: ref})
	if len(got) != 1 {
		t.Fatalf("got %d anchors, want 1", len(got))
	}
	if got[0].Point != (vec.Vec2{X: 6, Y: 0}) {
		t.Errorf("anchor at %v, want (6, 0)", got[0].Point)
	}
}

func TestParseReferencePolygon(t *testing.T) {
	ref, err := ParseReference("POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,2 1,2 2,1 1))")
	require.NoError(t, err)
	if ref.Len() != 7 {
		t.Errorf("Len() = %d, want 7", ref.Len())
	}
}

func TestParseReferenceErrors(t *testing.T) {
	if _, err := ParseReference("POINT(1 2)"); !errors.Is(err, ErrReference) {
		t.Errorf("point: got %v, want ErrReference", err)
	}
	if _, err := ParseReference("LINESTRING(1 2,"); err == nil {
		t.Error("malformed WKT accepted")
	}
	if _, err := NewReference([]vec.Vec2{{X: 1, Y: 1}, {X: 1, Y: 1}}); !errors.Is(err, ErrReference) {
		t.Errorf("degenerate line: got %v, want ErrReference", err)
	}
}
