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

package contour

import (
	"fmt"
	"testing"
)

func TestBitmapFamiliesDoNotAlias(t *testing.T) {
	sizes := [][2]int{{2, 2}, {3, 3}, {16, 1}, {17, 3}, {33, 5}, {100, 7}}
	for _, sz := range sizes {
		nx, ny := sz[0], sz[1]
		t.Run(fmt.Sprintf("%dx%d", nx, ny), func(t *testing.T) {
			b := NewEdgeBitmap(nx, ny)
			for idx := range nx * ny {
				b.Mark(Horizontal, idx)
			}
			for idx := range nx * ny {
				if b.IsMarked(Vertical, idx) {
					t.Fatalf("vertical edge %d marked by horizontal family", idx)
				}
			}
			if got := b.Count(); got != nx*ny {
				t.Errorf("Count() = %d, want %d", got, nx*ny)
			}

			b.Reset()
			for idx := range nx * ny {
				b.Mark(Vertical, idx)
			}
			for idx := range nx * ny {
				if b.IsMarked(Horizontal, idx) {
					t.Fatalf("horizontal edge %d marked by vertical family", idx)
				}
				if !b.IsMarked(Vertical, idx) {
					t.Fatalf("vertical edge %d lost", idx)
				}
			}
		})
	}
}

func TestBitmapMarkIsIdempotent(t *testing.T) {
	b := NewEdgeBitmap(5, 4)
	b.Mark(Vertical, 7)
	b.Mark(Vertical, 7)
	if got := b.Count(); got != 1 {
		t.Errorf("Count() = %d after marking one edge twice", got)
	}
	if b.IsMarked(Vertical, 6) || b.IsMarked(Horizontal, 7) {
		t.Error("neighbouring bits were set")
	}
	b.Reset()
	if b.IsMarked(Vertical, 7) || b.Count() != 0 {
		t.Error("Reset() left bits set")
	}
}
