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

import "math/bits"

// Family selects one of the two sets of grid edges.
type Family uint8

const (
	// Horizontal edges join nodes (i, j) and (i+1, j).
	Horizontal Family = iota

	// Vertical edges join nodes (i, j) and (i, j-1).
	Vertical
)

// Both families index an edge by the linear index j*nx+i of the node
// it starts from.
type edgeID struct {
	family Family
	index  int
}

// EdgeBitmap records which grid edges have been consumed by a contour.
//
// Each family gets one bit per node.  The two families share a single
// word array: horizontal edges use the lower half, vertical edges the
// upper half, starting at offset.
type EdgeBitmap struct {
	words  []uint32
	offset int
}

// NewEdgeBitmap returns an empty bitmap for a grid of nx by ny nodes.
func NewEdgeBitmap(nx, ny int) *EdgeBitmap {
	n := ny * ((nx + 15) / 16)
	// rounding up keeps the families apart when n is odd
	offset := (n + 1) / 2
	return &EdgeBitmap{
		words:  make([]uint32, 2*offset),
		offset: offset,
	}
}

func (b *EdgeBitmap) locate(f Family, index int) (word int, mask uint32) {
	word = index / 32
	if f == Vertical {
		word += b.offset
	}
	return word, 1 << (index % 32)
}

// Mark records the edge as consumed.  Marking an edge twice is allowed.
func (b *EdgeBitmap) Mark(f Family, index int) {
	w, m := b.locate(f, index)
	b.words[w] |= m
}

// IsMarked reports whether the edge has been consumed.
func (b *EdgeBitmap) IsMarked(f Family, index int) bool {
	w, m := b.locate(f, index)
	return b.words[w]&m != 0
}

// Count returns the number of consumed edges.
func (b *EdgeBitmap) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount32(w)
	}
	return n
}

// Reset clears all bits, so that the bitmap can be used for a new level.
func (b *EdgeBitmap) Reset() {
	clear(b.words)
}

func (b *EdgeBitmap) mark(e edgeID) {
	b.Mark(e.family, e.index)
}

func (b *EdgeBitmap) isMarked(e edgeID) bool {
	return b.IsMarked(e.family, e.index)
}
