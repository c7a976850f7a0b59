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

// Package grid holds regularly spaced 2-D scalar fields and the mapping
// between node indices and map coordinates.
//
// Nodes are stored row-major starting at the north-west corner: node (i, j)
// has column i (west to east) and row j (north to south) and lives at
// Data[j*NX+i].
package grid

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// Registration says where the samples sit relative to the grid lines.
type Registration int

const (
	// Gridline registration: samples lie on the intersections of the
	// grid lines (node_offset = 0).
	Gridline Registration = iota

	// Pixel registration: samples lie in the centres of the grid cells
	// (node_offset = 1).
	Pixel
)

func (r Registration) String() string {
	switch r {
	case Gridline:
		return "gridline"
	case Pixel:
		return "pixel"
	default:
		return "unknown"
	}
}

// Header describes the layout of a grid.
type Header struct {
	NX, NY       int     // number of columns and rows
	XMin, XMax   float64 // west and east boundary
	YMin, YMax   float64 // south and north boundary
	XInc, YInc   float64 // node spacing
	Registration Registration
}

// Validate checks that the header describes a usable grid.
func (h *Header) Validate() error {
	if h.NX < 1 || h.NY < 1 {
		return ErrEmptyGrid
	}
	if !(h.XInc > 0) || !(h.YInc > 0) || math.IsInf(h.XInc, 0) || math.IsInf(h.YInc, 0) {
		return ErrIncrement
	}
	if !(h.XMax > h.XMin) || !(h.YMax > h.YMin) {
		return ErrBounds
	}
	return nil
}

// halfCell returns the registration dependent offset of the first node
// from the west and north boundaries.
func (h *Header) halfCell() (dx, dy float64) {
	if h.Registration == Pixel {
		return 0.5 * h.XInc, 0.5 * h.YInc
	}
	return 0, 0
}

// IToX maps a fractional column index to the x coordinate.
func (h *Header) IToX(i float64) float64 {
	dx, _ := h.halfCell()
	return h.XMin + i*h.XInc + dx
}

// JToY maps a fractional row index to the y coordinate.
// Rows are counted from the north boundary.
func (h *Header) JToY(j float64) float64 {
	_, dy := h.halfCell()
	return h.YMax - j*h.YInc - dy
}

// XToI is the inverse of IToX.
func (h *Header) XToI(x float64) float64 {
	dx, _ := h.halfCell()
	return (x - h.XMin - dx) / h.XInc
}

// YToJ is the inverse of JToY.
func (h *Header) YToJ(y float64) float64 {
	_, dy := h.halfCell()
	return (h.YMax - dy - y) / h.YInc
}

// CellIndex returns the linear index of node (i, j).
func (h *Header) CellIndex(i, j int) int {
	return j*h.NX + i
}

// Bounds returns the region covered by the grid.
func (h *Header) Bounds() rect.Rect {
	return rect.Rect{LLx: h.XMin, LLy: h.YMin, URx: h.XMax, URy: h.YMax}
}

// Geometry maps node indices to plot coordinates.
//
// IToX and JToY accept fractional indices, so that a point part way
// along a cell edge can be located.  Both must be pure functions.
type Geometry interface {
	IToX(i float64) float64
	JToY(j float64) float64
	CellIndex(i, j int) int
}

var _ Geometry = (*Header)(nil)

// Grid is a header together with its NX*NY samples.
// NaN samples mark voids.
type Grid struct {
	Header
	Data []float32
}

// New returns a grid using the given header and samples.
// The samples are used directly, not copied.
func New(h Header, data []float32) (*Grid, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if len(data) != h.NX*h.NY {
		return nil, ErrShape
	}
	return &Grid{Header: h, Data: data}, nil
}

// FromRows builds a grid from rows of samples listed north to south.
// The increments are derived from the bounds and the registration.
func FromRows(rows [][]float64, west, east, south, north float64, reg Registration) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	nx, ny := len(rows[0]), len(rows)
	data := make([]float32, 0, nx*ny)
	for _, row := range rows {
		if len(row) != nx {
			return nil, ErrShape
		}
		for _, v := range row {
			data = append(data, float32(v))
		}
	}

	h := Header{
		NX: nx, NY: ny,
		XMin: west, XMax: east,
		YMin: south, YMax: north,
		Registration: reg,
	}
	cols, lines := float64(nx-1), float64(ny-1)
	if reg == Pixel {
		cols, lines = float64(nx), float64(ny)
	}
	if cols > 0 {
		h.XInc = (east - west) / cols
	}
	if lines > 0 {
		h.YInc = (north - south) / lines
	}
	return New(h, data)
}

// At returns the sample at node (i, j).
func (g *Grid) At(i, j int) float64 {
	return float64(g.Data[j*g.NX+i])
}

// MinMax returns the smallest and largest non-NaN sample.
// If all samples are NaN, ok is false.
func (g *Grid) MinMax() (zMin, zMax float64, ok bool) {
	zMin, zMax = math.Inf(1), math.Inf(-1)
	for _, v := range g.Data {
		z := float64(v)
		if math.IsNaN(z) {
			continue
		}
		zMin = min(zMin, z)
		zMax = max(zMax, z)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return zMin, zMax, true
}
