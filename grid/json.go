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

package grid

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// jsonGrid is the interchange form of a grid.  JSON has no NaN, so voids
// are written as null.
type jsonGrid struct {
	NX           int        `json:"nx"`
	NY           int        `json:"ny"`
	XMin         float64    `json:"x_min"`
	XMax         float64    `json:"x_max"`
	YMin         float64    `json:"y_min"`
	YMax         float64    `json:"y_max"`
	XInc         float64    `json:"x_inc"`
	YInc         float64    `json:"y_inc"`
	Registration string     `json:"registration"`
	Z            []*float64 `json:"z"`
}

// ReadJSON decodes a grid written by WriteJSON.
func ReadJSON(r io.Reader) (*Grid, error) {
	var in jsonGrid
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("grid: decoding JSON: %w", err)
	}

	h := Header{
		NX: in.NX, NY: in.NY,
		XMin: in.XMin, XMax: in.XMax,
		YMin: in.YMin, YMax: in.YMax,
		XInc: in.XInc, YInc: in.YInc,
	}
	switch in.Registration {
	case "", "gridline":
		h.Registration = Gridline
	case "pixel":
		h.Registration = Pixel
	default:
		return nil, fmt.Errorf("grid: unknown registration %q", in.Registration)
	}

	data := make([]float32, len(in.Z))
	for i, z := range in.Z {
		if z == nil {
			data[i] = float32(math.NaN())
		} else {
			data[i] = float32(*z)
		}
	}
	return New(h, data)
}

// WriteJSON encodes g in the format read by ReadJSON.
func WriteJSON(w io.Writer, g *Grid) error {
	out := jsonGrid{
		NX: g.NX, NY: g.NY,
		XMin: g.XMin, XMax: g.XMax,
		YMin: g.YMin, YMax: g.YMax,
		XInc: g.XInc, YInc: g.YInc,
		Registration: g.Registration.String(),
		Z:            make([]*float64, len(g.Data)),
	}
	for i, v := range g.Data {
		if math.IsNaN(float64(v)) {
			continue
		}
		z := float64(v)
		out.Z[i] = &z
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
