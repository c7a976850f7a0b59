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

// Command export writes all test grids, together with the contours traced
// from them, to testdata/testcases.json.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/GenericMappingTools/gmt-sub004/contour"
	"github.com/GenericMappingTools/gmt-sub004/grid"
	"github.com/GenericMappingTools/gmt-sub004/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string          `json:"name"`
	Level    float64         `json:"level"`
	Periodic bool            `json:"periodic,omitempty"`
	Closed   *int            `json:"closed,omitempty"`
	Open     *int            `json:"open,omitempty"`
	Grid     json.RawMessage `json:"grid"`
	Contours []jsonContour   `json:"contours"`
}

type jsonContour struct {
	Closed     bool         `json:"closed"`
	Handedness int          `json:"handedness"`
	Edges      int          `json:"edges"`
	NaNs       int          `json:"nans,omitempty"`
	Points     [][2]float64 `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Level:    tc.Level,
		Periodic: tc.Periodic,
		Closed:   expected(tc.Closed),
		Open:     expected(tc.Open),
		Contours: []jsonContour{},
	}

	g, err := tc.Grid()
	if err != nil {
		return jtc, err
	}
	var buf bytes.Buffer
	if err := grid.WriteJSON(&buf, g); err != nil {
		return jtc, err
	}
	jtc.Grid = json.RawMessage(bytes.TrimSpace(buf.Bytes()))

	lines, err := contour.Trace(g, tc.Level, &contour.Options{Periodic: tc.Periodic})
	if err != nil {
		return jtc, err
	}
	for _, c := range lines {
		jc := jsonContour{
			Closed:     c.Closed,
			Handedness: c.Handedness(),
			Edges:      c.Edges,
			NaNs:       c.NaNs,
			Points:     make([][2]float64, len(c.Points)),
		}
		for k, p := range c.Points {
			jc.Points[k] = [2]float64{p.X, p.Y}
		}
		jtc.Contours = append(jtc.Contours, jc)
	}
	return jtc, nil
}

// expected maps the "unchecked" marker to a missing field.
func expected(n int) *int {
	if n < 0 {
		return nil
	}
	return &n
}
