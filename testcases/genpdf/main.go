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

// Command genpdf draws the contours of every test grid as PDF and PNG
// reference plots.  With -gs, the PDF files are also rendered by
// Ghostscript, for comparison with the built-in rasteriser.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/GenericMappingTools/gmt-sub004/contour"
	"github.com/GenericMappingTools/gmt-sub004/plot"
	"github.com/GenericMappingTools/gmt-sub004/testcases"
)

const plotDir = "testdata/plots"

func main() {
	useGS := flag.Bool("gs", false, "also render the PDF files with Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(plotDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			base := filepath.Join(plotDir, name)

			if err := generate(tc, base); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *useGS {
				if err := renderPNG(base+".pdf", base+"-gs.png"); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generate(tc testcases.TestCase, base string) error {
	g, err := tc.Grid()
	if err != nil {
		return err
	}
	lines, err := contour.Trace(g, tc.Level, &contour.Options{Periodic: tc.Periodic})
	if err != nil {
		return err
	}

	region := g.Bounds()
	pdfOpts := plot.DefaultPDFOptions(region)
	pdfOpts.Width, pdfOpts.Height, pdfOpts.Margin = 300, 300, 10
	pdfSink, err := plot.NewPDF(base+".pdf", pdfOpts)
	if err != nil {
		return err
	}

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	pngOpts := plot.DefaultPNGOptions(region)
	pngOpts.Width, pngOpts.Height = 300, 300
	pngSink, err := plot.NewPNG(f, pngOpts)
	if err != nil {
		f.Close()
		return err
	}

	hold := &plot.Hold{Sink: plot.Multi(pdfSink, pngSink)}
	for _, c := range lines {
		contour.Enforce(c, 1)
		if err := hold.Contour(c); err != nil {
			hold.Close()
			return err
		}
	}
	return hold.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: one pixel per point, matching the PNG written by the plot
	// package
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
