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

// Command grdcontour draws contour lines of a grid.
//
// The grid is read from a JSON file (see grid.ReadJSON).  The output format
// follows the extension of the -o file: .pdf for a PDF map, .png for a
// raster preview and anything else for GMT multi-segment text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/GenericMappingTools/gmt-sub004/contour"
	"github.com/GenericMappingTools/gmt-sub004/mapproj"
)

func main() {
	cfg := &config{}
	flag.StringVar(&cfg.in, "in", "-", "grid file in JSON format, - for stdin")
	flag.Float64Var(&cfg.interval, "interval", 0, "contour interval (required)")
	flag.Float64Var(&cfg.annot, "annot", 0, "annotation interval, 0 annotates every contour")
	flag.IntVar(&cfg.smooth, "smooth", 0, "resample contours with this many points per input point")
	flag.StringVar(&cfg.interp, "interp", "akima", "interpolant for -smooth: linear, akima, cubic or nearest")
	flag.IntVar(&cfg.orient, "orient", 0, "1: higher values left of the line, -1: right, 0: as traced")
	flag.BoolVar(&cfg.periodic, "periodic", false, "grid values are angles in degrees")
	flag.BoolVar(&cfg.wrap, "wrap", false, "split lines where they cross the date line")
	flag.StringVar(&cfg.proj, "proj", mapproj.Geographic, "proj4 definition of the grid coordinates")
	flag.StringVar(&cfg.to, "to", "", "proj4 definition of the output coordinates")
	flag.Float64Var(&cfg.labelDist, "label-dist", 0, "place a label every this many output units")
	flag.IntVar(&cfg.labelCount, "label-count", 0, "place this many labels on every annotated contour")
	flag.StringVar(&cfg.labelLines, "label-lines", "", "WKT file of lines where contours are labelled")
	flag.Float64Var(&cfg.labelMin, "label-min", 0, "shortest contour which gets labels")
	flag.StringVar(&cfg.out, "o", "-", "output file (.pdf, .png or text), - for stdout")
	flag.StringVar(&cfg.size, "size", "", "output size as WIDTHxHEIGHT (pixels for PNG, points for PDF)")
	verbose := flag.Bool("v", false, "log every traced contour")

	flag.CommandLine.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s -interval dz [options]\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	contour.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "grdcontour:", err)
		if errors.Is(err, errUsage) {
			flag.CommandLine.Usage()
		}
		os.Exit(1)
	}
}
