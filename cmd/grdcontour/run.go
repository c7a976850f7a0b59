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

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/GenericMappingTools/gmt-sub004/contour"
	"github.com/GenericMappingTools/gmt-sub004/grid"
	"github.com/GenericMappingTools/gmt-sub004/label"
	"github.com/GenericMappingTools/gmt-sub004/mapproj"
	"github.com/GenericMappingTools/gmt-sub004/plot"
	"github.com/GenericMappingTools/gmt-sub004/smooth"
)

var errUsage = errors.New("usage error")

type config struct {
	in       string
	interval float64
	annot    float64

	smooth int
	interp string
	orient int

	periodic bool
	wrap     bool
	proj, to string

	labelDist  float64
	labelCount int
	labelLines string
	labelMin   float64

	out  string
	size string
}

func run(cfg *config) error {
	if !(cfg.interval > 0) {
		return fmt.Errorf("%w: -interval must be positive", errUsage)
	}
	if cfg.orient < -1 || cfg.orient > 1 {
		return fmt.Errorf("%w: -orient must be -1, 0 or 1", errUsage)
	}

	g, err := readGrid(cfg.in)
	if err != nil {
		return err
	}
	zMin, zMax, ok := g.MinMax()
	if !ok {
		contour.Logger().Warn("grid has no valid samples", "file", cfg.in)
		return nil
	}
	levels, err := contour.Levels(zMin, zMax, cfg.interval)
	if err != nil {
		return err
	}

	var smoothOpts *smooth.Options
	if cfg.smooth > 0 {
		method, err := smooth.ParseMethod(cfg.interp)
		if err != nil {
			return err
		}
		smoothOpts = &smooth.Options{Factor: cfg.smooth, Method: method}
	}

	var proj *mapproj.Projector
	if cfg.to != "" {
		proj, err = mapproj.New(cfg.proj, cfg.to)
		if err != nil {
			return err
		}
	}

	var jumps mapproj.Jumper
	if cfg.wrap {
		jumps.Period = 360
		if proj != nil {
			jumps.Period = proj.Period()
		}
	}

	labels, err := labelOptions(cfg)
	if err != nil {
		return err
	}

	region := g.Bounds()
	if proj != nil {
		region, err = projectRegion(proj, region)
		if err != nil {
			return err
		}
	}
	sink, err := openSink(cfg, region)
	if err != nil {
		return err
	}

	hold := &plot.Hold{Sink: sink, Project: proj, Jumps: jumps, Annot: cfg.annot, Labels: labels}
	if proj != nil {
		if d, ok := proj.Donut(360); ok {
			hold.Donut = d
			contour.Logger().Debug("azimuthal map", "antipode_lon", d.Antipode.X, "antipode_lat", d.Antipode.Y)
		}
	}
	opts := &contour.Options{Periodic: cfg.periodic}
	for _, value := range levels {
		s := contour.NewScanner(g, value, opts)
		for c := range s.All() {
			if cfg.orient != 0 {
				contour.Enforce(c, cfg.orient)
			}
			if err := smooth.Contour(c, smoothOpts); err != nil {
				hold.Close()
				return err
			}
			if err := hold.Put(c.Value, c.Points, c.Closed); err != nil {
				hold.Close()
				return err
			}
		}
		if err := s.Err(); err != nil {
			hold.Close()
			return fmt.Errorf("level %g: %w", value, err)
		}
	}
	return hold.Close()
}

func readGrid(name string) (*grid.Grid, error) {
	if name == "-" {
		return grid.ReadJSON(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.ReadJSON(f)
}

func labelOptions(cfg *config) (*label.Options, error) {
	opts := &label.Options{MinLength: cfg.labelMin, Precision: -1}
	switch {
	case cfg.labelLines != "":
		wkt, err := os.ReadFile(cfg.labelLines)
		if err != nil {
			return nil, err
		}
		ref, err := label.ParseReference(string(wkt))
		if err != nil {
			return nil, err
		}
		opts.Mode = label.Crossing
		opts.Reference = ref
	case cfg.labelCount > 0:
		opts.Mode = label.Count
		opts.Count = cfg.labelCount
	case cfg.labelDist > 0:
		opts.Mode = label.Distance
		opts.Spacing = cfg.labelDist
	default:
		return nil, nil
	}
	return opts, nil
}

// projectRegion returns the bounding box of the projected outline of r.
func projectRegion(p *mapproj.Projector, r rect.Rect) (rect.Rect, error) {
	const steps = 64
	var outline []vec.Vec2
	for k := range steps + 1 {
		t := float64(k) / steps
		x := r.LLx + t*(r.URx-r.LLx)
		y := r.LLy + t*(r.URy-r.LLy)
		outline = append(outline,
			vec.Vec2{X: x, Y: r.LLy}, vec.Vec2{X: x, Y: r.URy},
			vec.Vec2{X: r.LLx, Y: y}, vec.Vec2{X: r.URx, Y: y})
	}
	pts, err := p.Line(outline)
	if err != nil {
		return rect.Rect{}, err
	}
	l := plot.Line{Points: pts}
	return l.Bounds(), nil
}

func openSink(cfg *config, region rect.Rect) (plot.Sink, error) {
	w, h, err := parseSize(cfg.size)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(cfg.out)) {
	case ".pdf":
		opts := plot.DefaultPDFOptions(region)
		if w > 0 {
			opts.Width, opts.Height = float64(w), float64(h)
		}
		return plot.NewPDF(cfg.out, opts)
	case ".png":
		opts := plot.DefaultPNGOptions(region)
		if w > 0 {
			opts.Width, opts.Height = w, h
		}
		f, err := os.Create(cfg.out)
		if err != nil {
			return nil, err
		}
		sink, err := plot.NewPNG(f, opts)
		if err != nil {
			f.Close()
			return nil, err
		}
		return sink, nil
	}

	var out io.Writer = nopCloser{os.Stdout}
	if cfg.out != "-" {
		f, err := os.Create(cfg.out)
		if err != nil {
			return nil, err
		}
		out = f
	}
	return plot.NewText(out), nil
}

// nopCloser keeps the text sink from closing stdout.
type nopCloser struct{ io.Writer }

// parseSize parses "WIDTHxHEIGHT".  The empty string gives 0, 0.
func parseSize(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: -size must look like 800x600", errUsage)
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || w < 1 || h < 1 || w > math.MaxInt32 || h > math.MaxInt32 {
		return 0, 0, fmt.Errorf("%w: invalid -size %q", errUsage, s)
	}
	return w, h, nil
}
