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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/GenericMappingTools/gmt-sub004/raster"
)

// PNGOptions describes a raster preview.  Lengths are in pixels.
type PNGOptions struct {
	Region        rect.Rect // map region in data coordinates
	Width, Height int
	Margin        float64

	LineWidth  float64
	AnnotWidth float64
	DotRadius  float64 // size of label markers

	Background color.Color
	Pen        color.Color
	LabelColor color.Color
}

// DefaultPNGOptions returns options for an 800 pixel wide preview with
// the aspect ratio of region.
func DefaultPNGOptions(region rect.Rect) *PNGOptions {
	w := 800
	h := w
	if dx, dy := region.URx-region.LLx, region.URy-region.LLy; dx > 0 && dy > 0 {
		h = max(int(math.Round(float64(w)*dy/dx)), 16)
	}
	return &PNGOptions{
		Region:     region,
		Width:      w,
		Height:     h,
		Margin:     10,
		LineWidth:  1,
		AnnotWidth: 2,
		DotRadius:  2.5,
		Background: color.White,
		Pen:        color.Black,
		LabelColor: color.RGBA{R: 200, A: 255},
	}
}

// PNG renders lines with the anti-aliasing rasteriser and writes a PNG
// image on Close.
type PNG struct {
	w    io.Writer
	opts PNGOptions

	img   *image.RGBA
	mask  *image.Alpha
	r     *raster.Rasterizer
	ctm   matrix.Matrix
	scale float64

	dirtyMin, dirtyMax int // rows of mask holding coverage
}

// NewPNG returns a Sink which encodes the image to w when closed.
func NewPNG(w io.Writer, opts *PNGOptions) (*PNG, error) {
	if opts == nil || !validRegion(opts.Region) || opts.Width < 1 || opts.Height < 1 {
		return nil, ErrRegion
	}
	bounds := image.Rect(0, 0, opts.Width, opts.Height)
	clip := rect.Rect{URx: float64(opts.Width), URy: float64(opts.Height)}

	s, ox, oy := fit(opts.Region, float64(opts.Width), float64(opts.Height), opts.Margin)
	p := &PNG{
		w:     w,
		opts:  *opts,
		img:   image.NewRGBA(bounds),
		mask:  image.NewAlpha(bounds),
		r:     raster.NewRasterizer(clip),
		ctm:   matrix.Matrix{s, 0, 0, -s, ox, float64(opts.Height) - oy},
		scale: s,
	}
	draw.Draw(p.img, bounds, image.NewUniform(opts.Background), image.Point{}, draw.Src)
	p.resetDirty()
	return p, nil
}

// Image returns the image drawn so far.
func (p *PNG) Image() *image.RGBA {
	return p.img
}

// Add implements Sink.
func (p *PNG) Add(l *Line) error {
	if len(l.Points) < 2 {
		return nil
	}
	r := p.r
	r.Reset(r.Clip)
	r.CTM = p.ctm
	r.Width = p.opts.LineWidth / p.scale
	if l.Annotated {
		r.Width = p.opts.AnnotWidth / p.scale
	}
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	if l.Value < 0 {
		r.Dash = []float64{6 / p.scale, 3 / p.scale}
	}
	r.Stroke(l.Path(), p.emit)
	p.composite(p.opts.Pen)

	if len(l.Labels) > 0 {
		rad := p.opts.DotRadius / p.scale
		for _, a := range l.Labels {
			r.FillNonZero(dot(a.Point, rad), p.emit)
		}
		p.composite(p.opts.LabelColor)
	}
	return nil
}

// emit records coverage in the mask, keeping the larger value where
// pieces overlap.
func (p *PNG) emit(y, xMin int, coverage []float32) {
	row := p.mask.Pix[y*p.mask.Stride+xMin:]
	for i, c := range coverage {
		row[i] = max(row[i], uint8(min(c, 1)*255+0.5))
	}
	p.dirtyMin = min(p.dirtyMin, y)
	p.dirtyMax = max(p.dirtyMax, y+1)
}

// composite paints col through the mask and clears the mask.
func (p *PNG) composite(col color.Color) {
	if p.dirtyMin >= p.dirtyMax {
		return
	}
	area := image.Rect(0, p.dirtyMin, p.opts.Width, p.dirtyMax)
	draw.DrawMask(p.img, area, image.NewUniform(col), image.Point{}, p.mask, area.Min, draw.Over)
	clear(p.mask.Pix[p.dirtyMin*p.mask.Stride : p.dirtyMax*p.mask.Stride])
	p.resetDirty()
}

func (p *PNG) resetDirty() {
	p.dirtyMin, p.dirtyMax = p.opts.Height, 0
}

// Close implements Sink.
// If the writer is an io.Closer, it is closed even when encoding fails.
func (p *PNG) Close() error {
	var errs []error
	if err := png.Encode(p.w, p.img); err != nil {
		errs = append(errs, fmt.Errorf("plot: encoding PNG: %w", err))
	}
	if c, ok := p.w.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// dot returns a closed polygon approximating a circle.
func dot(c vec.Vec2, radius float64) *path.Data {
	const n = 16
	p := &path.Data{}
	for k := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / n)
		q := vec.Vec2{X: c.X + radius*cos, Y: c.Y + radius*sin}
		if k == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	return p.Close()
}
