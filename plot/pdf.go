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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/font/type1"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// PDFOptions describes the page of a PDF map.  Lengths are in PDF points.
type PDFOptions struct {
	Region        rect.Rect // map region in data coordinates
	Width, Height float64
	Margin        float64

	LineWidth  float64
	AnnotWidth float64 // pen for annotated lines
	LabelSize  float64 // height of label boxes
	Frame      bool    // draw the outline of the region

	// HumanReadable writes uncompressed content streams.
	HumanReadable bool
}

// DefaultPDFOptions returns options for an A4 landscape page.
func DefaultPDFOptions(region rect.Rect) *PDFOptions {
	return &PDFOptions{
		Region:     region,
		Width:      842,
		Height:     595,
		Margin:     36,
		LineWidth:  0.5,
		AnnotWidth: 1.2,
		LabelSize:  8,
		Frame:      true,
	}
}

// PDF draws lines onto a single page PDF file.
type PDF struct {
	page  *document.Page
	font  *type1.Instance
	opts  PDFOptions
	scale float64
}

// NewPDF creates the file fileName and prepares the page.
func NewPDF(fileName string, opts *PDFOptions) (*PDF, error) {
	if opts == nil || !validRegion(opts.Region) {
		return nil, ErrRegion
	}
	labelFont, err := standard.Helvetica.New(nil)
	if err != nil {
		return nil, fmt.Errorf("plot: loading label font: %w", err)
	}

	var wopt *pdf.WriterOptions
	if opts.HumanReadable {
		wopt = &pdf.WriterOptions{HumanReadable: true}
	}
	paper := &pdf.Rectangle{URx: opts.Width, URy: opts.Height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, wopt)
	if err != nil {
		return nil, fmt.Errorf("plot: creating %s: %w", fileName, err)
	}

	s, ox, oy := fit(opts.Region, opts.Width, opts.Height, opts.Margin)
	page.Transform(matrix.Matrix{s, 0, 0, s, ox, oy})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetStrokeColor(color.DeviceGray(0))

	if opts.Frame {
		r := opts.Region
		page.SetLineWidth(1 / s)
		page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
		page.Stroke()
	}

	return &PDF{page: page, font: labelFont, opts: *opts, scale: s}, nil
}

// Add implements Sink.
func (p *PDF) Add(l *Line) error {
	if len(l.Points) < 2 {
		return nil
	}
	s := p.scale
	page := p.page

	width := p.opts.LineWidth
	if l.Annotated {
		width = p.opts.AnnotWidth
	}
	page.SetLineWidth(width / s)
	if l.Value < 0 {
		page.SetLineDash([]float64{4 / s, 2 / s}, 0)
	} else {
		page.SetLineDash(nil, 0)
	}

	pts := l.Points
	page.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		page.LineTo(q.X, q.Y)
	}
	if l.Closed {
		page.ClosePath()
	}
	page.Stroke()

	if l.Donut && len(l.Outer) > 1 {
		page.SetLineDash(nil, 0)
		page.SetLineWidth(1 / s)
		page.MoveTo(l.Outer[0].X, l.Outer[0].Y)
		for _, q := range l.Outer[1:] {
			page.LineTo(q.X, q.Y)
		}
		page.ClosePath()
		page.Stroke()
	}

	if len(l.Labels) > 0 {
		page.SetLineDash(nil, 0)
		page.SetLineWidth(0.3 / s)
		page.SetFillColor(color.DeviceGray(1))
		for _, a := range l.Labels {
			p.labelBox(a.Point, a.Angle, len(a.Text))
			page.Fill()
			p.labelBox(a.Point, a.Angle, len(a.Text))
			page.Stroke()
		}
		page.SetFillColor(color.DeviceGray(0))
		for _, a := range l.Labels {
			p.labelText(a.Point, a.Angle, a.Text)
		}
	}
	return nil
}

// labelText typesets text centred at c along the direction angle (in
// degrees), inside the box drawn by labelBox.
func (p *PDF) labelText(c vec.Vec2, angle float64, text string) {
	if text == "" {
		return
	}
	size := 0.8 * p.opts.LabelSize / p.scale
	width := 0.556 * size * float64(len(text)) // Helvetica digit advance
	sin, cos := math.Sincos(angle * math.Pi / 180)
	u := vec.Vec2{X: cos, Y: sin}
	v := vec.Vec2{X: -sin, Y: cos}
	o := c.Sub(u.Mul(width / 2)).Sub(v.Mul(0.35 * size))

	page := p.page
	page.TextBegin()
	page.TextSetFont(p.font, size)
	page.TextSetMatrix(matrix.Matrix{cos, sin, -sin, cos, o.X, o.Y})
	page.TextShow(text)
	page.TextEnd()
}

// labelBox adds the outline of the space reserved for a label with n
// characters, centred at c and turned by angle degrees.
func (p *PDF) labelBox(c vec.Vec2, angle float64, n int) {
	h := p.opts.LabelSize / p.scale
	w := max(float64(n), 1) * 0.6 * h
	sin, cos := math.Sincos(angle * math.Pi / 180)
	u := vec.Vec2{X: cos, Y: sin}.Mul(w / 2)
	v := vec.Vec2{X: -sin, Y: cos}.Mul(h / 2)

	corners := [4]vec.Vec2{
		c.Sub(u).Sub(v), c.Add(u).Sub(v), c.Add(u).Add(v), c.Sub(u).Add(v),
	}
	p.page.MoveTo(corners[0].X, corners[0].Y)
	for _, q := range corners[1:] {
		p.page.LineTo(q.X, q.Y)
	}
	p.page.ClosePath()
}

// Close implements Sink.
func (p *PDF) Close() error {
	if err := p.page.Close(); err != nil {
		return fmt.Errorf("plot: writing PDF: %w", err)
	}
	return nil
}
