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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Text writes lines as GMT multi-segment ASCII tables.  Every segment
// starts with a header "> C = value" followed by one "x<TAB>y" record per
// point.  The map boundary of a line around the antipode follows as an
// extra segment marked "outer".
type Text struct {
	w   *bufio.Writer
	c   io.Closer
	buf []byte
}

// NewText returns a Sink writing to w.  If w is an io.Closer, Close closes
// it after flushing.
func NewText(w io.Writer) *Text {
	t := &Text{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		t.c = c
	}
	return t
}

// Add implements Sink.
func (t *Text) Add(l *Line) error {
	b := append(t.buf[:0], "> C = "...)
	b = strconv.AppendFloat(b, l.Value, 'g', -1, 64)
	if l.Closed {
		b = append(b, " closed"...)
	}
	b = append(b, '\n')
	b = appendPoints(b, l.Points)
	if l.Donut {
		b = append(b, "> C = "...)
		b = strconv.AppendFloat(b, l.Value, 'g', -1, 64)
		b = append(b, " outer\n"...)
		b = appendPoints(b, l.Outer)
	}
	t.buf = b
	if _, err := t.w.Write(b); err != nil {
		return fmt.Errorf("plot: writing segment: %w", err)
	}
	return nil
}

// Close implements Sink.
func (t *Text) Close() error {
	var errs []error
	if err := t.w.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("plot: flushing text output: %w", err))
	}
	if t.c != nil {
		errs = append(errs, t.c.Close())
	}
	return errors.Join(errs...)
}

func appendPoints(b []byte, pts []vec.Vec2) []byte {
	for _, p := range pts {
		b = strconv.AppendFloat(b, p.X, 'g', -1, 64)
		b = append(b, '\t')
		b = strconv.AppendFloat(b, p.Y, 'g', -1, 64)
		b = append(b, '\n')
	}
	return b
}
