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

import (
	"iter"
	"math"

	"github.com/GenericMappingTools/gmt-sub004/grid"
)

// Phase identifies the set of edges a [Scanner] is working through.
type Phase int

// The scan phases, in the order in which they are visited.
const (
	PhaseSouth Phase = iota
	PhaseEast
	PhaseNorth
	PhaseWest
	PhaseInteriorV
	PhaseInteriorH
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseSouth:
		return "south"
	case PhaseEast:
		return "east"
	case PhaseNorth:
		return "north"
	case PhaseWest:
		return "west"
	case PhaseInteriorV:
		return "interior-vertical"
	case PhaseInteriorH:
		return "interior-horizontal"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Scanner enumerates the contours of a grid at one level.
//
// Contours are returned one at a time.  Between calls the scanner
// remembers the phase and the position within the phase, so that a scan
// can be resumed where it left off.  Different scanners share no state.
type Scanner struct {
	value float64
	tr    tracer

	phase Phase
	pos   int
	err   error
}

// NewScanner prepares a scan of g at the given level.  The grid samples
// are copied, so g may be modified while the scan is in progress.
func NewScanner(g *grid.Grid, value float64, opts *Options) *Scanner {
	o := opts.withDefaults()
	geo := o.Geometry
	if geo == nil {
		geo = &g.Header
	}

	d := make([]float64, len(g.Data))
	for k, v := range g.Data {
		z := float64(v) - value
		if z == 0 {
			z += o.ZeroNudge
		}
		d[k] = z
	}

	s := &Scanner{
		value: value,
		tr: tracer{
			d:         d,
			nx:        g.NX,
			ny:        g.NY,
			geo:       geo,
			bits:      NewEdgeBitmap(g.NX, g.NY),
			periodic:  o.Periodic,
			chunk:     o.ChunkSize,
			maxPoints: o.MaxPoints,
		},
	}
	if g.NX < 2 || g.NY < 2 {
		s.phase = PhaseDone
	}
	return s
}

// Phase returns the phase the scanner is currently in.
func (s *Scanner) Phase() Phase {
	return s.phase
}

// Bitmap returns the record of consumed edges.
func (s *Scanner) Bitmap() *EdgeBitmap {
	return s.tr.bits
}

// Err returns the error which stopped the scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

// start describes where a phase begins a trace at position pos: the cell,
// the side through which the contour enters it, and for interior edges
// the cell and side on the far side of the edge.
type start struct {
	i, j, side    int
	ri, rj, rside int
}

func (s *Scanner) startAt(p Phase, pos int) (start, bool) {
	nx, ny := s.tr.nx, s.tr.ny
	switch p {
	case PhaseSouth:
		if pos < nx-1 {
			return start{i: pos, j: ny - 1, side: 0}, true
		}
	case PhaseEast:
		if pos < ny-1 {
			return start{i: nx - 2, j: ny - 1 - pos, side: 1}, true
		}
	case PhaseNorth:
		if pos < nx-1 {
			return start{i: nx - 2 - pos, j: 1, side: 2}, true
		}
	case PhaseWest:
		if pos < ny-1 {
			return start{i: 0, j: 1 + pos, side: 3}, true
		}
	case PhaseInteriorV:
		if w := nx - 2; w > 0 && pos < w*(ny-1) {
			i, j := 1+pos%w, 1+pos/w
			return start{i: i, j: j, side: 3, ri: i - 1, rj: j, rside: 1}, true
		}
	case PhaseInteriorH:
		if w := nx - 1; pos < w*(ny-2) {
			i, j := pos%w, 1+pos/w
			return start{i: i, j: j + 1, side: 2, ri: i, rj: j, rside: 0}, true
		}
	}
	return start{}, false
}

// hasCrossing reports whether side k of cell (i, j) carries an unconsumed
// sign change.
func (s *Scanner) hasCrossing(i, j, k int) bool {
	t := &s.tr
	if t.bits.isMarked(t.edge(i, j, k)) {
		return false
	}
	pair := []float64{
		t.d[(j+cornerDJ[k])*t.nx+i+cornerDI[k]],
		t.d[(j+cornerDJ[k+1])*t.nx+i+cornerDI[k+1]],
	}
	if t.periodic && !math.IsNaN(pair[0]) && !math.IsNaN(pair[1]) {
		setContJump(pair)
	}
	return crosses(pair[0], pair[1])
}

// Next returns the next contour.  The second return value is false once
// the level is exhausted or an error occurred; check Err to tell the two
// cases apart.
func (s *Scanner) Next() (*Contour, bool) {
	log := Logger()
	for s.err == nil && s.phase < PhaseDone {
		st, ok := s.startAt(s.phase, s.pos)
		if !ok {
			s.phase++
			s.pos = 0
			log.Debug("contour scan phase", "level", s.value, "phase", s.phase)
			continue
		}
		s.pos++

		if !s.hasCrossing(st.i, st.j, st.side) {
			continue
		}
		c, err := s.tr.trace(st.i, st.j, st.side, true)
		if err != nil {
			s.err = err
			break
		}
		if c == nil {
			continue
		}

		interior := s.phase == PhaseInteriorV || s.phase == PhaseInteriorH
		if interior && c.NaNs > 0 && !c.Closed {
			back, err := s.tr.trace(st.ri, st.rj, st.rside, false)
			if err != nil {
				s.err = err
				break
			}
			log.Debug("contour splice", "level", s.value,
				"forward", len(c.Points), "backward", len(back.Points))
			c = Splice(c, back)
		}

		if len(c.Points) < 2 {
			log.Debug("contour skipped", "level", s.value,
				"phase", s.phase, "cell_i", st.i, "cell_j", st.j)
			continue
		}
		c.Value = s.value
		return c, true
	}
	return nil, false
}

// All returns an iterator over the remaining contours.
func (s *Scanner) All() iter.Seq[*Contour] {
	return func(yield func(*Contour) bool) {
		for {
			c, ok := s.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Trace returns all contours of g at the given level.
func Trace(g *grid.Grid, value float64, opts *Options) ([]*Contour, error) {
	s := NewScanner(g, value, opts)
	var res []*Contour
	for c := range s.All() {
		res = append(res, c)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	Logger().Info("contour level traced", "level", value, "contours", len(res))
	return res, nil
}
