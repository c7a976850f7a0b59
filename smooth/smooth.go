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

// Package smooth resamples polylines to a higher point density.
//
// The points are parameterised by cumulative chord length.  x and y are
// interpolated separately at equally spaced distances, with the original
// vertices kept among the output points.  Between two consecutive original
// vertices the interpolated coordinates are clamped to the range spanned
// by these vertices, so that spline overshoot cannot produce loops or
// spikes.
package smooth

import (
	"errors"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"seehuhn.de/go/geom/vec"

	"github.com/GenericMappingTools/gmt-sub004/contour"
)

// ErrMethod indicates an unknown interpolation method.
var ErrMethod = errors.New("smooth: unknown interpolation method")

// DefaultClampEpsilon is the tolerance used for the overshoot clamp.
const DefaultClampEpsilon = 1e-10

// Method selects the interpolant.
type Method int

// The supported interpolants.
const (
	Linear Method = iota
	Akima
	Cubic // natural cubic spline
	Nearest
)

func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Akima:
		return "akima"
	case Cubic:
		return "cubic"
	case Nearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// ParseMethod converts a method name into a Method.  Both the full names
// and their first letters are accepted.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "linear", "l":
		return Linear, nil
	case "akima", "a":
		return Akima, nil
	case "cubic", "c":
		return Cubic, nil
	case "nearest", "n":
		return Nearest, nil
	}
	return 0, ErrMethod
}

func (m Method) predictor() (interp.FittablePredictor, error) {
	switch m {
	case Linear:
		return &interp.PiecewiseLinear{}, nil
	case Akima:
		return &interp.AkimaSpline{}, nil
	case Cubic:
		return &interp.NaturalCubic{}, nil
	case Nearest:
		return &nearest{}, nil
	}
	return nil, ErrMethod
}

// Options control the resampling.
type Options struct {
	// Factor is the approximate ratio of output points to input points.
	// Values below 1 disable smoothing.
	Factor int

	// Method is the interpolant used for x and y.
	Method Method

	// ClampEpsilon is the distance by which clamped coordinates are
	// pulled inside the range of the neighbouring original vertices.
	// If zero, DefaultClampEpsilon is used.
	ClampEpsilon float64
}

// Smooth returns a resampled copy of pts.  Polylines with fewer than four
// distinct points are returned unchanged, as is every polyline if
// smoothing is disabled.
func Smooth(pts []vec.Vec2, opts *Options) ([]vec.Vec2, error) {
	if opts == nil || opts.Factor < 1 || len(pts) < 4 {
		return pts, nil
	}
	eps := opts.ClampEpsilon
	if eps == 0 {
		eps = DefaultClampEpsilon
	}

	knots, t := chords(pts)
	n := len(knots)
	if n < 4 {
		return pts, nil
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for k, p := range knots {
		xs[k], ys[k] = p.X, p.Y
	}
	fx, err := opts.Method.predictor()
	if err != nil {
		return nil, err
	}
	fy, _ := opts.Method.predictor()
	if err := fx.Fit(t, xs); err != nil {
		return nil, err
	}
	if err := fy.Fit(t, ys); err != nil {
		return nil, err
	}

	tOut, orig := targets(t, opts.Factor)
	out := make([]vec.Vec2, len(tOut))
	for k, s := range tOut {
		if orig[k] >= 0 {
			out[k] = knots[orig[k]]
			continue
		}
		out[k] = vec.Vec2{X: fx.Predict(s), Y: fy.Predict(s)}
	}
	clampSegments(out, orig, eps)
	return out, nil
}

// Contour smooths the points of c in place.
func Contour(c *contour.Contour, opts *Options) error {
	pts, err := Smooth(c.Points, opts)
	if err != nil {
		return err
	}
	c.Points = pts
	return nil
}

// chords removes consecutive duplicate points and returns the remaining
// points together with their cumulative chord length.
func chords(pts []vec.Vec2) ([]vec.Vec2, []float64) {
	knots := make([]vec.Vec2, 1, len(pts))
	knots[0] = pts[0]
	ds := make([]float64, 1, len(pts))
	for _, p := range pts[1:] {
		d := p.Sub(knots[len(knots)-1]).Length()
		if d == 0 {
			continue
		}
		knots = append(knots, p)
		ds = append(ds, d)
	}
	t := make([]float64, len(ds))
	floats.CumSum(t, ds)
	return knots, t
}

// targets returns the distances at which the curve is sampled: about
// factor*len(t)-1 equally spaced values, merged with the values of t.
// orig[k] is the index into t for original vertices and -1 otherwise.
func targets(t []float64, factor int) (tOut []float64, orig []int) {
	n := len(t)
	nOut := factor*n - 1
	if nOut < 2 {
		nOut = 2
	}
	ds := t[n-1] / float64(nOut-1)

	tOut = make([]float64, 1, nOut+n)
	orig = make([]int, 1, nOut+n)
	next := ds
	j := 1
	for i := 1; i < nOut; i++ {
		if j < n && t[j] <= next {
			tOut = append(tOut, t[j])
			orig = append(orig, j)
			if t[j] == next {
				next += ds
			} else {
				nOut++
			}
			j++
			continue
		}
		tOut = append(tOut, next)
		orig = append(orig, -1)
		next += ds
	}

	last := len(tOut) - 1
	tOut[last], orig[last] = t[n-1], n-1
	if tOut[last] == tOut[last-1] {
		tOut, orig = tOut[:last], orig[:last]
		orig[last-1] = n - 1
	}
	return tOut, orig
}

// clampSegments keeps the interpolated points between two original
// vertices inside the bounding box of these vertices.
func clampSegments(pts []vec.Vec2, orig []int, eps float64) {
	i := 0
	for i < len(pts)-1 {
		j := i + 1
		for j < len(pts)-1 && orig[j] < 0 {
			j++
		}
		xMin, xMax := min(pts[i].X, pts[j].X), max(pts[i].X, pts[j].X)
		yMin, yMax := min(pts[i].Y, pts[j].Y), max(pts[i].Y, pts[j].Y)
		for k := i + 1; k < j; k++ {
			pts[k].X = clamp(pts[k].X, xMin, xMax, eps)
			pts[k].Y = clamp(pts[k].Y, yMin, yMax, eps)
		}
		i = j
	}
}

func clamp(v, lo, hi, eps float64) float64 {
	switch {
	case v < lo:
		return lo + eps
	case v > hi:
		return hi - eps
	}
	return v
}

// nearest predicts the value of the closest knot.
type nearest struct {
	xs, ys []float64
}

// Fit stores copies of the knots.  xs must be strictly increasing.
func (nn *nearest) Fit(xs, ys []float64) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return errors.New("smooth: nearest needs matching, non-empty knots")
	}
	nn.xs = slices.Clone(xs)
	nn.ys = slices.Clone(ys)
	return nil
}

// Predict returns the value at the knot closest to x.  Ties go to the
// left knot.
func (nn *nearest) Predict(x float64) float64 {
	k, _ := slices.BinarySearch(nn.xs, x)
	switch {
	case k == 0:
		return nn.ys[0]
	case k == len(nn.xs):
		return nn.ys[k-1]
	}
	if math.Abs(x-nn.xs[k-1]) <= math.Abs(nn.xs[k]-x) {
		return nn.ys[k-1]
	}
	return nn.ys[k]
}
