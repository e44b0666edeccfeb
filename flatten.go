// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package raster

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Flattener converts vector paths with curves into polylines with integer
// device coordinates, suitable for [DrawPath] and [FillPolygon].
type Flattener struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it.
	Flatness float64
}

// Subpath is one flattened subpath.
type Subpath struct {
	Points []image.Point
	Closed bool
}

// NewFlattener returns a Flattener with the identity transformation and
// the default flatness.
func NewFlattener() *Flattener {
	return &Flattener{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Flatten returns the subpaths of p in device coordinates.
//
// Consecutive points which round to the same pixel are merged. Subpaths
// which are started by a MoveTo but never drawn are omitted. For closed
// subpaths the start point is not repeated at the end.
func (f *Flattener) Flatten(p path.Path) []Subpath {
	var res []Subpath
	var cur []image.Point
	var current, start vec.Vec2
	inSubpath := false

	emit := func(_, to vec.Vec2) {
		q := f.toDevice(to)
		if len(cur) > 0 && cur[len(cur)-1] == q {
			return
		}
		cur = append(cur, q)
	}
	finish := func(closed bool) {
		if closed && len(cur) > 1 && cur[len(cur)-1] == cur[0] {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 1 {
			res = append(res, Subpath{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = pts[0]
			start = current
			cur = append(cur, f.toDevice(current))
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			emit(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			f.flattenQuadratic(current, pts[0], pts[1], emit)
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			f.flattenCubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			finish(true)
			current = start
			inSubpath = false
		}
	}
	finish(false)
	return res
}

// toDevice maps a user space point to the nearest device pixel.
func (f *Flattener) toDevice(p vec.Vec2) image.Point {
	m := f.CTM
	return toPoint(vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	})
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (f *Flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

// flatness returns the tolerance to use, falling back to the default for
// non-positive values.
func (f *Flattener) flatness() float64 {
	if f.Flatness > 0 {
		return f.Flatness
	}
	return defaultFlatness
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line
// segment. p0 is the current point, p1 the control point, p2 the end point.
func (f *Flattener) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := f.transformLinear(e).Length()

	n := 1
	if eps := f.flatness(); errDev > eps {
		n = int(math.Ceil(math.Sqrt(errDev / eps)))
	}
	n = min(n, maxCurveSegments)

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line
// segment. The number of segments is given by Wang's formula.
func (f *Flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * f.flatness()))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}
	n = min(n, maxCurveSegments)

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels. Since output points are rounded to whole pixels anyway,
	// smaller values only add redundant vertices.
	defaultFlatness = 0.5

	// maxCurveSegments bounds the number of line segments per curve.
	maxCurveSegments = 1000
)
