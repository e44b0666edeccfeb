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

	"seehuhn.de/go/geom/vec"
)

// strokeSegment is one segment of a polyline.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal, T rotated by 90°
}

func newStrokeSegment(a, b image.Point) strokeSegment {
	av, bv := toVec(a), toVec(b)
	d := bv.Sub(av)
	t := d.Mul(1 / d.Length())
	return strokeSegment{A: av, B: bv, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}}
}

// Polygonize returns the outline of the polyline through the given
// vertices, stroked with the given width.
//
// The outline is one closed polygon: the offset side to the left of the
// path, traversed forward, followed by the offset side to the right,
// traversed backward. Corners use miter joins and the ends are cut off
// square at the end points. Repeated vertices are ignored. If fewer than
// two distinct vertices remain, the result is nil.
//
// Outline vertices are rounded to whole pixels, with half-way cases
// rounded towards larger coordinates. For odd widths the outline of an
// axis-aligned path is therefore shifted by half a pixel, but keeps the
// given width.
func Polygonize(vertices []image.Point, width int) []image.Point {
	segs := polylineSegments(vertices)
	if len(segs) == 0 {
		return nil
	}
	d := float64(width) / 2

	res := make([]image.Point, 0, 2*len(segs)+2)
	res = appendOffsetSide(res, segs, d)

	for i, j := 0, len(segs)-1; i <= j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j].reverse(), segs[i].reverse()
	}
	res = appendOffsetSide(res, segs, d)
	return res
}

// polylineSegments splits a polyline into segments, skipping repeated
// vertices.
func polylineSegments(vertices []image.Point) []strokeSegment {
	if len(vertices) == 0 {
		return nil
	}
	var segs []strokeSegment
	prev := vertices[0]
	for _, p := range vertices[1:] {
		if p == prev {
			continue
		}
		segs = append(segs, newStrokeSegment(prev, p))
		prev = p
	}
	return segs
}

// appendOffsetSide appends the side of the stroke outline which lies in
// direction N of the segments, at distance d.
func appendOffsetSide(res []image.Point, segs []strokeSegment, d float64) []image.Point {
	first := &segs[0]
	res = append(res, toPoint(first.A.Add(first.N.Mul(d))))
	for i := 1; i < len(segs); i++ {
		res = append(res, toPoint(miter(&segs[i-1], &segs[i], d)))
	}
	last := &segs[len(segs)-1]
	return append(res, toPoint(last.B.Add(last.N.Mul(d))))
}

// miter returns the corner where the offset lines of two consecutive
// segments meet. If the segments are nearly parallel, the offset point
// of the first segment's end is used instead.
func miter(a, b *strokeSegment, d float64) vec.Vec2 {
	pa := a.B.Add(a.N.Mul(d))
	pb := b.A.Add(b.N.Mul(d))

	// solve pa + u*a.T = pb + v*b.T for u
	cross := a.T.X*b.T.Y - a.T.Y*b.T.X
	if math.Abs(cross) < parallelThreshold {
		return pa
	}
	diff := pb.Sub(pa)
	u := (diff.X*b.T.Y - diff.Y*b.T.X) / cross
	return pa.Add(a.T.Mul(u))
}

// reverse returns the segment traversed in the opposite direction.
func (s strokeSegment) reverse() strokeSegment {
	return strokeSegment{
		A: s.B,
		B: s.A,
		T: s.T.Mul(-1),
		N: s.N.Mul(-1),
	}
}

// Path strokes a polyline using only the [Surface] methods of s.
// This is the implementation used by [DrawPath] for surfaces which
// do not implement [PathDrawer].
//
// Hairlines are drawn segment by segment. Wider paths are converted to
// an outline using [Polygonize], which is then filled.
func Path(s Surface, vertices []image.Point, style Style) {
	if !style.visible() || len(vertices) == 0 {
		return
	}
	if style.Width == 1 {
		if len(vertices) == 1 {
			DrawLine(s, vertices[0], vertices[0], style)
		}
		for i := 1; i < len(vertices); i++ {
			DrawLine(s, vertices[i-1], vertices[i], style)
		}
		return
	}
	FillPolygon(s, Polygonize(vertices, style.Width), style)
}
