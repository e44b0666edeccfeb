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
	"cmp"
	"image"
	"math"
	"slices"
)

// polyEdge is one side of a polygon in sweep coordinates. The sweep
// coordinate m advances by one per sweep line, the cross coordinate is
// interpolated along the edge.
type polyEdge struct {
	mStart, mEnd int // first and last sweep line, mStart < mEnd
	c0, c1       int // cross coordinate at the start and end vertex

	// open is set if the end vertex is covered by the edge which
	// continues the outline. Such an edge retires one line early.
	open bool
}

// covers reports whether the edge takes part in the sweep line m.
// The caller guarantees m >= e.mStart.
func (e *polyEdge) covers(m int) bool {
	return m < e.mEnd || m == e.mEnd && !e.open
}

// pos returns the cross coordinate of the edge on sweep line m.
func (e *polyEdge) pos(m int) float64 {
	return float64(e.c0) + float64(e.c1-e.c0)*float64(m-e.mStart)/float64(e.mEnd-e.mStart)
}

// polyFlat is a side of the polygon which lies on a single sweep line.
type polyFlat struct {
	m      int
	c0, c1 int // c0 <= c1
}

// polySpan is a run of fully covered pixels on one sweep line.
type polySpan struct {
	lo, hi int
}

// polyPartial is a single pixel with fractional coverage.
type polyPartial struct {
	c        int
	coverage float64
}

// Polygon fills a polygon using only the [Surface] methods of s.
// This is the implementation used by [FillPolygon] for surfaces which
// do not implement [PolygonFiller].
//
// The polygon is closed automatically and filled using the even-odd rule.
// The filled area includes the pixels on the outline, so that the four
// corners of an axis-aligned rectangle fill the same pixels as [Rect].
// Pixels crossed by slanted sides receive fractional coverage.
// Every pixel is written at most once.
func Polygon(s Surface, vertices []image.Point, style Style) {
	if !style.Color.Visible() || len(vertices) == 0 {
		return
	}

	xMin, xMax := vertices[0].X, vertices[0].X
	yMin, yMax := vertices[0].Y, vertices[0].Y
	for _, p := range vertices[1:] {
		xMin, xMax = min(xMin, p.X), max(xMax, p.X)
		yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
	}
	if xMin == xMax || yMin == yMax {
		// all vertices lie on one row or column
		DrawLine(s, image.Pt(xMin, yMin), image.Pt(xMax, yMax), style.hairline())
		return
	}

	// Sweep along the longer side of the bounding box, so that long
	// thin shapes are crossed by many sweep lines.
	horizontal := xMax-xMin > yMax-yMin
	mLow, mHigh := yMin, yMax
	toSweep := func(p image.Point) (m, c int) { return p.Y, p.X }
	if horizontal {
		mLow, mHigh = xMin, xMax
		toSweep = func(p image.Point) (m, c int) { return p.X, p.Y }
	}

	edges, flats := collectPolyEdges(vertices, toSweep)
	slices.SortFunc(edges, func(a, b polyEdge) int {
		return cmp.Compare(a.mStart, b.mStart)
	})
	slices.SortFunc(flats, func(a, b polyFlat) int {
		return cmp.Compare(a.m, b.m)
	})

	width, height := s.Size()
	limit := height
	if horizontal {
		limit = width
	}
	plot := func(m, c int, coverage float64) {
		if horizontal {
			s.DrawPixel(image.Pt(m, c), style.Color.Mix(coverage))
		} else {
			s.DrawPixel(image.Pt(c, m), style.Color.Mix(coverage))
		}
	}
	run := func(m, c0, c1 int) {
		if horizontal {
			vspan(s, m, c0, c1, style.Color)
		} else {
			hspan(s, c0, c1, m, style.Color)
		}
	}

	// Only the sweep lines which intersect the surface are visited.
	// Edges are stateless, so nothing needs to be replayed for the
	// lines before the first one.
	first, last := max(mLow, 0), min(mHigh, limit-1)

	var active []int // indices into edges
	var spans []polySpan
	var partials []polyPartial
	addPartial := func(c int, coverage float64) {
		if coverage >= coverageEpsilon {
			partials = append(partials, polyPartial{c, coverage})
		}
	}
	nextEdge, nextFlat := 0, 0
	for nextFlat < len(flats) && flats[nextFlat].m < first {
		nextFlat++
	}
	for line := first; line <= last; line++ {
		kept := active[:0]
		for _, idx := range active {
			if edges[idx].covers(line) {
				kept = append(kept, idx)
			}
		}
		active = kept
		for nextEdge < len(edges) && edges[nextEdge].mStart <= line {
			if edges[nextEdge].covers(line) {
				active = append(active, nextEdge)
			}
			nextEdge++
		}

		slices.SortFunc(active, func(i, j int) int {
			return cmp.Compare(edges[i].pos(line), edges[j].pos(line))
		})

		spans, partials = spans[:0], partials[:0]
		for k := 0; k+1 < len(active); k += 2 {
			a, b := &edges[active[k]], &edges[active[k+1]]
			if a.mStart == line && b.mStart == line && a.c0 == b.c0 {
				// Both edges leave the same vertex on this line.
				// Start the span on the next line instead of drawing
				// a full pixel at the tip.
				continue
			}

			lo, hi := a.pos(line), b.pos(line)
			c0 := int(math.Ceil(lo))
			c1 := int(math.Floor(hi))
			if c0 > c1 {
				// both boundaries fall into the same pixel
				addPartial(c1, hi-lo)
				continue
			}
			spans = append(spans, polySpan{c0, c1})
			addPartial(c0-1, float64(c0)-lo)
			addPartial(c1+1, hi-float64(c1))
		}

		// Sides along the sweep line are part of the outline. They are
		// not seen by the edge pairs where the outline steps sideways.
		for nextFlat < len(flats) && flats[nextFlat].m == line {
			f := flats[nextFlat]
			spans = append(spans, polySpan{f.c0, f.c1})
			nextFlat++
		}

		spans = mergeSpans(spans)
		for _, sp := range spans {
			run(line, sp.lo, sp.hi)
		}
		slices.SortFunc(partials, func(a, b polyPartial) int {
			return cmp.Compare(a.c, b.c)
		})
		for i := 0; i < len(partials); {
			c, coverage := partials[i].c, partials[i].coverage
			for i++; i < len(partials) && partials[i].c == c; i++ {
				coverage += partials[i].coverage
			}
			if !insideSpans(spans, c) {
				plot(line, c, min(coverage, 1))
			}
		}
	}
}

// mergeSpans sorts the spans and joins those which overlap or touch.
// The result reuses the storage of spans.
func mergeSpans(spans []polySpan) []polySpan {
	if len(spans) < 2 {
		return spans
	}
	slices.SortFunc(spans, func(a, b polySpan) int {
		return cmp.Compare(a.lo, b.lo)
	})
	res := spans[:1]
	for _, sp := range spans[1:] {
		cur := &res[len(res)-1]
		if sp.lo <= cur.hi+1 {
			cur.hi = max(cur.hi, sp.hi)
			continue
		}
		res = append(res, sp)
	}
	return res
}

// insideSpans reports whether c lies in one of the sorted, disjoint spans.
func insideSpans(spans []polySpan, c int) bool {
	i, found := slices.BinarySearchFunc(spans, c, func(sp polySpan, c int) int {
		return cmp.Compare(sp.lo, c)
	})
	if found {
		return true
	}
	return i > 0 && c <= spans[i-1].hi
}

// collectPolyEdges converts the sides of the closed polygon to sweep
// coordinates. Sides parallel to the sweep lines are returned separately
// as flats. Every edge is oriented from lower to higher sweep coordinate.
func collectPolyEdges(vertices []image.Point, toSweep func(image.Point) (int, int)) ([]polyEdge, []polyFlat) {
	n := len(vertices)
	edges := make([]polyEdge, 0, n)
	ascending := make([]bool, 0, n)
	var flats []polyFlat
	for i := range n {
		m0, c0 := toSweep(vertices[i])
		m1, c1 := toSweep(vertices[(i+1)%n])
		if m0 == m1 {
			if c0 != c1 {
				flats = append(flats, polyFlat{m: m0, c0: min(c0, c1), c1: max(c0, c1)})
			}
			continue
		}
		asc := m0 < m1
		if !asc {
			m0, c0, m1, c1 = m1, c1, m0, c0
		}
		edges = append(edges, polyEdge{
			mStart: m0,
			mEnd:   m1,
			c0:     c0,
			c1:     c1,
		})
		ascending = append(ascending, asc)
	}

	// Where the outline continues in sweep direction, the edge ending on
	// a sweep line hands that line over to the following edge. This also
	// applies if a flat lies between the two edges; the flat itself is
	// drawn separately.
	for i := range edges {
		j := (i + 1) % len(edges)
		if ascending[i] != ascending[j] {
			continue
		}
		if ascending[i] {
			edges[i].open = true
		} else {
			edges[j].open = true
		}
	}
	return edges, flats
}
