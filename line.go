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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Line draws a line using only the [Surface] methods of s.
// This is the implementation used by [DrawLine] for surfaces which
// do not implement [LineDrawer].
//
// Lines wider than one pixel are converted to a quadrilateral and filled
// using [FillPolygon]. The corners of the quadrilateral are rounded to
// whole pixels; for odd widths, half-way corners round towards larger
// coordinates. Hairlines along the pixel grid cover every pixel
// between the end points. Other hairlines are antialiased: for every
// pixel step along the dominant axis, the coverage is split between the
// two pixels nearest to the exact intercept on the minor axis.
func Line(s Surface, from, to image.Point, style Style) {
	if !style.visible() {
		return
	}
	if style.Width > 1 {
		wideLine(s, from, to, style)
		return
	}

	c := style.Color
	if from.X == to.X {
		vspan(s, from.X, min(from.Y, to.Y), max(from.Y, to.Y), c)
		return
	}
	if from.Y == to.Y {
		hspan(s, min(from.X, to.X), max(from.X, to.X), from.Y, c)
		return
	}

	// Work in (u, v) coordinates, where u is the dominant axis.
	steep := abs(to.X-from.X) < abs(to.Y-from.Y)
	u0, v0, u1, v1 := from.X, from.Y, to.X, to.Y
	uLimit, vLimit := s.Size()
	if steep {
		u0, v0, u1, v1 = from.Y, from.X, to.Y, to.X
		uLimit, vLimit = vLimit, uLimit
	}
	if u0 > u1 {
		u0, v0, u1, v1 = u1, v1, u0, v0
	}
	grad := float64(v1-v0) / float64(u1-u0)

	// Pixels are written at floor(v) and floor(v)+1, so a step can
	// contribute to the surface as long as -1 <= v <= vLimit.
	clip := rect.Rect{LLx: 0, LLy: -1, URx: float64(uLimit - 1), URy: float64(vLimit)}
	lo := max(float64(u0), clip.LLx)
	hi := min(float64(u1), clip.URx)
	if grad > 0 {
		lo = max(lo, float64(u0)+(clip.LLy-float64(v0))/grad)
		hi = min(hi, float64(u0)+(clip.URy-float64(v0))/grad)
	} else {
		lo = max(lo, float64(u0)+(clip.URy-float64(v0))/grad)
		hi = min(hi, float64(u0)+(clip.LLy-float64(v0))/grad)
	}
	uStart := int(math.Ceil(lo))
	uEnd := int(math.Floor(hi))

	plot := func(u, v int, coverage float64) {
		if coverage < coverageEpsilon || v < 0 || v >= vLimit {
			return
		}
		if steep {
			s.DrawPixel(image.Pt(v, u), c.Mix(coverage))
		} else {
			s.DrawPixel(image.Pt(u, v), c.Mix(coverage))
		}
	}
	for u := uStart; u <= uEnd; u++ {
		v := float64(v0) + float64(u-u0)*grad
		vFloor := math.Floor(v)
		frac := v - vFloor
		plot(u, int(vFloor), 1-frac)
		plot(u, int(vFloor)+1, frac)
	}
}

// wideLine fills the rectangle obtained by moving both end points of the
// line perpendicular to the line, by half the stroke width to each side.
func wideLine(s Surface, from, to image.Point, style Style) {
	a := toVec(from)
	b := toVec(to)
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(float64(style.Width) / 2 / length)
	FillPolygon(s, []image.Point{
		toPoint(a.Add(n)),
		toPoint(a.Sub(n)),
		toPoint(b.Sub(n)),
		toPoint(b.Add(n)),
	}, style)
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// toPoint rounds v to the nearest pixel coordinate. Half-way cases round
// up, so that offsets of ±w/2 around a pixel always span w pixels.
func toPoint(v vec.Vec2) image.Point {
	return image.Pt(int(math.Floor(v.X+0.5)), int(math.Floor(v.Y+0.5)))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Numerical tolerances for the rasterizer.
const (
	// coverageEpsilon is the smallest coverage value which is drawn.
	coverageEpsilon = 1e-5

	// zeroLengthThreshold is the minimum length of a wide line.
	// Shorter lines have no usable direction and are skipped.
	zeroLengthThreshold = 1e-5

	// parallelThreshold is the smallest cross product of two unit
	// vectors for which the lines are intersected. Below this the
	// intersection is numerically unstable.
	parallelThreshold = 1e-10
)
