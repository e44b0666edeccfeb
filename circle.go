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
)

// Circle draws a circle using only the [Surface] methods of s.
// This is the implementation used by [DrawCircle] for surfaces which
// do not implement [CircleDrawer].
//
// Filled circles cover the disc of the given radius, with antialiased
// boundary pixels. Outlines of width 1 draw an antialiased one pixel
// ring. Wider outlines draw the annulus between radius-Width/2 and
// radius+Width/2; if the inner radius is not positive, this is the filled
// disc of the outer radius.
func Circle(s Surface, center image.Point, radius int, style Style) {
	if !style.Color.Visible() || radius < 0 {
		return
	}

	fill := style.Filled
	if !fill {
		if style.Width <= 0 {
			return
		}
		if style.Width > 1 {
			half := style.Width / 2
			inner := radius - min(half, radius)
			radius += half
			if inner > 0 {
				annulus(s, center, radius, inner, style.Color)
				return
			}
			fill = true
		}
	}
	disc(s, center, radius, style.Color, fill)
}

// Sweep model:
//
// Pixels are addressed relative to the center. The row sweep visits the
// rows a = 0, 1, ... near the horizontal axis and owns the pixels with
// |y| <= |x|; the column sweep visits the columns near the vertical axis
// and owns the pixels with |x| < |y|. Within a sweep, b >= 0 is the
// distance from the axis along the sweep line, so the row sweep owns
// b >= a and the column sweep owns b >= a+1. Every owned pixel is then
// reflected into the other quadrants. Together the two sweeps cover
// each pixel exactly once, including the pixels on the diagonals.
//
// Along a sweep line the circle boundary lies at b = sqrt(r²-a²). The
// pixel floor(b) is inside, and the pixel just outside gets the fractional
// part of b as coverage.

// disc draws a filled disc, or a ring of width one if fill is false.
func disc(s Surface, center image.Point, r int, c Color, fill bool) {
	o := octants{s: s, cx: center.X, cy: center.Y, c: c}
	last := min(diagonal(r)+1, r)

	for _, column := range []bool{false, true} {
		for a := 0; a <= last; a++ {
			bMin := a
			if column {
				bMin++
			}
			b, frac := boundary(r, a)
			if fill {
				o.span(a, bMin, b, column)
			} else if b >= bMin {
				o.pixel(a, b, 1-frac, column)
			}
			if b+1 >= bMin {
				o.pixel(a, b+1, frac, column)
			}
		}
	}
}

// annulus fills the ring between two concentric circles, 0 < inner < outer.
//
// Along the sweep lines a <= inner/√2 both boundaries lie inside the
// octant: the inner boundary pixel is antialiased, the pixels between
// the boundaries are covered by a straight span, and the outer boundary
// pixel is antialiased. Beyond inner/√2 the hole no longer reaches the
// octant, and up to outer/√2 each sweep line contributes a seam span from
// the diagonal to the outer boundary. These seam spans join the 45° points
// of the two circles.
func annulus(s Surface, center image.Point, outer, inner int, c Color) {
	o := octants{s: s, cx: center.X, cy: center.Y, c: c}
	innerDiag := diagonal(inner)
	last := min(diagonal(outer)+1, outer)

	for _, column := range []bool{false, true} {
		outerEdge := func(a, start, bMin int) {
			b, frac := boundary(outer, a)
			o.span(a, start, b, column)
			if b+1 >= bMin {
				o.pixel(a, b+1, frac, column)
			}
		}

		for a := 0; a <= min(innerDiag, last); a++ {
			bMin := a
			if column {
				bMin++
			}
			start := bMin
			ci, cov := innerBoundary(inner, a)
			if ci > start {
				o.pixel(a, ci-1, cov, column)
				start = ci
			}
			outerEdge(a, start, bMin)
		}

		for a := innerDiag + 1; a <= last; a++ {
			bMin := a
			if column {
				bMin++
			}
			outerEdge(a, bMin, bMin)
		}
	}
}

// boundary returns the integer and fractional part of sqrt(r²-a²).
func boundary(r, a int) (int, float64) {
	n := r*r - a*a
	b := isqrt(n)
	frac := math.Sqrt(float64(n)) - float64(b)
	return b, min(max(frac, 0), 1)
}

// innerBoundary returns the first pixel outside the circle of radius r
// along sweep line a, together with the coverage of the pixel before it.
func innerBoundary(r, a int) (int, float64) {
	n := r*r - a*a
	b := isqrt(n)
	if b*b < n {
		b++
	}
	cov := float64(b) - math.Sqrt(float64(n))
	return b, min(max(cov, 0), 1)
}

// diagonal returns the largest d >= 0 with 2d² <= r², i.e. floor(r/√2).
func diagonal(r int) int {
	d := int(float64(r) / math.Sqrt2)
	for 2*(d+1)*(d+1) <= r*r {
		d++
	}
	for d > 0 && 2*d*d > r*r {
		d--
	}
	return d
}

// isqrt returns floor(sqrt(n)) for n >= 0, and 0 for negative n.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := int(math.Sqrt(float64(n)))
	for x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}

// octants draws pixels given in sweep coordinates, together with their
// reflections across both axes.
type octants struct {
	s      Surface
	cx, cy int
	c      Color
}

// pixel draws the sweep-coordinate pixel (a, b) with the given coverage.
func (o *octants) pixel(a, b int, coverage float64, column bool) {
	if coverage < coverageEpsilon {
		return
	}
	c := o.c.Mix(coverage)
	o.put(a, b, c, column)
	if b != 0 {
		o.put(a, -b, c, column)
	}
	if a != 0 {
		o.put(-a, b, c, column)
		if b != 0 {
			o.put(-a, -b, c, column)
		}
	}
}

// span draws the sweep-coordinate pixels (a, b) for b0 <= b <= b1 at full
// coverage. b0 must not be negative.
func (o *octants) span(a, b0, b1 int, column bool) {
	if b0 > b1 {
		return
	}
	o.line(a, b0, b1, column)
	if m := max(b0, 1); m <= b1 {
		o.line(a, -b1, -m, column)
	}
	if a != 0 {
		o.line(-a, b0, b1, column)
		if m := max(b0, 1); m <= b1 {
			o.line(-a, -b1, -m, column)
		}
	}
}

func (o *octants) put(a, b int, c Color, column bool) {
	if column {
		o.s.DrawPixel(image.Pt(o.cx+a, o.cy+b), c)
	} else {
		o.s.DrawPixel(image.Pt(o.cx+b, o.cy+a), c)
	}
}

func (o *octants) line(a, b0, b1 int, column bool) {
	if column {
		vspan(o.s, o.cx+a, o.cy+b0, o.cy+b1, o.c)
	} else {
		hspan(o.s, o.cx+b0, o.cx+b1, o.cy+a, o.c)
	}
}
