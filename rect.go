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

import "image"

// Rect draws a rectangle using only the [Surface] methods of s.
// This is the implementation used by [DrawRect] for surfaces which
// do not implement [RectDrawer].
//
// Both corners are part of the rectangle and may be given in any order.
// If style.Filled is set, every pixel of the rectangle is covered.
// Otherwise the outline is drawn with style.Width; hairline outlines
// cover each pixel exactly once.
func Rect(s Surface, upperLeft, bottomRight image.Point, style Style) {
	if !style.Color.Visible() {
		return
	}
	x0, x1 := min(upperLeft.X, bottomRight.X), max(upperLeft.X, bottomRight.X)
	y0, y1 := min(upperLeft.Y, bottomRight.Y), max(upperLeft.Y, bottomRight.Y)
	c := style.Color

	if style.Filled {
		for y := y0; y <= y1; y++ {
			hspan(s, x0, x1, y, c)
		}
		return
	}

	switch {
	case style.Width <= 0:
		return
	case style.Width > 1:
		DrawLine(s, image.Pt(x0, y0), image.Pt(x0, y1), style)
		DrawLine(s, image.Pt(x0, y0), image.Pt(x1, y0), style)
		DrawLine(s, image.Pt(x1, y1), image.Pt(x0, y1), style)
		DrawLine(s, image.Pt(x1, y1), image.Pt(x1, y0), style)
		return
	}

	hspan(s, x0, x1, y0, c)
	if y1 > y0 {
		hspan(s, x0, x1, y1, c)
	}
	if y1-y0 > 1 {
		vspan(s, x0, y0+1, y1-1, c)
		if x1 > x0 {
			vspan(s, x1, y0+1, y1-1, c)
		}
	}
}
