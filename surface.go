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

// Surface is the minimal capability a drawing target must provide.
//
// DrawPixel must silently ignore points outside of [0,width)×[0,height).
// The color's opacity is the fraction of the pixel to cover; the surface
// is responsible for blending.
type Surface interface {
	Size() (width, height int)
	DrawPixel(p image.Point, c Color)
}

// A LineDrawer can draw lines more efficiently than [Line].
type LineDrawer interface {
	DrawLine(from, to image.Point, style Style)
}

// A RectDrawer can draw rectangles more efficiently than [Rect].
type RectDrawer interface {
	DrawRect(upperLeft, bottomRight image.Point, style Style)
}

// A CircleDrawer can draw circles more efficiently than [Circle].
type CircleDrawer interface {
	DrawCircle(center image.Point, radius int, style Style)
}

// A PolygonFiller can fill polygons more efficiently than [Polygon].
type PolygonFiller interface {
	FillPolygon(vertices []image.Point, style Style)
}

// A PathDrawer can stroke paths more efficiently than [Path].
type PathDrawer interface {
	DrawPath(vertices []image.Point, style Style)
}

// A BitmapBlitter can copy RGB images more efficiently than [Blit].
type BitmapBlitter interface {
	BlitBitmap(pos image.Point, width, height int, rgb []byte)
}

// DrawLine draws a straight line from one point to another, both
// included. If s implements [LineDrawer], its DrawLine method is used.
func DrawLine(s Surface, from, to image.Point, style Style) {
	if d, ok := s.(LineDrawer); ok {
		d.DrawLine(from, to, style)
		return
	}
	Line(s, from, to, style)
}

// DrawRect draws the rectangle with the given corners, both included.
// If s implements [RectDrawer], its DrawRect method is used.
func DrawRect(s Surface, upperLeft, bottomRight image.Point, style Style) {
	if d, ok := s.(RectDrawer); ok {
		d.DrawRect(upperLeft, bottomRight, style)
		return
	}
	Rect(s, upperLeft, bottomRight, style)
}

// DrawCircle draws a circle around center.
// If s implements [CircleDrawer], its DrawCircle method is used.
func DrawCircle(s Surface, center image.Point, radius int, style Style) {
	if d, ok := s.(CircleDrawer); ok {
		d.DrawCircle(center, radius, style)
		return
	}
	Circle(s, center, radius, style)
}

// FillPolygon fills the polygon with the given vertices.
// If s implements [PolygonFiller], its FillPolygon method is used.
func FillPolygon(s Surface, vertices []image.Point, style Style) {
	if d, ok := s.(PolygonFiller); ok {
		d.FillPolygon(vertices, style)
		return
	}
	Polygon(s, vertices, style)
}

// DrawPath strokes the open polyline through the given vertices.
// If s implements [PathDrawer], its DrawPath method is used.
func DrawPath(s Surface, vertices []image.Point, style Style) {
	if d, ok := s.(PathDrawer); ok {
		d.DrawPath(vertices, style)
		return
	}
	Path(s, vertices, style)
}

// BlitBitmap copies a width×height image with packed 8-bit R, G, B
// samples to s, with the upper left corner of the image at pos.
// If s implements [BitmapBlitter], its BlitBitmap method is used.
func BlitBitmap(s Surface, pos image.Point, width, height int, rgb []byte) {
	if d, ok := s.(BitmapBlitter); ok {
		d.BlitBitmap(pos, width, height, rgb)
		return
	}
	Blit(s, pos, width, height, rgb)
}

// inBounds reports whether p lies on a width×height surface.
func inBounds(p image.Point, width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

// hspan draws the pixels (x, y) for x0 <= x <= x1, clipped to the surface.
func hspan(s Surface, x0, x1, y int, c Color) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for x := max(x0, 0); x <= min(x1, w-1); x++ {
		s.DrawPixel(image.Pt(x, y), c)
	}
}

// vspan draws the pixels (x, y) for y0 <= y <= y1, clipped to the surface.
func vspan(s Surface, x, y0, y1 int, c Color) {
	w, h := s.Size()
	if x < 0 || x >= w {
		return
	}
	for y := max(y0, 0); y <= min(y1, h-1); y++ {
		s.DrawPixel(image.Pt(x, y), c)
	}
}
