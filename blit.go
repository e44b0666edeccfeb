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

// Blit copies an RGB image using only the [Surface] methods of s.
// This is the implementation used by [BlitBitmap] for surfaces which
// do not implement [BitmapBlitter].
//
// The image has width×height pixels with three bytes R, G, B each, stored
// row by row. Pixels outside the surface, and pixels for which rgb is too
// short, are skipped.
func Blit(s Surface, pos image.Point, width, height int, rgb []byte) {
	if width <= 0 || height <= 0 {
		return
	}
	sw, sh := s.Size()
	area := image.Rect(0, 0, width, height).Add(pos).Intersect(image.Rect(0, 0, sw, sh))
	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := (y - pos.Y) * width
		for x := area.Min.X; x < area.Max.X; x++ {
			i := 3 * (row + x - pos.X)
			if i+3 > len(rgb) {
				return
			}
			s.DrawPixel(image.Pt(x, y), RGB(rgb[i], rgb[i+1], rgb[i+2]))
		}
	}
}
