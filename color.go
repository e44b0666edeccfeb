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

import "image/color"

// Color is an RGB color with an opacity between 0 (invisible) and 1.
type Color struct {
	R, G, B uint8
	A       float64
}

// RGB returns the fully opaque color with the given channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Mix returns the color with its opacity scaled by the coverage value v.
func (c Color) Mix(v float64) Color {
	c.A *= v
	return c
}

// Visible reports whether drawing with c can change a pixel.
func (c Color) Visible() bool {
	return c.A > 0
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := min(max(c.A, 0), 1)
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

var _ color.Color = Color{}

// Style describes how a shape is drawn.
type Style struct {
	Color Color

	// Width is the stroke width in pixels. A width of 0 draws nothing,
	// 1 draws hairlines, and larger widths stroke by filling polygons.
	Width int

	// Filled selects filled rather than outlined rectangles and circles.
	Filled bool
}

// visible reports whether drawing with s can produce any output.
func (s Style) visible() bool {
	return s.Color.Visible() && s.Width > 0
}

// hairline returns the style with its stroke width set to 1.
func (s Style) hairline() Style {
	s.Width = 1
	return s
}
