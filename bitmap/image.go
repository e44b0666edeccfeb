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

package bitmap

import (
	"image"
	"image/color"
	"image/draw"
)

var _ draw.Image = (*Bitmap)(nil)

// ColorModel implements the [image.Image] interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the [image.Image] interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements the [image.Image] interface.
// All pixels of a bitmap are opaque.
func (b *Bitmap) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	r, g, bl := b.format.Decode(b.pix[b.offset(x, y):])
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

// Set implements the [draw.Image] interface.
// Translucent colors are blended into the existing pixel.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return
	}
	r, g, bl, a := c.RGBA()
	if a == 0 {
		return
	}
	px := b.pix[b.offset(x, y):]
	if a == 0xffff {
		b.format.Encode(px, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		return
	}

	// undo the premultiplication
	r = r * 0xffff / a
	g = g * 0xffff / a
	bl = bl * 0xffff / a
	b.format.BlendPixel(px, uint8(r>>8), uint8(g>>8), uint8(bl>>8), float64(a)/0xffff)
}
