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

package pixfmt

import "image"

// Layout is a Format with one byte per color channel.
// Bytes of a pixel which are not used by any channel are padding.
// Padding bytes are never changed by Encode and blending, but the
// uniform-color fast path of FillRect overwrites them.
type Layout struct {
	Size    int // bytes per pixel
	R, G, B int // byte offsets of the channels within a pixel
}

var (
	// RGB24 stores pixels as three bytes in R, G, B order.
	RGB24 = Layout{Size: 3, R: 0, G: 1, B: 2}

	// BGRX32 stores pixels as four bytes in B, G, R order, followed by
	// one unused byte.
	BGRX32 = Layout{Size: 4, R: 2, G: 1, B: 0}
)

var _ Format = Layout{}

// PixelSize implements the [Format] interface.
func (l Layout) PixelSize() int {
	return l.Size
}

// EffectiveSize implements the [Format] interface.
func (l Layout) EffectiveSize() int {
	return 3
}

// Encode implements the [Format] interface.
func (l Layout) Encode(px []byte, r, g, b uint8) {
	px[l.R] = r
	px[l.G] = g
	px[l.B] = b
}

// Decode implements the [Format] interface.
func (l Layout) Decode(px []byte) (r, g, b uint8) {
	return px[l.R], px[l.G], px[l.B]
}

// BlendPixel implements the [Format] interface.
func (l Layout) BlendPixel(px []byte, r, g, b uint8, alpha float64) {
	px[l.R] = blendChannel(px[l.R], r, alpha)
	px[l.G] = blendChannel(px[l.G], g, alpha)
	px[l.B] = blendChannel(px[l.B], b, alpha)
}

// FillRect implements the [Format] interface.
func (l Layout) FillRect(pix []byte, width, height int, rect image.Rectangle, r, g, b uint8) {
	rect = clampRect(rect, width, height)
	if rect.Empty() {
		return
	}
	stride := width * l.Size

	if r == g && g == b {
		if rect.Min.X == 0 && rect.Max.X == width {
			fillBytes(pix[rect.Min.Y*stride:rect.Max.Y*stride], r)
			return
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			fillBytes(pix[y*stride+rect.Min.X*l.Size:y*stride+rect.Max.X*l.Size], r)
		}
		return
	}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := pix[y*stride+rect.Min.X*l.Size : y*stride+rect.Max.X*l.Size]
		l.Encode(row, r, g, b)
		replicate(row, l.Size)
	}
}

// BlendRect implements the [Format] interface.
func (l Layout) BlendRect(pix []byte, width, height int, rect image.Rectangle, r, g, b uint8, alpha float64) {
	if !(alpha > 0) {
		return
	}
	if alpha >= 1 {
		l.FillRect(pix, width, height, rect, r, g, b)
		return
	}
	rect = clampRect(rect, width, height)
	if rect.Empty() {
		return
	}

	stride := width * l.Size
	if rect.Min.X == 0 && rect.Max.X == width {
		// full rows are contiguous in memory
		l.blendRun(pix[rect.Min.Y*stride:rect.Max.Y*stride], r, g, b, alpha)
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		l.blendRun(pix[y*stride+rect.Min.X*l.Size:y*stride+rect.Max.X*l.Size], r, g, b, alpha)
	}
}

// FillVerticalLine implements the [Format] interface.
func (l Layout) FillVerticalLine(pix []byte, width, height int, x, y0, y1 int, r, g, b uint8) {
	if x < 0 || x >= width {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, height-1)
	stride := width * l.Size
	for y := y0; y <= y1; y++ {
		l.Encode(pix[y*stride+x*l.Size:], r, g, b)
	}
}
