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

// Package pixfmt describes how RGB colors are stored in raw pixel buffers.
//
// A buffer holds width×height pixels in row-major order without padding
// between rows, so the pixel (x, y) starts at byte (y*width+x)*PixelSize().
package pixfmt

import "image"

// Format is a stateless description of a pixel layout.
//
// The bulk operations clamp their region to the buffer bounds first and
// do nothing if the clamped region is empty. Their result must match a
// loop of per-pixel writes over the same region; blending may differ from
// the per-pixel result by at most one unit per channel.
type Format interface {
	// PixelSize returns the number of bytes used for one pixel.
	PixelSize() int

	// EffectiveSize returns the number of bytes per pixel which carry
	// color information. Padding bytes are not included.
	EffectiveSize() int

	// Encode stores the color in the pixel starting at px[0].
	Encode(px []byte, r, g, b uint8)

	// Decode reads the color of the pixel starting at px[0].
	Decode(px []byte) (r, g, b uint8)

	// BlendPixel replaces the pixel value old with old*(1-alpha) + c*alpha,
	// separately for each channel, truncated to an integer.
	BlendPixel(px []byte, r, g, b uint8, alpha float64)

	// FillRect overwrites all pixels in rect with the given color.
	FillRect(pix []byte, width, height int, rect image.Rectangle, r, g, b uint8)

	// BlendRect blends the given color into all pixels in rect.
	BlendRect(pix []byte, width, height int, rect image.Rectangle, r, g, b uint8, alpha float64)

	// FillVerticalLine overwrites the pixels (x, y) for y between y0 and
	// y1, both inclusive, with the given color.
	FillVerticalLine(pix []byte, width, height int, x, y0, y1 int, r, g, b uint8)
}

// clampRect restricts rect to the bounds of a width×height buffer.
func clampRect(rect image.Rectangle, width, height int) image.Rectangle {
	return rect.Canon().Intersect(image.Rect(0, 0, width, height))
}

// blendChannel is the scalar reference formula for alpha compositing.
func blendChannel(old, c uint8, alpha float64) uint8 {
	return uint8(float64(old)*(1-alpha) + float64(c)*alpha)
}

// fillBytes sets every byte of b to v.
func fillBytes(b []byte, v byte) {
	if v == 0 {
		clear(b)
		return
	}
	if len(b) == 0 {
		return
	}
	b[0] = v
	replicate(b, 1)
}

// replicate repeats the first n bytes of b until b is full.
// The length of b must be a multiple of n.
func replicate(b []byte, n int) {
	for k := n; k < len(b); k *= 2 {
		copy(b[k:], b[:k])
	}
}
