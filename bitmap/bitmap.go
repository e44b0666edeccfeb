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

// Package bitmap implements raster surfaces backed by pixel buffers in
// memory.
//
// A [Bitmap] can be drawn on using the functions of the raster package.
// Horizontal and vertical lines, filled rectangles and RGB images are
// written directly to the buffer using the bulk operations of the pixel
// format. All other shapes use the generic rasterizer.
//
// A Bitmap is not safe for concurrent use. To draw from several
// goroutines, use [Bitmap.Split] to divide the bitmap into horizontal
// bands which share no pixels, and give each band to one goroutine.
package bitmap

import (
	"fmt"
	"image"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/pixfmt"
)

// Bitmap is a width×height raster surface stored in a byte slice.
type Bitmap struct {
	pix    []byte
	width  int
	height int
	format pixfmt.Format
}

var (
	_ raster.Surface       = (*Bitmap)(nil)
	_ raster.LineDrawer    = (*Bitmap)(nil)
	_ raster.RectDrawer    = (*Bitmap)(nil)
	_ raster.BitmapBlitter = (*Bitmap)(nil)
)

// New returns a bitmap which draws into the given buffer.
// The buffer must hold at least width*height pixels of the given format,
// stored row by row without padding. The caller keeps ownership of pix
// and must not modify it while the bitmap is in use.
func New(pix []byte, width, height int, format pixfmt.Format) (*Bitmap, error) {
	if width < 0 || height < 0 || format == nil {
		return nil, fmt.Errorf("bitmap %d×%d: %w", width, height, ErrInvalidSize)
	}
	need := width * height * format.PixelSize()
	if len(pix) < need {
		return nil, fmt.Errorf("bitmap %d×%d needs %d bytes, got %d: %w",
			width, height, need, len(pix), ErrBufferTooSmall)
	}
	Logger().Debug("bitmap created", "width", width, "height", height, "bytes", need)
	return &Bitmap{
		pix:    pix[:need:need],
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Alloc returns a new bitmap with a freshly allocated, black buffer.
// Alloc panics if width or height is negative.
func Alloc(width, height int, format pixfmt.Format) *Bitmap {
	if width < 0 || height < 0 {
		panic("bitmap: negative size")
	}
	b, err := New(make([]byte, width*height*format.PixelSize()), width, height, format)
	if err != nil {
		panic(err)
	}
	return b
}

// Size implements the [raster.Surface] interface.
func (b *Bitmap) Size() (width, height int) {
	return b.width, b.height
}

// DrawPixel implements the [raster.Surface] interface.
// Opaque colors overwrite the pixel, translucent colors are blended into
// the existing pixel value.
func (b *Bitmap) DrawPixel(p image.Point, c raster.Color) {
	if p.X < 0 || p.Y < 0 || p.X >= b.width || p.Y >= b.height || !c.Visible() {
		return
	}
	px := b.pix[b.offset(p.X, p.Y):]
	if c.A >= 1 {
		b.format.Encode(px, c.R, c.G, c.B)
	} else {
		b.format.BlendPixel(px, c.R, c.G, c.B, c.A)
	}
}

// DrawLine implements the [raster.LineDrawer] interface.
// Horizontal and vertical hairlines are written using the bulk operations
// of the pixel format.
func (b *Bitmap) DrawLine(from, to image.Point, style raster.Style) {
	if style.Width != 1 || !style.Color.Visible() || from.X != to.X && from.Y != to.Y {
		raster.Line(b, from, to, style)
		return
	}

	c := style.Color
	if from.X == to.X && c.A >= 1 {
		b.format.FillVerticalLine(b.pix, b.width, b.height, from.X, from.Y, to.Y, c.R, c.G, c.B)
		return
	}
	b.fill(inclusiveRect(from, to), c)
}

// DrawRect implements the [raster.RectDrawer] interface.
// Filled rectangles are written using the bulk operations of the pixel
// format.
func (b *Bitmap) DrawRect(upperLeft, bottomRight image.Point, style raster.Style) {
	if !style.Filled {
		raster.Rect(b, upperLeft, bottomRight, style)
		return
	}
	b.fill(inclusiveRect(upperLeft, bottomRight), style.Color)
}

// BlitBitmap implements the [raster.BitmapBlitter] interface.
func (b *Bitmap) BlitBitmap(pos image.Point, width, height int, rgb []byte) {
	if width <= 0 || height <= 0 {
		return
	}
	area := image.Rect(0, 0, width, height).Add(pos).Intersect(b.Bounds())
	if area.Empty() {
		return
	}

	size := b.format.PixelSize()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		start := 3 * ((y-pos.Y)*width + area.Min.X - pos.X)
		if start >= len(rgb) {
			return
		}
		src := rgb[start:min(start+3*area.Dx(), len(rgb))]
		src = src[:len(src)-len(src)%3]
		dst := b.pix[b.offset(area.Min.X, y):]

		if b.format == pixfmt.Format(pixfmt.RGB24) {
			copy(dst, src)
			continue
		}
		for i := 0; i < len(src); i += 3 {
			b.format.Encode(dst[i/3*size:], src[i], src[i+1], src[i+2])
		}
	}
}

// Blit copies the pixels of src into b, with the upper left corner of src
// at pos. Pixels which fall outside of b are skipped. If the two bitmaps
// use different pixel formats, the pixels are converted.
func (b *Bitmap) Blit(src *Bitmap, pos image.Point) {
	area := src.Bounds().Add(pos).Intersect(b.Bounds())
	if area.Empty() {
		return
	}

	same := b.format == src.format
	dstSize := b.format.PixelSize()
	srcSize := src.format.PixelSize()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		d := b.pix[b.offset(area.Min.X, y):b.offset(area.Max.X, y)]
		s := src.pix[src.offset(area.Min.X-pos.X, y-pos.Y):src.offset(area.Max.X-pos.X, y-pos.Y)]
		if same {
			copy(d, s)
			continue
		}
		for i := range area.Dx() {
			r, g, bl := src.format.Decode(s[i*srcSize:])
			b.format.Encode(d[i*dstSize:], r, g, bl)
		}
	}
}

// Split divides b into horizontal bands with the given heights, from top
// to bottom. The bands share the pixel buffer of b, but no two bands share
// a row, so that different bands can be drawn on concurrently.
//
// Non-positive heights are skipped. If the heights add up to more than
// the height of b, the last band is truncated and any remaining heights
// are ignored. If they add up to less, a final band holds the remaining
// rows. Together the bands always cover every row of b exactly once.
func (b *Bitmap) Split(heights ...int) []*Bitmap {
	stride := b.width * b.format.PixelSize()
	parts := make([]*Bitmap, 0, len(heights)+1)
	band := func(y0, y1 int) *Bitmap {
		lo, hi := y0*stride, y1*stride
		return &Bitmap{
			pix:    b.pix[lo:hi:hi],
			width:  b.width,
			height: y1 - y0,
			format: b.format,
		}
	}
	y := 0
	for i, h := range heights {
		if h <= 0 {
			continue
		}
		if y >= b.height {
			Logger().Warn("split heights exceed bitmap",
				"height", b.height, "ignored", len(heights)-i)
			break
		}
		end := min(y+h, b.height)
		if end < y+h {
			Logger().Warn("split band truncated", "requested", h, "height", end-y)
		}
		parts = append(parts, band(y, end))
		y = end
	}
	if y < b.height {
		parts = append(parts, band(y, b.height))
	}
	Logger().Debug("bitmap split", "height", b.height, "bands", len(parts))
	return parts
}

// Pix returns the pixel buffer of b.
func (b *Bitmap) Pix() []byte {
	return b.pix
}

// Format returns the pixel format of b.
func (b *Bitmap) Format() pixfmt.Format {
	return b.format
}

// Clear sets all pixels of b to the given color. The opacity of c is
// ignored.
func (b *Bitmap) Clear(c raster.Color) {
	b.format.FillRect(b.pix, b.width, b.height, b.Bounds(), c.R, c.G, c.B)
}

// fill covers the half-open rectangle r with the color c.
func (b *Bitmap) fill(r image.Rectangle, c raster.Color) {
	if c.A >= 1 {
		b.format.FillRect(b.pix, b.width, b.height, r, c.R, c.G, c.B)
	} else {
		b.format.BlendRect(b.pix, b.width, b.height, r, c.R, c.G, c.B, c.A)
	}
}

// offset returns the index of the first byte of pixel (x, y).
func (b *Bitmap) offset(x, y int) int {
	return (y*b.width + x) * b.format.PixelSize()
}

// inclusiveRect returns the half-open rectangle which contains both
// corners a and b.
func inclusiveRect(a, b image.Point) image.Rectangle {
	r := image.Rectangle{Min: a, Max: b}.Canon()
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}
