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

import "encoding/binary"

// Packed blending model:
//
// Eight consecutive buffer bytes are loaded into one uint64. The even and
// odd bytes are split into two words with one byte per 16-bit lane:
//
//	even = w & 0x00ff00ff00ff00ff
//	odd  = (w >> 8) & 0x00ff00ff00ff00ff
//
// Alpha is converted to 8-bit fixed point a ∈ [0, 256], and each lane is
// updated as (old*(256-a) + fill*a) >> 8. The largest intermediate lane
// value is 255*256, so no carry crosses into the neighbouring lane.
//
// A chunk is the smallest run of whole pixels which is also a whole number
// of words. Within a chunk the fill bytes form a fixed pattern, so the fill
// words are computed once per call. Padding bytes are restored from the
// original word through a per-word mask. Pixels after the last whole chunk
// use the scalar formula.

// blendRun blends a color into a contiguous run of whole pixels.
func (l Layout) blendRun(run []byte, r, g, b uint8, alpha float64) {
	if l.Size < 1 || l.Size > maxPackedWords {
		l.blendScalar(run, r, g, b, alpha)
		return
	}
	chunk := lcm(l.Size, 8)
	nWords := chunk / 8
	if len(run) < chunk {
		l.blendScalar(run, r, g, b, alpha)
		return
	}

	var pattern, channels [maxPackedWords * 8]byte
	for off := 0; off < chunk; off += l.Size {
		l.Encode(pattern[off:], r, g, b)
		channels[off+l.R] = 0xff
		channels[off+l.G] = 0xff
		channels[off+l.B] = 0xff
	}
	var fill, keep [maxPackedWords]uint64
	for j := range nWords {
		fill[j] = binary.LittleEndian.Uint64(pattern[8*j:])
		keep[j] = ^binary.LittleEndian.Uint64(channels[8*j:])
	}

	a := uint64(alpha*256 + 0.5)
	n := len(run) - len(run)%chunk
	for off := 0; off < n; off += chunk {
		for j := range nWords {
			p := run[off+8*j : off+8*j+8]
			w := binary.LittleEndian.Uint64(p)
			binary.LittleEndian.PutUint64(p, blendWord(w, fill[j], a)&^keep[j]|w&keep[j])
		}
	}
	l.blendScalar(run[n:], r, g, b, alpha)
}

// blendScalar blends a color into each pixel of run individually.
func (l Layout) blendScalar(run []byte, r, g, b uint8, alpha float64) {
	for off := 0; off+l.Size <= len(run); off += l.Size {
		l.BlendPixel(run[off:], r, g, b, alpha)
	}
}

// blendWord blends the eight bytes of fill into the eight bytes of w,
// using the fixed-point weight a/256 for fill.
func blendWord(w, fill, a uint64) uint64 {
	ia := 256 - a
	even := ((w&laneMask)*ia + (fill&laneMask)*a) >> 8 & laneMask
	odd := (((w>>8)&laneMask)*ia + ((fill>>8)&laneMask)*a) >> 8 & laneMask
	return even | odd<<8
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}

const (
	// laneMask selects every second byte of a word.
	laneMask = 0x00ff00ff00ff00ff

	// maxPackedWords bounds the chunk size of packed blending. For pixel
	// sizes up to 8 bytes a chunk never needs more than 8 words.
	maxPackedWords = 8
)
