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

import "errors"

var (
	// ErrBufferTooSmall is returned by [New] if the pixel buffer cannot
	// hold all pixels of the bitmap.
	ErrBufferTooSmall = errors.New("pixel buffer too small")

	// ErrInvalidSize is returned if the width or height of a bitmap is
	// negative, or if no pixel format is given.
	ErrInvalidSize = errors.New("invalid bitmap size")
)
