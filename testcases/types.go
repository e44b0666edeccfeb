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

// Package testcases provides a catalogue of drawing scenes, used for
// testing and for visual inspection of the rasterizer output.
package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/raster"
)

// TestCase defines a single drawing scene.
type TestCase struct {
	Name       string       // lowercase a-z, 0-9 and _ only
	Width      int          // canvas width in pixels
	Height     int          // canvas height in pixels
	Background raster.Color // initial color of all pixels
	Ops        []Operation  // drawing operations, applied in order
}

// Draw applies all operations of the test case to s.
// The background is not drawn.
func (tc *TestCase) Draw(s raster.Surface) {
	for _, op := range tc.Ops {
		op.Draw(s)
	}
}

// Operation is one drawing call.
type Operation interface {
	Draw(s raster.Surface)
}

// Line draws a straight line.
type Line struct {
	From, To image.Point
	Style    raster.Style
}

func (op Line) Draw(s raster.Surface) {
	raster.DrawLine(s, op.From, op.To, op.Style)
}

// Rect draws an axis-aligned rectangle.
type Rect struct {
	UpperLeft, BottomRight image.Point
	Style                  raster.Style
}

func (op Rect) Draw(s raster.Surface) {
	raster.DrawRect(s, op.UpperLeft, op.BottomRight, op.Style)
}

// Circle draws a circle.
type Circle struct {
	Center image.Point
	Radius int
	Style  raster.Style
}

func (op Circle) Draw(s raster.Surface) {
	raster.DrawCircle(s, op.Center, op.Radius, op.Style)
}

// Polygon fills a polygon.
type Polygon struct {
	Vertices []image.Point
	Style    raster.Style
}

func (op Polygon) Draw(s raster.Surface) {
	raster.FillPolygon(s, op.Vertices, op.Style)
}

// Polyline strokes an open path.
type Polyline struct {
	Vertices []image.Point
	Style    raster.Style
}

func (op Polyline) Draw(s raster.Surface) {
	raster.DrawPath(s, op.Vertices, op.Style)
}

// Shape draws a vector path, after flattening it to device pixels.
// Closed subpaths are filled if Fill is set; all other subpaths are
// stroked.
type Shape struct {
	Path  path.Path
	CTM   matrix.Matrix // zero value means identity
	Fill  bool
	Style raster.Style
}

func (op Shape) Draw(s raster.Surface) {
	f := raster.NewFlattener()
	if op.CTM != (matrix.Matrix{}) {
		f.CTM = op.CTM
	}
	for _, sub := range f.Flatten(op.Path) {
		switch {
		case sub.Closed && op.Fill:
			raster.FillPolygon(s, sub.Points, op.Style)
		case sub.Closed:
			raster.DrawPath(s, append(sub.Points, sub.Points[0]), op.Style)
		default:
			raster.DrawPath(s, sub.Points, op.Style)
		}
	}
}

// Image copies an RGB image with three bytes per pixel.
type Image struct {
	Pos           image.Point
	Width, Height int
	RGB           []byte
}

func (op Image) Draw(s raster.Surface) {
	raster.BlitBitmap(s, op.Pos, op.Width, op.Height, op.RGB)
}

// Colors used by the test cases.
var (
	white  = raster.RGB(255, 255, 255)
	black  = raster.RGB(0, 0, 0)
	red    = raster.RGB(220, 40, 30)
	green  = raster.RGB(40, 160, 60)
	blue   = raster.RGB(30, 80, 200)
	orange = raster.RGB(250, 150, 20)
	grey   = raster.RGB(128, 128, 128)
)

// translucent returns c with opacity alpha.
func translucent(c raster.Color, alpha float64) raster.Color {
	c.A = alpha
	return c
}

// hairline returns a one pixel wide stroke style.
func hairline(c raster.Color) raster.Style {
	return raster.Style{Color: c, Width: 1}
}

// stroke returns a stroke style with the given width.
func stroke(c raster.Color, width int) raster.Style {
	return raster.Style{Color: c, Width: width}
}

// filled returns a style for filled shapes.
func filled(c raster.Color) raster.Style {
	return raster.Style{Color: c, Width: 1, Filled: true}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
