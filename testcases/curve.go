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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 with a cubic Bézier curve.
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:       "quadratic",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{Path: quadraticCurve(10, 50, 32, 0, 54, 50), Fill: true, Style: filled(black)},
		},
	},
	{
		Name:       "cubic",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{Path: cubicCurve(10, 50, 10, 10, 54, 10, 54, 50), Fill: true, Style: filled(blue)},
		},
	},
	{
		Name:       "cubic_stroked",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{Path: cubicCurveOpen(10, 50, 20, 0, 44, 64, 54, 14), Style: stroke(red, 4)},
			Shape{Path: cubicCurveOpen(10, 50, 20, 0, 44, 64, 54, 14), Style: hairline(black)},
		},
	},
	{
		Name:       "circle",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{Path: circle(32, 32, 25), Fill: true, Style: filled(green)},
			Shape{Path: circle(32, 32, 25), Style: hairline(black)},
		},
	},
	{
		Name:       "ellipse",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{Path: ellipse(32, 32, 28, 14), Fill: true, Style: filled(orange)},
		},
	},
	{
		Name:       "scale_2x",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{
				Path:  quadraticCurve(5, 25, 16, 0, 27, 25),
				CTM:   matrix.Matrix{2, 0, 0, 2, 0, 0},
				Fill:  true,
				Style: filled(black),
			},
		},
	},
	{
		Name:       "rotate_45deg",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{
				Path:  rectanglePath(-12, -12, 12, 12),
				CTM:   rotateAround(32, 32, math.Pi/4),
				Fill:  true,
				Style: filled(blue),
			},
		},
	},
	{
		Name:       "circle_to_ellipse",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{
				Path:  circle(0, 0, 14),
				CTM:   matrix.Matrix{2, 0, 0, 1, 32, 32},
				Style: stroke(red, 3),
			},
		},
	},
	{
		Name:       "shear",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{
				Path:  rectanglePath(10, 10, 40, 54),
				CTM:   matrix.Matrix{1, 0, 0.3, 1, 0, 0},
				Fill:  true,
				Style: filled(translucent(green, 0.6)),
			},
		},
	},
	{
		Name:       "subpaths",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{Path: twoSquares(), Fill: true, Style: filled(black)},
		},
	},
	{
		Name:       "arc",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Shape{Path: arc(32, 32, 26, 3), Fill: true, Style: filled(blue)},
		},
	},
}

// quadraticCurve builds a closed shape with a quadratic Bézier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close().
		Iter()
}

// cubicCurve builds a closed shape with a cubic Bézier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close().
		Iter()
}

// cubicCurveOpen builds an open path with a cubic Bézier curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Iter()
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) path.Path {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) path.Path {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close().
		Iter()
}

// arc builds a pie slice made of the given number of quarter circles,
// starting on the right and running counter-clockwise on the screen.
func arc(cx, cy, r float64, quadrants int) path.Path {
	k := r * kappa
	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	if quadrants >= 1 {
		p = p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r))
	}
	if quadrants >= 2 {
		p = p.CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy))
	}
	if quadrants >= 3 {
		p = p.CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r))
	}
	if quadrants >= 4 {
		p = p.CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))
	}
	return p.Close().Iter()
}

// rectanglePath builds a closed rectangular path.
func rectanglePath(x1, y1, x2, y2 float64) path.Path {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close().
		Iter()
}

// twoSquares builds a path with two separate closed subpaths and one
// open subpath.
func twoSquares() path.Path {
	return (&path.Data{}).
		MoveTo(pt(6, 6)).LineTo(pt(26, 6)).LineTo(pt(26, 26)).LineTo(pt(6, 26)).Close().
		MoveTo(pt(38, 38)).LineTo(pt(58, 38)).LineTo(pt(58, 58)).LineTo(pt(38, 58)).Close().
		MoveTo(pt(6, 58)).LineTo(pt(58, 6)).
		Iter()
}

// rotateAround returns the transformation which rotates by angle around
// the point (cx, cy).
func rotateAround(cx, cy, angle float64) matrix.Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return matrix.Matrix{c, s, -s, c, cx, cy}
}
