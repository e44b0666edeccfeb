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

import (
	"fmt"
	"image"
	"math"
	"testing"
)

// recorder is a Surface which records every pixel write.
type recorder struct {
	width, height int
	coverage      map[image.Point]float64
	writes        map[image.Point]int
	last          map[image.Point]Color
	outside       int
}

func newRecorder(width, height int) *recorder {
	return &recorder{
		width:    width,
		height:   height,
		coverage: make(map[image.Point]float64),
		writes:   make(map[image.Point]int),
		last:     make(map[image.Point]Color),
	}
}

func (r *recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *recorder) DrawPixel(p image.Point, c Color) {
	if !inBounds(p, r.width, r.height) {
		r.outside++
		return
	}
	r.coverage[p] += c.A
	r.writes[p]++
	r.last[p] = c
}

// checkSingleWrites reports every pixel which was written more than once.
func (r *recorder) checkSingleWrites(t *testing.T) {
	t.Helper()
	for p, n := range r.writes {
		if n > 1 {
			t.Errorf("pixel %v written %d times", p, n)
		}
	}
}

var black = RGB(0, 0, 0)

func TestInvisible(t *testing.T) {
	transparent := Color{R: 10, G: 20, B: 30}
	poly := []image.Point{{1, 1}, {15, 3}, {8, 14}}

	cases := []struct {
		name string
		draw func(s Surface)
	}{
		{"line_alpha", func(s Surface) {
			DrawLine(s, image.Pt(1, 1), image.Pt(10, 7), Style{Color: transparent, Width: 1})
		}},
		{"line_width", func(s Surface) {
			DrawLine(s, image.Pt(1, 1), image.Pt(10, 7), Style{Color: black})
		}},
		{"wide_line_alpha", func(s Surface) {
			DrawLine(s, image.Pt(1, 1), image.Pt(10, 7), Style{Color: transparent, Width: 5})
		}},
		{"rect_alpha", func(s Surface) {
			DrawRect(s, image.Pt(1, 1), image.Pt(10, 7), Style{Color: transparent, Filled: true})
		}},
		{"rect_width", func(s Surface) {
			DrawRect(s, image.Pt(1, 1), image.Pt(10, 7), Style{Color: black})
		}},
		{"circle_alpha", func(s Surface) {
			DrawCircle(s, image.Pt(8, 8), 5, Style{Color: transparent, Filled: true})
		}},
		{"circle_negative", func(s Surface) {
			DrawCircle(s, image.Pt(8, 8), -1, Style{Color: black, Filled: true})
		}},
		{"circle_width", func(s Surface) {
			DrawCircle(s, image.Pt(8, 8), 5, Style{Color: black})
		}},
		{"polygon_alpha", func(s Surface) {
			FillPolygon(s, poly, Style{Color: transparent})
		}},
		{"polygon_empty", func(s Surface) {
			FillPolygon(s, nil, Style{Color: black})
		}},
		{"path_alpha", func(s Surface) {
			DrawPath(s, poly, Style{Color: transparent, Width: 3})
		}},
		{"path_width", func(s Surface) {
			DrawPath(s, poly, Style{Color: black})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newRecorder(16, 16)
			tc.draw(s)
			if len(s.writes) > 0 || s.outside > 0 {
				t.Errorf("%d pixels written", len(s.writes)+s.outside)
			}
		})
	}
}

func TestAxisAlignedLine(t *testing.T) {
	hair := Style{Color: black, Width: 1}
	cases := []struct {
		from, to image.Point
	}{
		{image.Pt(2, 5), image.Pt(9, 5)},
		{image.Pt(9, 5), image.Pt(2, 5)},
		{image.Pt(4, 1), image.Pt(4, 11)},
		{image.Pt(4, 11), image.Pt(4, 1)},
		{image.Pt(3, 3), image.Pt(3, 3)},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v-%v", tc.from, tc.to), func(t *testing.T) {
			s := newRecorder(16, 16)
			DrawLine(s, tc.from, tc.to, hair)

			want := abs(tc.to.X-tc.from.X) + abs(tc.to.Y-tc.from.Y) + 1
			if len(s.writes) != want {
				t.Errorf("got %d pixels, want %d", len(s.writes), want)
			}
			s.checkSingleWrites(t)
			for p, cov := range s.coverage {
				if cov != 1 {
					t.Errorf("pixel %v: coverage %g", p, cov)
				}
			}
		})
	}
}

func TestDiagonalLine(t *testing.T) {
	s := newRecorder(10, 10)
	DrawLine(s, image.Pt(0, 0), image.Pt(9, 9), Style{Color: black, Width: 1})

	if len(s.writes) != 10 {
		t.Errorf("got %d pixels, want 10", len(s.writes))
	}
	for i := range 10 {
		if cov := s.coverage[image.Pt(i, i)]; cov != 1 {
			t.Errorf("pixel (%d,%d): coverage %g, want 1", i, i, cov)
		}
	}
}

func TestLineCoverageSum(t *testing.T) {
	cases := []struct {
		from, to image.Point
		steep    bool
	}{
		{image.Pt(0, 0), image.Pt(20, 7), false},
		{image.Pt(20, 3), image.Pt(1, 12), false},
		{image.Pt(5, 1), image.Pt(11, 25), true},
		{image.Pt(13, 27), image.Pt(2, 0), true},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v-%v", tc.from, tc.to), func(t *testing.T) {
			s := newRecorder(30, 30)
			DrawLine(s, tc.from, tc.to, Style{Color: black, Width: 1})

			// the coverage of each step along the dominant axis sums to one
			sums := make(map[int]float64)
			for p, cov := range s.coverage {
				if tc.steep {
					sums[p.Y] += cov
				} else {
					sums[p.X] += cov
				}
			}
			u0, u1 := tc.from.X, tc.to.X
			if tc.steep {
				u0, u1 = tc.from.Y, tc.to.Y
			}
			for u := min(u0, u1); u <= max(u0, u1); u++ {
				if math.Abs(sums[u]-1) > 1e-4 {
					t.Errorf("step %d: coverage sum %g", u, sums[u])
				}
			}
			if len(sums) != abs(u1-u0)+1 {
				t.Errorf("got %d steps, want %d", len(sums), abs(u1-u0)+1)
			}
		})
	}
}

func TestLineClipping(t *testing.T) {
	lines := [][2]image.Point{
		{{-100, -50}, {200, 80}},
		{{-10, 45}, {60, -5}},
		{{25, -300}, {27, 300}},
		{{-5, -5}, {-1, -20}},
	}
	for _, l := range lines {
		s := newRecorder(50, 40)
		DrawLine(s, l[0], l[1], Style{Color: black, Width: 1})
		if s.outside > 0 {
			t.Errorf("%v-%v: %d writes outside the surface", l[0], l[1], s.outside)
		}
	}

	// a clipped line matches the corresponding part of the unclipped line
	big := newRecorder(400, 400)
	DrawLine(big, image.Pt(0, 0), image.Pt(300, 130), Style{Color: black, Width: 1})
	small := newRecorder(100, 100)
	DrawLine(small, image.Pt(0, 0), image.Pt(300, 130), Style{Color: black, Width: 1})
	for p, cov := range big.coverage {
		if !inBounds(p, 100, 100) {
			continue
		}
		if got := small.coverage[p]; math.Abs(got-cov) > 1e-9 {
			t.Errorf("pixel %v: clipped coverage %g, want %g", p, got, cov)
		}
	}
}

func TestWideLine(t *testing.T) {
	s := newRecorder(30, 30)
	DrawLine(s, image.Pt(5, 10), image.Pt(20, 10), Style{Color: black, Width: 4})

	// the line becomes the rectangle 5..20 × 8..12
	if len(s.writes) != 16*5 {
		t.Errorf("got %d pixels, want %d", len(s.writes), 16*5)
	}
	for x := 5; x <= 20; x++ {
		for y := 8; y <= 12; y++ {
			if cov := s.coverage[image.Pt(x, y)]; cov != 1 {
				t.Errorf("pixel (%d,%d): coverage %g", x, y, cov)
			}
		}
	}

	s = newRecorder(30, 30)
	DrawLine(s, image.Pt(5, 10), image.Pt(5, 10), Style{Color: black, Width: 4})
	if len(s.writes) != 0 {
		t.Errorf("zero length wide line wrote %d pixels", len(s.writes))
	}
}

func TestRect(t *testing.T) {
	t.Run("filled", func(t *testing.T) {
		s := newRecorder(16, 16)
		DrawRect(s, image.Pt(10, 7), image.Pt(2, 3), Style{Color: black, Filled: true})
		if len(s.writes) != 9*5 {
			t.Errorf("got %d pixels, want %d", len(s.writes), 9*5)
		}
		s.checkSingleWrites(t)
	})

	outlines := []struct {
		a, b image.Point
		want int
	}{
		{image.Pt(1, 1), image.Pt(5, 4), 14},
		{image.Pt(3, 3), image.Pt(3, 3), 1},
		{image.Pt(1, 1), image.Pt(5, 1), 5},
		{image.Pt(1, 1), image.Pt(1, 5), 5},
		{image.Pt(1, 1), image.Pt(2, 2), 4},
	}
	for _, tc := range outlines {
		t.Run(fmt.Sprintf("outline_%v-%v", tc.a, tc.b), func(t *testing.T) {
			s := newRecorder(16, 16)
			DrawRect(s, tc.a, tc.b, Style{Color: black, Width: 1})
			if len(s.writes) != tc.want {
				t.Errorf("got %d pixels, want %d", len(s.writes), tc.want)
			}
			s.checkSingleWrites(t)
		})
	}
}

func TestCircleSingleWrites(t *testing.T) {
	styles := map[string]Style{
		"filled":   {Color: black, Filled: true},
		"hairline": {Color: black, Width: 1},
		"width_4":  {Color: black, Width: 4},
		"width_7":  {Color: black, Width: 7},
	}
	for name, style := range styles {
		for r := 0; r <= 40; r++ {
			s := newRecorder(100, 100)
			DrawCircle(s, image.Pt(50, 50), r, style)
			for p, n := range s.writes {
				if n > 1 {
					t.Errorf("%s, r=%d: pixel %v written %d times", name, r, p, n)
				}
			}
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	for _, style := range []Style{
		{Color: black, Filled: true},
		{Color: black, Width: 1},
		{Color: black, Width: 6},
	} {
		for _, r := range []int{1, 5, 12, 29} {
			s := newRecorder(80, 80)
			DrawCircle(s, image.Pt(40, 40), r, style)
			for p, cov := range s.coverage {
				dx, dy := p.X-40, p.Y-40
				for _, q := range []image.Point{
					{40 - dx, 40 + dy}, {40 + dx, 40 - dy}, {40 + dy, 40 + dx},
				} {
					if math.Abs(s.coverage[q]-cov) > 1e-9 {
						t.Errorf("style %v, r=%d: %v has %g but %v has %g",
							style, r, p, cov, q, s.coverage[q])
					}
				}
			}
		}
	}
}

func TestCircleCoverage(t *testing.T) {
	s := newRecorder(40, 40)
	DrawCircle(s, image.Pt(20, 20), 10, Style{Color: black, Filled: true})
	for _, p := range []image.Point{{20, 20}, {30, 20}, {20, 10}, {25, 25}} {
		if cov := s.coverage[p]; cov != 1 {
			t.Errorf("pixel %v: coverage %g, want 1", p, cov)
		}
	}
	for _, p := range []image.Point{{31, 20}, {28, 28}, {10, 9}} {
		if cov := s.coverage[p]; cov != 0 {
			t.Errorf("pixel %v: coverage %g, want 0", p, cov)
		}
	}

	s = newRecorder(40, 40)
	DrawCircle(s, image.Pt(20, 20), 10, Style{Color: black, Width: 1})
	if cov := s.coverage[image.Pt(30, 20)]; cov != 1 {
		t.Errorf("ring pixel: coverage %g, want 1", cov)
	}
	if _, ok := s.writes[image.Pt(20, 20)]; ok {
		t.Error("hairline circle wrote the center pixel")
	}
}

// A thick outline whose inner radius vanishes is the same as a filled
// circle of the outer radius.
func TestCircleThickEqualsFilled(t *testing.T) {
	for _, tc := range []struct{ r, w int }{{2, 4}, {3, 8}, {0, 2}, {5, 11}} {
		thick := newRecorder(60, 60)
		DrawCircle(thick, image.Pt(30, 30), tc.r, Style{Color: black, Width: tc.w})
		filled := newRecorder(60, 60)
		DrawCircle(filled, image.Pt(30, 30), tc.r+tc.w/2, Style{Color: black, Filled: true})

		if len(thick.coverage) != len(filled.coverage) {
			t.Errorf("r=%d w=%d: %d pixels vs %d", tc.r, tc.w, len(thick.coverage), len(filled.coverage))
		}
		for p, cov := range filled.coverage {
			if thick.coverage[p] != cov {
				t.Errorf("r=%d w=%d: pixel %v has %g, want %g", tc.r, tc.w, p, thick.coverage[p], cov)
			}
		}
	}
}

func TestAnnulusHole(t *testing.T) {
	s := newRecorder(60, 60)
	DrawCircle(s, image.Pt(30, 30), 15, Style{Color: black, Width: 6})

	// the ring spans radii 12 to 18
	for p := range s.writes {
		dx, dy := float64(p.X-30), float64(p.Y-30)
		d := math.Hypot(dx, dy)
		if d < 11 || d > 19 {
			t.Errorf("pixel %v at distance %.2f", p, d)
		}
	}
	for _, p := range []image.Point{{45, 30}, {30, 45}, {40, 40}, {20, 20}} {
		if cov := s.coverage[p]; cov != 1 {
			t.Errorf("pixel %v: coverage %g, want 1", p, cov)
		}
	}
}

func TestPolygonMatchesRect(t *testing.T) {
	cases := [][2]image.Point{
		{{2, 3}, {10, 8}},
		{{4, 1}, {6, 14}},
		{{3, 3}, {9, 9}},
	}
	for _, c := range cases {
		a, b := c[0], c[1]
		want := newRecorder(16, 16)
		DrawRect(want, a, b, Style{Color: black, Filled: true})

		got := newRecorder(16, 16)
		FillPolygon(got, []image.Point{a, {b.X, a.Y}, b, {a.X, b.Y}}, Style{Color: black})

		if len(got.writes) != len(want.writes) {
			t.Errorf("%v-%v: %d pixels, want %d", a, b, len(got.writes), len(want.writes))
		}
		got.checkSingleWrites(t)
		for p := range want.writes {
			if got.coverage[p] != 1 {
				t.Errorf("%v-%v: pixel %v has coverage %g", a, b, p, got.coverage[p])
			}
		}
	}
}

func TestPolygonPassThroughVertex(t *testing.T) {
	// In the diamond, the left and right vertices are passed through by
	// the outline. Their row must be drawn once.
	s := newRecorder(16, 16)
	FillPolygon(s, []image.Point{{0, 5}, {5, 0}, {10, 5}, {5, 10}}, Style{Color: black})

	s.checkSingleWrites(t)
	for x := 0; x <= 10; x++ {
		if cov := s.coverage[image.Pt(x, 5)]; cov != 1 {
			t.Errorf("pixel (%d,5): coverage %g", x, cov)
		}
	}
	for x := range 16 {
		if _, ok := s.writes[image.Pt(x, 0)]; ok {
			t.Errorf("apex row: pixel (%d,0) written", x)
		}
	}
}

func TestPolygonDegenerate(t *testing.T) {
	s := newRecorder(16, 16)
	FillPolygon(s, []image.Point{{2, 4}, {9, 4}, {5, 4}}, Style{Color: black, Width: 5})
	if len(s.writes) != 8 {
		t.Errorf("got %d pixels, want 8", len(s.writes))
	}
	for x := 2; x <= 9; x++ {
		if s.coverage[image.Pt(x, 4)] != 1 {
			t.Errorf("pixel (%d,4) not covered", x)
		}
	}

	s = newRecorder(16, 16)
	FillPolygon(s, []image.Point{{7, 7}}, Style{Color: black})
	if len(s.writes) != 1 {
		t.Errorf("single vertex: got %d pixels, want 1", len(s.writes))
	}
}

func TestPolygonTriangle(t *testing.T) {
	s := newRecorder(24, 24)
	FillPolygon(s, []image.Point{{10, 0}, {20, 20}, {0, 20}}, Style{Color: black})

	if s.coverage[image.Pt(10, 15)] != 1 {
		t.Error("interior pixel not covered")
	}
	for p, cov := range s.coverage {
		if cov <= 0 || cov > 1+1e-9 {
			t.Errorf("pixel %v: coverage %g", p, cov)
		}
		if p.Y > 20 || p.X > 21 || p.X < -1 {
			t.Errorf("pixel %v outside of the triangle", p)
		}
	}
	if _, ok := s.writes[image.Pt(0, 0)]; ok {
		t.Error("corner pixel written")
	}
}

// TestPolygonSteps fills shapes whose outline runs along a sweep line
// between two edges, and compares them with the union of rectangles.
func TestPolygonSteps(t *testing.T) {
	cases := []struct {
		name     string
		vertices []image.Point
		rects    [][2]image.Point
	}{
		{
			name:     "L",
			vertices: []image.Point{{0, 0}, {10, 0}, {10, 5}, {20, 5}, {20, 10}, {0, 10}},
			rects:    [][2]image.Point{{{0, 0}, {10, 10}}, {{10, 5}, {20, 10}}},
		},
		{
			name:     "L reversed",
			vertices: []image.Point{{0, 10}, {20, 10}, {20, 5}, {10, 5}, {10, 0}, {0, 0}},
			rects:    [][2]image.Point{{{0, 0}, {10, 10}}, {{10, 5}, {20, 10}}},
		},
		{
			name:     "L upright",
			vertices: []image.Point{{0, 0}, {0, 10}, {5, 10}, {5, 20}, {10, 20}, {10, 0}},
			rects:    [][2]image.Point{{{0, 0}, {10, 10}}, {{5, 10}, {10, 20}}},
		},
		{
			name:     "notch",
			vertices: []image.Point{{0, 0}, {3, 0}, {3, 5}, {6, 5}, {6, 0}, {9, 0}, {9, 9}, {0, 9}},
			rects:    [][2]image.Point{{{0, 0}, {3, 9}}, {{6, 0}, {9, 9}}, {{3, 5}, {6, 9}}},
		},
		{
			name:     "off surface",
			vertices: []image.Point{{-1000, 2}, {5, 2}, {5, 6}, {-1000, 6}},
			rects:    [][2]image.Point{{{-1000, 2}, {5, 6}}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := newRecorder(24, 24)
			for _, r := range tc.rects {
				DrawRect(want, r[0], r[1], Style{Color: black, Filled: true})
			}

			got := newRecorder(24, 24)
			FillPolygon(got, tc.vertices, Style{Color: black})

			got.checkSingleWrites(t)
			for p := range want.writes {
				if got.coverage[p] != 1 {
					t.Errorf("pixel %v has coverage %g", p, got.coverage[p])
				}
			}
			for p := range got.writes {
				if _, ok := want.writes[p]; !ok {
					t.Errorf("pixel %v outside of the shape", p)
				}
			}
		})
	}
}

func TestPolygonize(t *testing.T) {
	cases := []struct {
		name     string
		vertices []image.Point
		width    int
		want     []image.Point
	}{
		{
			name:     "straight",
			vertices: []image.Point{{0, 0}, {10, 0}},
			width:    4,
			want:     []image.Point{{0, 2}, {10, 2}, {10, -2}, {0, -2}},
		},
		{
			name:     "odd width",
			vertices: []image.Point{{0, 0}, {10, 0}},
			width:    3,
			want:     []image.Point{{0, 2}, {10, 2}, {10, -1}, {0, -1}},
		},
		{
			name:     "odd width shifted",
			vertices: []image.Point{{0, 10}, {10, 10}},
			width:    3,
			want:     []image.Point{{0, 12}, {10, 12}, {10, 9}, {0, 9}},
		},
		{
			name:     "duplicates",
			vertices: []image.Point{{0, 0}, {0, 0}, {10, 0}, {10, 0}},
			width:    4,
			want:     []image.Point{{0, 2}, {10, 2}, {10, -2}, {0, -2}},
		},
		{
			name:     "corner",
			vertices: []image.Point{{0, 0}, {10, 0}, {10, 10}},
			width:    2,
			want:     []image.Point{{0, 1}, {9, 1}, {9, 10}, {11, 10}, {11, -1}, {0, -1}},
		},
		{
			name:     "collinear",
			vertices: []image.Point{{0, 0}, {5, 0}, {10, 0}},
			width:    2,
			want:     []image.Point{{0, 1}, {5, 1}, {10, 1}, {10, -1}, {5, -1}, {0, -1}},
		},
		{
			name:     "single",
			vertices: []image.Point{{3, 3}, {3, 3}},
			width:    2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Polygonize(tc.vertices, tc.width)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("got %v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func TestPath(t *testing.T) {
	vertices := []image.Point{{2, 2}, {12, 2}, {12, 12}}

	s := newRecorder(16, 16)
	DrawPath(s, vertices, Style{Color: black, Width: 1})
	if len(s.writes) != 21 {
		t.Errorf("hairline path: got %d pixels, want 21", len(s.writes))
	}

	wide := newRecorder(16, 16)
	DrawPath(wide, vertices, Style{Color: black, Width: 3})
	want := newRecorder(16, 16)
	FillPolygon(want, Polygonize(vertices, 3), Style{Color: black})
	if len(wide.coverage) != len(want.coverage) {
		t.Errorf("wide path: got %d pixels, want %d", len(wide.coverage), len(want.coverage))
	}
	for p, cov := range want.coverage {
		if wide.coverage[p] != cov {
			t.Errorf("wide path: pixel %v has %g, want %g", p, wide.coverage[p], cov)
		}
	}
}

func TestBlit(t *testing.T) {
	rgb := []byte{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}
	s := newRecorder(3, 3)
	BlitBitmap(s, image.Pt(-1, 2), 2, 2, rgb)

	if len(s.writes) != 1 {
		t.Fatalf("got %d pixels, want 1", len(s.writes))
	}
	if c := s.last[image.Pt(0, 2)]; c != RGB(4, 5, 6) {
		t.Errorf("got %v, want %v", c, RGB(4, 5, 6))
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{R: 255, G: 0, B: 255, A: 0.5}.RGBA()
	if a != 32768 || r != 32768 || g != 0 || b != 32768 {
		t.Errorf("got %d %d %d %d", r, g, b, a)
	}
	if _, _, _, a := (Color{A: 2}).RGBA(); a != 0xffff {
		t.Errorf("alpha not clamped: %d", a)
	}
}

// overrider implements LineDrawer and counts the calls.
type overrider struct {
	*recorder
	lines int
}

func (o *overrider) DrawLine(from, to image.Point, style Style) {
	o.lines++
}

func TestDispatch(t *testing.T) {
	o := &overrider{recorder: newRecorder(16, 16)}
	DrawLine(o, image.Pt(0, 0), image.Pt(5, 5), Style{Color: black, Width: 1})
	DrawRect(o, image.Pt(1, 1), image.Pt(5, 5), Style{Color: black, Width: 2})
	if o.lines != 5 {
		t.Errorf("got %d calls to DrawLine, want 5", o.lines)
	}
	if len(o.writes) != 0 {
		t.Errorf("generic line code wrote %d pixels", len(o.writes))
	}
}
