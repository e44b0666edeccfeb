package testcases

import (
	"image"
	"math"
)

var polygonCases = []TestCase{
	{
		Name:       "triangle",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polygon{[]image.Point{{10, 50}, {32, 10}, {54, 50}}, filled(black)},
		},
	},
	{
		Name:       "star",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polygon{fivePointStar(32, 32, 25), filled(blue)},
		},
	},
	{
		Name:       "rectangle",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polygon{rectangle(10, 10, 44, 44), filled(green)},
			Polygon{rectangle(50, 4, 60, 60), filled(red)},
		},
	},
	{
		Name:       "diamond",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polygon{[]image.Point{{32, 4}, {60, 32}, {32, 60}, {4, 32}}, filled(orange)},
		},
	},
	{
		Name:       "concave",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polygon{[]image.Point{{6, 6}, {58, 6}, {58, 58}, {32, 20}, {6, 58}}, filled(blue)},
		},
	},
	{
		Name:       "thin",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polygon{[]image.Point{{2, 10}, {62, 14}, {2, 12}}, filled(black)},
			Polygon{[]image.Point{{20, 2}, {24, 62}, {22, 2}}, filled(black)},
			Polygon{[]image.Point{{30, 30}, {50, 30}, {40, 30}}, filled(red)},
		},
	},
	{
		Name:       "translucent",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polygon{regularPolygon(24, 24, 20, 6), filled(translucent(red, 0.5))},
			Polygon{regularPolygon(40, 40, 20, 7), filled(translucent(blue, 0.5))},
		},
	},
	{
		Name:       "clipped",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polygon{[]image.Point{{-30, 10}, {40, -20}, {90, 70}, {10, 90}}, filled(green)},
		},
	},
}

// fivePointStar returns the vertices of a five-pointed, self-intersecting
// star.
func fivePointStar(cx, cy, r float64) []image.Point {
	pts := regularPolygon(cx, cy, r, 5)

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	star := make([]image.Point, len(order))
	for i, j := range order {
		star[i] = pts[j]
	}
	return star
}

// regularPolygon returns the n corners of a regular polygon, starting at
// the top.
func regularPolygon(cx, cy, r float64, n int) []image.Point {
	pts := make([]image.Point, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = image.Pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}
	return pts
}

// rectangle returns the corners of a rectangle.
func rectangle(x1, y1, x2, y2 int) []image.Point {
	return []image.Point{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}
}
