package testcases

import (
	"image"
	"math"
)

var lineCases = []TestCase{
	{
		Name:       "axis_aligned",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Line{image.Pt(4, 8), image.Pt(59, 8), hairline(black)},
			Line{image.Pt(59, 16), image.Pt(4, 16), hairline(red)},
			Line{image.Pt(8, 24), image.Pt(8, 59), hairline(blue)},
			Line{image.Pt(16, 59), image.Pt(16, 24), hairline(green)},
			Line{image.Pt(24, 30), image.Pt(58, 30), hairline(translucent(black, 0.5))},
			Line{image.Pt(40, 24), image.Pt(40, 58), hairline(translucent(red, 0.3))},
		},
	},
	{
		Name:       "diagonal",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Line{image.Pt(0, 0), image.Pt(63, 63), hairline(black)},
			Line{image.Pt(63, 0), image.Pt(0, 63), hairline(blue)},
		},
	},
	{
		Name:       "fan",
		Width:      64,
		Height:     64,
		Background: white,
		Ops:        fan(32, 32, 30, 24),
	},
	{
		Name:       "clipped",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Line{image.Pt(-100, -40), image.Pt(200, 90), hairline(black)},
			Line{image.Pt(-10, 70), image.Pt(70, -20), hairline(red)},
			Line{image.Pt(30, -500), image.Pt(34, 500), hairline(blue)},
			Line{image.Pt(-20, 40), image.Pt(80, 40), stroke(green, 5)},
		},
	},
	{
		Name:       "wide",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Line{image.Pt(6, 10), image.Pt(58, 10), stroke(black, 3)},
			Line{image.Pt(6, 20), image.Pt(58, 40), stroke(blue, 4)},
			Line{image.Pt(10, 58), image.Pt(30, 24), stroke(red, 6)},
			Line{image.Pt(50, 50), image.Pt(50, 50), stroke(red, 6)},
		},
	},
	{
		Name:       "translucent",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Line{image.Pt(4, 4), image.Pt(60, 40), hairline(translucent(blue, 0.5))},
			Line{image.Pt(4, 40), image.Pt(60, 4), hairline(translucent(red, 0.5))},
			Line{image.Pt(4, 50), image.Pt(60, 56), stroke(translucent(green, 0.4), 5)},
		},
	},
}

// fan returns n hairlines of length r starting at (cx, cy), evenly spread
// over all directions.
func fan(cx, cy, r float64, n int) []Operation {
	ops := make([]Operation, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		to := image.Pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
		ops[i] = Line{image.Pt(int(cx), int(cy)), to, hairline(black)}
	}
	return ops
}
