package testcases

import (
	"image"
	"math"
)

var pathCases = []TestCase{
	{
		Name:       "hairline",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polyline{zigzag(6, 32, 58, 20, 6), hairline(black)},
		},
	},
	{
		Name:       "corner",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polyline{[]image.Point{{10, 54}, {32, 10}, {54, 54}}, stroke(blue, 6)},
		},
	},
	{
		Name:       "right_angle",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polyline{[]image.Point{{10, 10}, {50, 10}, {50, 50}, {10, 50}}, stroke(red, 5)},
		},
	},
	{
		Name:       "zigzag_thick",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polyline{zigzag(8, 32, 56, 12, 5), stroke(green, 4)},
		},
	},
	{
		Name:       "collinear",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polyline{[]image.Point{{6, 20}, {20, 20}, {20, 20}, {40, 20}, {58, 20}}, stroke(black, 6)},
			Polyline{[]image.Point{{6, 40}, {32, 50}, {58, 60}}, stroke(black, 3)},
		},
	},
	{
		Name:       "sine",
		Width:      128,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polyline{sine(4, 32, 124, 24, 2, 40), stroke(translucent(blue, 0.7), 3)},
			Polyline{sine(4, 32, 124, 24, 2, 40), hairline(black)},
		},
	},
}

// zigzag returns a polyline from (x1, cy) to (x2, cy) with n teeth of the
// given amplitude.
func zigzag(x1, cy, x2, amplitude, n int) []image.Point {
	pts := make([]image.Point, 0, 2*n+1)
	step := float64(x2-x1) / float64(2*n)
	for i := 0; i <= 2*n; i++ {
		y := cy - amplitude
		if i%2 == 1 {
			y = cy + amplitude
		}
		pts = append(pts, image.Pt(x1+int(math.Round(float64(i)*step)), y))
	}
	return pts
}

// sine returns a polyline approximating a sine wave.
func sine(x1, cy, x2 int, amplitude, periods float64, steps int) []image.Point {
	pts := make([]image.Point, steps+1)
	for i := range steps + 1 {
		t := float64(i) / float64(steps)
		x := float64(x1) + t*float64(x2-x1)
		y := float64(cy) - amplitude*math.Sin(t*periods*2*math.Pi)
		pts[i] = image.Pt(int(math.Round(x)), int(math.Round(y)))
	}
	return pts
}
