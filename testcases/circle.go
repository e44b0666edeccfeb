package testcases

import "image"

var circleCases = []TestCase{
	{
		Name:       "filled",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Circle{image.Pt(32, 32), 25, filled(blue)},
			Circle{image.Pt(20, 20), 8, filled(translucent(red, 0.6))},
		},
	},
	{
		Name:       "hairline",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Circle{image.Pt(32, 32), 28, hairline(black)},
			Circle{image.Pt(32, 32), 17, hairline(red)},
			Circle{image.Pt(32, 32), 5, hairline(blue)},
			Circle{image.Pt(32, 32), 1, hairline(black)},
			Circle{image.Pt(32, 32), 0, hairline(black)},
		},
	},
	{
		Name:       "annulus",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Circle{image.Pt(32, 32), 24, stroke(green, 8)},
			Circle{image.Pt(32, 32), 10, stroke(translucent(blue, 0.5), 5)},
		},
	},
	{
		Name:       "thick_small",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Circle{image.Pt(16, 16), 3, stroke(black, 8)},
			Circle{image.Pt(48, 16), 4, stroke(black, 8)},
			Circle{image.Pt(16, 48), 5, stroke(black, 8)},
			Circle{image.Pt(48, 48), 6, stroke(black, 3)},
		},
	},
	{
		Name:       "clipped",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Circle{image.Pt(0, 0), 30, filled(orange)},
			Circle{image.Pt(64, 64), 30, stroke(blue, 6)},
			Circle{image.Pt(70, 10), 12, hairline(black)},
		},
	},
	{
		Name:       "concentric",
		Width:      128,
		Height:     128,
		Background: white,
		Ops:        concentric(64, 64, 60, 4),
	},
}

// concentric returns hairline circles around (cx, cy) with radii up to
// rMax, step pixels apart.
func concentric(cx, cy, rMax, step int) []Operation {
	var ops []Operation
	for r := rMax; r > 0; r -= step {
		ops = append(ops, Circle{image.Pt(cx, cy), r, hairline(black)})
	}
	return ops
}
