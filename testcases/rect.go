package testcases

import "image"

var rectCases = []TestCase{
	{
		Name:       "filled",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Rect{image.Pt(4, 4), image.Pt(30, 20), filled(blue)},
			Rect{image.Pt(59, 59), image.Pt(34, 24), filled(red)},
			Rect{image.Pt(20, 12), image.Pt(44, 50), filled(translucent(green, 0.5))},
		},
	},
	{
		Name:       "outline",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Rect{image.Pt(4, 4), image.Pt(59, 59), hairline(black)},
			Rect{image.Pt(10, 10), image.Pt(53, 53), stroke(blue, 3)},
			Rect{image.Pt(20, 20), image.Pt(43, 43), hairline(translucent(red, 0.5))},
			Rect{image.Pt(31, 31), image.Pt(32, 32), hairline(black)},
		},
	},
	{
		Name:       "clipped",
		Width:      64,
		Height:     64,
		Background: grey,
		Ops: []Operation{
			Rect{image.Pt(-10, -10), image.Pt(20, 20), filled(orange)},
			Rect{image.Pt(50, 40), image.Pt(90, 90), filled(translucent(blue, 0.7))},
			Rect{image.Pt(-5, 30), image.Pt(70, 34), hairline(white)},
		},
	},
}
