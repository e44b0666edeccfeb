package testcases

import "image"

var blitCases = []TestCase{
	{
		Name:       "gradient",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			gradient(image.Pt(8, 8), 48, 48),
		},
	},
	{
		Name:       "clipped",
		Width:      64,
		Height:     64,
		Background: grey,
		Ops: []Operation{
			gradient(image.Pt(-16, -16), 40, 40),
			gradient(image.Pt(40, 30), 40, 40),
			gradient(image.Pt(100, 100), 10, 10),
		},
	},
	{
		Name:       "short_buffer",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Image{Pos: image.Pt(4, 4), Width: 32, Height: 32, RGB: gradient(image.Point{}, 32, 10).RGB},
		},
	},
	{
		Name:       "overdraw",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			gradient(image.Pt(4, 4), 56, 56),
			Circle{image.Pt(32, 32), 20, stroke(black, 4)},
			Line{image.Pt(4, 60), image.Pt(60, 4), hairline(white)},
		},
	},
}

// gradient returns an image operation showing a red/green gradient with a
// blue checkerboard.
func gradient(pos image.Point, width, height int) Image {
	rgb := make([]byte, 3*width*height)
	for y := range height {
		for x := range width {
			i := 3 * (y*width + x)
			rgb[i] = uint8(255 * x / max(width-1, 1))
			rgb[i+1] = uint8(255 * y / max(height-1, 1))
			if (x/8+y/8)%2 == 0 {
				rgb[i+2] = 200
			}
		}
	}
	return Image{Pos: pos, Width: width, Height: height, RGB: rgb}
}
