package testcases

import (
	"image"
	"math"

	"seehuhn.de/go/raster"
)

// The chart scenes combine all drawing operations, in the way a plotting
// library uses them.
var chartCases = []TestCase{
	{
		Name:       "bars",
		Width:      160,
		Height:     120,
		Background: white,
		Ops:        barChart(image.Rect(20, 10, 150, 100), []int{30, 55, 80, 45, 90, 20}),
	},
	{
		Name:       "scatter",
		Width:      160,
		Height:     120,
		Background: white,
		Ops:        scatterPlot(image.Rect(20, 10, 150, 100), 40),
	},
	{
		Name:       "line_plot",
		Width:      160,
		Height:     120,
		Background: white,
		Ops:        linePlot(image.Rect(20, 10, 150, 100)),
	},
}

// axes returns a frame with tick marks around the plot area.
func axes(area image.Rectangle) []Operation {
	ops := []Operation{
		Line{image.Pt(area.Min.X, area.Max.Y), image.Pt(area.Max.X, area.Max.Y), hairline(black)},
		Line{image.Pt(area.Min.X, area.Min.Y), image.Pt(area.Min.X, area.Max.Y), hairline(black)},
	}
	for x := area.Min.X; x <= area.Max.X; x += 10 {
		ops = append(ops, Line{image.Pt(x, area.Max.Y), image.Pt(x, area.Max.Y+3), hairline(black)})
		if x > area.Min.X {
			ops = append(ops, Line{image.Pt(x, area.Min.Y), image.Pt(x, area.Max.Y-1), hairline(translucent(grey, 0.3))})
		}
	}
	for y := area.Max.Y; y >= area.Min.Y; y -= 10 {
		ops = append(ops, Line{image.Pt(area.Min.X-3, y), image.Pt(area.Min.X, y), hairline(black)})
	}
	return ops
}

func barChart(area image.Rectangle, values []int) []Operation {
	ops := axes(area)
	colors := []raster.Color{blue, orange, green}
	w := area.Dx() / len(values)
	for i, v := range values {
		x0 := area.Min.X + i*w + 3
		top := area.Max.Y - v*area.Dy()/100
		ops = append(ops,
			Rect{image.Pt(x0, top), image.Pt(x0+w-6, area.Max.Y-1), filled(colors[i%len(colors)])},
			Rect{image.Pt(x0, top), image.Pt(x0+w-6, area.Max.Y-1), hairline(black)},
		)
	}
	return ops
}

func scatterPlot(area image.Rectangle, n int) []Operation {
	ops := axes(area)
	for i := range n {
		// deterministic pseudo-random points
		t := float64(i) / float64(n)
		x := area.Min.X + 5 + int(t*float64(area.Dx()-10))
		y := area.Max.Y - 5 - int((0.5+0.4*math.Sin(7.3*t*t+float64(i)))*float64(area.Dy()-10))
		ops = append(ops,
			Circle{image.Pt(x, y), 3, filled(translucent(red, 0.6))},
			Circle{image.Pt(x, y), 3, hairline(red)},
		)
	}
	return ops
}

func linePlot(area image.Rectangle) []Operation {
	ops := axes(area)
	var upper, lower []image.Point
	for x := area.Min.X + 1; x <= area.Max.X; x += 4 {
		t := float64(x-area.Min.X) / float64(area.Dx())
		y := float64(area.Min.Y) + float64(area.Dy())*(0.5-0.35*math.Sin(2*math.Pi*t))
		upper = append(upper, image.Pt(x, int(math.Round(y-8))))
		lower = append(lower, image.Pt(x, int(math.Round(y+8))))
	}

	// confidence band: upper edge forward, lower edge backward
	band := append([]image.Point{}, upper...)
	for i := len(lower) - 1; i >= 0; i-- {
		band = append(band, lower[i])
	}
	ops = append(ops, Polygon{band, filled(translucent(blue, 0.25))})

	mid := make([]image.Point, len(upper))
	for i := range upper {
		mid[i] = image.Pt(upper[i].X, (upper[i].Y+lower[i].Y)/2)
	}
	ops = append(ops, Polyline{mid, stroke(blue, 3)})
	for i := 0; i < len(mid); i += 4 {
		ops = append(ops, Rect{mid[i].Sub(image.Pt(1, 1)), mid[i].Add(image.Pt(1, 1)), filled(black)})
	}
	return ops
}
