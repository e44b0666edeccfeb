// Package raster draws lines, rectangles, circles, polygons and stroked
// paths onto pixel surfaces.
//
// All drawing functions work with any type implementing the minimal
// [Surface] interface. Surfaces which can draw some shapes more
// efficiently can implement the optional interfaces [LineDrawer],
// [RectDrawer], [CircleDrawer], [PolygonFiller], [PathDrawer] and
// [BitmapBlitter]. The functions [DrawLine], [DrawRect], [DrawCircle],
// [FillPolygon], [DrawPath] and [BlitBitmap] use these methods when they
// are available, and fall back to the generic implementations [Line],
// [Rect], [Circle], [Polygon], [Path] and [Blit] otherwise.
//
// Coordinates are integer pixel positions with the origin in the upper
// left corner, x increasing to the right and y increasing downwards.
// Boundary pixels of slanted and curved shapes are antialiased by passing
// a color with reduced opacity to the surface.
package raster

//go:generate go run ./testcases/export
