package clippath

import (
	"math"

	"github.com/gogpu/gg"
)

// Point is a canvas-local position in pixels.
// It is gg's point type so values flow into a drawing context unchanged.
type Point = gg.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return gg.Pt(x, y)
}

// clampPoint limits p to the rectangle [0,width] x [0,height].
func clampPoint(p Point, width, height float64) Point {
	return Point{
		X: math.Min(width, math.Max(0, p.X)),
		Y: math.Min(height, math.Max(0, p.Y)),
	}
}
