// Package plot holds the draggable point model: hit testing, the drag
// session that moves points in response to pointer events, and the painter
// that redraws the grid and points onto a render surface.
package plot

import "math"

// Point is a draggable marker in surface pixel coordinates.
type Point struct {
	X, Y float64

	// Selected is set on the last point hit by a pointer-down and cleared on
	// every other point. It outlives the drag: pointer-up leaves it alone.
	Selected bool
}

// HitTest reports whether (x, y) lies inside or on the circle of the given
// radius centered at p.
func HitTest(p Point, x, y, radius float64) bool {
	dx := x - p.X
	dy := y - p.Y
	return math.Sqrt(dx*dx+dy*dy) <= radius
}

// Clamp limits (x, y) to the rectangle [0, width] x [0, height].
func Clamp(x, y, width, height float64) (float64, float64) {
	return math.Max(0, math.Min(x, width)), math.Max(0, math.Min(y, height))
}
