// Package rawdraw is the 2D primitive surface that projected geometry is
// drawn onto, plus helpers that take 3D vertices through a pipeline.Context
// before drawing them.
package rawdraw

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Drawer draws 2D primitives in pixel coordinates. Implementations clip to
// their own bounds.
type Drawer interface {
	Pixel(x, y int)
	Segment(x1, y1, x2, y2 int)
	Rectangle(x1, y1, x2, y2 int)
	// Poly draws a filled polygon.
	Poly(pts []Point)
}
