package rawdraw

import (
	"math"

	"weird3d/internal/mat4"
	"weird3d/internal/pipeline"
)

// Project takes p through c and rounds the result to a pixel. ok is false
// when FinalPoint rejects the vertex or the pixel does not fit in an int.
func Project[T mat4.Float](c *pipeline.Context[T], p mat4.Vec3[T]) (Point, bool) {
	s, ok := c.FinalPoint(p)
	if !ok {
		return Point{}, false
	}
	x, y := math.Round(float64(s.X)), math.Round(float64(s.Y))
	if math.Abs(x) > math.MaxInt32 || math.Abs(y) > math.MaxInt32 {
		return Point{}, false
	}
	return Point{int(x), int(y)}, true
}

// Pixel3 draws the projection of p. It reports whether anything was drawn.
func Pixel3[T mat4.Float](d Drawer, c *pipeline.Context[T], p mat4.Vec3[T]) bool {
	s, ok := Project(c, p)
	if ok {
		d.Pixel(s.X, s.Y)
	}
	return ok
}

// Segment3 draws the projection of the segment a-b, or nothing if either end
// is undrawable.
func Segment3[T mat4.Float](d Drawer, c *pipeline.Context[T], a, b mat4.Vec3[T]) bool {
	sa, ok := Project(c, a)
	if !ok {
		return false
	}
	sb, ok := Project(c, b)
	if !ok {
		return false
	}
	d.Segment(sa.X, sa.Y, sb.X, sb.Y)
	return true
}

// Strip3 draws the polyline through pts. Segments touching an undrawable
// vertex are skipped; the rest are drawn. It returns the number of segments
// drawn.
func Strip3[T mat4.Float](d Drawer, c *pipeline.Context[T], pts []mat4.Vec3[T]) int {
	n := 0
	var prev Point
	havePrev := false
	for _, p := range pts {
		s, ok := Project(c, p)
		if ok && havePrev {
			d.Segment(prev.X, prev.Y, s.X, s.Y)
			n++
		}
		prev, havePrev = s, ok
	}
	return n
}

// Poly3 draws the projected polygon pts, or nothing if any vertex is
// undrawable.
func Poly3[T mat4.Float](d Drawer, c *pipeline.Context[T], pts []mat4.Vec3[T]) bool {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		s, ok := Project(c, p)
		if !ok {
			return false
		}
		out = append(out, s)
	}
	d.Poly(out)
	return true
}
