package pipeline

import (
	"errors"
	"math"

	"weird3d/internal/mat4"
)

// DivideEpsilon is the smallest |w| FinalPoint will divide by.
const DivideEpsilon = 1e-6

var ErrDegenerateViewport = errors.New("pipeline: viewport has zero width or height")

// Viewport maps the clip-space rectangle (Left, Top)-(Right, Bottom) onto a
// Width × Height pixel rectangle whose origin is at (Left, Top).
type Viewport[T mat4.Float] struct {
	Left, Top, Right, Bottom T
	Width, Height            T
}

func identityViewport[T mat4.Float]() Viewport[T] {
	return Viewport[T]{Left: 0, Top: 0, Right: 1, Bottom: 1, Width: 1, Height: 1}
}

// Map converts normalized device coordinates to pixels.
func (v Viewport[T]) Map(x, y T) (T, T) {
	return (x - v.Left) * v.Width / (v.Right - v.Left),
		(y - v.Top) * v.Height / (v.Bottom - v.Top)
}

// SetViewport installs the clip-space to pixel-space mapping used by
// FinalPoint. Passing top=1, bottom=-1 gives a y-down pixel space for a y-up
// scene.
func (c *Context[T]) SetViewport(left, top, right, bottom, pixW, pixH T) error {
	if left == right || top == bottom {
		return ErrDegenerateViewport
	}
	c.vp = Viewport[T]{
		Left: left, Top: top, Right: right, Bottom: bottom,
		Width: pixW, Height: pixH,
	}
	return nil
}

// Viewport returns the active viewport.
func (c *Context[T]) Viewport() Viewport[T] { return c.vp }

// FinalPoint takes p through the model-view top, the projection top, the
// perspective divide, and the viewport. The returned X and Y are pixel
// coordinates and Z is the normalized depth z/w.
//
// If the transformed w is within DivideEpsilon of zero, or the result is not
// finite, ok is false and the point must not be drawn.
func (c *Context[T]) FinalPoint(p mat4.Vec3[T]) (out mat4.Vec3[T], ok bool) {
	k := c.ModelViewTop().TransformHomogeneous(p.Homogeneous(1))
	k = c.ProjectionTop().TransformHomogeneous(k)
	if math.Abs(float64(k.W)) < DivideEpsilon {
		return mat4.Vec3[T]{}, false
	}
	x, y := c.vp.Map(k.X/k.W, k.Y/k.W)
	out = mat4.Vec3[T]{X: x, Y: y, Z: k.Z / k.W}
	if out.IsNaN() || out.IsInf() {
		return mat4.Vec3[T]{}, false
	}
	return out, true
}
