package mat4

import (
	"errors"
	"math"
)

var (
	ErrDepthRange     = errors.New("mat4: depth range requires 0 < near < far")
	ErrFieldOfView    = errors.New("mat4: field of view must be in (0, 180) degrees")
	ErrAspect         = errors.New("mat4: aspect ratio must be positive and finite")
	ErrDegenerateView = errors.New("mat4: degenerate view basis")
)

// parallelEpsilon is the smallest |forward × up| accepted by LookAt, for unit
// forward and up.
const parallelEpsilon = 1e-6

// Perspective returns a perspective projection for a frustum with a vertical
// field of view of fovYDeg degrees. The layout matches gluPerspective: view
// space looks down -Z, and depths zNear and zFar map to -1 and 1 after the
// perspective divide.
//
// For fovYDeg=60, aspect=1, zNear=0.1, zFar=100 the depth entries are
//
//	m[10] = (zFar+zNear)/(zNear-zFar) ≈ -1.002002
//	m[11] = 2·zFar·zNear/(zNear-zFar) ≈ -0.200200
//	m[14] = -1
func Perspective[T Float](fovYDeg, aspect, zNear, zFar T) (Matrix[T], error) {
	if !(zNear > 0 && zNear < zFar) || !finite(zFar) {
		return Matrix[T]{}, ErrDepthRange
	}
	if !(fovYDeg > 0 && fovYDeg < 180) {
		return Matrix[T]{}, ErrFieldOfView
	}
	if !(aspect > 0) || !finite(aspect) {
		return Matrix[T]{}, ErrAspect
	}
	f := 1 / math.Tan(Radians(float64(fovYDeg))/2)
	n, fr := float64(zNear), float64(zFar)
	return Matrix[T]{
		T(f / float64(aspect)), 0, 0, 0,
		0, T(f), 0, 0,
		0, 0, T((fr + n) / (n - fr)), T(2 * fr * n / (n - fr)),
		0, 0, -1, 0,
	}, nil
}

// Ortho returns an orthographic projection mapping the box
// [left, right] × [bottom, top] × [-near, -far] to the unit cube, as glOrtho
// does.
func Ortho[T Float](left, right, bottom, top, near, far T) (Matrix[T], error) {
	if near == far || !finite(near, far) {
		return Matrix[T]{}, ErrDepthRange
	}
	if left == right || bottom == top || !finite(left, right, bottom, top) {
		return Matrix[T]{}, ErrDegenerateView
	}
	return Matrix[T]{
		2 / (right - left), 0, 0, -(right + left) / (right - left),
		0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom),
		0, 0, -2 / (far - near), -(far + near) / (far - near),
		0, 0, 0, 1,
	}, nil
}

// LookAt returns a view matrix for a camera at eye looking towards at, with up
// as the vertical hint. The layout matches gluLookAt: the camera looks down
// -Z in view space.
//
// It returns [ErrDegenerateView] if eye and at coincide, if up is parallel to
// the viewing direction, or if any input is not finite.
func LookAt[T Float](eye, at, up Vec3[T]) (Matrix[T], error) {
	if !finite(eye.X, eye.Y, eye.Z, at.X, at.Y, at.Z, up.X, up.Y, up.Z) {
		return Matrix[T]{}, ErrDegenerateView
	}
	fwd := at.Sub(eye)
	if fwd.Hypot2() == 0 {
		return Matrix[T]{}, ErrDegenerateView
	}
	fwd = fwd.Normalize()
	side := fwd.Cross(up.Normalize())
	if float64(side.Hypot()) < parallelEpsilon {
		return Matrix[T]{}, ErrDegenerateView
	}
	side = side.Normalize()
	u := side.Cross(fwd)
	return Matrix[T]{
		side.X, side.Y, side.Z, -side.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-fwd.X, -fwd.Y, -fwd.Z, fwd.Dot(eye),
		0, 0, 0, 1,
	}, nil
}

// LookAt composes the view matrix of [LookAt] onto m. On error m is left
// unchanged.
func (m *Matrix[T]) LookAt(eye, at, up Vec3[T]) error {
	v, err := LookAt(eye, at, up)
	if err != nil {
		return err
	}
	*m = m.Mul(v)
	return nil
}
