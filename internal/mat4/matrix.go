package mat4

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Float is the set of scalar types a pipeline can run on.
type Float interface {
	~float32 | ~float64
}

var (
	ErrZeroAxis       = errors.New("mat4: rotation axis has zero or non-finite length")
	ErrZeroQuaternion = errors.New("mat4: quaternion has zero or non-finite length")
)

// Matrix is a 4×4 homogeneous transform in row-major order.
type Matrix[T Float] [16]T

// Identity returns the identity matrix.
func Identity[T Float]() Matrix[T] {
	return Matrix[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Zero returns the matrix with all elements set to zero.
func Zero[T Float]() Matrix[T] {
	return Matrix[T]{}
}

// SetIdentity sets m to the identity matrix.
func (m *Matrix[T]) SetIdentity() { *m = Identity[T]() }

// SetZero sets every element of m to zero.
func (m *Matrix[T]) SetZero() { *m = Matrix[T]{} }

// At returns the element in the given row and column.
func (m Matrix[T]) At(row, col int) T { return m[row*4+col] }

// Set sets the element in the given row and column.
func (m *Matrix[T]) Set(row, col int, v T) { m[row*4+col] = v }

// Mul returns m · o. Applying the result to a vector is the same as applying
// o first and m second.
func (m Matrix[T]) Mul(o Matrix[T]) Matrix[T] {
	var out Matrix[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4+0]*o[0*4+c] +
				m[r*4+1]*o[1*4+c] +
				m[r*4+2]*o[2*4+c] +
				m[r*4+3]*o[3*4+c]
		}
	}
	return out
}

// Multiply returns a · b. The result is a fresh value, so it may be assigned
// back to either operand.
func Multiply[T Float](a, b Matrix[T]) Matrix[T] {
	return a.Mul(b)
}

// Translate composes a translation by (x, y, z) onto m.
//
// Equivalent to "m = m · T(x, y, z)".
func (m *Matrix[T]) Translate(x, y, z T) {
	for r := 0; r < 4; r++ {
		m[r*4+3] += m[r*4+0]*x + m[r*4+1]*y + m[r*4+2]*z
	}
}

// Scale composes a non-uniform scale by (x, y, z) onto m.
//
// Equivalent to "m = m · S(x, y, z)".
func (m *Matrix[T]) Scale(x, y, z T) {
	for r := 0; r < 4; r++ {
		m[r*4+0] *= x
		m[r*4+1] *= y
		m[r*4+2] *= z
	}
}

// RotateAA composes a rotation of angleDeg degrees about axis onto m, using
// Rodrigues' formula. The axis does not need to be unit length. A zero-length
// or non-finite axis returns [ErrZeroAxis] and leaves m unchanged.
//
// Positive angles rotate counter-clockwise when looking down the axis
// towards the origin.
func (m *Matrix[T]) RotateAA(angleDeg T, axis Vec3[T]) error {
	l := axis.Hypot()
	if l == 0 || !finite(l) {
		return ErrZeroAxis
	}
	m.rotate(angleDeg, axis.Div(l))
	return nil
}

// rotate composes a rotation about the unit axis k.
func (m *Matrix[T]) rotate(angleDeg T, k Vec3[T]) {
	s64, c64 := math.Sincos(Radians(float64(angleDeg)))
	s, c := T(s64), T(c64)
	t := 1 - c
	x, y, z := k.X, k.Y, k.Z
	r := Matrix[T]{
		c + x*x*t, x*y*t - z*s, x*z*t + y*s, 0,
		x*y*t + z*s, c + y*y*t, y*z*t - x*s, 0,
		x*z*t - y*s, y*z*t + x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}
	*m = m.Mul(r)
}

// RotateQuat composes the rotation described by the quaternion
// qw + qx·i + qy·j + qz·k onto m. The quaternion is normalized first; the zero
// quaternion returns [ErrZeroQuaternion] and leaves m unchanged.
func (m *Matrix[T]) RotateQuat(qw, qx, qy, qz T) error {
	l := T(math.Sqrt(float64(qw*qw + qx*qx + qy*qy + qz*qz)))
	if l == 0 || !finite(l) {
		return ErrZeroQuaternion
	}
	w, x, y, z := qw/l, qx/l, qy/l, qz/l
	r := Matrix[T]{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w), 0,
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w), 0,
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	}
	*m = m.Mul(r)
	return nil
}

// RotateEA composes a rotation from Euler angles in degrees onto m. The
// vertex is rotated about X first, then Y, then Z.
//
// Equivalent to "m = m · Rz · Ry · Rx".
func (m *Matrix[T]) RotateEA(x, y, z T) {
	m.rotate(z, Vec3[T]{0, 0, 1})
	m.rotate(y, Vec3[T]{0, 1, 0})
	m.rotate(x, Vec3[T]{1, 0, 0})
}

// TransposeSelf transposes m in place.
func (m *Matrix[T]) TransposeSelf() {
	for r := 0; r < 4; r++ {
		for c := r + 1; c < 4; c++ {
			m[r*4+c], m[c*4+r] = m[c*4+r], m[r*4+c]
		}
	}
}

// Transpose returns the transpose of m.
func (m Matrix[T]) Transpose() Matrix[T] {
	m.TransposeSelf()
	return m
}

// IsNaN reports whether any element of m is NaN.
func (m Matrix[T]) IsNaN() bool {
	for _, v := range m {
		if math.IsNaN(float64(v)) {
			return true
		}
	}
	return false
}

// IsInf reports whether any element of m is infinite.
func (m Matrix[T]) IsInf() bool {
	for _, v := range m {
		if math.IsInf(float64(v), 0) {
			return true
		}
	}
	return false
}

func finite[T Float](vs ...T) bool {
	for _, v := range vs {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

// String formats m as four rows.
func (m Matrix[T]) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "[ %10.4f %10.4f %10.4f %10.4f ]", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
		if r < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * (math.Pi / 180) }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * (180 / math.Pi) }
