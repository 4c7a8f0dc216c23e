package mat4

import (
	"fmt"
	"math"
)

// Vec3 is a point or a direction. Which one it is depends on the transform
// applied to it: [Matrix.TransformPoint] treats it as w=1,
// [Matrix.TransformDirection] as w=0.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vec4 is a homogeneous vector with an explicit w.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// V3 returns the vector ⟨x, y, z⟩.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// V4 returns the vector ⟨x, y, z, w⟩.
func V4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("⟨%g, %g, %g, %g⟩", v.X, v.Y, v.Z, v.W)
}

// Homogeneous returns v extended with the given w.
func (v Vec3[T]) Homogeneous(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// XYZ drops the w component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3[T]) Mul(f T) Vec3[T] {
	return Vec3[T]{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3[T]) Div(f T) Vec3[T] {
	return Vec3[T]{v.X / f, v.Y / f, v.Z / f}
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3[T]) Hypot() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec3[T]) Hypot2() T {
	return v.Dot(v)
}

// Distance returns the euclidean distance between two points.
func (v Vec3[T]) Distance(o Vec3[T]) T {
	return v.Sub(o).Hypot()
}

// Normalize returns a unit vector with the same direction as v. Unlike
// dividing by [Vec3.Hypot], a zero vector is returned unchanged instead of
// turning into NaNs.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Hypot()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// NormalizeSelf normalizes v in place. A zero vector is left unchanged.
func (v *Vec3[T]) NormalizeSelf() {
	*v = v.Normalize()
}

// Lerp linearly interpolates between two vectors.
func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] {
	return v.Add(o.Sub(v).Mul(t))
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3[T]) IsNaN() bool {
	return math.IsNaN(float64(v.X)) || math.IsNaN(float64(v.Y)) || math.IsNaN(float64(v.Z))
}

// IsInf reports whether at least one component is infinite.
func (v Vec3[T]) IsInf() bool {
	return math.IsInf(float64(v.X), 0) || math.IsInf(float64(v.Y), 0) || math.IsInf(float64(v.Z), 0)
}

// Cross returns a × b.
func Cross[T Float](a, b Vec3[T]) Vec3[T] { return a.Cross(b) }

// Dot returns a · b.
func Dot[T Float](a, b Vec3[T]) T { return a.Dot(b) }

// Distance returns the euclidean distance between a and b.
func Distance[T Float](a, b Vec3[T]) T { return a.Distance(b) }
