package mat4

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// mathgl is the reference the projection and rotation tests compare against.
// It stores matrices column-major, so conversion in either direction is a
// transpose.

func toMgl64(m Matrix[float64]) mgl64.Mat4 {
	return mgl64.Mat4(m.Transpose())
}

func fromMgl64(m mgl64.Mat4) Matrix[float64] {
	return Matrix[float64](m).Transpose()
}

func toMgl32(m Matrix[float32]) mgl32.Mat4 {
	return mgl32.Mat4(m.Transpose())
}

func fromMgl32(m mgl32.Mat4) Matrix[float32] {
	return Matrix[float32](m).Transpose()
}
