// Package mat4 provides 4×4 homogeneous transforms and the 3- and 4-component
// vectors they act on. It is the math half of weird3d's fixed-function
// pipeline: it builds and composes matrices, constructs projection and view
// matrices, and transforms points and directions.
//
// # Layout
//
// A [Matrix] stores 16 scalars in row-major order. The element in row r and
// column c lives at index r*4+c. Vectors are columns and are transformed as
// M·v, so the translation of an affine transform occupies indices 3, 7, and
// 11.
//
// # Composition
//
// Functions either set a matrix outright ([Identity], [Zero], [Perspective],
// [LookAt], [Ortho]) or operate on one ([Matrix.Translate], [Matrix.Scale],
// [Matrix.RotateAA], [Matrix.RotateQuat], [Matrix.RotateEA],
// [Matrix.LookAt]). Every operating method post-multiplies:
//
//	m = m · X
//
// The transform composed last is the one applied to a vertex first. A
// sequence such as
//
//	m.Translate(5, 0, 0)
//	m.RotateEA(0, 45, 0)
//
// rotates the vertex about its own origin and then moves it, which makes
// nested push/transform/pop blocks relative to their parent.
//
// # Precision
//
// All types are generic over [Float], so float32 and float64 pipelines can
// coexist in one program.
package mat4
