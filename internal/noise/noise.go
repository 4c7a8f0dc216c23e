// Package noise generates deterministic lattice noise for synthetic terrain.
package noise

import (
	"math"

	"weird3d/internal/mat4"
)

// perm is Ken Perlin's reference permutation of 0..255. It is compiled in so
// that every process sees the same field.
var perm = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Period is the distance after which the lattice repeats along each axis.
const Period = len(perm)

// MaxOctaves bounds the octave count accepted by Fractal2D.
const MaxOctaves = 16

// NoiseAt returns the lattice value at (x, y), in [0, 1]. It depends only on
// its arguments.
func NoiseAt[T mat4.Float](x, y int) T {
	h := perm[(int(perm[x&255])+y&255)&255]
	return T(h) / 255
}

// SmoothInterpolate interpolates between a and b along a half cosine, so the
// slope is zero at both ends and the interpolated field has continuous
// derivatives across lattice cells. t=0 yields a exactly.
func SmoothInterpolate[T mat4.Float](a, b, t T) T {
	f := T((1 - math.Cos(float64(t)*math.Pi)) * 0.5)
	return a*(1-f) + b*f
}

// Perlin2D evaluates the continuous field at (x, y) by interpolating the four
// surrounding lattice values, first along x and then along y. At integer
// coordinates it equals [NoiseAt].
func Perlin2D[T mat4.Float](x, y T) T {
	fx, fy := math.Floor(float64(x)), math.Floor(float64(y))
	ix, iy := int(fx), int(fy)
	tx, ty := x-T(fx), y-T(fy)

	a := NoiseAt[T](ix, iy)
	b := NoiseAt[T](ix+1, iy)
	c := NoiseAt[T](ix, iy+1)
	d := NoiseAt[T](ix+1, iy+1)

	top := SmoothInterpolate(a, b, tx)
	bottom := SmoothInterpolate(c, d, tx)
	return SmoothInterpolate(top, bottom, ty)
}

// Fractal2D sums octaves layers of [Perlin2D]. The first octave samples the
// field at 1/2^(octaves-1) of the input frequency with weight 1/2, and each
// following octave doubles the frequency and halves the weight. The sum is
// rescaled to [0, 1]. octaves is clamped to [1, MaxOctaves].
func Fractal2D[T mat4.Float](x, y T, octaves int) T {
	octaves = min(max(octaves, 1), MaxOctaves)
	var sum, total T
	for i := range octaves {
		scale := T(int(1) << (octaves - i - 1))
		w := 1 / T(int(2)<<i)
		sum += Perlin2D(x/scale, y/scale) * w
		total += w
	}
	return sum / total
}
