package mat4

// TransformPoint applies m to the point p (w=1) and returns the transformed
// x, y, and z. No perspective divide is performed.
func (m Matrix[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// TransformDirection applies m to the direction v (w=0). The translation of m
// has no effect, which makes it suitable for normals and velocities.
func (m Matrix[T]) TransformDirection(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// TransformHomogeneous applies all of m to k.
func (m Matrix[T]) TransformHomogeneous(k Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: m[0]*k.X + m[1]*k.Y + m[2]*k.Z + m[3]*k.W,
		Y: m[4]*k.X + m[5]*k.Y + m[6]*k.Z + m[7]*k.W,
		Z: m[8]*k.X + m[9]*k.Y + m[10]*k.Z + m[11]*k.W,
		W: m[12]*k.X + m[13]*k.Y + m[14]*k.Z + m[15]*k.W,
	}
}

// TransformRotation applies only the upper-left 3×3 block of m to the x, y,
// and z of k. The translation column and bottom row are ignored and w is
// passed through unchanged.
func (m Matrix[T]) TransformRotation(k Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: m[0]*k.X + m[1]*k.Y + m[2]*k.Z,
		Y: m[4]*k.X + m[5]*k.Y + m[6]*k.Z,
		Z: m[8]*k.X + m[9]*k.Y + m[10]*k.Z,
		W: k.W,
	}
}

// Translation returns the translation component of m.
func (m Matrix[T]) Translation() Vec3[T] {
	return Vec3[T]{m[3], m[7], m[11]}
}
