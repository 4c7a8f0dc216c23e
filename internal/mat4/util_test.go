package mat4

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// sample is an arbitrary non-singular, non-affine matrix.
func sample[T Float]() Matrix[T] {
	return Matrix[T]{
		0.5, 1.25, -2, 3,
		4, -0.75, 6, 0.125,
		-1, 2, 9, -4,
		0.25, -0.5, 1.5, 2,
	}
}
