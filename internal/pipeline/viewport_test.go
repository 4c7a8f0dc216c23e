package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"weird3d/internal/mat4"
)

func TestIdentityViewport(t *testing.T) {
	c := New[float64]()
	out, ok := c.FinalPoint(mat4.V3(0.25, -0.5, 0.75))
	if !ok {
		t.Fatal("identity pipeline flagged a finite point")
	}
	diff(t, mat4.V3(0.25, -0.5, 0.75), out)
}

func TestSetViewport(t *testing.T) {
	c := New[float64]()
	if err := c.SetViewport(-1, 1, 1, -1, 640, 480); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in, want mat4.Vec3[float64]
	}{
		{mat4.V3(-1.0, 1, 0), mat4.V3(0.0, 0, 0)},
		{mat4.V3(1.0, -1, 0), mat4.V3(640.0, 480, 0)},
		{mat4.V3(0.0, 0, 0.5), mat4.V3(320.0, 240, 0.5)},
		{mat4.V3(0.5, 0.5, 0), mat4.V3(480.0, 120, 0)},
	}
	for _, tt := range tests {
		got, ok := c.FinalPoint(tt.in)
		if !ok {
			t.Fatalf("%s flagged undrawable", tt.in)
		}
		diff(t, tt.want, got)
	}
	diff(t, Viewport[float64]{Left: -1, Top: 1, Right: 1, Bottom: -1, Width: 640, Height: 480}, c.Viewport())
}

func TestSetViewportDegenerate(t *testing.T) {
	c := New[float32]()
	before := c.Viewport()
	if err := c.SetViewport(1, 0, 1, 1, 10, 10); !errors.Is(err, ErrDegenerateViewport) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateViewport)
	}
	if err := c.SetViewport(0, 2, 1, 2, 10, 10); !errors.Is(err, ErrDegenerateViewport) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateViewport)
	}
	if c.Viewport() != before {
		t.Error("failed SetViewport changed the viewport")
	}
}

func TestFinalPointPipeline(t *testing.T) {
	const epsilon = 1e-9
	c := New[float64]()
	if err := c.SetViewport(-1, 1, 1, -1, 200, 100); err != nil {
		t.Fatal(err)
	}
	if err := c.Mode(Projection); err != nil {
		t.Fatal(err)
	}
	if err := c.Perspective(90, 2, 1, 100); err != nil {
		t.Fatal(err)
	}
	if err := c.Mode(ModelView); err != nil {
		t.Fatal(err)
	}
	if err := c.LookAt(mat4.V3(0.0, 0, 10), mat4.V3(0.0, 0, 0), mat4.V3(0.0, 1, 0)); err != nil {
		t.Fatal(err)
	}

	// The look-at target projects to the center of the screen.
	got, ok := c.FinalPoint(mat4.V3(0.0, 0, 0))
	if !ok {
		t.Fatal("origin flagged undrawable")
	}
	diff(t, 100.0, got.X, cmpopts.EquateApprox(0, epsilon))
	diff(t, 50.0, got.Y, cmpopts.EquateApprox(0, epsilon))

	// With a 90° vertical field of view, a point 10 units away and 10 units
	// up sits on the top edge; y grows downward in this viewport.
	got, ok = c.FinalPoint(mat4.V3(0.0, 10, 0))
	if !ok {
		t.Fatal("point flagged undrawable")
	}
	diff(t, 0.0, got.Y, cmpopts.EquateApprox(0, epsilon))
	// Aspect 2 halves the horizontal extent.
	got, _ = c.FinalPoint(mat4.V3(-20.0, 0, 0))
	diff(t, 0.0, got.X, cmpopts.EquateApprox(0, epsilon))

	// Same result by hand.
	p := mat4.V3(1.5, -2, 3)
	k := c.ProjectionTop().TransformHomogeneous(c.ModelViewTop().TransformHomogeneous(p.Homogeneous(1)))
	px, py := c.Viewport().Map(k.X/k.W, k.Y/k.W)
	got, _ = c.FinalPoint(p)
	diff(t, mat4.V3(px, py, k.Z/k.W), got, cmpopts.EquateApprox(0, epsilon))
}

func TestFinalPointNearZeroW(t *testing.T) {
	c := New[float64]()
	if err := c.SetViewport(-1, 1, 1, -1, 640, 480); err != nil {
		t.Fatal(err)
	}
	_ = c.Mode(Projection)
	if err := c.Perspective(60, 4.0/3, 0.1, 100); err != nil {
		t.Fatal(err)
	}
	_ = c.Mode(ModelView)

	// View-space z of zero means w=0: the point is on the eye plane.
	for _, p := range []mat4.Vec3[float64]{
		mat4.V3(0.0, 0, 0),
		mat4.V3(3.0, -2, 0),
		mat4.V3(1.0, 1, 1e-9),
	} {
		out, ok := c.FinalPoint(p)
		if ok {
			t.Errorf("%s: got %s, want undrawable", p, out)
		}
		if out.IsNaN() || out.IsInf() {
			t.Errorf("%s: undrawable point carries %s", p, out)
		}
	}

	if _, ok := c.FinalPoint(mat4.V3(0.0, 0, -1)); !ok {
		t.Error("point in front of the camera flagged undrawable")
	}
}

func TestFinalPointNonFinite(t *testing.T) {
	c := New[float32]()
	if _, ok := c.FinalPoint(mat4.V3(float32(math.Inf(1)), 0, 0)); ok {
		t.Error("infinite input was reported drawable")
	}
	if _, ok := c.FinalPoint(mat4.V3(float32(math.NaN()), 0, 0)); ok {
		t.Error("NaN input was reported drawable")
	}
}
