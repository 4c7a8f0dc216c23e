// Package pipeline is a small fixed-function vertex pipeline: bounded
// model-view and projection matrix stacks, a viewport, and FinalPoint, which
// takes an object-space point all the way to pixels.
package pipeline

import (
	"errors"
	"fmt"

	"weird3d/internal/mat4"
)

// MaxDepth is the number of entries that can be pushed above the base entry of
// each matrix stack.
const MaxDepth = 32

// Mode selects which matrix stack receives stack and compose operations.
type Mode int

const (
	ModelView Mode = iota
	Projection
)

func (m Mode) String() string {
	switch m {
	case ModelView:
		return "modelview"
	case Projection:
		return "projection"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var (
	ErrStackOverflow  = errors.New("pipeline: matrix stack overflow")
	ErrStackUnderflow = errors.New("pipeline: matrix stack underflow")
	ErrInvalidMode    = errors.New("pipeline: invalid matrix mode")
)

// Context holds the state of one fixed-function pipeline: a model-view stack,
// a projection stack, the active mode, and the viewport. Contexts are not safe
// for concurrent use; give each goroutine its own.
type Context[T mat4.Float] struct {
	stacks [2][MaxDepth + 1]mat4.Matrix[T]
	top    [2]int
	mode   Mode
	vp     Viewport[T]
}

// New returns a context whose stacks each hold a single identity matrix, in
// model-view mode, with the identity viewport.
func New[T mat4.Float]() *Context[T] {
	c := &Context[T]{}
	c.Reset()
	return c
}

// Reset returns c to the state produced by New.
func (c *Context[T]) Reset() {
	*c = Context[T]{mode: ModelView, vp: identityViewport[T]()}
	for i := range c.stacks {
		c.stacks[i][0] = mat4.Identity[T]()
	}
}

// Mode switches the active stack. Stack contents are not affected.
func (c *Context[T]) Mode(m Mode) error {
	if m != ModelView && m != Projection {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	c.mode = m
	return nil
}

// CurrentMode returns the active mode.
func (c *Context[T]) CurrentMode() Mode { return c.mode }

// Depth returns the number of entries pushed above the base entry of the
// active stack, between 0 and MaxDepth.
func (c *Context[T]) Depth() int { return c.top[c.mode] }

// Push duplicates the top of the active stack.
func (c *Context[T]) Push() error {
	i := c.top[c.mode]
	if i >= MaxDepth {
		return fmt.Errorf("%w: %s depth %d", ErrStackOverflow, c.mode, i)
	}
	c.stacks[c.mode][i+1] = c.stacks[c.mode][i]
	c.top[c.mode] = i + 1
	return nil
}

// Pop discards the top of the active stack. The base entry cannot be popped.
func (c *Context[T]) Pop() error {
	i := c.top[c.mode]
	if i == 0 {
		return fmt.Errorf("%w: %s", ErrStackUnderflow, c.mode)
	}
	c.top[c.mode] = i - 1
	return nil
}

// Top returns the top of the active stack. Compose operations on the returned
// matrix modify the stack in place. The pointer is invalidated by Push, Pop,
// and Mode.
func (c *Context[T]) Top() *mat4.Matrix[T] {
	return &c.stacks[c.mode][c.top[c.mode]]
}

// ModelViewTop returns a copy of the top of the model-view stack.
func (c *Context[T]) ModelViewTop() mat4.Matrix[T] {
	return c.stacks[ModelView][c.top[ModelView]]
}

// ProjectionTop returns a copy of the top of the projection stack.
func (c *Context[T]) ProjectionTop() mat4.Matrix[T] {
	return c.stacks[Projection][c.top[Projection]]
}

// Stack returns a copy of the active stack, base entry first.
func (c *Context[T]) Stack() []mat4.Matrix[T] {
	n := c.top[c.mode] + 1
	out := make([]mat4.Matrix[T], n)
	copy(out, c.stacks[c.mode][:n])
	return out
}

// LoadIdentity replaces the active top with the identity matrix.
func (c *Context[T]) LoadIdentity() { c.Top().SetIdentity() }

// Load replaces the active top with m.
func (c *Context[T]) Load(m mat4.Matrix[T]) { *c.Top() = m }

// MultMatrix composes m onto the active top.
func (c *Context[T]) MultMatrix(m mat4.Matrix[T]) {
	top := c.Top()
	*top = top.Mul(m)
}

func (c *Context[T]) Translate(x, y, z T) { c.Top().Translate(x, y, z) }

func (c *Context[T]) Scale(x, y, z T) { c.Top().Scale(x, y, z) }

func (c *Context[T]) RotateAA(angleDeg T, axis mat4.Vec3[T]) error {
	return c.Top().RotateAA(angleDeg, axis)
}

func (c *Context[T]) RotateQuat(qw, qx, qy, qz T) error {
	return c.Top().RotateQuat(qw, qx, qy, qz)
}

func (c *Context[T]) RotateEA(x, y, z T) { c.Top().RotateEA(x, y, z) }

// LookAt composes a view matrix onto the active top.
func (c *Context[T]) LookAt(eye, at, up mat4.Vec3[T]) error {
	return c.Top().LookAt(eye, at, up)
}

// Perspective replaces the active top with a perspective projection. On
// error the top is left unchanged.
func (c *Context[T]) Perspective(fovYDeg, aspect, zNear, zFar T) error {
	m, err := mat4.Perspective(fovYDeg, aspect, zNear, zFar)
	if err != nil {
		return err
	}
	c.Load(m)
	return nil
}

// Ortho replaces the active top with an orthographic projection.
func (c *Context[T]) Ortho(left, right, bottom, top, near, far T) error {
	m, err := mat4.Ortho(left, right, bottom, top, near, far)
	if err != nil {
		return err
	}
	c.Load(m)
	return nil
}
