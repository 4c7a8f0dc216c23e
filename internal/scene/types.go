package scene

import (
	"fmt"
	"math"

	"weird3d/internal/mat4"
)

type Vec = mat4.Vec3[float64]

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec
}

// Center returns the midpoint of b.
func (b Box) Center() Vec { return b.Min.Add(b.Max).Mul(0.5) }

// Radius returns half the diagonal of b.
func (b Box) Radius() float64 { return mat4.Distance(b.Min, b.Max) / 2 }

func (b Box) String() string {
	return fmt.Sprintf("[%.3f %.3f %.3f]-[%.3f %.3f %.3f]",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

// Data is a minimal 3D geometry container for rendering.
type Data struct {
	Points   []Vec
	Lines    [][]Vec
	Polygons [][][]Vec // polygons with rings (first outer, following holes)
	Box      Box

	n int // vertices seen by extend
}

// Empty reports whether d holds no geometry.
func (d *Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// Vertices returns the number of vertices in d.
func (d *Data) Vertices() int {
	n := len(d.Points)
	for _, l := range d.Lines {
		n += len(l)
	}
	for _, poly := range d.Polygons {
		for _, r := range poly {
			n += len(r)
		}
	}
	return n
}

func (d *Data) Counts() string {
	return fmt.Sprintf("pts=%d ls=%d poly=%d", len(d.Points), len(d.Lines), len(d.Polygons))
}

func (d *Data) extend(p Vec) {
	if d.n == 0 {
		d.Box = Box{Min: p, Max: p}
	} else {
		d.Box.Min = Vec{X: math.Min(d.Box.Min.X, p.X), Y: math.Min(d.Box.Min.Y, p.Y), Z: math.Min(d.Box.Min.Z, p.Z)}
		d.Box.Max = Vec{X: math.Max(d.Box.Max.X, p.X), Y: math.Max(d.Box.Max.Y, p.Y), Z: math.Max(d.Box.Max.Z, p.Z)}
	}
	d.n++
}

func (d *Data) AddPoint(p Vec) {
	d.Points = append(d.Points, p)
	d.extend(p)
}

func (d *Data) AddLine(l []Vec) {
	if len(l) == 0 {
		return
	}
	d.Lines = append(d.Lines, l)
	for _, p := range l {
		d.extend(p)
	}
}

func (d *Data) AddPolygon(rings [][]Vec) {
	if len(rings) == 0 || len(rings[0]) == 0 {
		return
	}
	d.Polygons = append(d.Polygons, rings)
	for _, r := range rings {
		for _, p := range r {
			d.extend(p)
		}
	}
}

// Merge appends the geometry of o to d.
func (d *Data) Merge(o *Data) {
	for _, p := range o.Points {
		d.AddPoint(p)
	}
	for _, l := range o.Lines {
		d.AddLine(l)
	}
	for _, poly := range o.Polygons {
		d.AddPolygon(poly)
	}
}
