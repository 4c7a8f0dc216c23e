// Package scene produces 3D geometry and draws it through a pipeline.Context
// onto a rawdraw.Drawer: loaded files, a noise terrain, and an animated orrery
// built from nested matrix stack blocks.
package scene

import (
	"weird3d/internal/pipeline"
	"weird3d/internal/rawdraw"
)

// Context is the pipeline precision scenes draw with.
type Context = pipeline.Context[float64]

// Scene draws itself at animation time t, in seconds. Draw may change the
// model-view stack but must leave it at the depth it found it.
type Scene interface {
	Name() string
	Bounds() Box
	Draw(d rawdraw.Drawer, c *Context, t float64) (Stats, error)
}

// Stats counts the primitives a Draw call emitted and skipped. A primitive is
// skipped when one of its vertices projects onto the eye plane.
type Stats struct {
	Drawn, Skipped int
}

func (s *Stats) count(ok bool) {
	if ok {
		s.Drawn++
	} else {
		s.Skipped++
	}
}

func (s *Stats) Add(o Stats) {
	s.Drawn += o.Drawn
	s.Skipped += o.Skipped
}

// Layers selects which kinds of geometry a Mesh draws.
type Layers struct {
	Points, Lines, Polys bool
	// Fill draws polygon interiors as well as outlines.
	Fill bool
}

var AllLayers = Layers{Points: true, Lines: true, Polys: true}

// Mesh is static Data drawn as is.
type Mesh struct {
	Title  string
	Data   Data
	Layers Layers
}

// NewMesh returns a mesh showing every layer of d.
func NewMesh(title string, d Data) *Mesh {
	return &Mesh{Title: title, Data: d, Layers: AllLayers}
}

func (m *Mesh) Name() string { return m.Title }

func (m *Mesh) Bounds() Box { return m.Data.Box }

func (m *Mesh) Draw(d rawdraw.Drawer, c *Context, _ float64) (Stats, error) {
	return DrawData(d, c, &m.Data, m.Layers), nil
}

// DrawData draws the selected layers of data. Polygon rings are drawn as
// closed outlines; only the outer ring is filled.
func DrawData(d rawdraw.Drawer, c *Context, data *Data, l Layers) Stats {
	var st Stats
	if l.Polys {
		for _, poly := range data.Polygons {
			if l.Fill {
				rawdraw.Poly3(d, c, poly[0])
			}
			for _, r := range poly {
				st.count(drawRing(d, c, r))
			}
		}
	}
	if l.Lines {
		for _, ls := range data.Lines {
			n := rawdraw.Strip3(d, c, ls)
			st.Drawn += n
			st.Skipped += len(ls) - 1 - n
		}
	}
	if l.Points {
		for _, p := range data.Points {
			st.count(rawdraw.Pixel3(d, c, p))
		}
	}
	return st
}

// drawRing reports whether every edge of the closed ring r was drawn.
func drawRing(d rawdraw.Drawer, c *Context, r []Vec) bool {
	if len(r) == 0 {
		return true
	}
	closed := r
	if r[0] != r[len(r)-1] {
		closed = append(r[:len(r):len(r)], r[0])
	}
	return rawdraw.Strip3(d, c, closed) == len(closed)-1
}
