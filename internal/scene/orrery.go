package scene

import (
	"weird3d/internal/rawdraw"
)

// Body is one node of an orrery: a wireframe cube orbiting its parent.
type Body struct {
	Name   string
	Size   float64 // cube half-extent
	Orbit  float64 // distance from the parent
	Period float64 // seconds per orbit; zero holds still
	Spin   float64 // degrees per second about the body's own y axis
	Tilt   float64 // orbit plane tilt about x, degrees
	Moons  []Body
}

// Orrery draws a hierarchy of bodies, each positioned relative to its parent
// by a push/rotate/translate/pop block on the model-view stack.
type Orrery struct {
	Root Body
}

// DefaultOrrery returns a sun with two planets, one of which has a moon.
func DefaultOrrery() *Orrery {
	return &Orrery{Root: Body{
		Name: "sun", Size: 1, Spin: 20,
		Moons: []Body{
			{Name: "inner", Size: 0.3, Orbit: 3, Period: 6, Spin: 90},
			{Name: "outer", Size: 0.5, Orbit: 6, Period: 15, Spin: 45, Tilt: 10, Moons: []Body{
				{Name: "moon", Size: 0.15, Orbit: 1.2, Period: 2, Spin: 0},
			}},
		},
	}}
}

func (o *Orrery) Name() string { return "orrery" }

// Bounds covers the widest possible reach of the hierarchy.
func (o *Orrery) Bounds() Box {
	r := reach(o.Root)
	return Box{Min: Vec{X: -r, Y: -r, Z: -r}, Max: Vec{X: r, Y: r, Z: r}}
}

func reach(b Body) float64 {
	r := b.Size * 1.7320508075688772
	for _, m := range b.Moons {
		r = max(r, m.Orbit+reach(m))
	}
	return r
}

// Depth returns how many stack entries drawing o pushes at its deepest.
func (o *Orrery) Depth() int { return depth(o.Root) }

func depth(b Body) int {
	n := 1 // spin block
	for _, m := range b.Moons {
		n = max(n, depth(m))
	}
	return n + 1
}

func (o *Orrery) Draw(d rawdraw.Drawer, c *Context, t float64) (Stats, error) {
	var st Stats
	base := c.Depth()
	err := drawBody(d, c, o.Root, t, &st)
	if err != nil {
		for c.Depth() > base {
			_ = c.Pop()
		}
	}
	return st, err
}

func drawBody(d rawdraw.Drawer, c *Context, b Body, t float64, st *Stats) error {
	if err := c.Push(); err != nil {
		return err
	}
	if b.Tilt != 0 {
		c.RotateEA(b.Tilt, 0, 0)
	}
	if b.Period != 0 {
		c.RotateEA(0, 360*t/b.Period, 0)
	}
	c.Translate(b.Orbit, 0, 0)

	// The body's own spin and size must not reach its moons.
	if err := c.Push(); err != nil {
		return err
	}
	c.RotateEA(0, b.Spin*t, 0)
	c.Scale(b.Size, b.Size, b.Size)
	st.Add(DrawData(d, c, unitCube(), Layers{Lines: true}))
	if err := c.Pop(); err != nil {
		return err
	}

	for _, m := range b.Moons {
		if err := drawBody(d, c, m, t, st); err != nil {
			return err
		}
	}
	return c.Pop()
}

var cube = func() Data {
	v := func(x, y, z float64) Vec { return Vec{X: x, Y: y, Z: z} }
	var d Data
	d.AddLine([]Vec{v(-1, -1, -1), v(1, -1, -1), v(1, 1, -1), v(-1, 1, -1), v(-1, -1, -1)})
	d.AddLine([]Vec{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1), v(-1, -1, 1)})
	d.AddLine([]Vec{v(-1, -1, -1), v(-1, -1, 1)})
	d.AddLine([]Vec{v(1, -1, -1), v(1, -1, 1)})
	d.AddLine([]Vec{v(1, 1, -1), v(1, 1, 1)})
	d.AddLine([]Vec{v(-1, 1, -1), v(-1, 1, 1)})
	return d
}()

// unitCube returns the 12 edges of the cube spanning [-1, 1] on every axis.
func unitCube() *Data { return &cube }
