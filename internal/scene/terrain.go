package scene

import (
	"weird3d/internal/noise"
	"weird3d/internal/rawdraw"
)

// Terrain is a square heightfield sampled from fractal noise and drawn as a
// wireframe grid in the xz plane, centered on the origin.
type Terrain struct {
	Size      int     // vertices per side
	Spacing   float64 // world units between vertices
	Height    float64 // peak height
	Frequency float64 // noise lattice cells per world unit
	Octaves   int
	// Spin is the rotation about y in degrees per second.
	Spin float64

	mesh Data
}

// DefaultTerrain returns the terrain shown by the viewers at startup.
func DefaultTerrain() *Terrain {
	return NewTerrain(Terrain{Size: 24, Spacing: 0.5, Height: 3, Frequency: 0.35, Octaves: 4, Spin: 10})
}

// NewTerrain samples the heightfield described by cfg. Sizes below 2 are
// raised to 2.
func NewTerrain(cfg Terrain) *Terrain {
	t := cfg
	t.Size = max(t.Size, 2)
	t.mesh = Data{}
	n := t.Size
	half := float64(n-1) * t.Spacing / 2
	grid := make([][]Vec, n)
	for i := range grid {
		grid[i] = make([]Vec, n)
		for j := range grid[i] {
			x := float64(j)*t.Spacing - half
			z := float64(i)*t.Spacing - half
			h := noise.Fractal2D(x*t.Frequency, z*t.Frequency, t.Octaves)
			grid[i][j] = Vec{X: x, Y: (h - 0.5) * t.Height, Z: z}
		}
	}
	for i := 0; i < n; i++ {
		t.mesh.AddLine(grid[i])
		col := make([]Vec, n)
		for k := range col {
			col[k] = grid[k][i]
		}
		t.mesh.AddLine(col)
	}
	return &t
}

func (t *Terrain) Name() string { return "terrain" }

func (t *Terrain) Bounds() Box { return t.mesh.Box }

// Data returns the sampled grid lines.
func (t *Terrain) Data() *Data { return &t.mesh }

func (t *Terrain) Draw(d rawdraw.Drawer, c *Context, sec float64) (Stats, error) {
	if err := c.Push(); err != nil {
		return Stats{}, err
	}
	c.RotateEA(0, sec*t.Spin, 0)
	st := DrawData(d, c, &t.mesh, Layers{Lines: true})
	return st, c.Pop()
}
