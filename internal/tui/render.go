package tui

import (
	"fmt"
	"sort"
	"strings"

	"weird3d/internal/rawdraw"
	"weird3d/internal/scene"
)

// renderScene draws the current scene into a w×h cell braille canvas.
func (m Model) renderScene(w, h int) ([]string, scene.Stats, error) {
	br := rawdraw.NewBraille(w, h)
	if m.sc == nil || w <= 0 || h <= 0 {
		return br.Lines(), scene.Stats{}, nil
	}
	pw, ph := br.Size()
	if err := m.cam.Apply(m.ctx, float64(pw), float64(ph)); err != nil {
		return br.Lines(), scene.Stats{}, err
	}
	if mesh, ok := m.sc.(*scene.Mesh); ok {
		mesh.Layers = m.layers
	}
	st, err := m.sc.Draw(br, m.ctx, m.t)
	return br.Lines(), st, err
}

// nearestVertex returns the vertex of a static scene whose projection lands
// closest to the middle of a w×h cell canvas.
func (m Model) nearestVertex(w, h int) (scene.Vec, bool) {
	mesh, ok := m.sc.(*scene.Mesh)
	if !ok {
		return scene.Vec{}, false
	}
	pw, ph := w*2, h*4
	if err := m.cam.Apply(m.ctx, float64(pw), float64(ph)); err != nil {
		return scene.Vec{}, false
	}
	var cands []scene.Vec
	cands = append(cands, mesh.Data.Points...)
	for _, l := range mesh.Data.Lines {
		cands = append(cands, l...)
	}
	for _, poly := range mesh.Data.Polygons {
		for _, r := range poly {
			cands = append(cands, r...)
		}
	}
	type hit struct {
		v scene.Vec
		d int
	}
	var hits []hit
	for _, v := range cands {
		p, ok := rawdraw.Project(m.ctx, v)
		if !ok {
			continue
		}
		dx, dy := p.X-pw/2, p.Y-ph/2
		hits = append(hits, hit{v, dx*dx + dy*dy})
	}
	if len(hits) == 0 {
		return scene.Vec{}, false
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].d < hits[j].d })
	return hits[0].v, true
}

func (m Model) inspect() string {
	if m.sc == nil {
		return "no scene"
	}
	name := m.sc.Name()
	if m.selPath != "" {
		name = m.selPath
	}
	eye := m.cam.Eye()
	lines := []string{
		fmt.Sprintf("scene: %s", name),
		fmt.Sprintf("bounds: %s", m.sc.Bounds()),
		fmt.Sprintf("camera: yaw=%.1f pitch=%.1f dist=%.2f fov=%.0f", m.cam.Yaw, m.cam.Pitch, m.cam.Distance, m.cam.FovY),
		fmt.Sprintf("eye: (%.2f, %.2f, %.2f)", eye.X, eye.Y, eye.Z),
		fmt.Sprintf("time: %.2fs", m.t),
	}
	if mesh, ok := m.sc.(*scene.Mesh); ok {
		lines = append(lines, "counts: "+mesh.Data.Counts())
		if v, ok := m.nearestVertex(max(8, m.mapWidth()), max(4, m.contentHeight())); ok {
			lines = append(lines, fmt.Sprintf("nearest: (%.4f, %.4f, %.4f)", v.X, v.Y, v.Z))
		}
	}
	return strings.Join(lines, "\n")
}
