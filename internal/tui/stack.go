package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"weird3d/internal/mat4"
	"weird3d/internal/pipeline"
)

func stackColumns() []table.Column {
	return []table.Column{
		{Title: "matrix", Width: 12},
		{Title: "row", Width: 3},
		{Title: "c0", Width: 10},
		{Title: "c1", Width: 10},
		{Title: "c2", Width: 10},
		{Title: "c3", Width: 10},
	}
}

// refreshStack fills the inspector with the projection top and the whole
// model-view stack as the camera leaves them.
func (m *Model) refreshStack() {
	w, h := max(8, m.mapWidth()), max(4, m.contentHeight())
	if err := m.cam.Apply(m.ctx, float64(w*2), float64(h*4)); err != nil {
		m.status = "camera error: " + err.Error()
		return
	}
	var rows []table.Row
	rows = append(rows, matrixRows("projection", m.ctx.ProjectionTop())...)
	for i, mv := range m.ctx.Stack() {
		rows = append(rows, matrixRows(fmt.Sprintf("modelview[%d]", i), mv)...)
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(stackColumns())
	m.tbl.SetRows(rows)
	m.status = fmt.Sprintf("stack: modelview depth %d of %d", m.ctx.Depth(), pipeline.MaxDepth)
}

func matrixRows(name string, mx mat4.Matrix[float64]) []table.Row {
	rows := make([]table.Row, 4)
	for r := range rows {
		label := ""
		if r == 0 {
			label = name
		}
		rows[r] = table.Row{label, fmt.Sprint(r)}
		for c := 0; c < 4; c++ {
			rows[r] = append(rows[r], fmt.Sprintf("%.4f", mx.At(r, c)))
		}
	}
	return rows
}
