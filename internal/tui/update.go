package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"weird3d/internal/scene"
)

const (
	orbitStep = 10.0 // degrees per key press
	zoomStep  = 1.2
	dragScale = 3.0 // degrees per cell dragged
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.contentHeight()-2)
		}
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		m.t += frameInterval.Seconds()
		return m, tick()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.layers.Points = !m.layers.Points
			m.status = fmt.Sprintf("points: %v", m.layers.Points)
		case "2":
			m.layers.Lines = !m.layers.Lines
			m.status = fmt.Sprintf("lines: %v", m.layers.Lines)
		case "3":
			m.layers.Polys = !m.layers.Polys
			m.status = fmt.Sprintf("polys: %v", m.layers.Polys)
		case "f":
			m.layers.Fill = !m.layers.Fill
			m.status = fmt.Sprintf("fill: %v", m.layers.Fill)
		case "l":
			// toggle all layers
			all := m.layers.Points && m.layers.Lines && m.layers.Polys
			m.layers.Points, m.layers.Lines, m.layers.Polys = !all, !all, !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.layers.Points, m.layers.Lines, m.layers.Polys)
		case "+", "=":
			m.cam.Zoom(1 / zoomStep)
			m.status = fmt.Sprintf("distance: %.2f", m.cam.Distance)
		case "-", "_":
			m.cam.Zoom(zoomStep)
			m.status = fmt.Sprintf("distance: %.2f", m.cam.Distance)
		case "left":
			m.cam.Orbit(-orbitStep, 0)
		case "right":
			m.cam.Orbit(orbitStep, 0)
		case "up":
			m.cam.Orbit(0, orbitStep/2)
		case "down":
			m.cam.Orbit(0, -orbitStep/2)
		case "r":
			if m.sc != nil {
				m.cam = scene.Frame(m.sc.Bounds(), m.fov)
				m.status = "camera reset"
			}
		case " ", "space":
			m.playing = !m.playing
			if m.playing {
				m.status = "playing"
				return m, tick()
			}
			m.status = "paused"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.contentHeight()-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "m":
			m.showStack = !m.showStack
			if m.showStack {
				m.refreshStack()
			}
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
			} else {
				m.inspectPopup = m.inspect()
				m.status = "inspect popup"
			}
		case "esc":
			m.inspectPopup = ""
			m.showStack = false
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.open(it)
				}
			}
		}
		if m.showStack {
			// camera keys change the matrices shown
			m.refreshStack()
		}
	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.cam.Zoom(1 / zoomStep)
		case msg.Button == tea.MouseButtonWheelDown:
			m.cam.Zoom(zoomStep)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.dragging = m.inCanvas(msg.X, msg.Y)
			m.dragX, m.dragY = msg.X, msg.Y
		case msg.Action == tea.MouseActionMotion && m.dragging:
			m.cam.Orbit(float64(msg.X-m.dragX)*dragScale, float64(msg.Y-m.dragY)*dragScale)
			m.dragX, m.dragY = msg.X, msg.Y
		case msg.Action == tea.MouseActionRelease:
			m.dragging = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := scene.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setScene(scene.NewMesh("pasted", d))
		m.layers = scene.AllLayers
		m.status = "rendered WKT  counts: " + d.Counts()
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}
