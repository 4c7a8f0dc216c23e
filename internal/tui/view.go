package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) contentHeight() int {
	return max(4, m.height-headerHeight-footerHeight)
}

func (m Model) contentWidth() int { return max(10, m.width) }

// mapWidth is the width of the canvas column in cells.
func (m Model) mapWidth() int {
	w := m.contentWidth() - 1
	if m.showSidebar {
		w -= sidebarWidth
	}
	return max(10, w)
}

// inCanvas reports whether the terminal cell (x, y) is inside the canvas.
func (m Model) inCanvas(x, y int) bool {
	ox := 0
	if m.showSidebar {
		ox = sidebarWidth + 1
	}
	return x >= ox && x < ox+m.mapWidth() && y >= headerHeight && y < headerHeight+m.contentHeight()
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := m.contentWidth()
	contentHeight := m.contentHeight()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	// Header
	name := ""
	if m.sc != nil {
		name = m.sc.Name() + " "
	}
	header := titleStyle.Render(" weird3d ─ " + name)
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	mapWidth := m.mapWidth()
	mapHeight := contentHeight
	stats := ""
	var mapView string
	switch {
	case m.showStack:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		lines, st, err := m.renderScene(mapWidth, mapHeight)
		if err != nil {
			stats = errStyle.Render("  draw error: " + err.Error() + "  ")
		} else {
			stats = dimStyle.Render(fmt.Sprintf("  drawn=%d skipped=%d  ", st.Drawn, st.Skipped))
		}
		mapView = canvasStyle.Width(mapWidth).Height(mapHeight).Render(strings.Join(lines, "\n"))
	}

	// Inspect popup overlays the body
	popup := ""
	if m.inspectPopup != "" && !m.showStack {
		maxPopupW := max(20, min(56, contentWidth/2))
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, lipgloss.Height(box), lipgloss.Left, lipgloss.Top, box)
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(stats))
	right := lipgloss.Place(spacerW+lipgloss.Width(stats), 1, lipgloss.Right, lipgloss.Center, stats)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"←→↑↓ orbit",
		"+/- zoom",
		"space play",
		"r reset",
		"Tab scenes",
		"p paste",
		"m stack",
		"i inspect",
		"1/2/3/l layers",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
