package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"weird3d/internal/pipeline"
	"weird3d/internal/scene"
)

// frameInterval is the animation tick period.
const frameInterval = time.Second / 20

// Options configures a new Model.
type Options struct {
	Scene string  // built-in scene name: terrain, orrery or empty
	FovY  float64 // vertical field of view in degrees
	Path  string  // geometry file to load instead of Scene, if set
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// Sidebar: built-in scenes and geometry files in cwd
	cwd     string
	l       list.Model
	selPath string

	// Scene and camera
	sc      scene.Scene
	cam     scene.Camera
	fov     float64
	layers  scene.Layers
	ctx     *pipeline.Context[float64]
	t       float64
	playing bool

	// mouse drag origin
	dragging     bool
	dragX, dragY int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// matrix stack inspector
	showStack bool
	tbl       table.Model

	// inspect popup
	inspectPopup string
}

func New(opts Options) Model {
	if opts.FovY <= 0 || opts.FovY >= 180 {
		opts.FovY = 60
	}
	m := Model{
		helpVisible: true,
		status:      "weird3d ready",
		fov:         opts.FovY,
		layers:      scene.AllLayers,
		ctx:         pipeline.New[float64](),
		playing:     true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Scenes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT Z, MULTIPOINT Z, LINESTRING Z, POLYGON Z). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// stack inspector setup
	m.tbl = table.New(table.WithColumns(stackColumns()), table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()

	if opts.Path != "" {
		m.loadPath(opts.Path)
	}
	if m.sc == nil {
		status := m.status
		m.loadBuiltin(opts.Scene)
		if opts.Path != "" {
			// keep the load error visible
			m.status = status
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.playing {
		return tick()
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// setScene installs s and frames the camera on it.
func (m *Model) setScene(s scene.Scene) {
	m.sc = s
	m.t = 0
	m.cam = scene.Frame(s.Bounds(), m.fov)
	m.inspectPopup = ""
	if m.showStack {
		m.refreshStack()
	}
}
