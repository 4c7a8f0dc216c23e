package tui

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"weird3d/internal/scene"
)

type fileItem struct {
	title, desc string
	path        string
	builtin     string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

var builtins = []string{"terrain", "orrery", "empty"}

func (m *Model) refreshDir() {
	var items []list.Item
	for _, b := range builtins {
		items = append(items, fileItem{title: "◆ " + b, desc: "built-in", builtin: b})
	}
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
	}
	var files []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !scene.Supported(name) {
			continue
		}
		files = append(files, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].(fileItem).Title() < files[j].(fileItem).Title() })
	m.l.SetItems(append(items, files...))
}

// open loads the sidebar item it.
func (m *Model) open(it fileItem) {
	if it.builtin != "" {
		m.loadBuiltin(it.builtin)
		return
	}
	m.loadPath(it.path)
}

func (m *Model) loadBuiltin(name string) {
	m.selPath = ""
	switch name {
	case "", "terrain":
		m.setScene(scene.DefaultTerrain())
	case "orrery":
		m.setScene(scene.DefaultOrrery())
	case "empty":
		m.setScene(scene.NewMesh("empty", scene.Data{}))
	default:
		m.status = "unknown scene: " + name
		m.setScene(scene.NewMesh("empty", scene.Data{}))
		return
	}
	m.status = "scene: " + m.sc.Name()
	log.Printf("scene %s", m.sc.Name())
}

// loadPath loads a geometry file as a static mesh.
func (m *Model) loadPath(p string) {
	d, err := scene.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		log.Printf("load %s: %v", p, err)
		return
	}
	m.selPath = p
	m.setScene(scene.NewMesh(filepath.Base(p), d))
	m.layers = scene.AllLayers
	m.status = "loaded: " + filepath.Base(p) + "  counts: " + d.Counts()
	log.Printf("loaded %s: %s, box %s", p, d.Counts(), d.Box)
}
