package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"isogrid/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) != ".json" {
			continue
		}
		items = append(items, fileItem{title: name, desc: ".json", path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no polygon documents in current directory"
	}
}

// loadPath replaces the session with the polygons of a document. The
// document is validated before anything is replaced, so a bad file
// leaves the current session untouched.
func (m *Model) loadPath(p string) {
	doc, err := geom.LoadDocument(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.polygons = doc.Rings()
	m.results = doc.IntersectionRings()
	m.builder.Reset()
	m.fitView()
	m.status = fmt.Sprintf("loaded %s: %d polygons", filepath.Base(p), len(m.polygons))
	if m.showAttrs {
		m.refreshAttrs()
	}
}
