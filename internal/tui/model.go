// Package tui is the interactive session around the geometry engine:
// an infinite pannable grid on which isothetic polygons are authored
// vertex by vertex, intersected, clipped, and exchanged as JSON
// documents.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"isogrid/internal/geom"
)

// ExportFile is where 'e' writes the session document.
const ExportFile = "isogrid.json"

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	// Viewport: scene coordinates at the view center and scale in
	// micro-pixels per scene unit. This grid is purely visual; the
	// decomposition grid of the intersection engine is unrelated.
	centerX float64
	centerY float64
	scale   float64

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Session data
	builder  geom.Builder
	polygons []geom.Ring
	results  []geom.Ring // intersection cells or clip boundary, as rings

	// Snap cursor, in scene coordinates.
	cursorX float64
	cursorY float64

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPolys   bool
	showDraft   bool
	showResults bool

	// mouse state
	hovering bool
	hoverX   float64
	hoverY   float64
	dragging bool
	dragX    int
	dragY    int

	// polygon table
	showAttrs bool
	tbl       table.Model
}

func New() Model {
	m := Model{
		helpVisible: true,
		scale:       2.0,
		status:      "isogrid ready",
		showPolys:   true,
		showDraft:   true,
		showResults: true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Documents"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste an isothetic WKT POLYGON. Press Enter to add it; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// polygon table setup (columns are fixed for the session)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a polygon document at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// gridStep returns the display grid spacing in scene units for the
// current zoom, so grid lines stay a readable distance apart.
func (m Model) gridStep() float64 {
	switch {
	case m.scale <= 0.02:
		return 1000
	case m.scale <= 0.2:
		return 100
	case m.scale <= 0.5:
		return 50
	case m.scale <= 2:
		return 10
	case m.scale <= 20:
		return 1
	default:
		return 0.1
	}
}

// canvasSize derives the map area from the window size; before the
// first WindowSizeMsg it falls back to a conventional 80x24.
func (m Model) canvasSize() (int, int) {
	if m.width == 0 || m.height == 0 {
		return 80, 24
	}
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	contentHeight := m.height - 3 // header + footer
	if contentHeight < 4 {
		contentHeight = 4
	}
	w := max(10, m.width) - sidebarWidth - 1
	if w < 10 {
		w = 10
	}
	return max(8, w), max(4, contentHeight)
}
