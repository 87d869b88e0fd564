package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				m.pasteWKT(w)
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		step := m.gridStep()
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polygons: %v", m.showPolys)
		case "2":
			m.showDraft = !m.showDraft
			m.status = fmt.Sprintf("draft: %v", m.showDraft)
		case "3":
			m.showResults = !m.showResults
			m.status = fmt.Sprintf("results: %v", m.showResults)
		case "l":
			// toggle all layers
			all := m.showPolys && m.showDraft && m.showResults
			m.showPolys = !all
			m.showDraft = !all
			m.showResults = !all
			m.status = fmt.Sprintf("layers: poly=%v draft=%v result=%v", m.showPolys, m.showDraft, m.showResults)
		case "+", "=":
			if m.scale < 400 {
				m.scale *= 1.2
				m.status = fmt.Sprintf("scale: %.3g px/unit, grid step %g", m.scale, m.gridStep())
			}
		case "-", "_":
			if m.scale > 0.005 {
				m.scale /= 1.2
				m.status = fmt.Sprintf("scale: %.3g px/unit, grid step %g", m.scale, m.gridStep())
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "i":
			m.computeIntersection()
		case "c":
			m.computeClip()
		case "e":
			m.exportSession()
		case "f":
			m.closeDraft()
		case "u", "backspace":
			m.undoVertex()
		case "x":
			m.dropLast()
		case "0":
			m.centerX, m.centerY = 0, 0
			m.cursorX, m.cursorY = 0, 0
			m.status = "origin"
		case "esc":
			if m.showAttrs {
				m.showAttrs = false
			} else if m.results != nil {
				m.results = nil
				m.status = "result layer cleared"
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			} else {
				m.addVertex()
			}
		case " ":
			m.addVertex()
		case "up":
			m.moveCursor(0, step)
		case "down":
			m.moveCursor(0, -step)
		case "left":
			m.moveCursor(-step, 0)
		case "right":
			m.moveCursor(step, 0)
		case "shift+up":
			m.centerY += step
		case "shift+down":
			m.centerY -= step
		case "shift+left":
			m.centerX -= step
		case "shift+right":
			m.centerX += step
		}
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// moveCursor steps the snap cursor and keeps it on screen by shifting
// the viewport when it runs off an edge.
func (m *Model) moveCursor(dx, dy float64) {
	step := m.gridStep()
	m.cursorX = snap(m.cursorX+dx, step)
	m.cursorY = snap(m.cursorY+dy, step)
	w, h := m.canvasSize()
	wMic, hMic := w*2, h*4
	sx, sy := m.sceneToMicro(m.cursorX, m.cursorY, w, h)
	if sx < 2 {
		m.centerX -= float64(2-sx) / m.scale
	} else if sx > wMic-3 {
		m.centerX += float64(sx-(wMic-3)) / m.scale
	}
	if sy < 4 {
		m.centerY += float64(4-sy) / m.scale
	} else if sy > hMic-5 {
		m.centerY -= float64(sy-(hMic-5)) / m.scale
	}
}

// handleMouse maps mouse events onto the map area: hover snaps to the
// display grid, left click commits a vertex, right drag pans, and the
// wheel zooms. The layout math must match View.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	mapWidth, mapHeight := m.canvasSize()
	mapOriginX := sidebarWidth
	if m.showSidebar {
		mapOriginX++
	}
	mapOriginY := 1 // header

	cx, cy := msg.X-mapOriginX, msg.Y-mapOriginY
	inMap := cx >= 0 && cx < mapWidth && cy >= 0 && cy < mapHeight
	step := m.gridStep()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if inMap && !m.showAttrs && !m.pasteMode {
				x, y := m.cellToScene(cx, cy, mapWidth, mapHeight)
				m.cursorX, m.cursorY = snap(x, step), snap(y, step)
				m.addVertex()
			}
		case tea.MouseButtonRight:
			if inMap {
				m.dragging = true
				m.dragX, m.dragY = cx, cy
			}
		case tea.MouseButtonWheelUp:
			if m.scale < 400 {
				m.scale *= 1.2
			}
		case tea.MouseButtonWheelDown:
			if m.scale > 0.005 {
				m.scale /= 1.2
			}
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.centerX -= float64((cx-m.dragX)*2) / m.scale
			m.centerY += float64((cy-m.dragY)*4) / m.scale
			m.dragX, m.dragY = cx, cy
		}
		if inMap {
			m.hovering = true
			x, y := m.cellToScene(cx, cy, mapWidth, mapHeight)
			m.hoverX, m.hoverY = snap(x, step), snap(y, step)
		} else {
			m.hovering = false
		}
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m
}
