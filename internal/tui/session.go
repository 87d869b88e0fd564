package tui

import (
	"fmt"
	"math"

	"isogrid/internal/geom"
)

// addVertex commits the cursor position to the draft ring. A vertex
// coinciding with the first one closes the ring, which is finalized
// into the session immediately.
func (m *Model) addVertex() {
	p := geom.Point{X: m.cursorX, Y: m.cursorY}
	if err := m.builder.Append(p); err != nil {
		m.status = err.Error()
		return
	}
	if m.builder.State() == geom.StateClosed {
		m.finalizeDraft()
		return
	}
	m.status = fmt.Sprintf("vertex %d at (%g, %g)", m.builder.Len(), p.X, p.Y)
}

// closeDraft closes the draft ring by revisiting its first vertex, for
// when walking the cursor back is inconvenient. The closing edge must
// still be axis-aligned.
func (m *Model) closeDraft() {
	vs := m.builder.Vertices()
	if len(vs) == 0 {
		m.status = "nothing to close"
		return
	}
	if err := m.builder.Append(vs[0]); err != nil {
		m.status = err.Error()
		return
	}
	m.finalizeDraft()
}

func (m *Model) finalizeDraft() {
	ring, err := m.builder.Finalize()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.polygons = append(m.polygons, ring)
	m.status = fmt.Sprintf("polygon %d closed: %d vertices, area %g", len(m.polygons), len(ring), ring.Area())
	if m.showAttrs {
		m.refreshAttrs()
	}
}

func (m *Model) undoVertex() {
	if p, ok := m.builder.RemoveLast(); ok {
		m.status = fmt.Sprintf("removed (%g, %g)", p.X, p.Y)
		return
	}
	m.status = "draft is empty"
}

// dropLast discards the draft if one is in progress, otherwise the most
// recently added polygon. Removing a polygon invalidates the result
// layer.
func (m *Model) dropLast() {
	if m.builder.State() != geom.StateEmpty {
		m.builder.Reset()
		m.status = "draft discarded"
		return
	}
	if len(m.polygons) == 0 {
		m.status = "no polygons"
		return
	}
	m.polygons = m.polygons[:len(m.polygons)-1]
	m.results = nil
	m.status = fmt.Sprintf("removed polygon %d", len(m.polygons)+1)
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// computeIntersection folds the session polygons through the grid
// decomposition and keeps the surviving cells as result rings.
func (m *Model) computeIntersection() {
	cells, err := geom.IntersectAll(m.polygons)
	if err != nil {
		m.status = err.Error()
		return
	}
	if len(cells) == 0 {
		m.results = nil
		m.status = "no common intersection found"
		return
	}
	m.results = make([]geom.Ring, 0, len(cells))
	area := 0.0
	for _, c := range cells {
		m.results = append(m.results, c.Ring())
		area += c.Area()
	}
	m.status = fmt.Sprintf("intersection: %d cells, area %g", len(cells), area)
}

// computeClip clips the first polygon's boundary against the second.
// The clip polygon must be convex for a correct result; the engine does
// not check that, so the status names the operands.
func (m *Model) computeClip() {
	if len(m.polygons) < 2 {
		m.status = geom.ErrNeedTwoPolygons.Error()
		return
	}
	out := geom.Clip(m.polygons[0], m.polygons[1])
	if len(out) == 0 {
		m.results = nil
		m.status = "no common intersection found"
		return
	}
	m.results = []geom.Ring{out}
	m.status = fmt.Sprintf("clip polygon 1 by 2: %d vertices, area %g", len(out), out.Area())
}

// exportSession writes polygons and the current result layer to the
// export document in the working directory.
func (m *Model) exportSession() {
	doc := geom.NewDocument(m.polygons, m.results)
	if err := doc.Save(ExportFile); err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("saved %d polygons to %s", len(m.polygons), ExportFile)
	m.refreshDir()
}

// pasteWKT adds a polygon parsed from WKT text to the session.
func (m *Model) pasteWKT(s string) {
	ring, err := geom.ParseWKTPolygon(s)
	if err != nil {
		m.status = "wkt error: " + err.Error()
		return
	}
	m.polygons = append(m.polygons, ring)
	m.fitView()
	m.status = fmt.Sprintf("polygon %d added from WKT: %d vertices", len(m.polygons), len(ring))
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// fitView centers the viewport on the session polygons and picks a
// scale that fits their bounding box with some margin.
func (m *Model) fitView() {
	var all geom.Ring
	for _, r := range m.polygons {
		all = append(all, r...)
	}
	for _, r := range m.results {
		all = append(all, r...)
	}
	if len(all) == 0 {
		return
	}
	bb := geom.BoundingBox(all)
	m.centerX = (bb.MinX + bb.MaxX) / 2
	m.centerY = (bb.MinY + bb.MaxY) / 2
	w, h := m.canvasSize()
	sx, sy := 400.0, 400.0
	if bb.Width() > 0 {
		sx = float64(w*2) * 0.8 / bb.Width()
	}
	if bb.Height() > 0 {
		sy = float64(h*4) * 0.8 / bb.Height()
	}
	m.scale = math.Min(400, math.Min(sx, sy))
	if m.scale < 0.005 {
		m.scale = 0.005
	}
	step := m.gridStep()
	m.cursorX = snap(m.centerX, step)
	m.cursorY = snap(m.centerY, step)
}
