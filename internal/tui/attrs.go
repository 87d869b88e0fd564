package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"isogrid/internal/geom"
)

// refreshAttrs rebuilds the polygon table from the session: one row per
// polygon plus one per result ring.
func (m *Model) refreshAttrs() {
	if len(m.polygons) == 0 && len(m.results) == 0 {
		m.showAttrs = false
		m.status = "no polygons yet"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "kind", Width: 8},
		{Title: "vertices", Width: 8},
		{Title: "bbox", Width: 28},
		{Title: "area", Width: 10},
	}
	rows := make([]table.Row, 0, len(m.polygons)+len(m.results))
	for i, r := range m.polygons {
		rows = append(rows, polygonRow(i+1, "polygon", r))
	}
	for i, r := range m.results {
		rows = append(rows, polygonRow(i+1, "result", r))
	}
	// Clear rows first so columns and rows never disagree mid-update
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func polygonRow(n int, kind string, r geom.Ring) table.Row {
	bb := geom.BoundingBox(r)
	return table.Row{
		fmt.Sprintf("%d", n),
		kind,
		fmt.Sprintf("%d", len(r)),
		fmt.Sprintf("[%g, %g, %g, %g]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
		fmt.Sprintf("%g", r.Area()),
	}
}
