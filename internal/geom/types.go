// Package geom implements the isothetic polygon engine: the vertex
// ring model, point classification, grid-decomposition intersection,
// and convex boundary clipping. The engine is stateless; every
// operation takes and returns values.
//
// The conventions are mathematical graph paper: x increases to the
// right and y increases up the page.
package geom

// Tolerances shared by the polygon model and the intersection engine.
// Mixing different tolerances between the two is a known source of
// misclassification bugs, so everything in this package goes through
// these two constants.
const (
	// EpsIsothetic is the tolerance, in scene units, within which an
	// edge counts as horizontal or vertical and two vertices count as
	// coincident.
	EpsIsothetic = 1e-3

	// EpsCollinear is the tolerance below which a cross product or an
	// intersection denominator is treated as zero.
	EpsCollinear = 1e-10
)

// Point is a 2D coordinate value.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. It doubles as a bounding box and
// as a cell of the intersection decomposition grid.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Area returns the rectangle's area, zero for degenerate rectangles.
func (r Rect) Area() float64 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Center returns the rectangle's centroid.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX && r.MinY < o.MaxY && r.MaxY > o.MinY
}

// Ring returns the rectangle as a counter-clockwise 4-vertex ring.
func (r Rect) Ring() Ring {
	return Ring{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
}
