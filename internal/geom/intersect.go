package geom

import (
	"errors"
	"sort"
)

// ErrNeedTwoPolygons reports the IntersectAll precondition. It is a
// rejected operation, not a fault; callers surface it as a notice.
var ErrNeedTwoPolygons = errors.New("need at least two polygons to calculate intersection")

// IntersectPair computes the intersection of two isothetic rings as a
// set of disjoint axis-aligned cells.
//
// The plane is partitioned by the union of both rings' vertex
// coordinate projections. Because every edge of an isothetic polygon
// lies on one of those coordinate lines, the grid aligns with every
// boundary, and classifying each cell by its centroid is exact for
// isothetic input rather than an approximation. Cells are not merged;
// consumers may coalesce them if they care.
//
// Either ring having fewer than 3 vertices yields an empty result.
func IntersectPair(a, b Ring) []Rect {
	if len(a) < 3 || len(b) < 3 {
		return nil
	}
	xs := gridCoords(a, b, func(p Point) float64 { return p.X })
	ys := gridCoords(a, b, func(p Point) float64 { return p.Y })

	var cells []Rect
	for i := 0; i+1 < len(xs); i++ {
		for j := 0; j+1 < len(ys); j++ {
			cell := Rect{MinX: xs[i], MinY: ys[j], MaxX: xs[i+1], MaxY: ys[j+1]}
			c := cell.Center()
			if PointInRing(c, a) && PointInRing(c, b) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// gridCoords collects one axis of both rings' vertex coordinates as a
// strictly increasing sequence. Values closer than EpsIsothetic merge,
// so vertices that only differ by floating noise do not produce sliver
// cells.
func gridCoords(a, b Ring, axis func(Point) float64) []float64 {
	vals := make([]float64, 0, len(a)+len(b))
	for _, p := range a {
		vals = append(vals, axis(p))
	}
	for _, p := range b {
		vals = append(vals, axis(p))
	}
	sort.Float64s(vals)
	var out []float64
	for _, v := range vals {
		if len(out) == 0 || v-out[len(out)-1] > EpsIsothetic {
			out = append(out, v)
		}
	}
	return out
}

// IntersectAll folds the pairwise grid intersection across the rings
// in order and returns the common region, or ErrNeedTwoPolygons when
// fewer than two rings are supplied. The fold stops as soon as an
// intermediate result is empty.
//
// From the third ring on, a rectangle from the running set survives
// when any sub-cell of it intersects the next ring; the whole
// rectangle is kept rather than re-split. With three or more staggered
// polygons this can retain slightly more area than the exact
// intersection. The coarsening is deliberate and observable; changing
// it would change results consumers already rely on.
func IntersectAll(rings []Ring) ([]Rect, error) {
	if len(rings) < 2 {
		return nil, ErrNeedTwoPolygons
	}
	cells := IntersectPair(rings[0], rings[1])
	if len(cells) == 0 {
		return nil, nil
	}
	for _, next := range rings[2:] {
		if len(next) < 3 {
			return nil, nil
		}
		kept := cells[:0]
		for _, cell := range cells {
			if len(IntersectPair(cell.Ring(), next)) > 0 {
				kept = append(kept, cell)
			}
		}
		cells = kept
		if len(cells) == 0 {
			return nil, nil
		}
	}
	return cells, nil
}
