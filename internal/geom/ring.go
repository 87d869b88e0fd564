package geom

import "math"

// Ring is an ordered sequence of polygon vertices. The edge from the
// last vertex back to the first is part of the boundary; the closing
// vertex is never stored.
type Ring []Point

// IsIsotheticStep reports whether the edge prev->next is horizontal or
// vertical within EpsIsothetic.
func IsIsotheticStep(prev, next Point) bool {
	return math.Abs(prev.X-next.X) < EpsIsothetic || math.Abs(prev.Y-next.Y) < EpsIsothetic
}

// IsClosing reports whether candidate coincides with first within
// EpsIsothetic on both axes.
func IsClosing(candidate, first Point) bool {
	return math.Abs(candidate.X-first.X) < EpsIsothetic && math.Abs(candidate.Y-first.Y) < EpsIsothetic
}

// IsValidIsothetic reports whether the ring has at least 3 vertices
// and every edge, the wrap-around edge included, is axis-aligned.
func (r Ring) IsValidIsothetic() bool {
	if len(r) < 3 {
		return false
	}
	for i := range r {
		prev := r[(i+len(r)-1)%len(r)]
		if !IsIsotheticStep(prev, r[i]) {
			return false
		}
	}
	return true
}

// Area returns the enclosed area by the shoelace formula, independent
// of winding direction.
func (r Ring) Area() float64 {
	if len(r) < 3 {
		return 0
	}
	sum := 0.0
	for i := range r {
		a := r[i]
		b := r[(i+1)%len(r)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Clone returns an independent copy of the ring.
func (r Ring) Clone() Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	copy(out, r)
	return out
}
