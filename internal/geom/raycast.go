package geom

// PointInRing reports whether p lies inside the ring using the
// even-odd ray casting rule. An edge toggles the inside flag only when
// exactly one of its endpoints is above the test point's y, which
// avoids double-counting shared vertices and skips horizontal edges
// entirely (so the x-intercept division is never by zero).
//
// Points lying exactly on an edge may classify either way depending on
// rounding. That is acceptable here: the engine only ever classifies
// interior sample points (cell centroids), never input vertices.
func PointInRing(p Point, ring Ring) bool {
	inside := false
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		xIntercept := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if p.X < xIntercept {
			inside = !inside
		}
	}
	return inside
}
