package geom

import "math"

// Cross returns the signed cross product of the vectors (b-a) and
// (c-a). The sign gives the turn direction at b when walking a->b->c;
// magnitudes below EpsCollinear mean the three points are collinear.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SegmentIntersection returns the point where segment p1-p2 meets
// segment p3-p4, solving the parametric line equations. Endpoint
// touches count. Parallel and collinear segments report no
// intersection: collinear overlap is not resolved into a point by
// this primitive.
func SegmentIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if math.Abs(denom) < EpsCollinear {
		return Point{}, false
	}
	ua := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	ub := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Point{}, false
	}
	return Point{
		X: p1.X + ua*(p2.X-p1.X),
		Y: p1.Y + ua*(p2.Y-p1.Y),
	}, true
}

// BoundingBox returns the axis-aligned extent of the ring's vertices.
// An empty ring yields the zero rectangle.
func BoundingBox(r Ring) Rect {
	if len(r) == 0 {
		return Rect{}
	}
	bb := Rect{MinX: r[0].X, MinY: r[0].Y, MaxX: r[0].X, MaxY: r[0].Y}
	for _, p := range r[1:] {
		if p.X < bb.MinX {
			bb.MinX = p.X
		}
		if p.Y < bb.MinY {
			bb.MinY = p.Y
		}
		if p.X > bb.MaxX {
			bb.MaxX = p.X
		}
		if p.Y > bb.MaxY {
			bb.MaxY = p.Y
		}
	}
	return bb
}
