package geom

import "math"

// Clip cuts the subject ring against each edge of a convex isothetic
// clip ring (Sutherland–Hodgman) and returns the exact intersection
// boundary. It returns nil when the intersection is empty or either
// input has fewer than 3 vertices.
//
// The clip ring's winding is not assumed: the interior side of each
// clip edge is derived from the side the following clip vertex falls
// on. Clip edges are expected to be axis-aligned, which lets the edge
// intersections be solved by direct coordinate substitution instead of
// the general line-line formula (numerically unstable exactly at these
// alignments).
func Clip(subject, clip Ring) Ring {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}
	output := subject.Clone()
	for i := range clip {
		input := output
		output = nil
		for j := range input {
			p := input[j]
			q := input[(j+1)%len(input)]
			pIn := insideClipEdge(p, clip, i)
			qIn := insideClipEdge(q, clip, i)
			switch {
			case pIn && qIn:
				output = append(output, q)
			case pIn && !qIn:
				if at, ok := clipEdgeIntersection(p, q, clip, i); ok {
					output = append(output, at)
				}
			case !pIn && qIn:
				if at, ok := clipEdgeIntersection(p, q, clip, i); ok {
					output = append(output, at)
				}
				output = append(output, q)
			}
		}
		if len(output) < 3 {
			return nil
		}
	}
	// The ring convention keeps closure implicit; drop a duplicated
	// closing vertex if the cut happened to produce one.
	if len(output) > 1 && IsClosing(output[len(output)-1], output[0]) {
		output = output[:len(output)-1]
	}
	if len(output) < 3 {
		return nil
	}
	return output
}

// insideClipEdge reports whether p lies on the interior half-plane of
// clip edge i. Which side is interior comes from the side the next
// clip vertex continues on, so it works for either winding. For a
// degenerate collinear corner the edge's bounding box decides.
func insideClipEdge(p Point, clip Ring, i int) bool {
	a := clip[i]
	b := clip[(i+1)%len(clip)]
	turn := Cross(a, b, clip[(i+2)%len(clip)])
	if math.Abs(turn) < EpsCollinear {
		return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
			math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
	}
	side := Cross(a, b, p)
	if turn > 0 {
		return side >= 0
	}
	return side <= 0
}

// clipEdgeIntersection intersects segment p-q with clip edge i by
// substituting the edge's fixed coordinate into the segment's
// parametric form. Segments parallel to the edge intersect only when
// collinear and overlapping, in which case the overlap midpoint is
// reported.
func clipEdgeIntersection(p, q Point, clip Ring, i int) (Point, bool) {
	a := clip[i]
	b := clip[(i+1)%len(clip)]

	if math.Abs(a.X-b.X) < EpsIsothetic {
		// Vertical clip edge at x = a.X.
		dx := q.X - p.X
		if math.Abs(dx) < EpsCollinear {
			if math.Abs(p.X-a.X) < EpsIsothetic {
				yMin, yMax := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
				if math.Max(p.Y, q.Y) >= yMin && math.Min(p.Y, q.Y) <= yMax {
					return Point{X: p.X, Y: (p.Y + q.Y) / 2}, true
				}
			}
			return Point{}, false
		}
		t := (a.X - p.X) / dx
		if t < 0 || t > 1 {
			return Point{}, false
		}
		y := p.Y + t*(q.Y-p.Y)
		yMin, yMax := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
		// A touch at q that lands past the edge's span still counts
		// when q itself is on the interior side.
		if (t == 1 && insideClipEdge(q, clip, i)) || (yMin <= y && y <= yMax) {
			return Point{X: a.X, Y: y}, true
		}
		return Point{}, false
	}

	// Horizontal clip edge at y = a.Y.
	dy := q.Y - p.Y
	if math.Abs(dy) < EpsCollinear {
		if math.Abs(p.Y-a.Y) < EpsIsothetic {
			xMin, xMax := math.Min(a.X, b.X), math.Max(a.X, b.X)
			if math.Max(p.X, q.X) >= xMin && math.Min(p.X, q.X) <= xMax {
				return Point{X: (p.X + q.X) / 2, Y: p.Y}, true
			}
		}
		return Point{}, false
	}
	t := (a.Y - p.Y) / dy
	if t < 0 || t > 1 {
		return Point{}, false
	}
	x := p.X + t*(q.X-p.X)
	xMin, xMax := math.Min(a.X, b.X), math.Max(a.X, b.X)
	if (t == 1 && insideClipEdge(q, clip, i)) || (xMin <= x && x <= xMax) {
		return Point{X: x, Y: a.Y}, true
	}
	return Point{}, false
}
